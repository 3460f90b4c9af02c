package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vk/bsv/internal/app"
)

func newTreeCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	var treeOpts app.TreeOptions
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the entity tree",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			a.Tree(treeOpts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&treeOpts.Filter, "filter", "f", "", "Only show entities whose name contains this text")
	cmd.Flags().IntVarP(&treeOpts.Depth, "depth", "d", 0, "Expand nodes down to this depth")
	cmd.Flags().BoolVarP(&treeOpts.All, "all", "a", false, "Expand every node")
	return cmd
}

func newShowCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Print the details of an entity",
		Long: "Print the details of an entity. REF is [kind:][namespace/]name; kind\n" +
			"defaults to component and namespace to default.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			return a.Show(args[0])
		},
	}
}

func newGraphCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "graph REF",
		Short: "Print the relationships of an entity",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			return a.Graph(args[0])
		},
	}
}

func newCheckCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report load problems, entity issues and dependency cycles",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			if a.Check() {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
