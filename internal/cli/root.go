package cli

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vk/bsv/internal/app"
	"github.com/vk/bsv/internal/config"
	"github.com/vk/bsv/internal/hcl"
	"github.com/vk/bsv/internal/view"
)

// options are the global flags.
type options struct {
	root       string
	configPath string
	logLevel   string
	logFormat  string
	output     string
}

// NewRootCommand builds the bsv command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bsv",
		Short: "Browse a software catalog of catalog-info.yaml files",
		Long: color.New(color.FgBlue, color.Bold).Sprint("Usage: bsv [global options] <command> [args]") + "\n\n" +
			"bsv reads every catalog-info.yaml under a directory and shows the entities\n" +
			"as a tree, their details and how they reference each other.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.root, "root", "r", "", "Catalog directory or file (default \".\")")
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default ./"+hcl.DefaultFileName+" when present)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level. One of: "+strings.Join(config.LogLevels, ", "))
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format. One of: "+strings.Join(config.LogFormats, ", "))
	flags.StringVarP(&opts.output, "output", "o", "human", "Output format. One of: (human | json)")

	cmd.AddCommand(
		newTreeCommand(opts, outW, errW),
		newShowCommand(opts, outW, errW),
		newGraphCommand(opts, outW, errW),
		newCheckCommand(opts, outW, errW),
	)
	return cmd
}

// newApp validates the global flags and performs the initial load.
func (o *options) newApp(cmd *cobra.Command, outW, errW io.Writer) (*app.App, error) {
	format, err := view.ParseFormat(o.output)
	if err != nil {
		return nil, usageError("%v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	settingsPath, err := hcl.Find(o.configPath, cwd)
	if err != nil {
		return nil, usageError("%v", err)
	}

	cfg, err := app.NewConfig(app.Config{
		Root:       o.root,
		ConfigPath: settingsPath,
		LogLevel:   strings.ToLower(o.logLevel),
		LogFormat:  strings.ToLower(o.logFormat),
		Output:     format,
	})
	if err != nil {
		return nil, usageError("%v", err)
	}

	return app.NewApp(cmd.Context(), outW, errW, cfg, hcl.NewLoader())
}
