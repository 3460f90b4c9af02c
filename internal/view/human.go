package view

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/vk/bsv/internal/detail"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/graph"
	"github.com/vk/bsv/internal/index"
	"github.com/vk/bsv/internal/tree"
)

var (
	headingColor = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.Faint)
	cycleColor   = color.New(color.FgRed)
)

// HumanView renders for a terminal.
type HumanView struct {
	*Stream
}

func statusColor(s index.Status) *color.Color {
	switch s {
	case index.Resolved:
		return color.New(color.FgGreen)
	case index.UnknownKind:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// colorRef paints a display reference with c, dimming the bracketed
// segments that were filled in from defaults.
func colorRef(display string, c *color.Color) string {
	var sb strings.Builder
	for display != "" {
		open := strings.IndexByte(display, '[')
		if open < 0 {
			sb.WriteString(c.Sprint(display))
			break
		}
		end := strings.IndexByte(display[open:], ']')
		if end < 0 {
			sb.WriteString(c.Sprint(display))
			break
		}
		end += open + 1
		if open > 0 {
			sb.WriteString(c.Sprint(display[:open]))
		}
		sb.WriteString(dimColor.Sprint(display[open:end]))
		display = display[end:]
	}
	return sb.String()
}

func entityLabel(kind entityref.Kind, name string) string {
	return kind.Title() + ": " + name
}

func (h *HumanView) Tree(r TreeResult) {
	t := r.Snapshot.Tree
	for _, id := range r.Visible {
		n := t.Node(id)
		indent := strings.Repeat("  ", n.Depth)
		if n.IsCategory() {
			h.Printf("%s%s %s\n", indent, headingColor.Sprint(n.Label), dimColor.Sprintf("(%d)", len(n.Children)))
			continue
		}
		e := r.Snapshot.Entity(n.Entity)
		line := indent + treeLabel(r, n)
		if n.Cycle {
			line += " " + cycleColor.Sprint("(cycle)")
		}
		if len(e.Issues) > 0 {
			line += " " + color.YellowString("(%d issues)", len(e.Issues))
		}
		h.Println(line)
	}
	if len(r.Visible) == 0 {
		h.Println(dimColor.Sprint("no matching entities"))
	}
}

func (h *HumanView) Detail(d *detail.Detail) {
	h.Println(headingColor.Sprint(entityLabel(d.Kind, d.DisplayName)))
	field := func(name, value string) {
		if value != "" {
			h.Printf("  %-12s %s\n", name+":", value)
		}
	}
	field("ref", d.Ref)
	field("source", fmt.Sprintf("%s (document %d)", d.SourcePath, d.Document))
	field("description", d.Metadata.Description)
	field("type", d.Spec.Type)
	field("lifecycle", d.Spec.Lifecycle)
	if len(d.Metadata.Tags) > 0 {
		field("tags", strings.Join(d.Metadata.Tags, ", "))
	}
	if p := d.Spec.Profile; p != nil {
		field("display", p.DisplayName)
		field("email", p.Email)
	}
	field("target", d.Spec.Target)
	for _, target := range d.Spec.Targets {
		field("target", target)
	}
	for _, l := range d.Metadata.Links {
		title := l.Title
		if title == "" {
			title = "link"
		}
		field(title, l.URL)
	}

	if len(d.References) > 0 {
		h.Println(headingColor.Sprint("References"))
		for _, ref := range d.References {
			c := statusColor(ref.Status)
			line := fmt.Sprintf("  %-12s %s", ref.Field, colorRef(ref.Display, c))
			switch ref.Status {
			case index.Resolved:
				line += dimColor.Sprint(" -> ") + ref.Target
			default:
				line += " " + c.Sprintf("(%s)", ref.Status)
			}
			h.Println(line)
		}
	}

	if len(d.Issues) > 0 {
		h.Println(headingColor.Sprint("Issues"))
		for _, is := range d.Issues {
			h.Printf("  %s %s\n", color.YellowString(is.Path+":"), is.Message)
		}
	}
}

func (h *HumanView) Graph(r GraphResult) {
	snap, g := r.Snapshot, r.Graph
	subject := snap.Entity(g.Subject)
	h.Println(headingColor.Sprint(entityLabel(subject.Kind, subject.DisplayName())), dimColor.Sprint(entityref.Format(subject.Ref())))

	h.Println(headingColor.Sprint("Outgoing"))
	if len(g.Outgoing) == 0 {
		h.Println(dimColor.Sprint("  none"))
	}
	for _, e := range g.Outgoing {
		c := statusColor(e.Resolution.Status)
		line := fmt.Sprintf("  %-14s %s", e.Relation.Name(), colorRef(entityref.Display(e.Target), c))
		if e.Resolution.Status != index.Resolved {
			line += " " + c.Sprintf("(%s)", e.Resolution.Status)
		}
		h.Println(line)
	}

	h.Println(headingColor.Sprint("Incoming"))
	if len(g.Incoming) == 0 {
		h.Println(dimColor.Sprint("  none"))
	}
	for _, e := range g.Incoming {
		src := snap.Entity(e.Source)
		h.Printf("  %-14s %s\n", graph.InverseLabel(e.Relation), color.GreenString(entityref.Format(src.Ref())))
	}
}

func (h *HumanView) Check(r CheckResult) {
	if len(r.Findings) > 0 {
		headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
		columnFmt := color.New(color.FgYellow).SprintfFunc()

		tbl := table.New("Severity", "Source", "Entity", "Message")
		tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(h.Writer)
		for _, f := range r.Findings {
			tbl.AddRow(f.Severity, f.Source, f.Entity, f.Message)
		}
		tbl.Print()
		h.Println()
	}

	summary := fmt.Sprintf("%d files, %d entities, %d findings", r.Files, r.Entities, len(r.Findings))
	switch {
	case r.HasErrors():
		h.Println(color.RedString("Error!"), summary)
	case len(r.Findings) > 0:
		h.Println(color.YellowString("Warning!"), summary)
	default:
		h.Println(color.GreenString("Valid!"), summary)
	}
}

// treeLabel is the label used for a node in flat outputs.
func treeLabel(r TreeResult, n *tree.Node) string {
	if n.IsCategory() {
		return n.Label
	}
	return entityLabel(r.Snapshot.Entity(n.Entity).Kind, n.Label)
}
