package view

import (
	"io"

	"github.com/vk/bsv/internal/detail"
)

// Viewer renders command results.
type Viewer interface {
	Tree(r TreeResult)
	Detail(d *detail.Detail)
	Graph(r GraphResult)
	Check(r CheckResult)
}

var _ Viewer = (*HumanView)(nil)
var _ Viewer = (*JSONView)(nil)

// NewViewer returns the renderer for f writing to w.
func NewViewer(f Format, w io.Writer) Viewer {
	s := NewStream(w)
	switch f {
	case FormatHuman:
		return &HumanView{Stream: s}
	case FormatJSON:
		return &JSONView{Stream: s}
	default:
		panic("unknown output format")
	}
}
