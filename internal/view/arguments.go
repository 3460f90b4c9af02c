package view

import (
	"fmt"
	"strings"
)

// Format selects the rendering.
type Format rune

const (
	FormatHuman Format = 'H'
	FormatJSON  Format = 'J'
)

func (f Format) String() string {
	switch f {
	case FormatHuman:
		return "human"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps the --output flag value to a Format. An empty value is
// human.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "human":
		return FormatHuman, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("invalid output format %q: must be 'human' or 'json'", s)
	}
}
