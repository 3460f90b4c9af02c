package source

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// separator matches a document start marker line.
var separator = regexp.MustCompile(`^---(\s.*)?$`)

// yamlLine extracts the line number from a yaml.v3 error message.
var yamlLine = regexp.MustCompile(`line (\d+)`)

type chunk struct {
	line int
	body []byte
}

// Decode splits content into YAML documents and decodes each one into a raw
// record. Empty documents are skipped and do not take an index. A document
// that fails to decode, or is not a mapping, is reported and skipped.
func Decode(path string, content []byte) ([]Document, []error) {
	var docs []Document
	var errs []error

	index := 0
	for _, c := range split(content) {
		var node yaml.Node
		err := yaml.Unmarshal(c.body, &node)
		if err == nil && isEmpty(&node) {
			continue
		}

		doc := Document{File: path, Index: index, Line: c.line}
		index++

		if err != nil {
			errs = append(errs, &DocumentError{File: path, Document: doc.Index, Line: c.line + errorLine(err) - 1, Err: err})
			continue
		}

		body := node.Content[0]
		if body.Kind != yaml.MappingNode {
			errs = append(errs, &DocumentError{File: path, Document: doc.Index, Line: c.line + body.Line - 1, Err: errors.New("document is not a mapping")})
			continue
		}
		keepText(body)
		if err := body.Decode(&doc.Record); err != nil {
			errs = append(errs, &DocumentError{File: path, Document: doc.Index, Line: c.line + body.Line - 1, Err: err})
			continue
		}
		docs = append(docs, doc)
	}
	return docs, errs
}

// textTags are the scalar tags whose decoded value loses the written form:
// 1.10 would become 1.1, 0x1F 31 and 2024-01-01 a time.Time.
var textTags = map[string]bool{"!!int": true, "!!float": true, "!!timestamp": true}

// keepText retags numeric and timestamp scalars as strings so that names and
// references decode exactly as written. Booleans and nulls are left alone.
func keepText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && textTags[n.ShortTag()] {
		n.Tag = "!!str"
	}
	for _, c := range n.Content {
		keepText(c)
	}
}

// split cuts content at `---` marker lines. Line numbers are one-based and
// point at the first line of each chunk's body.
func split(content []byte) []chunk {
	var chunks []chunk
	current := chunk{line: 1}

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if separator.Match(line) {
			chunks = append(chunks, current)
			current = chunk{line: lineNo + 1}
			// Content may follow the marker on the same line.
			if rest := bytes.TrimSpace(line[3:]); len(rest) > 0 {
				current.line = lineNo
				current.body = append(append(current.body, rest...), '\n')
			}
			continue
		}
		current.body = append(current.body, line...)
		current.body = append(current.body, '\n')
	}
	return append(chunks, current)
}

func isEmpty(n *yaml.Node) bool {
	if n.Kind == 0 || len(n.Content) == 0 {
		return true
	}
	body := n.Content[0]
	return body.Kind == yaml.ScalarNode && body.Tag == "!!null"
}

func errorLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 1
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 1
	}
	return n
}
