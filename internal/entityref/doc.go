// internal/entityref/doc.go

/*
Package entityref provides a structured, type-safe representation for
references between catalog entities, based on the textual format
`[kind:][namespace/]name`.

Both prefixes are optional. When one is omitted it is filled in from a
Context supplied by the caller (the kind usually depends on the field the
reference came from, the namespace on the entity that holds it) and the Ref
remembers that the segment was inferred so that presentation code can show
it differently. The inferred/explicit flags never take part in equality.

Parsing is total: any string produces a Ref. Input that does not fit the
grammar is treated as a bare name.
*/
package entityref
