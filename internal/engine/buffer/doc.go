// Package buffer provides the row store at the heart of the editor.
//
// A Document is an ordered slice of rows. Each row owns its raw bytes, a
// render buffer with tabs expanded, and one highlight tag per rendered byte.
// Every mutation recomputes the affected row's render and highlight before
// returning, and a change in a row's trailing comment state re-highlights
// the rows below it until the state settles.
//
// Basic usage:
//
//	doc := buffer.NewDocument(buffer.WithSyntax(highlight.CSyntax()))
//	doc.LoadLines([]string{"int main() {", "\treturn 0;", "}"})
//
//	pos := doc.InsertChar(1, 0, ' ')
//	pos = doc.InsertNewline(pos.Row, pos.Col)
//
//	data := doc.Bytes() // "int main() {\n \n\treturn 0;\n}\n"
//
// Thread Safety:
//
// All Document methods are safe for concurrent use. Mutations hold an
// exclusive lock for their whole duration, so no caller ever observes a row
// whose render or highlight is stale.
package buffer
