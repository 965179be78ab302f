// Package render turns entities into output documents. Every renderer is a
// pure function of the data model; none of them sees markup from the source
// pages.
package render

import (
	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/foundation/normalization"
)

// Format is an output format.
type Format string

const (
	FormatAsciiDoc      Format = "asciidoc"
	FormatJavaComment   Format = "java-comment"
	FormatNodejsComment Format = "nodejs-comment"
	FormatRustComment   Format = "rust-comment"
)

var formatNormalizer = normalization.NewEnumNormalizer("format", map[string]Format{
	"asciidoc":       FormatAsciiDoc,
	"adoc":           FormatAsciiDoc,
	"java-comment":   FormatJavaComment,
	"nodejs-comment": FormatNodejsComment,
	"rust-comment":   FormatRustComment,
}, FormatAsciiDoc)

// ParseFormat resolves a user supplied format name. Empty input selects AsciiDoc.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithValidation(raw)
}

// FormatNames lists the accepted format names.
func FormatNames() []string {
	return formatNormalizer.ValidValues()
}

// Extension is the file extension, without dot, of documents in this format.
func (f Format) Extension() string {
	if f == FormatAsciiDoc {
		return "adoc"
	}
	return "txt"
}

// Target selects the output format and the documented language, which tags
// code blocks and picks language specific headings.
type Target struct {
	Format   Format
	Language string
}

// Render renders e for t. The result depends only on its arguments.
func Render(e apidoc.Entity, t Target) string {
	switch t.Format {
	case FormatJavaComment:
		return renderComment(e, javaStyle)
	case FormatNodejsComment:
		return renderComment(e, nodejsStyle)
	case FormatRustComment:
		return renderComment(e, rustStyle)
	default:
		return renderAsciiDoc(e, t.Language)
	}
}
