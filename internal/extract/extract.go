// Package extract defines the contract between the conversion driver and the
// per-dialect extractors, together with the selector helpers they share.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/foundation"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/textnorm"
)

// Dialect names the documentation generator whose page layout an extractor understands.
type Dialect string

const (
	DialectJavadoc Dialect = "javadoc"
	DialectTypeDoc Dialect = "typedoc"
)

// Language is the source language documented by pages of this dialect.
// It tags code blocks in rendered output.
func (d Dialect) Language() string {
	switch d {
	case DialectJavadoc:
		return "java"
	case DialectTypeDoc:
		return "nodejs"
	default:
		return ""
	}
}

// Extractor turns the pages of one dialect into entities.
type Extractor interface {
	// Dialect identifies the page layout.
	Dialect() Dialect
	// Accept reports whether a discovered path is an API reference page.
	Accept(path string) bool
	// Detect inspects marker elements. ok is false for pages that document no entity.
	Detect(doc *goquery.Document) (kind apidoc.Kind, ok bool)
	// Extract builds the entity documented by doc.
	Extract(doc *goquery.Document, kind apidoc.Kind) foundation.Result[apidoc.Entity, *errors.ClassifiedError]
	// Policy tells the driver how to combine entities sharing a name.
	Policy() apidoc.Policy
}

// Result is the outcome of an extraction step.
type Result[T any] = foundation.Result[T, *errors.ClassifiedError]

// Ok wraps a successfully extracted value.
func Ok[T any](v T) Result[T] {
	return foundation.Ok[T, *errors.ClassifiedError](v)
}

// Fail wraps an extraction error.
func Fail[T any](err *errors.ClassifiedError) Result[T] {
	return foundation.Err[T, *errors.ClassifiedError](err)
}

// Missing builds the error for a required element a page lacks.
func Missing(what, selector string) *errors.ClassifiedError {
	return errors.ExtractionError("missing required element").
		WithContext("element", what).
		WithContext("selector", selector).
		Build()
}

// Text returns the text content of sel with whitespace collapsed.
func Text(sel *goquery.Selection) string {
	return textnorm.CollapseWhitespace(sel.Text())
}

// First returns the first match of selector below sel, or a missing-element error.
func First(sel *goquery.Selection, selector, what string) Result[*goquery.Selection] {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return Fail[*goquery.Selection](Missing(what, selector))
	}
	return Ok(found)
}

// FirstText is First followed by Text.
func FirstText(sel *goquery.Selection, selector, what string) Result[string] {
	return foundation.Map(First(sel, selector, what), Text)
}

// OptionalText returns the text of the first match of selector, if any.
func OptionalText(sel *goquery.Selection, selector string) foundation.Option[string] {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return foundation.None[string]()
	}
	return foundation.Some(Text(found))
}

// InnerHTML returns the serialized children of the first node in sel.
// Serialization of parsed input does not fail in practice; an error yields "".
func InnerHTML(sel *goquery.Selection) string {
	h, err := sel.Html()
	if err != nil {
		return ""
	}
	return h
}

// Texts returns the collapsed text of every node in sel.
func Texts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return Text(s)
	})
}

// OwnText returns the first non-blank text node directly below the first node in sel.
func OwnText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		if t := textnorm.CollapseWhitespace(c.Data); t != "" {
			return t
		}
	}
	return ""
}

// ContainsText keeps the nodes of sel whose text contains any of words.
// fold makes the comparison case-insensitive.
func ContainsText(sel *goquery.Selection, fold bool, words ...string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if fold {
			text = strings.ToLower(text)
		}
		for _, w := range words {
			if fold {
				w = strings.ToLower(w)
			}
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	})
}

// Paragraphs splits the HTML of the first node in sel into normalized paragraphs.
// Each paragraph is cut at its first heading. A missing node yields nil.
func Paragraphs(sel *goquery.Selection, norm textnorm.Normalizer) []string {
	if sel.Length() == 0 {
		return nil
	}
	var out []string
	for _, p := range textnorm.SplitParagraphs(InnerHTML(sel)) {
		if text := strings.TrimSpace(norm.Normalize(textnorm.BeforeHeading(p))); text != "" {
			out = append(out, text)
		}
	}
	return out
}
