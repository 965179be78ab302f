// Package textnorm turns inline HTML fragments from generated reference pages
// into lightly marked-up text (backticks for code, underscores for emphasis).
//
// It is the only place that sees raw markup; everything downstream works on
// its output. The transformations are regular expressions on purpose: the
// input is a known generator's output, and tag soup degrades to stripped text
// rather than failing.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const nbsp = "\u00a0"

var (
	emOpenRe    = regexp.MustCompile(`<em[^>]*>`)
	codeOpenRe  = regexp.MustCompile(`<code[^>]*>`)
	codeCloseRe = regexp.MustCompile(`</code>(\w?)`)
	preOpenRe   = regexp.MustCompile(`<pre[^>]*>`)
	anyTagRe    = regexp.MustCompile(`<[^>]*>`)
	paragraphRe = regexp.MustCompile(`\s*<p(?:\s[^>]*)?>\s*`)
	asciiWSRe   = regexp.MustCompile(`[ \t\n\r\f\v]+`)
	snakeRe     = regexp.MustCompile(`([A-Za-z0-9])_([a-z])`)
	backquoteRe = regexp.MustCompile("`([^`]+)`")

	// Quote references emitted by the HTML serializer when re-rendering a node.
	quoteReplacer = strings.NewReplacer("&#39;", "'", "&#34;", `"`, "&quot;", `"`)
	spaceReplacer = strings.NewReplacer("&nbsp;", " ", "&#160;", " ", nbsp, " ")

	upper = cases.Upper(language.Und)
)

// Normalizer converts inline HTML to marked-up text. The zero value emits
// untagged source fences.
type Normalizer struct {
	// CodeLanguage tags fenced blocks produced from <pre> elements.
	CodeLanguage string
}

// New returns a Normalizer whose <pre> fences are tagged with lang.
func New(lang string) Normalizer {
	return Normalizer{CodeLanguage: lang}
}

// Normalize applies, in order: emphasis, code and pre conversion, tag
// stripping, and space/quote entity cleanup.
func (n Normalizer) Normalize(html string) string {
	out := ReplaceEmphasis(html)
	out = n.ReplaceCode(out)
	return RemoveTags(out)
}

// ReplaceEmphasis turns <em> spans into _emphasis_.
func ReplaceEmphasis(html string) string {
	out := emOpenRe.ReplaceAllString(html, "_")
	return strings.ReplaceAll(out, "</em>", "_")
}

// ReplaceCode turns <code> spans into backticks and <pre> blocks into source fences.
// A closing backtick directly followed by a word character gets a separating space,
// otherwise the monospace span would not terminate.
func (n Normalizer) ReplaceCode(html string) string {
	out := codeOpenRe.ReplaceAllString(html, "`")
	out = codeCloseRe.ReplaceAllStringFunc(out, func(m string) string {
		if rest := strings.TrimPrefix(m, "</code>"); rest != "" {
			return "` " + rest
		}
		return "`"
	})
	out = preOpenRe.ReplaceAllString(out, n.fenceOpen())
	return strings.ReplaceAll(out, "</pre>", "\n----\n")
}

func (n Normalizer) fenceOpen() string {
	if n.CodeLanguage == "" {
		return "[source]\n----\n"
	}
	return "[source," + n.CodeLanguage + "]\n----\n"
}

// RemoveTags strips every remaining tag and cleans up space and quote entities.
func RemoveTags(html string) string {
	return quoteReplacer.Replace(ReplaceSpaces(anyTagRe.ReplaceAllString(html, "")))
}

// ReplaceSpaces turns non-breaking spaces, literal or escaped, into ordinary spaces.
func ReplaceSpaces(s string) string {
	return spaceReplacer.Replace(s)
}

// SplitParagraphs splits an HTML block on <p> boundaries. Empty paragraphs are dropped.
func SplitParagraphs(html string) []string {
	html = strings.ReplaceAll(html, "</p>", "")
	var paragraphs []string
	for _, p := range paragraphRe.Split(html, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// BeforeHeading returns the part of html preceding the first heading tag.
func BeforeHeading(html string) string {
	if i := strings.Index(html, "<h"); i >= 0 {
		return html[:i]
	}
	return html
}

// CollapseWhitespace replaces runs of ASCII whitespace with a single space and
// trims the result. Non-breaking spaces are preserved: signature parsing
// relies on them to separate parameter types from names.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(asciiWSRe.ReplaceAllString(s, " "))
}

// SnakeToCamel rewrites snake_case identifiers as camelCase, e.g. for examples
// ported into Java or TypeScript comments.
func SnakeToCamel(s string) string {
	for snakeRe.MatchString(s) {
		s = snakeRe.ReplaceAllStringFunc(s, func(m string) string {
			parts := snakeRe.FindStringSubmatch(m)
			return parts[1] + upper.String(parts[2])
		})
	}
	return s
}

// BackquotesToCode rewrites `code` spans as Javadoc {@code code} tags.
func BackquotesToCode(s string) string {
	return backquoteRe.ReplaceAllString(s, "{@code $1}")
}
