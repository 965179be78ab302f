// Package signature derives parameter and return types from declared method
// signatures as printed by documentation generators, e.g.
//
//	@CheckReturnValue default TypeDBSession session(String database, TypeDBSession.Type type)
//
// Javadoc separates a type from its name with a non-breaking space; plain
// spaces are accepted as well.
package signature

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/refdoc/internal/textnorm"
)

const nbsp = "\u00a0"

var (
	paramSepRe   = regexp.MustCompile(`,\s`)
	annotationRe = regexp.MustCompile(`@\S*\s`)
	modifierRe   = regexp.MustCompile(`\b(?:public|protected|private|static|final|abstract|default|synchronized|native|strictfp)\s`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// Param is one declared parameter.
type Param struct {
	Name string
	Type string
}

// ParamList returns the declared parameters in order. An empty list yields nil.
func ParamList(sig string) []Param {
	inner := paramsSection(textnorm.CollapseWhitespace(sig))
	if strings.TrimSpace(inner) == "" {
		return nil
	}

	var params []Param
	for _, raw := range paramSepRe.Split(inner, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		typ, name := splitLast(raw)
		params = append(params, Param{
			Name: name,
			Type: normalizeSpaces(typ),
		})
	}
	return params
}

// Params returns the name to type mapping of the declared parameters.
func Params(sig string) map[string]string {
	params := make(map[string]string)
	for _, p := range ParamList(sig) {
		params[p.Name] = p.Type
	}
	return params
}

// ReturnType returns the declared return type with annotations and modifiers
// removed. Constructors yield an empty string.
func ReturnType(sig string) string {
	head := textnorm.CollapseWhitespace(sig)
	if i := strings.Index(head, "("); i >= 0 {
		head = head[:i]
	}
	head, _ = splitLast(strings.TrimSpace(head))
	head = normalizeSpaces(head) + " "
	head = annotationRe.ReplaceAllString(head, "")
	head = modifierRe.ReplaceAllString(head, "")
	return strings.TrimSpace(head)
}

// Clean returns the signature with non-breaking spaces replaced for display.
func Clean(sig string) string {
	return textnorm.ReplaceSpaces(sig)
}

// paramsSection returns the text between the first "(" and the following ")".
func paramsSection(sig string) string {
	open := strings.Index(sig, "(")
	if open < 0 {
		return ""
	}
	rest := sig[open+1:]
	if end := strings.Index(rest, ")"); end >= 0 {
		return rest[:end]
	}
	return rest
}

// splitLast splits s into everything before the final separator and the final
// word. A non-breaking space takes precedence over a plain space.
func splitLast(s string) (head, last string) {
	if i := strings.LastIndex(s, nbsp); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(nbsp):])
	}
	if i := strings.LastIndex(s, " "); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return "", s
}

func normalizeSpaces(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(textnorm.ReplaceSpaces(s), " "))
}
