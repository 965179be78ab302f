package render

import (
	"strings"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/textnorm"
)

// commentStyle describes one language's documentation comment syntax.
type commentStyle struct {
	open, prefix, close string

	text    func(string) string // description paragraphs
	example func(string) string // example code lines

	examplesHead []string
	examplesTail []string
	argsHead     []string

	param   func(name, desc string) string
	returns func(typ string) []string
}

func identity(s string) string { return s }

var javaStyle = commentStyle{
	open:         "/**",
	prefix:       " * ",
	close:        " */",
	text:         textnorm.BackquotesToCode,
	example:      textnorm.SnakeToCamel,
	examplesHead: []string{"<h3>Examples</h3>", "<pre>"},
	examplesTail: []string{"</pre>"},
	argsHead:     []string{""},
	param: func(name, desc string) string {
		return strings.TrimSpace("@param " + name + " " + desc)
	},
	returns: func(typ string) []string {
		return []string{"@return {@code " + typ + "}"}
	},
}

var nodejsStyle = commentStyle{
	open:         "/**",
	prefix:       " * ",
	close:        " */",
	text:         identity,
	example:      textnorm.SnakeToCamel,
	examplesHead: []string{"", "### Examples", "", "```ts"},
	examplesTail: []string{"```"},
	argsHead:     []string{""},
	param: func(name, desc string) string {
		if desc == "" {
			return "@param " + name
		}
		return "@param " + name + " - " + desc
	},
	returns: func(typ string) []string {
		return []string{"@returns `" + typ + "`"}
	},
}

var rustStyle = commentStyle{
	prefix:       "/// ",
	text:         identity,
	example:      identity,
	examplesHead: []string{"", "# Examples", "", "```rust"},
	examplesTail: []string{"```"},
	argsHead:     []string{"", "# Arguments", ""},
	param: func(name, desc string) string {
		if desc == "" {
			return "* `" + name + "`"
		}
		return "* `" + name + "` - " + desc
	},
	returns: func(typ string) []string {
		return []string{"", "# Returns", "", "`" + typ + "`"}
	},
}

func renderComment(e apidoc.Entity, s commentStyle) string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString("\n\n")
	s.writeBlock(&b, s.body(e.Description, e.Examples))

	for _, f := range e.Fields {
		b.WriteString(f.Name)
		b.WriteString("\n\n")
		var lines []string
		if f.Description.IsSome() {
			lines = append(lines, s.textLines(f.Description.Unwrap())...)
		}
		s.writeBlock(&b, lines)
	}

	for _, m := range e.Methods {
		if m.Signature != "" {
			b.WriteString(m.Signature)
		} else {
			b.WriteString(m.Name)
		}
		b.WriteString("\n\n")
		s.writeBlock(&b, s.methodBody(m))
	}

	return b.String()
}

func (s commentStyle) body(description, examples []string) []string {
	var lines []string
	for _, p := range description {
		lines = append(lines, s.textLines(p)...)
	}
	if len(examples) > 0 {
		lines = append(lines, s.examplesHead...)
		for _, ex := range examples {
			for _, l := range strings.Split(ex, "\n") {
				lines = append(lines, s.example(l))
			}
		}
		lines = append(lines, s.examplesTail...)
	}
	return lines
}

func (s commentStyle) methodBody(m apidoc.Method) []string {
	lines := s.body(m.Description, m.Examples)
	if len(m.Args) > 0 {
		lines = append(lines, s.argsHead...)
		for _, a := range m.Args {
			lines = append(lines, splitLines(s.param(a.Name, s.text(a.Description.UnwrapOr(""))))...)
		}
	}
	if m.ReturnType.IsSome() {
		lines = append(lines, s.returns(m.ReturnType.Unwrap())...)
	}
	return lines
}

// textLines converts p and splits it so every line carries the prefix.
func (s commentStyle) textLines(p string) []string {
	return splitLines(s.text(p))
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// writeBlock writes lines as one comment. Leading and trailing blank lines
// are dropped; nothing is written for an empty block.
func (s commentStyle) writeBlock(b *strings.Builder, lines []string) {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return
	}

	if s.open != "" {
		b.WriteString(s.open)
		b.WriteString("\n")
	}
	for _, l := range lines {
		if l == "" {
			b.WriteString(strings.TrimRight(s.prefix, " "))
		} else {
			b.WriteString(s.prefix)
			b.WriteString(l)
		}
		b.WriteString("\n")
	}
	if s.close != "" {
		b.WriteString(s.close)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
