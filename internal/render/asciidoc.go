package render

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
)

var anchorUnsafeRe = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

func renderAsciiDoc(e apidoc.Entity, lang string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[#_%s]\n", anchor(e.AnchorID()))
	fmt.Fprintf(&b, "= %s\n\n", e.Name)

	if e.PackagePath.IsSome() {
		fmt.Fprintf(&b, "*Package*: `%s`\n\n", e.PackagePath.Unwrap())
	}

	if len(e.Supertypes) > 0 {
		if lang == "java" {
			b.WriteString("*Superinterfaces:*\n\n")
		} else {
			b.WriteString("*Supertypes:*\n\n")
		}
		for _, s := range e.Supertypes {
			fmt.Fprintf(&b, "* `%s`\n", s)
		}
		b.WriteString("\n")
	}

	if len(e.Description) > 0 {
		b.WriteString("== Description\n\n")
		b.WriteString(strings.Join(e.Description, "\n\n"))
		b.WriteString("\n\n")
	}

	if len(e.Examples) > 0 {
		b.WriteString("== Code examples\n\n")
		for _, ex := range e.Examples {
			writeSource(&b, lang, ex)
			b.WriteString("\n")
		}
	}

	if len(e.Fields) > 0 {
		if lang == "python" {
			b.WriteString("== Properties\n\n")
		} else {
			b.WriteString("== Fields\n\n")
		}
		writeArgumentTable(&b, e.Fields)
		b.WriteString("\n")
	}

	if len(e.EnumConstants) > 0 {
		if e.Kind == apidoc.KindNamespace {
			b.WriteString("== Variables\n\n")
		} else {
			b.WriteString("== Enum constants\n\n")
		}
		for _, c := range e.EnumConstants {
			fmt.Fprintf(&b, "* `%s`\n", c.Name)
		}
		b.WriteString("\n")
	}

	if len(e.Methods) > 0 {
		b.WriteString("== Methods\n\n")
		for _, m := range e.Methods {
			writeMethod(&b, e.Name, m, lang)
		}
	}

	return b.String()
}

func writeMethod(b *strings.Builder, entity string, m apidoc.Method, lang string) {
	parts := append([]string{"", entity, m.Name}, m.ArgNames()...)
	fmt.Fprintf(b, "[#%s]\n", anchor(strings.Join(parts, "_")))
	fmt.Fprintf(b, "==== %s\n\n", m.Name)

	if m.Signature != "" {
		writeSource(b, lang, m.Signature)
		b.WriteString("\n")
	}

	if len(m.Description) > 0 {
		b.WriteString(strings.Join(m.Description, "\n\n"))
		b.WriteString("\n\n")
	}

	if len(m.Args) > 0 {
		b.WriteString("[caption=\"\"]\n.Input parameters\n")
		writeArgumentTable(b, m.Args)
		b.WriteString("\n")
	}

	if m.ReturnType.IsSome() {
		fmt.Fprintf(b, "[caption=\"\"]\n.Returns\n`%s`\n\n", m.ReturnType.Unwrap())
	}

	if len(m.Examples) > 0 {
		b.WriteString("[caption=\"\"]\n.Code examples\n")
		for _, ex := range m.Examples {
			writeSource(b, lang, ex)
			b.WriteString("\n")
		}
	}
}

func writeSource(b *strings.Builder, lang, code string) {
	if lang == "" {
		b.WriteString("[source]\n")
	} else {
		fmt.Fprintf(b, "[source,%s]\n", lang)
	}
	fmt.Fprintf(b, "----\n%s\n----\n", code)
}

func writeArgumentTable(b *strings.Builder, args []apidoc.Argument) {
	b.WriteString("[cols=\"~,~,~\"]\n[options=\"header\"]\n|===\n|Name |Type |Description\n")
	for _, a := range args {
		typ := ""
		if a.Type.IsSome() {
			typ = "`" + cell(a.Type.Unwrap()) + "`"
		}
		fmt.Fprintf(b, "a| `%s` a| %s a| %s\n", cell(a.Name), typ, cell(a.Description.UnwrapOr("")))
	}
	b.WriteString("|===\n")
}

// cell escapes the table cell separator.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func anchor(s string) string {
	return anchorUnsafeRe.ReplaceAllString(s, "_")
}
