package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/foundation"
)

func sessionEntity() apidoc.Entity {
	return apidoc.Entity{
		Name:        "Session",
		Kind:        apidoc.KindInterface,
		PackagePath: foundation.Some("com.example"),
		Supertypes:  []string{"AutoCloseable"},
		Description: []string{"First.", "Second."},
		Examples:    []string{"session.close();"},
		Fields: []apidoc.Argument{{
			Name:        "TIMEOUT",
			Type:        foundation.Some("int"),
			Description: foundation.Some("Timeout."),
		}},
		Methods: []apidoc.Method{{
			Name:        "open",
			Signature:   "Session open(String name)",
			Description: []string{"Opens."},
			Args: []apidoc.Argument{{
				Name:        "name",
				Type:        foundation.Some("String"),
				Description: foundation.Some("The name"),
			}},
			ReturnType: foundation.Some("Session"),
			Examples:   []string{`open("x")`},
		}},
	}
}

const sessionAsciiDoc = "[#_Session]\n" +
	"= Session\n\n" +
	"*Package*: `com.example`\n\n" +
	"*Superinterfaces:*\n\n" +
	"* `AutoCloseable`\n\n" +
	"== Description\n\n" +
	"First.\n\nSecond.\n\n" +
	"== Code examples\n\n" +
	"[source,java]\n----\nsession.close();\n----\n\n" +
	"== Fields\n\n" +
	"[cols=\"~,~,~\"]\n[options=\"header\"]\n|===\n|Name |Type |Description\n" +
	"a| `TIMEOUT` a| `int` a| Timeout.\n|===\n\n" +
	"== Methods\n\n" +
	"[#_Session_open_name]\n" +
	"==== open\n\n" +
	"[source,java]\n----\nSession open(String name)\n----\n\n" +
	"Opens.\n\n" +
	"[caption=\"\"]\n.Input parameters\n" +
	"[cols=\"~,~,~\"]\n[options=\"header\"]\n|===\n|Name |Type |Description\n" +
	"a| `name` a| `String` a| The name\n|===\n\n" +
	"[caption=\"\"]\n.Returns\n`Session`\n\n" +
	"[caption=\"\"]\n.Code examples\n" +
	"[source,java]\n----\nopen(\"x\")\n----\n\n"

func TestRenderAsciiDoc(t *testing.T) {
	got := Render(sessionEntity(), Target{Format: FormatAsciiDoc, Language: "java"})
	require.Equal(t, sessionAsciiDoc, got)
}

func TestRenderAsciiDoc_LanguageHeadings(t *testing.T) {
	e := sessionEntity()

	nodejs := Render(e, Target{Format: FormatAsciiDoc, Language: "nodejs"})
	require.Contains(t, nodejs, "*Supertypes:*")
	require.Contains(t, nodejs, "[source,nodejs]")

	python := Render(e, Target{Format: FormatAsciiDoc, Language: "python"})
	require.Contains(t, python, "== Properties\n")
	require.NotContains(t, python, "== Fields\n")
}

func TestRenderAsciiDoc_NamespaceAndEnum(t *testing.T) {
	ns := apidoc.Entity{
		Name:          "Options",
		Kind:          apidoc.KindNamespace,
		EnumConstants: []apidoc.EnumConstant{{Name: "CORE"}},
	}
	require.Equal(t, "[#_Options]\n= Options\n\n== Variables\n\n* `CORE`\n\n",
		Render(ns, Target{Format: FormatAsciiDoc, Language: "nodejs"}))

	enum := apidoc.Entity{
		Name:          "TypeDBTransaction.Type",
		Kind:          apidoc.KindEnum,
		Anchor:        foundation.Some("transaction type"),
		EnumConstants: []apidoc.EnumConstant{{Name: "READ"}, {Name: "WRITE"}},
	}
	got := Render(enum, Target{Format: FormatAsciiDoc, Language: "java"})
	require.Contains(t, got, "[#_transaction_type]\n")
	require.Contains(t, got, "== Enum constants\n\n* `READ`\n* `WRITE`\n")
}

func TestRenderAsciiDoc_EscapesTableCells(t *testing.T) {
	e := apidoc.Entity{
		Name:   "X",
		Fields: []apidoc.Argument{{Name: "f", Description: foundation.Some("a | b")}},
	}
	got := Render(e, Target{Format: FormatAsciiDoc})
	require.Contains(t, got, `a| `+"`f`"+` a|  a| a \| b`)
}

func TestRenderJavaComment(t *testing.T) {
	e := sessionEntity()
	e.Description = []string{"Uses `x` internally."}
	e.Methods[0].Examples = []string{"tx.get_entity_type(label)"}

	want := "Session\n\n" +
		"/**\n" +
		" * Uses {@code x} internally.\n" +
		" * <h3>Examples</h3>\n" +
		" * <pre>\n" +
		" * session.close();\n" +
		" * </pre>\n" +
		" */\n\n" +
		"TIMEOUT\n\n" +
		"/**\n * Timeout.\n */\n\n" +
		"Session open(String name)\n\n" +
		"/**\n" +
		" * Opens.\n" +
		" * <h3>Examples</h3>\n" +
		" * <pre>\n" +
		" * tx.getEntityType(label)\n" +
		" * </pre>\n" +
		" *\n" +
		" * @param name The name\n" +
		" * @return {@code Session}\n" +
		" */\n\n"
	require.Equal(t, want, Render(e, Target{Format: FormatJavaComment}))
}

func TestRenderNodejsComment(t *testing.T) {
	got := Render(sessionEntity(), Target{Format: FormatNodejsComment})

	require.Contains(t, got, " * ### Examples\n *\n * ```ts\n * session.close();\n * ```\n")
	require.Contains(t, got, " * @param name - The name\n")
	require.Contains(t, got, " * @returns `Session`\n")
}

func TestRenderRustComment(t *testing.T) {
	got := Render(sessionEntity(), Target{Format: FormatRustComment})

	require.Contains(t, got, "Session\n\n/// First.\n/// Second.\n///\n/// # Examples\n")
	require.Contains(t, got, "/// # Arguments\n///\n/// * `name` - The name\n")
	require.NotContains(t, got, "/**")
}

func TestRenderComment_MultiLineText(t *testing.T) {
	e := apidoc.Entity{
		Name:        "Driver",
		Description: []string{"Connects to\na server."},
		Methods: []apidoc.Method{{
			Name: "open",
			Args: []apidoc.Argument{{
				Name:        "address",
				Description: foundation.Some("Host and\nport."),
			}},
		}},
	}

	tests := []struct {
		format Format
		want   string
	}{
		{
			format: FormatRustComment,
			want: "Driver\n\n/// Connects to\n/// a server.\n\n" +
				"open\n\n/// # Arguments\n///\n/// * `address` - Host and\n/// port.\n\n",
		},
		{
			format: FormatJavaComment,
			want: "Driver\n\n/**\n * Connects to\n * a server.\n */\n\n" +
				"open\n\n/**\n * @param address Host and\n * port.\n */\n\n",
		},
		{
			format: FormatNodejsComment,
			want: "Driver\n\n/**\n * Connects to\n * a server.\n */\n\n" +
				"open\n\n/**\n * @param address - Host and\n * port.\n */\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			require.Equal(t, tt.want, Render(e, Target{Format: tt.format}))
		})
	}
}

func TestRenderComment_MultiLineField(t *testing.T) {
	e := apidoc.Entity{
		Name:   "Options",
		Fields: []apidoc.Argument{{Name: "PORT", Description: foundation.Some("Default\nport.")}},
	}
	require.Equal(t, "Options\n\nPORT\n\n/// Default\n/// port.\n\n", Render(e, Target{Format: FormatRustComment}))
}

func TestRender_EmptyEntity(t *testing.T) {
	e := apidoc.Entity{Name: "Empty"}
	require.Equal(t, "[#_Empty]\n= Empty\n\n", Render(e, Target{Format: FormatAsciiDoc}))
	require.Equal(t, "Empty\n\n", Render(e, Target{Format: FormatJavaComment}))
}

func TestRender_Deterministic(t *testing.T) {
	e := sessionEntity()
	for _, f := range []Format{FormatAsciiDoc, FormatJavaComment, FormatNodejsComment, FormatRustComment} {
		target := Target{Format: f, Language: "java"}
		require.Equal(t, Render(e, target), Render(e, target), string(f))
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatAsciiDoc, f)

	f, err = ParseFormat("Java_Comment")
	require.NoError(t, err)
	require.Equal(t, FormatJavaComment, f)

	_, err = ParseFormat("html")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")

	require.Equal(t, "adoc", FormatAsciiDoc.Extension())
	require.Equal(t, "txt", FormatRustComment.Extension())
}
