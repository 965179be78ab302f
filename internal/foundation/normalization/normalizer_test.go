package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testFormat string

const (
	formatAsciiDoc    testFormat = "asciidoc"
	formatJavaComment testFormat = "java-comment"
)

func TestNormalizer_Basic(t *testing.T) {
	normalizer := NewNormalizer(map[string]testFormat{
		"asciidoc":     formatAsciiDoc,
		"adoc":         formatAsciiDoc,
		"java-comment": formatJavaComment,
	}, formatAsciiDoc)

	tests := []struct {
		name     string
		input    string
		expected testFormat
	}{
		{"exact match", "asciidoc", formatAsciiDoc},
		{"alias", "ADOC", formatAsciiDoc},
		{"with spaces", "  java-comment  ", formatJavaComment},
		{"underscore accepted", "java_comment", formatJavaComment},
		{"invalid input", "invalid", formatAsciiDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, normalizer.Normalize(tt.input))
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	normalizer := NewNormalizer(map[string]testFormat{
		"asciidoc":     formatAsciiDoc,
		"java-comment": formatJavaComment,
	}, formatAsciiDoc)

	got, err := normalizer.NormalizeWithError("Java-Comment")
	require.NoError(t, err)
	require.Equal(t, formatJavaComment, got)

	got, err = normalizer.NormalizeWithError("")
	require.NoError(t, err)
	require.Equal(t, formatAsciiDoc, got)

	_, err = normalizer.NormalizeWithError("pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "asciidoc")
}

func TestEnumNormalizer(t *testing.T) {
	enum := NewEnumNormalizer("output format", map[string]testFormat{
		"asciidoc":     formatAsciiDoc,
		"java-comment": formatJavaComment,
	}, formatAsciiDoc)

	_, err := enum.NormalizeWithValidation("markdown")
	require.ErrorContains(t, err, "invalid output format")
	require.Equal(t, []string{"asciidoc", "java-comment"}, enum.ValidValues())
	require.Equal(t, formatJavaComment, enum.Normalize("JAVA-COMMENT"))
}
