package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextEquivalentShapes(t *testing.T) {
	// A bare string, a one-element sequence and a {body: ...} mapping
	// must all normalize to the identical string.
	want := "Process sketches and final boards."
	shapes := map[string]any{
		"string":   want,
		"sequence": []any{want},
		"mapping":  map[string]any{"body": want},
		"nested":   map[string]any{"body": []any{want}},
	}
	for name, v := range shapes {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, NormalizeText(v))
		})
	}
}

func TestNormalizeTextJoinsSequences(t *testing.T) {
	got := NormalizeText([]any{"First", "", "Second"})
	assert.Equal(t, "First\n\nSecond", got, "empty segments drop before the join")
}

func TestNormalizeTextObjectPriority(t *testing.T) {
	t.Run("body wins over text", func(t *testing.T) {
		got := NormalizeText(map[string]any{"text": "Y", "body": "X"})
		assert.Equal(t, "X", got)
	})
	t.Run("text wins over copy", func(t *testing.T) {
		got := NormalizeText(map[string]any{"copy": "Z", "text": "Y"})
		assert.Equal(t, "Y", got)
	})
	t.Run("no known key", func(t *testing.T) {
		assert.Equal(t, "", NormalizeText(map[string]any{"headline": "nope"}))
	})
}

func TestNormalizeTextUnknownTypes(t *testing.T) {
	assert.Equal(t, "", NormalizeText(nil))
	assert.Equal(t, "", NormalizeText(42))
	assert.Equal(t, "", NormalizeText(true))
}

func TestNormalizeParagraphs(t *testing.T) {
	t.Run("blank line splits", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NormalizeParagraphs("A\n\nB"))
	})
	t.Run("single newline stays", func(t *testing.T) {
		assert.Equal(t, []string{"A\nB"}, NormalizeParagraphs("A\nB"))
	})
	t.Run("runs of newlines collapse", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NormalizeParagraphs("A\n\n\n\nB"))
	})
	t.Run("crlf input", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NormalizeParagraphs("A\r\n\r\nB"))
	})
	t.Run("whitespace only", func(t *testing.T) {
		assert.Nil(t, NormalizeParagraphs("  \n\n  "))
	})
	t.Run("segments trimmed", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NormalizeParagraphs("  A  \n\n  B  "))
	})
}

func TestStringFieldPrecedence(t *testing.T) {
	m := map[string]any{"src": "a.png", "image": "b.png"}
	assert.Equal(t, "a.png", stringField(m, imageKeys...))

	// Empty first alias loses to a populated later one.
	m = map[string]any{"src": "  ", "image": "b.png"}
	assert.Equal(t, "b.png", stringField(m, imageKeys...))
}

func TestCoerceScalar(t *testing.T) {
	assert.Equal(t, "2024", coerceScalar(2024))
	assert.Equal(t, "2.5", coerceScalar(2.5))
	assert.Equal(t, "true", coerceScalar(true))
	assert.Equal(t, "", coerceScalar(false))
	assert.Equal(t, "", coerceScalar(map[string]any{}))

	// Falsy numerics coerce to "" like the other zero values.
	assert.Equal(t, "", coerceScalar(0))
	assert.Equal(t, "", coerceScalar(int64(0)))
	assert.Equal(t, "", coerceScalar(uint64(0)))
	assert.Equal(t, "", coerceScalar(0.0))
}
