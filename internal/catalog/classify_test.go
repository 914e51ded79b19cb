package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolinacerm/profolio/pkg/api"
)

func TestClassifyExplicitType(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		blk := Classify(map[string]any{"type": "image", "src": "a.png"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockImage, blk.Kind)
		assert.Equal(t, "a.png", blk.Src)
	})
	t.Run("image tag is case-insensitive", func(t *testing.T) {
		blk := Classify(map[string]any{"type": "Image", "src": "a.png"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockImage, blk.Kind)
	})
	t.Run("image tag wins over present text", func(t *testing.T) {
		blk := Classify(map[string]any{"type": "image", "src": "a.png", "body": "caption-ish"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockImage, blk.Kind)
	})
	t.Run("textimage", func(t *testing.T) {
		blk := Classify(map[string]any{"type": "textimage", "src": "a.png", "body": "hi"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockTextImage, blk.Kind)
		assert.Equal(t, "hi", blk.Body)
	})
	t.Run("image tag without source degrades to text", func(t *testing.T) {
		blk := Classify(map[string]any{"type": "image", "body": "hi"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockText, blk.Kind)
	})
	t.Run("image tag without anything drops", func(t *testing.T) {
		assert.Nil(t, Classify(map[string]any{"type": "image"}))
	})
}

func TestClassifyInference(t *testing.T) {
	t.Run("source only", func(t *testing.T) {
		blk := Classify(map[string]any{"src": "a.png", "alt": "alt text"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockImage, blk.Kind)
		assert.Equal(t, "alt text", blk.Alt)
	})
	t.Run("image alias resolves", func(t *testing.T) {
		blk := Classify(map[string]any{"image": "b.png"})
		require.NotNil(t, blk)
		assert.Equal(t, "b.png", blk.Src)
	})
	t.Run("text and source", func(t *testing.T) {
		blk := Classify(map[string]any{"body": "hi", "src": "a.png"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockTextImage, blk.Kind)
	})
	t.Run("text only", func(t *testing.T) {
		blk := Classify(map[string]any{"text": "hi"})
		require.NotNil(t, blk)
		assert.Equal(t, api.BlockText, blk.Kind)
		assert.Equal(t, "hi", blk.Body)
	})
	t.Run("empty drops", func(t *testing.T) {
		assert.Nil(t, Classify(map[string]any{}))
		assert.Nil(t, Classify(nil))
	})
	t.Run("whitespace text drops", func(t *testing.T) {
		assert.Nil(t, Classify(map[string]any{"body": "   "}))
	})
}

func TestClassifyBodyAliasPriority(t *testing.T) {
	blk := Classify(map[string]any{"body": "X", "text": "Y", "description": "Z"})
	require.NotNil(t, blk)
	assert.Equal(t, "X", blk.Body)
}

func TestClassifyCaptionNormalizes(t *testing.T) {
	blk := Classify(map[string]any{
		"src":     "a.png",
		"caption": map[string]any{"text": "  shot from the opening  "},
	})
	require.NotNil(t, blk)
	assert.Equal(t, "shot from the opening", blk.Caption)
}
