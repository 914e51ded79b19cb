package catalog

import (
	"strings"

	"github.com/karolinacerm/profolio/pkg/api"
)

// Classify resolves one raw content entry into a tagged block, or nil when
// the entry renders nothing. An explicit type tag wins when its required
// field resolves; otherwise shape is inferred from what is present. The
// decision is per-block, with no cross-block state.
func Classify(raw map[string]any) *api.ContentBlock {
	if raw == nil {
		return nil
	}

	typ := strings.ToLower(stringField(raw, "type"))
	body := ""
	if v, ok := firstPresent(raw, bodyKeys...); ok {
		body = NormalizeText(v)
	}
	hasText := strings.TrimSpace(body) != ""
	src := stringField(raw, imageKeys...)
	alt := stringField(raw, "alt")
	caption := strings.TrimSpace(NormalizeText(raw["caption"]))

	switch {
	case src != "" && (typ == "image" || !hasText):
		return &api.ContentBlock{Kind: api.BlockImage, Src: src, Alt: alt, Caption: caption}
	case src != "" && (typ == "textimage" || hasText):
		blk := &api.ContentBlock{Kind: api.BlockTextImage, Src: src, Alt: alt, Caption: caption}
		if hasText {
			blk.Body = body
		}
		return blk
	case hasText:
		// A mistyped tag (e.g. type: image with no source) degrades to
		// whatever the content supports rather than erroring out.
		return &api.ContentBlock{Kind: api.BlockText, Body: body}
	default:
		return nil
	}
}
