package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewTagTogglesBackWithPertagSwap(t *testing.T) {
	ctx, _ := newTestContext(1000, 800, 18)
	cfg := ctx.Config
	cfg.ViewTagToggles = true
	m := ctx.SelMon

	originalTags := m.TagSet[m.SelTags]
	originalWidth := m.MarkedWidth
	ctx.ViewTag(1 << 2)
	require.Equal(t, uint32(1<<2), m.TagSet[m.SelTags])
	m.MarkedWidth = 0.3 // a per-tag edit while tag 3 is viewed

	ctx.ViewTag(1 << 2) // same view again -> toggles back per view_tag_toggles
	assert.Equal(t, originalTags, m.TagSet[m.SelTags])
	assert.Equal(t, originalWidth, m.MarkedWidth)
}

func TestToggleTagViewIgnoredWhenResultEmpty(t *testing.T) {
	ctx, _ := newTestContext(1000, 800, 18)
	m := ctx.SelMon
	before := m.TagSet[m.SelTags]

	ctx.ToggleTagView(before) // XOR with itself would clear the tagset

	assert.Equal(t, before, m.TagSet[m.SelTags])
}

func TestTagClientReplacesTags(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)
	ctx.SelMon.Sel = c

	ctx.TagClient(1 << 3)

	assert.Equal(t, uint32(1<<3), c.Tags)
}

func TestCycleViewSkipsUnoccupiedTags(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)
	c.Tags = 1 << 5
	ctx.SelMon.Sel = c

	ctx.ViewTag(1) // start viewing tag 0, which has no clients
	ctx.CycleView(1)

	assert.Equal(t, uint32(1<<5), ctx.SelMon.TagSet[ctx.SelMon.SelTags])
}
