package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newGeometryTestContext() *Context {
	backend := newFakeBackend(1920, 1080, 18)
	ctx := NewContext(backend, testConfig())
	ctx.barHeight = 18
	mon := createMonitor(ctx.Config, 0, Rect{0, 0, 1920, 1080})
	ctx.Monitors = mon
	ctx.SelMon = mon
	return ctx
}

func TestApplySizeHintsQuantizesByIncrement(t *testing.T) {
	ctx := newGeometryTestContext()
	ctx.Config.ResizeHints = true
	c := &Client{Mon: ctx.SelMon, BaseW: 10, BaseH: 10, IncW: 10, IncH: 10, MinW: 10, MinH: 10}

	_, _, w, h, changed := ctx.applySizeHints(c, 0, 0, 47, 33, false)

	assert.True(t, changed)
	assert.Equal(t, 40, w) // (47-10) quantized to 30, +10 base = 40
	assert.Equal(t, 30, h) // (33-10) quantized to 20, +10 base = 30
}

func TestApplySizeHintsClampsToMinMax(t *testing.T) {
	ctx := newGeometryTestContext()
	ctx.Config.ResizeHints = true
	c := &Client{Mon: ctx.SelMon, MinW: 100, MinH: 100, MaxW: 200, MaxH: 200}

	_, _, w, h, _ := ctx.applySizeHints(c, 0, 0, 10, 500, false)

	assert.Equal(t, 100, w)
	assert.Equal(t, 200, h)
}

func TestApplySizeHintsEnforcesBarHeightFloor(t *testing.T) {
	ctx := newGeometryTestContext()
	c := &Client{Mon: ctx.SelMon}

	_, _, w, h, _ := ctx.applySizeHints(c, 0, 0, 5, 5, false)

	assert.Equal(t, 18, w)
	assert.Equal(t, 18, h)
}

func TestApplySizeHintsSkippedForTiledClientWithoutResizeHints(t *testing.T) {
	ctx := newGeometryTestContext()
	ctx.Config.ResizeHints = false
	ctx.SelMon.Layouts[ctx.SelMon.SelLayout] = TileLayout
	c := &Client{Mon: ctx.SelMon, IncW: 10, IncH: 10, MinW: 10, MinH: 10}

	_, _, w, h, _ := ctx.applySizeHints(c, 0, 0, 47, 47, false)

	assert.Equal(t, 47, w)
	assert.Equal(t, 47, h)
}

func TestApplySizeHintsClipsToMonitorWorkArea(t *testing.T) {
	ctx := newGeometryTestContext()
	ctx.SelMon.WX, ctx.SelMon.WY, ctx.SelMon.WW, ctx.SelMon.WH = 0, 0, 1920, 1062
	c := &Client{Mon: ctx.SelMon, Border: 0}

	x, y, _, _, _ := ctx.applySizeHints(c, 3000, 3000, 100, 100, false)

	assert.Equal(t, 1920-100, x)
	assert.Equal(t, 1062-100, y)
}
