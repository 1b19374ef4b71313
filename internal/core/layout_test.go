package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileLayoutSingleClientFillsWorkArea(t *testing.T) {
	ctx, _ := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, ctx.Backend.(*fakeBackend), false)
	require.NotNil(t, c)

	m := ctx.SelMon
	assert.Equal(t, 0, m.NumMarkedWin)
	assert.Equal(t, "[]=", m.LayoutSymbol)
	assert.Equal(t, m.WW-2*c.Border, c.W)
	assert.Equal(t, m.WH-2*c.Border, c.H)
}

func TestTileLayoutMarkedWidthSplit(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	a := manageTestClient(ctx, backend, false)
	b := manageTestClient(ctx, backend, false)

	a.Marked = true
	detach(a)
	attach(a.Mon, a)
	a.Mon.MarkedWidth = 0.55
	ctx.Arrange(ctx.SelMon)

	m := ctx.SelMon
	require.Equal(t, 1, m.NumMarkedWin)

	wantMW := round(float64(m.WW) * 0.55)
	assert.Equal(t, wantMW-2*a.Border, a.W)
	assert.Equal(t, m.WW-wantMW-2*b.Border, b.W)
}

func TestDeckLayoutSymbolShowsStackCount(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	m := ctx.SelMon
	m.Layouts[m.SelLayout] = DeckLayout

	marked := manageTestClient(ctx, backend, false)
	marked.Marked = true
	detach(marked)
	attach(m, marked)
	_ = manageTestClient(ctx, backend, false)
	_ = manageTestClient(ctx, backend, false)

	ctx.Arrange(m)

	assert.Equal(t, "D 2", m.LayoutSymbol)
}

func TestMonocleLayoutSymbolShowsClientCount(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	m := ctx.SelMon
	m.Layouts[m.SelLayout] = MonocleLayout

	manageTestClient(ctx, backend, false)
	manageTestClient(ctx, backend, false)

	ctx.Arrange(m)

	assert.Equal(t, "[2]", m.LayoutSymbol)
}
