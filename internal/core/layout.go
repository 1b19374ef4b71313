package core

import "strconv"

// TileLayout, DeckLayout and MonocleLayout are the three built-in tiled
// arrangements of §4.D. A caller assembles cfg.Layouts from these plus a
// floating entry with a nil Arrange.
var (
	TileLayout    = &Layout{Symbol: "[]=", Arrange: arrangeTile}
	DeckLayout    = &Layout{Symbol: "[D]", Arrange: arrangeDeck}
	MonocleLayout = &Layout{Symbol: "[M]", Arrange: arrangeMonocle}
	FloatingLayout = &Layout{Symbol: "><>", Arrange: nil}
)

// arrangeTile implements the tile layout: up to NumMarkedWin clients form a
// left master column, the rest form a right stack column.
func arrangeTile(ctx *Context, m *Monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	mCount := m.NumMarkedWin
	if mCount > n {
		mCount = n
	}

	mw := m.WW
	if n > mCount {
		if mCount > 0 {
			mw = round(float64(m.WW) * m.MarkedWidth)
		} else {
			mw = 0
		}
	}

	i, myY, tyY := 0, 0, 0
	for c := nextTiled(m, m.Clients); c != nil; c, i = nextTiled(m, c.Next), i+1 {
		if i < mCount {
			h := (m.WH - myY) / (min2(n, mCount) - i)
			ctx.resizeClient(c, m.WX, m.WY+myY, mw-2*c.Border, h-2*c.Border, false)
			myY += clientHeight(c)
		} else {
			h := (m.WH - tyY) / (n - i)
			ctx.resizeClient(c, m.WX+mw, m.WY+tyY, m.WW-mw-2*c.Border, h-2*c.Border, false)
			tyY += clientHeight(c)
		}
	}
}

// arrangeDeck is arrangeTile with the stack column collapsed to a single
// full-height rectangle, and the layout symbol overridden to "D n".
func arrangeDeck(ctx *Context, m *Monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	mCount := m.NumMarkedWin
	if mCount > n {
		mCount = n
	}

	mw := m.WW
	if n > mCount {
		if mCount > 0 {
			mw = round(float64(m.WW) * m.MarkedWidth)
		} else {
			mw = 0
		}
	}

	if n-mCount > 0 {
		m.LayoutSymbol = deckSymbol(n - mCount)
	}

	i, myY := 0, 0
	for c := nextTiled(m, m.Clients); c != nil; c, i = nextTiled(m, c.Next), i+1 {
		if i < mCount {
			h := (m.WH - myY) / (min2(n, mCount) - i)
			ctx.resizeClient(c, m.WX, m.WY+myY, mw-2*c.Border, h-2*c.Border, false)
			myY += clientHeight(c)
		} else {
			ctx.resizeClient(c, m.WX+mw, m.WY, m.WW-mw-2*c.Border, m.WH-2*c.Border, false)
		}
	}
}

// arrangeMonocle resizes every tag-visible client to the full work-area and
// overrides the layout symbol to "[n]".
func arrangeMonocle(ctx *Context, m *Monitor) {
	n := 0
	for c := m.Clients; c != nil; c = c.Next {
		if TagVisible(m, c) {
			n++
		}
	}
	if n > 0 {
		m.LayoutSymbol = monocleSymbol(n)
	}
	for c := nextTiled(m, m.Clients); c != nil; c = nextTiled(m, c.Next) {
		ctx.resizeClient(c, m.WX, m.WY, m.WW-2*c.Border, m.WH-2*c.Border, false)
	}
}

func clientHeight(c *Client) int {
	return c.H + 2*c.Border
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func deckSymbol(n int) string {
	return "D " + strconv.Itoa(n)
}

func monocleSymbol(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}
