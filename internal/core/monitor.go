package core

// Monitor is the per-head state of §3 "Monitor": work-area geometry, bar
// state, the two view tagsets/layouts, and the heads of the order-list and
// focus-stack.
type Monitor struct {
	Next *Monitor
	Num  int

	MX, MY, MW, MH int
	WX, WY, WW, WH int

	LayoutSymbol string
	MarkedWidth  float64
	NumMarkedWin int

	TagSet  [2]uint32
	SelTags int

	Layouts   [2]*Layout
	SelLayout int

	ShowTagBar    bool
	ShowClientBar bool
	ClientBarMode ClientBarMode

	TagBarWin    WindowID
	ClientBarWin WindowID
	TagBarY      int
	ClientBarY   int

	Clients *Client
	Stack   *Client
	Sel     *Client

	NumClientTabs   int
	ClientTabWidths [50]int

	Pertag *Pertag
}

// createMonitor builds a monitor sized to rect, seeding both tagsets to bit
// 0, both layout slots from cfg.DefLayouts[0], and a freshly defaulted
// Pertag store (§4.C).
func createMonitor(cfg *Config, num int, rect Rect) *Monitor {
	m := &Monitor{
		Num:           num,
		MX:            rect.X,
		MY:            rect.Y,
		MW:            rect.W,
		MH:            rect.H,
		WX:            rect.X,
		WY:            rect.Y,
		WW:            rect.W,
		WH:            rect.H,
		TagSet:        [2]uint32{1, 1},
		MarkedWidth:   cfg.MarkedWidth,
		ShowTagBar:    cfg.ShowTagBar,
		ClientBarMode: cfg.ClientBarModeDefault,
	}
	m.Layouts[0] = layoutAt(cfg, cfg.DefLayouts[0][0])
	m.Layouts[1] = layoutAt(cfg, cfg.DefLayouts[0][1])
	if m.Layouts[0] != nil {
		m.LayoutSymbol = m.Layouts[0].Symbol
	}
	m.Pertag = newPertag(cfg, m)
	return m
}

func layoutAt(cfg *Config, idx int) *Layout {
	if idx < 0 || idx >= len(cfg.Layouts) {
		return nil
	}
	return cfg.Layouts[idx]
}

// monitorCleanup unmaps the bar windows and unlinks m from ctx's monitor
// list (§4.C).
func (ctx *Context) monitorCleanup(m *Monitor) {
	if m.TagBarWin != 0 {
		ctx.Backend.UnmapWindow(m.TagBarWin)
	}
	if m.ClientBarWin != 0 {
		ctx.Backend.UnmapWindow(m.ClientBarWin)
	}
	if ctx.Monitors == m {
		ctx.Monitors = m.Next
	} else {
		for p := ctx.Monitors; p != nil; p = p.Next {
			if p.Next == m {
				p.Next = m.Next
				break
			}
		}
	}
	m.Next = nil
}

// sendClientToMonitor moves c from its current monitor to dst, resetting
// its tags to dst's currently viewed tagset and re-arranging both monitors
// (§4.C).
func (ctx *Context) sendClientToMonitor(c *Client, dst *Monitor) {
	src := c.Mon
	if src == dst || c == nil {
		return
	}
	ctx.unfocus(c, true)
	detach(c)
	stackDetach(src, c)
	c.Tags = dst.TagSet[dst.SelTags]
	attach(dst, c)
	stackAttach(dst, c)
	ctx.focus(nil)
	ctx.Arrange(src)
	ctx.Arrange(dst)
}

// monitorCount returns how many monitors are linked from ctx.Monitors.
func (ctx *Context) monitorCount() int {
	n := 0
	for m := ctx.Monitors; m != nil; m = m.Next {
		n++
	}
	return n
}

// monitorAt returns the i-th monitor in list order, or nil.
func (ctx *Context) monitorAt(i int) *Monitor {
	m := ctx.Monitors
	for ; m != nil && i > 0; i-- {
		m = m.Next
	}
	return m
}

// recttomon returns the monitor whose work-area contains the point (x, y),
// or the first monitor in list order when none does; used to resolve the
// monitor under the pointer for clicks, pointer motion and window drags.
func (ctx *Context) recttomon(x, y int) *Monitor {
	best := ctx.SelMon
	bestArea := -1
	for m := ctx.Monitors; m != nil; m = m.Next {
		area := intersectArea(Rect{m.WX, m.WY, m.WW, m.WH}, Rect{x, y, 1, 1})
		if area > bestArea {
			best, bestArea = m, area
		}
	}
	return best
}

func intersectArea(a, b Rect) int {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.W, b.X+b.W)
	y1 := min(a.Y+a.H, b.Y+b.H)
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return (x1 - x0) * (y1 - y0)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
