package core

import "fmt"

// Bootstrap performs §4.J startup: become the window manager, resolve
// well-known atoms, discover monitors, create bar windows, grab keys, and
// scan pre-existing windows in two passes.
func (ctx *Context) Bootstrap() error {
	if err := ctx.Backend.Open(); err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	if err := ctx.Backend.BecomeWindowManager(); err != nil {
		return fmt.Errorf("become window manager: %w", err)
	}

	ctx.barHeight = ctx.Backend.BarHeight()
	ctx.statusText = ctx.Backend.StatusText()

	for a := WellKnownAtom(0); a < numWellKnownAtoms; a++ {
		ctx.wellKnownAtoms[a] = ctx.Backend.AtomID(a)
	}
	ctx.Backend.SetSupported([]WellKnownAtom{
		AtomNetSupported, AtomNetWMName, AtomNetWMState, AtomNetWMCheck, AtomNetWMFullscreen,
		AtomNetActiveWindow, AtomNetWMWindowType, AtomNetWMWindowTypeDialog, AtomNetClientList,
	})

	rects, err := ctx.Backend.QueryScreens()
	if err != nil || len(rects) == 0 {
		sw, sh := ctx.Backend.ScreenSize()
		rects = []Rect{{0, 0, sw, sh}}
	}
	ctx.applyMonitorRects(rects)

	for m := ctx.Monitors; m != nil; m = m.Next {
		w, _ := ctx.Backend.ScreenSize()
		bw, err := ctx.Backend.CreateBarWindow(m.Num, w, ctx.barHeight)
		if err == nil {
			m.TagBarWin = bw
		}
		cw, err := ctx.Backend.CreateBarWindow(m.Num, w, ctx.barHeight)
		if err == nil {
			m.ClientBarWin = cw
		}
	}

	wmMod := uint16(0)
	for _, b := range ctx.Config.KeyBindings {
		wmMod |= b.Mod
	}
	if err := ctx.Backend.GrabKeys(ctx.Config.KeyBindings, wmMod); err != nil {
		return fmt.Errorf("grab keys: %w", err)
	}

	if err := ctx.scanExistingWindows(); err != nil {
		return fmt.Errorf("scan existing windows: %w", err)
	}

	ctx.Running = true
	ctx.focus(nil)
	ctx.Arrange(nil)
	return nil
}

// applyMonitorRects deduplicates rects by identical geometry and
// reconciles them against ctx.Monitors (§4.J "Multi-head"): grow by
// creating new monitors, shrink by migrating clients from removed tail
// monitors into the head monitor.
func (ctx *Context) applyMonitorRects(rects []Rect) {
	deduped := dedupeRects(rects)

	existing := ctx.monitorCount()
	want := len(deduped)

	for i := 0; i < want; i++ {
		m := ctx.monitorAt(i)
		if m == nil {
			m = createMonitor(ctx.Config, i, deduped[i])
			ctx.appendMonitor(m)
		} else {
			m.MX, m.MY, m.MW, m.MH = deduped[i].X, deduped[i].Y, deduped[i].W, deduped[i].H
			m.WX, m.WY, m.WW, m.WH = deduped[i].X, deduped[i].Y, deduped[i].W, deduped[i].H
		}
	}

	if existing > want {
		head := ctx.Monitors
		for i := want; i < existing; i++ {
			tail := ctx.monitorAt(want)
			if tail == nil || head == nil {
				break
			}
			for c := tail.Clients; c != nil; {
				next := c.Next
				ctx.sendClientToMonitor(c, head)
				c = next
			}
			ctx.monitorCleanup(tail)
		}
	}

	if ctx.SelMon == nil {
		ctx.SelMon = ctx.Monitors
	}
}

func (ctx *Context) appendMonitor(m *Monitor) {
	if ctx.Monitors == nil {
		ctx.Monitors = m
		return
	}
	p := ctx.Monitors
	for p.Next != nil {
		p = p.Next
	}
	p.Next = m
}

func dedupeRects(rects []Rect) []Rect {
	var out []Rect
	for _, r := range rects {
		dup := false
		for _, o := range out {
			if o == r {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}

// scanExistingWindows implements the initial two-pass scan of §4.J:
// non-transient windows first, then transients, managing those that are
// viewable or iconic.
func (ctx *Context) scanExistingWindows() error {
	wins, err := ctx.Backend.QueryExistingWindows()
	if err != nil {
		return err
	}

	var transients, normals []WindowID
	for _, w := range wins {
		attrs := ctx.Backend.GetAttrs(w)
		if attrs.OverrideRedirect || (!attrs.Viewable && !attrs.Iconic) {
			continue
		}
		if _, isTransient := ctx.Backend.GetTransientFor(w); isTransient {
			transients = append(transients, w)
		} else {
			normals = append(normals, w)
		}
	}

	for _, w := range normals {
		ctx.Manage(w, ctx.Backend.GetAttrs(w))
	}
	for _, w := range transients {
		ctx.Manage(w, ctx.Backend.GetAttrs(w))
	}
	return nil
}

// Shutdown releases backend resources on a graceful quit (§5
// "Cancellation").
func (ctx *Context) Shutdown() error {
	for m := ctx.Monitors; m != nil; m = m.Next {
		for c := m.Clients; c != nil; c = c.Next {
			ctx.Backend.UnmapWindow(c.Win)
		}
	}
	return ctx.Backend.Close()
}
