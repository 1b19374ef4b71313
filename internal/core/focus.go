package core

// resizeClient applies the size-hint solver to (x,y,w,h) and, if the result
// differs from c's current geometry, pushes the new geometry to both the
// client record and the backend.
func (ctx *Context) resizeClient(c *Client, x, y, w, h int, interact bool) {
	nx, ny, nw, nh, changed := ctx.applySizeHints(c, x, y, w, h, interact)
	if !changed {
		return
	}
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	c.X, c.Y, c.W, c.H = nx, ny, nw, nh
	ctx.Backend.MoveResizeWindow(c.Win, nx, ny, nw, nh)
}

// Arrange recomputes onscreen/visibility/bar state for m (or every monitor
// if m is nil) and invokes the active layout (§4.E step 1-4).
func (ctx *Context) Arrange(m *Monitor) {
	if m != nil {
		ctx.updateOnscreen(m)
	} else {
		for mm := ctx.Monitors; mm != nil; mm = mm.Next {
			ctx.updateOnscreen(mm)
		}
	}

	if m != nil {
		ctx.arrangeOne(m)
	} else {
		for mm := ctx.Monitors; mm != nil; mm = mm.Next {
			ctx.arrangeOne(mm)
		}
	}
}

func (ctx *Context) arrangeOne(m *Monitor) {
	ctx.updateVisibility(m.Stack)
	ctx.updateBarPositions(m)
	if l := m.Layouts[m.SelLayout]; l != nil {
		m.LayoutSymbol = l.Symbol
		if l.Arrange != nil {
			l.Arrange(ctx, m)
		}
	} else {
		m.LayoutSymbol = "><>"
	}
	ctx.restack(m)
}

// updateOnscreen recomputes each client's Onscreen flag and m.NumMarkedWin
// per the per-layout rules of §4.E step 1.
func (ctx *Context) updateOnscreen(m *Monitor) {
	l := m.Layouts[m.SelLayout]
	monocle := l == MonocleLayout
	deck := l == DeckLayout

	m.NumMarkedWin = 0
	for c := m.Clients; c != nil; c = c.Next {
		visible := TagVisible(m, c) && !c.Minimized
		if !visible {
			c.Onscreen = false
			continue
		}
		switch {
		case monocle:
			c.Onscreen = c.Floating || c == m.Sel
		case deck:
			c.Onscreen = c.Floating || c.Marked || c == m.Sel
		default:
			c.Onscreen = true
		}
		if !c.Floating && c.Marked {
			m.NumMarkedWin++
		}
	}

	if monocle || deck {
		hasNonFloatingSel := m.Sel != nil && !m.Sel.Floating && TagVisible(m, m.Sel) && !m.Sel.Minimized
		if !hasNonFloatingSel {
			for c := m.Stack; c != nil; c = c.SNext {
				if !c.Floating && TagVisible(m, c) && !c.Minimized {
					c.Onscreen = true
					break
				}
			}
		}
	}
}

// updateVisibility walks the focus-stack (top-down for the visible pass,
// bottom-up for the hidden pass, per §4.E step 2) moving clients on- or
// off-screen and updating WM_STATE.
func (ctx *Context) updateVisibility(head *Client) {
	if head == nil {
		return
	}
	visible := head.Onscreen || (!ctx.Config.HideBuriedWindows && TagVisible(head.Mon, head) && !head.Minimized)
	if visible {
		ctx.Backend.MoveResizeWindow(head.Win, head.X, head.Y, head.W, head.H)
		ctx.Backend.SetWMState(head.Win, NormalState)
		ctx.updateVisibility(head.SNext)
	} else {
		ctx.updateVisibility(head.SNext)
		w := head.W + 2*head.Border
		ctx.Backend.MoveResizeWindow(head.Win, -2*w, head.Y, head.W, head.H)
		ctx.Backend.SetWMState(head.Win, IconicState)
	}
}

// updateBarPositions recomputes m's work-area given current bar visibility
// and the client-bar's auto-show rules (§4.E step 3, §6 "Client-bar mode
// default"), and moves m's bar windows to their computed positions.
func (ctx *Context) updateBarPositions(m *Monitor) {
	m.WY, m.WH = m.MY, m.MH
	m.WX, m.WW = m.MX, m.MW

	showClientBar := ctx.shouldShowClientBar(m)
	m.ShowClientBar = showClientBar

	barH := ctx.barHeight
	bars := 0
	if m.ShowTagBar {
		bars++
	}
	if showClientBar {
		bars++
	}

	if ctx.Config.TagsOnTop {
		y := m.MY
		if m.ShowTagBar {
			m.TagBarY = y
			y += barH
		} else {
			m.TagBarY = -barH
		}
		if showClientBar {
			m.ClientBarY = y
			y += barH
		} else {
			m.ClientBarY = -barH
		}
		m.WY = y
	} else {
		y := m.MY + m.MH
		if showClientBar {
			y -= barH
			m.ClientBarY = y
		} else {
			m.ClientBarY = m.MY + m.MH
		}
		if m.ShowTagBar {
			y -= barH
			m.TagBarY = y
		} else {
			m.TagBarY = m.MY + m.MH
		}
	}
	m.WH = m.MH - bars*barH

	if m.TagBarWin != 0 {
		ctx.Backend.MoveResizeWindow(m.TagBarWin, m.WX, m.TagBarY, m.WW, barH)
	}
	if m.ClientBarWin != 0 {
		ctx.Backend.MoveResizeWindow(m.ClientBarWin, m.WX, m.ClientBarY, m.WW, barH)
	}
}

// shouldShowClientBar resolves ClientBarAuto against the current client
// set (§6): shown when there are minimized windows, when monocle has more
// than one tag-visible client, or when deck's stack side is non-empty.
func (ctx *Context) shouldShowClientBar(m *Monitor) bool {
	switch m.ClientBarMode {
	case ClientBarAlways:
		return true
	case ClientBarNever:
		return false
	}

	anyMinimized := false
	visibleCount := 0
	for c := m.Clients; c != nil; c = c.Next {
		if !TagVisible(m, c) {
			continue
		}
		visibleCount++
		if c.Minimized {
			anyMinimized = true
		}
	}
	if anyMinimized {
		return true
	}

	l := m.Layouts[m.SelLayout]
	if l == MonocleLayout && visibleCount > 1 {
		return true
	}
	if l == DeckLayout && countTiled(m)-m.NumMarkedWin > 0 {
		return true
	}
	return false
}

// focus selects c (falling back to the topmost eligible stack entry when c
// is nil or not visible), per §4.E.
func (ctx *Context) focus(c *Client) {
	if c == nil || !TagVisible(c.Mon, c) || c.Minimized {
		c = nil
		for p := ctx.SelMon.Stack; p != nil; p = p.SNext {
			if TagVisible(ctx.SelMon, p) && !p.Minimized {
				c = p
				break
			}
		}
	}

	if ctx.SelMon.Sel != nil && ctx.SelMon.Sel != c {
		ctx.unfocus(ctx.SelMon.Sel, false)
	}

	if c != nil {
		if c.Mon != ctx.SelMon {
			ctx.SelMon = c.Mon
		}
		if c.Urgent {
			ctx.setUrgent(c, false)
		}
		stackDetach(c.Mon, c)
		stackAttach(c.Mon, c)
		ctx.Backend.RegrabButtons(c.Win, true, ctx.Config.MouseBindings)
		ctx.Backend.SetBorderColor(c.Win, ctx.Config.Schemes[SchemeSelected], true)
		if !c.NeverFocus {
			ctx.Backend.SetInputFocus(c.Win)
			ctx.Backend.SetActiveWindow(c.Win)
		}
		ctx.Backend.SendTakeFocus(c.Win)
	} else {
		ctx.Backend.SetInputFocus(0)
	}
	ctx.SelMon.Sel = c
	ctx.drawBars()
	ctx.Arrange(ctx.SelMon)
}

// unfocus reverts c's border to the unselected scheme; if clearFocus, input
// focus is dropped to the root window as well.
func (ctx *Context) unfocus(c *Client, clearFocus bool) {
	if c == nil {
		return
	}
	ctx.Backend.RegrabButtons(c.Win, false, ctx.Config.MouseBindings)
	ctx.Backend.SetBorderColor(c.Win, ctx.Config.Schemes[SchemeNormal], false)
	if clearFocus {
		ctx.Backend.SetInputFocus(0)
	}
}

// restack raises the selected client (if floating or under a floating
// layout) or, for tiled layouts, re-stacks every tag-visible non-floating
// client so the top of the focus-stack becomes the topmost tile (§4.E).
func (ctx *Context) restack(m *Monitor) {
	ctx.drawBars()
	if m.Sel == nil {
		return
	}
	if m.Sel.Floating || isFloatingLayout(m) {
		ctx.Backend.RaiseWindow(m.Sel.Win)
	}
	if !isFloatingLayout(m) {
		var prev WindowID
		for c := m.Stack; c != nil; c = c.SNext {
			if !c.Floating && TagVisible(m, c) && !c.Minimized {
				if prev != 0 {
					ctx.Backend.ConfigureSibling(c.Win, prev, StackBelow)
				} else {
					ctx.Backend.RaiseWindow(c.Win)
				}
				prev = c.Win
			}
		}
	}
	// The reference implementation drains queued EnterNotify events here to
	// suppress focus-follows-mouse churn caused by the restack itself. The
	// backend interface only exposes a blocking NextEvent, so there is
	// nothing to drain without risking blocking the event loop; the event
	// pump's EnterNotify handler is idempotent against a stale pointer
	// position instead.
}

func (ctx *Context) setUrgent(c *Client, urgent bool) {
	c.Urgent = urgent
}

func (ctx *Context) drawBars() {
	for m := ctx.Monitors; m != nil; m = m.Next {
		ctx.drawBar(m)
	}
}
