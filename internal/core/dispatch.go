package core

// Dispatch routes one backend event to its handler (§4.H). It is the only
// entry point the event loop (cmd/wasdwm) calls once Bootstrap has run.
func (ctx *Context) Dispatch(ev Event) {
	switch e := ev.(type) {
	case ButtonPressEvent:
		ctx.onButtonPress(e)
	case ClientMessageEvent:
		ctx.onClientMessage(e)
	case ConfigureNotifyEvent:
		ctx.onConfigureNotify(e)
	case ConfigureRequestEvent:
		ctx.onConfigureRequest(e)
	case DestroyNotifyEvent:
		ctx.onDestroyNotify(e)
	case UnmapNotifyEvent:
		ctx.onUnmapNotify(e)
	case EnterNotifyEvent:
		ctx.onEnterNotify(e)
	case ExposeEvent:
		ctx.onExpose(e)
	case FocusInEvent:
		ctx.onFocusIn(e)
	case KeyPressEvent:
		ctx.onKeyPress(e)
	case MappingNotifyEvent:
		ctx.onMappingNotify(e)
	case MapRequestEvent:
		ctx.onMapRequest(e)
	case MotionNotifyEvent:
		ctx.onMotionNotify(e)
	case PropertyNotifyEvent:
		ctx.onPropertyNotify(e)
	}
}

func (ctx *Context) onButtonPress(e ButtonPressEvent) {
	click, m, idx := ctx.resolveClick(e)
	if m != ctx.SelMon {
		ctx.unfocus(ctx.SelMon.Sel, false)
		ctx.SelMon = m
		ctx.focus(nil)
	}
	if c := ctx.findClient(e.Subwin); c != nil {
		ctx.focus(c)
		ctx.restack(m)
	}

	mask := cleanMask(e.State)
	for _, b := range ctx.Config.MouseBindings {
		if b.Click != click || b.Button != e.Button || cleanMask(b.Mod) != mask {
			continue
		}
		arg := b.Arg
		if arg == nil {
			switch click {
			case ClickTagBar:
				arg = uint32(1) << uint(idx)
			case ClickClientBar:
				arg = idx
			}
		}
		b.Cmd(ctx, arg)
	}
}

// resolveClick maps a ButtonPress's window/x-coordinate to a bar region
// (§4.H), returning the owning monitor and, for tag- or client-bar clicks,
// the resolved tag or tab index under the pointer.
func (ctx *Context) resolveClick(e ButtonPressEvent) (Click, *Monitor, int) {
	for m := ctx.Monitors; m != nil; m = m.Next {
		if e.Window == m.TagBarWin {
			// Tag cells occupy equal-width slices of the bar; resolve by
			// dividing the configured tag count into the bar width.
			cellW := m.WW / NumTags
			if cellW <= 0 {
				cellW = 1
			}
			idx := e.X / cellW
			if idx >= NumTags {
				idx = NumTags - 1
			}
			return ClickTagBar, m, idx
		}
		if e.Window == m.ClientBarWin {
			idx := 0
			x := 0
			for c := m.Clients; c != nil; c = c.Next {
				if !TagVisible(m, c) {
					continue
				}
				if e.X >= x && e.X < x+clientTabWidthHint {
					return ClickClientBar, m, idx
				}
				x += clientTabWidthHint
				idx++
			}
			return ClickClientBar, m, -1
		}
	}
	if c := ctx.findClient(e.Window); c != nil {
		return ClickClientWin, c.Mon, 0
	}
	if mon := ctx.recttomon(e.RootX, e.RootY); mon != nil {
		return ClickRootWin, mon, 0
	}
	return ClickRootWin, ctx.SelMon, 0
}

const clientTabWidthHint = 120

func (ctx *Context) onClientMessage(e ClientMessageEvent) {
	c := ctx.findClient(e.Window)
	if c == nil {
		return
	}
	switch e.Type {
	case ctx.AtomID(AtomNetWMState):
		if Atom(e.Data[1]) == ctx.AtomID(AtomNetWMFullscreen) || Atom(e.Data[2]) == ctx.AtomID(AtomNetWMFullscreen) {
			switch e.Data[0] {
			case 0:
				ctx.SetFullscreen(c, false)
			case 1:
				ctx.SetFullscreen(c, true)
			case 2:
				ctx.SetFullscreen(c, !c.Fullscreen)
			}
		}
	case ctx.AtomID(AtomNetActiveWindow):
		if c != ctx.SelMon.Sel && !c.Urgent {
			ctx.ViewTag(c.Tags)
			ctx.focus(c)
		}
	}
}

func (ctx *Context) onConfigureRequest(e ConfigureRequestEvent) {
	c := ctx.findClient(e.Window)
	if c == nil {
		ctx.Backend.ConfigureSibling(e.Window, e.Sibling, e.StackMode)
		return
	}
	if c.Floating || isFloatingLayout(c.Mon) {
		m := c.Mon
		x, y, w, h := e.X, e.Y, e.W, e.H
		if e.ValueMask&(1<<2) == 0 {
			w = c.W
		}
		if e.ValueMask&(1<<3) == 0 {
			h = c.H
		}
		if x+w > m.MX+m.MW {
			x = m.MX + (m.MW-w)/2
		}
		if y+h > m.MY+m.MH {
			y = m.MY + (m.MH-h)/2
		}
		ctx.resizeClient(c, x, y, w, h, false)
	} else {
		ctx.Backend.SetBorderWidth(c.Win, c.Border)
	}
}

func (ctx *Context) onConfigureNotify(e ConfigureNotifyEvent) {
	sw, sh := ctx.Backend.ScreenSize()
	if e.W == sw && e.H == sh {
		return
	}
	ctx.reconcileMonitors()
	ctx.Arrange(nil)
}

func (ctx *Context) onDestroyNotify(e DestroyNotifyEvent) {
	if c := ctx.findClient(e.Window); c != nil {
		ctx.Unmanage(c, true)
	}
}

func (ctx *Context) onUnmapNotify(e UnmapNotifyEvent) {
	c := ctx.findClient(e.Window)
	if c == nil {
		return
	}
	if e.Synthetic {
		ctx.Unmanage(c, false)
	} else {
		c.Minimized = true
		ctx.Arrange(c.Mon)
	}
}

func (ctx *Context) onEnterNotify(e EnterNotifyEvent) {
	const NotifyNormal, NotifyInferior = 0, 2
	if e.Mode != NotifyNormal && e.Detail == NotifyInferior && e.Window != 0 {
		return
	}
	c := ctx.findClient(e.Window)
	m := ctx.SelMon
	if c != nil {
		m = c.Mon
	} else if mon := ctx.recttomon(e.RootX, e.RootY); mon != nil {
		m = mon
	}
	if m != ctx.SelMon {
		ctx.unfocus(ctx.SelMon.Sel, false)
		ctx.SelMon = m
	}
	if c != nil && c != ctx.SelMon.Sel {
		ctx.focus(c)
	} else if c == nil {
		ctx.focus(nil)
	}
}

func (ctx *Context) onExpose(e ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for m := ctx.Monitors; m != nil; m = m.Next {
		if e.Window == m.TagBarWin || e.Window == m.ClientBarWin {
			ctx.drawBar(m)
			return
		}
	}
}

func (ctx *Context) onFocusIn(e FocusInEvent) {
	if sel := ctx.SelMon.Sel; sel != nil && e.Window != sel.Win {
		ctx.Backend.SetInputFocus(sel.Win)
	}
}

func (ctx *Context) onKeyPress(e KeyPressEvent) {
	mask := cleanMask(e.State)
	for _, b := range ctx.Config.KeyBindings {
		if b.Keysym == e.Keysym && cleanMask(b.Mod) == mask {
			b.Cmd(ctx, b.Arg)
		}
	}
}

func (ctx *Context) onMappingNotify(e MappingNotifyEvent) {
	wmMod := uint16(0)
	for _, b := range ctx.Config.KeyBindings {
		wmMod |= b.Mod
	}
	ctx.Backend.GrabKeys(ctx.Config.KeyBindings, wmMod)
}

func (ctx *Context) onMapRequest(e MapRequestEvent) {
	if ctx.findClient(e.Window) != nil {
		return
	}
	attrs := ctx.Backend.GetAttrs(e.Window)
	ctx.Manage(e.Window, attrs)
}

func (ctx *Context) onMotionNotify(e MotionNotifyEvent) {
	if e.Window != 0 {
		return // root-only, per §4.H
	}
	if mon := ctx.recttomon(e.RootX, e.RootY); mon != nil && mon != ctx.SelMon {
		ctx.unfocus(ctx.SelMon.Sel, false)
		ctx.SelMon = mon
		ctx.focus(nil)
	}
}

func (ctx *Context) onPropertyNotify(e PropertyNotifyEvent) {
	switch e.Atom {
	case ctx.AtomID(AtomNetWMName):
		if e.Window == ctx.rootWindowHint() {
			ctx.statusText = ctx.Backend.StatusText()
			ctx.drawBars()
			return
		}
	}
	c := ctx.findClient(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case ctx.AtomID(AtomNetWMName):
		ctx.UpdateTitle(c)
		ctx.drawBar(c.Mon)
	default:
		if _, isTransient := ctx.Backend.GetTransientFor(c.Win); isTransient {
			c.Floating = true
			ctx.Arrange(c.Mon)
		}
	}
}

// rootWindowHint has no dedicated field on Context; StatusText is always
// reported against the root, so PropertyNotify on WM_NAME with no managed
// client is treated as the root.
func (ctx *Context) rootWindowHint() WindowID {
	return 0
}

// cleanMask strips the lock modifiers (Lock and Mod2, i.e. CapsLock and
// NumLock) that the backend reports unchanged in event state and that
// bindings are not configured against, so event and binding masks compare
// equal regardless of lock state.
func cleanMask(mask uint16) uint16 {
	return mask &^ (1<<1 | 1<<4)
}

// reconcileMonitors is invoked on a root ConfigureNotify with a changed
// screen size; the concrete multi-head reconciliation lives in
// bootstrap.go.
func (ctx *Context) reconcileMonitors() {
	rects, err := ctx.Backend.QueryScreens()
	if err != nil || len(rects) == 0 {
		sw, sh := ctx.Backend.ScreenSize()
		rects = []Rect{{0, 0, sw, sh}}
	}
	ctx.applyMonitorRects(rects)
}
