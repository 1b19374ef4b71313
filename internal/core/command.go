package core

// CommandFunc is the signature every key/mouse binding invokes (§4.I). arg
// carries the binding's configured argument, or a resolved tag/tab index
// for bar clicks bound with a zero argument. It returns false when the
// command rejects its argument (and, for some commands, when there is no
// target); the dispatcher ignores the result.
type CommandFunc func(ctx *Context, arg interface{}) bool

// The following are the concrete commands named in §6 "Command surface".
// Each is registered into KeyBinding/MouseBinding.Cmd by internal/config.

func CmdViewTag(ctx *Context, arg interface{}) bool {
	tags, ok := arg.(uint32)
	if !ok {
		return false
	}
	ctx.ViewTag(tags)
	return true
}

func CmdToggleTagView(ctx *Context, arg interface{}) bool {
	tags, ok := arg.(uint32)
	if !ok {
		return false
	}
	ctx.ToggleTagView(tags)
	return true
}

func CmdCycleView(ctx *Context, arg interface{}) bool {
	dir, ok := arg.(int)
	if !ok {
		return false
	}
	ctx.CycleView(dir)
	return true
}

func CmdShiftTag(ctx *Context, arg interface{}) bool {
	dir, ok := arg.(int)
	if !ok {
		return false
	}
	ctx.ShiftTag(dir)
	return true
}

func CmdTagClient(ctx *Context, arg interface{}) bool {
	tags, ok := arg.(uint32)
	if !ok {
		return false
	}
	ctx.TagClient(tags)
	return true
}

func CmdToggleTag(ctx *Context, arg interface{}) bool {
	tags, ok := arg.(uint32)
	if !ok {
		return false
	}
	ctx.ToggleTag(tags)
	return true
}

// CmdSetLayout sets ctx.SelMon's active layout slot to arg (an index into
// ctx.Config.Layouts), or toggles between the two layout slots if arg is
// nil.
func CmdSetLayout(ctx *Context, arg interface{}) bool {
	m := ctx.SelMon
	if idx, ok := arg.(int); ok {
		if idx < 0 || idx >= len(ctx.Config.Layouts) {
			return false
		}
		m.Layouts[m.SelLayout] = ctx.Config.Layouts[idx]
	} else if arg == nil {
		m.SelLayout ^= 1
	}
	if l := m.Layouts[m.SelLayout]; l != nil {
		m.LayoutSymbol = l.Symbol
	}
	storePertag(m)
	ctx.Arrange(m)
	return true
}

func CmdAdjustMarkedWidth(ctx *Context, arg interface{}) bool {
	delta, ok := arg.(float64)
	if !ok {
		return false
	}
	m := ctx.SelMon
	nw := m.MarkedWidth + delta
	if nw < 0.05 || nw > 0.95 {
		return false
	}
	m.MarkedWidth = nw
	storePertag(m)
	ctx.Arrange(m)
	return true
}

func CmdSetMarkedWidth(ctx *Context, arg interface{}) bool {
	w, ok := arg.(float64)
	if !ok || w < 0.05 || w > 0.95 {
		return false
	}
	m := ctx.SelMon
	m.MarkedWidth = w
	storePertag(m)
	ctx.Arrange(m)
	return true
}

func CmdCycleFocus(ctx *Context, arg interface{}) bool {
	dir, _ := arg.(int)
	m := ctx.SelMon
	if m.Sel == nil {
		return false
	}
	var target *Client
	if dir >= 0 {
		target = nextTiled(m, m.Sel.Next)
		if target == nil {
			target = nextTiled(m, m.Clients)
		}
	} else {
		target = prevTiled(m, m.Sel)
		if target == nil {
			for c := m.Clients; c != nil; c = c.Next {
				if !c.Floating && TagVisible(m, c) && !c.Minimized {
					target = c
				}
			}
		}
	}
	if target == nil {
		return false
	}
	ctx.focus(target)
	ctx.restack(m)
	return true
}

func CmdCycleStackareaSelection(ctx *Context, arg interface{}) bool {
	dir, _ := arg.(int)
	m := ctx.SelMon
	if m.Sel == nil {
		return false
	}
	var candidates []*Client
	for c := m.Stack; c != nil; c = c.SNext {
		if TagVisible(m, c) && !c.Minimized {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	idx := 0
	for i, c := range candidates {
		if c == m.Sel {
			idx = i
			break
		}
	}
	idx = ((idx+dir)%len(candidates) + len(candidates)) % len(candidates)
	ctx.focus(candidates[idx])
	return true
}

func CmdPushClientLeft(ctx *Context, arg interface{}) bool {
	m := ctx.SelMon
	if m.Sel == nil {
		return false
	}
	pushLeft(m, m.Sel)
	ctx.Arrange(m)
	return true
}

func CmdPushClientRight(ctx *Context, arg interface{}) bool {
	m := ctx.SelMon
	if m.Sel == nil {
		return false
	}
	pushRight(m, m.Sel)
	ctx.Arrange(m)
	return true
}

// CmdFocusClient focuses the arg-th tag-visible client on ctx.SelMon in
// order-list order.
func CmdFocusClient(ctx *Context, arg interface{}) bool {
	idx, ok := arg.(int)
	if !ok || idx < 0 {
		return false
	}
	m := ctx.SelMon
	i := 0
	for c := m.Clients; c != nil; c = c.Next {
		if !TagVisible(m, c) {
			continue
		}
		if i == idx {
			ctx.focus(c)
			ctx.restack(m)
			return true
		}
		i++
	}
	return false
}

func CmdToggleFloating(ctx *Context, arg interface{}) bool {
	ctx.ToggleFloating(ctx.SelMon.Sel)
	return true
}

func CmdToggleFullscreen(ctx *Context, arg interface{}) bool {
	c := ctx.SelMon.Sel
	if c == nil {
		return false
	}
	ctx.SetFullscreen(c, !c.Fullscreen)
	return true
}

func CmdToggleMark(ctx *Context, arg interface{}) bool {
	ctx.ToggleMark(ctx.SelMon.Sel)
	return true
}

func CmdHideWindow(ctx *Context, arg interface{}) bool {
	ctx.HideWindow(ctx.SelMon.Sel)
	return true
}

func CmdToggleHidden(ctx *Context, arg interface{}) bool {
	idx, ok := arg.(int)
	if !ok {
		return false
	}
	ctx.ToggleHiddenAt(idx)
	return true
}

func CmdKillClient(ctx *Context, arg interface{}) bool {
	c := ctx.SelMon.Sel
	if c == nil {
		return false
	}
	ctx.KillClient(c)
	return true
}

func CmdToggleTagBar(ctx *Context, arg interface{}) bool {
	m := ctx.SelMon
	m.ShowTagBar = !m.ShowTagBar
	storePertag(m)
	ctx.Arrange(m)
	return true
}

// CmdSetClientBarMode resolves the sentinel §9 open question: the
// ClientBarModeCycle sentinel (-1) cycles to the next mode, any other
// ClientBarMode value is set directly.
func CmdSetClientBarMode(ctx *Context, arg interface{}) bool {
	mode, ok := arg.(ClientBarMode)
	if !ok {
		return false
	}
	m := ctx.SelMon
	if mode == ClientBarModeCycle {
		m.ClientBarMode = (m.ClientBarMode + 1) % 3
	} else {
		m.ClientBarMode = mode
	}
	storePertag(m)
	ctx.Arrange(m)
	return true
}

func CmdCycleFocusMonitor(ctx *Context, arg interface{}) bool {
	dir, _ := arg.(int)
	n := ctx.monitorCount()
	if n <= 1 {
		return false
	}
	cur := 0
	for i, m := 0, ctx.Monitors; m != nil; i, m = i+1, m.Next {
		if m == ctx.SelMon {
			cur = i
		}
	}
	next := ((cur+dir)%n + n) % n
	ctx.unfocus(ctx.SelMon.Sel, false)
	ctx.SelMon = ctx.monitorAt(next)
	ctx.focus(nil)
	return true
}

func CmdSendToMonitor(ctx *Context, arg interface{}) bool {
	idx, ok := arg.(int)
	if !ok {
		return false
	}
	dst := ctx.monitorAt(idx)
	c := ctx.SelMon.Sel
	if dst == nil || c == nil {
		return false
	}
	ctx.sendClientToMonitor(c, dst)
	return true
}

func CmdQuit(ctx *Context, arg interface{}) bool {
	ctx.Running = false
	return true
}
