package core

// CmdDragWindow and CmdResizeWithMouse are the two mouse-driven mini-loops
// of §4.H: grab the pointer, then repeatedly consume pointer-mask events,
// delegating everything else back to the main dispatch table, until
// ButtonRelease.

func CmdDragWindow(ctx *Context, arg interface{}) bool {
	c := ctx.SelMon.Sel
	if c == nil || c.Fullscreen {
		return false
	}
	return ctx.dragLoop(c, false)
}

func CmdResizeWithMouse(ctx *Context, arg interface{}) bool {
	c := ctx.SelMon.Sel
	if c == nil || c.Fullscreen {
		return false
	}
	return ctx.dragLoop(c, true)
}

func (ctx *Context) dragLoop(c *Client, resize bool) bool {
	rootX, rootY, _, err := ctx.Backend.QueryPointer()
	if err != nil {
		return false
	}

	ctx.Backend.RaiseWindow(c.Win)
	if resize {
		ctx.Backend.GrabPointerResize()
	} else {
		ctx.Backend.GrabPointerMove()
	}
	defer ctx.Backend.UngrabPointer()

	ctx.drag = &dragState{
		client:     c,
		resize:     resize,
		startRootX: rootX,
		startRootY: rootY,
		startX:     c.X,
		startY:     c.Y,
		startW:     c.W,
		startH:     c.H,
	}
	defer func() { ctx.drag = nil }()

	for {
		ev, err := ctx.Backend.NextEvent()
		if err != nil {
			return false
		}
		switch e := ev.(type) {
		case MotionNotifyEvent:
			ctx.handleDragMotion(e)
		case ButtonReleaseEvent:
			if mon := ctx.recttomon(c.X+c.W/2, c.Y+c.H/2); mon != c.Mon {
				ctx.sendClientToMonitor(c, mon)
			}
			return true
		default:
			ctx.Dispatch(ev)
		}
	}
}

func (ctx *Context) handleDragMotion(e MotionNotifyEvent) {
	d := ctx.drag
	if d == nil {
		return
	}
	c := d.client
	dx := e.RootX - d.startRootX
	dy := e.RootY - d.startRootY

	if d.resize {
		w, h := d.startW+dx, d.startH+dy
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		ctx.resizeClient(c, c.X, c.Y, w, h, true)
		return
	}

	nx, ny := d.startX+dx, d.startY+dy
	nx, ny = ctx.snapToEdges(c, nx, ny)
	ctx.resizeClient(c, nx, ny, c.W, c.H, true)
}

// snapToEdges pulls (x, y) onto the monitor work-area edges when within
// ctx.Config.SnapPixels, per §4.H "snap-to-edge at snap pixels".
func (ctx *Context) snapToEdges(c *Client, x, y int) (int, int) {
	m := c.Mon
	snap := ctx.Config.SnapPixels
	if snap <= 0 {
		return x, y
	}
	if abs(x-m.WX) < snap {
		x = m.WX
	} else if abs((m.WX+m.WW)-(x+c.W+2*c.Border)) < snap {
		x = m.WX + m.WW - c.W - 2*c.Border
	}
	if abs(y-m.WY) < snap {
		y = m.WY
	} else if abs((m.WY+m.WH)-(y+c.H+2*c.Border)) < snap {
		y = m.WY + m.WH - c.H - 2*c.Border
	}
	return x, y
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
