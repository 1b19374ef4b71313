package core

import "strings"

// Manage begins managing win, discovered either via MapRequest or the
// initial window scan (§4.J, §3 Client "Lifecycle").
func (ctx *Context) Manage(win WindowID, attrs WindowAttrs) {
	if attrs.OverrideRedirect {
		return
	}
	if ctx.findClient(win) != nil {
		return
	}

	c := &Client{Win: win, Border: ctx.Config.BorderWidthTiled}

	transientFor, isTransient := ctx.Backend.GetTransientFor(win)
	var transientOf *Client
	if isTransient {
		transientOf = ctx.findClient(transientFor)
	}

	if transientOf != nil {
		c.Mon = transientOf.Mon
		c.Tags = transientOf.Tags
	} else {
		c.Mon = ctx.SelMon
		ctx.applyRules(c)
	}
	if c.Tags == 0 {
		c.Tags = c.Mon.TagSet[c.Mon.SelTags]
	}

	hints := ctx.Backend.GetSizeHints(win)
	ctx.applyHintsToClient(c, hints)

	c.Name = ctx.Backend.WindowTitle(win)

	wh := ctx.Backend.GetWMHints(win)
	c.Urgent = wh.Urgent
	c.NeverFocus = wh.NeverFocus

	dialog, fullscreen := ctx.Backend.GetWindowType(win)
	if dialog {
		c.Floating = true
	}

	c.Border = ctx.Config.BorderWidthTiled
	if c.Floating {
		c.Border = ctx.Config.BorderWidthFloating
	}

	m := c.Mon
	if c.W == 0 {
		c.W = m.WW / 2
	}
	if c.H == 0 {
		c.H = m.WH / 2
	}
	c.X = m.WX + (m.WW-c.W)/2
	c.Y = m.WY + (m.WH-c.H)/2

	ctx.Backend.SetBorderWidth(win, c.Border)
	ctx.Backend.SetBorderColor(win, ctx.Config.Schemes[SchemeNormal], false)
	ctx.Backend.MoveResizeWindow(win, c.X, c.Y, c.W, c.H)
	ctx.Backend.SelectClientInput(win)
	ctx.Backend.RegrabButtons(win, false, ctx.Config.MouseBindings)

	if !c.Floating {
		c.WasFloating = transientOf != nil
		c.Floating = transientOf != nil
	}
	if c.Floating {
		ctx.Backend.RaiseWindow(win)
	}

	attach(m, c)
	stackAttach(m, c)
	ctx.Backend.SetClientList(ctx.allClientWindows())
	ctx.Backend.MapWindow(win)
	ctx.Backend.SetWMState(win, NormalState)

	if fullscreen {
		ctx.SetFullscreen(c, true)
	}

	if ctx.Config.FollowNewWindows && m == ctx.SelMon && c.Tags&m.TagSet[m.SelTags] == 0 {
		ctx.ViewTag(c.Tags)
	}
	if ctx.Config.FollowNewWindows || c.Mon == ctx.SelMon {
		ctx.unfocus(ctx.SelMon.Sel, false)
	}
	ctx.SelMon = m
	ctx.focus(c)
	ctx.Arrange(m)
}

// Unmanage stops tracking c, restoring its border if destroyed is false
// (the window still exists, e.g. a synthetic unmap).
func (ctx *Context) Unmanage(c *Client, destroyed bool) {
	m := c.Mon
	detach(c)
	stackDetach(m, c)

	if !destroyed {
		ctx.Backend.SetBorderWidth(c.Win, c.OldBorder)
		ctx.Backend.SetWMState(c.Win, WithdrawnState)
	}

	ctx.focus(nil)
	ctx.Backend.SetClientList(ctx.allClientWindows())
	ctx.Arrange(m)
}

func (ctx *Context) findClient(win WindowID) *Client {
	if win == 0 {
		return nil
	}
	for m := ctx.Monitors; m != nil; m = m.Next {
		for c := m.Clients; c != nil; c = c.Next {
			if c.Win == win {
				return c
			}
		}
	}
	return nil
}

func (ctx *Context) allClientWindows() []WindowID {
	var wins []WindowID
	for m := ctx.Monitors; m != nil; m = m.Next {
		for c := m.Clients; c != nil; c = c.Next {
			wins = append(wins, c.Win)
		}
	}
	return wins
}

// applyRules matches c's class/instance/title against ctx.Config.Rules
// (§6 "Configuration"): the first match assigns tags and floating; every
// later match ORs its tags in; a valid monitor index relocates c.
func (ctx *Context) applyRules(c *Client) {
	class, instance := ctx.Backend.WindowClass(c.Win)
	title := ctx.Backend.WindowTitle(c.Win)

	first := true
	var tags uint32
	for _, r := range ctx.Config.Rules {
		if r.Class != "" && !strings.Contains(class, r.Class) {
			continue
		}
		if r.Instance != "" && !strings.Contains(instance, r.Instance) {
			continue
		}
		if r.Title != "" && !strings.Contains(title, r.Title) {
			continue
		}
		if first {
			c.Floating = r.IsFloating
			first = false
		}
		tags |= r.Tags
		if r.Monitor >= 0 {
			if mon := ctx.monitorAt(r.Monitor); mon != nil {
				c.Mon = mon
			}
		}
	}
	c.Tags = tags & TagMask
}

func (ctx *Context) applyHintsToClient(c *Client, h SizeHints) {
	c.BaseW, c.BaseH = h.BaseW, h.BaseH
	c.IncW, c.IncH = h.IncW, h.IncH
	c.MinW, c.MinH = h.MinW, h.MinH
	c.MaxW, c.MaxH = h.MaxW, h.MaxH
	c.MinAspect, c.MaxAspect = h.MinAspect, h.MaxAspect
	c.refreshIsFixed()
	if c.IsFixed {
		c.Floating = true
	}
}

// SetFullscreen enters or restores from fullscreen (§3 Client invariant,
// §8 scenario 4).
func (ctx *Context) SetFullscreen(c *Client, on bool) {
	if on == c.Fullscreen {
		return
	}
	if on {
		ctx.Backend.SetFullscreenState(c.Win, true)
		c.Fullscreen = true
		c.OldState = c.Floating
		c.OldBorder = c.Border
		c.Border = 0
		c.Floating = true
		ctx.resizeClientAbs(c, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH)
		ctx.Backend.RaiseWindow(c.Win)
	} else {
		ctx.Backend.SetFullscreenState(c.Win, false)
		c.Fullscreen = false
		c.Floating = c.OldState
		c.Border = c.OldBorder
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
		ctx.resizeClientAbs(c, c.X, c.Y, c.W, c.H)
		ctx.Arrange(c.Mon)
	}
	ctx.Backend.SetBorderWidth(c.Win, c.Border)
}

// resizeClientAbs sets geometry directly, bypassing the size-hint solver;
// used only when entering fullscreen (target: the monitor rectangle) and
// leaving it (target: the saved pre-fullscreen rectangle).
func (ctx *Context) resizeClientAbs(c *Client, x, y, w, h int) {
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	c.X, c.Y, c.W, c.H = x, y, w, h
	ctx.Backend.MoveResizeWindow(c.Win, x, y, w, h)
}

// ToggleFloating flips c's floating flag, restoring the pre-floating
// rectangle when leaving floating mode.
func (ctx *Context) ToggleFloating(c *Client) {
	if c == nil || c.Fullscreen {
		return
	}
	c.Floating = !c.Floating
	if c.Floating {
		c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
		ctx.resizeClient(c, c.X, c.Y, c.W, c.H, false)
	} else {
		ctx.resizeClient(c, c.OldX, c.OldY, c.OldW, c.OldH, false)
	}
	ctx.Arrange(c.Mon)
}

// ToggleMark flips c's marked flag and re-attaches it into the correct
// order-list band.
func (ctx *Context) ToggleMark(c *Client) {
	if c == nil || c.Floating {
		return
	}
	m := c.Mon
	detach(c)
	c.Marked = !c.Marked
	attach(m, c)
	ctx.Arrange(m)
}

// HideWindow minimizes c, moving focus to the next eligible client.
func (ctx *Context) HideWindow(c *Client) {
	if c == nil {
		return
	}
	c.Minimized = true
	if c.Mon.Sel == c {
		ctx.focus(nil)
	}
	ctx.Arrange(c.Mon)
}

// ToggleHiddenAt restores visibility to the i-th minimized client on
// ctx.SelMon (order-list order), per "toggle_hidden (by index)".
func (ctx *Context) ToggleHiddenAt(i int) {
	m := ctx.SelMon
	idx := 0
	for c := m.Clients; c != nil; c = c.Next {
		if !c.Minimized {
			continue
		}
		if idx == i {
			c.Minimized = false
			ctx.focus(c)
			ctx.Arrange(m)
			return
		}
		idx++
	}
}

// UpdateTitle refreshes c.Name from the backend (PropertyNotify on the
// client's title property).
func (ctx *Context) UpdateTitle(c *Client) {
	name := ctx.Backend.WindowTitle(c.Win)
	if name == "" {
		name = "broken"
	}
	c.Name = name
}

// KillClient asks c to close, preferring the WM_DELETE_WINDOW protocol
// (§8 scenario 6): if the client does not advertise it, the window is
// force-killed under a server grab so a bad-window race with external
// destruction cannot be observed by other clients.
func (ctx *Context) KillClient(c *Client) {
	deleteWindow, _ := ctx.Backend.GetWMProtocols(c.Win)
	if deleteWindow {
		ctx.Backend.SendDeleteWindow(c.Win)
		return
	}
	ctx.Backend.GrabServer()
	ctx.Backend.KillClient(c.Win)
	ctx.Backend.UngrabServer()
}
