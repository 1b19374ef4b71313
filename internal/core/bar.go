package core

import "sort"

// BarModel is what the core hands the backend to paint one monitor's bars
// (§4.G). The backend is responsible for font metrics and pixels; the core
// only decides content, color scheme and cell boundaries.
type BarModel struct {
	TagBarY    int
	ClientBarY int

	Tags []TagCell

	StatusText   string
	WinTitle     string
	WinTitleFill ColorScheme

	ClientTabs []ClientTab

	LayoutSymbol string
}

// TagCell is one tag-bar cell.
type TagCell struct {
	Label     string
	Scheme    ColorScheme
	Occupied  bool
	IsSelHome bool // the selected client carries this tag
}

// ClientTab is one client-bar (tab) cell.
type ClientTab struct {
	Client *Client
	Title  string
	Width  int
	Scheme ColorScheme
	Marked bool
}

// buildBarModel assembles the content §4.G describes for m, without
// touching the backend.
func (ctx *Context) buildBarModel(m *Monitor) BarModel {
	model := BarModel{
		TagBarY:      m.TagBarY,
		ClientBarY:   m.ClientBarY,
		StatusText:   ctx.statusText,
		LayoutSymbol: m.LayoutSymbol,
	}

	occ := occupiedTagBits(m)
	var anyUrgentTag uint32
	for c := m.Clients; c != nil; c = c.Next {
		if c.Urgent {
			anyUrgentTag |= c.Tags
		}
	}

	for i := 0; i < NumTags; i++ {
		bit := uint32(1) << uint(i)
		occupied := occ&bit != 0
		viewed := m.TagSet[m.SelTags]&bit != 0
		if !occupied && !viewed && ctx.Config.HideInactiveTags {
			continue
		}
		scheme := ctx.Config.Schemes[SchemeNormal]
		switch {
		case anyUrgentTag&bit != 0:
			scheme = ctx.Config.Schemes[SchemeUrgent]
		case viewed:
			scheme = ctx.Config.Schemes[SchemeSelected]
		case occupied:
			scheme = ctx.Config.Schemes[SchemeVisible]
		}
		label := ""
		if i < len(ctx.Config.Tags) {
			label = ctx.Config.Tags[i]
		}
		model.Tags = append(model.Tags, TagCell{
			Label:     label,
			Scheme:    scheme,
			Occupied:  occupied,
			IsSelHome: m.Sel != nil && m.Sel.Tags&bit != 0,
		})
	}

	if m.Sel != nil {
		model.WinTitle = m.Sel.Name
		model.WinTitleFill = ctx.Config.Schemes[SchemeSelected]
	} else {
		model.WinTitleFill = ctx.Config.Schemes[SchemeNormal]
	}

	model.ClientTabs = ctx.buildClientTabs(m)
	return model
}

// buildClientTabs implements the width-fitting rule of §4.G: every
// tag-visible client gets a tab of a fixed placeholder width (titles are not
// measured); if the total exceeds the work-area width, the narrowest tabs
// keep their width while they fit and the remaining, widest tabs share the
// leftover width equally.
func (ctx *Context) buildClientTabs(m *Monitor) []ClientTab {
	var tabs []ClientTab
	for c := m.Clients; c != nil; c = c.Next {
		if !TagVisible(m, c) {
			continue
		}
		tabs = append(tabs, ClientTab{
			Client: c,
			Title:  c.Name,
			Width:  ctx.Backend.BarHeight() * 6, // placeholder width; DrawBar draws each tab at exactly this width.
			Scheme: ctx.tabScheme(m, c),
			Marked: c.Marked,
		})
	}
	if len(tabs) == 0 {
		return tabs
	}

	widths := make([]int, len(tabs))
	for i, t := range tabs {
		widths[i] = t.Width
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= m.WW {
		return tabs
	}

	sorted := append([]int(nil), widths...)
	sort.Ints(sorted)

	num := len(tabs)
	i := 0
	accumulated := 0
	for ; i < num; i++ {
		if accumulated+(num-i)*sorted[i] > m.WW {
			break
		}
		accumulated += sorted[i]
	}
	remaining := num - i
	if remaining <= 0 {
		return tabs
	}
	share := (m.WW - accumulated) / remaining
	threshold := 0
	if i < num {
		threshold = sorted[i]
	}
	for idx := range tabs {
		if tabs[idx].Width >= threshold && remaining > 0 {
			tabs[idx].Width = share
		}
	}
	return tabs
}

// tabScheme resolves the client-bar tab priority order: selected > urgent >
// minimized > visible > normal.
func (ctx *Context) tabScheme(m *Monitor, c *Client) ColorScheme {
	switch {
	case c == m.Sel:
		return ctx.Config.Schemes[SchemeSelected]
	case c.Urgent:
		return ctx.Config.Schemes[SchemeUrgent]
	case c.Minimized:
		return ctx.Config.Schemes[SchemeMinimized]
	case TagVisible(m, c):
		return ctx.Config.Schemes[SchemeVisible]
	default:
		return ctx.Config.Schemes[SchemeNormal]
	}
}

// drawBar builds m's bar model and hands it to the backend for painting.
func (ctx *Context) drawBar(m *Monitor) {
	if m.TagBarWin == 0 && m.ClientBarWin == 0 {
		return
	}
	model := ctx.buildBarModel(m)
	if m.TagBarWin != 0 {
		ctx.Backend.DrawBar(m.TagBarWin, model)
	}
	if m.ClientBarWin != 0 && m.ShowClientBar {
		ctx.Backend.DrawBar(m.ClientBarWin, model)
	}
}
