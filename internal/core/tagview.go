package core

import "math/bits"

// ViewTag applies a tag-view transition on ctx.SelMon per §4.F.
func (ctx *Context) ViewTag(tags uint32) {
	m := ctx.SelMon
	masked := tags & TagMask

	switch {
	case masked != 0 && masked != m.TagSet[m.SelTags]:
		storePertag(m)
		m.SelTags ^= 1
		m.TagSet[m.SelTags] = masked
		loadPertag(m)
	case ctx.Config.ViewTagToggles && masked == m.TagSet[m.SelTags]:
		storePertag(m)
		m.SelTags ^= 1
		loadPertag(m)
	default:
		return
	}

	ctx.focus(nil)
	ctx.Arrange(m)
}

// ToggleTagView XORs bits into the current tagset; a result of zero is
// ignored so a view can never go empty.
func (ctx *Context) ToggleTagView(tags uint32) {
	m := ctx.SelMon
	newTags := m.TagSet[m.SelTags] ^ (tags & TagMask)
	if newTags == 0 {
		return
	}
	storePertag(m)
	m.TagSet[m.SelTags] = newTags
	loadPertag(m)
	ctx.focus(nil)
	ctx.Arrange(m)
}

// occupiedTagBits returns the bitmask of tags carried by at least one
// client on m.
func occupiedTagBits(m *Monitor) uint32 {
	var occ uint32
	for c := m.Clients; c != nil; c = c.Next {
		occ |= c.Tags & TagMask
	}
	return occ
}

// CycleView steps the viewed single tag by dir (+1/-1) among tags occupied
// by at least one client on ctx.SelMon, wrapping modulo NumTags. No-op if
// no client is tagged anywhere on the monitor.
func (ctx *Context) CycleView(dir int) {
	occ := occupiedTagBits(ctx.SelMon)
	if occ == 0 {
		return
	}
	cur := singleBitIndex(ctx.SelMon.TagSet[ctx.SelMon.SelTags])
	if cur < 0 {
		cur = 0
	}
	i := cur
	for step := 0; step < NumTags; step++ {
		i = ((i+dir)%NumTags + NumTags) % NumTags
		if occ&(1<<uint(i)) != 0 {
			ctx.ViewTag(1 << uint(i))
			return
		}
	}
}

// ShiftTag moves the selected client to the next/previous occupied tag in
// direction dir, mirroring CycleView for a single client.
func (ctx *Context) ShiftTag(dir int) {
	m := ctx.SelMon
	if m.Sel == nil {
		return
	}
	occ := occupiedTagBits(m)
	if occ == 0 {
		return
	}
	cur := singleBitIndex(m.Sel.Tags)
	if cur < 0 {
		cur = 0
	}
	i := cur
	for step := 0; step < NumTags; step++ {
		i = ((i+dir)%NumTags + NumTags) % NumTags
		if occ&(1<<uint(i)) != 0 {
			ctx.TagClient(1 << uint(i))
			return
		}
	}
}

// TagClient replaces the selected client's tags.
func (ctx *Context) TagClient(tags uint32) {
	m := ctx.SelMon
	if m.Sel == nil {
		return
	}
	masked := tags & TagMask
	if masked == 0 {
		return
	}
	m.Sel.Tags = masked
	ctx.focus(nil)
	ctx.Arrange(m)
}

// ToggleTag XORs bits into the selected client's tags; ignored if the
// result would be empty.
func (ctx *Context) ToggleTag(tags uint32) {
	m := ctx.SelMon
	if m.Sel == nil {
		return
	}
	newTags := m.Sel.Tags ^ (tags & TagMask)
	if newTags == 0 {
		return
	}
	m.Sel.Tags = newTags
	ctx.focus(nil)
	ctx.Arrange(m)
}

func singleBitIndex(mask uint32) int {
	if mask == 0 || mask&(mask-1) != 0 {
		return -1
	}
	return bits.TrailingZeros32(mask)
}
