package core

// Pertag holds the per-tag persisted state of §4.C: each of the NumTags
// tags, plus slot 0 for "all tags", remembers its own layout pair, marked
// width and bar visibility independently of whichever tag is currently
// viewed. A Monitor swaps its live fields in and out of the slot matching
// the newly-viewed tag on every view-tag transition.
type Pertag struct {
	CurTag  int
	PrevTag int

	SelLayouts  [NumTags + 1]int
	Layouts     [NumTags + 1][2]*Layout
	MarkedWidth [NumTags + 1]float64

	ShowTagBar    [NumTags + 1]bool
	ShowClientBar [NumTags + 1]bool
}

// newPertag seeds every slot from cfg and m's just-initialized defaults:
// slot i takes its layout pair from cfg.DefLayouts[i], and the remaining
// fields repeat createMonitor's choices rather than zero values.
func newPertag(cfg *Config, m *Monitor) *Pertag {
	pt := &Pertag{CurTag: 0, PrevTag: 0}
	for i := 0; i <= NumTags; i++ {
		pt.SelLayouts[i] = m.SelLayout
		pt.Layouts[i][0] = layoutAt(cfg, cfg.DefLayouts[i][0])
		pt.Layouts[i][1] = layoutAt(cfg, cfg.DefLayouts[i][1])
		pt.MarkedWidth[i] = m.MarkedWidth
		pt.ShowTagBar[i] = m.ShowTagBar
		pt.ShowClientBar[i] = cfg.ClientBarModeDefault != ClientBarNever
		_ = i
	}
	return pt
}

// tagSlot maps a view tagset to a Pertag slot index: 0 when the tagset is
// anything other than a single bit (multi-tag view or AllTags), else
// 1+bitindex.
func tagSlot(tagset uint32) int {
	if tagset == 0 {
		return 0
	}
	bit := -1
	for i := 0; i < NumTags; i++ {
		if tagset&(1<<uint(i)) != 0 {
			if bit != -1 {
				return 0 // more than one bit set
			}
			bit = i
		}
	}
	if bit == -1 {
		return 0
	}
	return bit + 1
}

// storePertag saves m's live layout/marked-width/bar fields into the slot
// of the currently viewed tagset (Pertag.CurTag); it is called just before
// the tagset changes and after commands that edit one of those fields.
func storePertag(m *Monitor) {
	slot := m.Pertag.CurTag
	m.Pertag.SelLayouts[slot] = m.SelLayout
	m.Pertag.Layouts[slot][m.SelLayout] = m.Layouts[m.SelLayout]
	m.Pertag.MarkedWidth[slot] = m.MarkedWidth
	m.Pertag.ShowTagBar[slot] = m.ShowTagBar
	m.Pertag.ShowClientBar[slot] = m.ShowClientBar
}

// loadPertag restores m's live fields from the slot matching m's
// newly-set tagset, called just after the tagset changes.
func loadPertag(m *Monitor) {
	slot := tagSlot(m.TagSet[m.SelTags])
	m.Pertag.PrevTag = m.Pertag.CurTag
	m.Pertag.CurTag = slot

	m.SelLayout = m.Pertag.SelLayouts[slot]
	m.Layouts[0] = m.Pertag.Layouts[slot][0]
	m.Layouts[1] = m.Pertag.Layouts[slot][1]
	m.MarkedWidth = m.Pertag.MarkedWidth[slot]
	m.ShowTagBar = m.Pertag.ShowTagBar[slot]
	m.ShowClientBar = m.Pertag.ShowClientBar[slot]
	if m.Layouts[m.SelLayout] != nil {
		m.LayoutSymbol = m.Layouts[m.SelLayout].Symbol
	}
}
