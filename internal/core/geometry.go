package core

// applySizeHints clamps and rounds a proposed client rectangle against
// ICCCM size hints and the containment rules of §4.A. It reports whether
// the result differs from c's current geometry (c.X, c.Y, c.W, c.H), and
// returns the (possibly adjusted) rectangle.
func (ctx *Context) applySizeHints(c *Client, x, y, w, h int, interact bool) (nx, ny, nw, nh int, changed bool) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if interact {
		sw, sh := ctx.Backend.ScreenSize()
		if x > sw {
			x = sw - widthWithBorder(w, c.Border)
		}
		if y > sh {
			y = sh - widthWithBorder(h, c.Border)
		}
		if x+widthWithBorder(w, c.Border) < 0 {
			x = 0
		}
		if y+widthWithBorder(h, c.Border) < 0 {
			y = 0
		}
	} else if c.Mon != nil {
		m := c.Mon
		if x > m.WX+m.WW {
			x = m.WX + m.WW - widthWithBorder(w, c.Border)
		}
		if y > m.WY+m.WH {
			y = m.WY + m.WH - widthWithBorder(h, c.Border)
		}
		if x+widthWithBorder(w, c.Border) < m.WX {
			x = m.WX
		}
		if y+widthWithBorder(h, c.Border) < m.WY {
			y = m.WY
		}
	}

	bh := ctx.barHeight
	if w < bh {
		w = bh
	}
	if h < bh {
		h = bh
	}

	if ctx.Config.ResizeHints || c.Floating || isFloatingLayout(c.Mon) {
		baseIsMin := c.BaseW == c.MinW && c.BaseH == c.MinH
		if baseIsMin {
			w -= c.BaseW
			h -= c.BaseH
		}

		if c.MaxAspect > 0 && c.MinAspect > 0 {
			fw, fh := float64(w), float64(h)
			if c.MaxAspect < fw/fh {
				w = round(fh * c.MaxAspect)
			} else if c.MinAspect < fh/fw {
				h = round(fw * c.MinAspect)
			}
		}

		if c.IncW > 0 {
			w -= w % c.IncW
		}
		if c.IncH > 0 {
			h -= h % c.IncH
		}

		w += c.BaseW
		h += c.BaseH

		if c.MinW > 0 && w < c.MinW {
			w = c.MinW
		}
		if c.MinH > 0 && h < c.MinH {
			h = c.MinH
		}
		if c.MaxW > 0 && w > c.MaxW {
			w = c.MaxW
		}
		if c.MaxH > 0 && h > c.MaxH {
			h = c.MaxH
		}
	}

	changed = x != c.X || y != c.Y || w != c.W || h != c.H
	return x, y, w, h, changed
}

func widthWithBorder(dim, bw int) int {
	return dim + 2*bw
}

func isFloatingLayout(m *Monitor) bool {
	if m == nil {
		return true
	}
	l := m.Layouts[m.SelLayout]
	return l == nil || l.Arrange == nil
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
