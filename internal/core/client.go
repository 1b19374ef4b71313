package core

// Client is the per-window state the core tracks (§3 "Client"). A Client
// belongs to exactly one Monitor's order-list (threaded through Next) and
// exactly one Monitor's focus-stack (threaded through SNext); both must be
// the same monitor.
type Client struct {
	Win  WindowID
	Name string

	X, Y, W, H       int
	OldX, OldY       int
	OldW, OldH       int
	Border, OldBorder int

	BaseW, BaseH int
	IncW, IncH   int
	MinW, MinH   int
	MaxW, MaxH   int
	MinAspect    float64
	MaxAspect    float64
	IsFixed      bool

	Tags uint32
	Mon  *Monitor

	Floating    bool
	WasFloating bool
	Urgent      bool
	NeverFocus  bool
	OldState    bool // fullscreen-restore snapshot of Floating, taken when Fullscreen is set
	Fullscreen  bool
	Minimized   bool
	Onscreen    bool
	Marked      bool

	Next  *Client // order-list
	SNext *Client // focus-stack
}

// refreshIsFixed recomputes IsFixed from the size hints (§3 invariant
// "IsFixed ⇔ minw==maxw>0 ∧ minh==maxh>0").
func (c *Client) refreshIsFixed() {
	c.IsFixed = c.MaxW > 0 && c.MaxW == c.MinW && c.MaxH > 0 && c.MaxH == c.MinH
}

// TagVisible reports whether c's tags intersect m's currently viewed
// tagset.
func TagVisible(m *Monitor, c *Client) bool {
	return c.Tags&m.TagSet[m.SelTags] != 0
}

// attach inserts c into m's order-list per the three-band discipline of
// §4.B: floating clients go to the head unconditionally; non-floating
// clients are inserted so that the list always reads
// floating* ∥ (marked∧tiled)* ∥ tiled*, with the newcomer at the head of
// its own band.
func attach(m *Monitor, c *Client) {
	c.Mon = m

	if c.Floating {
		c.Next = m.Clients
		m.Clients = c
		return
	}

	// Find the first client that is not eligible to precede c: the first
	// non-floating, non-marked client when c is not marked (skipping past
	// both the floating and marked bands), or the first non-floating client
	// when c is marked (landing at the head of the marked band, ahead of
	// any existing marked clients).
	var prev *Client
	cur := m.Clients
	for cur != nil {
		if cur.Floating {
			prev, cur = cur, cur.Next
			continue
		}
		if !c.Marked && cur.Marked {
			prev, cur = cur, cur.Next
			continue
		}
		break
	}
	if prev == nil {
		c.Next = m.Clients
		m.Clients = c
		return
	}
	c.Next = prev.Next
	prev.Next = c
}

// detach removes c from whichever monitor's order-list it is linked into.
func detach(c *Client) {
	m := c.Mon
	if m == nil {
		return
	}
	if m.Clients == c {
		m.Clients = c.Next
		c.Next = nil
		return
	}
	for p := m.Clients; p != nil; p = p.Next {
		if p.Next == c {
			p.Next = c.Next
			c.Next = nil
			return
		}
	}
}

// stackAttach pushes c onto the head of m's focus-stack (§4.B, LIFO).
func stackAttach(m *Monitor, c *Client) {
	c.SNext = m.Stack
	m.Stack = c
}

// stackDetach removes c from m's focus-stack. If c was m.Sel, Sel is
// replaced with the topmost tag-visible, non-minimized entry remaining in
// the stack (or nil).
func stackDetach(m *Monitor, c *Client) {
	if m.Stack == c {
		m.Stack = c.SNext
	} else {
		for p := m.Stack; p != nil; p = p.SNext {
			if p.SNext == c {
				p.SNext = c.SNext
				break
			}
		}
	}
	c.SNext = nil

	if m.Sel == c {
		m.Sel = nil
		for p := m.Stack; p != nil; p = p.SNext {
			if TagVisible(m, p) && !p.Minimized {
				m.Sel = p
				break
			}
		}
	}
}

// pushLeft and pushRight shift a non-floating client one step within the
// order-list (§4.B), wrapping: push-left past the first tiled client moves
// to the end; push-right past the last tiled client moves to the front.
func pushLeft(m *Monitor, c *Client) {
	if c.Floating {
		return
	}
	if prev := prevTiled(m, c); prev != nil {
		detach(c)
		insertBefore(m, c, prev)
		return
	}
	last := lastClient(m)
	if last == c {
		return
	}
	detach(c)
	c.Next = nil
	if last == nil {
		m.Clients = c
	} else {
		last.Next = c
	}
}

func pushRight(m *Monitor, c *Client) {
	if c.Floating {
		return
	}
	if next := nextTiled(m, c.Next); next != nil {
		detach(c)
		insertAfter(c, next)
		return
	}
	detach(c)
	attach(m, c)
}

func lastClient(m *Monitor) *Client {
	c := m.Clients
	if c == nil {
		return nil
	}
	for c.Next != nil {
		c = c.Next
	}
	return c
}

// insertBefore splices the already-detached c into m's order-list
// immediately ahead of target, wherever target currently sits.
func insertBefore(m *Monitor, c *Client, target *Client) {
	c.Next = target
	if m.Clients == target {
		m.Clients = c
		return
	}
	for p := m.Clients; p != nil; p = p.Next {
		if p.Next == target {
			p.Next = c
			return
		}
	}
}

// insertAfter splices the already-detached c into the order-list
// immediately behind target.
func insertAfter(c *Client, target *Client) {
	c.Next = target.Next
	target.Next = c
}

// nextTiled yields the first client at-or-after c that is non-floating,
// tag-visible and not minimized (§4.B iterator).
func nextTiled(m *Monitor, c *Client) *Client {
	for ; c != nil; c = c.Next {
		if !c.Floating && TagVisible(m, c) && !c.Minimized {
			return c
		}
	}
	return nil
}

// prevTiled yields the last such client strictly before c.
func prevTiled(m *Monitor, c *Client) *Client {
	var found *Client
	for p := m.Clients; p != nil && p != c; p = p.Next {
		if !p.Floating && TagVisible(m, p) && !p.Minimized {
			found = p
		}
	}
	return found
}

// countTiled returns the number of tag-visible, non-floating,
// non-minimized clients on m (the N of §4.D).
func countTiled(m *Monitor) int {
	n := 0
	for c := nextTiled(m, m.Clients); c != nil; c = nextTiled(m, c.Next) {
		n++
	}
	return n
}
