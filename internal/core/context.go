package core

// Context is the single-threaded owner of all window-manager state (§3
// "Context"). Exactly one goroutine may call methods that mutate a Context;
// nothing in this package locks or otherwise synchronizes access to it.
type Context struct {
	Backend DisplayBackend
	Config  *Config

	Monitors *Monitor
	SelMon   *Monitor

	Running bool

	barHeight int
	statusText string

	wellKnownAtoms [numWellKnownAtoms]Atom

	// dragState holds the in-progress mouse move/resize mini-loop state
	// (§4.H); nil when the pointer is not grabbed.
	drag *dragState
}

type dragState struct {
	client       *Client
	resize       bool
	startRootX   int
	startRootY   int
	startX       int
	startY       int
	startW       int
	startH       int
}

// NewContext constructs a Context bound to backend and cfg. Callers must
// still call Bootstrap before the event loop starts (§4.J).
func NewContext(backend DisplayBackend, cfg *Config) *Context {
	return &Context{
		Backend: backend,
		Config:  cfg,
	}
}

// AtomID returns the interned Atom value for a well-known atom, resolved
// during Bootstrap.
func (ctx *Context) AtomID(a WellKnownAtom) Atom {
	return ctx.wellKnownAtoms[a]
}

// StatusText returns the most recently observed root WM_NAME, drawn in the
// status area of the tag bar (§4.G).
func (ctx *Context) StatusText() string {
	return ctx.statusText
}
