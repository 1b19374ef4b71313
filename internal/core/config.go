package core

// ColorScheme is one (foreground, background, border) triple. The backend
// interprets the pixel values; the core only ever picks which scheme
// applies (§4.G, §6).
type ColorScheme struct {
	Fg     uint32
	Bg     uint32
	Border uint32
}

// SchemeName indexes the five fixed color schemes (§6 "Configuration").
type SchemeName int

const (
	SchemeNormal SchemeName = iota
	SchemeSelected
	SchemeVisible
	SchemeMinimized
	SchemeUrgent
	numSchemes
)

// ClientBarMode selects when the client (tab) bar is drawn (§6).
type ClientBarMode int

const (
	ClientBarNever ClientBarMode = iota
	ClientBarAuto
	ClientBarAlways

	// ClientBarModeCycle is the sentinel accepted by SetClientBarMode that
	// advances to the next mode instead of setting one directly. Resolves
	// the sign-inconsistency open question in SPEC_FULL.md §9/§10.6.
	ClientBarModeCycle ClientBarMode = -1
)

// Layout is one arrangement strategy (§4.D). Arrange is nil for the
// floating "layout", which leaves client rectangles untouched; every size
// hint decision in §4.A treats a nil Arrange the same as a floating client.
type Layout struct {
	Symbol  string
	Arrange func(ctx *Context, m *Monitor)
}

// Rule assigns initial tags, floating state and monitor placement to newly
// managed clients (§6 "Configuration"). Empty match fields are wildcards.
type Rule struct {
	Class      string
	Instance   string
	Title      string
	Tags       uint32
	IsFloating bool
	Monitor    int // -1 means "no preference"
}

// KeyBinding maps a cleaned modifier mask and keysym to a command.
type KeyBinding struct {
	Mod    uint16
	Keysym uint32
	Cmd    CommandFunc
	Arg    interface{}
}

// MouseBinding maps a click region, modifier mask and button to a command.
type MouseBinding struct {
	Click  Click
	Mod    uint16
	Button int
	Cmd    CommandFunc
	Arg    interface{}
}

// Config is the full set of immutable startup inputs (§6). It is built by
// internal/config and never mutated after Context creation.
type Config struct {
	Tags [NumTags]string

	Schemes [numSchemes]ColorScheme

	BorderWidthTiled    int
	BorderWidthFloating int
	SnapPixels          int

	ShowTagBar        bool
	TagsOnTop         bool
	FollowNewWindows  bool
	ViewTagToggles    bool
	HideInactiveTags  bool
	ResizeHints       bool
	HideBuriedWindows bool

	ClientBarModeDefault ClientBarMode

	MarkedWidth float64 // default master-area fraction, in (0.05, 0.95)

	Rules []Rule

	// Layouts is the ordered list of available layouts; DefLayouts[0] is
	// the all-tag default and DefLayouts[1..NumTags] are per-tag defaults,
	// each a pair (primary, secondary) layout index into Layouts.
	Layouts    []*Layout
	DefLayouts [NumTags + 1][2]int

	KeyBindings   []KeyBinding
	MouseBindings []MouseBinding
}
