package core

import "time"

// WindowID is a stable backend window handle. On X11 this is an XID; the
// zero value means "no window".
type WindowID uint32

// NumTags is the number of virtual-desktop bits a client's tag mask spans.
const NumTags = 9

// TagMask is the bit-mask covering all NumTags tag bits.
const TagMask = 1<<NumTags - 1

// AllTags is the sentinel tag bitmask meaning "every tag, all at once".
const AllTags uint32 = ^uint32(0)

// WMState mirrors the ICCCM WM_STATE values the backend must set on managed
// windows.
type WMState int

const (
	WithdrawnState WMState = 0
	NormalState    WMState = 1
	IconicState    WMState = 3
)

// StackMode requests a window be placed immediately below a sibling in the
// backend's stacking order.
type StackMode int

const (
	StackAbove StackMode = iota
	StackBelow
)

// SizeHints are the ICCCM WM_NORMAL_HINTS fields the geometry solver (§4.A)
// consumes.
type SizeHints struct {
	BaseW, BaseH int
	IncW, IncH   int
	MinW, MinH   int
	MaxW, MaxH   int
	MinAspect    float64
	MaxAspect    float64
}

// WMHints are the ICCCM WM_HINTS fields that affect focus and urgency.
type WMHints struct {
	Urgent     bool
	NeverFocus bool
}

// Click identifies which region of the screen a ButtonPress landed in, used
// to resolve mouse bindings (§4.H).
type Click int

const (
	ClickTagBar Click = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
	ClickClientBar
)

// Event is the sum type of backend events the core dispatcher reacts to
// (§4.H, §6).
type Event interface{}

type ButtonPressEvent struct {
	Window  WindowID
	Root    WindowID
	Subwin  WindowID
	X, Y    int
	RootX   int
	RootY   int
	Button  int
	State   uint16
	Time    time.Time
}

type ButtonReleaseEvent struct {
	Time time.Time
}

type ClientMessageEvent struct {
	Window WindowID
	Type   Atom
	Data   [5]uint32
}

type ConfigureNotifyEvent struct {
	Window WindowID
	X, Y   int
	W, H   int
}

type ConfigureRequestEvent struct {
	Window      WindowID
	ValueMask   uint16
	X, Y        int
	W, H        int
	BorderWidth int
	Sibling     WindowID
	StackMode   StackMode
}

type DestroyNotifyEvent struct {
	Window WindowID
}

type EnterNotifyEvent struct {
	Window WindowID
	Root   WindowID
	Mode   int
	Detail int
	RootX  int
	RootY  int
	Time   time.Time
}

type ExposeEvent struct {
	Window WindowID
	Count  int
}

type FocusInEvent struct {
	Window WindowID
	Mode   int
}

type KeyPressEvent struct {
	Keycode int
	Keysym  uint32
	State   uint16
	RootX   int
	RootY   int
	Time    time.Time
}

type MappingNotifyEvent struct{}

type MapRequestEvent struct {
	Window WindowID
}

type MotionNotifyEvent struct {
	Window WindowID
	RootX  int
	RootY  int
	Time   time.Time
}

type PropertyNotifyEvent struct {
	Window WindowID
	Atom   Atom
}

type UnmapNotifyEvent struct {
	Window    WindowID
	Synthetic bool
}

// Atom is an interned backend property/type identifier.
type Atom uint32

// WellKnownAtom names the atoms the core looks up by name at startup and
// refers to afterwards by value; the backend is responsible for interning
// them and answering AtomID.
type WellKnownAtom int

const (
	AtomWMProtocols WellKnownAtom = iota
	AtomWMDelete
	AtomWMState
	AtomWMTakeFocus
	AtomNetActiveWindow
	AtomNetSupported
	AtomNetWMName
	AtomNetWMState
	AtomNetWMCheck
	AtomNetWMFullscreen
	AtomNetWMWindowType
	AtomNetWMWindowTypeDialog
	AtomNetClientList
	numWellKnownAtoms
)

// WindowAttrs is the minimal attribute set the core needs when scanning
// pre-existing windows at startup (§4.J).
type WindowAttrs struct {
	OverrideRedirect bool
	Viewable         bool
	Iconic           bool
}

// DisplayBackend is the abstract display-server binding the core consumes.
// Everything about the wire protocol, multi-head discovery, font metrics and
// pixel drawing lives behind this interface; the only implementation in this
// repository is internal/x11backend.
type DisplayBackend interface {
	// Connection lifecycle.
	Open() error
	Close() error
	NextEvent() (Event, error)
	ScreenSize() (w, h int)
	BarHeight() int

	// Root window setup.
	BecomeWindowManager() error
	// AtomID interns (or looks up) the X11 atom backing a well-known atom
	// name; called once per atom during Bootstrap.
	AtomID(a WellKnownAtom) Atom
	GrabKeys(bindings []KeyBinding, wmModMask uint16) error
	QueryScreens() ([]Rect, error)
	QueryExistingWindows() ([]WindowID, error)
	QueryPointer() (x, y int, win WindowID, err error)

	// Per-window property access.
	WindowTitle(win WindowID) string
	WindowClass(win WindowID) (class, instance string)
	GetSizeHints(win WindowID) SizeHints
	GetWMHints(win WindowID) WMHints
	GetTransientFor(win WindowID) (WindowID, bool)
	GetWindowType(win WindowID) (dialog, fullscreen bool)
	GetWMProtocols(win WindowID) (deleteWindow, takeFocus bool)
	GetAttrs(win WindowID) WindowAttrs

	// Window management primitives.
	SelectClientInput(win WindowID) error
	MoveResizeWindow(win WindowID, x, y, w, h int) error
	SetBorderWidth(win WindowID, width int) error
	SetBorderColor(win WindowID, scheme ColorScheme, selected bool) error
	MapWindow(win WindowID) error
	UnmapWindow(win WindowID) error
	RaiseWindow(win WindowID) error
	ConfigureSibling(win, sibling WindowID, mode StackMode) error
	SetWMState(win WindowID, state WMState) error
	SetInputFocus(win WindowID) error
	SendDeleteWindow(win WindowID) error
	SendTakeFocus(win WindowID) error
	KillClient(win WindowID) error
	SetFullscreenState(win WindowID, on bool) error

	// EWMH bookkeeping.
	SetActiveWindow(win WindowID) error
	SetClientList(wins []WindowID) error
	SetSupported(atoms []WellKnownAtom) error

	// Grabs, used by the mouse move/resize mini-loops (§4.H) and by
	// kill_client's dummy-error-handler window (§5 "server grabs").
	GrabPointerMove() error
	GrabPointerResize() error
	UngrabPointer() error
	GrabServer() error
	UngrabServer() error
	RegrabButtons(win WindowID, focused bool, bindings []MouseBinding) error

	// Status bar.
	DrawBar(win WindowID, model BarModel) error
	CreateBarWindow(mon int, w, h int) (WindowID, error)

	// Process management (§5 "inherit no backend handle").
	ConnectionFD() int

	// StatusText returns the current root WM_NAME, used to seed the status
	// area before the first PropertyNotify arrives.
	StatusText() string
}

// Rect is a monitor or client rectangle in root-window coordinates.
type Rect struct {
	X, Y int
	W, H int
}
