// Package x11backend is the only implementation of core.DisplayBackend in
// this repository. It speaks the X11 protocol directly through
// github.com/BurntSushi/xgb/xproto for the WM's own event loop (grounded in
// taowm's main.go/xinit.go, which the connection lifecycle and root-window
// setup below follow closely) and reaches for
// github.com/BurntSushi/xgbutil/ewmh for the EWMH property bookkeeping that
// dwm-style window managers need (grounded in 1broseidon-termtile's
// internal/x11 package and other_examples/dominikh-gwm's use of ewmh/icccm).
package x11backend

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

// Backend is the concrete core.DisplayBackend. Every exported method here
// implements one method of that interface; see backend.go in internal/core
// for the contract.
type Backend struct {
	conn *xgb.Conn
	xu   *xgbutil.XUtil // shares conn's connection; only used for ewmh calls
	root xproto.Window
	screen *xproto.ScreenInfo

	barHeight int
	fontID    xproto.Font
	gc        xproto.Gcontext

	atoms map[core.WellKnownAtom]xproto.Atom
	named map[string]xproto.Atom

	keysyms       [256][2]xproto.Keysym
	desktopWindow xproto.Window

	statusText string
}

// New constructs an unconnected Backend; call Open before use.
func New() *Backend {
	return &Backend{
		atoms: map[core.WellKnownAtom]xproto.Atom{},
		named: map[string]xproto.Atom{},
	}
}

func (b *Backend) Open() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	b.conn = conn

	if err := xinerama.Init(conn); err != nil {
		return fmt.Errorf("init xinerama: %w", err)
	}

	setup := xproto.Setup(conn)
	if len(setup.Roots) != 1 {
		return fmt.Errorf("unsupported number of X screens: %d", len(setup.Roots))
	}
	b.screen = &setup.Roots[0]
	b.root = b.screen.Root

	xu, err := xgbutil.NewConnXgb(conn)
	if err != nil {
		return fmt.Errorf("wrap connection for ewmh: %w", err)
	}
	b.xu = xu

	b.barHeight = 20 // one text line plus padding; refined once a font is loaded
	if err := b.initFont(); err != nil {
		return fmt.Errorf("init font: %w", err)
	}
	if err := b.initKeyboardMapping(); err != nil {
		return fmt.Errorf("init keyboard mapping: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	if b.conn != nil {
		b.conn.Close()
	}
	return nil
}

func (b *Backend) ScreenSize() (int, int) {
	return int(b.screen.WidthInPixels), int(b.screen.HeightInPixels)
}

func (b *Backend) BarHeight() int {
	return b.barHeight
}

func (b *Backend) StatusText() string {
	s, _ := b.textProperty(b.root, "WM_NAME")
	return s
}

// ConnectionFD exists for parity with the interface but is not needed in
// practice: Go opens the X connection's socket close-on-exec by default, so
// core.CmdSpawn's children never inherit it regardless of what this
// returns (unlike the C source, which had to close(ConnectionNumber(dpy))
// explicitly after fork).
func (b *Backend) ConnectionFD() int {
	return -1
}

// BecomeWindowManager selects SubstructureRedirect on the root window; a
// second window manager already running this makes the request fail with
// an AccessError, exactly as taowm's becomeTheWM checks for (xinit.go).
func (b *Backend) BecomeWindowManager() error {
	err := xproto.ChangeWindowAttributesChecked(b.conn, b.root, xproto.CwEventMask, []uint32{
		xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress |
			xproto.EventMaskPointerMotion |
			xproto.EventMaskStructureNotify |
			xproto.EventMaskPropertyChange,
	}).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return fmt.Errorf("another window manager is already running")
		}
		return err
	}
	return b.internAtoms()
}

// NextEvent blocks for the next X event and translates it into a
// core.Event, following the case-by-case translation taowm's main event
// loop does inline (main.go).
func (b *Backend) NextEvent() (core.Event, error) {
	xev, xerr := b.conn.WaitForEvent()
	if xerr != nil {
		return nil, xerr
	}
	if xev == nil {
		return nil, fmt.Errorf("connection closed")
	}
	return b.translateEvent(xev), nil
}

func (b *Backend) translateEvent(xev xgb.Event) core.Event {
	now := time.Now()
	switch e := xev.(type) {
	case xproto.ButtonPressEvent:
		return core.ButtonPressEvent{
			Window: core.WindowID(e.Event), Root: core.WindowID(e.Root),
			Subwin: core.WindowID(e.Child), X: int(e.EventX), Y: int(e.EventY),
			RootX: int(e.RootX), RootY: int(e.RootY), Button: int(e.Detail),
			State: e.State, Time: now,
		}
	case xproto.ClientMessageEvent:
		data := e.Data.Data32
		var arr [5]uint32
		copy(arr[:], data)
		return core.ClientMessageEvent{Window: core.WindowID(e.Window), Type: core.Atom(e.Type), Data: arr}
	case xproto.ConfigureNotifyEvent:
		return core.ConfigureNotifyEvent{Window: core.WindowID(e.Window), X: int(e.X), Y: int(e.Y), W: int(e.Width), H: int(e.Height)}
	case xproto.ConfigureRequestEvent:
		return core.ConfigureRequestEvent{
			Window: core.WindowID(e.Window), ValueMask: e.ValueMask,
			X: int(e.X), Y: int(e.Y), W: int(e.Width), H: int(e.Height),
			BorderWidth: int(e.BorderWidth), Sibling: core.WindowID(e.Sibling),
			StackMode: translateStackMode(e.StackMode),
		}
	case xproto.DestroyNotifyEvent:
		return core.DestroyNotifyEvent{Window: core.WindowID(e.Window)}
	case xproto.EnterNotifyEvent:
		return core.EnterNotifyEvent{
			Window: core.WindowID(e.Event), Root: core.WindowID(e.Root),
			Mode: int(e.Mode), Detail: int(e.Detail), RootX: int(e.RootX), RootY: int(e.RootY), Time: now,
		}
	case xproto.ExposeEvent:
		return core.ExposeEvent{Window: core.WindowID(e.Window), Count: int(e.Count)}
	case xproto.FocusInEvent:
		return core.FocusInEvent{Window: core.WindowID(e.Event), Mode: int(e.Mode)}
	case xproto.KeyPressEvent:
		keysym := b.keysymFor(e.Detail, e.State)
		return core.KeyPressEvent{Keycode: int(e.Detail), Keysym: keysym, State: e.State, RootX: int(e.RootX), RootY: int(e.RootY), Time: now}
	case xproto.MappingNotifyEvent:
		b.initKeyboardMapping()
		return core.MappingNotifyEvent{}
	case xproto.MapRequestEvent:
		return core.MapRequestEvent{Window: core.WindowID(e.Window)}
	case xproto.MotionNotifyEvent:
		return core.MotionNotifyEvent{Window: core.WindowID(e.Event), RootX: int(e.RootX), RootY: int(e.RootY), Time: now}
	case xproto.PropertyNotifyEvent:
		return core.PropertyNotifyEvent{Window: core.WindowID(e.Window), Atom: core.Atom(e.Atom)}
	case xproto.UnmapNotifyEvent:
		return core.UnmapNotifyEvent{Window: core.WindowID(e.Window), Synthetic: e.Event != e.Window}
	default:
		return nil
	}
}

func translateStackMode(m byte) core.StackMode {
	if m == xproto.StackModeBelow {
		return core.StackBelow
	}
	return core.StackAbove
}

// QueryScreens reports one Rect per Xinerama head, falling back to a single
// screen-sized Rect when Xinerama has nothing to say (taowm's
// initScreens).
func (b *Backend) QueryScreens() ([]core.Rect, error) {
	reply, err := xinerama.QueryScreens(b.conn).Reply()
	if err != nil {
		return nil, err
	}
	if len(reply.ScreenInfo) == 0 {
		sw, sh := b.ScreenSize()
		return []core.Rect{{X: 0, Y: 0, W: sw, H: sh}}, nil
	}
	rects := make([]core.Rect, len(reply.ScreenInfo))
	for i, si := range reply.ScreenInfo {
		rects[i] = core.Rect{X: int(si.XOrg), Y: int(si.YOrg), W: int(si.Width), H: int(si.Height)}
	}
	return rects, nil
}

func (b *Backend) QueryExistingWindows() ([]core.WindowID, error) {
	tree, err := xproto.QueryTree(b.conn, b.root).Reply()
	if err != nil {
		return nil, err
	}
	wins := make([]core.WindowID, 0, len(tree.Children))
	for _, c := range tree.Children {
		if xproto.Window(c) == b.desktopWindow {
			continue
		}
		wins = append(wins, core.WindowID(c))
	}
	return wins, nil
}

func (b *Backend) QueryPointer() (int, int, core.WindowID, error) {
	reply, err := xproto.QueryPointer(b.conn, b.root).Reply()
	if err != nil {
		return 0, 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), core.WindowID(reply.Child), nil
}

