package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

// SetActiveWindow, SetClientList and SetSupported are the three pieces of
// EWMH bookkeeping the core asks the backend to publish; grounded in
// other_examples/dominikh-gwm's ewmh.ActiveWindowSet call and
// 1broseidon-termtile's ewmh.ClientListGet/ewmh.WmWindowTypeGet read side
// of the same properties.
func (b *Backend) SetActiveWindow(win core.WindowID) error {
	return ewmh.ActiveWindowSet(b.xu, xproto.Window(win))
}

func (b *Backend) SetClientList(wins []core.WindowID) error {
	xwins := make([]xproto.Window, len(wins))
	for i, w := range wins {
		xwins[i] = xproto.Window(w)
	}
	return ewmh.ClientListSet(b.xu, xwins)
}

// SetSupported advertises the _NET_SUPPORTED atoms this window manager
// implements, translating each core.WellKnownAtom into the EWMH atom name
// xgbutil/ewmh expects.
func (b *Backend) SetSupported(atoms []core.WellKnownAtom) error {
	names := make([]string, 0, len(atoms))
	for _, a := range atoms {
		if name, ok := wellKnownAtomNames[a]; ok {
			names = append(names, name)
		}
	}
	return ewmh.SupportedSet(b.xu, names)
}
