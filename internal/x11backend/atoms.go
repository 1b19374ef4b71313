package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

// wellKnownAtomNames pairs each core.WellKnownAtom with the X11 atom name
// interned for it, following taowm's initAtoms (xinit.go) extended with the
// EWMH names §6 needs for fullscreen and active-window handling.
var wellKnownAtomNames = map[core.WellKnownAtom]string{
	core.AtomWMProtocols:            "WM_PROTOCOLS",
	core.AtomWMDelete:               "WM_DELETE_WINDOW",
	core.AtomWMState:                "WM_STATE",
	core.AtomWMTakeFocus:            "WM_TAKE_FOCUS",
	core.AtomNetActiveWindow:        "_NET_ACTIVE_WINDOW",
	core.AtomNetSupported:           "_NET_SUPPORTED",
	core.AtomNetWMName:              "_NET_WM_NAME",
	core.AtomNetWMState:             "_NET_WM_STATE",
	core.AtomNetWMCheck:             "_NET_SUPPORTING_WM_CHECK",
	core.AtomNetWMFullscreen:        "_NET_WM_STATE_FULLSCREEN",
	core.AtomNetWMWindowType:        "_NET_WM_WINDOW_TYPE",
	core.AtomNetWMWindowTypeDialog:  "_NET_WM_WINDOW_TYPE_DIALOG",
	core.AtomNetClientList:          "_NET_CLIENT_LIST",
}

func (b *Backend) internAtoms() error {
	for wk, name := range wellKnownAtomNames {
		atom, err := b.internAtom(name)
		if err != nil {
			return err
		}
		b.atoms[wk] = atom
	}
	return nil
}

func (b *Backend) internAtom(name string) (xproto.Atom, error) {
	if a, ok := b.named[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(b.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	b.named[name] = reply.Atom
	return reply.Atom, nil
}

// AtomID implements core.DisplayBackend.
func (b *Backend) AtomID(a core.WellKnownAtom) core.Atom {
	return core.Atom(b.atoms[a])
}
