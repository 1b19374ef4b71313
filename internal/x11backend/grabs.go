package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

var pointerGrabMask = uint16(xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)

func (b *Backend) grabPointer(cursor xproto.Cursor) error {
	_, err := xproto.GrabPointer(b.conn, false, b.root, pointerGrabMask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, xproto.WindowNone, cursor, xproto.TimeCurrentTime).Reply()
	return err
}

func (b *Backend) GrabPointerMove() error {
	return b.grabPointer(0)
}

func (b *Backend) GrabPointerResize() error {
	return b.grabPointer(0)
}

func (b *Backend) UngrabPointer() error {
	return xproto.UngrabPointerChecked(b.conn, xproto.TimeCurrentTime).Check()
}

// GrabServer freezes all other clients' requests while KillClient forces a
// stubborn window closed, mirroring the "server grabs" note in §5.
func (b *Backend) GrabServer() error {
	return xproto.GrabServerChecked(b.conn).Check()
}

func (b *Backend) UngrabServer() error {
	return xproto.UngrabServerChecked(b.conn).Check()
}

// RegrabButtons re-establishes the click-to-focus button grabs on win: when
// focused, only the bindings' own modifier+button combos are grabbed (so
// plain clicks pass straight through to the application); when unfocused,
// button 1 is grabbed unconditionally so the first click both focuses and
// is otherwise swallowed, the same click-to-focus idiom X11 window
// managers converge on.
func (b *Backend) RegrabButtons(win core.WindowID, focused bool, bindings []core.MouseBinding) error {
	if err := xproto.UngrabButtonChecked(b.conn, xproto.ButtonIndexAny, xproto.Window(win), xproto.ModMaskAny).Check(); err != nil {
		return err
	}
	if !focused {
		return xproto.GrabButtonChecked(b.conn, false, xproto.Window(win),
			uint16(xproto.EventMaskButtonPress), xproto.GrabModeAsync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.CursorNone, xproto.ButtonIndex1, xproto.ModMaskAny).Check()
	}
	for _, mb := range bindings {
		if mb.Click != core.ClickClientWin {
			continue
		}
		err := xproto.GrabButtonChecked(b.conn, false, xproto.Window(win),
			uint16(xproto.EventMaskButtonPress), xproto.GrabModeAsync, xproto.GrabModeSync,
			xproto.WindowNone, xproto.CursorNone, byte(mb.Button), mb.Mod).Check()
		if err != nil {
			return err
		}
	}
	return nil
}
