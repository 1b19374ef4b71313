package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

func (b *Backend) SelectClientInput(win core.WindowID) error {
	return xproto.ChangeWindowAttributesChecked(b.conn, xproto.Window(win), xproto.CwEventMask, []uint32{
		xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange | xproto.EventMaskPropertyChange |
			xproto.EventMaskStructureNotify,
	}).Check()
}

func (b *Backend) MoveResizeWindow(win core.WindowID, x, y, w, h int) error {
	return xproto.ConfigureWindowChecked(b.conn, xproto.Window(win),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(x)), uint32(int32(y)), uint32(w), uint32(h)}).Check()
}

func (b *Backend) SetBorderWidth(win core.WindowID, width int) error {
	return xproto.ConfigureWindowChecked(b.conn, xproto.Window(win), xproto.ConfigWindowBorderWidth, []uint32{uint32(width)}).Check()
}

func (b *Backend) SetBorderColor(win core.WindowID, scheme core.ColorScheme, selected bool) error {
	pixel := scheme.Border
	return xproto.ChangeWindowAttributesChecked(b.conn, xproto.Window(win), xproto.CwBorderPixel, []uint32{pixel}).Check()
}

func (b *Backend) MapWindow(win core.WindowID) error {
	return xproto.MapWindowChecked(b.conn, xproto.Window(win)).Check()
}

func (b *Backend) UnmapWindow(win core.WindowID) error {
	return xproto.UnmapWindowChecked(b.conn, xproto.Window(win)).Check()
}

func (b *Backend) RaiseWindow(win core.WindowID) error {
	return xproto.ConfigureWindowChecked(b.conn, xproto.Window(win), xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove}).Check()
}

func (b *Backend) ConfigureSibling(win, sibling core.WindowID, mode core.StackMode) error {
	m := uint32(xproto.StackModeAbove)
	if mode == core.StackBelow {
		m = xproto.StackModeBelow
	}
	mask := uint16(xproto.ConfigWindowStackMode)
	values := []uint32{m}
	if sibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = []uint32{uint32(sibling), m}
	}
	return xproto.ConfigureWindowChecked(b.conn, xproto.Window(win), mask, values).Check()
}

// SetWMState writes the ICCCM WM_STATE property. Every state is written the
// same way, WithdrawnState included (core.Unmanage sets it on a window that
// outlives its management); the property is never deleted.
func (b *Backend) SetWMState(win core.WindowID, state core.WMState) error {
	atom, err := b.internAtom("WM_STATE")
	if err != nil {
		return err
	}
	data := []byte{
		byte(state), 0, 0, 0,
		0, 0, 0, 0,
	}
	return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, xproto.Window(win), atom, atom, 32, 2, data).Check()
}

func (b *Backend) SetInputFocus(win core.WindowID) error {
	return xproto.SetInputFocusChecked(b.conn, xproto.InputFocusPointerRoot, xproto.Window(win), xproto.TimeCurrentTime).Check()
}

func (b *Backend) sendProtocolMessage(win core.WindowID, protocol core.Atom) error {
	protoAtom, err := b.internAtom("WM_PROTOCOLS")
	if err != nil {
		return err
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(win),
		Type:   protoAtom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(protocol), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(b.conn, false, xproto.Window(win), xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

func (b *Backend) SendDeleteWindow(win core.WindowID) error {
	atom, err := b.internAtom("WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	return b.sendProtocolMessage(win, core.Atom(atom))
}

func (b *Backend) SendTakeFocus(win core.WindowID) error {
	atom, err := b.internAtom("WM_TAKE_FOCUS")
	if err != nil {
		return err
	}
	return b.sendProtocolMessage(win, core.Atom(atom))
}

func (b *Backend) KillClient(win core.WindowID) error {
	return xproto.KillClientChecked(b.conn, uint32(win)).Check()
}

func (b *Backend) SetFullscreenState(win core.WindowID, on bool) error {
	atom, err := b.internAtom("_NET_WM_STATE")
	if err != nil {
		return err
	}
	fsAtom, err := b.internAtom("_NET_WM_STATE_FULLSCREEN")
	if err != nil {
		return err
	}
	if !on {
		return xproto.DeletePropertyChecked(b.conn, xproto.Window(win), atom).Check()
	}
	data := []byte{
		byte(fsAtom), byte(fsAtom >> 8), byte(fsAtom >> 16), byte(fsAtom >> 24),
	}
	return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, xproto.Window(win), atom, xproto.AtomAtom, 32, 1, data).Check()
}
