package x11backend

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

// WindowTitle prefers _NET_WM_NAME (UTF8_STRING) and falls back to the
// ICCCM WM_NAME, the same fallback order taowm's C ancestor used before
// EWMH.
func (b *Backend) WindowTitle(win core.WindowID) string {
	if s, ok := b.textProperty(xproto.Window(win), "_NET_WM_NAME"); ok {
		return s
	}
	if s, ok := b.textProperty(xproto.Window(win), "WM_NAME"); ok {
		return s
	}
	return ""
}

func (b *Backend) textProperty(win xproto.Window, atomName string) (string, bool) {
	atom, err := b.internAtom(atomName)
	if err != nil {
		return "", false
	}
	reply, err := xproto.GetProperty(b.conn, false, win, atom, xproto.GetPropertyTypeAny, 0, 1<<16).Reply()
	if err != nil || reply.ValueLen == 0 {
		return "", false
	}
	return string(reply.Value), true
}

func (b *Backend) WindowClass(win core.WindowID) (string, string) {
	atom, err := b.internAtom("WM_CLASS")
	if err != nil {
		return "", ""
	}
	reply, err := xproto.GetProperty(b.conn, false, xproto.Window(win), atom, xproto.GetPropertyTypeAny, 0, 1<<16).Reply()
	if err != nil || reply.ValueLen == 0 {
		return "", ""
	}
	parts := strings.Split(string(reply.Value), "\x00")
	instance, class := "", ""
	if len(parts) > 0 {
		instance = parts[0]
	}
	if len(parts) > 1 {
		class = parts[1]
	}
	return class, instance
}

// GetSizeHints reads WM_NORMAL_HINTS. The property is 18 CARD32 fields per
// ICCCM 4.1.2.3; only the fields the size-hint solver (§4.A) consumes are
// decoded.
func (b *Backend) GetSizeHints(win core.WindowID) core.SizeHints {
	var hints core.SizeHints
	atom, err := b.internAtom("WM_NORMAL_HINTS")
	if err != nil {
		return hints
	}
	reply, err := xproto.GetProperty(b.conn, false, xproto.Window(win), atom, xproto.AtomWmSizeHints, 0, 18).Reply()
	if err != nil || reply.ValueLen < 18 {
		return hints
	}
	v := decodeCard32s(reply.Value)
	flags := v[0]
	const (
		flagPMinSize   = 1 << 4
		flagPMaxSize   = 1 << 5
		flagPResizeInc = 1 << 6
		flagPAspect    = 1 << 7
		flagPBaseSize  = 1 << 8
	)
	if flags&flagPMinSize != 0 {
		hints.MinW, hints.MinH = int(int32(v[5])), int(int32(v[6]))
	}
	if flags&flagPMaxSize != 0 {
		hints.MaxW, hints.MaxH = int(int32(v[7])), int(int32(v[8]))
	}
	if flags&flagPResizeInc != 0 {
		hints.IncW, hints.IncH = int(int32(v[9])), int(int32(v[10]))
	}
	if flags&flagPAspect != 0 && v[11] != 0 && v[14] != 0 {
		hints.MinAspect = float64(int32(v[12])) / float64(int32(v[11]))
		hints.MaxAspect = float64(int32(v[13])) / float64(int32(v[14]))
	}
	if flags&flagPBaseSize != 0 {
		hints.BaseW, hints.BaseH = int(int32(v[15])), int(int32(v[16]))
	} else if flags&flagPMinSize != 0 {
		hints.BaseW, hints.BaseH = hints.MinW, hints.MinH
	}
	return hints
}

func decodeCard32s(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return out
}

// GetWMHints reads WM_HINTS for the urgency and input-model bits ICCCM
// 4.1.2.4 defines.
func (b *Backend) GetWMHints(win core.WindowID) core.WMHints {
	var wh core.WMHints
	atom, err := b.internAtom("WM_HINTS")
	if err != nil {
		return wh
	}
	reply, err := xproto.GetProperty(b.conn, false, xproto.Window(win), atom, xproto.AtomWmHints, 0, 9).Reply()
	if err != nil || reply.ValueLen < 1 {
		return wh
	}
	v := decodeCard32s(reply.Value)
	const (
		flagInputHint   = 1 << 0
		flagUrgency     = 1 << 8
	)
	flags := v[0]
	wh.Urgent = flags&flagUrgency != 0
	if flags&flagInputHint != 0 && len(v) > 1 {
		wh.NeverFocus = v[1] == 0
	}
	return wh
}

func (b *Backend) GetTransientFor(win core.WindowID) (core.WindowID, bool) {
	atom, err := b.internAtom("WM_TRANSIENT_FOR")
	if err != nil {
		return 0, false
	}
	reply, err := xproto.GetProperty(b.conn, false, xproto.Window(win), atom, xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply.ValueLen == 0 {
		return 0, false
	}
	v := decodeCard32s(reply.Value)
	if len(v) == 0 || v[0] == 0 {
		return 0, false
	}
	return core.WindowID(v[0]), true
}

// GetWindowType reports whether win is a dialog and/or currently
// fullscreen via _NET_WM_WINDOW_TYPE / _NET_WM_STATE.
func (b *Backend) GetWindowType(win core.WindowID) (dialog, fullscreen bool) {
	typeAtom, _ := b.internAtom("_NET_WM_WINDOW_TYPE")
	dialogAtom, _ := b.internAtom("_NET_WM_WINDOW_TYPE_DIALOG")
	if types, ok := b.atomListProperty(xproto.Window(win), typeAtom); ok {
		for _, t := range types {
			if t == dialogAtom {
				dialog = true
			}
		}
	}
	stateAtom, _ := b.internAtom("_NET_WM_STATE")
	fsAtom, _ := b.internAtom("_NET_WM_STATE_FULLSCREEN")
	if states, ok := b.atomListProperty(xproto.Window(win), stateAtom); ok {
		for _, s := range states {
			if s == fsAtom {
				fullscreen = true
			}
		}
	}
	return dialog, fullscreen
}

func (b *Backend) atomListProperty(win xproto.Window, atom xproto.Atom) ([]xproto.Atom, bool) {
	if atom == 0 {
		return nil, false
	}
	reply, err := xproto.GetProperty(b.conn, false, win, atom, xproto.AtomAtom, 0, 64).Reply()
	if err != nil || reply.ValueLen == 0 {
		return nil, false
	}
	v := decodeCard32s(reply.Value)
	out := make([]xproto.Atom, len(v))
	for i, x := range v {
		out[i] = xproto.Atom(x)
	}
	return out, true
}

// GetWMProtocols reports whether win advertises WM_DELETE_WINDOW and/or
// WM_TAKE_FOCUS in its WM_PROTOCOLS list (§8 scenario 6).
func (b *Backend) GetWMProtocols(win core.WindowID) (deleteWindow, takeFocus bool) {
	protoAtom, _ := b.internAtom("WM_PROTOCOLS")
	deleteAtom, _ := b.internAtom("WM_DELETE_WINDOW")
	takeFocusAtom, _ := b.internAtom("WM_TAKE_FOCUS")
	protos, ok := b.atomListProperty(xproto.Window(win), protoAtom)
	if !ok {
		return false, false
	}
	for _, p := range protos {
		if p == deleteAtom {
			deleteWindow = true
		}
		if p == takeFocusAtom {
			takeFocus = true
		}
	}
	return deleteWindow, takeFocus
}

func (b *Backend) GetAttrs(win core.WindowID) core.WindowAttrs {
	reply, err := xproto.GetWindowAttributes(b.conn, xproto.Window(win)).Reply()
	if err != nil {
		return core.WindowAttrs{}
	}
	iconic := false
	if reply.MapState == xproto.MapStateUnmapped {
		if atom, err := b.internAtom("WM_STATE"); err == nil {
			p, err := xproto.GetProperty(b.conn, false, xproto.Window(win), atom, atom, 0, 2).Reply()
			if err == nil && p.ValueLen > 0 {
				iconic = decodeCard32s(p.Value)[0] == uint32(core.IconicState)
			}
		}
	}
	return core.WindowAttrs{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
		Iconic:           iconic,
	}
}
