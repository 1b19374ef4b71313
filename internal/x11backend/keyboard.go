package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

const (
	keyLo = 8
	keyHi = 255
)

// initKeyboardMapping caches the keycode->keysym table, mirroring taowm's
// initKeyboardMapping (xinit.go); it is re-run on every MappingNotify.
func (b *Backend) initKeyboardMapping() error {
	reply, err := xproto.GetKeyboardMapping(b.conn, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		return err
	}
	n := int(reply.KeysymsPerKeycode)
	if n < 1 {
		return nil
	}
	for i := keyLo; i <= keyHi; i++ {
		b.keysyms[i][0] = reply.Keysyms[(i-keyLo)*n+0]
		if n >= 2 {
			b.keysyms[i][1] = reply.Keysyms[(i-keyLo)*n+1]
		}
	}
	return nil
}

// keysymFor resolves the (unshifted, shifted) keysym pair for a keycode and
// picks the shifted form when Shift or Lock is held, matching taowm's
// handleKeyPress (input.go).
func (b *Backend) keysymFor(code xproto.Keycode, state uint16) uint32 {
	shift := state&xproto.ModMaskShift != 0 || state&xproto.ModMaskLock != 0
	pair := b.keysyms[code]
	if shift && pair[1] != 0 {
		return uint32(pair[1])
	}
	return uint32(pair[0])
}

func (b *Backend) findKeycode(keysym uint32) (xproto.Keycode, bool) {
	for i, pair := range b.keysyms {
		if uint32(pair[0]) == keysym || uint32(pair[1]) == keysym {
			return xproto.Keycode(i), true
		}
	}
	return 0, false
}

// GrabKeys re-grabs every configured key binding on the root window,
// ungrabbing everything first so config reloads and MappingNotify
// don't accumulate stale grabs.
func (b *Backend) GrabKeys(bindings []core.KeyBinding, wmModMask uint16) error {
	if err := xproto.UngrabKeyChecked(b.conn, xproto.GrabAny, b.root, xproto.ModMaskAny).Check(); err != nil {
		return err
	}
	// Grab each binding under every combination of the lock modifiers a
	// running X server may report set (CapsLock as Lock, NumLock as Mod2),
	// since a single grab under one mask does not match events that carry
	// the others.
	lockCombos := []uint16{0, xproto.ModMaskLock, mod2Mask, xproto.ModMaskLock | mod2Mask}
	for _, kb := range bindings {
		code, ok := b.findKeycode(kb.Keysym)
		if !ok {
			continue
		}
		for _, lock := range lockCombos {
			err := xproto.GrabKeyChecked(b.conn, true, b.root, kb.Mod|lock, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// mod2Mask is conventionally NumLock; a real deployment would confirm this
// via GetModifierMapping, but treating Mod2 as the lock modifier matches
// the overwhelming majority of X keyboard configurations.
const mod2Mask = xproto.ModMask2
