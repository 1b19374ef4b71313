package config

// Named X11 keysyms this loader recognizes in binding strings, taken from
// /usr/include/X11/keysymdef.h — the same subset the reference X11 window
// manager this project descends from hard-codes in its own keysym table.
var namedKeysyms = map[string]uint32{
	"Escape":      0xff1b,
	"Tab":         0xff09,
	"ISOLeftTab":  0xfe20,
	"Backspace":   0xff08,
	"Return":      0xff0d,
	"Home":        0xff50,
	"Left":        0xff51,
	"Up":          0xff52,
	"Right":       0xff53,
	"Down":        0xff54,
	"PageUp":      0xff55,
	"PageDown":    0xff56,
	"End":         0xff57,
	"Delete":      0xffff,
	"CapsLock":    0xffe5,
	"ShiftLock":   0xffe6,
	"Space":       0x0020,
	"F1":          0xffbe,
	"F2":          0xffbf,
	"F3":          0xffc0,
	"F4":          0xffc1,
	"F5":          0xffc2,
	"F6":          0xffc3,
	"F7":          0xffc4,
	"F8":          0xffc5,
	"F9":          0xffc6,
	"F10":         0xffc7,
	"F11":         0xffc8,
	"F12":         0xffc9,
}

// modifierBits maps a binding string's modifier tokens to the bit that
// internal/x11backend interprets as the corresponding X11 modifier mask;
// the numeric values follow xproto's ModMask constants (Shift=1, Lock=2,
// Control=4, Mod1..Mod5=8,16,32,64,128).
var modifierBits = map[string]uint16{
	"Shift":   1 << 0,
	"Lock":    1 << 1,
	"Control": 1 << 2,
	"Ctrl":    1 << 2,
	"Mod1":    1 << 3,
	"Alt":     1 << 3,
	"Mod2":    1 << 4,
	"Mod3":    1 << 5,
	"Mod4":    1 << 6,
	"Super":   1 << 6,
	"Mod5":    1 << 7,
}

// keysymForRune returns the Latin-1 keysym for a single printable ASCII
// character, which for the ASCII range equals its code point (ICCCM
// keysym encoding, mirrored by the reference implementation's
// case-insensitive single-character bindings).
func keysymForRune(r rune) (uint32, bool) {
	if r >= 0x20 && r <= 0x7e {
		return uint32(r), true
	}
	return 0, false
}
