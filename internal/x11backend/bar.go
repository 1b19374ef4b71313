package x11backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

// initFont opens the server-side "fixed" font for bar text and derives
// barHeight from its metrics, following taowm's cursor/font setup idiom in
// initDesktop (xinit.go), adapted from a cursor font load to a text font
// load since this window manager draws a tag/client bar taowm does not
// have.
func (b *Backend) initFont() error {
	fid, err := xproto.NewFontId(b.conn)
	if err != nil {
		return err
	}
	const name = "fixed"
	if err := xproto.OpenFontChecked(b.conn, fid, uint16(len(name)), name).Check(); err != nil {
		return err
	}
	b.fontID = fid

	info, err := xproto.QueryFont(b.conn, xproto.Fontable(fid)).Reply()
	if err == nil {
		lineHeight := int(info.FontAscent + info.FontDescent)
		b.barHeight = lineHeight + 6
	}

	gc, err := xproto.NewGcontextId(b.conn)
	if err != nil {
		return err
	}
	if err := xproto.CreateGCChecked(b.conn, gc, xproto.Drawable(b.root), xproto.GcFont, []uint32{uint32(fid)}).Check(); err != nil {
		return err
	}
	b.gc = gc
	return nil
}

// CreateBarWindow makes a top InputOutput window spanning the monitor's
// width, used for either the tag bar or the client bar (§4.G); mon is
// unused beyond bookkeeping since geometry is set by the first
// MoveResizeWindow call the core issues once the monitor layout is known.
func (b *Backend) CreateBarWindow(mon int, w, h int) (core.WindowID, error) {
	win, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateWindowChecked(
		b.conn, b.screen.RootDepth, win, b.root,
		0, 0, uint16(w), uint16(h), 0,
		xproto.WindowClassInputOutput, b.screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{1, xproto.EventMaskExposure | xproto.EventMaskButtonPress},
	).Check()
	if err != nil {
		return 0, err
	}
	if err := xproto.MapWindowChecked(b.conn, win).Check(); err != nil {
		return 0, err
	}
	return core.WindowID(win), nil
}

// DrawBar renders model onto win: a background fill per cell/tab's scheme
// followed by its label text. Tag cells are drawn a fixed 40 pixels wide;
// client tabs take their widths from the core's BarModel.
func (b *Backend) DrawBar(win core.WindowID, model core.BarModel) error {
	x := int16(0)
	for _, cell := range model.Tags {
		w := uint16(40)
		if err := b.fillRect(xproto.Window(win), x, 0, w, uint16(b.barHeight), cell.Scheme.Bg); err != nil {
			return err
		}
		b.drawText(xproto.Window(win), x+4, int16(b.barHeight)-6, cell.Label, cell.Scheme.Fg)
		x += int16(w)
	}
	for _, tab := range model.ClientTabs {
		w := uint16(tab.Width)
		if err := b.fillRect(xproto.Window(win), x, 0, w, uint16(b.barHeight), tab.Scheme.Bg); err != nil {
			return err
		}
		b.drawText(xproto.Window(win), x+4, int16(b.barHeight)-6, tab.Title, tab.Scheme.Fg)
		x += int16(w)
	}
	return nil
}

func (b *Backend) fillRect(win xproto.Window, x, y int16, w, h uint16, pixel uint32) error {
	if err := xproto.ChangeGCChecked(b.conn, b.gc, xproto.GcForeground, []uint32{pixel}).Check(); err != nil {
		return err
	}
	return xproto.PolyFillRectangleChecked(b.conn, xproto.Drawable(win), b.gc,
		[]xproto.Rectangle{{X: x, Y: y, Width: w, Height: h}}).Check()
}

func (b *Backend) drawText(win xproto.Window, x, y int16, text string, pixel uint32) {
	xproto.ChangeGCChecked(b.conn, b.gc, xproto.GcForeground, []uint32{pixel}).Check()
	xproto.ImageText8Checked(b.conn, byte(len(text)), xproto.Drawable(win), b.gc, x, y, text).Check()
}
