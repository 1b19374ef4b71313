package core

func testConfig() *Config {
	layouts := []*Layout{TileLayout, DeckLayout, MonocleLayout, FloatingLayout}
	cfg := &Config{
		Tags:                [NumTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		BorderWidthTiled:     1,
		BorderWidthFloating:  1,
		SnapPixels:           32,
		ShowTagBar:           true,
		MarkedWidth:          0.5,
		Layouts:              layouts,
		ClientBarModeDefault: ClientBarAuto,
	}
	for i := range cfg.DefLayouts {
		cfg.DefLayouts[i] = [2]int{0, 2}
	}
	cfg.Schemes[SchemeNormal] = ColorScheme{Fg: 1, Bg: 2, Border: 3}
	cfg.Schemes[SchemeSelected] = ColorScheme{Fg: 4, Bg: 5, Border: 6}
	cfg.Schemes[SchemeVisible] = ColorScheme{Fg: 7, Bg: 8, Border: 9}
	cfg.Schemes[SchemeMinimized] = ColorScheme{Fg: 10, Bg: 11, Border: 12}
	cfg.Schemes[SchemeUrgent] = ColorScheme{Fg: 13, Bg: 14, Border: 15}
	return cfg
}

// newTestContext builds and bootstraps a single-monitor Context over a fake
// backend with a w x h screen and a barH-pixel bar.
func newTestContext(w, h, barH int) (*Context, *fakeBackend) {
	backend := newFakeBackend(w, h, barH)
	cfg := testConfig()
	ctx := NewContext(backend, cfg)
	ctx.Bootstrap()
	return ctx, backend
}

// manageTestClient registers a new window with the backend and manages it,
// returning the resulting *Client.
func manageTestClient(ctx *Context, backend *fakeBackend, floating bool) *Client {
	win := backend.newWindow()
	backend.attrs[win] = WindowAttrs{Viewable: true}
	if floating {
		backend.hints[win] = SizeHints{MinW: 100, MinH: 100, MaxW: 100, MaxH: 100}
	}
	ctx.Manage(win, backend.attrs[win])
	return ctx.findClient(win)
}
