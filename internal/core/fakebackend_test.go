package core

// fakeBackend is a recording stub DisplayBackend for unit tests: it keeps
// just enough state to let the core exercise the interface without a real
// display connection.
type fakeBackend struct {
	screenW, screenH int
	barH             int
	rects            []Rect

	attrs map[WindowID]WindowAttrs
	hints map[WindowID]SizeHints
	wmh   map[WindowID]WMHints
	class map[WindowID][2]string
	title map[WindowID]string

	nextWin WindowID

	moveResizeCalls []moveResizeCall
	mappedWindows   map[WindowID]bool
	barsDrawn       []WindowID
}

type moveResizeCall struct {
	Win  WindowID
	X, Y int
	W, H int
}

func newFakeBackend(w, h, barH int) *fakeBackend {
	return &fakeBackend{
		screenW:       w,
		screenH:       h,
		barH:          barH,
		rects:         []Rect{{0, 0, w, h}},
		attrs:         map[WindowID]WindowAttrs{},
		hints:         map[WindowID]SizeHints{},
		wmh:           map[WindowID]WMHints{},
		class:         map[WindowID][2]string{},
		title:         map[WindowID]string{},
		mappedWindows: map[WindowID]bool{},
	}
}

func (f *fakeBackend) newWindow() WindowID {
	f.nextWin++
	return f.nextWin
}

func (f *fakeBackend) Open() error  { return nil }
func (f *fakeBackend) Close() error { return nil }
func (f *fakeBackend) NextEvent() (Event, error) {
	return nil, errNoMoreEvents
}
func (f *fakeBackend) ScreenSize() (int, int) { return f.screenW, f.screenH }
func (f *fakeBackend) BarHeight() int         { return f.barH }

func (f *fakeBackend) BecomeWindowManager() error { return nil }
func (f *fakeBackend) AtomID(a WellKnownAtom) Atom { return Atom(a) }
func (f *fakeBackend) GrabKeys(bindings []KeyBinding, wmModMask uint16) error {
	return nil
}
func (f *fakeBackend) QueryScreens() ([]Rect, error)            { return f.rects, nil }
func (f *fakeBackend) QueryExistingWindows() ([]WindowID, error) { return nil, nil }
func (f *fakeBackend) QueryPointer() (int, int, WindowID, error) { return 0, 0, 0, nil }

func (f *fakeBackend) WindowTitle(win WindowID) string { return f.title[win] }
func (f *fakeBackend) WindowClass(win WindowID) (string, string) {
	c := f.class[win]
	return c[0], c[1]
}
func (f *fakeBackend) GetSizeHints(win WindowID) SizeHints { return f.hints[win] }
func (f *fakeBackend) GetWMHints(win WindowID) WMHints     { return f.wmh[win] }
func (f *fakeBackend) GetTransientFor(win WindowID) (WindowID, bool) {
	return 0, false
}
func (f *fakeBackend) GetWindowType(win WindowID) (bool, bool) { return false, false }
func (f *fakeBackend) GetWMProtocols(win WindowID) (bool, bool) {
	return true, false
}
func (f *fakeBackend) GetAttrs(win WindowID) WindowAttrs { return f.attrs[win] }

func (f *fakeBackend) SelectClientInput(win WindowID) error { return nil }
func (f *fakeBackend) MoveResizeWindow(win WindowID, x, y, w, h int) error {
	f.moveResizeCalls = append(f.moveResizeCalls, moveResizeCall{win, x, y, w, h})
	return nil
}
func (f *fakeBackend) SetBorderWidth(win WindowID, width int) error { return nil }
func (f *fakeBackend) SetBorderColor(win WindowID, scheme ColorScheme, selected bool) error {
	return nil
}
func (f *fakeBackend) MapWindow(win WindowID) error {
	f.mappedWindows[win] = true
	return nil
}
func (f *fakeBackend) UnmapWindow(win WindowID) error {
	f.mappedWindows[win] = false
	return nil
}
func (f *fakeBackend) RaiseWindow(win WindowID) error                            { return nil }
func (f *fakeBackend) ConfigureSibling(win, sibling WindowID, mode StackMode) error { return nil }
func (f *fakeBackend) SetWMState(win WindowID, state WMState) error              { return nil }
func (f *fakeBackend) SetInputFocus(win WindowID) error                          { return nil }
func (f *fakeBackend) SendDeleteWindow(win WindowID) error                       { return nil }
func (f *fakeBackend) SendTakeFocus(win WindowID) error                         { return nil }
func (f *fakeBackend) KillClient(win WindowID) error                            { return nil }
func (f *fakeBackend) SetFullscreenState(win WindowID, on bool) error            { return nil }

func (f *fakeBackend) SetActiveWindow(win WindowID) error       { return nil }
func (f *fakeBackend) SetClientList(wins []WindowID) error      { return nil }
func (f *fakeBackend) SetSupported(atoms []WellKnownAtom) error { return nil }

func (f *fakeBackend) GrabPointerMove() error   { return nil }
func (f *fakeBackend) GrabPointerResize() error { return nil }
func (f *fakeBackend) UngrabPointer() error     { return nil }
func (f *fakeBackend) GrabServer() error        { return nil }
func (f *fakeBackend) UngrabServer() error      { return nil }
func (f *fakeBackend) RegrabButtons(win WindowID, focused bool, bindings []MouseBinding) error {
	return nil
}

func (f *fakeBackend) DrawBar(win WindowID, model BarModel) error {
	f.barsDrawn = append(f.barsDrawn, win)
	return nil
}
func (f *fakeBackend) CreateBarWindow(mon int, w, h int) (WindowID, error) {
	return f.newWindow(), nil
}

func (f *fakeBackend) ConnectionFD() int   { return -1 }
func (f *fakeBackend) StatusText() string { return "" }

var errNoMoreEvents = fakeErr("no more events")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
