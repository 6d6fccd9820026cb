package input

// Window tracks an interval opened by a start marker and closed by an end
// marker. Only one window is open at a time; a start while open is a no-op
// and the next start after an end opens a fresh window.
type Window struct {
	open bool
}

// Start opens the window
func (w *Window) Start() {
	w.open = true
}

// End closes the window
func (w *Window) End() {
	w.open = false
}

// Between reports whether an event arriving now falls inside the window
func (w *Window) Between() bool {
	return w.open
}

// NotBetween reports whether an event arriving now falls outside every window
func (w *Window) NotBetween() bool {
	return !w.open
}
