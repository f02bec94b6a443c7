package window

// VisibilityHandler is notified after a dock was shown or hidden.
type VisibilityHandler func(d *Dock, visible bool)

// Dispatcher is the single path through which dock visibility changes. Both
// the coordinator and the host toolkit call SetVisible; every subscriber is
// then told about the change.
//
// While subscribers run the dispatcher is busy. Coordinator.Activate refuses
// to run in that window, so a visibility notification can never cascade into
// another activation.
type Dispatcher struct {
	handlers []VisibilityHandler
	depth    int
}

// NewDispatcher returns a dispatcher without subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers h for every future visibility change.
func (x *Dispatcher) Subscribe(h VisibilityHandler) {
	x.handlers = append(x.handlers, h)
}

// Busy reports whether visibility notifications are being delivered.
func (x *Dispatcher) Busy() bool {
	return x.depth > 0
}

// SetVisible shows or hides d. Subscribers are only notified when the
// visibility actually changes.
func (x *Dispatcher) SetVisible(d *Dock, visible bool) {
	if d.visible == visible {
		return
	}
	d.visible = visible

	x.depth++
	defer func() { x.depth-- }()
	for _, h := range x.handlers {
		h(d, visible)
	}
}
