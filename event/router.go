package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent is called synchronously during dispatch, after the world advanced
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
// Handlers for one type run in registration order; events run in FIFO order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes all pending events and routes them, returns the number dispatched
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
