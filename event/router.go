package event

import "log"

// Handler processes routed events
// Audio and UI collaborators implement this; they never return values the core depends on
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// HandlerFunc adapts a function listening to a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Router dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the frame loop
//   - Handlers invoked in registration order
//   - A panicking handler is logged and skipped; dispatch continues
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Queue returns the attached queue
func (r *Router) Queue() *Queue {
	return r.queue
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	evs := r.queue.Consume()
	for _, ev := range evs {
		for _, h := range r.handlers[ev.Type] {
			r.safeHandle(h, ev)
		}
	}
	return len(evs)
}

// Discard drops pending events without dispatch, used on teardown
func (r *Router) Discard() {
	_ = r.queue.Consume()
}

func (r *Router) safeHandle(h Handler, ev GameEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[event] handler %T panicked on %s: %v", h, ev.Type, rec)
		}
	}()
	h.HandleEvent(ev)
}
