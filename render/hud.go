package render

import (
	"sync"
	"time"

	"github.com/lixenwraith/void-ascent/event"
)

// DefaultBannerTTL is how long a notification stays on the banner line
const DefaultBannerTTL = 2500 * time.Millisecond

// HUD holds the notification banner fed by EventNotify
// A message replaces the current one if its priority is at least as high or the current one expired
type HUD struct {
	mu       sync.Mutex
	text     string
	priority event.Priority
	expires  time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewHUD creates a banner with the given lifetime; now defaults to time.Now
func NewHUD(ttl time.Duration, now func() time.Time) *HUD {
	if ttl <= 0 {
		ttl = DefaultBannerTTL
	}
	if now == nil {
		now = time.Now
	}
	return &HUD{ttl: ttl, now: now}
}

// HandleEvent implements event.Handler
func (h *HUD) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.NotifyPayload)
	if !ok || p.Text == "" {
		return
	}
	h.Post(p.Text, p.Priority)
}

// EventTypes implements event.Handler
func (h *HUD) EventTypes() []event.EventType {
	return []event.EventType{event.EventNotify}
}

// Post shows a message subject to priority
func (h *HUD) Post(text string, prio event.Priority) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	if h.text != "" && now.Before(h.expires) && prio < h.priority {
		return
	}
	h.text = text
	h.priority = prio
	h.expires = now.Add(h.ttl)
}

// Banner returns the live message, empty once expired
func (h *HUD) Banner() (string, event.Priority) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.text == "" || !h.now().Before(h.expires) {
		return "", event.PriorityLow
	}
	return h.text, h.priority
}

// Clear drops the current message
func (h *HUD) Clear() {
	h.mu.Lock()
	h.text = ""
	h.mu.Unlock()
}
