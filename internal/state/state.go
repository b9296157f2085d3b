// Package state provides thread-safe state management for the application:
// the simulated clock, the current computed sky, and the horizon event log.
package state

import (
	"sync"
	"time"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-antikythera/internal/almanac"
	"github.com/litescript/ls-antikythera/internal/astro"
	"github.com/litescript/ls-antikythera/internal/catalog"
)

// EventType represents the type of sky event.
type EventType string

const (
	EventRise  EventType = "RISE"
	EventSet   EventType = "SET"
	EventPhase EventType = "PHASE"
)

// Event represents a horizon crossing or a lunar phase change, stamped with
// simulated time.
type Event struct {
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Body       string    `json:"body"`
	Kind       string    `json:"kind,omitempty"`
	AzimuthDeg float64   `json:"azimuth_deg,omitempty"`
	Phase      string    `json:"phase,omitempty"`
}

// Observer is a fixed site on the globe, radians.
type Observer struct {
	LatRad float64
	LonRad float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	observer Observer
	stars    []catalog.Star
	planets  []catalog.Planet

	// Simulated clock
	simTime time.Time
	rate    float64
	paused  bool

	// Current computed sky
	current almanac.Sky

	// Previous altitudes and moon phase for event detection
	prevAlt   map[string]float64
	prevPhase string

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	tickInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	Start        time.Time
	Rate         float64
	MaxEvents    int
	TickInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Start:        time.Now(),
		Rate:         1,
		MaxEvents:    50, // Last 50 horizon crossings
		TickInterval: 250 * time.Millisecond,
	}
}

// NewManager creates a new state manager and computes the initial sky. The
// first computation seeds event detection; no events are emitted for bodies
// that are simply already up.
func NewManager(cfg Config, obs Observer, stars []catalog.Star, planets []catalog.Planet) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	rate := cfg.Rate
	if rate == 0 {
		rate = 1
	}
	start := cfg.Start
	if start.IsZero() {
		start = time.Now()
	}
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}

	m := &Manager{
		observer:     obs,
		stars:        stars,
		planets:      planets,
		simTime:      start,
		rate:         rate,
		maxEvents:    maxEvents,
		events:       make([]Event, 0, maxEvents),
		prevAlt:      make(map[string]float64),
		tickInterval: tick,
	}
	m.recompute(true)
	return m
}

// Advance moves the simulated clock by elapsed wall time scaled by the
// current rate, then recomputes the sky. Paused managers only recompute.
func (m *Manager) Advance(wall time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.paused {
		m.simTime = m.simTime.Add(time.Duration(float64(wall) * m.rate))
	}
	m.recompute(false)
}

// Step jumps the simulated clock by a fixed simulated duration, ignoring
// pause state.
func (m *Manager) Step(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.simTime = m.simTime.Add(d)
	m.recompute(false)
}

// SetTime jumps the simulated clock to an absolute instant. Event detection
// reseeds: a jump is not a rise.
func (m *Manager) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.simTime = t
	m.recompute(true)
}

// recompute rebuilds the sky for the current simulated time. Callers must
// hold the write lock. When seed is true, event detection restarts from the
// new sky instead of comparing against the previous one.
func (m *Manager) recompute(seed bool) {
	eng := astro.New(m.simTime, m.observer.LatRad, m.observer.LonRad)
	sky := almanac.Compute(eng, m.stars, m.planets)

	if !seed {
		m.detectEvents(sky)
	}
	m.current = sky

	m.prevAlt = make(map[string]float64, len(sky.Rows))
	for _, r := range sky.Rows {
		m.prevAlt[r.Name] = r.Pos.Alt
	}
	m.prevPhase = almanac.PhaseName(sky.Moon().LunarPhase)
}

// detectEvents compares the new sky with the previous one and records
// horizon crossings and lunar phase changes.
func (m *Manager) detectEvents(sky almanac.Sky) {
	for _, r := range sky.Rows {
		prev, tracked := m.prevAlt[r.Name]
		if !tracked {
			continue
		}

		if prev <= 0 && r.Pos.Alt > 0 {
			m.addEvent(Event{
				Type:       EventRise,
				Timestamp:  sky.Time,
				Body:       r.Name,
				Kind:       r.Kind.String(),
				AzimuthDeg: unit.Angle(r.Pos.Az).Deg(),
			})
		} else if prev > 0 && r.Pos.Alt <= 0 {
			m.addEvent(Event{
				Type:       EventSet,
				Timestamp:  sky.Time,
				Body:       r.Name,
				Kind:       r.Kind.String(),
				AzimuthDeg: unit.Angle(r.Pos.Az).Deg(),
			})
		}
	}

	if phase := almanac.PhaseName(sky.Moon().LunarPhase); phase != m.prevPhase {
		m.addEvent(Event{
			Type:      EventPhase,
			Timestamp: sky.Time,
			Body:      "Moon",
			Phase:     phase,
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Time     time.Time
	Observer Observer
	Rate     float64
	Paused   bool
	Sky      almanac.Sky
	Events   []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Time:     m.simTime,
		Observer: m.observer,
		Rate:     m.rate,
		Paused:   m.paused,
		Sky:      m.current,
		Events:   m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Rate returns the current simulation rate multiplier.
func (m *Manager) Rate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rate
}

// SetRate updates the simulation rate multiplier. Zero is rejected; use
// TogglePause to stop the clock.
func (m *Manager) SetRate(rate float64) {
	if rate == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
}

// TogglePause flips the paused flag and returns the new value.
func (m *Manager) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = !m.paused
	return m.paused
}

// Paused reports whether the simulated clock is stopped.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// TickInterval returns the configured wall-clock tick interval.
func (m *Manager) TickInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tickInterval
}
