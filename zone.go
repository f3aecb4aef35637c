package plume

import (
	"sort"

	"github.com/akmonengine/plume/bound"
)

const (
	ZONE_ENTER EventType = iota
	ZONE_STAY
	ZONE_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Zone events
type ZoneEnterEvent struct {
	Zone   string
	Object int
}

func (e ZoneEnterEvent) Type() EventType { return ZONE_ENTER }

type ZoneStayEvent struct {
	Zone   string
	Object int
}

func (e ZoneStayEvent) Type() EventType { return ZONE_STAY }

type ZoneExitEvent struct {
	Zone   string
	Object int
}

func (e ZoneExitEvent) Type() EventType { return ZONE_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// occupancy identifies one object inside one zone
type occupancy struct {
	zone   string
	object int
}

// Monitor tracks which objects occupy which named zones, and converts the
// frame-by-frame occupancy into ZONE_ENTER, ZONE_STAY and ZONE_EXIT events.
//
// Typical cycle: Observe every object for the frame, then Flush once to
// deliver the events. Monitor is not safe for concurrent use.
type Monitor struct {
	zones map[string]bound.Box

	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Occupancy tracking for Enter/Stay/Exit detection
	previousOccupancy map[occupancy]bool
	currentOccupancy  map[occupancy]bool
}

func NewMonitor() *Monitor {
	return &Monitor{
		zones:             make(map[string]bound.Box),
		listeners:         make(map[EventType][]EventListener),
		buffer:            make([]Event, 0, 256),
		previousOccupancy: make(map[occupancy]bool),
		currentOccupancy:  make(map[occupancy]bool),
	}
}

// AddZone registers a zone under the given name, replacing any zone
// previously registered under it.
func (m *Monitor) AddZone(name string, box bound.Box) {
	m.zones[name] = box
}

// RemoveZone unregisters a zone. Objects observed inside it exit the zone
// on the next Flush.
func (m *Monitor) RemoveZone(name string) {
	delete(m.zones, name)
}

// Zone returns the zone registered under the given name.
func (m *Monitor) Zone(name string) (bound.Box, bool) {
	box, ok := m.zones[name]
	return box, ok
}

// Names returns the registered zone names in ascending order.
func (m *Monitor) Names() []string {
	names := make([]string, 0, len(m.zones))
	for name := range m.zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subscribe adds a listener for an event type
func (m *Monitor) Subscribe(eventType EventType, listener EventListener) {
	m.listeners[eventType] = append(m.listeners[eventType], listener)
}

// Observe records the position of an object for the current frame. An object
// touching the boundary of a zone counts as inside it.
func (m *Monitor) Observe(object int, box bound.Box) {
	for name, zone := range m.zones {
		if zone.Intersects(box) {
			m.currentOccupancy[occupancy{zone: name, object: object}] = true
		}
	}
}

// processZoneEvents compares current and previous occupancy to detect
// Enter/Stay/Exit. Should be called once all objects have been observed.
func (m *Monitor) processZoneEvents() {
	// Detect Enter and Stay events
	for occ := range m.currentOccupancy {
		if m.previousOccupancy[occ] {
			// Occupied before and still is, Stay
			m.buffer = append(m.buffer, ZoneStayEvent{
				Zone:   occ.zone,
				Object: occ.object,
			})
		} else {
			// New occupancy, Enter
			m.buffer = append(m.buffer, ZoneEnterEvent{
				Zone:   occ.zone,
				Object: occ.object,
			})
		}
	}

	// Detect Exit events
	for occ := range m.previousOccupancy {
		if !m.currentOccupancy[occ] {
			// Occupied before but no longer, Exit
			m.buffer = append(m.buffer, ZoneExitEvent{
				Zone:   occ.zone,
				Object: occ.object,
			})
		}
	}

	// Swap for next frame and clear current
	m.previousOccupancy, m.currentOccupancy = m.currentOccupancy, m.previousOccupancy
	clear(m.currentOccupancy)
}

// Flush turns the occupancy recorded since the previous Flush into events and
// delivers them, in buffer order, to the subscribed listeners.
func (m *Monitor) Flush() {
	m.processZoneEvents()

	for _, event := range m.buffer {
		if listeners, ok := m.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	m.buffer = m.buffer[:0]
}
