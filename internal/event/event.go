// Package event is a synchronous publish/subscribe dispatcher.
package event

// Type identifies a kind of event.
type Type string

const (
	EntityDestroyed  Type = "EntityDestroyed"  // A non-respawning entity died
	PlayerDied       Type = "PlayerDied"       // The player entered the Dead state
	PlayerRespawned  Type = "PlayerRespawned"  // The player became visible again
	PlayerVulnerable Type = "PlayerVulnerable" // Invulnerability window ended
	GameOver         Type = "GameOver"         // The player ran out of lives
	LaunchSkipped    Type = "LaunchSkipped"    // A launcher found no target
)

// Event carries a type and an optional payload.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one registration so it can be removed later.
type Subscription struct {
	typ Type
	id  uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher delivers events to listeners in subscription order.
// It is not safe for concurrent use; it lives on the simulation goroutine.
type Dispatcher struct {
	listeners map[Type][]entry
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]entry),
	}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t Type, l Listener) Subscription {
	d.nextID++
	d.listeners[t] = append(d.listeners[t], entry{id: d.nextID, listener: l})
	return Subscription{typ: t, id: d.nextID}
}

// Unsubscribe removes a registration. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(s Subscription) {
	list := d.listeners[s.typ]
	for i, e := range list {
		if e.id == s.id {
			// Copy so a Dispatch in progress keeps iterating its own slice.
			next := make([]entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			d.listeners[s.typ] = next
			return
		}
	}
}

// Dispatch sends e to every listener subscribed to e.Type.
func (d *Dispatcher) Dispatch(e Event) {
	for _, entry := range d.listeners[e.Type] {
		entry.listener.OnEvent(e)
	}
}
