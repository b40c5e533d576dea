package sim

// ContactEvent signals that the player overlapped some collider this
// tick. It carries no payload beyond its existence and is not persisted
// across ticks.
type ContactEvent struct{}

// Events is the per-tick transient event buffer. It is reset at the
// start of every tick and drained by the scheduler after the systems
// have run.
type Events struct {
	contacts []ContactEvent
}

// EmitContact records one contact event for the current tick.
func (e *Events) EmitContact() {
	e.contacts = append(e.contacts, ContactEvent{})
}

// Contacts returns the events emitted so far this tick.
func (e *Events) Contacts() []ContactEvent {
	return e.contacts
}

func (e *Events) reset() {
	e.contacts = e.contacts[:0]
}
