package event

// QueueSize is the ring capacity, power of two
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// EventQueue is a FIFO ring buffer for game events
// Single producer and single consumer on the scheduler goroutine
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [QueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&bufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > QueueSize {
		eq.head = eq.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&bufferMask])
		eq.events[i&bufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
