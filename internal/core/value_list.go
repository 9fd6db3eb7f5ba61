package core

// MessagePolicy decides whether repeated messages are reported once or every time.
type MessagePolicy int

const (
	KeepDuplicates MessagePolicy = iota // Report every message in insertion order
	Deduplicate                         // Report the first occurrence of each message only
)

// ValueList collects Values in insertion order.
type ValueList[T any] struct {
	items  []Value[T]
	policy MessagePolicy
}

// NewValueList returns an empty list using the given message policy.
func NewValueList[T any](policy MessagePolicy) *ValueList[T] {
	return &ValueList[T]{policy: policy}
}

// Add appends a Value.
func (l *ValueList[T]) Add(v Value[T]) {
	l.items = append(l.items, v)
}

// AddMessage appends an absent Value carrying a single message.
func (l *ValueList[T]) AddMessage(msg string) {
	l.items = append(l.items, Message[T](msg))
}

// Items returns the collected Values.
func (l *ValueList[T]) Items() []Value[T] {
	out := make([]Value[T], len(l.items))
	copy(out, l.items)
	return out
}

// Values returns the present values in insertion order.
func (l *ValueList[T]) Values() []T {
	var out []T
	for _, v := range l.items {
		if val, ok := v.Get(); ok {
			out = append(out, val)
		}
	}
	return out
}

// Messages concatenates the messages of every Value, honoring the list policy.
func (l *ValueList[T]) Messages() []string {
	var out []string
	for _, v := range l.items {
		out = append(out, v.messages...)
	}
	if l.policy == Deduplicate {
		return dedupeStrings(out)
	}
	return out
}

// Len returns the number of collected Values.
func (l *ValueList[T]) Len() int {
	return len(l.items)
}
