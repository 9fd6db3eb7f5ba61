package core

// value.go provides Value, the carrier threaded through the match cascade.
//
// A Value holds an optional result plus an ordered list of human-readable
// messages. An absent value means failure; its messages are the explanation
// (possibly none when the failure is silent). Values are never modified in
// place: every method returns a new instance.

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Value is an optional result carrying diagnostic messages and metadata.
type Value[T any] struct {
	value    T
	ok       bool
	messages []string
	meta     map[string]any
}

// Of returns a successful Value without messages.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// OfMessage returns a successful Value carrying one message.
func OfMessage[T any](v T, msg string) Value[T] {
	return Value[T]{value: v, ok: true, messages: []string{msg}}
}

// OfMessages returns a successful Value carrying the given messages.
func OfMessages[T any](v T, msgs ...string) Value[T] {
	return Value[T]{value: v, ok: true, messages: cloneStrings(msgs)}
}

// Fail returns an absent Value explained by msgs.
func Fail[T any](msgs ...string) Value[T] {
	return Value[T]{messages: cloneStrings(msgs)}
}

// Message returns an absent Value explained by a single message.
func Message[T any](msg string) Value[T] {
	return Value[T]{messages: []string{msg}}
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// Ok reports whether the value is present.
func (v Value[T]) Ok() bool {
	return v.ok
}

// Messages returns a copy of the messages in insertion order.
func (v Value[T]) Messages() []string {
	return cloneStrings(v.messages)
}

// Message returns every message joined with " | ", or "" when there are none.
func (v Value[T]) Message() string {
	return strings.Join(v.messages, " | ")
}

// Items returns the value, its presence and a copy of the messages.
func (v Value[T]) Items() (T, bool, []string) {
	return v.value, v.ok, v.Messages()
}

// Meta returns a metadata entry.
func (v Value[T]) Meta(key string) (any, bool) {
	m, ok := v.meta[key]
	return m, ok
}

// PrefixMessages returns a copy with prefix prepended to every non-empty message.
func (v Value[T]) PrefixMessages(prefix string) Value[T] {
	return v.mapMessages(func(m string) string { return prefix + m })
}

// SuffixMessages returns a copy with suffix appended to every non-empty message.
func (v Value[T]) SuffixMessages(suffix string) Value[T] {
	return v.mapMessages(func(m string) string { return m + suffix })
}

// WithMessages returns a copy with msgs appended.
func (v Value[T]) WithMessages(msgs ...string) Value[T] {
	out := v.clone()
	out.messages = append(out.messages, msgs...)
	return out
}

// WithMeta returns a copy with a metadata entry set.
func (v Value[T]) WithMeta(key string, val any) Value[T] {
	out := v.clone()
	meta := make(map[string]any, len(v.meta)+1)
	for k, m := range v.meta {
		meta[k] = m
	}
	meta[key] = val
	out.meta = meta
	return out
}

// Deduplicate returns a copy keeping only the first occurrence of each message.
func (v Value[T]) Deduplicate() Value[T] {
	out := v.clone()
	out.messages = dedupeStrings(v.messages)
	return out
}

// truncate keeps at most n messages.
func (v Value[T]) truncate(n int) Value[T] {
	if n < 0 {
		n = 0
	}
	if len(v.messages) <= n {
		return v
	}
	out := v.clone()
	out.messages = out.messages[:n]
	return out
}

// dropSeen returns a copy without the messages already in seen and records
// the remaining ones.
func (v Value[T]) dropSeen(seen map[string]bool) Value[T] {
	out := v.clone()
	out.messages = out.messages[:0]
	for _, m := range v.messages {
		if seen[m] {
			continue
		}
		seen[m] = true
		out.messages = append(out.messages, m)
	}
	return out
}

func (v Value[T]) mapMessages(fn func(string) string) Value[T] {
	out := v.clone()
	for i, m := range out.messages {
		if m != "" {
			out.messages[i] = fn(m)
		}
	}
	return out
}

func (v Value[T]) clone() Value[T] {
	return Value[T]{value: v.value, ok: v.ok, messages: cloneStrings(v.messages), meta: v.meta}
}

// Bind applies fn to a present value. An absent value short-circuits and keeps
// its messages; messages of v are prepended to those returned by fn.
func Bind[T, U any](v Value[T], fn func(T) Value[U]) Value[U] {
	if !v.ok {
		return Value[U]{messages: cloneStrings(v.messages), meta: v.meta}
	}
	next := fn(v.value)
	next.messages = append(cloneStrings(v.messages), next.messages...)
	return next
}

// Map applies a plain function to a present value.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	return Bind(v, func(t T) Value[U] { return Of(fn(t)) })
}

// Number is the set of types supported by the arithmetic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b. An absent operand yields an absent result; messages concatenate.
func Add[N Number](a, b Value[N]) Value[N] {
	return arith(a, b, func(x, y N) (N, string) { return x + y, "" })
}

// Subtract returns a - b with the same absence rules as Add.
func Subtract[N Number](a, b Value[N]) Value[N] {
	return arith(a, b, func(x, y N) (N, string) { return x - y, "" })
}

// Multiply returns a * b with the same absence rules as Add.
func Multiply[N Number](a, b Value[N]) Value[N] {
	return arith(a, b, func(x, y N) (N, string) { return x * y, "" })
}

// Divide returns a / b with the same absence rules as Add.
// Division by zero yields an absent result with a "division by zero" message.
func Divide[N Number](a, b Value[N]) Value[N] {
	return arith(a, b, func(x, y N) (N, string) {
		if y == 0 {
			return 0, "division by zero"
		}
		return x / y, ""
	})
}

func arith[N Number](a, b Value[N], op func(N, N) (N, string)) Value[N] {
	msgs := append(cloneStrings(a.messages), b.messages...)
	if !a.ok || !b.ok {
		return Value[N]{messages: msgs}
	}
	res, problem := op(a.value, b.value)
	if problem != "" {
		return Value[N]{messages: append(msgs, problem)}
	}
	return Value[N]{value: res, ok: true, messages: msgs}
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// dedupeStrings removes repeated entries, keeping the first occurrence in order.
func dedupeStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(s))
	out := make([]string, 0, len(s))
	for _, m := range s {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
