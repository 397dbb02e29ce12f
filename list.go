// Package sortedlist implements a singly linked list that keeps its elements
// in ascending order. A list holds either strings or integers, chosen when it
// is created.
package sortedlist

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/xgzlucario/sortedlist/option"
)

// SortedLinkedList is a sorted singly linked list of values of one Kind.
// Equal values keep their insertion order.
//
// A SortedLinkedList is not safe for concurrent use, callers must guard it
// with their own lock when it is shared between goroutines.
type SortedLinkedList struct {
	kind  Kind
	head  uint32
	size  int
	arena *arena
}

// New
func New(kind Kind) (*SortedLinkedList, error) {
	return newList(kind, 0)
}

// NewWithOption creates a list from opt, nil means option.DefaultOption.
func NewWithOption(opt *option.Option) (*SortedLinkedList, error) {
	if opt == nil {
		opt = option.DefaultOption
	}
	kind, err := ParseKind(opt.Kind)
	if err != nil {
		return nil, err
	}
	return newList(kind, opt.Capacity)
}

func newList(kind Kind, capacity uint32) (*SortedLinkedList, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidKind, kind)
	}
	return &SortedLinkedList{
		kind:  kind,
		head:  nilNode,
		arena: newArena(capacity),
	}, nil
}

// check rejects values of another kind.
func (l *SortedLinkedList) check(v Value) error {
	if v.kind != l.kind {
		return fmt.Errorf("%w: value must be of type %s, got %s", ErrTypeMismatch, l.kind, v.kind)
	}
	return nil
}

// Add inserts v after every value less than or equal to it.
func (l *SortedLinkedList) Add(v Value) error {
	if err := l.check(v); err != nil {
		return err
	}

	// slide right to find the insertion point.
	prev, cur := nilNode, l.head
	for cur != nilNode {
		n := l.arena.get(cur)
		c, err := n.compare(v)
		if err != nil {
			return err
		}
		if c > 0 {
			break
		}
		prev, cur = cur, n.next
	}

	off := l.arena.alloc(v, cur)
	if prev == nilNode {
		l.head = off
	} else {
		l.arena.get(prev).next = off
	}
	l.size++

	return nil
}

// Contains
func (l *SortedLinkedList) Contains(v Value) (bool, error) {
	if err := l.check(v); err != nil {
		return false, err
	}
	for cur := l.head; cur != nilNode; {
		n := l.arena.get(cur)
		c, err := n.compare(v)
		if err != nil {
			return false, err
		}
		if c == 0 {
			return true, nil
		}
		cur = n.next
	}
	return false, nil
}

// Pop removes and returns the first value. On an empty list it returns the
// empty value of the list's kind ("" or 0) and false.
func (l *SortedLinkedList) Pop() (Value, bool) {
	if l.head == nilNode {
		return zeroValue(l.kind), false
	}
	off := l.head
	n := l.arena.get(off)
	v := n.value
	l.head = n.next
	l.arena.release(off)
	l.size--

	return v, true
}

// Remove unlinks the first value equal to v. Removing a missing value does
// nothing.
func (l *SortedLinkedList) Remove(v Value) error {
	if err := l.check(v); err != nil {
		return err
	}

	prev, cur := nilNode, l.head
	for cur != nilNode {
		n := l.arena.get(cur)
		c, err := n.compare(v)
		if err != nil {
			return err
		}
		if c == 0 {
			if prev == nilNode {
				l.head = n.next
			} else {
				l.arena.get(prev).next = n.next
			}
			l.arena.release(cur)
			l.size--
			return nil
		}
		prev, cur = cur, n.next
	}
	return nil
}

// Clear
func (l *SortedLinkedList) Clear() {
	l.arena.reset()
	l.head = nilNode
	l.size = 0
}

// Clone returns an independent list holding the same values. Every value is
// added again through Add, so the copy is ordered by the same path as any
// other insert.
func (l *SortedLinkedList) Clone() *SortedLinkedList {
	c := &SortedLinkedList{
		kind:  l.kind,
		head:  nilNode,
		arena: newArena(uint32(l.size)),
	}
	for v := range l.All() {
		// every value already has c.kind, Add cannot fail.
		c.Add(v)
	}
	return c
}

// All returns an iterator over the values from head to tail. Each range
// walks the list as it is at that moment. The list must not be modified
// while ranging.
func (l *SortedLinkedList) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for cur := l.head; cur != nilNode; {
			n := l.arena.get(cur)
			if !yield(n.value) {
				return
			}
			cur = n.next
		}
	}
}

// ToArray
func (l *SortedLinkedList) ToArray() []Value {
	values := make([]Value, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Size
func (l *SortedLinkedList) Size() int {
	return l.size
}

// Kind
func (l *SortedLinkedList) Kind() Kind {
	return l.kind
}

func (l *SortedLinkedList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// LogValue implements slog.LogValuer.
func (l *SortedLinkedList) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", l.kind.String()),
		slog.Int("size", l.size),
	)
}
