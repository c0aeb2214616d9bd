// Package ilist provides a circular, intrusive, doubly linked list.
//
// Types that want to be members of a List embed a Link by value and
// bind it to themselves. The list never allocates: inserting,
// removing, moving and splicing only rewrite link pointers. The
// list's head is a sentinel Link with no owner, and a list is empty
// when the sentinel links to itself in both directions.
//
// A Link is a member of at most one list at a time. Moving a link
// from one list to another (MoveAfter, MoveBefore, the Splice
// operations and Cut) transfers it; links are never shared.
//
// Lists are not safe for concurrent use, and neither a List nor a
// linked Link may be copied after first use.
package ilist

import (
	"iter"

	"github.com/tychoish/strq/ers"
)

// ErrAlreadyLinked is the content of the panic raised when a link
// that is already a member of a list is inserted again.
const ErrAlreadyLinked ers.Error = ers.Error("link is already a member of a list")

// Link is the embedded list membership of an owner of type E. The zero
// value is detached and unowned; use Bind to associate it with the
// value that embeds it.
type Link[E any] struct {
	next  *Link[E]
	prev  *Link[E]
	owner *E
}

// Bind records the value that embeds the link and returns the link.
func (k *Link[E]) Bind(owner *E) *Link[E] { k.owner = owner; return k }

// Owner returns the value that embeds the link, or nil for a
// sentinel.
func (k *Link[E]) Owner() *E { return k.owner }

// Next returns the following link. At the end of a list this is the
// sentinel. Detached links return nil.
func (k *Link[E]) Next() *Link[E] { return k.next }

// Prev returns the preceding link. At the front of a list this is the
// sentinel. Detached links return nil.
func (k *Link[E]) Prev() *Link[E] { return k.prev }

// Linked reports whether the link is currently a member of a list.
func (k *Link[E]) Linked() bool { return k != nil && k.next != nil }

// Unlink removes the link from its list and detaches it. Unlinking a
// detached link is a no-op.
func (k *Link[E]) Unlink() {
	if !k.Linked() {
		return
	}
	k.prev.next = k.next
	k.next.prev = k.prev
	k.next = nil
	k.prev = nil
}

// MoveAfter removes the link from its current list (if any) and
// inserts it directly after pos, which may belong to any list.
func (k *Link[E]) MoveAfter(pos *Link[E]) {
	if k == pos {
		return
	}
	k.Unlink()
	k.insert(pos, pos.next)
}

// MoveBefore removes the link from its current list (if any) and
// inserts it directly before pos, which may belong to any list.
func (k *Link[E]) MoveBefore(pos *Link[E]) {
	if k == pos {
		return
	}
	k.Unlink()
	k.insert(pos.prev, pos)
}

func (k *Link[E]) insert(prev, next *Link[E]) {
	if k.Linked() {
		panic(ers.NewInvariantViolation(ErrAlreadyLinked))
	}
	k.prev = prev
	k.next = next
	prev.next = k
	next.prev = k
}

func (k *Link[E]) flip() { k.next, k.prev = k.prev, k.next }

// List is the sentinel head of a circular list. The zero value is an
// empty list ready to use.
type List[E any] struct {
	root Link[E]
}

func (l *List[E]) sentinel() *Link[E] {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
	return &l.root
}

// Sentinel returns the list's head link. It never has an owner.
func (l *List[E]) Sentinel() *Link[E] { return l.sentinel() }

// IsSentinel reports whether k is this list's head.
func (l *List[E]) IsSentinel(k *Link[E]) bool { return k == &l.root }

// Empty reports whether the sentinel links to itself.
func (l *List[E]) Empty() bool { s := l.sentinel(); return s.next == s }

// Singular reports whether the list holds exactly one link.
func (l *List[E]) Singular() bool { s := l.sentinel(); return s.next != s && s.next == s.prev }

// Front returns the first link, or the sentinel when the list is
// empty.
func (l *List[E]) Front() *Link[E] { return l.sentinel().next }

// Back returns the last link, or the sentinel when the list is empty.
func (l *List[E]) Back() *Link[E] { return l.sentinel().prev }

// PushFront inserts a detached link after the sentinel. It panics if
// the link is already a member of a list.
func (l *List[E]) PushFront(k *Link[E]) { s := l.sentinel(); k.insert(s, s.next) }

// PushBack inserts a detached link before the sentinel. It panics if
// the link is already a member of a list.
func (l *List[E]) PushBack(k *Link[E]) { s := l.sentinel(); k.insert(s.prev, s) }

// MoveFront transfers k, from whichever list holds it, to the front
// of l.
func (l *List[E]) MoveFront(k *Link[E]) { k.MoveAfter(l.sentinel()) }

// MoveBack transfers k, from whichever list holds it, to the back of
// l.
func (l *List[E]) MoveBack(k *Link[E]) { k.MoveBefore(l.sentinel()) }

// Len counts the links in the list. This is an O(n) operation.
func (l *List[E]) Len() (count int) {
	s := l.sentinel()
	for k := s.next; k != s; k = k.next {
		count++
	}
	return count
}

// SpliceFront moves every link of from to the front of l, preserving
// their order, and leaves from empty.
func (l *List[E]) SpliceFront(from *List[E]) {
	if from == l || from.Empty() {
		return
	}
	s := l.sentinel()
	l.splice(from, s, s.next)
}

// SpliceBack moves every link of from to the back of l, preserving
// their order, and leaves from empty.
func (l *List[E]) SpliceBack(from *List[E]) {
	if from == l || from.Empty() {
		return
	}
	s := l.sentinel()
	l.splice(from, s.prev, s)
}

func (*List[E]) splice(from *List[E], prev, next *Link[E]) {
	first := from.root.next
	last := from.root.prev

	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last

	from.reset()
}

// Cut moves the links from the front of l up to and including at
// into dst, replacing anything dst held. If at is the sentinel, dst
// becomes empty and l is unchanged. The at link must be a member of
// l.
func (l *List[E]) Cut(dst *List[E], at *Link[E]) {
	dst.reset()
	s := l.sentinel()
	if at == s || l.Empty() {
		return
	}

	first := s.next
	dst.root.next = first
	first.prev = &dst.root
	dst.root.prev = at

	s.next = at.next
	s.next.prev = s

	at.next = &dst.root
}

// Reverse flips the direction of every link, including the sentinel,
// which reverses the list in place.
func (l *List[E]) Reverse() {
	s := l.sentinel()
	k := s
	for {
		next := k.next
		k.flip()
		k = next
		if k == s {
			return
		}
	}
}

func (l *List[E]) reset() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

// All iterates the owners of the list from front to back. The
// iteration tolerates removal of the link being visited.
func (l *List[E]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		s := l.sentinel()
		for k := s.next; k != s; {
			next := k.next
			if !yield(k.owner) {
				return
			}
			k = next
		}
	}
}

// Backward iterates the owners of the list from back to front. The
// iteration tolerates removal of the link being visited.
func (l *List[E]) Backward() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		s := l.sentinel()
		for k := s.prev; k != s; {
			prev := k.prev
			if !yield(k.owner) {
				return
			}
			k = prev
		}
	}
}
