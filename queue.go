package strq

import (
	"fmt"
	"iter"

	"github.com/tychoish/strq/ers"
	"github.com/tychoish/strq/ilist"
)

// Queue is a sentinel-headed circular list of Elements. Queues are
// created by New and destroyed by Free; a nil or freed queue is
// treated as absent by every operation.
type Queue struct {
	list ilist.List[Element]
	conf Conf
	live bool
}

type link = ilist.Link[Element]

// New creates an empty queue. The options are applied in order and
// the resulting configuration is validated. New fails with
// ErrAllocation if the configured allocator refuses the queue.
func New(opts ...Option) (*Queue, error) {
	conf := Conf{}
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			return nil, err
		}
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	if err := conf.Allocator.Allocate(AllocQueue, 0); err != nil {
		return nil, allocationFailure(AllocQueue, err)
	}

	q := &Queue{conf: conf, live: true}
	q.list.Sentinel()
	return q, nil
}

func (q *Queue) ok() bool { return q != nil && q.live }

// Free releases every element in the queue and then the queue itself.
// Free on a nil or already freed queue is a no-op.
func (q *Queue) Free() {
	if !q.ok() {
		return
	}

	for e := range q.list.All() {
		e.Release()
	}

	q.conf.Allocator.Release(AllocQueue, 0)
	q.live = false
}

// PushFront copies text into a new element at the front of the queue.
// Text is truncated at its first zero byte. The queue is unchanged
// when an error is returned.
func (q *Queue) PushFront(text string) error { return q.push(text, (*ilist.List[Element]).PushFront) }

// PushBack copies text into a new element at the back of the queue.
// Text is truncated at its first zero byte. The queue is unchanged
// when an error is returned.
func (q *Queue) PushBack(text string) error { return q.push(text, (*ilist.List[Element]).PushBack) }

// PushFrontBytes is PushFront for a byte slice. A nil slice is an
// absent text and is rejected with ErrInvalidArgument.
func (q *Queue) PushFrontBytes(text []byte) error {
	if text == nil {
		return invalidArgument("absent text")
	}
	return q.PushFront(string(text))
}

// PushBackBytes is PushBack for a byte slice. A nil slice is an
// absent text and is rejected with ErrInvalidArgument.
func (q *Queue) PushBackBytes(text []byte) error {
	if text == nil {
		return invalidArgument("absent text")
	}
	return q.PushBack(string(text))
}

func (q *Queue) push(text string, insert func(*ilist.List[Element], *link)) error {
	if !q.ok() {
		return invalidArgument("absent queue")
	}

	e, err := newElement(q.conf.Allocator, text)
	if err != nil {
		return err
	}

	insert(&q.list, &e.link)
	return nil
}

// PopFront unlinks and returns the first element, or nil when the
// queue is empty or absent. Ownership of the element passes to the
// caller. When buf is not empty the payload is copied into it as
// described by Element.CopyTo.
func (q *Queue) PopFront(buf []byte) *Element {
	if !q.ok() || q.list.Empty() {
		return nil
	}
	return q.pop(q.list.Front(), buf)
}

// PopBack unlinks and returns the last element, or nil when the queue
// is empty or absent. Ownership of the element passes to the caller.
// When buf is not empty the payload is copied into it as described by
// Element.CopyTo.
func (q *Queue) PopBack(buf []byte) *Element {
	if !q.ok() || q.list.Empty() {
		return nil
	}
	return q.pop(q.list.Back(), buf)
}

func (*Queue) pop(k *link, buf []byte) *Element {
	e := k.Owner()
	k.Unlink()
	e.CopyTo(buf)
	return e
}

// Front returns the first element without removing it, or nil.
func (q *Queue) Front() *Element {
	if !q.ok() {
		return nil
	}
	return q.list.Front().Owner()
}

// Back returns the last element without removing it, or nil.
func (q *Queue) Back() *Element {
	if !q.ok() {
		return nil
	}
	return q.list.Back().Owner()
}

// Size counts the elements by walking the list, which is O(n). Absent
// queues have size zero.
func (q *Queue) Size() int {
	if !q.ok() {
		return 0
	}
	return q.list.Len()
}

// Empty reports whether the queue holds no elements. Absent queues are
// empty.
func (q *Queue) Empty() bool { return !q.ok() || q.list.Empty() }

// Values iterates the payloads from front to back.
func (q *Queue) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.ok() {
			return
		}
		for e := range q.list.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Slice copies the payloads, front to back, into a new slice.
func (q *Queue) Slice() []string {
	out := make([]string, 0, q.Size())
	for v := range q.Values() {
		out = append(out, v)
	}
	return out
}

// String renders the payloads for diagnostics.
func (q *Queue) String() string {
	if !q.ok() {
		return "<nil>"
	}
	return fmt.Sprintf("%q", q.Slice())
}

// Validate walks the queue and reports every violated structural
// invariant: the cycle must close at the sentinel with consistent
// back-links, no element may appear twice, the sentinel carries no
// payload, and every linked element still owns its payload.
func (q *Queue) Validate() error {
	if !q.ok() {
		return invalidArgument("absent queue")
	}

	if err := q.list.Check(); err != nil {
		return err
	}

	var errs []error
	idx := 0
	for e := range q.list.All() {
		idx++
		if !e.live {
			errs = append(errs, ers.Wrapf(ErrReleasedElement, "position %d", idx))
		}
	}

	return ers.Join(errs...)
}
