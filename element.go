package strq

import (
	"strings"

	"github.com/tychoish/strq/ilist"
)

// Element is a single queue entry. It owns a copy of its payload and
// embeds the link that makes it a member of exactly one queue at a
// time.
//
// Elements are created only by the queue's insert operations. An
// element returned by PopFront or PopBack belongs to the caller, who
// should call Release when finished with it.
type Element struct {
	link  ilist.Link[Element]
	value string
	alloc Allocator
	live  bool
}

func newElement(alloc Allocator, text string) (*Element, error) {
	if idx := strings.IndexByte(text, 0); idx >= 0 {
		text = text[:idx]
	}

	if err := alloc.Allocate(AllocElement, 1); err != nil {
		return nil, allocationFailure(AllocElement, err)
	}
	if err := alloc.Allocate(AllocPayload, payloadSize(text)); err != nil {
		alloc.Release(AllocElement, 1)
		return nil, allocationFailure(AllocPayload, err)
	}

	e := &Element{value: strings.Clone(text), alloc: alloc, live: true}
	e.link.Bind(e)
	return e, nil
}

func payloadSize(text string) int { return len(text) + 1 }

// Value returns the element's payload. Released and nil elements
// return the empty string.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// String returns the payload.
func (e *Element) String() string { return e.Value() }

// Linked reports whether the element is currently a member of a
// queue.
func (e *Element) Linked() bool { return e != nil && e.link.Linked() }

// Released reports whether the element's payload has been released.
func (e *Element) Released() bool { return e == nil || !e.live }

// CopyTo copies the payload into buf as zero-terminated text. At most
// len(buf)-1 bytes of payload are copied, and the rest of buf,
// including at least one byte, is zeroed. It returns the number of
// payload bytes copied; an empty buf is left untouched.
func (e *Element) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	n := copy(buf[:len(buf)-1], e.Value())
	clear(buf[n:])
	return n
}

// Release unlinks the element from its queue, if it is still a
// member, and releases its payload. Releasing an element twice, or a
// nil element, is a no-op.
func (e *Element) Release() {
	if e == nil || !e.live {
		return
	}

	e.link.Unlink()
	e.alloc.Release(AllocPayload, payloadSize(e.value))
	e.alloc.Release(AllocElement, 1)
	e.value = ""
	e.live = false
}

// precedes reports whether e belongs strictly before other in the
// requested direction, comparing payloads byte-wise.
func (e *Element) precedes(other *Element, descending bool) bool {
	if descending {
		return e.value > other.value
	}
	return e.value < other.value
}
