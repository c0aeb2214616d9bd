package strq

import (
	"fmt"

	"github.com/tychoish/strq/ers"
)

// AllocKind identifies what an Allocator is asked to provide.
type AllocKind int8

const (
	// AllocQueue is requested once by New, for the queue's sentinel.
	AllocQueue AllocKind = iota
	// AllocElement is requested once per inserted element.
	AllocElement
	// AllocPayload is requested once per inserted element, with the
	// size of its payload including the terminating zero byte.
	AllocPayload
)

func (k AllocKind) String() string {
	switch k {
	case AllocQueue:
		return "queue"
	case AllocElement:
		return "element"
	case AllocPayload:
		return "payload"
	default:
		return fmt.Sprintf("AllocKind(%d)", int8(k))
	}
}

// Allocator accounts for the memory a queue holds. Allocate is
// consulted before anything is created; a non-nil error aborts the
// operation before it touches the list, and is reported to the caller
// joined with ErrAllocation. Release is called once for every
// successful Allocate when the element, payload or queue is released.
//
// Allocators may be shared between queues, which makes a limit apply
// to all of them together. Elements remember the allocator that
// created them, so moving an element between queues does not move its
// accounting.
type Allocator interface {
	Allocate(kind AllocKind, size int) error
	Release(kind AllocKind, size int)
}

type heapAllocator struct{}

func (heapAllocator) Allocate(AllocKind, int) error { return nil }
func (heapAllocator) Release(AllocKind, int)        {}

// Budget is an Allocator that enforces limits on the number of live
// elements and the number of payload bytes they hold. A zero limit is
// unlimited. The zero value is an unlimited budget that still counts.
type Budget struct {
	MemoryLimit int
	MaxElements int

	elements int
	bytes    int
}

// Allocate implements Allocator. Refusals wrap ers.ErrLimitExceeded.
func (b *Budget) Allocate(kind AllocKind, size int) error {
	switch kind {
	case AllocElement:
		if b.MaxElements > 0 && b.elements+1 > b.MaxElements {
			return fmt.Errorf("%s budget of %d: %w", kind, b.MaxElements, ers.ErrLimitExceeded)
		}
		b.elements++
	case AllocPayload:
		if b.MemoryLimit > 0 && b.bytes+size > b.MemoryLimit {
			return fmt.Errorf("%s of %d bytes exceeds budget of %d (%d in use): %w",
				kind, size, b.MemoryLimit, b.bytes, ers.ErrLimitExceeded)
		}
		b.bytes += size
	}
	return nil
}

// Release implements Allocator. Releasing more than was allocated
// panics with an ers.ErrInvariantViolation.
func (b *Budget) Release(kind AllocKind, size int) {
	switch kind {
	case AllocElement:
		if b.elements < 1 {
			panic(ers.NewInvariantViolation(ers.Wrapf(ErrOverRelease, "%s with none in use", kind)))
		}
		b.elements--
	case AllocPayload:
		if size > b.bytes {
			panic(ers.NewInvariantViolation(ers.Wrapf(ErrOverRelease, "%s of %d bytes with %d in use", kind, size, b.bytes)))
		}
		b.bytes -= size
	}
}

// InUse reports the live elements and payload bytes charged to the
// budget.
func (b *Budget) InUse() (elements, bytes int) { return b.elements, b.bytes }

// Conf describes the construction options of a Queue. The zero value
// is a valid, unlimited configuration.
type Conf struct {
	// MemoryLimit caps the payload bytes (each payload counts its
	// length plus one terminating byte) held by the queue's
	// elements. Zero is unlimited.
	MemoryLimit int
	// MaxElements caps the number of live elements created by the
	// queue. Zero is unlimited.
	MaxElements int
	// Allocator overrides the accounting entirely. It is mutually
	// exclusive with the limits above; use a Budget to combine a
	// shared allocator with limits.
	Allocator Allocator
}

// Validate ensures that the configuration is valid, installs the
// allocator implied by the limits, and returns an error if there are
// impossible configurations.
func (c *Conf) Validate() error {
	if err := ers.Join(
		ers.Whenf(c.MemoryLimit < 0, "memory limit %d is negative", c.MemoryLimit),
		ers.Whenf(c.MaxElements < 0, "element limit %d is negative", c.MaxElements),
		ers.When(c.Allocator != nil && (c.MemoryLimit != 0 || c.MaxElements != 0),
			"limits cannot be combined with a custom allocator"),
	); err != nil {
		return ers.Join(err, ers.ErrMalformedConfiguration)
	}

	switch {
	case c.Allocator != nil:
	case c.MemoryLimit != 0 || c.MaxElements != 0:
		c.Allocator = &Budget{MemoryLimit: c.MemoryLimit, MaxElements: c.MaxElements}
	default:
		c.Allocator = heapAllocator{}
	}

	return nil
}

// Option mutates a Conf during New.
type Option func(*Conf) error

// WithConf replaces the configuration wholesale.
func WithConf(conf Conf) Option { return func(c *Conf) error { *c = conf; return nil } }

// WithMemoryLimit sets Conf.MemoryLimit.
func WithMemoryLimit(bytes int) Option {
	return func(c *Conf) error { c.MemoryLimit = bytes; return nil }
}

// WithMaxElements sets Conf.MaxElements.
func WithMaxElements(n int) Option {
	return func(c *Conf) error { c.MaxElements = n; return nil }
}

// WithAllocator sets Conf.Allocator. A nil allocator is rejected.
func WithAllocator(a Allocator) Option {
	return func(c *Conf) error {
		if a == nil {
			return ers.Join(ers.New("nil allocator"), ers.ErrMalformedConfiguration)
		}
		c.Allocator = a
		return nil
	}
}
