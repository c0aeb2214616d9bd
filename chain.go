package strq

import (
	"iter"

	"github.com/tychoish/strq/ers"
	"github.com/tychoish/strq/ilist"
)

// Context pairs a queue with a cached element count and the link that
// chains it into a Chain. Size is the count at the last update: Add
// and Refresh set it, MergeAll moves it, and nothing else maintains
// it.
type Context struct {
	Queue *Queue
	Size  int
	ID    int

	chain ilist.Link[Context]
	owner *Chain
}

// Refresh recounts the context's queue and stores the result in Size.
func (c *Context) Refresh() int { c.Size = c.Queue.Size(); return c.Size }

// Chain is a list of queue contexts. The zero value is an empty chain
// ready to use.
type Chain struct {
	list   ilist.List[Context]
	nextID int
}

// Add appends a context for q, recording q's current size, and
// returns it.
func (c *Chain) Add(q *Queue) *Context {
	ctx := &Context{Queue: q, Size: q.Size(), ID: c.nextID, owner: c}
	c.nextID++
	ctx.chain.Bind(ctx)
	c.list.PushBack(&ctx.chain)
	return ctx
}

// Remove unlinks ctx from the chain without freeing its queue. It
// returns false if ctx is not a member of this chain.
func (c *Chain) Remove(ctx *Context) bool {
	if c == nil || ctx == nil || ctx.owner != c || !ctx.chain.Linked() {
		return false
	}
	ctx.chain.Unlink()
	ctx.owner = nil
	return true
}

// Len counts the contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.list.Len()
}

// Front returns the first context, or nil for an empty chain.
func (c *Chain) Front() *Context {
	if c == nil {
		return nil
	}
	return c.list.Front().Owner()
}

// All iterates the contexts in chain order.
func (c *Chain) All() iter.Seq[*Context] {
	return func(yield func(*Context) bool) {
		if c == nil {
			return
		}
		c.list.All()(yield)
	}
}

// Free frees every chained queue and empties the chain.
func (c *Chain) Free() {
	if c == nil {
		return
	}
	for ctx := range c.list.All() {
		ctx.Queue.Free()
		ctx.chain.Unlink()
		ctx.owner = nil
	}
}

// Validate checks the chain's own links and then every chained queue.
func (c *Chain) Validate() error {
	if c == nil {
		return invalidArgument("absent chain")
	}
	if err := c.list.Check(); err != nil {
		return err
	}

	var errs []error
	for ctx := range c.list.All() {
		if err := ctx.Queue.Validate(); err != nil {
			errs = append(errs, ers.Wrapf(err, "context %d", ctx.ID))
		}
	}
	return ers.Join(errs...)
}

// MergeAll moves the elements of every chained queue into the first
// context's queue, then sorts it in the requested direction. The
// cached sizes are summed into the first context and the others are
// set to zero; their (now empty) contexts remain in the chain. It
// returns the first context's resulting Size, or zero when the chain
// is absent or empty or the first queue is absent.
//
// The result is computed from the cached sizes, so it is only the
// true element count when every context was current, as Add and
// Refresh leave them.
func MergeAll(c *Chain, descending bool) int {
	if c == nil || c.list.Empty() {
		return 0
	}

	first := c.Front()
	if !first.Queue.ok() {
		return 0
	}

	for ctx := range c.list.All() {
		if ctx == first {
			continue
		}
		if ctx.Queue.ok() && ctx.Queue != first.Queue {
			first.Queue.list.SpliceFront(&ctx.Queue.list)
		}
		first.Size += ctx.Size
		ctx.Size = 0
	}

	first.Queue.Sort(descending)
	return first.Size
}
