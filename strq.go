// Package strq implements a queue of owned text payloads on top of a
// circular, intrusive, doubly linked list with a sentinel head.
//
// Every Element embeds its own list link, so the structural
// operations (insertion and removal at either end) and the algorithms
// that rearrange the list (reversal, k-group reversal, pair swapping,
// merge sort, monotonic filtering and the multi-queue merge) work by
// rewriting links in place. Only insertion allocates.
//
// Payloads are copied on insertion and are treated as zero-terminated
// text: anything after an embedded zero byte is dropped, and
// comparisons are byte-wise and lexicographic.
//
// Removed elements belong to the caller, who should Release them.
// Queues, elements and chains are not safe for concurrent use; callers
// must serialize access to a queue and to every queue passed together
// to MergeSorted or MergeAll.
package strq

import (
	"github.com/tychoish/strq/ers"
	"github.com/tychoish/strq/ilist"
)

const (
	// ErrInvalidArgument is returned when a required queue or text
	// is absent. It also satisfies errors.Is for ers.ErrInvalidInput.
	ErrInvalidArgument ers.Error = ers.Error("invalid argument")

	// ErrAllocation is returned when the queue's Allocator refuses
	// to provide an element, payload or queue.
	ErrAllocation ers.Error = ers.Error("allocation failure")

	// ErrOverRelease is the cause of the panic raised when a Budget
	// is asked to release more than it allocated.
	ErrOverRelease ers.Error = ers.Error("release exceeds allocation")

	// ErrReleasedElement is reported by Validate for an element
	// whose payload was released while it was still linked.
	ErrReleasedElement ers.Error = ers.Error("released element is still linked")

	ErrBrokenLink      = ilist.ErrBrokenLink
	ErrDuplicateLink   = ilist.ErrDuplicateLink
	ErrSentinelPayload = ilist.ErrSentinelPayload
	ErrOrphanLink      = ilist.ErrOrphanLink
)

func invalidArgument(what string) error {
	return ers.Wrap(ers.Join(ErrInvalidArgument, ers.ErrInvalidInput), what)
}

func allocationFailure(kind AllocKind, err error) error {
	return ers.Wrap(ers.Join(ErrAllocation, err), kind.String())
}
