package ilist

import "github.com/tychoish/strq/ers"

const (
	// ErrBrokenLink reports a link whose neighbour does not point
	// back at it, or a detached link reachable from a list.
	ErrBrokenLink ers.Error = ers.Error("broken link")

	// ErrDuplicateLink reports a link visited twice while walking
	// the list once.
	ErrDuplicateLink ers.Error = ers.Error("link appears twice in one traversal")

	// ErrSentinelPayload reports a sentinel that carries an owner.
	ErrSentinelPayload ers.Error = ers.Error("sentinel carries a payload")

	// ErrOrphanLink reports a non-sentinel link with no owner.
	ErrOrphanLink ers.Error = ers.Error("link without an owner")
)

// Check walks the list once and reports every structural violation
// it finds: the cycle must close at the sentinel, every link's
// neighbours must point back at it, no link may repeat, the sentinel
// must be unowned, and every other link must be owned. The walk stops
// at the first break in the chain; all other violations are collected
// and returned together.
func (l *List[E]) Check() error {
	s := l.sentinel()
	var errs []error

	if s.owner != nil {
		errs = append(errs, ErrSentinelPayload)
	}

	seen := map[*Link[E]]struct{}{s: {}}
	idx := 0
	for k := s; ; k = k.next {
		next := k.next
		switch {
		case next == nil:
			errs = append(errs, ers.Wrapf(ErrBrokenLink, "position %d: next is nil", idx))
			return ers.Join(errs...)
		case next.prev != k:
			errs = append(errs, ers.Wrapf(ErrBrokenLink, "position %d: next does not link back", idx))
		}

		if next == s {
			return ers.Join(errs...)
		}

		if _, ok := seen[next]; ok {
			errs = append(errs, ers.Wrapf(ErrDuplicateLink, "position %d", idx+1))
			return ers.Join(errs...)
		}
		seen[next] = struct{}{}

		if next.owner == nil {
			errs = append(errs, ers.Wrapf(ErrOrphanLink, "position %d", idx+1))
		}
		idx++
	}
}
