package strq

import "github.com/tychoish/strq/ilist"

type list = ilist.List[Element]

// MergeSorted merges right into left. Both queues must already be
// sorted in the requested direction; afterwards left holds every
// element, sorted, and right is empty. When the two front payloads
// are equal, the element from right is taken first. The merge only
// relinks elements and never allocates them.
//
// Nothing happens if either queue is absent or both are the same
// queue.
func MergeSorted(left, right *Queue, descending bool) {
	if !left.ok() || !right.ok() || left == right {
		return
	}
	merge(&left.list, &right.list, descending)
}

func merge(left, right *list, descending bool) {
	var out list
	for !left.Empty() && !right.Empty() {
		l, r := left.Front(), right.Front()
		if l.Owner().precedes(r.Owner(), descending) {
			out.MoveBack(l)
		} else {
			out.MoveBack(r)
		}
	}

	out.SpliceBack(left)
	out.SpliceBack(right)
	left.SpliceFront(&out)
}

// Sort orders the queue by payload, ascending or descending, with a
// recursive merge sort that relinks elements in place. The sort is
// stable.
func (q *Queue) Sort(descending bool) {
	if !q.ok() {
		return
	}
	sortList(&q.list, descending)
}

// sortList cuts the front half of l into a local list, sorts both
// halves, and merges the front half in as the right-hand input so
// that ties keep their original order.
func sortList(l *list, descending bool) {
	if l.Empty() || l.Singular() {
		return
	}

	head := l.Sentinel()
	slow, fast := head, head.Next()
	for fast != head && fast.Next() != head {
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	var front list
	l.Cut(&front, slow)

	sortList(&front, descending)
	sortList(l, descending)
	merge(l, &front, descending)
}

// IsSorted reports whether every adjacent pair of payloads is in
// order for the requested direction. Empty, singleton and absent
// queues are sorted.
func (q *Queue) IsSorted(descending bool) bool {
	if !q.ok() || q.list.Empty() {
		return true
	}

	head := q.list.Sentinel()
	for cur := head.Next(); cur.Next() != head; cur = cur.Next() {
		if cur.Next().Owner().precedes(cur.Owner(), descending) {
			return false
		}
	}
	return true
}

// FilterMonotonic removes, and releases, every element that has a
// strictly smaller payload (ascending) or a strictly larger payload
// (descending) anywhere to its right. The survivors read left to
// right are non-decreasing (ascending) or non-increasing
// (descending). It returns the number of remaining elements, or zero
// for an absent queue.
//
// The scan runs from the tail toward the head: the rightmost survivor
// is the candidate, and its left neighbour is deleted whenever it
// belongs strictly after the candidate; otherwise the neighbour
// becomes the candidate.
func (q *Queue) FilterMonotonic(ascending bool) int {
	if !q.ok() || q.list.Empty() {
		return 0
	}

	head := q.list.Sentinel()
	for cur := head.Prev(); cur.Prev() != head; {
		prev := cur.Prev()
		if cur.Owner().precedes(prev.Owner(), !ascending) {
			prev.Owner().Release()
			continue
		}
		cur = prev
	}

	return q.list.Len()
}

// Ascend keeps only the elements with no strictly smaller payload to
// their right, and returns the resulting size.
func (q *Queue) Ascend() int { return q.FilterMonotonic(true) }

// Descend keeps only the elements with no strictly larger payload to
// their right, and returns the resulting size.
func (q *Queue) Descend() int { return q.FilterMonotonic(false) }
