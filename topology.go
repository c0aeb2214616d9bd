package strq

// middle finds the middle of the list with a slow/fast walk that
// starts both cursors at the first element. For an even number of
// elements it lands on the later of the two middle elements.
func (q *Queue) middle() *link {
	head := q.list.Sentinel()
	slow, fast := head.Next(), head.Next()
	for fast != head && fast.Next() != head {
		slow = slow.Next()
		fast = fast.Next().Next()
	}
	return slow
}

// DeleteMiddle removes and releases the middle element: the element at
// index n/2 for a queue of n elements. It returns false when the queue
// is empty or absent.
func (q *Queue) DeleteMiddle() bool {
	if !q.ok() || q.list.Empty() {
		return false
	}

	q.middle().Owner().Release()
	return true
}

// DeleteDuplicates removes every element whose payload equals that of
// the element immediately before it, collapsing each run of equal
// adjacent payloads to its first member. It expects duplicates to be
// adjacent, as they are in a sorted queue. It returns false when the
// queue is empty or absent.
func (q *Queue) DeleteDuplicates() bool {
	if !q.ok() || q.list.Empty() {
		return false
	}

	head := q.list.Sentinel()
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		if next != head && next.Owner().value == cur.Owner().value {
			next.Owner().Release()
			continue
		}
		cur = next
	}
	return true
}

// DeleteAllDuplicates removes every member of each run of equal
// adjacent payloads, keeping only payloads that were not repeated
// next to themselves. It returns false when the queue is empty or
// absent.
func (q *Queue) DeleteAllDuplicates() bool {
	if !q.ok() || q.list.Empty() {
		return false
	}

	head := q.list.Sentinel()
	inRun := false
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		if next != head && next.Owner().value == cur.Owner().value {
			inRun = true
			next.Owner().Release()
			continue
		}

		if inRun {
			inRun = false
			cur.Owner().Release()
		}
		cur = next
	}
	return true
}

// SwapPairs exchanges the elements at positions (0,1), (2,3), and so
// on. A trailing unpaired element stays where it is.
func (q *Queue) SwapPairs() {
	if !q.ok() {
		return
	}

	head := q.list.Sentinel()
	for cur := head.Next(); cur != head && cur.Next() != head; cur = cur.Next() {
		cur.Next().MoveAfter(cur.Prev())
	}
}

// Reverse reverses the queue in place by flipping every link,
// including the sentinel's.
func (q *Queue) Reverse() {
	if !q.ok() {
		return
	}
	q.list.Reverse()
}

// ReverseInGroups reverses each consecutive run of k elements from the
// front, keeping the order of the runs. A final run shorter than k
// keeps its order. Group sizes below two are a no-op.
func (q *Queue) ReverseInGroups(k int) {
	if !q.ok() || k <= 1 || q.list.Empty() {
		return
	}

	cur := q.list.Front()
	for count := q.list.Len(); count >= k; count -= k {
		prev, next := cur.Prev(), cur.Next()
		for range k {
			cur.MoveAfter(prev)
			cur = next
			next = next.Next()
		}
	}
}
