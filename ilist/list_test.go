package ilist

import (
	"slices"
	"testing"

	"github.com/tychoish/strq/assert"
	"github.com/tychoish/strq/assert/check"
	"github.com/tychoish/strq/ers"
)

type node struct {
	val  int
	link Link[node]
}

func newNode(v int) *node {
	n := &node{val: v}
	n.link.Bind(n)
	return n
}

func build(vals ...int) *List[node] {
	l := &List[node]{}
	for _, v := range vals {
		l.PushBack(&newNode(v).link)
	}
	return l
}

func values(l *List[node]) []int {
	out := []int{}
	for n := range l.All() {
		out = append(out, n.val)
	}
	return out
}

func backward(l *List[node]) []int {
	out := []int{}
	for n := range l.Backward() {
		out = append(out, n.val)
	}
	return out
}

func requireList(t *testing.T, l *List[node], want ...int) {
	t.Helper()
	if want == nil {
		want = []int{}
	}
	assert.NotError(t, l.Check())
	assert.EqualDiff(t, want, values(l))
	rev := slices.Clone(want)
	slices.Reverse(rev)
	assert.EqualDiff(t, rev, backward(l))
}

func TestList(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		l := &List[node]{}
		check.True(t, l.Empty())
		check.True(t, !l.Singular())
		check.Equal(t, l.Len(), 0)
		check.True(t, l.IsSentinel(l.Front()))
		check.True(t, l.IsSentinel(l.Back()))
		check.True(t, l.Front().Owner() == nil)
		requireList(t, l)
	})
	t.Run("Push", func(t *testing.T) {
		l := &List[node]{}
		l.PushBack(&newNode(2).link)
		l.PushFront(&newNode(1).link)
		l.PushBack(&newNode(3).link)
		requireList(t, l, 1, 2, 3)
		check.Equal(t, l.Len(), 3)
		check.Equal(t, l.Front().Owner().val, 1)
		check.Equal(t, l.Back().Owner().val, 3)
	})
	t.Run("Singular", func(t *testing.T) {
		l := build(1)
		check.True(t, l.Singular())
		check.True(t, !l.Empty())
		l.PushBack(&newNode(2).link)
		check.True(t, !l.Singular())
	})
	t.Run("DoubleInsertPanics", func(t *testing.T) {
		l := &List[node]{}
		n := newNode(1)
		l.PushBack(&n.link)
		err := ers.WithRecoverCall(func() { l.PushBack(&n.link) })
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrAlreadyLinked)
		check.True(t, ers.IsInvariantViolation(err))

		other := &List[node]{}
		err = ers.WithRecoverCall(func() { other.PushFront(&n.link) })
		check.ErrorIs(t, err, ErrAlreadyLinked)
		requireList(t, l, 1)
		requireList(t, other)
	})
	t.Run("Unlink", func(t *testing.T) {
		l := build(1, 2, 3)
		mid := l.Front().Next()
		mid.Unlink()
		check.True(t, !mid.Linked())
		check.True(t, mid.Next() == nil)
		check.True(t, mid.Prev() == nil)
		requireList(t, l, 1, 3)

		assert.NotPanic(t, mid.Unlink)
		requireList(t, l, 1, 3)

		l.PushFront(mid)
		requireList(t, l, 2, 1, 3)
	})
	t.Run("Move", func(t *testing.T) {
		t.Run("WithinList", func(t *testing.T) {
			l := build(1, 2, 3, 4)
			first := l.Front()
			first.MoveAfter(l.Back())
			requireList(t, l, 2, 3, 4, 1)
			l.Back().MoveBefore(l.Front())
			requireList(t, l, 1, 2, 3, 4)
			l.MoveBack(l.Front().Next())
			requireList(t, l, 1, 3, 4, 2)
			l.MoveFront(l.Back())
			requireList(t, l, 2, 1, 3, 4)
		})
		t.Run("OntoSelf", func(t *testing.T) {
			l := build(1, 2)
			k := l.Front()
			k.MoveAfter(k)
			k.MoveBefore(k)
			requireList(t, l, 1, 2)
		})
		t.Run("BetweenLists", func(t *testing.T) {
			a := build(1, 2, 3)
			b := build(10)
			b.MoveBack(a.Front().Next())
			requireList(t, a, 1, 3)
			requireList(t, b, 10, 2)
			a.MoveFront(b.Front())
			requireList(t, a, 10, 1, 3)
			requireList(t, b, 2)
		})
		t.Run("Detached", func(t *testing.T) {
			l := build(1, 3)
			n := newNode(2)
			n.link.MoveAfter(l.Front())
			requireList(t, l, 1, 2, 3)
		})
	})
	t.Run("Splice", func(t *testing.T) {
		t.Run("Front", func(t *testing.T) {
			a := build(4, 5)
			b := build(1, 2, 3)
			a.SpliceFront(b)
			requireList(t, a, 1, 2, 3, 4, 5)
			requireList(t, b)
		})
		t.Run("Back", func(t *testing.T) {
			a := build(1, 2)
			b := build(3, 4, 5)
			a.SpliceBack(b)
			requireList(t, a, 1, 2, 3, 4, 5)
			requireList(t, b)
		})
		t.Run("IntoEmpty", func(t *testing.T) {
			a := &List[node]{}
			b := build(1, 2)
			a.SpliceBack(b)
			requireList(t, a, 1, 2)
			requireList(t, b)

			c := &List[node]{}
			c.SpliceFront(a)
			requireList(t, c, 1, 2)
			requireList(t, a)
		})
		t.Run("FromEmpty", func(t *testing.T) {
			a := build(1, 2)
			a.SpliceFront(&List[node]{})
			a.SpliceBack(&List[node]{})
			requireList(t, a, 1, 2)
		})
		t.Run("Self", func(t *testing.T) {
			a := build(1, 2)
			a.SpliceFront(a)
			a.SpliceBack(a)
			requireList(t, a, 1, 2)
		})
	})
	t.Run("Cut", func(t *testing.T) {
		t.Run("Middle", func(t *testing.T) {
			l := build(1, 2, 3, 4, 5)
			var dst List[node]
			l.Cut(&dst, l.Front().Next())
			requireList(t, &dst, 1, 2)
			requireList(t, l, 3, 4, 5)
		})
		t.Run("Everything", func(t *testing.T) {
			l := build(1, 2, 3)
			var dst List[node]
			l.Cut(&dst, l.Back())
			requireList(t, &dst, 1, 2, 3)
			requireList(t, l)
		})
		t.Run("AtSentinel", func(t *testing.T) {
			l := build(1, 2, 3)
			var dst List[node]
			l.Cut(&dst, l.Sentinel())
			requireList(t, &dst)
			requireList(t, l, 1, 2, 3)
		})
		t.Run("Single", func(t *testing.T) {
			l := build(7)
			var dst List[node]
			l.Cut(&dst, l.Front())
			requireList(t, &dst, 7)
			requireList(t, l)
		})
	})
	t.Run("Reverse", func(t *testing.T) {
		for _, tc := range [][]int{{}, {1}, {1, 2}, {1, 2, 3}, {1, 2, 3, 4, 5, 6}} {
			l := build(tc...)
			l.Reverse()
			want := slices.Clone(tc)
			slices.Reverse(want)
			requireList(t, l, want...)
			l.Reverse()
			requireList(t, l, tc...)
		}
	})
	t.Run("IterationRemoval", func(t *testing.T) {
		l := build(1, 2, 3, 4, 5, 6)
		for n := range l.All() {
			if n.val%2 == 0 {
				n.link.Unlink()
			}
		}
		requireList(t, l, 1, 3, 5)

		for n := range l.Backward() {
			if n.val == 3 {
				n.link.Unlink()
			}
		}
		requireList(t, l, 1, 5)
	})
	t.Run("EarlyExit", func(t *testing.T) {
		l := build(1, 2, 3)
		seen := 0
		for range l.All() {
			seen++
			break
		}
		check.Equal(t, seen, 1)
		seen = 0
		for range l.Backward() {
			seen++
			break
		}
		check.Equal(t, seen, 1)
	})
}

func TestCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		check.NotError(t, build().Check())
		check.NotError(t, build(1, 2, 3).Check())
	})
	t.Run("BrokenBackLink", func(t *testing.T) {
		l := build(1, 2, 3)
		l.Front().Next().prev = l.Sentinel()
		err := l.Check()
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrBrokenLink)
	})
	t.Run("NilNext", func(t *testing.T) {
		l := build(1, 2, 3)
		l.Front().next = nil
		err := l.Check()
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrBrokenLink)
		check.Substring(t, err.Error(), "position 1")
	})
	t.Run("Loop", func(t *testing.T) {
		l := build(1, 2, 3)
		first, last := l.Front(), l.Back()
		last.next = first
		err := l.Check()
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrDuplicateLink)
	})
	t.Run("SentinelPayload", func(t *testing.T) {
		l := build(1)
		l.Sentinel().Bind(&node{})
		err := l.Check()
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrSentinelPayload)
	})
	t.Run("Orphan", func(t *testing.T) {
		l := build(1)
		l.PushBack(&Link[node]{})
		err := l.Check()
		assert.Error(t, err)
		check.ErrorIs(t, err, ErrOrphanLink)
		check.NotErrorIs(t, err, ErrBrokenLink)
	})
}
