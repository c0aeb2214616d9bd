package strq_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/tychoish/strq"
	"github.com/tychoish/strq/assert"
	"github.com/tychoish/strq/assert/check"
)

func digits(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = fmt.Sprint(i + 1)
	}
	return out
}

func TestDeleteMiddle(t *testing.T) {
	for _, tc := range []struct {
		in   []string
		want []string
	}{
		{in: []string{"a"}, want: nil},
		{in: []string{"a", "b"}, want: []string{"a"}},
		{in: []string{"a", "b", "c"}, want: []string{"a", "c"}},
		{in: []string{"a", "b", "c", "d"}, want: []string{"a", "b", "d"}},
		{in: []string{"a", "b", "c", "d", "e"}, want: []string{"a", "b", "d", "e"}},
		{in: digits(6), want: []string{"1", "2", "3", "5", "6"}},
	} {
		t.Run(fmt.Sprint(len(tc.in)), func(t *testing.T) {
			q := makeQueue(t, tc.in...)
			check.True(t, q.DeleteMiddle())
			requireQueue(t, q, tc.want...)
		})
	}
	t.Run("Empty", func(t *testing.T) {
		check.True(t, !makeQueue(t).DeleteMiddle())
		var absent *strq.Queue
		check.True(t, !absent.DeleteMiddle())
	})
	t.Run("Releases", func(t *testing.T) {
		budget := &strq.Budget{}
		q, err := strq.New(strq.WithAllocator(budget))
		assert.NotError(t, err)
		defer q.Free()
		for _, v := range []string{"a", "b", "c"} {
			assert.NotError(t, q.PushBack(v))
		}
		q.DeleteMiddle()
		elems, bytes := budget.InUse()
		check.Equal(t, elems, 2)
		check.Equal(t, bytes, 4)
	})
}

func TestDeleteDuplicates(t *testing.T) {
	t.Run("CollapsesRuns", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			in   []string
			want []string
		}{
			{name: "Adjacent", in: []string{"banana", "apple", "apple", "cherry"}, want: []string{"banana", "apple", "cherry"}},
			{name: "NoneRepeated", in: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
			{name: "AllEqual", in: []string{"x", "x", "x", "x"}, want: []string{"x"}},
			{name: "Single", in: []string{"x"}, want: []string{"x"}},
			{name: "TrailingRun", in: []string{"a", "b", "b", "b"}, want: []string{"a", "b"}},
			{name: "Sorted", in: []string{"a", "a", "b", "c", "c", "c", "d"}, want: []string{"a", "b", "c", "d"}},
			{name: "NonAdjacent", in: []string{"a", "b", "a"}, want: []string{"a", "b", "a"}},
		} {
			t.Run(tc.name, func(t *testing.T) {
				q := makeQueue(t, tc.in...)
				check.True(t, q.DeleteDuplicates())
				requireQueue(t, q, tc.want...)
			})
		}
	})
	t.Run("RemovesRuns", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			in   []string
			want []string
		}{
			{name: "Adjacent", in: []string{"banana", "apple", "apple", "cherry"}, want: []string{"banana", "cherry"}},
			{name: "NoneRepeated", in: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
			{name: "AllEqual", in: []string{"x", "x", "x"}, want: nil},
			{name: "TrailingRun", in: []string{"a", "b", "b"}, want: []string{"a"}},
			{name: "LeadingRun", in: []string{"a", "a", "b"}, want: []string{"b"}},
			{name: "Sorted", in: []string{"a", "a", "b", "c", "c", "c", "d"}, want: []string{"b", "d"}},
		} {
			t.Run(tc.name, func(t *testing.T) {
				q := makeQueue(t, tc.in...)
				check.True(t, q.DeleteAllDuplicates())
				requireQueue(t, q, tc.want...)
			})
		}
	})
	t.Run("Empty", func(t *testing.T) {
		q := makeQueue(t)
		check.True(t, !q.DeleteDuplicates())
		check.True(t, !q.DeleteAllDuplicates())
		var absent *strq.Queue
		check.True(t, !absent.DeleteDuplicates())
		check.True(t, !absent.DeleteAllDuplicates())
	})
}

func TestSwapPairs(t *testing.T) {
	for _, tc := range []struct {
		in   []string
		want []string
	}{
		{in: nil, want: nil},
		{in: []string{"1"}, want: []string{"1"}},
		{in: []string{"1", "2"}, want: []string{"2", "1"}},
		{in: digits(5), want: []string{"2", "1", "4", "3", "5"}},
		{in: digits(6), want: []string{"2", "1", "4", "3", "6", "5"}},
	} {
		t.Run(fmt.Sprint(len(tc.in)), func(t *testing.T) {
			q := makeQueue(t, tc.in...)
			q.SwapPairs()
			requireQueue(t, q, tc.want...)
			q.SwapPairs()
			requireQueue(t, q, tc.in...)
		})
	}
	t.Run("Absent", func(t *testing.T) {
		var q *strq.Queue
		assert.NotPanic(t, q.SwapPairs)
	})
}

func TestReverse(t *testing.T) {
	for n := range 6 {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			in := digits(n)
			q := makeQueue(t, in...)
			q.Reverse()
			want := slices.Clone(in)
			slices.Reverse(want)
			requireQueue(t, q, want...)

			q.Reverse()
			requireQueue(t, q, in...)
		})
	}
	t.Run("Absent", func(t *testing.T) {
		var q *strq.Queue
		assert.NotPanic(t, q.Reverse)
	})
}

func TestReverseInGroups(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []string
		k    int
		want []string
	}{
		{name: "Remainder", in: digits(7), k: 3, want: []string{"3", "2", "1", "6", "5", "4", "7"}},
		{name: "Exact", in: digits(6), k: 3, want: []string{"3", "2", "1", "6", "5", "4"}},
		{name: "Pairs", in: digits(5), k: 2, want: []string{"2", "1", "4", "3", "5"}},
		{name: "Whole", in: digits(4), k: 4, want: []string{"4", "3", "2", "1"}},
		{name: "TooShort", in: digits(3), k: 4, want: digits(3)},
		{name: "One", in: digits(3), k: 1, want: digits(3)},
		{name: "Zero", in: digits(3), k: 0, want: digits(3)},
		{name: "Negative", in: digits(3), k: -2, want: digits(3)},
		{name: "Empty", in: nil, k: 3, want: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := makeQueue(t, tc.in...)
			q.ReverseInGroups(tc.k)
			requireQueue(t, q, tc.want...)
		})
	}
	t.Run("MatchesSwapPairs", func(t *testing.T) {
		a := makeQueue(t, digits(9)...)
		b := makeQueue(t, digits(9)...)
		a.ReverseInGroups(2)
		b.SwapPairs()
		check.EqualDiff(t, a.Slice(), b.Slice())
	})
	t.Run("MatchesReverse", func(t *testing.T) {
		a := makeQueue(t, digits(8)...)
		b := makeQueue(t, digits(8)...)
		a.ReverseInGroups(8)
		b.Reverse()
		check.EqualDiff(t, a.Slice(), b.Slice())
	})
	t.Run("Absent", func(t *testing.T) {
		var q *strq.Queue
		assert.NotPanic(t, func() { q.ReverseInGroups(3) })
	})
}
