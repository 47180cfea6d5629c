// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for ringdeque components.

package benchmarks

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/ringdeque/checked"
	"github.com/momentics/ringdeque/core/deque"
)

// BenchmarkPushBack measures amortized back insertion including growth.
func BenchmarkPushBack(b *testing.B) {
	d := deque.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
	}
}

// BenchmarkPushFront measures amortized front insertion including growth.
func BenchmarkPushFront(b *testing.B) {
	d := deque.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushFront(i)
	}
}

// BenchmarkSteadyStateFIFO measures push/pop pairs at constant occupancy.
func BenchmarkSteadyStateFIFO(b *testing.B) {
	d := deque.NewWithCapacity[int](1024)
	for i := 0; i < 512; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopFront()
	}
}

// BenchmarkAt measures random access through the modular index map.
func BenchmarkAt(b *testing.B) {
	d := deque.NewWithCapacity[int](1024)
	for i := 0; i < 1024; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += d.At(i & 1023)
	}
	_ = sink
}

// BenchmarkCheckedAt measures the validation overhead of the checked path.
func BenchmarkCheckedAt(b *testing.B) {
	c, _ := checked.NewWithCapacity[int](1024)
	for i := 0; i < 1024; i++ {
		c.PushBack(i)
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		v, _ := c.At(i & 1023)
		sink += v
	}
	_ = sink
}

// BenchmarkInsertAtMiddle measures the O(n) shift path.
func BenchmarkInsertAtMiddle(b *testing.B) {
	d := deque.NewWithCapacity[int](1024)
	for i := 0; i < 512; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.InsertAt(i, d.Len()/2)
		d.RemoveAt(d.Len() / 2)
	}
}

// BenchmarkEapacheQueueFIFO is the same steady-state workload on
// eapache/queue for comparison against BenchmarkSteadyStateFIFO.
func BenchmarkEapacheQueueFIFO(b *testing.B) {
	q := queue.New()
	for i := 0; i < 512; i++ {
		q.Add(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		q.Remove()
	}
}

// BenchmarkIterator measures full traversal via the cursor protocol.
func BenchmarkIterator(b *testing.B) {
	d := deque.NewWithCapacity[int](1024)
	for i := 0; i < 1024; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		for it := d.Begin(); !it.Equal(d.End()); it.Next() {
			sink += it.Value()
		}
	}
	_ = sink
}
