// Package pool provides bucketed sync.Pool instances for the transient
// byte buffers the codec stages pixel data through. Buffers are
// organized by size class, sized for image rows up to whole images.
package pool

import "sync"

// Size classes. Raw samples for a 1024x1024 8-bit PPM fit the largest
// class; bigger requests bypass pooling.
const (
	Size4K  = 4096
	Size64K = 65536
	Size1M  = 1 << 20
	Size4M  = 1 << 22
)

var sizes = [4]int{Size4K, Size64K, Size1M, Size4M}

var pools [4]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// bucketIndex returns the pool index for a given size, or -1 when the
// size exceeds every class.
func bucketIndex(size int) int {
	for i, sz := range sizes {
		if size <= sz {
			return i
		}
	}
	return -1
}

// Get returns a byte slice of exactly the requested length. Small
// requests come from the bucketed pools; oversized ones are allocated
// directly.
func Get(size int) []byte {
	idx := bucketIndex(size)
	if idx < 0 {
		return make([]byte, size)
	}
	bp := pools[idx].Get().(*[]byte)
	return (*bp)[:size]
}

// Put returns a slice obtained from Get to its pool. Slices whose
// capacity is not a pool class, including oversized direct allocations,
// are dropped.
func Put(b []byte) {
	c := cap(b)
	idx := bucketIndex(c)
	if idx < 0 || sizes[idx] != c {
		return
	}
	b = b[:c]
	pools[idx].Put(&b)
}
