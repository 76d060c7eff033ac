package alloc

import (
	"math"
	"unsafe"

	"github.com/npillmayer/containers/stack"
	"github.com/npillmayer/containers/vector"
)

// SlabSize is the number of objects per slab.
const SlabSize = 64

// Handle addresses an object within a LinearAllocator.
type Handle uint32

// Nil is the handle which never refers to an object.
const Nil Handle = 0

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

type slab[T any] [SlabSize]slot[T]

// LinearAllocator hands out slots for objects of type T.
//
// The usual life cycle of an object is
//
//	h := a.Allocate()
//	a.Construct(h, value)
//	…
//	a.Destroy(h)
//	a.Deallocate(h)
//
// Released handles are recycled, most recently released first.
// The zero value is an empty allocator ready to use.
type LinearAllocator[T any] struct {
	slabs *vector.Vector[*slab[T]]
	free  *stack.Stack[Handle]
	next  uint32 // number of slots ever handed out
	live  int
}

// New creates an empty allocator.
func New[T any]() *LinearAllocator[T] {
	a := &LinearAllocator[T]{}
	a.init()
	return a
}

func (a *LinearAllocator[T]) init() {
	if a.slabs == nil {
		a.slabs = vector.New[*slab[T]]()
		a.free = stack.New[Handle]()
	}
}

func (a *LinearAllocator[T]) slot(h Handle) *slot[T] {
	assert(h != Nil, "alloc: nil handle")
	i := uint32(h - 1)
	assert(i < a.next, "alloc: handle out of range")
	return &(*a.slabs.Ref(int(i / SlabSize)))[i%SlabSize]
}

// Allocate reserves a slot and returns its handle. The slot holds the zero
// value of T until Construct is called.
func (a *LinearAllocator[T]) Allocate() Handle {
	a.init()
	if h, ok := a.free.PopTop(); ok {
		s := a.slot(h)
		s.live = true
		a.live++
		return h
	}
	assert(int(a.next) < a.MaxSize(), "alloc: allocator exhausted")
	if int(a.next/SlabSize) == a.slabs.Len() {
		tracer().Debugf("alloc: adding slab #%d", a.slabs.Len())
		a.slabs.PushBack(new(slab[T]))
	}
	a.next++
	h := Handle(a.next)
	a.slot(h).live = true
	a.live++
	return h
}

// Construct stores value in an allocated slot.
func (a *LinearAllocator[T]) Construct(h Handle, value T) {
	*a.At(h) = value
}

// Destroy resets an allocated slot to the zero value of T, releasing
// references held by the object.
func (a *LinearAllocator[T]) Destroy(h Handle) {
	var zero T
	*a.At(h) = zero
}

// Deallocate releases a slot. The handle must not be used afterwards.
func (a *LinearAllocator[T]) Deallocate(h Handle) {
	s := a.slot(h)
	assert(s.live, "alloc: double deallocation")
	s.live = false
	s.gen++
	a.live--
	a.free.Push(h)
}

// At returns a pointer to the object addressed by h. The pointer stays valid
// until h is deallocated.
func (a *LinearAllocator[T]) At(h Handle) *T {
	s := a.slot(h)
	assert(s.live, "alloc: access to released slot")
	return &s.value
}

// IsLive reports whether h addresses an allocated slot.
func (a *LinearAllocator[T]) IsLive(h Handle) bool {
	if h == Nil || a.slabs == nil || uint32(h-1) >= a.next {
		return false
	}
	return a.slot(h).live
}

// Generation returns the number of times the slot addressed by h has been
// released.
func (a *LinearAllocator[T]) Generation(h Handle) uint32 {
	if h == Nil || a.slabs == nil || uint32(h-1) >= a.next {
		return 0
	}
	return a.slot(h).gen
}

// Live returns the number of allocated slots.
func (a *LinearAllocator[T]) Live() int {
	return a.live
}

// MaxSize returns the maximum number of objects the allocator may hold.
func (a *LinearAllocator[T]) MaxSize() int {
	var s slot[T]
	n := math.MaxInt / int(unsafe.Sizeof(s))
	if n > math.MaxUint32-1 {
		n = math.MaxUint32 - 1
	}
	return n
}
