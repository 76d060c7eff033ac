package stack

import (
	"errors"
	"testing"

	"github.com/npillmayer/containers"
)

func TestStackLIFO(t *testing.T) {
	s := New(1, 2, 3)
	if top, err := s.Top(); err != nil || top != 3 {
		t.Fatalf("Top() = %d, %v", top, err)
	}
	s.Push(4)
	s.InsertManyFront(5, 6)
	var got []int
	for !s.IsEmpty() {
		x, _ := s.PopTop()
		got = append(got, x)
	}
	want := []int{6, 5, 4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order mismatch: got=%v want=%v", got, want)
		}
	}
	if _, err := s.Top(); !errors.Is(err, containers.ErrLogic) {
		t.Fatalf("expected ErrLogic, got %v", err)
	}
	s.Pop() // no-op
	if _, ok := s.PopTop(); ok {
		t.Fatalf("PopTop on empty stack should report false")
	}
}

func TestStackZeroValueAndSwap(t *testing.T) {
	var a Stack[string]
	a.Push("x")
	b := New("y", "z")
	a.Swap(b)
	if a.Len() != 2 || b.Len() != 1 {
		t.Fatalf("swap failed: %d/%d", a.Len(), b.Len())
	}
	c := a.Clone()
	c.Pop()
	if a.Len() != 2 {
		t.Fatalf("clone is not independent")
	}
}
