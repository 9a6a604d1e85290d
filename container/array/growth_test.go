package array

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestSizeAndCapacityAfterEveryPush(t *testing.T) {
	a := New[int]()
	for i := 0; i < 100; i++ {
		pushAll(t, a, i)
		if a.Len() != i+1 {
			t.Fatalf("Len() = %d after %d pushes", a.Len(), i+1)
		}
		if a.Cap() < a.Len() {
			t.Fatalf("Cap() = %d < Len() = %d", a.Cap(), a.Len())
		}
	}
	for i := 0; i < 100; i++ {
		if v, _ := a.At(i); v != i {
			t.Fatalf("At(%d) = %d after growth", i, v)
		}
	}
}

func TestDoublingLaw(t *testing.T) {
	a := New[int]()
	prev := a.Cap()
	var seen []int
	for i := 0; i < 65; i++ {
		pushAll(t, a, i)
		if c := a.Cap(); c != prev {
			want := 2 * prev
			if prev == 0 {
				want = 1
			}
			if c != want {
				t.Fatalf("capacity grew %d -> %d, want %d", prev, c, want)
			}
			seen = append(seen, c)
			prev = c
		}
	}
	want := []int{1, 2, 4, 8, 16, 32, 64, 128}
	if len(seen) != len(want) {
		t.Fatalf("capacities %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("capacities %v, want %v", seen, want)
		}
	}
}

func TestGrowthMovesInsteadOfCloning(t *testing.T) {
	a := New[box]()
	pushAll(t, a, newBox(1))
	first, _ := a.At(0)

	pushAll(t, a, newBox(2), newBox(3)) // two reallocations
	after, _ := a.At(0)
	if after.v != first.v {
		t.Fatal("growth cloned an element instead of moving it")
	}
}

func TestGrowthClearsOldBuffer(t *testing.T) {
	a := New[*int]()
	x := 1
	pushAll(t, a, &x)
	old := a.buf
	pushAll(t, a, &x)
	if old[0] != nil {
		t.Fatal("old buffer still references moved elements")
	}
}

func TestGrowthFailureKeepsState(t *testing.T) {
	a := New[int](WithMaxCapacity(4))
	pushAll(t, a, 1, 2, 3, 4)
	buf := a.buf

	err := a.Push(5)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("Push past limit error = %v, want ErrAllocation", err)
	}
	requireValues(t, a, 1, 2, 3, 4)
	if a.Cap() != 4 || &a.buf[0] != &buf[0] {
		t.Fatal("failed growth replaced the buffer")
	}
	if err := a.PushMove(5); !errors.Is(err, ErrAllocation) {
		t.Fatalf("PushMove past limit error = %v, want ErrAllocation", err)
	}
}

func TestAllocateRecoversMakePanic(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("requires a 64-bit address space")
	}
	// Within the default element limit but above the runtime's maximum
	// allocation size, so make panics instead of allocating.
	_, err := NewWithCapacity[int64](math.MaxInt / 8)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("huge NewWithCapacity error = %v, want ErrAllocation", err)
	}
}

func TestReserve(t *testing.T) {
	a := New[int]()
	pushAll(t, a, 1, 2)
	if err := a.Reserve(10); err != nil {
		t.Fatalf("Reserve(10) error: %v", err)
	}
	if a.Cap() != 10 {
		t.Fatalf("Cap() = %d, want 10", a.Cap())
	}
	requireValues(t, a, 1, 2)

	if err := a.Reserve(3); err != nil || a.Cap() != 10 {
		t.Fatalf("Reserve(3) shrank or failed: cap %d err %v", a.Cap(), err)
	}
	if err := New[int](WithMaxCapacity(2)).Reserve(3); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Reserve over limit error = %v, want ErrAllocation", err)
	}
}

func TestGrowthIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	a := New[int]()
	pushAll(t, a, 1, 2)

	out := buf.String()
	if strings.Count(out, "array: grow") != 2 {
		t.Fatalf("expected two grow records, got:\n%s", out)
	}
	if !strings.Contains(out, "from=1 to=2") {
		t.Fatalf("grow record missing capacities:\n%s", out)
	}
}
