package vec

import (
	"errors"
	"testing"
)

func TestCheckedUncheckedAgree(t *testing.T) {
	v := Of(10, 20, 30)
	for i := 0; i < v.Len(); i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("At(%d) error = %v, want nil", i, err)
		}
		if got != v.Get(i) {
			t.Errorf("At(%d) = %d, Get(%d) = %d, want equal", i, got, i, v.Get(i))
		}
		ref, err := v.AtRef(i)
		if err != nil {
			t.Fatalf("AtRef(%d) error = %v, want nil", i, err)
		}
		if ref != v.Ref(i) {
			t.Errorf("AtRef(%d) and Ref(%d) point to different slots", i, i)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	v := Of(1, 2, 3)
	tests := []struct {
		name string
		i    int
	}{
		{"at size", 3},
		{"past size", 100},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.At(tt.i); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("At(%d) error = %v, want ErrOutOfRange", tt.i, err)
			}
			if _, err := v.AtRef(tt.i); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("AtRef(%d) error = %v, want ErrOutOfRange", tt.i, err)
			}
		})
	}
}

func TestAtNeverFailsInRange(t *testing.T) {
	v := New[int]()
	for k := 0; k < 50; k++ {
		v.Push(k)
		for i := 0; i < v.Len(); i++ {
			if _, err := v.At(i); err != nil {
				t.Fatalf("At(%d) with size %d: %v", i, v.Len(), err)
			}
		}
		if _, err := v.At(v.Len()); err == nil {
			t.Fatalf("At(%d) with size %d succeeded", v.Len(), v.Len())
		}
	}
}

func TestGetDeadSlotPanics(t *testing.T) {
	v := NewReserved[int](Reserve(10))
	v.Push(1)

	// Index 5 is allocated but dead; unchecked access must not reach it.
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic reading a dead slot")
		}
	}()
	v.Get(5)
}

func TestSetWritesThrough(t *testing.T) {
	v := Of(1, 2, 3)
	v.Set(1, 42)
	if got := v.Get(1); got != 42 {
		t.Errorf("Get(1) after Set = %d, want 42", got)
	}
}

func TestRefMutatesInPlace(t *testing.T) {
	v := Of(1, 2, 3)
	*v.Ref(2) = 30
	if got := v.Get(2); got != 30 {
		t.Errorf("Get(2) after *Ref(2) = %d, want 30", got)
	}
}
