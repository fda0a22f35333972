package refcount_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/refcount"
)

func TestNewIsOne(t *testing.T) {
	c := refcount.New()
	if got := c.FetchValue(); got != 1 {
		t.Errorf("New().FetchValue() = %d, want 1", got)
	}
	if c.IsShared() {
		t.Errorf("New() should not be shared")
	}
}

func TestNewAtomicIsNegativeOne(t *testing.T) {
	c := refcount.NewAtomic()
	if got := c.FetchValue(); got != -1 {
		t.Errorf("NewAtomic().FetchValue() = %d, want -1", got)
	}
	if !c.IsShared() {
		t.Errorf("NewAtomic() should be shared")
	}
}

func TestMakeSharedNegatesPositive(t *testing.T) {
	c := refcount.New()
	c.Increment()
	c.Increment() // value = 3
	c.MakeShared()
	if got := c.FetchValue(); got != -3 {
		t.Errorf("FetchValue() = %d, want -3", got)
	}
}

func TestMakeSharedIsIdempotent(t *testing.T) {
	c := refcount.NewAtomic()
	c.MakeShared()
	c.MakeShared()
	if got := c.FetchValue(); got != -1 {
		t.Errorf("FetchValue() = %d, want -1", got)
	}
}

func TestMakeUnsharedOnlySucceedsAtNegativeOne(t *testing.T) {
	shared := refcount.NewAtomic()
	if !shared.MakeUnshared() {
		t.Fatalf("MakeUnshared() on -1 should succeed")
	}
	if got := shared.FetchValue(); got != 1 {
		t.Errorf("FetchValue() = %d, want 1", got)
	}

	multi := refcount.New()
	multi.MakeShared()
	multi.Increment()
	multi.Increment() // -3
	if multi.MakeUnshared() {
		t.Fatalf("MakeUnshared() on -3 should fail")
	}
	if got := multi.FetchValue(); got != -3 {
		t.Errorf("FetchValue() = %d, want unchanged -3, got %d", got, got)
	}
}

func TestIncrementDecrementScenario(t *testing.T) {
	// +3, make_shared, increment x2 -> -5, then decrement x5 ->
	// -4, -3, -2, -1, 0.
	c := refcount.New()
	c.Increment()
	c.Increment() // +3
	c.MakeShared()
	c.Increment()
	c.Increment()
	if got := c.FetchValue(); got != -5 {
		t.Fatalf("FetchValue() = %d, want -5", got)
	}

	want := []int64{-4, -3, -2, -1, 0}
	for i, w := range want {
		if got := c.Decrement(); got != w {
			t.Errorf("Decrement() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestDecrementPositiveMode(t *testing.T) {
	c := refcount.New()
	c.Increment() // 2
	if got := c.Decrement(); got != 1 {
		t.Errorf("Decrement() = %d, want 1", got)
	}
	if got := c.Decrement(); got != 0 {
		t.Errorf("Decrement() = %d, want 0", got)
	}
}

func TestIncrementZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic incrementing a zero counter")
		}
	}()
	c := refcount.New()
	c.Decrement() // -> 0
	c.Increment() // should panic
}

func TestDecrementZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic decrementing a zero counter")
		}
	}()
	c := refcount.New()
	c.Decrement() // -> 0
	c.Decrement() // should panic
}

func TestIsZero(t *testing.T) {
	if !refcount.IsZero(0) {
		t.Errorf("IsZero(0) should be true")
	}
	if refcount.IsZero(1) {
		t.Errorf("IsZero(1) should be false")
	}
	if refcount.IsZero(-1) {
		t.Errorf("IsZero(-1) should be false")
	}
}
