package clock

import (
	"sync"
	"testing"
	"time"
)

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	actual := System{}.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("System.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestStepper(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStepper(start, time.Second)

	if got := s.Now(); !got.Equal(start) {
		t.Errorf("first reading = %v, want %v", got, start)
	}
	if got := s.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("second reading = %v, want %v", got, start.Add(time.Second))
	}
	if got := Since(s, start); got != 2*time.Second {
		t.Errorf("Since() = %v, want 2s", got)
	}
}

func TestStepper_Concurrent(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStepper(start, time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Now()
		}()
	}
	wg.Wait()

	if got := s.Now(); !got.Equal(start.Add(50 * time.Millisecond)) {
		t.Errorf("reading after 50 concurrent reads = %v", got)
	}
}

func TestOrSystem(t *testing.T) {
	if _, ok := OrSystem(nil).(System); !ok {
		t.Error("OrSystem(nil) should return the system clock")
	}
	s := NewStepper(time.Time{}, time.Second)
	if OrSystem(s) != Clock(s) {
		t.Error("OrSystem should return a non-nil clock unchanged")
	}
}
