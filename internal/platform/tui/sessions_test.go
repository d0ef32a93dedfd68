package tui

import (
	"sync"
	"testing"
	"time"
)

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry(2)
	t0 := time.Unix(1000, 0)

	a, ok := r.Register("dolly", "10.0.0.1:5000", t0.Add(time.Second))
	if !ok {
		t.Fatal("first session should be admitted")
	}
	b, ok := r.Register("shaun", "10.0.0.2:5000", t0)
	if !ok {
		t.Fatal("second session should be admitted")
	}
	if a == b {
		t.Error("session IDs should be unique")
	}

	if _, ok := r.Register("timmy", "10.0.0.3:5000", t0); ok {
		t.Error("registry should refuse sessions past its limit")
	}

	list := r.List()
	if len(list) != 2 || list[0].User != "shaun" || list[1].User != "dolly" {
		t.Errorf("List() = %+v, expected oldest first", list)
	}

	r.Unregister(b)
	if r.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", r.Count())
	}
	if _, ok := r.Register("timmy", "10.0.0.3:5000", t0); !ok {
		t.Error("freed slot should admit a new session")
	}
}

func TestSessionRegistryUnlimitedConcurrent(t *testing.T) {
	r := NewSessionRegistry(0)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, ok := r.Register("sheep", "remote", time.Now())
			if !ok {
				t.Error("unlimited registry refused a session")
				return
			}
			r.Unregister(id)
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d after all sessions left", r.Count())
	}
}
