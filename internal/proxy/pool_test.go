package proxy

import (
	"testing"
)

func TestPoolRotation(t *testing.T) {
	pool := NewPool([]string{"p1", "p2", "p3"})

	if p := pool.GetNext(); p != "p1" {
		t.Errorf("Expected p1, got %s", p)
	}
	if p := pool.GetNext(); p != "p2" {
		t.Errorf("Expected p2, got %s", p)
	}
	if p := pool.GetNext(); p != "p3" {
		t.Errorf("Expected p3, got %s", p)
	}
	if p := pool.GetNext(); p != "p1" {
		t.Errorf("Expected p1, got %s", p)
	}
}

func TestPoolFailureSkipsProxy(t *testing.T) {
	pool := NewPool([]string{"p1", "p2", "p3"})

	if p := pool.GetNext(); p != "p1" {
		t.Fatalf("Expected p1, got %s", p)
	}

	pool.MarkFailed("p2")

	if p := pool.GetNext(); p != "p3" {
		t.Errorf("Expected p3 (skipping p2), got %s", p)
	}
	if p := pool.GetNext(); p != "p1" {
		t.Errorf("Expected p1, got %s", p)
	}
	if p := pool.GetNext(); p != "p3" {
		t.Errorf("Expected p3 (still skipping p2), got %s", p)
	}

	pool.MarkHealthy("p2")

	if p := pool.GetNext(); p != "p1" {
		t.Errorf("Expected p1, got %s", p)
	}
	if p := pool.GetNext(); p != "p2" {
		t.Errorf("Expected p2 after recovery, got %s", p)
	}
}

func TestPoolEmpty(t *testing.T) {
	pool := NewPool(nil)
	if p := pool.GetNext(); p != "" {
		t.Errorf("Expected empty string from empty pool, got %s", p)
	}
}
