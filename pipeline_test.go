package plume

import "testing"

func TestTask(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i * 2
	}

	results := make([]int, len(items))
	task(4, items, func(i int, item int) {
		results[i] = item + 1
	})

	for i := range results {
		if results[i] != items[i]+1 {
			t.Errorf("item %d: got %d, want %d", i, results[i], items[i]+1)
		}
	}
}

func TestTaskMoreWorkersThanItems(t *testing.T) {
	items := []int{10, 20, 30}
	results := make([]int, len(items))

	task(16, items, func(i int, item int) {
		results[i] = item
	})

	for i := range items {
		if results[i] != items[i] {
			t.Errorf("item %d: got %d, want %d", i, results[i], items[i])
		}
	}
}

func TestTaskZeroWorkers(t *testing.T) {
	items := []int{1, 2, 3}
	results := make([]int, len(items))

	// Un nombre de workers invalide retombe sur un seul worker
	task(0, items, func(i int, item int) {
		results[i] = item
	})

	for i := range items {
		if results[i] != items[i] {
			t.Errorf("item %d: got %d, want %d", i, results[i], items[i])
		}
	}
}

func TestTaskEmpty(t *testing.T) {
	called := false
	task(4, []int{}, func(i int, item int) {
		called = true
	})

	if called {
		t.Error("fn should not be called for an empty slice")
	}
}
