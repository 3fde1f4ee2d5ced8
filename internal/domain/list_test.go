package domain

import (
	"testing"
	"time"
)

func TestListKeepsInsertionOrderAndReplacesInPlace(t *testing.T) {
	var list NoteList
	first := &Note{ID: 3, DateTime: time.Now(), Comment: "first"}
	second := &Note{ID: 1, DateTime: time.Now(), Comment: "second"}
	third := &Note{ID: 2, DateTime: time.Now(), Comment: "third"}

	for _, n := range []*Note{first, second, third} {
		if err := list.Set(n); err != nil {
			t.Fatalf("set note %d: %v", n.ID, err)
		}
	}
	if list.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", list.Len())
	}

	replacement := &Note{ID: 1, DateTime: time.Now(), Comment: "replaced"}
	if err := list.Set(replacement); err != nil {
		t.Fatalf("replace note 1: %v", err)
	}
	if list.Len() != 3 {
		t.Fatalf("replace must not grow the list, got %d entries", list.Len())
	}

	order := make([]int64, 0, 3)
	list.Each(func(n *Note) { order = append(order, n.ID) })
	want := []int64{3, 1, 2}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}

	got, ok := list.ByID(1)
	if !ok {
		t.Fatalf("note 1 missing after replace")
	}
	if got.Comment != "replaced" {
		t.Fatalf("expected replacement entry, got %q", got.Comment)
	}
}

func TestListRejectsNonPositiveIdentity(t *testing.T) {
	var list WeightList
	if err := list.Set(&Weight{ID: 0, DateTime: time.Now(), Value: 80}); err == nil {
		t.Fatalf("expected error for zero id")
	}
	if err := list.Set(&Weight{ID: -1, DateTime: time.Now(), Value: 80}); err == nil {
		t.Fatalf("expected error for negative id")
	}
	if list.Len() != 0 {
		t.Fatalf("rejected entries must not be stored")
	}

	if _, err := NewList(&Weight{ID: 0, DateTime: time.Now(), Value: 80}); err == nil {
		t.Fatalf("NewList must reject a zero id")
	}
}

func TestListCloneIsIndependent(t *testing.T) {
	list, err := NewList(
		&Equipment{ID: 2, Name: "Road Bike"},
		&Equipment{ID: 1, Name: "Trail Shoes"},
	)
	if err != nil {
		t.Fatalf("new list: %v", err)
	}

	clone := list.Clone()
	order := make([]int64, 0, 2)
	clone.Each(func(e *Equipment) { order = append(order, e.ID) })
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("clone must keep the original order, got %v", order)
	}

	// growing and shrinking the clone leaves the original alone
	if err := clone.Set(&Equipment{ID: 5, Name: "Gravel Bike"}); err != nil {
		t.Fatalf("set on clone: %v", err)
	}
	clone.Remove(1)
	if list.Len() != 2 {
		t.Fatalf("original changed with the clone, got %d entries", list.Len())
	}
	if _, ok := list.ByID(1); !ok {
		t.Fatalf("entry 1 missing from the original after clone removal")
	}
}

func TestListRemove(t *testing.T) {
	list, err := NewList(
		&Equipment{ID: 1, Name: "Road Bike"},
		&Equipment{ID: 2, Name: "Trail Shoes"},
	)
	if err != nil {
		t.Fatalf("new list: %v", err)
	}

	if !list.Remove(1) {
		t.Fatalf("expected remove of existing entry to report true")
	}
	if list.Remove(1) {
		t.Fatalf("expected second remove to report false")
	}
	if _, ok := list.ByID(1); ok {
		t.Fatalf("entry 1 still present after remove")
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", list.Len())
	}
}
