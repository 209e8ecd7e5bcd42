package model

import "testing"

func TestNewItem(t *testing.T) {
	it := NewItem(3)
	if it.ID != "3" || it.Label != "Item 4" {
		t.Fatalf("NewItem(3) = %+v, want {3 Item 4}", it)
	}
}

func TestSeed(t *testing.T) {
	items := Seed(3)
	want := []Item{{"0", "Item 1"}, {"1", "Item 2"}, {"2", "Item 3"}}
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
	if got := Seed(-1); len(got) != 0 {
		t.Fatalf("Seed(-1) = %v, want empty", got)
	}
}
