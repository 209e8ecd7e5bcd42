package model

import (
	"fmt"
	"strconv"
)

// Item is one row of the task list.
// ID is assigned once from the list counter and never reused.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NewItem builds the item for counter value n: id "n", label "Item n+1".
func NewItem(n int) Item {
	return Item{
		ID:    strconv.Itoa(n),
		Label: fmt.Sprintf("Item %d", n+1),
	}
}

// Seed returns the first count items, ids 0..count-1.
func Seed(count int) []Item {
	if count < 0 {
		count = 0
	}
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, NewItem(i))
	}
	return items
}
