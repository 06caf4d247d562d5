package game

import "encoding/json"

// StackEntry is one pack stack: an item id and how many of it.
type StackEntry struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// Inventory stacks items by id and preserves acquisition order, which is the
// order screens list it in. The zero value is an empty pack.
type Inventory struct {
	stacks []StackEntry
}

// Add merges n items into an existing stack or appends a new one.
func (inv *Inventory) Add(id string, n int) {
	if id == "" || n <= 0 {
		return
	}
	for i := range inv.stacks {
		if inv.stacks[i].ItemID == id {
			inv.stacks[i].Count += n
			return
		}
	}
	inv.stacks = append(inv.stacks, StackEntry{ItemID: id, Count: n})
}

// Remove takes n items from a stack, dropping the stack when it empties.
// It reports false without changes when the pack holds fewer than n.
func (inv *Inventory) Remove(id string, n int) bool {
	if n <= 0 {
		return false
	}
	for i := range inv.stacks {
		if inv.stacks[i].ItemID != id {
			continue
		}
		if inv.stacks[i].Count < n {
			return false
		}
		inv.stacks[i].Count -= n
		if inv.stacks[i].Count == 0 {
			inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
		}
		return true
	}
	return false
}

// Count returns how many of id the pack holds.
func (inv *Inventory) Count(id string) int {
	for _, st := range inv.stacks {
		if st.ItemID == id {
			return st.Count
		}
	}
	return 0
}

// Stacks returns the pack in display order.
func (inv *Inventory) Stacks() []StackEntry {
	return inv.stacks
}

// Empty reports whether the pack holds nothing.
func (inv *Inventory) Empty() bool { return len(inv.stacks) == 0 }

// MarshalJSON persists the pack as its ordered stack list.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.stacks)
}

// UnmarshalJSON restores the pack from a stack list.
func (inv *Inventory) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &inv.stacks)
}
