package disclosure_test

import (
	"testing"

	"biaslab/internal/disclosure"
)

func TestItemsStartFromGroupState(t *testing.T) {
	g := disclosure.NewGroup()
	item := disclosure.NewItem(g)
	if item.Open(g) {
		t.Fatal("item should start collapsed")
	}

	g.ToggleAll()
	late := disclosure.NewItem(g)
	if !late.Open(g) {
		t.Fatal("item created after expand-all should start open")
	}
}

func TestToggleAllBroadcastsToAllItems(t *testing.T) {
	g := disclosure.NewGroup()
	items := []disclosure.Item{disclosure.NewItem(g), disclosure.NewItem(g), disclosure.NewItem(g)}

	g.ToggleAll()
	for i := range items {
		if !items[i].Open(g) {
			t.Fatalf("item %d should be open after expand-all", i)
		}
	}

	g.ToggleAll()
	for i := range items {
		if items[i].Open(g) {
			t.Fatalf("item %d should be closed after collapse-all", i)
		}
	}
}

func TestIndividualOverrideSurvivesRerender(t *testing.T) {
	g := disclosure.NewGroup()
	g.ToggleAll() // expand all
	item := disclosure.NewItem(g)

	item.Toggle(g) // user closes this one item
	if item.Open(g) {
		t.Fatal("individual close should stick")
	}
	// Repeated observations (re-renders) under the same generation must not
	// snap the item back to the group flag.
	for i := 0; i < 3; i++ {
		if item.Open(g) {
			t.Fatal("re-render overrode the individual state")
		}
	}
}

func TestToggleAllIsInvolutionDespiteOverrides(t *testing.T) {
	g := disclosure.NewGroup()
	a := disclosure.NewItem(g)
	b := disclosure.NewItem(g)

	g.ToggleAll() // all open
	a.Toggle(g)   // user closes a

	g.ToggleAll() // back to the original synchronized state
	if a.Open(g) || b.Open(g) {
		t.Fatal("two toggles should return every item to closed, overrides discarded")
	}
	if g.AllOpen() {
		t.Fatal("group flag should be back to its initial value")
	}
}

func TestGenerationChangesExactlyOnToggleAll(t *testing.T) {
	g := disclosure.NewGroup()
	start := g.Generation()
	item := disclosure.NewItem(g)
	item.Toggle(g)
	if g.Generation() != start {
		t.Fatal("individual toggles must not advance the group generation")
	}
	g.ToggleAll()
	if g.Generation() != start+1 {
		t.Fatalf("generation = %d, want %d", g.Generation(), start+1)
	}
}
