package game

import "testing"

func testWorld(t *testing.T, seedText string) *World {
	t.Helper()
	seed, err := NewRunSeed(seedText)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewWorld(seed)
}

func TestHearthIsOpen(t *testing.T) {
	w := testWorld(t, "hearth")
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !w.Walkable(x, y) {
				t.Fatalf("expected hearth tile (%d,%d) walkable", x, y)
			}
		}
	}
}

func TestChunksRegenerateIdentically(t *testing.T) {
	w := testWorld(t, "regen")
	var before [16]TileKind
	for i := range before {
		before[i] = w.Tile(100+i, -77)
	}
	w.Trim(0, 0, 0)
	if w.LoadedChunks() > 9 {
		t.Fatalf("expected distant chunks evicted, %d resident", w.LoadedChunks())
	}
	for i := range before {
		if got := w.Tile(100+i, -77); got != before[i] {
			t.Fatalf("tile %d changed after regen: %d vs %d", i, got, before[i])
		}
	}
}

func TestWorldsShareTerrainBySeed(t *testing.T) {
	a := testWorld(t, "twin")
	b := testWorld(t, "twin")
	for _, pt := range [][2]int{{0, 0}, {31, 31}, {-5, 40}, {200, 200}} {
		if a.Tile(pt[0], pt[1]) != b.Tile(pt[0], pt[1]) {
			t.Fatalf("terrain diverged at %v", pt)
		}
	}
}

func TestSpawnFindsFooting(t *testing.T) {
	w := testWorld(t, "spawn")
	def := CreatureDef{ID: "giant_rat", Name: "Giant Rat", Type: CreatureBeast, Health: 8}
	cr, ok := w.Spawn(def, 4, 4)
	if !ok {
		t.Fatalf("expected spawn on open hearth")
	}
	if !w.Walkable(cr.X, cr.Y) {
		t.Fatalf("expected creature on walkable tile")
	}
	if w.CreatureAt(cr.X, cr.Y) == nil {
		t.Fatalf("expected creature findable at its tile")
	}
	// second spawn at the same spot lands adjacent, not stacked
	cr2, ok := w.Spawn(def, cr.X, cr.Y)
	if !ok {
		t.Fatalf("expected second spawn placed nearby")
	}
	if cr2.X == cr.X && cr2.Y == cr.Y {
		t.Fatalf("expected creatures not to stack")
	}
	if len(w.Creatures()) != 2 {
		t.Fatalf("expected 2 creatures, got %d", len(w.Creatures()))
	}
}
