package game

// ChunkSize is the side length of one map chunk in tiles.
const ChunkSize = 32

// TileKind is the terrain of one map cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileWater
	TileMoss
	TileMushroom
	TileOre
	TileRubble
)

// Walkable reports whether a tile can be stood on.
func (t TileKind) Walkable() bool {
	switch t {
	case TileFloor, TileMoss, TileMushroom, TileOre, TileRubble:
		return true
	}
	return false
}

// ChunkCoord addresses a chunk on the infinite grid.
type ChunkCoord struct{ X, Y int }

// Chunk is a generated block of tiles. Chunks are immutable once generated;
// regenerating from the same seed always yields the same tiles.
type Chunk struct {
	Coord ChunkCoord
	Tiles [ChunkSize * ChunkSize]TileKind
}

// Tile returns the tile at chunk-local coordinates.
func (c *Chunk) Tile(lx, ly int) TileKind {
	return c.Tiles[ly*ChunkSize+lx]
}

// Creature is a spawned bestiary instance on the map.
type Creature struct {
	Seq  int
	ID   string
	Name string
	Type CreatureType
	HP   int
	X, Y int
}

// World owns the chunk set and everything standing on it. Chunks generate
// lazily from per-chunk seed streams and can be dropped at any time; they
// come back identical.
type World struct {
	seed    RunSeed
	chunks  map[ChunkCoord]*Chunk
	spawned []Creature
	nextSeq int
}

// NewWorld builds an empty world over the run seed.
func NewWorld(seed RunSeed) *World {
	return &World{seed: seed, chunks: map[ChunkCoord]*Chunk{}, nextSeq: 1}
}

// Tile returns the terrain at global coordinates, generating the owning
// chunk if needed.
func (w *World) Tile(x, y int) TileKind {
	ch := w.chunk(chunkOf(x, y))
	lx := x - ch.Coord.X*ChunkSize
	ly := y - ch.Coord.Y*ChunkSize
	return ch.Tile(lx, ly)
}

// Walkable reports whether the player or a creature can occupy (x, y).
func (w *World) Walkable(x, y int) bool {
	return w.Tile(x, y).Walkable()
}

// LoadedChunks reports how many chunks are resident.
func (w *World) LoadedChunks() int { return len(w.chunks) }

// Trim evicts chunks outside keep chunks of the center position. Spawned
// creatures are untouched; only terrain is dropped and it regenerates on
// demand.
func (w *World) Trim(centerX, centerY, keep int) {
	cc := chunkOf(centerX, centerY)
	for coord := range w.chunks {
		dx := coord.X - cc.X
		dy := coord.Y - cc.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx > keep || dy > keep {
			delete(w.chunks, coord)
		}
	}
}

// Spawn places a bestiary creature at the first walkable tile at or near
// (x, y), searching outward a short distance. It returns the instance and
// false if no footing was found.
func (w *World) Spawn(def CreatureDef, x, y int) (Creature, bool) {
	for r := 0; r <= 4; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				tx, ty := x+dx, y+dy
				if !w.Walkable(tx, ty) || w.CreatureAt(tx, ty) != nil {
					continue
				}
				cr := Creature{
					Seq: w.nextSeq, ID: def.ID, Name: def.Name,
					Type: def.Type, HP: def.Health, X: tx, Y: ty,
				}
				w.nextSeq++
				w.spawned = append(w.spawned, cr)
				return cr, true
			}
		}
	}
	return Creature{}, false
}

// Creatures returns every spawned creature, spawn order.
func (w *World) Creatures() []Creature { return w.spawned }

// CreatureAt returns the creature occupying (x, y), if any.
func (w *World) CreatureAt(x, y int) *Creature {
	for i := range w.spawned {
		if w.spawned[i].X == x && w.spawned[i].Y == y {
			return &w.spawned[i]
		}
	}
	return nil
}

func (w *World) chunk(coord ChunkCoord) *Chunk {
	if ch, ok := w.chunks[coord]; ok {
		return ch
	}
	ch := generateChunk(w.seed, coord)
	w.chunks[coord] = ch
	return ch
}

func chunkOf(x, y int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// generateChunk rolls terrain from the chunk's own stream. A cleared cross
// through the middle of every chunk keeps the cave network traversable, and
// the hearth chunk around the origin is kept open for the settlement.
func generateChunk(seed RunSeed, coord ChunkCoord) *Chunk {
	ch := &Chunk{Coord: coord}
	st := seed.ChunkStream(coord.X, coord.Y)
	weights := []int{30, 52, 4, 6, 4, 3, 1} // wall, floor, water, moss, mushroom, ore, rubble
	kinds := []TileKind{TileWall, TileFloor, TileWater, TileMoss, TileMushroom, TileOre, TileRubble}
	for i := range ch.Tiles {
		ch.Tiles[i] = kinds[st.WeightedIndex(weights)]
	}
	mid := ChunkSize / 2
	for i := 0; i < ChunkSize; i++ {
		ch.Tiles[mid*ChunkSize+i] = TileFloor
		ch.Tiles[i*ChunkSize+mid] = TileFloor
	}
	if coord.X == 0 && coord.Y == 0 {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				ch.Tiles[y*ChunkSize+x] = TileFloor
			}
		}
	}
	return ch
}
