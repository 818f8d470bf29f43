package site

import (
	"sort"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// DigGrid holds a site's tiles as an explicit two-level mapping:
// position → tiles ordered by layer, with the top (deepest, interactable)
// tile maintained as a pointer instead of rescanned.
type DigGrid struct {
	siteID string
	stacks map[Position][]*Tile
	top    map[Position]*Tile
	byID   map[string]*Tile
	order  []string // tile IDs in generation order, for stable iteration
}

// GenerateGrid builds the fixed dig layout for a site: a full base layer of
// size×size tiles, a second layer at the center position and its four
// orthogonal neighbors, and a third layer at the very center only. Layers
// beyond what the site records are not generated.
func GenerateGrid(s *Site, clock shared.Clock) *DigGrid {
	g := &DigGrid{
		siteID: s.ID(),
		stacks: make(map[Position][]*Tile),
		top:    make(map[Position]*Tile),
		byID:   make(map[string]*Tile),
	}

	for y := 0; y < s.Size(); y++ {
		for x := 0; x < s.Size(); x++ {
			g.add(NewTile(s.ID(), Position{X: x, Y: y}, 0, clock))
		}
	}

	center := Position{X: s.Size() / 2, Y: s.Size() / 2}
	if s.Layers() >= 2 {
		neighbors := []Position{
			center,
			{X: center.X - 1, Y: center.Y},
			{X: center.X + 1, Y: center.Y},
			{X: center.X, Y: center.Y - 1},
			{X: center.X, Y: center.Y + 1},
		}
		for _, pos := range neighbors {
			if g.inBounds(pos, s.Size()) {
				g.add(NewTile(s.ID(), pos, 1, clock))
			}
		}
	}
	if s.Layers() >= 3 {
		g.add(NewTile(s.ID(), center, 2, clock))
	}

	return g
}

func (g *DigGrid) inBounds(pos Position, size int) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < size && pos.Y < size
}

func (g *DigGrid) add(t *Tile) {
	stack := append(g.stacks[t.Position()], t)
	sort.SliceStable(stack, func(i, j int) bool { return stack[i].Layer() < stack[j].Layer() })
	g.stacks[t.Position()] = stack

	if current, ok := g.top[t.Position()]; !ok || t.Layer() > current.Layer() {
		g.top[t.Position()] = t
	}
	g.byID[t.ID()] = t
	g.order = append(g.order, t.ID())
}

// SiteID returns the owning site's ID
func (g *DigGrid) SiteID() string { return g.siteID }

// Len returns the total number of tiles across all layers
func (g *DigGrid) Len() int { return len(g.byID) }

// TileByID looks up any tile, interactable or not
func (g *DigGrid) TileByID(id string) (*Tile, bool) {
	t, ok := g.byID[id]
	return t, ok
}

// Top returns the interactable tile at a position
func (g *DigGrid) Top(pos Position) (*Tile, bool) {
	t, ok := g.top[pos]
	return t, ok
}

// TopAt returns the interactable tile at (x, y)
func (g *DigGrid) TopAt(x, y int) (*Tile, bool) {
	return g.Top(Position{X: x, Y: y})
}

// Stack returns all tiles at a position ordered by layer, shallowest first
func (g *DigGrid) Stack(pos Position) []*Tile {
	return append([]*Tile(nil), g.stacks[pos]...)
}

// Tiles returns every tile in generation order
func (g *DigGrid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.order))
	for _, id := range g.order {
		tiles = append(tiles, g.byID[id])
	}
	return tiles
}
