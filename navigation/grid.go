// Package navigation implements grid pathfinding for ground agents with
// go-astar. The grid covers the XZ plane; cells touching solid geometry
// (grown by the agent clearance) are unwalkable.
package navigation

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
)

// Grid represents the walkable areas of an arena.
type Grid struct {
	Width, Height int // cells
	CellSize      float64
	Nodes         [][]*Node
	// SearchRadius is how many cells FindPath looks around an unwalkable
	// start or goal for a substitute.
	SearchRadius int
}

// Node is a single cell of the grid. It implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var neighborDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps are only
// allowed when both cells they cut past are walkable.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range neighborDirs {
		neighbor := n.Grid.node(n.X+d.dx, n.Y+d.dy)
		if neighbor == nil || !neighbor.Walkable {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Y), n.Grid.node(n.X, n.Y+d.dy)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, neighbor)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the euclidean distance heuristic.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*Node)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NewGrid builds a navigation grid of width x depth world units from the
// solid objects in space.
func NewGrid(space *resolv.Space, width, depth, cellSize, clearance float64) *Grid {
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(depth / cellSize))

	grid := &Grid{
		Width:        gridW,
		Height:       gridH,
		CellSize:     cellSize,
		Nodes:        make([][]*Node, gridH),
		SearchRadius: config.Navigation.SearchRadius,
	}
	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}

	if space == nil {
		return grid
	}
	// Manual AABB tests avoid adding scratch objects to the shared space.
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvSolid) {
			continue
		}
		x, z, w, d := physics.Bounds(obj)
		minX := grid.clampX(int(math.Floor((x - clearance) / cellSize)))
		maxX := grid.clampX(int(math.Ceil((x+w+clearance)/cellSize)) - 1)
		minY := grid.clampY(int(math.Floor((z - clearance) / cellSize)))
		maxY := grid.clampY(int(math.Ceil((z+d+clearance)/cellSize)) - 1)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				grid.Nodes[y][x].Walkable = false
			}
		}
	}
	return grid
}

func (g *Grid) node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

func (g *Grid) clampX(x int) int { return max(0, min(g.Width-1, x)) }
func (g *Grid) clampY(y int) int { return max(0, min(g.Height-1, y)) }

// cellOf returns the grid coordinates containing a world point, clamped to
// the grid.
func (g *Grid) cellOf(p gamemath.Vec3) (int, int) {
	return g.clampX(int(math.Floor(p.X / g.CellSize))), g.clampY(int(math.Floor(p.Z / g.CellSize)))
}

// Walkable reports whether the cell containing p can be stood on. Points
// outside the grid are not walkable.
func (g *Grid) Walkable(p gamemath.Vec3) bool {
	x, y := int(math.Floor(p.X/g.CellSize)), int(math.Floor(p.Z/g.CellSize))
	n := g.node(x, y)
	return n != nil && n.Walkable
}

// CellCenter converts grid coordinates to the world point at the centre of
// the cell.
func (g *Grid) CellCenter(x, y int) gamemath.Vec3 {
	return gamemath.Vec3{
		X: float64(x)*g.CellSize + g.CellSize/2,
		Z: float64(y)*g.CellSize + g.CellSize/2,
	}
}

// SamplePosition finds the closest walkable point to p within maxDistance on
// the ground plane. A point already on a walkable cell is returned as is.
func (g *Grid) SamplePosition(p gamemath.Vec3, maxDistance float64) (gamemath.Vec3, bool) {
	if g.Walkable(p) {
		return p, true
	}
	cx, cy := int(math.Floor(p.X/g.CellSize)), int(math.Floor(p.Z/g.CellSize))
	reach := int(math.Ceil(maxDistance/g.CellSize)) + 1

	best, bestDist, found := gamemath.Zero, math.Inf(1), false
	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			n := g.node(x, y)
			if n == nil || !n.Walkable {
				continue
			}
			// Closest point inside the cell, pulled in slightly so it
			// maps back onto the same cell.
			inset := g.CellSize * 0.01
			minX, minZ := float64(x)*g.CellSize, float64(y)*g.CellSize
			candidate := gamemath.Vec3{
				X: gamemath.ClampFloat(p.X, minX+inset, minX+g.CellSize-inset),
				Y: p.Y,
				Z: gamemath.ClampFloat(p.Z, minZ+inset, minZ+g.CellSize-inset),
			}
			d := gamemath.FlatDistance(p, candidate)
			if d <= maxDistance && d < bestDist {
				best, bestDist, found = candidate, d, true
			}
		}
	}
	return best, found
}

// FindPath returns the waypoints from start to goal, ending exactly at goal
// when goal is walkable. The start point itself is not included. A nil path
// means the goal cannot be reached.
func (g *Grid) FindPath(start, goal gamemath.Vec3) []gamemath.Vec3 {
	sx, sy := g.cellOf(start)
	gx, gy := g.cellOf(goal)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	goalExact := g.Walkable(goal)
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	var cells []*Node
	if startNode == goalNode {
		cells = []*Node{startNode}
	} else {
		path, _, found := astar.Path(startNode, goalNode)
		if !found {
			return nil
		}
		cells = make([]*Node, len(path))
		for i, p := range path {
			cells[i] = p.(*Node)
		}
		if cells[0] != startNode {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
	}

	points := make([]gamemath.Vec3, 0, len(cells))
	for _, c := range cells[1:] {
		points = append(points, g.CellCenter(c.X, c.Y))
	}
	end := g.CellCenter(goalNode.X, goalNode.Y)
	if goalExact {
		end = goal
	}
	end.Y = goal.Y
	if len(points) == 0 {
		points = append(points, end)
	} else {
		points[len(points)-1] = end
	}
	return g.smooth(start, points)
}

// smooth drops waypoints that can be skipped along a straight walkable line.
func (g *Grid) smooth(start gamemath.Vec3, points []gamemath.Vec3) []gamemath.Vec3 {
	if len(points) < 2 {
		return points
	}
	out := make([]gamemath.Vec3, 0, len(points))
	from := start
	for i := 0; i < len(points); {
		j := len(points) - 1
		for j > i && !g.clearLine(from, points[j]) {
			j--
		}
		out = append(out, points[j])
		from = points[j]
		i = j + 1
	}
	return out
}

// clearLine reports whether every sample along the segment lies on a
// walkable cell.
func (g *Grid) clearLine(a, b gamemath.Vec3) bool {
	dist := gamemath.FlatDistance(a, b)
	step := g.CellSize / 2
	for d := 0.0; d <= dist; d += step {
		if !g.Walkable(gamemath.MoveTowards(a.Flat(), b.Flat(), d)) {
			return false
		}
	}
	return g.Walkable(b)
}

// findNearestWalkable searches in expanding squares around a cell.
func (g *Grid) findNearestWalkable(x, y int) *Node {
	for radius := 1; radius <= g.SearchRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}
