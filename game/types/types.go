package types

import "fmt"

// Point is a single grid cell. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p by the vector d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// SameCell reports whether a and b address the same cell
func SameCell(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns an n x n grid.
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the total number of cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center is the spawn cell of a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Food is an optional food cell. The zero value means no food on the board.
type Food struct {
	Cell    Point
	Present bool
}

// FoodAt returns food placed on p.
func FoodAt(p Point) Food {
	return Food{Cell: p, Present: true}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}
