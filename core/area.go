package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular region on the grid
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Right returns the exclusive right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the exclusive bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Contains returns true if (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// Within returns true if the area lies fully inside a width×height grid
func (a Area) Within(width, height int) bool {
	return a.X >= 0 && a.Y >= 0 && a.Right() <= width && a.Bottom() <= height
}
