package core

import "fmt"

// Object is a rectangular movable sprite anchored at an integer origin
// Width and Height are fixed at construction; only X, Y and Vector change per tick
type Object struct {
	X, Y          int
	Width, Height int
	Vector        Vector
	// Chars holds the sprite, Height rows of exactly Width runes
	Chars [][]rune
}

// NewObject creates an object from a rectangular sprite block
// Callers with ragged rows normalize them first (render.NormalizeBlock)
func NewObject(x, y int, chars [][]rune, vector Vector) (Object, error) {
	height := len(chars)
	width := 0
	if height > 0 {
		width = len(chars[0])
	}
	for i, row := range chars {
		if len(row) != width {
			return Object{}, fmt.Errorf("%w: sprite row %d has length %d, expected %d", ErrInvalidConfiguration, i, len(row), width)
		}
	}

	obj := Object{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Vector: vector,
		Chars:  chars,
	}
	if err := obj.Validate(); err != nil {
		return Object{}, err
	}
	return obj, nil
}

// Validate rejects non-positive sizes and non-finite vectors
func (o Object) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: object size %dx%d must be positive", ErrInvalidConfiguration, o.Width, o.Height)
	}
	return o.Vector.Validate()
}

// Rect returns the area the object occupies at its origin
func (o Object) Rect() Area {
	return Area{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// At returns a copy of the object moved to p
func (o Object) At(p Point) Object {
	o.X, o.Y = p.X, p.Y
	return o
}

// Origin returns the object's anchor point
func (o Object) Origin() Point {
	return Point{X: o.X, Y: o.Y}
}
