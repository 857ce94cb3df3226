// Package geom provides 2D screen-space points and vectors with
// integer coordinates. The origin is the bottom-left corner of the
// screen rectangle.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds indicates coordinates outside the screen rectangle.
var ErrOutOfBounds = errors.New("coordinates outside the screen")

// Point is a bounds-checked screen position.
type Point struct {
	x, y int
}

// NewPoint creates a point validated against a width×height screen.
// Valid coordinates satisfy 0 <= x < width and 0 <= y < height.
func NewPoint(x, y, width, height int) (Point, error) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return Point{}, fmt.Errorf("point (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return Point{x: x, y: y}, nil
}

// X returns the horizontal coordinate.
func (p Point) X() int { return p.x }

// Y returns the vertical coordinate.
func (p Point) Y() int { return p.y }

// String returns a readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("point(x=%d, y=%d)", p.x, p.y)
}

// Vector is a 2D displacement.
type Vector struct {
	X, Y int
}

// NewVector creates a vector from components.
func NewVector(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// VectorBetween returns the vector from tail to head.
func VectorBetween(head, tail Point) Vector {
	return Vector{X: head.x - tail.x, Y: head.y - tail.y}
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Dot returns the dot product.
func (v Vector) Dot(other Vector) int {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the cross product.
func (v Vector) Cross(other Vector) int {
	return v.X*other.Y - other.X*v.Y
}

// String returns a readable representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("vector(x=%d, y=%d)", v.X, v.Y)
}
