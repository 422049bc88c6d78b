package vmath

import "math"

// Vec2 is a float64 2D vector used for positions, sizes and offsets in world space
type Vec2 struct {
	X, Y float64
}

// Vec2i is an integer 2D vector used for cell coordinates and texture sizes
type Vec2i struct {
	X, Y int
}

var (
	Vec2Zero  = Vec2{}
	Vec2iZero = Vec2i{}
)

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Rotated returns v rotated counter-clockwise by angle radians
// Zero angle returns v unchanged so unrotated chains stay exact
func (v Vec2) Rotated(angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perpendicular returns v rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// Round rounds each component half away from zero
func (v Vec2) Round() Vec2i {
	return Vec2i{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

func (v Vec2i) Float() Vec2 { return Vec2{float64(v.X), float64(v.Y)} }

// Min returns the per-component minimum
func (v Vec2i) Min(o Vec2i) Vec2i { return Vec2i{min(v.X, o.X), min(v.Y, o.Y)} }
