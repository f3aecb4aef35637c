// Package bound provides axis-aligned bounding volumes for robotics and
// simulation code.
//
// The central type is Box, an axis-aligned box stored as its two extreme
// corners. Constructors normalize arbitrary corner pairs so that Min is
// component-wise below Max; every operation in the package preserves that
// ordering.
package bound

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box in 3D space, stored as its minimum and
// maximum corners.
//
// The corners satisfy Min <= Max on every axis after construction,
// SetCorners, Merge, Extend, Union and Sub. Writing the fields directly
// can break that ordering; the box is not re-normalized afterwards, and
// Intersects relies on both operands being well formed.
//
// The zero value is a degenerate box at the origin. Box values are
// comparable: == reports exact component-wise equality of both corners,
// with no epsilon tolerance.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox builds the box spanning two opposite corners. The corners may be
// given in any order; the true minimum and maximum are computed per axis.
func NewBox(v1, v2 mgl64.Vec3) Box {
	return Box{
		Min: mgl64.Vec3{
			math.Min(v1[0], v2[0]),
			math.Min(v1[1], v2[1]),
			math.Min(v1[2], v2[2]),
		},
		Max: mgl64.Vec3{
			math.Max(v1[0], v2[0]),
			math.Max(v1[1], v2[1]),
			math.Max(v1[2], v2[2]),
		},
	}
}

// NewBoxCoords builds the box spanning the corners (x1,y1,z1) and
// (x2,y2,z2), in any order.
func NewBoxCoords(x1, y1, z1, x2, y2, z2 float64) Box {
	return NewBox(mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x2, y2, z2})
}

// SetCorners resets the box to span v1 and v2, re-normalizing the corner
// order. Use this instead of writing Min/Max directly when the ordering
// of the new corners is not known.
func (b *Box) SetCorners(v1, v2 mgl64.Vec3) {
	*b = NewBox(v1, v2)
}

// XLength returns the extent of the box along the x axis.
func (b Box) XLength() float64 {
	return b.Max.X() - b.Min.X()
}

// YLength returns the extent of the box along the y axis.
func (b Box) YLength() float64 {
	return b.Max.Y() - b.Min.Y()
}

// ZLength returns the extent of the box along the z axis.
func (b Box) ZLength() float64 {
	return b.Max.Z() - b.Min.Z()
}

// Size returns the extents of the box on all three axes, Max - Min.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Volume returns the volume enclosed by the box. Degenerate boxes have
// volume zero.
func (b Box) Volume() float64 {
	return b.XLength() * b.YLength() * b.ZLength()
}

// Valid reports whether Min <= Max holds on every axis. Boxes built
// through the constructors are always valid; a box whose fields were
// written directly may not be.
func (b Box) Valid() bool {
	return b.Min.X() <= b.Max.X() &&
		b.Min.Y() <= b.Max.Y() &&
		b.Min.Z() <= b.Max.Z()
}

// Merge grows the box in place to the smallest box containing both the
// receiver and other.
func (b *Box) Merge(other Box) {
	b.Min = mgl64.Vec3{
		math.Min(b.Min[0], other.Min[0]),
		math.Min(b.Min[1], other.Min[1]),
		math.Min(b.Min[2], other.Min[2]),
	}
	b.Max = mgl64.Vec3{
		math.Max(b.Max[0], other.Max[0]),
		math.Max(b.Max[1], other.Max[1]),
		math.Max(b.Max[2], other.Max[2]),
	}
}

// Union returns the smallest box containing both the receiver and other,
// leaving the receiver unchanged.
func (b Box) Union(other Box) Box {
	b.Merge(other)
	return b
}

// Extend grows the box in place so that it contains point.
func (b *Box) Extend(point mgl64.Vec3) {
	b.Min = mgl64.Vec3{
		math.Min(b.Min[0], point[0]),
		math.Min(b.Min[1], point[1]),
		math.Min(b.Min[2], point[2]),
	}
	b.Max = mgl64.Vec3{
		math.Max(b.Max[0], point[0]),
		math.Max(b.Max[1], point[1]),
		math.Max(b.Max[2], point[2]),
	}
}

// Sub returns the box translated by -v: both corners have v subtracted.
// The receiver is unchanged. Sub moves a box; it is not the inverse of
// Union.
func (b Box) Sub(v mgl64.Vec3) Box {
	return Box{
		Min: b.Min.Sub(v),
		Max: b.Max.Sub(v),
	}
}

// Intersects reports whether the two boxes overlap. Boxes that touch on
// a face, edge or corner count as intersecting.
//
// This test only works if both boxes' minimum corner is below or equal
// to their maximum corner on every axis; the result is unspecified for
// malformed boxes.
func (b Box) Intersects(other Box) bool {
	// Les boîtes se chevauchent si elles se chevauchent sur les 3 axes
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Contains reports whether point lies inside the box or on its boundary.
func (b Box) Contains(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Intersection returns the region shared by both boxes. The second
// return value is false when the boxes do not overlap at all; boxes that
// merely touch yield a degenerate (zero-volume) region and true.
func (b Box) Intersection(other Box) (Box, bool) {
	if !b.Intersects(other) {
		return Box{}, false
	}

	return Box{
		Min: mgl64.Vec3{
			math.Max(b.Min[0], other.Min[0]),
			math.Max(b.Min[1], other.Min[1]),
			math.Max(b.Min[2], other.Min[2]),
		},
		Max: mgl64.Vec3{
			math.Min(b.Max[0], other.Max[0]),
			math.Min(b.Max[1], other.Max[1]),
			math.Min(b.Max[2], other.Max[2]),
		},
	}, true
}

// String renders the box as its minimum corner followed by its maximum
// corner.
func (b Box) String() string {
	return fmt.Sprintf("%v %v", b.Min, b.Max)
}
