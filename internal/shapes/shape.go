// Package shapes implements the tagged Shape variant: Triangle, Ellipse,
// Rectangle and RotatedRectangle, each with random construction, in-place
// mutation, rasterization to scanlines, uniform scaling and
// vector-document serialisation.
//
// A sum type with a per-variant implementation stands in for subtype
// polymorphism: Kind tags which concrete type a Shape value holds, and
// the Shape interface is the capability set {Mutate, Rasterize, Scaled,
// Vector}.
package shapes

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/primsketch/internal/geom"
)

// Kind identifies a primitive family.
type Kind int

const (
	KindTriangle Kind = iota
	KindEllipse
	KindRectangle
	KindRotatedRectangle
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindEllipse:
		return "ellipse"
	case KindRectangle:
		return "rectangle"
	case KindRotatedRectangle:
		return "rotatedrectangle"
	default:
		return "unknown"
	}
}

// ParseKind maps a CLI shape name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "triangle":
		return KindTriangle, nil
	case "ellipse":
		return KindEllipse, nil
	case "rectangle":
		return KindRectangle, nil
	case "rotatedrectangle", "rotated-rectangle":
		return KindRotatedRectangle, nil
	default:
		return 0, fmt.Errorf("unknown shape type %q", name)
	}
}

// Shape is the capability set every primitive family implements.
type Shape interface {
	// Kind reports which primitive family this value holds.
	Kind() Kind

	// Clone returns an independent copy, so a caller can mutate the copy
	// while keeping the original as a fallback during hill-climbing.
	Clone() Shape

	// Mutate perturbs the shape in place, repeating until the result is
	// valid for families with a validity constraint (Triangle).
	Mutate(w, h int, r *rand.Rand)

	// Rasterize clips the shape to [0,w)x[0,h) and writes its scanlines
	// into buf (capacity >= h+1), returning the valid, non-empty prefix.
	Rasterize(w, h int, buf []geom.Scanline) []geom.Scanline

	// Scaled returns a copy with every coordinate multiplied by scale,
	// rounded to the nearest integer. Rotation angles (RotatedRectangle)
	// are invariant under scale.
	Scaled(scale float64) Shape

	// Vector renders the shape as a vector-document fragment (SVG-style
	// markup) using fillAttr as the element's fill/opacity attributes.
	Vector(fillAttr string) string
}

// Random constructs a new shape of the given kind with the family's random
// construction rule.
func Random(kind Kind, w, h int, r *rand.Rand) Shape {
	switch kind {
	case KindTriangle:
		return randomTriangle(w, h, r)
	case KindEllipse:
		return randomEllipse(w, h, r)
	case KindRectangle:
		return randomRectangle(w, h, r)
	case KindRotatedRectangle:
		return randomRotatedRectangle(w, h, r)
	default:
		panic(fmt.Sprintf("shapes: unknown kind %v", kind))
	}
}
