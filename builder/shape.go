// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// shape.go - the closed set of topology shapes.

package builder

import (
	"fmt"
	"strings"
)

// Shape identifies a topology generator. The zero value is invalid.
type Shape int

// Supported shapes, in the order AllShapes reports them.
const (
	ShapeStar Shape = iota + 1
	ShapeRing
	ShapeMesh
	ShapePartialMesh
	ShapeTree
	ShapeBus
	ShapeSpineLeaf
	ShapeHybrid
)

var shapeNames = map[Shape]string{
	ShapeStar:        "star",
	ShapeRing:        "ring",
	ShapeMesh:        "mesh",
	ShapePartialMesh: "partial-mesh",
	ShapeTree:        "tree",
	ShapeBus:         "bus",
	ShapeSpineLeaf:   "spine-leaf",
	ShapeHybrid:      "hybrid",
}

// String returns the canonical lower-case name ("spine-leaf"), or
// "Shape(n)" for values outside the enum.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// AllShapes returns every supported shape in declaration order.
func AllShapes() []Shape {
	return []Shape{
		ShapeStar, ShapeRing, ShapeMesh, ShapePartialMesh,
		ShapeTree, ShapeBus, ShapeSpineLeaf, ShapeHybrid,
	}
}

// ParseShape maps a user-supplied name to a Shape. Matching ignores case,
// surrounding space, and treats '_' and ' ' like '-', so "Spine_Leaf" and
// "partial mesh" are accepted. Unknown names return ErrUnsupportedShape.
func ParseShape(name string) (Shape, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, s := range AllShapes() {
		if shapeNames[s] == norm {
			return s, nil
		}
	}
	return 0, fmt.Errorf("ParseShape: %q: %w", name, ErrUnsupportedShape)
}
