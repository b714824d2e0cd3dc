// Package render draws a topology model as a PNG image.
//
// BuildScene computes a circular layout and the styling (leaf nodes red,
// links on a cycle highlighted, interface/bandwidth labels); WritePNG turns
// the scene into pixels. The split keeps the styling rules testable without
// decoding images.
package render
