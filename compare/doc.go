// Package compare builds several topology shapes at one size profile and
// lines up their metrics for side-by-side display.
package compare
