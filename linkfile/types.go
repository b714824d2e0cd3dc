// SPDX-License-Identifier: MIT
// Package: topolab/linkfile
//
// types.go - sentinels, endpoints, links and diagnostics.

package linkfile

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors carried by diagnostics and returned by loaders.
var (
	// ErrInputFormat: malformed link line, endpoint or inventory document.
	ErrInputFormat = errors.New("linkfile: input format")
	// ErrMissingResource: absent file, device or interface.
	ErrMissingResource = errors.New("linkfile: missing resource")
)

// Separators of the link-list syntax "DEV:IF - DEV:IF".
const (
	LinkSeparator     = "-"
	EndpointSeparator = ":"
	CommentPrefix     = "#"
)

// Endpoint is one side of a link.
type Endpoint struct {
	Device    string
	Interface string
}

// String returns "Device:Interface".
func (e Endpoint) String() string { return e.Device + EndpointSeparator + e.Interface }

// ParseEndpoint splits s at the first ':' and trims both parts.
// It fails with ErrInputFormat when s carries no ':'.
func ParseEndpoint(s string) (Endpoint, error) {
	dev, iface, ok := strings.Cut(s, EndpointSeparator)
	if !ok {
		return Endpoint{}, fmt.Errorf("invalid endpoint format (missing ':'): %q: %w", s, ErrInputFormat)
	}
	return Endpoint{Device: strings.TrimSpace(dev), Interface: strings.TrimSpace(iface)}, nil
}

// Link is one parsed line: the raw endpoint texts and their line number.
// Endpoints are kept raw so that consumers decide how to treat a side
// without ':'.
type Link struct {
	Line  int
	Left  string
	Right string
}

// Endpoints parses both sides of l.
func (l Link) Endpoints() (Endpoint, Endpoint, error) {
	a, err := ParseEndpoint(l.Left)
	if err != nil {
		return Endpoint{}, Endpoint{}, err
	}
	b, err := ParseEndpoint(l.Right)
	if err != nil {
		return Endpoint{}, Endpoint{}, err
	}
	return a, b, nil
}

// DiagKind classifies a Diagnostic.
type DiagKind string

const (
	KindInputFormat     DiagKind = "input_format"
	KindMissingResource DiagKind = "missing_resource"
)

// Diagnostic is a non-fatal problem found while reading or checking links.
// Line is 0 when the problem is not tied to one line.
type Diagnostic struct {
	Line int
	Kind DiagKind
	Text string
	Err  error
}

// Error implements error, so diagnostics can be wrapped and matched with errors.Is.
func (d Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Text)
	}
	return d.Text
}

// Unwrap returns the sentinel behind d.
func (d Diagnostic) Unwrap() error { return d.Err }

func diag(line int, err error, text string) Diagnostic {
	kind := KindInputFormat
	if errors.Is(err, ErrMissingResource) {
		kind = KindMissingResource
	}
	return Diagnostic{Line: line, Kind: kind, Text: text, Err: err}
}
