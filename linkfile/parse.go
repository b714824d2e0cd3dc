// SPDX-License-Identifier: MIT
// Package: topolab/linkfile
//
// parse.go - link-list reader.
//
// Contract:
//   - One link per line: "ENDPOINT1 - ENDPOINT2", split at the first '-'.
//   - Blank lines and lines starting with '#' are ignored.
//   - A line without '-' yields an ErrInputFormat diagnostic and is skipped;
//     reading never stops on a bad line.
//   - Endpoint syntax (':') is not checked here; see Check and BuildGraph.

package linkfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topolab/telemetry"
)

type options struct {
	log logrus.FieldLogger
	rec *telemetry.Recorder
}

// Option configures parsing and checking.
type Option func(*options)

// WithLogger logs every diagnostic at Warn. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("linkfile: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithMetrics counts every diagnostic on rec.
func WithMetrics(rec *telemetry.Recorder) Option {
	return func(o *options) { o.rec = rec }
}

func newOptions(opts []Option) options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	o := options{log: l}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) report(d Diagnostic) {
	o.rec.LinkDiagnostic(string(d.Kind))
	o.log.WithFields(logrus.Fields{"line": d.Line, "kind": string(d.Kind)}).Warn(d.Text)
}

// Parse reads a link list from r.
func Parse(r io.Reader, opts ...Option) ([]Link, []Diagnostic) {
	o := newOptions(opts)

	var (
		links []Link
		diags []Diagnostic
	)
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		left, right, ok := strings.Cut(line, LinkSeparator)
		if !ok {
			d := diag(n, ErrInputFormat, fmt.Sprintf("skipping invalid link line (missing '-'): %s", line))
			o.report(d)
			diags = append(diags, d)
			continue
		}
		links = append(links, Link{Line: n, Left: strings.TrimSpace(left), Right: strings.TrimSpace(right)})
	}
	if err := sc.Err(); err != nil {
		d := diag(n+1, fmt.Errorf("%w: %w", ErrInputFormat, err), fmt.Sprintf("read aborted: %v", err))
		o.report(d)
		diags = append(diags, d)
	}

	return links, diags
}

// ReadFile parses the link list at path. A missing file yields a single
// ErrMissingResource diagnostic and no links.
func ReadFile(path string, opts ...Option) ([]Link, []Diagnostic) {
	f, err := os.Open(path)
	if err != nil {
		sentinel := ErrInputFormat
		if errors.Is(err, fs.ErrNotExist) {
			sentinel = ErrMissingResource
		}
		d := diag(0, fmt.Errorf("%w: %w", sentinel, err), fmt.Sprintf("links file not found: %s", path))
		if sentinel != ErrMissingResource {
			d.Text = fmt.Sprintf("links file unreadable: %s: %v", path, err)
		}
		newOptions(opts).report(d)
		return nil, []Diagnostic{d}
	}
	defer f.Close()

	return Parse(f, opts...)
}
