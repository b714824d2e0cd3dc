// SPDX-License-Identifier: MIT
// Package: topolab/failure
//
// report.go - human-readable rendering of a Report.

package failure

import (
	"fmt"
	"io"
	"strings"
)

// Lines renders r as the console narrative shown by the menu and the
// fail-node / fail-link commands.
func (r *Report) Lines() []string {
	out := make([]string, 0, 6+len(r.Components))

	switch r.Kind {
	case KindNode:
		out = append(out,
			fmt.Sprintf("Removed node %s and its %d connections", r.Target, len(r.RemovedLinks)),
			"Affected neighbors: "+strings.Join(r.AffectedNeighbors, ", "))
	case KindLink:
		verb := "Removed"
		if r.Mode == LinkDown {
			verb = "Brought down"
		}
		out = append(out, fmt.Sprintf("%s link %s", verb, r.Target))
	}

	switch {
	case r.Impact == ImpactCritical:
		out = append(out,
			"CRITICAL FAILURE: Network is now disconnected!",
			fmt.Sprintf("Network split into %d isolated components:", len(r.Components)))
		for i, c := range r.Components {
			out = append(out, fmt.Sprintf("  Component %d: %s (%d nodes)", i+1, strings.Join(c, ", "), len(c)))
		}
	case !r.WasConnected:
		out = append(out, fmt.Sprintf("Network was already disconnected (%d components after failure)", len(r.Components)))
	default:
		out = append(out, "Network remains connected after failure")
		if r.DiameterIncreased {
			out = append(out, fmt.Sprintf("Network diameter increased: %s -> %s", r.DiameterBefore, r.DiameterAfter))
		}
	}

	return out
}

// WriteTo writes Lines to w, one per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range r.Lines() {
		n, err := fmt.Fprintln(w, l)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
