// Package builder provides internal helpers used by the Constructor
// implementations: node insertion with attributes and link emission.
//
// Every helper wraps core errors with the calling constructor's method tag so
// a failure reads "Ring: AddEdge(a,b): core: self-loop not allowed".
package builder

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// linkAttrs assembles an up link with the given speed, MTU and medium.
func linkAttrs(bandwidth, mtu int, linkType string) core.LinkAttrs {
	return core.LinkAttrs{Bandwidth: bandwidth, MTU: mtu, LinkType: linkType}
}

// addNodes inserts every id with the same attrs, in order.
// Complexity: O(len(ids)).
func addNodes(g *core.Graph, method string, ids []string, attrs core.NodeAttrs) error {
	for _, id := range ids {
		if err := g.AddNode(id, attrs); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}
	return nil
}

// addLink connects a and b, overwriting the attributes of an existing link.
func addLink(g *core.Graph, method, a, b string, attrs core.LinkAttrs) error {
	if err := g.AddEdge(a, b, attrs); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, a, b, err)
	}
	return nil
}

// requireNodes rejects id lists shorter than min.
func requireNodes(method string, ids []string, min int) error {
	if len(ids) < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, len(ids), min, ErrTooFewNodes)
	}
	return nil
}
