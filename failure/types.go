// SPDX-License-Identifier: MIT
// Package: topolab/failure
//
// types.go - sentinels, enums and the Report value.

package failure

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/metrics"
)

// Sentinel errors. Node and link lookups reuse the core sentinels so callers
// can match either package's value with errors.Is.
var (
	ErrNodeNotFound    = core.ErrNodeNotFound
	ErrLinkNotFound    = core.ErrLinkNotFound
	ErrGraphNil        = core.ErrNilGraph
	ErrInvalidLinkSpec = errors.New("failure: invalid link spec, want NODE1-NODE2")
)

// Kind is the failed element type.
type Kind int

const (
	KindNode Kind = iota + 1
	KindLink
)

// String returns "node" or "link".
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindLink:
		return "link"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Impact grades a failure's effect on connectivity.
type Impact int

const (
	// ImpactNone: the model stays connected and its diameter does not grow.
	ImpactNone Impact = iota
	// ImpactDegraded: still connected with a longer diameter, or the model
	// was already disconnected before the failure.
	ImpactDegraded
	// ImpactCritical: a connected model became disconnected.
	ImpactCritical
)

// String returns "none", "degraded" or "critical".
func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactDegraded:
		return "degraded"
	case ImpactCritical:
		return "critical"
	default:
		return fmt.Sprintf("Impact(%d)", int(i))
	}
}

// LinkMode selects how a link failure is applied to the clone.
type LinkMode int

const (
	// LinkRemove deletes the link from the clone.
	LinkRemove LinkMode = iota
	// LinkDown keeps the link marked Down; connectivity is then judged on
	// the operational view (down links ignored) of both models.
	LinkDown
)

// String returns "remove" or "down".
func (m LinkMode) String() string {
	if m == LinkDown {
		return "down"
	}
	return "remove"
}

// Report describes one simulated failure.
type Report struct {
	ID     uuid.UUID
	Target string
	Kind   Kind
	Mode   LinkMode // link failures only
	Impact Impact

	// RemovedLinks lists the links taken out of service, endpoints as stored.
	RemovedLinks [][2]string
	// AffectedNeighbors are the failed element's neighbours, sorted.
	AffectedNeighbors []string

	WasConnected   bool
	StillConnected bool

	// Components and PartitionSizes describe the failed model.
	Components     [][]string
	PartitionSizes []int

	DiameterBefore    metrics.Diameter
	DiameterAfter     metrics.Diameter
	DiameterIncreased bool
}
