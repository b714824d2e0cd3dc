// Package builder generates canonical network topologies as core.Graph models.
//
// Two layers are exposed:
//
//   - Constructors (Star, Ring, FullMesh, PartialMesh, Tree, Bus, SpineLeaf,
//     Hybrid) follow the functional Constructor pattern: each returns a closure
//     that mutates a graph using the resolved builderConfig. They are composed
//     with BuildGraph and report invalid parameters through sentinel errors
//     (ErrTooFewNodes, ErrNeedRandSource, ...).
//   - The New* functions and the Build/Quick dispatchers are the forgiving
//     surface used by interactive callers: a shape that cannot be built from
//     the given IDs yields an empty model and a warning log line, never an error.
//
// Shapes are a closed enum (Shape); ParseShape is the only place that maps
// user text to a shape, so unsupported names are rejected in one spot.
//
// Configuration is carried by BuilderOption values:
//
//   - WithSeed / WithRand  inject the random source used by PartialMesh.
//   - WithLogger           sets the logrus logger (discarded by default).
//   - WithBranchingFactor  sets the Tree fan-out used by Build and Quick.
//
// Determinism:
//
//	Every generator except PartialMesh is a pure function of its inputs.
//	PartialMesh is deterministic for a fixed seed; without one, New*/Build
//	fall back to a time-seeded source while the strict constructor returns
//	ErrNeedRandSource.
//
// Link attributes:
//
//	Star     1000 Mbps ethernet         Ring       1000 Mbps serial
//	FullMesh 1000 Mbps ethernet         PartialMesh {100,1000,10000} Mbps ethernet
//	Tree     1000 Mbps ethernet         Bus        100 Mbps coax
//	SpineLeaf fabric 10000 Mbps MTU 9000, host links 1000 Mbps MTU 1500
//	Hybrid   core-distribution 10000 Mbps fiber, distribution-access 1000 Mbps ethernet
package builder
