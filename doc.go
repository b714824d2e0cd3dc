// Package topolab is a workbench for network topology models: build them
// from generators or link lists, measure them, and see what breaks when a
// device or link fails.
//
// What is in the box?
//
//	A thread-safe undirected model of devices and links, plus:
//		• Generators: star, ring, full/partial mesh, tree, spine-leaf, bus, hybrid
//		• Metrics: density, diameter, average path length, clustering,
//		  articulation points and bridges
//		• Failure simulation: node and link failures with impact reports
//		• Link lists: parse "DEV:IFACE - DEV:IFACE" files, check them
//		  against a YAML inventory, build a model from them
//		• Output: text exports, ASCII adjacency, PNG rendering
//		• Comparison of every shape at one size profile
//
// Packages:
//
//	core/      model types, thread-safe mutation, clone and operational view
//	builder/   topology generators, size profiles, functional options
//	bfs/ dfs/  traversals, components, cycles, articulation points and bridges
//	metrics/   Snapshot of every structural measure
//	failure/   node and link failure simulation
//	compare/   side-by-side shape comparison (lipgloss table)
//	linkfile/  link-list parser, inventory checks, model building
//	export/    text files and ASCII
//	render/    circular-layout PNG
//	config/    YAML + TOPOLAB_* environment configuration, logger factory
//	telemetry/ Prometheus counters and gauges
//	menu/      interactive session and the links pipeline
//	cmd/topolab  the CLI (cobra)
//
// Quick ASCII example:
//
//	    R1───R2
//	    │    │
//	    R4───R3
//
//	a ring of four routers: density 0.667, diameter 2, no articulation points.
//
//	go install github.com/katalvlaran/topolab/cmd/topolab@latest
package topolab
