// Package export writes topology models as flat text files: a sectioned
// topology view (topology.txt), a metrics summary (topology_summary.txt)
// and a compact ASCII adjacency dump. These files are the only persistence
// topolab has.
package export
