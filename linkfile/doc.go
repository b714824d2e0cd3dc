// Package linkfile reads link-list files and checks them against a device
// inventory.
//
// A link list is UTF-8 text with one link per line:
//
//	# core uplinks
//	R1:Gig0/0 - R2:Gig0/1
//	R2:Gig0/2 - SW1:Fa0/1
//
// Problems never abort processing. Bad lines, malformed endpoints and
// missing devices or interfaces come back as Diagnostic values wrapping
// ErrInputFormat or ErrMissingResource, and are logged at Warn when a
// logger is supplied.
//
// BuildGraph turns a link list (plus an optional inventory) into a
// core.Graph whose links carry the interface names at both ends.
package linkfile
