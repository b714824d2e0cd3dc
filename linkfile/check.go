// SPDX-License-Identifier: MIT
// Package: topolab/linkfile
//
// check.go - device/interface existence check of a link list.
//
// Contract:
//   - A device is missing when it is not an inventory key (exact match).
//   - An interface is missing when its device exists but carries no
//     interface of that name, compared case-insensitively; it is reported
//     as "device:iface" with the interface lower-cased.
//   - An endpoint without ':' is an InvalidEndpoints entry; the other side
//     of the same link is still checked.
//   - Both missing lists are sorted and free of duplicates.

package linkfile

import (
	"fmt"
	"sort"
	"strings"
)

// CheckReport is the result of Check.
type CheckReport struct {
	MissingDevices    []string
	MissingInterfaces []string
	InvalidEndpoints  []Diagnostic
}

// OK reports whether nothing is missing or invalid.
func (r CheckReport) OK() bool {
	return len(r.MissingDevices) == 0 && len(r.MissingInterfaces) == 0 && len(r.InvalidEndpoints) == 0
}

// Check verifies that every endpoint of links exists in inv.
func Check(inv *Inventory, links []Link, opts ...Option) CheckReport {
	o := newOptions(opts)
	devs := map[string]struct{}{}
	ifaces := map[string]struct{}{}
	rep := CheckReport{MissingDevices: []string{}, MissingInterfaces: []string{}}

	for _, l := range links {
		for _, raw := range []string{l.Left, l.Right} {
			ep, err := ParseEndpoint(raw)
			if err != nil {
				d := diag(l.Line, err, fmt.Sprintf("invalid endpoint format (missing ':'): %s", raw))
				o.report(d)
				rep.InvalidEndpoints = append(rep.InvalidEndpoints, d)
				continue
			}
			if !inv.HasDevice(ep.Device) {
				devs[ep.Device] = struct{}{}
				continue
			}
			if _, ok := inv.Interface(ep.Device, ep.Interface); !ok {
				ifaces[ep.Device+EndpointSeparator+strings.ToLower(ep.Interface)] = struct{}{}
			}
		}
	}

	for d := range devs {
		rep.MissingDevices = append(rep.MissingDevices, d)
	}
	for i := range ifaces {
		rep.MissingInterfaces = append(rep.MissingInterfaces, i)
	}
	sort.Strings(rep.MissingDevices)
	sort.Strings(rep.MissingInterfaces)
	for _, d := range rep.MissingDevices {
		o.report(diag(0, ErrMissingResource, "missing device: "+d))
	}
	for _, i := range rep.MissingInterfaces {
		o.report(diag(0, ErrMissingResource, "missing interface: "+i))
	}

	return rep
}

// Lines renders r as the console report of the check-links command.
func (r CheckReport) Lines() []string {
	var out []string
	for _, d := range r.InvalidEndpoints {
		out = append(out, d.Error())
	}
	if len(r.MissingDevices) > 0 {
		out = append(out, "Missing devices in inventory:")
		for _, d := range r.MissingDevices {
			out = append(out, " - "+d)
		}
	} else {
		out = append(out, "No missing devices found.")
	}
	if len(r.MissingInterfaces) > 0 {
		out = append(out, "Missing interfaces in inventory:")
		for _, i := range r.MissingInterfaces {
			out = append(out, " - "+i)
		}
	} else {
		out = append(out, "No missing interfaces found.")
	}
	return out
}
