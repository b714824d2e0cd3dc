// SPDX-License-Identifier: MIT
// Package: topolab/linkfile
//
// graph.go - topology model from a link list.
//
// Contract:
//   - Nodes are devices in order of first appearance in links.
//     device_type comes from the inventory, default "router".
//   - Each link carries both interface names. Bandwidth is the smaller
//     known interface bandwidth (default 1000), MTU the smaller known MTU
//     (default 1500). The link is down when either interface is shut down.
//   - Links with an endpoint lacking ':' or joining a device to itself are
//     skipped with an ErrInputFormat diagnostic. A repeated device pair
//     overwrites the earlier link's attributes.
//   - inv may be nil: every device and interface then takes the defaults.

package linkfile

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// DefaultDeviceType is assigned to devices the inventory does not type.
const DefaultDeviceType = "router"

// BuildGraph builds a model from links, enriched with inv.
func BuildGraph(inv *Inventory, links []Link, opts ...Option) (*core.Graph, []Diagnostic) {
	o := newOptions(opts)
	g := core.NewGraph()
	var diags []Diagnostic

	fail := func(line int, err error, text string) {
		d := diag(line, err, text)
		o.report(d)
		diags = append(diags, d)
	}

	for _, l := range links {
		a, b, err := l.Endpoints()
		if err != nil {
			fail(l.Line, err, fmt.Sprintf("skipping link %s - %s: %v", l.Left, l.Right, err))
			continue
		}
		if a.Device == "" || b.Device == "" {
			fail(l.Line, ErrInputFormat, fmt.Sprintf("skipping link %s - %s: empty device name", l.Left, l.Right))
			continue
		}
		if a.Device == b.Device {
			fail(l.Line, ErrInputFormat, fmt.Sprintf("skipping link %s - %s: both ends on %s", l.Left, l.Right, a.Device))
			continue
		}

		for _, ep := range []Endpoint{a, b} {
			if g.HasNode(ep.Device) {
				continue
			}
			dt := DefaultDeviceType
			if inv.HasDevice(ep.Device) && inv.Devices[ep.Device].DeviceType != "" {
				dt = inv.Devices[ep.Device].DeviceType
			}
			if err = g.AddNode(ep.Device, core.NodeAttrs{DeviceType: dt}); err != nil {
				fail(l.Line, fmt.Errorf("%w: %w", ErrInputFormat, err), err.Error())
			}
		}

		if err = g.AddEdge(a.Device, b.Device, linkAttrs(inv, a, b)); err != nil {
			fail(l.Line, fmt.Errorf("%w: %w", ErrInputFormat, err), err.Error())
		}
	}

	return g, diags
}

// linkAttrs merges the inventory attributes of both interfaces.
func linkAttrs(inv *Inventory, a, b Endpoint) core.LinkAttrs {
	attrs := core.DefaultLinkAttrs()
	attrs.Interfaces = []string{a.Interface, b.Interface}

	bw, mtu := 0, 0
	for _, ep := range []Endpoint{a, b} {
		ia, ok := inv.Interface(ep.Device, ep.Interface)
		if !ok {
			continue
		}
		if ia.Shutdown {
			attrs.Down = true
		}
		if ia.Bandwidth > 0 && (bw == 0 || ia.Bandwidth < bw) {
			bw = ia.Bandwidth
		}
		if ia.MTU > 0 && (mtu == 0 || ia.MTU < mtu) {
			mtu = ia.MTU
		}
	}
	if bw > 0 {
		attrs.Bandwidth = bw
	}
	if mtu > 0 {
		attrs.MTU = mtu
	}

	return attrs
}
