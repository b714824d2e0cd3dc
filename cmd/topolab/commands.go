package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/compare"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/export"
	"github.com/katalvlaran/topolab/failure"
	"github.com/katalvlaran/topolab/linkfile"
	"github.com/katalvlaran/topolab/menu"
	"github.com/katalvlaran/topolab/metrics"
	"github.com/katalvlaran/topolab/render"
)

// buildShape parses name and quick-builds it at the named size.
func (a *app) buildShape(name, size string) (*core.Graph, builder.Shape, error) {
	shape, err := builder.ParseShape(name)
	if err != nil {
		return nil, 0, err
	}
	opts := append(a.cfg.BuilderOptions(), builder.WithLogger(a.log))
	g := builder.Quick(shape, a.cfg.Profile(size), opts...)
	a.rec.TopologyBuilt(shape.String())
	return g, shape, nil
}

func (a *app) printLines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
}

func newBuildCmd(a *app) *cobra.Command {
	var size string
	var write, png bool
	cmd := &cobra.Command{
		Use:   "build <shape>",
		Short: "Build a topology and print its analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if size == "" {
				size = a.cfg.DefaultSize
			}
			g, shape, err := a.buildShape(args[0], size)
			if err != nil {
				return err
			}
			snap := metrics.Compute(g)
			a.rec.ObserveGraph(snap.NodeCount, snap.EdgeCount, snap.Density)

			fmt.Fprintf(a.out, "%s (%s)\n", shape, size)
			fmt.Fprintln(a.out, export.ASCII(g))
			a.printLines(menu.AnalysisLines(snap))

			if write {
				topo := filepath.Join(a.cfg.OutputDir, export.TopologyFile)
				sum := filepath.Join(a.cfg.OutputDir, export.SummaryFile)
				if err = export.WriteTopologyFile(topo, g); err != nil {
					return err
				}
				if err = export.WriteSummaryFile(sum, g); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Wrote %s and %s\n", topo, sum)
			}
			if png {
				path := filepath.Join(a.cfg.OutputDir, "topology.png")
				if err = render.PNGFile(path, g); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "size profile (small|medium|large or a configured name)")
	cmd.Flags().BoolVar(&write, "export", false, "write topology.txt and topology_summary.txt to the output dir")
	cmd.Flags().BoolVar(&png, "png", false, "render topology.png to the output dir")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the metrics of every topology shape at one size",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			rows := compare.Compare(compare.DefaultShapes(), a.cfg.Profile(size), a.cfg.BuilderOptions()...)
			for _, r := range rows {
				a.rec.TopologyBuilt(r.Shape.String())
			}
			fmt.Fprintln(a.out, compare.Table(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", builder.ProfileSmall, "size profile")
	return cmd
}

func (a *app) simulator() *failure.Simulator {
	return failure.New(failure.WithLogger(a.log), failure.WithMetrics(a.rec))
}

func newFailNodeCmd(a *app) *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "fail-node <shape> <node>",
		Short: "Simulate the failure of one node",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, _, err := a.buildShape(args[0], size)
			if err != nil {
				return err
			}
			_, rep, err := a.simulator().SimulateNodeFailure(g, args[1])
			if err != nil {
				return err
			}
			_, err = rep.WriteTo(a.out)
			return err
		},
	}
	cmd.Flags().StringVar(&size, "size", builder.ProfileMedium, "size profile")
	return cmd
}

func newFailLinkCmd(a *app) *cobra.Command {
	var size string
	var down bool
	cmd := &cobra.Command{
		Use:   "fail-link <shape> <a> <b>",
		Short: "Simulate the failure of one link",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			g, _, err := a.buildShape(args[0], size)
			if err != nil {
				return err
			}
			mode := failure.LinkRemove
			if down {
				mode = failure.LinkDown
			}
			_, rep, err := a.simulator().SimulateLinkFailure(g, args[1], args[2], mode)
			if err != nil {
				return err
			}
			_, err = rep.WriteTo(a.out)
			return err
		},
	}
	cmd.Flags().StringVar(&size, "size", builder.ProfileMedium, "size profile")
	cmd.Flags().BoolVar(&down, "down", false, "mark the link down instead of removing it")
	return cmd
}

func newCheckLinksCmd(a *app) *cobra.Command {
	var links, inv string
	cmd := &cobra.Command{
		Use:   "check-links",
		Short: "Check a link list against a device inventory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			links, inv = orDefault(links, a.cfg.LinksFile), orDefault(inv, a.cfg.InventoryFile)
			opts := []linkfile.Option{linkfile.WithLogger(a.log), linkfile.WithMetrics(a.rec)}

			parsed, diags := linkfile.ReadFile(links, opts...)
			for _, d := range diags {
				fmt.Fprintln(a.out, d.Error())
			}
			inventory, err := linkfile.LoadInventory(inv)
			if err != nil {
				a.log.WithField("inventory", inv).WithError(err).Warn("inventory unavailable, skipping check")
				fmt.Fprintln(a.out, "Inventory unavailable: "+err.Error())
				return nil
			}
			a.printLines(linkfile.Check(inventory, parsed, opts...).Lines())
			return nil
		},
	}
	cmd.Flags().StringVar(&links, "links", "", "link-list file (default from config)")
	cmd.Flags().StringVar(&inv, "inventory", "", "inventory YAML file (default from config)")
	return cmd
}

func newPipelineCmd(a *app) *cobra.Command {
	var links, inv string
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run the full links + inventory pipeline",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.session().RunPipeline(orDefault(links, a.cfg.LinksFile), orDefault(inv, a.cfg.InventoryFile))
		},
	}
	cmd.Flags().StringVar(&links, "links", "", "link-list file (default from config)")
	cmd.Flags().StringVar(&inv, "inventory", "", "inventory YAML file (default from config)")
	return cmd
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
