package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/spektr-org/launchdash/binder"
	"github.com/spektr-org/launchdash/engine"
)

type renderFlags struct {
	site       string
	payloadMin float64
	payloadMax float64
	view       string
	format     string
}

func newRenderCmd(g *globalFlags) *cobra.Command {
	rf := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the views for one control state",
		Long: `Computes the proportion and correlation views for the given site and
payload range and prints them. Payload bounds default to the dataset bounds
and are clamped to them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(rf.format, "json", "pretty", "table", "csv"); err != nil {
				return err
			}
			ids, err := selectViews(rf.view)
			if err != nil {
				return err
			}

			_, ds, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if rf.site != engine.AllSites && !ds.HasSite(rf.site) {
				return fmt.Errorf("unknown site %q (want %s or one of %v)", rf.site, engine.AllSites, ds.Sites())
			}

			state := engine.DefaultState(ds)
			state.SelectedSite = rf.site
			if cmd.Flags().Changed("payload-min") {
				state.PayloadRange.Lo = rf.payloadMin
			}
			if cmd.Flags().Changed("payload-max") {
				state.PayloadRange.Hi = rf.payloadMax
			}
			if math.IsNaN(state.PayloadRange.Lo) || math.IsNaN(state.PayloadRange.Hi) {
				return fmt.Errorf("payload range %s is not a number", state.PayloadRange)
			}

			b := binder.New(ds, binder.WithInitialState(state))
			specs := make([]engine.ChartSpec, 0, len(ids))
			for _, id := range ids {
				spec, _ := b.View(id)
				specs = append(specs, spec)
			}

			out := cmd.OutOrStdout()
			switch rf.format {
			case "table":
				return writeTables(out, specs)
			case "csv":
				return writeCSV(out, specs)
			default:
				return writeJSON(out, renderOutput{State: b.State(), Views: specs}, rf.format)
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.site, "site", engine.AllSites, "Launch site, or ALL")
	f.Float64Var(&rf.payloadMin, "payload-min", 0, "Lower payload bound in kg (default: dataset minimum)")
	f.Float64Var(&rf.payloadMax, "payload-max", 0, "Upper payload bound in kg (default: dataset maximum)")
	f.StringVar(&rf.view, "view", "all", "View to print: proportion, correlation or all")
	f.StringVarP(&rf.format, "format", "f", "json", "Output format: json, pretty, table, csv")
	return cmd
}

// renderOutput is the JSON document printed by render.
type renderOutput struct {
	State engine.ControlState `json:"state"`
	Views []engine.ChartSpec  `json:"views"`
}

func selectViews(name string) ([]binder.ViewID, error) {
	switch name {
	case "all", "":
		return []binder.ViewID{binder.ViewProportion, binder.ViewCorrelation}, nil
	case string(binder.ViewProportion):
		return []binder.ViewID{binder.ViewProportion}, nil
	case string(binder.ViewCorrelation):
		return []binder.ViewID{binder.ViewCorrelation}, nil
	default:
		return nil, fmt.Errorf("unknown view %q (want proportion, correlation or all)", name)
	}
}
