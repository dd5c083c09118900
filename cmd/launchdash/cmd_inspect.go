package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/spektr-org/launchdash/engine"
)

func newInspectCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show dataset bounds, sites and success rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, ds, err := g.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			lo, hi := ds.Bounds()

			fmt.Fprintf(out, "Source:   %s\n", ds.Source())
			fmt.Fprintf(out, "Summary:  %s\n", engine.FormatStats(engine.Summarize(ds)))
			fmt.Fprintf(out, "Bounds:   %s\n", engine.PayloadRange{Lo: lo, Hi: hi})

			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Site", "Launches", "Successes", "Success %"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
			})
			for _, site := range ds.Sites() {
				s := engine.Summarize(engine.FilterBySite(ds, site))
				tw.AppendRow(table.Row{site, engine.FormatInt(s.Launches), engine.FormatInt(s.Successes), fmt.Sprintf("%.1f", s.SuccessRate)})
			}
			_, err = fmt.Fprintln(out, tw.Render())
			return err
		},
	}
}
