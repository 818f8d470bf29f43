package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
	"github.com/tellsim/tellsim-go/internal/domain/site"
)

// NewSiteCommand creates the site command with subcommands
func NewSiteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Inspect and survey archaeological sites",
		Long: `Inspect the site catalog and survey undiscovered tells.

Examples:
  tellsim site list
  tellsim site survey --name Ur
  tellsim site grid --name "Tell Abu Salabikh"`,
	}

	cmd.AddCommand(newSiteListCommand())
	cmd.AddCommand(newSiteSurveyCommand())
	cmd.AddCommand(newSiteGridCommand())
	return cmd
}

func newSiteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every site on the map",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIFFICULTY\tPERIOD\tSIZE\tLAYERS\tSTATUS\tPROGRESS")
			for _, st := range app.session.Sites() {
				status := "undiscovered"
				progress := "-"
				if st.Discovered() {
					status = "discovered"
					progress = fmt.Sprintf("%.0f%%", st.DiscoveryProgress()*100)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%s\n",
					st.Name(), st.Difficulty(), st.HistoricalPeriod(),
					st.Size(), st.Size(), st.Layers(), status, progress)
			}
			return w.Flush()
		},
	}
}

func newSiteSurveyCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Survey an undiscovered site",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			st, err := findSiteByName(app.session, name)
			if err != nil {
				return err
			}

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.SurveySiteCommand{SiteID: st.ID()}); err != nil {
				return err
			}
			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Site name (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newSiteGridCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render a discovered site's dig grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			st, err := findSiteByName(app.session, name)
			if err != nil {
				return err
			}
			grid, err := app.session.Grid(st.ID())
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s, %s), top layer per position:\n\n", st.Name(), st.Difficulty(), st.HistoricalPeriod())
			for y := 0; y < st.Size(); y++ {
				for x := 0; x < st.Size(); x++ {
					top, ok := grid.Top(site.Position{X: x, Y: y})
					if !ok {
						fmt.Print("  ?  ")
						continue
					}
					marker := "."
					if top.IsExcavated() {
						marker = "x"
					}
					if top.Structure() != site.StructureNone {
						marker = string(top.Structure()[0])
					}
					fmt.Printf(" %s:L%d ", marker, top.Layer())
				}
				fmt.Println()
			}

			fmt.Println("\nTiles:")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPOS\tLAYER\tEXCAVATED\tSTRUCTURE\tARTIFACTS")
			for _, tile := range grid.Tiles() {
				excavated := "no"
				if tile.IsExcavated() {
					excavated = "yes"
				}
				fmt.Fprintf(w, "%s\t(%d,%d)\t%d\t%s\t%s\t%d\n",
					tile.ID(), tile.Position().X, tile.Position().Y, tile.Layer(),
					excavated, tile.Structure(), len(tile.Artifacts()))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Site name (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}
