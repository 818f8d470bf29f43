package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the expedition's money, crew and inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			p := app.session.Player()
			crew := p.Crew()

			fmt.Println("Expedition")
			fmt.Printf("  Money:          $%d\n", p.Money())
			fmt.Printf("  Reputation:     %d\n", p.Reputation())
			fmt.Printf("  Workers:        %d\n", crew.Workers)
			fmt.Printf("  Archaeologists: %d\n", crew.Archaeologists)
			fmt.Printf("  Linguists:      %d\n", crew.Linguists)

			inventory := app.session.Inventory()
			if len(inventory) == 0 {
				fmt.Println("\nInventory is empty")
				return nil
			}

			fmt.Printf("\nInventory (%d/%d)\n", len(inventory), app.cfg.Rules.InventoryCapacity)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tRARITY\tVALUE\tIDENTIFIED")
			for _, a := range inventory {
				identified := "no"
				if a.Identified() {
					identified = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%d\t%s\n",
					a.ID(), a.Name(), a.Type(), a.Rarity(), a.Value(), identified)
			}
			return w.Flush()
		},
	}
}
