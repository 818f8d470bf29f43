package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
	"github.com/tellsim/tellsim-go/internal/domain/player"
)

// NewHireCommand creates the hire command
func NewHireCommand() *cobra.Command {
	var (
		role  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "hire",
		Short: "Hire expedition personnel",
		Long: `Hire personnel at the configured per-unit cost.

Roles: worker, archaeologist, linguist.

Example:
  tellsim hire --role worker --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch player.Role(role) {
			case player.RoleWorker, player.RoleArchaeologist, player.RoleLinguist:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.HirePersonnelCommand{
				Role:  player.Role(role),
				Count: count,
			}); err != nil {
				return err
			}

			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&role, "role", "worker", "Role to hire: worker, archaeologist or linguist")
	cmd.Flags().IntVar(&count, "count", 1, "Number of people to hire")
	return cmd
}
