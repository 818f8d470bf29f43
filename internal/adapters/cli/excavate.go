package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
	"github.com/tellsim/tellsim-go/internal/domain/task"
)

// NewExcavateCommand creates the excavate command
func NewExcavateCommand() *cobra.Command {
	var (
		siteName string
		taskType string
		tiles    int
	)

	cmd := &cobra.Command{
		Use:   "excavate",
		Short: "Run an excavation task on a surveyed site",
		Long: `Create an excavation task, wait out its duration and collect
the finds. Tiles are picked automatically from the unexcavated top layer.

Task types: surface_collection, excavation, trench.

Example:
  tellsim excavate --site "Tell Abu Salabikh" --type excavation --tiles 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch task.Type(taskType) {
			case task.TypeSurfaceCollection, task.TypeExcavation, task.TypeTrench:
			default:
				return fmt.Errorf("unknown task type %q", taskType)
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			st, err := findSiteByName(app.session, siteName)
			if err != nil {
				return err
			}
			tileIDs, err := pickFreshTopTiles(app.session, st.ID(), tiles)
			if err != nil {
				return err
			}

			ctx := app.notifyingContext()
			response, err := app.mediator.Send(ctx, &commands.CreateTaskCommand{
				TaskType: task.Type(taskType),
				SiteID:   st.ID(),
				TileIDs:  tileIDs,
			})
			if err != nil {
				return err
			}
			created := response.(*commands.CreateTaskResponse)

			fmt.Printf("Digging for %s...\n", created.Duration)
			time.Sleep(created.Duration)

			if _, err := app.mediator.Send(ctx, &commands.CompleteTaskCommand{}); err != nil {
				return err
			}
			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&siteName, "site", "", "Site name (required)")
	cmd.Flags().StringVar(&taskType, "type", string(task.TypeSurfaceCollection), "Task type")
	cmd.Flags().IntVar(&tiles, "tiles", 1, "Number of tiles to work")
	cmd.MarkFlagRequired("site")
	return cmd
}
