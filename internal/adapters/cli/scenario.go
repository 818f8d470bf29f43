package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

// NewScenarioCommand creates the scenario command
func NewScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Play a scripted expedition in memory",
		Long: `Run a full expedition loop against an in-memory session: hire a
crew, dig the home tell, identify what comes up and sell or exhibit it.
Nothing is persisted. Use --seed for a reproducible run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			var rng shared.Rand
			if seed != 0 {
				rng = shared.NewSeededRand(seed)
			}
			clock := shared.NewMockClock(time.Now())
			session, err := expedition.NewGameSession(&cfg.Rules, rng, clock)
			if err != nil {
				return err
			}

			mediator := common.NewMediator()
			if err := commands.RegisterAll(mediator, session); err != nil {
				return err
			}
			ctx := consoleContext()

			home, err := session.SiteByName(cfg.Rules.BootstrapSite.Name)
			if err != nil {
				return err
			}

			fmt.Printf("Season opens at %s with $%d\n\n", home.Name(), session.Player().Money())

			hires := []*commands.HirePersonnelCommand{
				{Role: player.RoleWorker, Count: 3},
				{Role: player.RoleArchaeologist, Count: 1},
			}
			for _, hire := range hires {
				if _, err := mediator.Send(ctx, hire); err != nil {
					return err
				}
			}

			tileIDs, err := pickFreshTopTiles(session, home.ID(), 3)
			if err != nil {
				return err
			}
			response, err := mediator.Send(ctx, &commands.CreateTaskCommand{
				TaskType: task.TypeExcavation,
				SiteID:   home.ID(),
				TileIDs:  tileIDs,
			})
			if err != nil {
				return err
			}
			created := response.(*commands.CreateTaskResponse)

			clock.Advance(created.Duration)
			if _, err := mediator.Send(ctx, &commands.CompleteTaskCommand{}); err != nil {
				return err
			}

			fmt.Println()
			finds := make([]string, 0, len(session.Inventory()))
			for _, found := range session.Inventory() {
				finds = append(finds, found.ID())
			}
			for _, id := range finds {
				result, err := mediator.Send(ctx, &commands.IdentifyArtifactCommand{ArtifactID: id})
				if err != nil {
					return err
				}
				identified := result.(*commands.IdentifyArtifactResponse)
				if !identified.Success {
					continue
				}

				// first identified find goes on display, the rest fund next season
				if session.Exhibition().Count() == 0 {
					if _, err := mediator.Send(ctx, &commands.ExhibitArtifactCommand{ArtifactID: id}); err != nil {
						return err
					}
					continue
				}
				if _, err := mediator.Send(ctx, &commands.SellArtifactCommand{ArtifactID: id}); err != nil {
					return err
				}
			}

			p := session.Player()
			fmt.Printf("\nSeason closes with $%d, %d piece(s) on display, %d in storage\n",
				p.Money(), session.Exhibition().Count(), len(session.Inventory()))
			return nil
		},
	}
}
