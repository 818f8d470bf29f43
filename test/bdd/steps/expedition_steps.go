package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/tellsim/tellsim-go/internal/application/excavation"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/application/identification"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

type expeditionContext struct {
	session         *expedition.GameSession
	clock           *shared.MockClock
	lastErr         error
	lastResult      *excavation.Result
	lastIdent       *identification.Result
	currentArtifact string
}

func (ctx *expeditionContext) reset() error {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	ctx.clock = shared.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	session, err := expedition.NewGameSession(&cfg.Rules, shared.NewSeededRand(42), ctx.clock)
	if err != nil {
		return err
	}
	ctx.session = session
	ctx.lastErr = nil
	ctx.lastResult = nil
	ctx.lastIdent = nil
	ctx.currentArtifact = ""
	return nil
}

// InitializeExpeditionScenario registers every expedition step definition
func InitializeExpeditionScenario(sc *godog.ScenarioContext) {
	expCtx := &expeditionContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		return ctx, expCtx.reset()
	})

	sc.Step(`^a fresh expedition$`, expCtx.freshExpedition)
	sc.Step(`^I hire (\d+) (workers|archaeologists|linguists)$`, expCtx.hire)
	sc.Step(`^I try to hire (\d+) (workers|archaeologists|linguists)$`, expCtx.tryHire)
	sc.Step(`^the player should have \$(\d+)$`, expCtx.playerShouldHaveMoney)
	sc.Step(`^the player should have (\d+) (workers|archaeologists|linguists)$`, expCtx.playerShouldHaveCrew)
	sc.Step(`^I start a (\w+) task on (\d+) tiles of "([^"]*)"$`, expCtx.startTask)
	sc.Step(`^I try to start a (\w+) task on (\d+) tiles of "([^"]*)"$`, expCtx.tryStartTask)
	sc.Step(`^the task duration elapses$`, expCtx.taskDurationElapses)
	sc.Step(`^I complete the task$`, expCtx.completeTask)
	sc.Step(`^I try to complete the task$`, expCtx.tryCompleteTask)
	sc.Step(`^(\d+) tiles should be newly excavated$`, expCtx.tilesShouldBeExcavated)
	sc.Step(`^the crew should be free again$`, expCtx.crewShouldBeFree)
	sc.Step(`^the action should fail$`, expCtx.actionShouldFail)
	sc.Step(`^I survey "([^"]*)"$`, expCtx.surveySite)
	sc.Step(`^"([^"]*)" should be discovered$`, expCtx.siteShouldBeDiscovered)
	sc.Step(`^an? (common|uncommon|rare) pottery artifact worth \$(\d+) in the inventory$`, expCtx.potteryInInventory)
	sc.Step(`^I sell that artifact$`, expCtx.sellArtifact)
	sc.Step(`^the inventory should be empty$`, expCtx.inventoryShouldBeEmpty)
	sc.Step(`^I identify that artifact$`, expCtx.identifyArtifact)
	sc.Step(`^I try to identify that artifact$`, expCtx.tryIdentifyArtifact)
	sc.Step(`^the identification should fail with "([^"]*)"$`, expCtx.identificationShouldFailWith)
	sc.Step(`^the artifact should be identified as "([^"]*)"$`, expCtx.artifactShouldBeIdentifiedAs)
	sc.Step(`^the artifact value should be greater than \$(\d+)$`, expCtx.artifactValueShouldExceed)
}

func (ctx *expeditionContext) freshExpedition() error {
	if ctx.session == nil {
		return fmt.Errorf("session not initialized")
	}
	return nil
}

func roleFromPlural(plural string) player.Role {
	switch plural {
	case "workers":
		return player.RoleWorker
	case "archaeologists":
		return player.RoleArchaeologist
	default:
		return player.RoleLinguist
	}
}

func (ctx *expeditionContext) hire(count int, plural string) error {
	return ctx.session.Hire(roleFromPlural(plural), count)
}

func (ctx *expeditionContext) tryHire(count int, plural string) error {
	ctx.lastErr = ctx.session.Hire(roleFromPlural(plural), count)
	return nil
}

func (ctx *expeditionContext) playerShouldHaveMoney(amount int) error {
	if money := ctx.session.Player().Money(); money != amount {
		return fmt.Errorf("expected $%d, have $%d", amount, money)
	}
	return nil
}

func (ctx *expeditionContext) playerShouldHaveCrew(count int, plural string) error {
	crew := ctx.session.Player().Crew()
	actual := map[string]int{
		"workers":        crew.Workers,
		"archaeologists": crew.Archaeologists,
		"linguists":      crew.Linguists,
	}[plural]
	if actual != count {
		return fmt.Errorf("expected %d %s, have %d", count, plural, actual)
	}
	return nil
}

func (ctx *expeditionContext) pickTiles(siteName string, count int) (string, []string, error) {
	st, err := ctx.session.SiteByName(siteName)
	if err != nil {
		return "", nil, err
	}
	grid, err := ctx.session.Grid(st.ID())
	if err != nil {
		return "", nil, err
	}

	var ids []string
	for _, tile := range grid.Tiles() {
		top, ok := grid.Top(tile.Position())
		if !ok || top.ID() != tile.ID() || tile.IsExcavated() {
			continue
		}
		ids = append(ids, tile.ID())
		if len(ids) == count {
			return st.ID(), ids, nil
		}
	}
	return "", nil, fmt.Errorf("only %d interactable tiles at %s, wanted %d", len(ids), siteName, count)
}

func (ctx *expeditionContext) startTask(taskType string, tiles int, siteName string) error {
	siteID, tileIDs, err := ctx.pickTiles(siteName, tiles)
	if err != nil {
		return err
	}
	_, err = ctx.session.CreateTask(task.Type(taskType), siteID, tileIDs)
	return err
}

func (ctx *expeditionContext) tryStartTask(taskType string, tiles int, siteName string) error {
	siteID, tileIDs, err := ctx.pickTiles(siteName, tiles)
	if err != nil {
		return err
	}
	_, ctx.lastErr = ctx.session.CreateTask(task.Type(taskType), siteID, tileIDs)
	return nil
}

func (ctx *expeditionContext) taskDurationElapses() error {
	active := ctx.session.ActiveTask()
	if active == nil {
		return fmt.Errorf("no task is running")
	}
	ctx.clock.Advance(active.Duration())
	return nil
}

func (ctx *expeditionContext) completeTask() error {
	result, err := ctx.session.CompleteActiveTask()
	if err != nil {
		return err
	}
	ctx.lastResult = result
	return nil
}

func (ctx *expeditionContext) tryCompleteTask() error {
	ctx.lastResult, ctx.lastErr = ctx.session.CompleteActiveTask()
	return nil
}

func (ctx *expeditionContext) tilesShouldBeExcavated(count int) error {
	if ctx.lastResult == nil {
		return fmt.Errorf("no completed task result")
	}
	if len(ctx.lastResult.Tiles) != count {
		return fmt.Errorf("expected %d excavated tiles, got %d", count, len(ctx.lastResult.Tiles))
	}
	return nil
}

func (ctx *expeditionContext) crewShouldBeFree() error {
	p := ctx.session.Player()
	if p.Available() != p.Crew() {
		return fmt.Errorf("crew still reserved: available %+v of %+v", p.Available(), p.Crew())
	}
	return nil
}

func (ctx *expeditionContext) actionShouldFail() error {
	if ctx.lastErr == nil {
		return fmt.Errorf("expected the action to fail, it succeeded")
	}
	return nil
}

func (ctx *expeditionContext) surveySite(siteName string) error {
	st, err := ctx.session.SiteByName(siteName)
	if err != nil {
		return err
	}
	return ctx.session.SurveySite(st.ID())
}

func (ctx *expeditionContext) siteShouldBeDiscovered(siteName string) error {
	st, err := ctx.session.SiteByName(siteName)
	if err != nil {
		return err
	}
	if !st.Discovered() {
		return fmt.Errorf("site %s is not discovered", siteName)
	}
	return nil
}

func (ctx *expeditionContext) potteryInInventory(rarity string, value int) error {
	found := artifact.NewArtefact("tile-bdd", "Ur", artifact.TypePottery, artifact.Rarity(rarity), value, ctx.clock)
	if err := ctx.session.AddArtifact(found); err != nil {
		return err
	}
	ctx.currentArtifact = found.ID()
	return nil
}

func (ctx *expeditionContext) sellArtifact() error {
	_, err := ctx.session.SellArtifact(ctx.currentArtifact)
	return err
}

func (ctx *expeditionContext) inventoryShouldBeEmpty() error {
	if n := len(ctx.session.Inventory()); n != 0 {
		return fmt.Errorf("inventory holds %d artifact(s)", n)
	}
	return nil
}

func (ctx *expeditionContext) identifyArtifact() error {
	result, err := ctx.session.IdentifyArtifact(ctx.currentArtifact)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("identification failed: %s", result.Information)
	}
	ctx.lastIdent = result
	return nil
}

func (ctx *expeditionContext) tryIdentifyArtifact() error {
	ctx.lastIdent, ctx.lastErr = ctx.session.IdentifyArtifact(ctx.currentArtifact)
	return nil
}

func (ctx *expeditionContext) identificationShouldFailWith(message string) error {
	if ctx.lastErr != nil {
		return fmt.Errorf("identification errored instead of failing softly: %v", ctx.lastErr)
	}
	if ctx.lastIdent == nil {
		return fmt.Errorf("no identification attempt recorded")
	}
	if ctx.lastIdent.Success {
		return fmt.Errorf("identification unexpectedly succeeded")
	}
	if ctx.lastIdent.Information != message {
		return fmt.Errorf("expected %q, got %q", message, ctx.lastIdent.Information)
	}
	return nil
}

func (ctx *expeditionContext) artifactShouldBeIdentifiedAs(name string) error {
	stored, err := ctx.session.Artifact(ctx.currentArtifact)
	if err != nil {
		return err
	}
	if !stored.Identified() {
		return fmt.Errorf("artifact is not identified")
	}
	if stored.Name() != name {
		return fmt.Errorf("expected name %q, got %q", name, stored.Name())
	}
	return nil
}

func (ctx *expeditionContext) artifactValueShouldExceed(value int) error {
	stored, err := ctx.session.Artifact(ctx.currentArtifact)
	if err != nil {
		return err
	}
	if stored.Value() <= value {
		return fmt.Errorf("expected value above $%d, got $%d", value, stored.Value())
	}
	return nil
}
