package resources

import (
	"fmt"
	"math"

	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

// Requirement is the computed personnel and money cost of a task
type Requirement struct {
	Crew shared.Crew
	Cost int
}

// AffordabilityReport lists every resource the player is short of, one
// message per deficient resource type
type AffordabilityReport struct {
	CanAfford        bool
	MissingResources []string
}

// Manager computes task requirements and performs the validated
// money-debit and crew-reservation step of task creation
type Manager struct {
	rules *config.RulesConfig
}

// NewManager creates a resource manager backed by the rule tables
func NewManager(rules *config.RulesConfig) *Manager {
	return &Manager{rules: rules}
}

// Calculate derives the requirement for a task type at a site difficulty.
// Personnel counts scale by ceil(base * multiplier); cost is the base cost
// plus per-unit wages, scaled by the same multiplier and rounded up.
func (m *Manager) Calculate(taskType task.Type, difficulty string) Requirement {
	rule := m.rules.TaskRule(string(taskType))
	mult := m.rules.DifficultyMultiplier(difficulty)

	wages := rule.Workers*m.rules.PersonnelCosts.Worker +
		rule.Archaeologists*m.rules.PersonnelCosts.Archaeologist +
		rule.Linguists*m.rules.PersonnelCosts.Linguist

	return Requirement{
		Crew: shared.Crew{
			Workers:        int(math.Ceil(float64(rule.Workers) * mult)),
			Archaeologists: int(math.Ceil(float64(rule.Archaeologists) * mult)),
			Linguists:      int(math.Ceil(float64(rule.Linguists) * mult)),
		},
		Cost: int(math.Ceil(float64(rule.BaseCost+wages) * mult)),
	}
}

// CanAfford compares the player's money and unreserved crew against a
// requirement, producing one deficiency message per insufficient resource
func (m *Manager) CanAfford(p *player.Player, req Requirement) AffordabilityReport {
	var missing []string

	if p.Money() < req.Cost {
		missing = append(missing, fmt.Sprintf("Need $%d, have $%d", req.Cost, p.Money()))
	}

	available := p.Available()
	if available.Workers < req.Crew.Workers {
		missing = append(missing, fmt.Sprintf("Need %d workers, have %d", req.Crew.Workers, available.Workers))
	}
	if available.Archaeologists < req.Crew.Archaeologists {
		missing = append(missing, fmt.Sprintf("Need %d archaeologists, have %d", req.Crew.Archaeologists, available.Archaeologists))
	}
	if available.Linguists < req.Crew.Linguists {
		missing = append(missing, fmt.Sprintf("Need %d linguists, have %d", req.Crew.Linguists, available.Linguists))
	}

	return AffordabilityReport{
		CanAfford:        len(missing) == 0,
		MissingResources: missing,
	}
}

// Allocate re-validates affordability, then debits the cost and reserves the
// crew for the duration of the task. On any failure nothing changes.
func (m *Manager) Allocate(p *player.Player, req Requirement) error {
	report := m.CanAfford(p, req)
	if !report.CanAfford {
		return shared.NewDomainError(report.MissingResources[0])
	}

	if err := p.SpendMoney(req.Cost); err != nil {
		return err
	}
	if err := p.Reserve(req.Crew); err != nil {
		p.AddMoney(req.Cost)
		return err
	}
	return nil
}
