package player

import (
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// Role identifies a hirable personnel type
type Role string

const (
	RoleWorker        Role = "worker"
	RoleArchaeologist Role = "archaeologist"
	RoleLinguist      Role = "linguist"
)

// Player represents the archaeologist managing the expedition.
//
// Money and crew counts are the only shared mutable resources in a session;
// both are guarded so they never go negative. Crew reserved for a running
// task is tracked separately and released when the task finishes.
type Player struct {
	id              string
	money           int
	crew            shared.Crew
	reserved        shared.Crew
	reputation      int
	discoveredSites []string
	activeTaskID    string
}

// NewPlayer creates a player with a starting money balance
func NewPlayer(startingMoney int) *Player {
	return &Player{
		id:    shared.NewID("player"),
		money: startingMoney,
	}
}

// RestorePlayer reconstructs a player from persisted state.
// This should only be used by repositories, not during normal operation.
func RestorePlayer(id string, money, reputation int, crew shared.Crew, discoveredSites []string) *Player {
	return &Player{
		id:              id,
		money:           money,
		crew:            crew,
		reputation:      reputation,
		discoveredSites: append([]string(nil), discoveredSites...),
	}
}

func (p *Player) ID() string         { return p.id }
func (p *Player) Money() int         { return p.money }
func (p *Player) Crew() shared.Crew  { return p.crew }
func (p *Player) Reputation() int    { return p.reputation }
func (p *Player) ActiveTask() string { return p.activeTaskID }

// Available returns the crew not currently reserved by a running task
func (p *Player) Available() shared.Crew {
	return p.crew.Subtract(p.reserved)
}

// DiscoveredSites returns the IDs of sites the player has located on the map
func (p *Player) DiscoveredSites() []string {
	return append([]string(nil), p.discoveredSites...)
}

// AddMoney credits the player's balance
func (p *Player) AddMoney(amount int) {
	p.money += amount
}

// SpendMoney debits the balance, refusing to go negative
func (p *Player) SpendMoney(amount int) error {
	if p.money < amount {
		return shared.NewInsufficientFundsError(amount, p.money)
	}
	p.money -= amount
	return nil
}

// Hire adds count personnel of the given role, debiting the per-unit cost.
// On insufficient funds nothing changes.
func (p *Player) Hire(role Role, count, costPerUnit int) error {
	if count <= 0 {
		return shared.NewValidationError("count", "must be positive")
	}
	if err := p.SpendMoney(count * costPerUnit); err != nil {
		return err
	}
	switch role {
	case RoleWorker:
		p.crew.Workers += count
	case RoleArchaeologist:
		p.crew.Archaeologists += count
	case RoleLinguist:
		p.crew.Linguists += count
	default:
		p.AddMoney(count * costPerUnit)
		return shared.NewValidationError("role", "unknown role "+string(role))
	}
	return nil
}

// AddReputation adjusts the reputation accumulator (sign unconstrained)
func (p *Player) AddReputation(amount int) {
	p.reputation += amount
}

// DiscoverSite records a site as located; duplicates are ignored
func (p *Player) DiscoverSite(siteID string) {
	for _, id := range p.discoveredSites {
		if id == siteID {
			return
		}
	}
	p.discoveredSites = append(p.discoveredSites, siteID)
}

// Reserve sets crew aside for a running task. Fails without side effects if
// the available (unreserved) crew does not cover the request.
func (p *Player) Reserve(crew shared.Crew) error {
	available := p.Available()
	if !available.Covers(crew) {
		switch {
		case available.Workers < crew.Workers:
			return shared.NewInsufficientPersonnelError(string(RoleWorker), crew.Workers, available.Workers)
		case available.Archaeologists < crew.Archaeologists:
			return shared.NewInsufficientPersonnelError(string(RoleArchaeologist), crew.Archaeologists, available.Archaeologists)
		default:
			return shared.NewInsufficientPersonnelError(string(RoleLinguist), crew.Linguists, available.Linguists)
		}
	}
	p.reserved = p.reserved.Add(crew)
	return nil
}

// Release returns reserved crew to the available pool, clamped at zero
func (p *Player) Release(crew shared.Crew) {
	p.reserved = p.reserved.Subtract(crew)
}

// AssignTask marks a task as the player's single active task
func (p *Player) AssignTask(taskID string) error {
	if p.activeTaskID != "" {
		return shared.NewDomainError("another task is already in progress")
	}
	p.activeTaskID = taskID
	return nil
}

// ClearTask removes the active task reference if it matches
func (p *Player) ClearTask(taskID string) {
	if p.activeTaskID == taskID {
		p.activeTaskID = ""
	}
}
