package cli

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/adapters/persistence"
	"github.com/tellsim/tellsim-go/internal/application/common"
)

// consoleNotifier prints the command event feed with severity markers
type consoleNotifier struct{}

func (n *consoleNotifier) Notify(severity common.Severity, message string) {
	switch severity {
	case common.SeveritySuccess:
		fmt.Printf("✓ %s\n", message)
	case common.SeverityWarning:
		fmt.Printf("! %s\n", message)
	case common.SeverityError:
		fmt.Printf("✗ %s\n", message)
	default:
		fmt.Printf("  %s\n", message)
	}
}

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// journalingNotifier prints to the console and records entries at or above
// the configured level in the expedition journal
type journalingNotifier struct {
	console  consoleNotifier
	journal  *persistence.GormJournalRepository
	minLevel string
}

func (n *journalingNotifier) Notify(severity common.Severity, message string) {
	n.console.Notify(severity, message)

	level := "info"
	switch severity {
	case common.SeverityWarning:
		level = "warn"
	case common.SeverityError:
		level = "error"
	}
	if levelRank[level] < levelRank[n.minLevel] {
		return
	}
	_ = n.journal.Append(context.Background(), level, message)
}
