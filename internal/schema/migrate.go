package schema

import "fintrack/internal/uuid"

// MigrateTask upgrades a task from the legacy boolean-completed shape
// to the status enum. A legacy completed=true becomes done, anything
// else becomes todo. Tasks that already carry a status are untouched.
func MigrateTask(t RawTask) RawTask {
	if t.Status == "" {
		if t.Completed != nil && *t.Completed {
			t.Status = "done"
		} else {
			t.Status = "todo"
		}
	}
	t.Completed = nil
	return t
}

// MigrateSavingsGoal upgrades a goal from the legacy scalar
// current-amount shape to the contribution list. A positive legacy
// amount with no recorded contributions becomes a single synthetic
// contribution dated at goal creation, preserving total progress
// without fabricating history. A zero legacy amount produces no entry.
func MigrateSavingsGoal(g RawSavingsGoal) RawSavingsGoal {
	if g.CurrentAmount != nil {
		if *g.CurrentAmount > 0 && len(g.Contributions) == 0 {
			g.Contributions = []RawContribution{{
				ID:     uuid.New(),
				Amount: *g.CurrentAmount,
				Date:   g.CreatedAt,
			}}
		}
		g.CurrentAmount = nil
	}
	if g.Contributions == nil {
		g.Contributions = []RawContribution{}
	}
	return g
}

// MigrateProfile collapses the legacy three-key widget-visibility map
// into the single expenseSummary flag. The combined widget is visible
// iff the legacy pending-summary widget was.
func MigrateProfile(p RawProfile) RawProfile {
	if p.Widgets == nil {
		return p
	}
	if pending, ok := p.Widgets[legacyWidgetPending]; ok {
		p.Widgets[WidgetExpenseSummary] = pending
	}
	delete(p.Widgets, legacyWidgetPending)
	delete(p.Widgets, legacyWidgetUpcoming)
	delete(p.Widgets, legacyWidgetRecurring)
	return p
}
