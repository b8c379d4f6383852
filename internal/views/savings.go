package views

import "fintrack/internal/models"

// GoalProgress is a savings goal's derived progress. Saved is the sum
// of contributions; RawPercent is unclamped and may exceed 100 when
// contributions sum above the target.
type GoalProgress struct {
	GoalID     string  `json:"goal_id"`
	Target     float64 `json:"target"`
	Saved      float64 `json:"saved"`
	RawPercent float64 `json:"raw_percent"`
}

// SavingsProgress derives a goal's progress from its contribution
// history. A zero target yields zero percent.
func SavingsProgress(g models.SavingsGoal) GoalProgress {
	saved := g.Saved()
	var percent float64
	if g.Amount > 0 {
		percent = saved / g.Amount * 100
	}
	return GoalProgress{
		GoalID:     g.ID,
		Target:     g.Amount,
		Saved:      saved,
		RawPercent: percent,
	}
}
