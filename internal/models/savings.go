package models

import "time"

// Contribution is a single dated deposit toward a savings goal.
type Contribution struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// SavingsGoal represents a savings target with its contribution history.
// Progress is always derived from the contributions; there is no
// standalone mutable counter. An earlier schema stored a scalar
// current amount, which is migrated into a single synthetic
// contribution on load.
type SavingsGoal struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Amount        float64        `json:"amount"`
	Plan          string         `json:"plan,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Contributions []Contribution `json:"contributions"`
}

// Saved returns the sum of all contribution amounts. The sum may exceed
// the goal amount; no cap is enforced at write time.
func (g SavingsGoal) Saved() float64 {
	var total float64
	for _, c := range g.Contributions {
		total += c.Amount
	}
	return total
}
