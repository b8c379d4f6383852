package services

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
	"fintrack/internal/views"
)

// savingsService handles savings-goal business logic.
type savingsService struct {
	store *store.Store
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(st *store.Store) SavingsServicer {
	return &savingsService{store: st}
}

// CreateGoal appends a new goal with an empty contribution history.
func (s *savingsService) CreateGoal(name string, amount float64, plan string) (*models.SavingsGoal, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	goal := models.SavingsGoal{
		ID:            uuid.New(),
		Name:          name,
		Amount:        amount,
		Plan:          plan,
		CreatedAt:     time.Now(),
		Contributions: []models.Contribution{},
	}
	goals = append(goals, goal)

	if err := s.store.SaveSavingsGoals(goals); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// ListGoals returns every goal with its derived progress.
func (s *savingsService) ListGoals() ([]GoalWithProgress, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	out := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalWithProgress{SavingsGoal: g, Progress: views.SavingsProgress(g)})
	}
	return out, nil
}

// GetGoalByID returns a single goal with its derived progress.
func (s *savingsService) GetGoalByID(id string) (*GoalWithProgress, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, g := range goals {
		if g.ID == id {
			return &GoalWithProgress{SavingsGoal: g, Progress: views.SavingsProgress(g)}, nil
		}
	}
	return nil, apperrors.ErrGoalNotFound
}

// UpdateGoal edits a goal's name, target amount, and optionally its
// plan text. The plan is otherwise immutable; it only changes here,
// when a name or amount edit regenerates it.
func (s *savingsService) UpdateGoal(id, name string, amount *float64, plan *string) (*models.SavingsGoal, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		if name != "" {
			goals[i].Name = name
		}
		if amount != nil {
			goals[i].Amount = *amount
		}
		if plan != nil {
			goals[i].Plan = *plan
		}
		if err := s.store.SaveSavingsGoals(goals); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &goals[i], nil
	}
	return nil, apperrors.ErrGoalNotFound
}

// DeleteGoal removes a goal and, with it, its whole contribution
// history.
func (s *savingsService) DeleteGoal(id string) error {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals = append(goals[:i], goals[i+1:]...)
		if err := s.store.SaveSavingsGoals(goals); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	return apperrors.ErrGoalNotFound
}

// AddContribution records a deposit toward a goal. Contributions may
// push the total past the target; no cap is applied at write time.
func (s *savingsService) AddContribution(goalID string, amount float64, date time.Time) (*models.SavingsGoal, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		goals[i].Contributions = append(goals[i].Contributions, models.Contribution{
			ID:     uuid.New(),
			Amount: amount,
			Date:   date,
		})
		if err := s.store.SaveSavingsGoals(goals); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &goals[i], nil
	}
	return nil, apperrors.ErrGoalNotFound
}

// DeleteContribution removes a single contribution, reducing progress
// by exactly that amount.
func (s *savingsService) DeleteContribution(goalID, contributionID string) (*models.SavingsGoal, error) {
	goals, err := s.store.SavingsGoals()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		for j := range goals[i].Contributions {
			if goals[i].Contributions[j].ID != contributionID {
				continue
			}
			goals[i].Contributions = append(goals[i].Contributions[:j], goals[i].Contributions[j+1:]...)
			if err := s.store.SaveSavingsGoals(goals); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return &goals[i], nil
		}
		return nil, apperrors.ErrContributionNotFound
	}
	return nil, apperrors.ErrGoalNotFound
}
