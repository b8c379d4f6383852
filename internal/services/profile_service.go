package services

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
)

// profileService handles profile and settings logic.
type profileService struct {
	store *store.Store
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(st *store.Store) ProfileServicer {
	return &profileService{store: st}
}

// load returns the stored profile or ErrProfileNotFound, which routes
// the client to onboarding.
func (s *profileService) load() (*models.UserProfile, error) {
	profile, err := s.store.Profile()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

// GetProfile returns the single user profile.
func (s *profileService) GetProfile() (*models.UserProfile, error) {
	return s.load()
}

// SaveProfile creates or replaces the profile. Onboarding and settings
// edits both go through here.
func (s *profileService) SaveProfile(profile models.UserProfile) (*models.UserProfile, error) {
	if err := s.store.SaveProfile(&profile); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// SetCategoryBudget sets the budget for a category, replacing any
// existing budget for the same category.
func (s *profileService) SetCategoryBudget(category string, amount float64) (*models.UserProfile, error) {
	profile, err := s.load()
	if err != nil {
		return nil, err
	}
	if !profile.HasCategory(category) {
		return nil, apperrors.ErrCategoryNotFound
	}

	replaced := false
	for i := range profile.CategoryBudgets {
		if profile.CategoryBudgets[i].Category == category {
			profile.CategoryBudgets[i].Amount = amount
			replaced = true
			break
		}
	}
	if !replaced {
		profile.CategoryBudgets = append(profile.CategoryBudgets, models.CategoryBudget{
			Category: category,
			Amount:   amount,
		})
	}

	return s.SaveProfile(*profile)
}

// DeleteCategoryBudget removes the budget for a category.
func (s *profileService) DeleteCategoryBudget(category string) (*models.UserProfile, error) {
	profile, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range profile.CategoryBudgets {
		if profile.CategoryBudgets[i].Category != category {
			continue
		}
		profile.CategoryBudgets = append(profile.CategoryBudgets[:i], profile.CategoryBudgets[i+1:]...)
		return s.SaveProfile(*profile)
	}
	return nil, apperrors.ErrCategoryBudgetNotFound
}

// AddCustomCategory adds a user-defined category. Names must be unique
// across default and custom categories.
func (s *profileService) AddCustomCategory(name, color, emoji string) (*models.UserProfile, error) {
	profile, err := s.load()
	if err != nil {
		return nil, err
	}
	if profile.HasCategory(name) {
		return nil, apperrors.ErrCategoryExists
	}

	profile.CustomCategories = append(profile.CustomCategories, models.CustomCategory{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
		Emoji: emoji,
	})
	return s.SaveProfile(*profile)
}

// DeleteCustomCategory removes a user-defined category. Expenses
// already tagged with it keep the name; unknown categories are
// tolerated on display.
func (s *profileService) DeleteCustomCategory(id string) (*models.UserProfile, error) {
	profile, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range profile.CustomCategories {
		if profile.CustomCategories[i].ID != id {
			continue
		}
		profile.CustomCategories = append(profile.CustomCategories[:i], profile.CustomCategories[i+1:]...)
		return s.SaveProfile(*profile)
	}
	return nil, apperrors.ErrCategoryNotFound
}

// RevealSalary gates the stored salary behind the salary password.
// The comparison is plaintext against a plaintext stored field: this is
// display obfuscation carried over for feature parity, not
// authentication, and must not be treated as a security boundary.
func (s *profileService) RevealSalary(password string) (float64, error) {
	profile, err := s.load()
	if err != nil {
		return 0, err
	}
	if profile.Salary == 0 || profile.SalaryPassword == "" {
		return 0, apperrors.ErrSalaryNotSet
	}
	if password != profile.SalaryPassword {
		return 0, apperrors.ErrSalaryPasswordMismatch
	}
	return profile.Salary, nil
}
