// Package store is the persistence adapter. Each logical collection is
// persisted as a single JSON blob under a named key, mirroring the
// application's client-side storage model: whole-collection writes,
// last write wins, no transaction spanning keys. A crash between two
// key writes can leave the collections mutually inconsistent; that is
// an accepted non-goal for single-user local data.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/schema"
)

// Logical storage keys, one per collection.
const (
	KeyProfile  = "profile"
	KeyExpenses = "expenses"
	KeyTasks    = "tasks"
	KeyGoals    = "savings_goals"
)

// Blob is one persisted collection.
type Blob struct {
	Key       string    `gorm:"primaryKey"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// Store reads and writes whole collections keyed by name.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the backing database at path and prepares the
// blob table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an existing database connection.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// load reads the raw blob for a key. Missing keys are not an error; the
// second return value reports presence.
func (s *Store) load(key string) ([]byte, bool, error) {
	var blob Blob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return blob.Value, true, nil
}

// save serializes v and replaces the blob under key.
func (s *Store) save(key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	blob := Blob{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

// decode unmarshals a collection blob. A corrupt blob falls back to the
// zero value with a warning instead of failing the load.
func decode[T any](key string, value []byte) T {
	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		logger.Get().Warnw("corrupt collection blob, starting empty",
			"key", key,
			"error", err.Error(),
		)
		var zero T
		return zero
	}
	return out
}

// logRejected warns about records dropped during parsing. Records with
// unparseable dates are rejected on load rather than kept with garbage
// values.
func logRejected(rejected []*schema.ParseError) {
	for _, perr := range rejected {
		logger.Get().Warnw("dropping unreadable record",
			"collection", perr.Collection,
			"id", perr.ID,
			"error", perr.Err.Error(),
		)
	}
}

// Expenses loads the expense collection, applying schema migration.
func (s *Store) Expenses() ([]models.Expense, error) {
	value, ok, err := s.load(KeyExpenses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Expense{}, nil
	}
	raws := decode[[]schema.RawExpense](KeyExpenses, value)
	expenses, rejected := schema.ParseExpenses(raws)
	logRejected(rejected)
	return expenses, nil
}

// SaveExpenses replaces the expense collection.
func (s *Store) SaveExpenses(expenses []models.Expense) error {
	return s.save(KeyExpenses, expenses)
}

// Tasks loads the task collection, applying schema migration.
func (s *Store) Tasks() ([]models.Task, error) {
	value, ok, err := s.load(KeyTasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Task{}, nil
	}
	raws := decode[[]schema.RawTask](KeyTasks, value)
	tasks, rejected := schema.ParseTasks(raws)
	logRejected(rejected)
	return tasks, nil
}

// SaveTasks replaces the task collection.
func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.save(KeyTasks, tasks)
}

// SavingsGoals loads the savings goal collection, applying schema
// migration.
func (s *Store) SavingsGoals() ([]models.SavingsGoal, error) {
	value, ok, err := s.load(KeyGoals)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.SavingsGoal{}, nil
	}
	raws := decode[[]schema.RawSavingsGoal](KeyGoals, value)
	goals, rejected := schema.ParseSavingsGoals(raws)
	logRejected(rejected)
	return goals, nil
}

// SaveSavingsGoals replaces the savings goal collection.
func (s *Store) SaveSavingsGoals(goals []models.SavingsGoal) error {
	return s.save(KeyGoals, goals)
}

// Profile loads the user profile, applying schema migration. A nil
// profile with nil error means no profile exists yet (onboarding).
func (s *Store) Profile() (*models.UserProfile, error) {
	value, ok, err := s.load(KeyProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var raw schema.RawProfile
	if err := json.Unmarshal(value, &raw); err != nil {
		logger.Get().Warnw("corrupt collection blob, starting empty",
			"key", KeyProfile,
			"error", err.Error(),
		)
		return nil, nil
	}
	profile := schema.ParseProfile(raw)
	return &profile, nil
}

// SaveProfile replaces the user profile.
func (s *Store) SaveProfile(profile *models.UserProfile) error {
	return s.save(KeyProfile, profile)
}
