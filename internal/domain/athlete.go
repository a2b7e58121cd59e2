package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// cpfLength is the number of digits in a Brazilian CPF.
const cpfLength = 11

// Common validation errors for Athlete.
var (
	ErrEmptyAthleteID         = errors.New("athlete ID cannot be empty")
	ErrEmptyAthleteName       = errors.New("athlete name cannot be empty")
	ErrInvalidCPF             = errors.New("cpf must be exactly 11 digits")
	ErrEmptyCategoryRef       = errors.New("athlete category reference cannot be empty")
	ErrEmptyTrainingCenterRef = errors.New("athlete training center reference cannot be empty")
)

// Athlete represents a registered athlete. Each athlete references exactly
// one existing Category and one existing TrainingCenter, and carries a CPF
// that is unique across all athletes. Athletes are immutable after creation:
// the lifecycle is create-then-read-only.
type Athlete struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	CPF              string    `json:"cpf"`
	CategoryID       int64     `json:"category_id"`
	TrainingCenterID int64     `json:"training_center_id"`
	CreatedAt        time.Time `json:"created_at"`

	// Denormalized reference names, populated on reads for display.
	// Not persisted on the athletes table itself.
	CategoryName       string `json:"category"`
	TrainingCenterName string `json:"training_center"`
}

// NewAthlete creates a new Athlete with a freshly generated ID and the
// resolved category and training center references.
// Returns an error if validation fails.
func NewAthlete(name, cpf string, category *Category, trainingCenter *TrainingCenter) (*Athlete, error) {
	athlete := &Athlete{
		ID:        uuid.New(),
		Name:      name,
		CPF:       cpf,
		CreatedAt: time.Now().UTC(),
	}

	if category != nil {
		athlete.CategoryID = category.ID
		athlete.CategoryName = category.Name
	}
	if trainingCenter != nil {
		athlete.TrainingCenterID = trainingCenter.ID
		athlete.TrainingCenterName = trainingCenter.Name
	}

	if err := athlete.Validate(); err != nil {
		return nil, err
	}

	return athlete, nil
}

// Validate checks if the Athlete has valid data.
// Returns an error if any field fails validation.
func (a *Athlete) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAthleteID
	}

	if a.Name == "" {
		return ErrEmptyAthleteName
	}

	if !isValidCPF(a.CPF) {
		return ErrInvalidCPF
	}

	if a.CategoryID == 0 {
		return ErrEmptyCategoryRef
	}

	if a.TrainingCenterID == 0 {
		return ErrEmptyTrainingCenterRef
	}

	return nil
}

// isValidCPF checks that the CPF is exactly 11 digits. Checksum digits are
// not verified here; the format contract is digits-only fixed length.
func isValidCPF(cpf string) bool {
	if len(cpf) != cpfLength {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
