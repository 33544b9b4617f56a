package project

import (
	"fmt"
	"time"
)

// Investment records a committed amount by an account into a project.
type Investment struct {
	ID        uint
	ProjectID uint
	AccountID uint
	Amount    int64
	CreatedAt time.Time
}

func NewInvestment(projectID, accountID uint, amount int64) (*Investment, error) {
	if projectID == 0 || accountID == 0 {
		return nil, fmt.Errorf("project and account IDs are required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("investment amount must be positive")
	}
	return &Investment{
		ProjectID: projectID,
		AccountID: accountID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Rating is one account's score for a project, 1 through 5.
type Rating struct {
	ID        uint
	ProjectID uint
	AccountID uint
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRating(projectID, accountID uint, score int) (*Rating, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}
	now := time.Now().UTC()
	return &Rating{
		ProjectID: projectID,
		AccountID: accountID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetScore replaces the stored score, keeping the 1 to 5 bound.
func (r *Rating) SetScore(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("score must be between 1 and 5")
	}
	r.Score = score
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// WatchlistItem marks a project an account follows.
type WatchlistItem struct {
	ID        uint
	ProjectID uint
	AccountID uint
	CreatedAt time.Time
}
