package project

import (
	"fmt"
	"time"
)

// Status of a project listing.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusFunded Status = "funded"
	StatusClosed Status = "closed"
)

// Project is a fundable listing owned by an approved project owner.
type Project struct {
	ID           uint
	OwnerID      uint
	Title        string
	Summary      string
	Category     string
	FundingGoal  int64 // minor currency units
	FundingTotal int64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProject creates a draft listing.
func NewProject(ownerID uint, title, summary, category string, fundingGoal int64) (*Project, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if fundingGoal <= 0 {
		return nil, fmt.Errorf("funding goal must be positive")
	}

	now := time.Now().UTC()
	return &Project{
		OwnerID:     ownerID,
		Title:       title,
		Summary:     summary,
		Category:    category,
		FundingGoal: fundingGoal,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetOwnerID satisfies authorization.OwnedResource.
func (p *Project) GetOwnerID() uint {
	return p.OwnerID
}

// Publish makes the listing investable.
func (p *Project) Publish() error {
	if p.Status != StatusDraft {
		return fmt.Errorf("only draft projects can be published")
	}
	p.Status = StatusActive
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// AcceptInvestment validates and applies an investment amount to the funding
// total. Callers must run this inside the same transaction that inserts the
// investment row.
func (p *Project) AcceptInvestment(amount int64) error {
	if p.Status != StatusActive {
		return ErrProjectNotInvestable
	}
	if amount <= 0 {
		return fmt.Errorf("investment amount must be positive")
	}
	if p.FundingTotal+amount > p.FundingGoal {
		return ErrFundingGoalExceeded
	}
	p.FundingTotal += amount
	if p.FundingTotal == p.FundingGoal {
		p.Status = StatusFunded
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}
