package project

import "errors"

var (
	ErrProjectNotInvestable = errors.New("project is not open for investment")
	ErrFundingGoalExceeded  = errors.New("investment would exceed the funding goal")
)
