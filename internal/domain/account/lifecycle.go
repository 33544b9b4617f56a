package account

import "seedfund/internal/shared/authorization"

// Profile completion step markers used to resume a multi-stage signup.
const (
	StepVerification = "verification"
	StepApproval     = "approval"
	StepProfile      = "profile"
	StepComplete     = "complete"
)

// LifecycleState is the explicit state derived from the account's overlapping
// flags. The ordering of the classification is the login gating order:
// deactivated beats everything, then verification, then rejection, then
// pending approval, then profile completion.
type LifecycleState string

const (
	StateDeactivated         LifecycleState = "deactivated"
	StatePendingVerification LifecycleState = "pending_verification"
	StateRejected            LifecycleState = "rejected"
	StatePendingApproval     LifecycleState = "pending_approval"
	StateProfileIncomplete   LifecycleState = "profile_incomplete"
	StateActive              LifecycleState = "active"
)

// LifecycleState classifies the account into exactly one state. This is the
// single source of truth for gating decisions.
func (a *Account) LifecycleState() LifecycleState {
	switch {
	case !a.isActive:
		return StateDeactivated
	case !a.isVerified:
		return StatePendingVerification
	case a.approvalStatus == ApprovalRejected:
		return StateRejected
	case a.approvalStatus == ApprovalPending:
		return StatePendingApproval
	case !a.IsProfileComplete():
		return StateProfileIncomplete
	default:
		return StateActive
	}
}

// CanTransact reports whether the account has cleared every gate.
func (a *Account) CanTransact() bool {
	state := a.LifecycleState()
	return state == StateActive || state == StateProfileIncomplete
}

// IsProfileComplete is a pure function of the account snapshot: investors
// need their investment preferences, project owners their company details,
// other roles are always complete.
func (a *Account) IsProfileComplete() bool {
	switch a.role {
	case authorization.RoleInvestor:
		return a.profile.InvestmentRange != "" &&
			len(a.profile.InvestmentCategories) > 0 &&
			a.profile.AccreditedInvestor != nil
	case authorization.RoleProjectOwner:
		return a.profile.Company != "" &&
			a.profile.Location != "" &&
			a.profile.Phone != ""
	default:
		return true
	}
}

// NextStep returns the step indicator a client should resume at after login.
func (a *Account) NextStep() string {
	switch a.LifecycleState() {
	case StatePendingVerification:
		return StepVerification
	case StateRejected, StatePendingApproval:
		return StepApproval
	case StateProfileIncomplete:
		return StepProfile
	default:
		return StepComplete
	}
}
