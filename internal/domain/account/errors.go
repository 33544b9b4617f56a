package account

import "errors"

// Domain invariant violations. Use cases translate these into the
// application error taxonomy before they reach the transport layer.
var (
	ErrRoleAlreadySet     = errors.New("role is already set")
	ErrNotInRejectedState = errors.New("application is not in rejected state")

	ErrMethodAlreadyLinked        = errors.New("auth method already linked to this account")
	ErrIdentityLinkedElsewhere    = errors.New("external identity is linked to another account")
	ErrNoAccountForEmail          = errors.New("no account owns this email")
	ErrOriginConflict             = errors.New("account origin conflicts with oauth login")
	ErrStateTokenInvalid          = errors.New("state token is invalid, expired or already used")
	ErrPrimaryMethodTargetMissing = errors.New("auth method to set primary does not exist")
)
