// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GuardianTier is the membership level of a guardian.
type GuardianTier string

const (
	TierLover  GuardianTier = "lover"
	TierKeeper GuardianTier = "keeper"
	TierSavior GuardianTier = "savior"
)

// Guardian is the identity record returned by the remote auth endpoint.
// Its ID correlates with Film.GuardianID.
type Guardian struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Tier  GuardianTier `json:"tier"`
}

// AuthStatus is the state of the local authentication session.
type AuthStatus string

const (
	AuthPending         AuthStatus = "pending"
	AuthAuthenticated   AuthStatus = "authenticated"
	AuthUnauthenticated AuthStatus = "unauthenticated"
)

// AuthState is the result of an authentication attempt.
// Guardian is nil unless Status is AuthAuthenticated.
type AuthState struct {
	Status   AuthStatus
	Guardian *Guardian
}

// Authenticated reports whether the state carries a guardian identity.
func (a AuthState) Authenticated() bool {
	return a.Status == AuthAuthenticated && a.Guardian != nil
}
