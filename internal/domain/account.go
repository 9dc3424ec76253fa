/**
 * @description
 * This file defines the core domain models for the support-console integration:
 * the user record returned by the internal admin API and the trading accounts
 * attached to it.
 *
 * Key features:
 * - AccountState is an enumerated lifecycle tag; anything other than LIVE is
 *   treated as an ended account.
 * - BreachInfo is optional closure metadata; its absence simply means the
 *   account was not closed for a rule violation.
 */
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountState is the lifecycle state of a trading account as reported by the
// admin API.
type AccountState string

const (
	StateLive    AccountState = "LIVE"
	StateOngoing AccountState = "ONGOING"
	StateEndFail AccountState = "END_FAIL"
)

// IsLive reports whether the account is currently active. Classification
// depends on this predicate alone, not on the full state taxonomy.
func (s AccountState) IsLive() bool {
	return s == StateLive
}

// UserRecord is the account holder as returned by the admin API. The service
// only ever reads it; all derived views are computed per request.
type UserRecord struct {
	UserID    string          `json:"userId"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"createdAt"`
	SpentUSD  decimal.Decimal `json:"spentUsd"`
	Accounts  []AccountRecord `json:"accounts"`
}

// AccountRecord is one trading account belonging to a user.
type AccountRecord struct {
	AccountID    string       `json:"accountId"`
	State        AccountState `json:"state"`
	Platform     string       `json:"platform"`
	CreatedAt    time.Time    `json:"createdAt"`
	Product      Product      `json:"product"`
	CurrentPhase *Phase       `json:"currentPhase,omitempty"`
}

// Product describes the purchased account product.
type Product struct {
	ProductKey  string          `json:"productKey"`
	PlanSizeUSD decimal.Decimal `json:"planSizeUsd"`
}

// Phase carries the closure metadata path for ended accounts. Both levels are
// optional in the upstream payload.
type Phase struct {
	AccountClosure *AccountClosure `json:"accountClosure,omitempty"`
}

// AccountClosure wraps the breach metadata recorded when an account is closed.
type AccountClosure struct {
	Metadata *BreachInfo `json:"metadata,omitempty"`
}

// BreachInfo describes the risk-rule violation that closed an account, e.g.
// exceeding the daily loss limit.
type BreachInfo struct {
	ViolationType   string          `json:"violationType"`
	EquityAtFailure decimal.Decimal `json:"equityAtFailure"`
	LimitValue      decimal.Decimal `json:"limitValue"`
}

// Breach returns the breach metadata for the account, or nil when the account
// was not closed for a violation. It tolerates any missing level of the
// closure path.
func (a AccountRecord) Breach() *BreachInfo {
	if a.CurrentPhase == nil || a.CurrentPhase.AccountClosure == nil {
		return nil
	}
	return a.CurrentPhase.AccountClosure.Metadata
}
