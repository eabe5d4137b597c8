package models

import "time"

// DefaultMemberRole is applied when an upsert omits the role.
const DefaultMemberRole = "Member"

type Member struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Admin   bool      `json:"admin"`
	AddedAt time.Time `json:"added_at"`
}

type Weapon struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Owner     *string   `json:"owner"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Car struct {
	ID        int64     `json:"id"`
	Make      string    `json:"make"`
	Model     *string   `json:"model"`
	Plate     *string   `json:"plate"`
	Owner     *string   `json:"owner"`
	Notes     *string   `json:"notes"`
	Img       *string   `json:"img"`
	CreatedAt time.Time `json:"created_at"`
}

type FinanceTransaction struct {
	ID        int64     `json:"id"`
	What      string    `json:"what"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// FinanceSummary is the running balance plus the newest transaction, which
// is nil when the ledger is empty.
type FinanceSummary struct {
	Balance float64             `json:"balance"`
	Last    *FinanceTransaction `json:"last"`
}
