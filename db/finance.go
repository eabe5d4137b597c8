package db

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"rrcapi/models"
)

const transactionColumns = "id, what, amount, created_at"

func scanTransaction(row rowScanner) (models.FinanceTransaction, error) {
	var (
		t         models.FinanceTransaction
		createdAt Timestamp
	)
	if err := row.Scan(&t.ID, &t.What, &t.Amount, &createdAt); err != nil {
		return models.FinanceTransaction{}, err
	}
	t.CreatedAt = createdAt.Time
	return t, nil
}

// MaxAmount is the exclusive bound on |amount| that NUMERIC(12,2) can hold.
const MaxAmount = 1e10

// RoundCents rounds to the two fractional digits the amount column keeps.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FinanceSummary sums every amount (zero for an empty ledger) and fetches the
// newest transaction. Ties on created_at are broken by id.
func (s *Store) FinanceSummary(ctx context.Context) (models.FinanceSummary, error) {
	var balance float64
	err := s.queryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM finance_transactions").Scan(&balance)
	if err != nil {
		return models.FinanceSummary{}, &QueryError{Op: "sum", Table: "finance_transactions", Err: err}
	}

	summary := models.FinanceSummary{Balance: RoundCents(balance)}
	last, err := scanTransaction(s.queryRow(ctx,
		"SELECT "+transactionColumns+" FROM finance_transactions ORDER BY created_at DESC, id DESC LIMIT 1"))
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return models.FinanceSummary{}, &QueryError{Op: "select last", Table: "finance_transactions", Err: err}
	default:
		summary.Last = &last
	}
	return summary, nil
}

func (s *Store) CreateTransaction(ctx context.Context, what string, amount float64) error {
	_, err := s.exec(ctx, "insert", "finance_transactions",
		"INSERT INTO finance_transactions (what, amount) VALUES ($1, $2)", what, RoundCents(amount))
	return err
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.FinanceTransaction, error) {
	rows, err := s.query(ctx, "list", "finance_transactions",
		"SELECT "+transactionColumns+" FROM finance_transactions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.FinanceTransaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, &QueryError{Op: "scan", Table: "finance_transactions", Err: err}
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "list", Table: "finance_transactions", Err: err}
	}
	return transactions, nil
}
