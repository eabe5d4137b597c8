//go:build integration

package db

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway PostgreSQL container and returns a Store
// connected to it.
func setupPostgres(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("rrc"),
		postgres.WithUsername("rrc"),
		postgres.WithPassword("rrc"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	store, err := Open(ctx, connStr, nil)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresStore(t *testing.T) {
	c := qt.New(t)
	store := setupPostgres(t)
	ctx := context.Background()

	c.Assert(store.Dialect.Name, qt.Equals, "postgres")
	c.Assert(store.InitSchema(ctx), qt.IsNil)
	c.Assert(store.InitSchema(ctx), qt.IsNil)

	now, err := store.Now(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(now, qt.Not(qt.Equals), "")

	t.Run("member upsert keeps added_at", func(t *testing.T) {
		c := qt.New(t)
		c.Assert(store.UpsertMember(ctx, "u-1", "Karel", "Member", false), qt.IsNil)
		before, err := store.ListMembers(ctx)
		c.Assert(err, qt.IsNil)
		c.Assert(before, qt.HasLen, 1)

		c.Assert(store.UpsertMember(ctx, "u-1", "Karel II", "Boss", true), qt.IsNil)
		after, err := store.ListMembers(ctx)
		c.Assert(err, qt.IsNil)
		c.Assert(after, qt.HasLen, 1)
		c.Assert(after[0].Name, qt.Equals, "Karel II")
		c.Assert(after[0].Admin, qt.IsTrue)
		c.Assert(after[0].AddedAt.Equal(before[0].AddedAt), qt.IsTrue)
	})

	t.Run("weapon insert returns record", func(t *testing.T) {
		c := qt.New(t)
		w, err := store.CreateWeapon(ctx, "Rifle A", nil, nil, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(w.ID, qt.Equals, int64(1))
		c.Assert(w.Type, qt.IsNil)
		c.Assert(w.CreatedAt.IsZero(), qt.IsFalse)
		c.Assert(store.DeleteWeapon(ctx, 12345), qt.IsNil)
	})

	t.Run("finance numeric round trip", func(t *testing.T) {
		c := qt.New(t)
		c.Assert(store.CreateTransaction(ctx, "Deposit", 1000.5), qt.IsNil)
		c.Assert(store.CreateTransaction(ctx, "Ammo", -0.25), qt.IsNil)

		summary, err := store.FinanceSummary(ctx)
		c.Assert(err, qt.IsNil)
		c.Assert(summary.Balance, qt.Equals, 1000.25)
		c.Assert(summary.Last.What, qt.Equals, "Ammo")
		c.Assert(summary.Last.Amount, qt.Equals, -0.25)
	})
}
