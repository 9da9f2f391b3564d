package posgrest_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Westerntf/driplypay-v2-sub002/internal/database/dbtest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCreator(t *testing.T, db *gorm.DB, userID, username string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Profile{UserID: userID, Username: username}).Error)
}

func earnings(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var p models.Profile
	require.NoError(t, db.Where("user_id = ?", userID).First(&p).Error)
	return p.TotalEarnings
}

func TestSettlementStore(t *testing.T) {
	db, _ := dbtest.NewPostgres(t)
	store := posgrest.NewSettlementStore(db)
	ctx := context.Background()
	seedCreator(t, db, "u1", "alice")

	settle := func(sessionID string, amount int64) error {
		return store.Atomically(ctx, func(ledger settlement.LedgerStore, balance settlement.BalanceStore) error {
			inserted, err := ledger.InsertIfAbsent(ctx, &models.Support{
				UserID: "u1", Amount: amount, Currency: "usd", ProcessorSessionID: sessionID,
			})
			if err != nil {
				return err
			}
			if !inserted {
				return errDuplicate
			}
			return balance.IncrementEarnings(ctx, "u1", amount)
		})
	}

	t.Run("insert then duplicate", func(t *testing.T) {
		require.NoError(t, settle("cs_1", 500))
		assert.ErrorIs(t, settle("cs_1", 500), errDuplicate)
		assert.Equal(t, int64(500), earnings(t, db, "u1"))
	})

	t.Run("failure after insert rolls back", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.Atomically(ctx, func(ledger settlement.LedgerStore, balance settlement.BalanceStore) error {
			inserted, err := ledger.InsertIfAbsent(ctx, &models.Support{
				UserID: "u1", Amount: 100, Currency: "usd", ProcessorSessionID: "cs_rollback",
			})
			require.NoError(t, err)
			require.True(t, inserted)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var n int64
		require.NoError(t, db.Model(&models.Support{}).Where("processor_session_id = ?", "cs_rollback").Count(&n).Error)
		assert.Equal(t, int64(0), n)
		require.NoError(t, settle("cs_rollback", 100))
		assert.Equal(t, int64(600), earnings(t, db, "u1"))
	})

	t.Run("unknown creator", func(t *testing.T) {
		err := store.Atomically(ctx, func(_ settlement.LedgerStore, balance settlement.BalanceStore) error {
			return balance.IncrementEarnings(ctx, "ghost", 100)
		})
		assert.ErrorIs(t, err, models.ErrProfileNotFound)
	})

	t.Run("concurrent same session inserts once", func(t *testing.T) {
		const callers = 8
		var wg sync.WaitGroup
		results := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = settle("cs_race", 250)
			}(i)
		}
		wg.Wait()

		ok, dup := 0, 0
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, errDuplicate):
				dup++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, callers-1, dup)
		assert.Equal(t, int64(850), earnings(t, db, "u1"))
	})

	t.Run("balance equals ledger sum", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			require.NoError(t, settle(fmt.Sprintf("cs_sum_%d", i), int64(i*10)))
		}
		var sum int64
		require.NoError(t, db.Model(&models.Support{}).Where("user_id = ?", "u1").Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error)
		assert.Equal(t, sum, earnings(t, db, "u1"))
	})
}

var errDuplicate = errors.New("duplicate")

func TestAnalyticsRepo_AppendIsIdempotentPerSession(t *testing.T) {
	db, _ := dbtest.NewPostgres(t)
	repo := posgrest.NewAnalyticsRepo(db)
	ctx := context.Background()

	event := models.TipReceivedEvent{SessionID: "cs_1", UserID: "u1", Amount: 500, Currency: "usd", Message: "hi"}
	require.NoError(t, repo.Append(ctx, event))
	require.NoError(t, repo.Append(ctx, event))

	n, err := repo.CountByUser(ctx, "u1", models.EventTypeTipReceived)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var stored models.AnalyticsEvent
	require.NoError(t, db.Where("idempotency_key = ?", models.TipReceivedKey("cs_1")).First(&stored).Error)
	assert.Equal(t, "cs_1", stored.Metadata["session_id"])
	assert.Equal(t, "hi", stored.Metadata["message"])
	assert.Equal(t, false, stored.Metadata["is_anonymous"])
}

func TestUnreconciledRepo_RecordOncePerEvent(t *testing.T) {
	db, _ := dbtest.NewPostgres(t)
	repo := posgrest.NewUnreconciledRepo(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Record(ctx, &models.UnreconciledEvent{
			ProcessorEventID: "evt_1",
			EventType:        "checkout.session.completed",
			Reason:           "missing user_id",
			Payload:          `{"id":"evt_1"}`,
		}))
	}

	open, err := repo.ListOpen(ctx, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "missing user_id", open[0].Reason)
}

func TestProfileRepo(t *testing.T) {
	db, _ := dbtest.NewPostgres(t)
	repo := posgrest.NewProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: "u1", Username: "alice", DisplayName: "Alice"}))

	p, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.NotEmpty(t, p.ID)

	p, err = repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrProfileNotFound)

	name := "Bob"
	for i, amount := range []int64{100, 200, 300} {
		require.NoError(t, db.Create(&models.Support{
			UserID: "u1", Amount: amount, Currency: "usd",
			SupporterName: &name, ProcessorSessionID: fmt.Sprintf("cs_%d", i),
		}).Error)
	}
	recent, err := repo.RecentSupports(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
