package repository

import (
	"context"
	"errors"
	"testing"

	"digital_wallet/internal/config"
	"digital_wallet/internal/db"
	"digital_wallet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletPatch map[string]any

func (p walletPatch) Changes() map[string]any { return p }

func newRepos(t *testing.T) Repositories {
	t.Helper()
	conn, err := db.Open(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewRepositories(conn)
}

func TestStoreCreateAndGet(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	w := &domain.Wallet{OwnerName: "alice", Balance: 10.5}
	require.NoError(t, repos.Wallets.Create(ctx, w))
	require.NotZero(t, w.ID)

	got, err := repos.Wallets.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.OwnerName)
	assert.Equal(t, 10.5, got.Balance)
}

func TestStoreGetMissing(t *testing.T) {
	repos := newRepos(t)
	_, err := repos.Wallets.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	w := &domain.Wallet{OwnerName: "bob", Balance: 5}
	require.NoError(t, repos.Wallets.Create(ctx, w))

	updated, err := repos.Wallets.Update(ctx, w.ID, walletPatch{"balance": 7.25})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.OwnerName)
	assert.Equal(t, 7.25, updated.Balance)

	unchanged, err := repos.Wallets.Update(ctx, w.ID, walletPatch{})
	require.NoError(t, err)
	assert.Equal(t, updated, unchanged)
}

func TestStoreUpdateMissing(t *testing.T) {
	repos := newRepos(t)
	_, err := repos.Wallets.Update(context.Background(), 9, walletPatch{"owner_name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	m := &domain.Merchant{Name: "corner shop"}
	require.NoError(t, repos.Merchants.Create(ctx, m))
	require.NoError(t, repos.Merchants.Delete(ctx, m.ID))

	_, err := repos.Merchants.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repos.Merchants.Delete(ctx, m.ID), ErrNotFound)
}

func TestStoreListBy(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	w1 := &domain.Wallet{OwnerName: "a", Balance: 1}
	w2 := &domain.Wallet{OwnerName: "b", Balance: 1}
	require.NoError(t, repos.Wallets.Create(ctx, w1))
	require.NoError(t, repos.Wallets.Create(ctx, w2))

	for _, amount := range []float64{1, 2, 3} {
		require.NoError(t, repos.Transactions.Create(ctx, &domain.Transaction{WalletID: w1.ID, Amount: amount, Type: "deposit"}))
	}

	txs, err := repos.Transactions.ListBy(ctx, "wallet_id", w1.ID)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, 1.0, txs[0].Amount)
	assert.Equal(t, 3.0, txs[2].Amount)

	none, err := repos.Transactions.ListBy(ctx, "wallet_id", w2.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreForeignKeyConflict(t *testing.T) {
	repos := newRepos(t)
	err := repos.Transactions.Create(context.Background(), &domain.Transaction{WalletID: 77, Amount: 1, Type: "deposit"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
}
