package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

func seedStock(t *testing.T, store *database.MemoryStore, ledger *stock.Ledger, attrs *extractors.Attributes, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, ledger.Increment(context.Background(), attrs))
	}
}

func TestCheckLowStockAlertsOncePerKey(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := stock.NewLedger(store, nil)
	notifier := &recordingNotifier{}
	ns := NewNotificationService(ledger, notifier, 4, nil)

	attrs := &extractors.Attributes{
		Size: "42", Gender: extractors.GenderM,
		AgeType: extractors.AgeShoes, Category: extractors.CategoryShoes,
	}
	seedStock(t, store, ledger, attrs, 3)

	require.NoError(t, ns.CheckLowStock(ctx))
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "calçado · senhor · 42")
	assert.Contains(t, notifier.messages[0], "restam 3")
	assert.Contains(t, notifier.messages[0], "limite 4")

	// Still low: no repeat.
	require.NoError(t, ns.CheckLowStock(ctx))
	assert.Len(t, notifier.messages, 1)
}

func TestCheckLowStockRearmsAfterRecovery(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := stock.NewLedger(store, nil)
	notifier := &recordingNotifier{}
	ns := NewNotificationService(ledger, notifier, 4, nil)

	attrs := &extractors.Attributes{
		Size: "42", Gender: extractors.GenderM,
		AgeType: extractors.AgeShoes, Category: extractors.CategoryShoes,
	}
	seedStock(t, store, ledger, attrs, 4)

	require.NoError(t, ns.CheckLowStock(ctx))
	require.Len(t, notifier.messages, 1)

	// Stock recovers above the threshold, then drops again.
	seedStock(t, store, ledger, attrs, 2)
	require.NoError(t, ns.CheckLowStock(ctx))
	assert.Len(t, notifier.messages, 1)

	require.NoError(t, ledger.Decrement(ctx, attrs))
	require.NoError(t, ledger.Decrement(ctx, attrs))
	require.NoError(t, ns.CheckLowStock(ctx))
	assert.Len(t, notifier.messages, 2)
}

func TestCheckLowStockKeepsArmedOnNotifierFailure(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := stock.NewLedger(store, nil)
	notifier := &recordingNotifier{fail: true}
	ns := NewNotificationService(ledger, notifier, 4, nil)

	attrs := &extractors.Attributes{
		Size: "42", Gender: extractors.GenderM,
		AgeType: extractors.AgeShoes, Category: extractors.CategoryShoes,
	}
	seedStock(t, store, ledger, attrs, 2)

	// The push fails but CheckLowStock itself succeeds; the key stays
	// armed so the operator is not flooded once the channel recovers.
	require.NoError(t, ns.CheckLowStock(ctx))
	assert.Empty(t, notifier.messages)

	notifier.fail = false
	require.NoError(t, ns.CheckLowStock(ctx))
	assert.Empty(t, notifier.messages, "no repeat for a key that stayed low")
}

func TestNopNotifier(t *testing.T) {
	assert.NoError(t, NopNotifier{}.Notify(context.Background(), "anything"))
}
