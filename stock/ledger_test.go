package stock

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
)

var jacketGirl = &extractors.Attributes{
	Size:     "4-8 MESES",
	Gender:   extractors.GenderGirl,
	AgeType:  extractors.AgeBaby,
	Category: extractors.CategoryJacket,
}

func TestLedgerIncrement(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, ledger.Increment(ctx, jacketGirl))

	doc, found, err := store.Get(ctx, CollectionSizes, "baby-GIRL-4-8 MESES")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, intField(doc, "count"))
	assert.Equal(t, "4-8 MESES", doc["size"])
	assert.Equal(t, "GIRL", doc["gender"])
	assert.Equal(t, "baby", doc["ageType"])
	assert.Equal(t, "jacket", doc["category"])

	require.NoError(t, ledger.Increment(ctx, jacketGirl))

	doc, _, err = store.Get(ctx, CollectionSizes, "baby-GIRL-4-8 MESES")
	require.NoError(t, err)
	assert.Equal(t, 2, intField(doc, "count"))
}

func TestLedgerDecrement(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, ledger.Increment(ctx, jacketGirl))
	require.NoError(t, ledger.Increment(ctx, jacketGirl))
	require.NoError(t, ledger.Decrement(ctx, jacketGirl))

	doc, _, err := store.Get(ctx, CollectionSizes, "baby-GIRL-4-8 MESES")
	require.NoError(t, err)
	assert.Equal(t, 1, intField(doc, "count"))
	assert.Zero(t, ledger.DriftCount())
}

func TestLedgerDecrementFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, ledger.Increment(ctx, jacketGirl))
	require.NoError(t, ledger.Decrement(ctx, jacketGirl))
	require.NoError(t, ledger.Decrement(ctx, jacketGirl))

	doc, found, err := store.Get(ctx, CollectionSizes, "baby-GIRL-4-8 MESES")
	require.NoError(t, err)
	require.True(t, found, "the entry survives at zero, it is not deleted")
	assert.Equal(t, 0, intField(doc, "count"))
	assert.Zero(t, ledger.DriftCount(), "a floored decrement is not drift")
}

func TestLedgerDecrementAbsentEntry(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, ledger.Decrement(ctx, jacketGirl))

	_, found, err := store.Get(ctx, CollectionSizes, "baby-GIRL-4-8 MESES")
	require.NoError(t, err)
	assert.False(t, found, "an absent-entry decrement must never create the entry")
	assert.Equal(t, int64(1), ledger.DriftCount())
}

func TestLedgerScanLow(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, store.Put(ctx, CollectionSizes, "baby-GIRL-4-8 MESES", database.Document{
		"count": 2, "size": "4-8 MESES", "gender": "GIRL", "ageType": "baby", "category": "jacket",
	}, false))
	require.NoError(t, store.Put(ctx, CollectionSizes, "shoes-M-42", database.Document{
		"count": 4, "size": "42", "gender": "M", "ageType": "shoes", "category": "shoes",
	}, false))
	require.NoError(t, store.Put(ctx, CollectionSizes, "clothes-F-M", database.Document{
		"count": 9, "size": "M", "gender": "F", "ageType": "clothes", "category": "dress",
	}, false))

	low, err := ledger.ScanLow(ctx, 4)
	require.NoError(t, err)
	require.Len(t, low, 2)

	// Lowest count first.
	assert.Equal(t, "baby-GIRL-4-8 MESES", low[0].Key)
	assert.Equal(t, 2, low[0].Count)
	assert.Equal(t, "casaco", low[0].CategoryLabel)
	assert.Equal(t, "menina", low[0].GenderLabel)
	assert.Equal(t, "casaco · menina · 4-8 MESES", low[0].Label())

	assert.Equal(t, "shoes-M-42", low[1].Key)
	assert.Equal(t, 4, low[1].Count, "the threshold is inclusive")
}

func TestLedgerScanLowLegacyKeys(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	// A legacy entry carries only the counter; everything else comes from
	// the key itself.
	require.NoError(t, store.Put(ctx, CollectionSizes, "GIRL-6 ANOS", database.Document{"count": 1}, false))

	low, err := ledger.ScanLow(ctx, 4)
	require.NoError(t, err)
	require.Len(t, low, 1)

	assert.Equal(t, "GIRL-6 ANOS", low[0].Key)
	assert.Equal(t, "6 ANOS", low[0].Size)
	assert.Equal(t, "GIRL", low[0].Gender)
	assert.Equal(t, "clothes", low[0].AgeType)
	assert.Equal(t, "menina", low[0].GenderLabel)
	assert.Equal(t, "roupa", low[0].CategoryLabel)
}

func TestLedgerScanLowSkipsMalformedKeys(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	ledger := NewLedger(store, nil)

	require.NoError(t, store.Put(ctx, CollectionSizes, "garbage", database.Document{"count": 0}, false))
	require.NoError(t, store.Put(ctx, CollectionSizes, "shoes-M-42", database.Document{
		"count": 1, "size": "42", "gender": "M", "ageType": "shoes", "category": "shoes",
	}, false))

	low, err := ledger.ScanLow(ctx, 4)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "shoes-M-42", low[0].Key)
}

func TestExporterWriteLowStock(t *testing.T) {
	entries := []LowEntry{
		{
			Key: "baby-GIRL-4-8 MESES", Count: 2, Size: "4-8 MESES",
			Gender: "GIRL", AgeType: "baby", Category: "jacket",
			GenderLabel: "menina", AgeTypeLabel: "bebé", CategoryLabel: "casaco",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewExporter().WriteLowStock(&buf, entries, 4))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Stock Baixo", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Categoria", header)

	category, err := f.GetCellValue("Stock Baixo", "A2")
	require.NoError(t, err)
	assert.Equal(t, "casaco", category)

	count, err := f.GetCellValue("Stock Baixo", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}
