package stock

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
)

// CollectionSizes is the document collection holding the aggregate ledger.
const CollectionSizes = "sizes"

// Ledger maintains the aggregate stock counters, one document per attribute
// key. Counters move by single increments and decrements driven by lot
// events; the ledger is never rebuilt from the lot records.
type Ledger struct {
	store  database.DocumentStore
	logger *slog.Logger

	// drift counts decrements that found no ledger entry. A non-zero value
	// means lot events and counters have diverged somewhere.
	drift atomic.Int64
}

// NewLedger creates a ledger over the given store.
func NewLedger(store database.DocumentStore, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{store: store, logger: logger}
}

// Increment adds one unit for the attribute tuple, creating the entry with
// the denormalized attribute fields when it does not exist yet.
func (l *Ledger) Increment(ctx context.Context, attrs *extractors.Attributes) error {
	key := KeyFor(attrs)
	id := key.String()

	doc, found, err := l.store.Get(ctx, CollectionSizes, id)
	if err != nil {
		return fmt.Errorf("failed to read stock entry %s: %w", id, err)
	}

	count := 0
	if found {
		count = intField(doc, "count")
	}

	entry := database.Document{
		"count":    count + 1,
		"size":     attrs.Size,
		"gender":   string(attrs.Gender),
		"ageType":  string(attrs.AgeType),
		"category": string(attrs.Category),
	}

	if err := l.store.Put(ctx, CollectionSizes, id, entry, true); err != nil {
		return fmt.Errorf("failed to increment stock entry %s: %w", id, err)
	}

	return nil
}

// Decrement removes one unit for the attribute tuple. The count floors at
// zero, and a decrement against an absent entry is recorded as drift and
// otherwise ignored; it never creates an entry.
func (l *Ledger) Decrement(ctx context.Context, attrs *extractors.Attributes) error {
	key := KeyFor(attrs)
	id := key.String()

	doc, found, err := l.store.Get(ctx, CollectionSizes, id)
	if err != nil {
		return fmt.Errorf("failed to read stock entry %s: %w", id, err)
	}

	if !found {
		l.drift.Add(1)
		l.logger.Warn("decrement against absent stock entry",
			"key", id,
			"drift_total", l.drift.Load(),
		)
		return nil
	}

	count := intField(doc, "count")
	if count > 0 {
		count--
	}

	if err := l.store.Put(ctx, CollectionSizes, id, database.Document{"count": count}, true); err != nil {
		return fmt.Errorf("failed to decrement stock entry %s: %w", id, err)
	}

	return nil
}

// DriftCount returns how many decrements found no matching ledger entry
// since startup.
func (l *Ledger) DriftCount() int64 {
	return l.drift.Load()
}

// LowEntry is one low-stock report line: the raw key plus the Portuguese
// labels the report and the alerts are built from.
type LowEntry struct {
	Key           string `json:"key"`
	Count         int    `json:"count"`
	Size          string `json:"size"`
	Gender        string `json:"gender"`
	AgeType       string `json:"ageType"`
	Category      string `json:"category"`
	GenderLabel   string `json:"genderLabel"`
	AgeTypeLabel  string `json:"ageTypeLabel"`
	CategoryLabel string `json:"categoryLabel"`
}

// Label returns the human form used in reports and alert messages,
// e.g. "casaco · menina · 4-8 MESES".
func (e LowEntry) Label() string {
	return fmt.Sprintf("%s · %s · %s", e.CategoryLabel, e.GenderLabel, e.Size)
}

// ScanLow returns every ledger entry at or below the threshold, lowest count
// first. Entries written by the previous key generation lack the denormalized
// fields; those are recovered from the key itself.
func (l *Ledger) ScanLow(ctx context.Context, threshold int) ([]LowEntry, error) {
	entries, err := l.store.Enumerate(ctx, CollectionSizes)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock ledger: %w", err)
	}

	low := []LowEntry{}
	for _, entry := range entries {
		count := intField(entry.Doc, "count")
		if count > threshold {
			continue
		}

		key, err := ParseKey(entry.ID)
		if err != nil {
			l.logger.Warn("skipping malformed stock key", "key", entry.ID, "error", err)
			continue
		}

		gender := key.Gender
		if g, ok := entry.Doc["gender"].(string); ok && g != "" {
			gender = extractors.Gender(g)
		}
		ageType := key.AgeType
		if a, ok := entry.Doc["ageType"].(string); ok && a != "" {
			ageType = extractors.AgeType(a)
		}
		size := key.Size
		if s, ok := entry.Doc["size"].(string); ok && s != "" {
			size = s
		}
		category := extractors.CategoryClothes
		if c, ok := entry.Doc["category"].(string); ok && c != "" {
			category = extractors.Category(c)
		}

		low = append(low, LowEntry{
			Key:           entry.ID,
			Count:         count,
			Size:          size,
			Gender:        string(gender),
			AgeType:       string(ageType),
			Category:      string(category),
			GenderLabel:   extractors.GenderLabel(gender),
			AgeTypeLabel:  extractors.AgeTypeLabel(ageType),
			CategoryLabel: extractors.CategoryLabel(category),
		})
	}

	sort.Slice(low, func(i, j int) bool {
		if low[i].Count != low[j].Count {
			return low[i].Count < low[j].Count
		}
		return low[i].Key < low[j].Key
	})

	return low, nil
}

// intField reads a numeric document field, tolerating the float64 that JSON
// decoding produces and the int the in-memory store may hold.
func intField(doc database.Document, field string) int {
	switch v := doc[field].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}
