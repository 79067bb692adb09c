package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SergioFerreira2020/GestorLotes/database"
	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
)

// HistoryService reads the delivery log. Records are written once by the lot
// lifecycle and never modified afterwards.
type HistoryService struct {
	store  database.DocumentStore
	logger *slog.Logger
}

// NewHistoryService creates the delivery history service.
func NewHistoryService(store database.DocumentStore, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryService{store: store, logger: logger}
}

func historyFromDoc(id string, doc database.Document) *HistoryRecord {
	record := &HistoryRecord{ID: id}
	if v, ok := doc["lote"].(string); ok {
		record.Lote = v
	}
	if v, ok := doc["description"].(string); ok {
		record.Description = v
	}
	if v, ok := doc["trade"].(string); ok {
		record.Trade = v
	}
	if v, ok := doc["client"].(string); ok {
		record.Client = v
	}
	if v, ok := doc["deliveredAt"].(string); ok {
		record.DeliveredAt = v
	}
	if v, ok := doc["category"].(string); ok {
		record.Category = v
	}
	if v, ok := doc["ageType"].(string); ok {
		record.AgeType = v
	}
	return record
}

// List returns all delivery records, newest first, with the client name
// resolved for display. A record whose client was deleted afterwards keeps
// the id and shows it in place of the name.
func (s *HistoryService) List(ctx context.Context) ([]*HistoryRecord, error) {
	entries, err := s.store.Enumerate(ctx, CollectionHistory)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate history", err)
	}

	clientEntries, err := s.store.Enumerate(ctx, CollectionClients)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate clients", err)
	}
	names := make(map[string]string, len(clientEntries))
	for _, entry := range clientEntries {
		if name, ok := entry.Doc["name"].(string); ok {
			names[entry.ID] = name
		}
	}

	records := make([]*HistoryRecord, 0, len(entries))
	for _, entry := range entries {
		record := historyFromDoc(entry.ID, entry.Doc)
		if name, ok := names[record.Client]; ok {
			record.ClientName = name
		} else {
			record.ClientName = record.Client
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DeliveredAt > records[j].DeliveredAt
	})

	return records, nil
}
