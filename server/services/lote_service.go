package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

// Editable lot fields.
const (
	FieldDescription = "description"
	FieldTrade       = "trade"
)

// LoteService drives the lot lifecycle: edits with stock reconciliation,
// assignment to clients and delivery. It is the only writer of the stock
// ledger, which keeps the counter movements tied to lot events.
type LoteService struct {
	store         database.DocumentStore
	ledger        *stock.Ledger
	extractor     *extractors.Extractor
	notifications *NotificationService
	logger        *slog.Logger
	loteCount     int
}

// NewLoteService creates the lot lifecycle service.
func NewLoteService(store database.DocumentStore, ledger *stock.Ledger, extractor *extractors.Extractor, notifications *NotificationService, logger *slog.Logger, loteCount int) *LoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoteService{
		store:         store,
		ledger:        ledger,
		extractor:     extractor,
		notifications: notifications,
		logger:        logger,
		loteCount:     loteCount,
	}
}

// validateID accepts lot ids 1..loteCount and returns the normalized form.
func (s *LoteService) validateID(id string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n < 1 || n > s.loteCount {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("número de lote inválido (1 a %d)", s.loteCount), err)
	}
	return strconv.Itoa(n), nil
}

func lotFromDoc(id string, doc database.Document) *Lot {
	lot := &Lot{ID: id}
	if doc == nil {
		return lot
	}
	if v, ok := doc["description"].(string); ok {
		lot.Description = v
	}
	if v, ok := doc["trade"].(string); ok {
		lot.Trade = v
	}
	if v, ok := doc["assignedTo"].(string); ok {
		lot.AssignedTo = v
	}
	if v, ok := doc["delivered"].(bool); ok {
		lot.Delivered = v
	}
	if v, ok := doc["assignedAt"].(string); ok {
		lot.AssignedAt = v
	}
	return lot
}

// List returns every lot from 1 to the configured count. Lots without a
// stored document come back as empty shells so the caller always sees the
// full numbered set.
func (s *LoteService) List(ctx context.Context) ([]*Lot, error) {
	entries, err := s.store.Enumerate(ctx, CollectionLotes)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate lots", err)
	}

	byID := make(map[string]database.Document, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry.Doc
	}

	lots := make([]*Lot, 0, s.loteCount)
	for i := 1; i <= s.loteCount; i++ {
		id := strconv.Itoa(i)
		lots = append(lots, lotFromDoc(id, byID[id]))
	}

	return lots, nil
}

// Get returns a single lot; an unstored lot is an empty shell, not an error.
func (s *LoteService) Get(ctx context.Context, id string) (*Lot, error) {
	id, err := s.validateID(id)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.store.Get(ctx, CollectionLotes, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read lot", err)
	}

	return lotFromDoc(id, doc), nil
}

// UpdateField edits the description or the trade of a lot. Description edits
// reconcile the stock ledger before anything is persisted; when both fields
// end up empty the record is deleted rather than stored as an empty shell.
func (s *LoteService) UpdateField(ctx context.Context, id, field, value string) (*Lot, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	id, err := s.validateID(id)
	if err != nil {
		return nil, err
	}

	if field != FieldDescription && field != FieldTrade {
		return nil, apperrors.NewValidationError("campo inválido", nil)
	}

	value = strings.TrimSpace(value)

	doc, found, err := s.store.Get(ctx, CollectionLotes, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read lot", err)
	}
	lot := lotFromDoc(id, doc)

	if field == FieldDescription {
		if lot.Delivered {
			return nil, apperrors.NewConflictError("lote já entregue", nil)
		}
		if err := s.reconcile(ctx, lot.Description, value); err != nil {
			return nil, apperrors.NewInternalError("failed to reconcile stock", err)
		}
		lot.Description = value
	} else {
		lot.Trade = value
	}

	if !lot.Filled() {
		if found {
			if err := s.store.Delete(ctx, CollectionLotes, id); err != nil {
				return nil, apperrors.NewInternalError("failed to delete emptied lot", err)
			}
		}
	} else {
		if err := s.store.Put(ctx, CollectionLotes, id, database.Document{field: value}, true); err != nil {
			return nil, apperrors.NewInternalError("failed to store lot", err)
		}
	}

	if field == FieldDescription {
		s.checkStockAfterMutation(ctx)
	}

	s.logger.Info("lot updated",
		"lote", id,
		"field", field,
		"request_id", requestIDFrom(ctx),
	)

	return lot, nil
}

// reconcile moves the ledger from the old description to the new one. Both
// extractions run before any counter moves; when the attribute key is
// unchanged nothing happens at all. On a change the decrement runs first so
// a failure leaves the old counter intact.
func (s *LoteService) reconcile(ctx context.Context, oldText, newText string) error {
	oldAttrs := s.extractor.Extract(oldText)
	newAttrs := s.extractor.Extract(newText)

	switch {
	case oldAttrs == nil && newAttrs == nil:
		return nil
	case oldAttrs == nil:
		return s.ledger.Increment(ctx, newAttrs)
	case newAttrs == nil:
		return s.ledger.Decrement(ctx, oldAttrs)
	case stock.KeyFor(oldAttrs) == stock.KeyFor(newAttrs):
		return nil
	default:
		if err := s.ledger.Decrement(ctx, oldAttrs); err != nil {
			return err
		}
		return s.ledger.Increment(ctx, newAttrs)
	}
}

// Assign reserves a lot for a client. The lot must hold a description and be
// unassigned; assignment has no stock effect.
func (s *LoteService) Assign(ctx context.Context, loteID, clientID string) (*Lot, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	loteID, err := s.validateID(loteID)
	if err != nil {
		return nil, err
	}

	_, clientFound, err := s.store.Get(ctx, CollectionClients, clientID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read client", err)
	}
	if !clientFound {
		return nil, apperrors.NewNotFoundError("cliente não encontrado", nil)
	}

	doc, found, err := s.store.Get(ctx, CollectionLotes, loteID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read lot", err)
	}
	lot := lotFromDoc(loteID, doc)

	if !found || lot.Description == "" {
		return nil, apperrors.NewValidationError("o lote está vazio", nil)
	}
	if lot.AssignedTo != "" {
		return nil, apperrors.NewConflictError("lote já atribuído", nil)
	}

	lot.AssignedTo = clientID
	lot.Delivered = false
	lot.AssignedAt = time.Now().UTC().Format(time.RFC3339)

	err = s.store.Put(ctx, CollectionLotes, loteID, database.Document{
		"assignedTo": lot.AssignedTo,
		"delivered":  false,
		"assignedAt": lot.AssignedAt,
	}, true)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to assign lot", err)
	}

	s.logger.Info("lot assigned",
		"lote", loteID,
		"client", clientID,
		"request_id", requestIDFrom(ctx),
	)

	return lot, nil
}

// Deliver hands an assigned lot to its client: one ledger decrement for the
// current description, an immutable history snapshot, then the lot record is
// deleted and its number becomes free again.
func (s *LoteService) Deliver(ctx context.Context, loteID string) (*HistoryRecord, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	loteID, err := s.validateID(loteID)
	if err != nil {
		return nil, err
	}

	doc, found, err := s.store.Get(ctx, CollectionLotes, loteID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read lot", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("lote não encontrado", nil)
	}

	lot := lotFromDoc(loteID, doc)
	if lot.AssignedTo == "" {
		return nil, apperrors.NewValidationError("o lote não está atribuído a nenhum cliente", nil)
	}

	record := &HistoryRecord{
		ID:          uuid.New().String(),
		Lote:        loteID,
		Description: lot.Description,
		Trade:       lot.Trade,
		Client:      lot.AssignedTo,
		DeliveredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if attrs := s.extractor.Extract(lot.Description); attrs != nil {
		record.Category = string(attrs.Category)
		record.AgeType = string(attrs.AgeType)

		if err := s.ledger.Decrement(ctx, attrs); err != nil {
			return nil, apperrors.NewInternalError("failed to decrement stock", err)
		}
	}

	historyDoc := database.Document{
		"lote":        record.Lote,
		"description": record.Description,
		"trade":       record.Trade,
		"client":      record.Client,
		"deliveredAt": record.DeliveredAt,
		"category":    record.Category,
		"ageType":     record.AgeType,
	}
	if err := s.store.Put(ctx, CollectionHistory, record.ID, historyDoc, false); err != nil {
		return nil, apperrors.NewInternalError("failed to write delivery record", err)
	}

	if err := s.store.Delete(ctx, CollectionLotes, loteID); err != nil {
		return nil, apperrors.NewInternalError("failed to release delivered lot", err)
	}

	s.checkStockAfterMutation(ctx)

	s.logger.Info("lot delivered",
		"lote", loteID,
		"client", record.Client,
		"history_id", record.ID,
		"request_id", requestIDFrom(ctx),
	)

	return record, nil
}

// DeliverAll delivers every lot currently assigned to the client. Each lot is
// delivered independently: a failure on one does not roll back the others,
// and the remaining lots are still attempted.
func (s *LoteService) DeliverAll(ctx context.Context, clientID string) ([]*HistoryRecord, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	_, clientFound, err := s.store.Get(ctx, CollectionClients, clientID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read client", err)
	}
	if !clientFound {
		return nil, apperrors.NewNotFoundError("cliente não encontrado", nil)
	}

	entries, err := s.store.Enumerate(ctx, CollectionLotes)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate lots", err)
	}

	records := []*HistoryRecord{}
	var failures []error
	for _, entry := range entries {
		lot := lotFromDoc(entry.ID, entry.Doc)
		if lot.AssignedTo != clientID || lot.Delivered {
			continue
		}

		record, err := s.Deliver(ctx, lot.ID)
		if err != nil {
			s.logger.Error("deliver-all: lot failed",
				"lote", lot.ID,
				"client", clientID,
				"error", err,
				"request_id", requestIDFrom(ctx),
			)
			failures = append(failures, fmt.Errorf("lote %s: %w", lot.ID, err))
			continue
		}
		records = append(records, record)
	}

	if len(failures) > 0 {
		return records, apperrors.WrapError(errors.Join(failures...), "entrega parcial")
	}

	return records, nil
}

// Pending returns the lots currently assigned and awaiting delivery.
func (s *LoteService) Pending(ctx context.Context) ([]*Lot, error) {
	entries, err := s.store.Enumerate(ctx, CollectionLotes)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate lots", err)
	}

	pending := []*Lot{}
	for _, entry := range entries {
		lot := lotFromDoc(entry.ID, entry.Doc)
		if lot.AssignedTo != "" && !lot.Delivered {
			pending = append(pending, lot)
		}
	}

	return pending, nil
}

// PendingForClient returns the client's lots awaiting delivery. Used to show
// what a deliver-all would cover.
func (s *LoteService) PendingForClient(ctx context.Context, clientID string) ([]*Lot, error) {
	pending, err := s.Pending(ctx)
	if err != nil {
		return nil, err
	}

	own := []*Lot{}
	for _, lot := range pending {
		if lot.AssignedTo == clientID {
			own = append(own, lot)
		}
	}

	return own, nil
}

// checkStockAfterMutation runs the low-stock check after a ledger movement.
// Alerting is best effort: a failure is logged and never fails the request.
func (s *LoteService) checkStockAfterMutation(ctx context.Context) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.CheckLowStock(ctx); err != nil {
		s.logger.Error("low-stock check failed", "error", err, "request_id", requestIDFrom(ctx))
	}
}
