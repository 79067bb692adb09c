package services

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SergioFerreira2020/GestorLotes/database"
	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
)

// contactRe: digits only, national numbers have at most nine.
var contactRe = regexp.MustCompile(`^\d{1,9}$`)

// ClientService manages the beneficiary registry.
type ClientService struct {
	store  database.DocumentStore
	logger *slog.Logger
}

// NewClientService creates the client registry service.
func NewClientService(store database.DocumentStore, logger *slog.Logger) *ClientService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientService{store: store, logger: logger}
}

func clientFromDoc(id string, doc database.Document) *Client {
	client := &Client{ID: id}
	if v, ok := doc["name"].(string); ok {
		client.Name = v
	}
	if v, ok := doc["contact"].(string); ok {
		client.Contact = v
	}
	if v, ok := doc["address"].(string); ok {
		client.Address = v
	}
	if v, ok := doc["notes"].(string); ok {
		client.Notes = v
	}
	if v, ok := doc["createdAt"].(string); ok {
		client.CreatedAt = v
	}
	return client
}

func validateClientInput(input *ClientInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Address = strings.TrimSpace(input.Address)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.Name == "" {
		return apperrors.NewValidationError("o nome é obrigatório", nil)
	}
	if input.Contact == "" {
		return apperrors.NewValidationError("o contacto é obrigatório", nil)
	}
	if !contactRe.MatchString(input.Contact) {
		return apperrors.NewValidationError("contacto inválido: apenas dígitos, no máximo 9", nil)
	}
	if input.Address == "" {
		return apperrors.NewValidationError("a morada é obrigatória", nil)
	}
	return nil
}

// List returns every client sorted by name.
func (s *ClientService) List(ctx context.Context) ([]*Client, error) {
	entries, err := s.store.Enumerate(ctx, CollectionClients)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to enumerate clients", err)
	}

	clients := make([]*Client, 0, len(entries))
	for _, entry := range entries {
		clients = append(clients, clientFromDoc(entry.ID, entry.Doc))
	}

	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})

	return clients, nil
}

// Get returns one client by id.
func (s *ClientService) Get(ctx context.Context, id string) (*Client, error) {
	doc, found, err := s.store.Get(ctx, CollectionClients, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read client", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("cliente não encontrado", nil)
	}
	return clientFromDoc(id, doc), nil
}

// Create registers a new client.
func (s *ClientService) Create(ctx context.Context, input ClientInput) (*Client, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateClientInput(&input); err != nil {
		return nil, err
	}

	client := &Client{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Contact:   input.Contact,
		Address:   input.Address,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	doc := database.Document{
		"name":      client.Name,
		"contact":   client.Contact,
		"address":   client.Address,
		"notes":     client.Notes,
		"createdAt": client.CreatedAt,
	}
	if err := s.store.Put(ctx, CollectionClients, client.ID, doc, false); err != nil {
		return nil, apperrors.NewInternalError("failed to store client", err)
	}

	s.logger.Info("client created",
		"client", client.ID,
		"request_id", requestIDFrom(ctx),
	)

	return client, nil
}

// Update rewrites the editable fields of an existing client.
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (*Client, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateClientInput(&input); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Contact = input.Contact
	existing.Address = input.Address
	existing.Notes = input.Notes

	doc := database.Document{
		"name":    existing.Name,
		"contact": existing.Contact,
		"address": existing.Address,
		"notes":   existing.Notes,
	}
	if err := s.store.Put(ctx, CollectionClients, id, doc, true); err != nil {
		return nil, apperrors.NewInternalError("failed to update client", err)
	}

	s.logger.Info("client updated",
		"client", id,
		"request_id", requestIDFrom(ctx),
	)

	return existing, nil
}

// Delete removes a client. A client still holding assigned lots cannot be
// deleted; the lots would keep pointing at a ghost.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := ValidateContext(ctx); err != nil {
		return err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	lots, err := s.store.Enumerate(ctx, CollectionLotes)
	if err != nil {
		return apperrors.NewInternalError("failed to enumerate lots", err)
	}
	for _, entry := range lots {
		if assigned, ok := entry.Doc["assignedTo"].(string); ok && assigned == id {
			return apperrors.NewConflictError("o cliente tem lotes atribuídos por entregar", nil)
		}
	}

	if err := s.store.Delete(ctx, CollectionClients, id); err != nil {
		return apperrors.NewInternalError("failed to delete client", err)
	}

	s.logger.Info("client deleted",
		"client", id,
		"request_id", requestIDFrom(ctx),
	)

	return nil
}
