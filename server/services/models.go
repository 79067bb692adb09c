package services

// Document collections used by the services.
const (
	CollectionLotes   = "lotes"
	CollectionClients = "clients"
	CollectionHistory = "history"
)

// Lot is one donation lot. Lots are a fixed numbered set; a lot with no
// stored document is simply empty. Description is free text written by the
// operators; trade holds what the donor asked for in return.
type Lot struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Trade       string `json:"trade"`
	AssignedTo  string `json:"assignedTo,omitempty"`
	Delivered   bool   `json:"delivered,omitempty"`
	AssignedAt  string `json:"assignedAt,omitempty"`
}

// Filled reports whether the lot holds any content.
func (l *Lot) Filled() bool {
	return l.Description != "" || l.Trade != ""
}

// Client is a registered beneficiary.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ClientInput carries the writable client fields for create and update.
type ClientInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// HistoryRecord is the immutable snapshot written when a lot is delivered.
// The lot record itself is deleted on delivery; this is all that remains.
type HistoryRecord struct {
	ID          string `json:"id"`
	Lote        string `json:"lote"`
	Description string `json:"description"`
	Trade       string `json:"trade,omitempty"`
	Client      string `json:"client"`
	ClientName  string `json:"clientName,omitempty"`
	DeliveredAt string `json:"deliveredAt"`
	Category    string `json:"category,omitempty"`
	AgeType     string `json:"ageType,omitempty"`
}
