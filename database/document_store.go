package database

import "context"

// Document is an opaque schemaless record. Values are the JSON scalar types;
// callers own the interpretation.
type Document = map[string]interface{}

// Entry pairs a document with its identifier inside a collection, as returned
// by enumeration.
type Entry struct {
	ID  string
	Doc Document
}

// DocumentStore is the persistence contract every service depends on: flat
// collections of documents addressed by string id. There are no transactions
// and no multi-document atomicity; callers order their writes so that a
// failure in the middle leaves a recoverable state.
type DocumentStore interface {
	// Get returns the document and true, or a nil document and false when the
	// id does not exist in the collection.
	Get(ctx context.Context, collection, id string) (Document, bool, error)

	// Put writes the document. With merge set, top-level fields are merged
	// into the existing document (creating it when absent); otherwise the
	// stored document is replaced wholesale.
	Put(ctx context.Context, collection, id string, doc Document, merge bool) error

	// Delete removes the document. Deleting an absent id is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Enumerate returns every document in the collection ordered by id.
	// An empty or unknown collection yields an empty slice.
	Enumerate(ctx context.Context, collection string) ([]Entry, error)
}

// copyDocument returns a top-level copy so callers cannot mutate stored state
// through a returned document.
func copyDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
