// Package store persists compute runs for later retrieval.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing and the TUI
//   - mongo: MongoDB-backed storage for the API server
//
// A run record holds everything needed to reproduce or audit a compute:
// the template, the dials, the resolved layout, and the composed prompt.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a run does not exist.
	ErrNotFound = errors.New("run not found")
)

// Record is one persisted compute run.
type Record struct {
	ID         string         `json:"id" bson:"_id"`
	LayoutID   string         `json:"layout_id" bson:"layout_id"`
	LayoutType string         `json:"layout_type" bson:"layout_type"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	Params     layout.Params  `json:"params" bson:"params"`
	Result     *layout.Result `json:"result" bson:"result"`
	Prompt     string         `json:"prompt,omitempty" bson:"prompt,omitempty"`
}

// Store persists and retrieves run records.
type Store interface {
	// Save stores a record. Saving an existing ID overwrites it.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by run ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns the most recent records, newest first, up to limit.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Delete removes a record. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
