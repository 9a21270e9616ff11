// SPDX-License-Identifier: MIT

// Package store persists orchestration summaries so that finished runs can be
// listed and inspected later. Pheromone state is never persisted.
//
// Backends: "memory" (process lifetime) and "sqlite" (modernc.org/sqlite, pure Go).
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/antpath/orchestrator"
)

var (
	// ErrUnsupportedBackend is returned by NewStore for an unknown kind.
	ErrUnsupportedBackend = errors.New("store: unsupported backend")

	// ErrNotInitialized is returned when a store is used before Init.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrMissingID is returned when saving a record without an ID.
	ErrMissingID = errors.New("store: record id is required")
)

// VersionedRecord carries the encoding versions of a persisted record.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord is one persisted orchestration run.
type RunRecord struct {
	VersionedRecord
	ID        string               `json:"id"`
	Graph     string               `json:"graph"`
	CreatedAt time.Time            `json:"created_at"`
	BestScore float64              `json:"best_score"`
	Failed    bool                 `json:"failed"`
	Summary   orchestrator.Summary `json:"summary"`
}

// NewRunRecord wraps a summary with the current versions.
func NewRunRecord(sum orchestrator.Summary) RunRecord {
	return RunRecord{
		VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              sum.RunID,
		Graph:           sum.Graph,
		CreatedAt:       sum.StartedAt,
		BestScore:       sum.BestScore,
		Failed:          sum.Failed(),
		Summary:         sum,
	}
}

// Store defines persistence operations for run records.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, rec RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	// ListRuns returns up to limit records, newest first; limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// NewStore returns an uninitialized store of the given kind.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnsupportedBackend)
	}
}

// CloseIfSupported closes stores that hold resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
