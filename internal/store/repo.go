// Package store persists an append-only log of evaluation events in SQLite.
package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before (0 = no bound)
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EventType distinguishes the tables events come from.
type EventType string

const (
	EventClassification EventType = "classification"
	EventRender         EventType = "render"
)

// ClassificationEventData captures one rule evaluation.
type ClassificationEventData struct {
	ID          string
	Interaction string
	Rule        string
	Matched     bool
	Error       string // empty when the request was well formed
}

// RenderEventData captures one spoken-math render.
type RenderEventData struct {
	ID        string
	Language  string
	Fractions bool
	Rendered  string
	OK        bool
}

// Event is a stored event of either type. Exactly one of Classification
// and Render is set, matching Type.
type Event struct {
	Sequence       int64
	Timestamp      time.Time
	Type           EventType
	Classification *ClassificationEventData
	Render         *RenderEventData
}

// EventRepo provides append and query access to evaluation events.
type EventRepo interface {
	// AppendClassification records a classification event.
	AppendClassification(ctx context.Context, data ClassificationEventData) error

	// AppendRender records a render event.
	AppendRender(ctx context.Context, data RenderEventData) error

	// Events returns events of both types in sequence order, newest first.
	Events(ctx context.Context, opts QueryOpts) ([]Event, error)
}
