package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// eventRepo implements EventRepo backed by SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) timestamp() int64 {
	if r.now != nil {
		return r.now().UTC().UnixMilli()
	}
	return time.Now().UTC().UnixMilli()
}

func (r *eventRepo) AppendClassification(ctx context.Context, data ClassificationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO classification_events (id, sequence, timestamp, interaction, rule, matched, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.ID, seqNum, r.timestamp(), data.Interaction, data.Rule, data.Matched, data.Error,
	)
	if err != nil {
		return fmt.Errorf("save classification event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRender(ctx context.Context, data RenderEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO render_events (id, sequence, timestamp, language, fractions, rendered, ok)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.ID, seqNum, r.timestamp(), data.Language, data.Fractions, data.Rendered, data.OK,
	)
	if err != nil {
		return fmt.Errorf("save render event: %w", err)
	}
	return nil
}

// eventsQuery merges both tables into one stream. Columns that only one
// table has are padded so the UNION lines up.
const eventsQuery = `SELECT sequence, timestamp, type, id, a, b, flag, detail, fractions FROM (
	SELECT sequence, timestamp, 'classification' AS type, id,
	       interaction AS a, rule AS b, matched AS flag, error AS detail, 0 AS fractions
	FROM classification_events
	UNION ALL
	SELECT sequence, timestamp, 'render' AS type, id,
	       language AS a, rendered AS b, ok AS flag, '' AS detail, fractions
	FROM render_events
)`

func (r *eventRepo) Events(ctx context.Context, opts QueryOpts) ([]Event, error) {
	query, args := buildEventsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev        Event
			ts        int64
			typ       string
			id, a, b  string
			flag      bool
			detail    string
			fractions bool
		)
		if err := rows.Scan(&ev.Sequence, &ts, &typ, &id, &a, &b, &flag, &detail, &fractions); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ts).UTC()
		ev.Type = EventType(typ)
		switch ev.Type {
		case EventClassification:
			ev.Classification = &ClassificationEventData{ID: id, Interaction: a, Rule: b, Matched: flag, Error: detail}
		case EventRender:
			ev.Render = &RenderEventData{ID: id, Language: a, Rendered: b, OK: flag, Fractions: fractions}
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func buildEventsQuery(opts QueryOpts) (string, []any) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC().UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC().UnixMilli())
	}

	var b strings.Builder
	b.WriteString(eventsQuery)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY sequence DESC")
	if opts.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}
	return b.String(), args
}
