// Package evaluation is the entry point the CLI and HTTP API share. It runs
// rule classification and spoken-math rendering and takes care of logging,
// metrics and the event log around them.
package evaluation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/codec"
	"github.com/abhisek/mathiz-eval/internal/interaction"
	"github.com/abhisek/mathiz-eval/internal/metrics"
	"github.com/abhisek/mathiz-eval/internal/speech"
	"github.com/abhisek/mathiz-eval/internal/store"
)

// Service evaluates answers and renders expressions. It is safe for
// concurrent use.
type Service struct {
	cfg      Config
	registry *classifier.Registry
	events   store.EventRepo
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the built-in rule registry.
func WithRegistry(reg *classifier.Registry) Option {
	return func(s *Service) { s.registry = reg }
}

// WithEventRepo records evaluations to repo.
func WithEventRepo(repo store.EventRepo) Option {
	return func(s *Service) { s.events = repo }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds a Service. Without options it uses the built-in rules,
// discards logs and records nothing.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		registry: interaction.Registry(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyResult is the verdict for one classification request.
type ClassifyResult struct {
	ID      string
	Matched bool
}

// Classify evaluates the requested rule. Malformed requests and unknown
// rules are returned as errors, never as a false verdict.
func (s *Service) Classify(ctx context.Context, req *codec.ClassifyRequest) (*ClassifyResult, error) {
	id := uuid.NewString()
	start := time.Now()

	matched, err := s.registry.Classify(req.Interaction, req.Rule, req.Answer, req.Inputs)
	s.metrics.ObserveClassifyLatency(time.Since(start))

	event := store.ClassificationEventData{
		ID:          id,
		Interaction: req.Interaction,
		Rule:        req.Rule,
		Matched:     matched,
	}

	switch {
	case err == nil:
		outcome := metrics.OutcomeNoMatch
		if matched {
			outcome = metrics.OutcomeMatch
		}
		s.metrics.IncrementClassification(req.Interaction, req.Rule, outcome)
		s.logger.DebugContext(ctx, "answer classified",
			"id", id,
			"interaction", req.Interaction,
			"rule", req.Rule,
			"matched", matched,
		)
	case errors.Is(err, classifier.ErrNotRegistered):
		event.Matched = false
		event.Error = err.Error()
		s.metrics.IncrementClassification(metrics.LabelUnknown, metrics.LabelUnknown, metrics.OutcomeError)
		s.logger.ErrorContext(ctx, "rule lookup failed",
			"id", id,
			"interaction", req.Interaction,
			"rule", req.Rule,
			"error", err,
		)
	default:
		event.Matched = false
		event.Error = err.Error()
		s.metrics.IncrementClassification(req.Interaction, req.Rule, metrics.OutcomeError)
		s.logger.WarnContext(ctx, "malformed classification request",
			"id", id,
			"interaction", req.Interaction,
			"rule", req.Rule,
			"error", err,
		)
	}

	s.recordClassification(ctx, event)

	if err != nil {
		return nil, err
	}
	return &ClassifyResult{ID: id, Matched: matched}, nil
}

// RenderResult is the spoken form of an expression. OK is false when the
// language is unsupported or the tree cannot be read; the caller should
// then skip speaking the content.
type RenderResult struct {
	ID       string
	Language language.Tag
	Text     string
	OK       bool
}

// Render produces the spoken form of the requested expression or equation.
func (s *Service) Render(ctx context.Context, req *codec.RenderRequest) *RenderResult {
	id := uuid.NewString()
	lang := req.Language
	if lang == language.Und {
		lang = s.cfg.Language
	}

	var (
		text string
		ok   bool
	)
	if req.Equation != nil {
		text, ok = speech.RenderEquation(*req.Equation, lang, req.Fractions)
	} else {
		text, ok = speech.RenderExpression(req.Expression, lang, req.Fractions)
	}

	outcome := metrics.OutcomeRendered
	if !ok {
		outcome = metrics.OutcomeUnavailable
		s.logger.InfoContext(ctx, "no spoken rendering available",
			"id", id,
			"language", lang.String(),
			"supported_language", speech.Supported(lang),
		)
	}
	s.metrics.IncrementRender(languageLabel(lang), outcome)

	s.recordRender(ctx, store.RenderEventData{
		ID:        id,
		Language:  lang.String(),
		Fractions: req.Fractions,
		Rendered:  text,
		OK:        ok,
	})

	return &RenderResult{ID: id, Language: lang, Text: text, OK: ok}
}

// Rules lists every registered rule name by interaction.
func (s *Service) Rules() map[string][]string {
	out := make(map[string][]string)
	for _, id := range s.registry.Interactions() {
		// Interactions only returns registered IDs, so Rules cannot fail.
		rules, _ := s.registry.Rules(id)
		out[id] = rules
	}
	return out
}

// Log the event but don't fail the evaluation if recording fails.
func (s *Service) recordClassification(ctx context.Context, data store.ClassificationEventData) {
	if !s.cfg.RecordEvents || s.events == nil {
		return
	}
	if err := s.events.AppendClassification(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "failed to record classification event", "id", data.ID, "error", err)
	}
}

func (s *Service) recordRender(ctx context.Context, data store.RenderEventData) {
	if !s.cfg.RecordEvents || s.events == nil {
		return
	}
	if err := s.events.AppendRender(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "failed to record render event", "id", data.ID, "error", err)
	}
}

// languageLabel reduces a tag to its explicit base language for metrics.
// Tags without one (und, und-US) collapse to a single value.
func languageLabel(lang language.Tag) string {
	base, conf := lang.Base()
	if conf != language.Exact {
		return metrics.LabelOther
	}
	return base.String()
}
