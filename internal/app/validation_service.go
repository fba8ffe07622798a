package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/aladdinnow/forms-service/internal/app/fanout"
	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/platform/telemetry"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// Compile-time check that ValidationService implements ports.ValidationService.
var _ ports.ValidationService = (*ValidationService)(nil)

// Result attribute values for forms.validation.total.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

// BatchLimits bounds batch validation.
type BatchLimits struct {
	// Workers is the number of fields checked concurrently.
	Workers int
	// MaxFields is the largest batch accepted.
	MaxFields int
}

// ValidationService implements ports.ValidationService on top of the pure
// rules in domain/validation. It adds batching, metrics, and logging; the
// rules themselves live in the domain.
type ValidationService struct {
	limits  BatchLimits
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewValidationService creates a ValidationService. A nil metrics or logger
// is replaced with a no-op.
func NewValidationService(limits BatchLimits, metrics *telemetry.Metrics, logger *slog.Logger) *ValidationService {
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ValidationService{limits: limits, metrics: metrics, logger: logger}
}

// ValidateField runs the rule set for one field.
func (s *ValidationService) ValidateField(ctx context.Context, in ports.FieldInput) (validation.Result, error) {
	res, err := s.check(ctx, in)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected field check",
			slog.String("operation", "ValidateField"),
			slog.String("field", in.Kind.String()),
			slog.Any("error", err),
		)
		return validation.Result{}, err
	}

	s.logger.DebugContext(ctx, "field checked",
		slog.String("field", in.Kind.String()),
		slog.Bool("valid", res.Valid),
		slog.Int("violations", len(res.Errors)),
	)
	return res, nil
}

// ValidateFields checks a batch with bounded concurrency.
func (s *ValidationService) ValidateFields(ctx context.Context, in []ports.FieldInput) ([]ports.FieldOutcome, error) {
	if len(in) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"fields": "at least one field is required",
		}}
	}
	if s.limits.MaxFields > 0 && len(in) > s.limits.MaxFields {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"fields": fmt.Sprintf("at most %d fields per request, got %d", s.limits.MaxFields, len(in)),
		}}
	}

	s.logger.InfoContext(ctx, "checking field batch", slog.Int("count", len(in)))

	results := fanout.Run(ctx, s.limits.Workers, in, s.check)

	out := make([]ports.FieldOutcome, len(in))
	failed := 0
	for i, r := range results {
		out[i] = ports.FieldOutcome{Kind: in[i].Kind, Result: r.Value, Err: r.Err}
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		s.logger.WarnContext(ctx, "field batch had rejected items",
			slog.String("operation", "ValidateFields"),
			slog.Int("count", len(in)),
			slog.Int("rejected", failed),
		)
	}
	return out, nil
}

// PasswordStrength scores a password for UI feedback.
func (s *ValidationService) PasswordStrength(_ context.Context, password string) validation.Strength {
	return validation.PasswordStrength(password)
}

// check is the per-field unit of work shared by the single and batch paths.
func (s *ValidationService) check(ctx context.Context, in ports.FieldInput) (validation.Result, error) {
	if err := ctx.Err(); err != nil {
		return validation.Result{}, err
	}

	res, err := validation.Check(in.Kind, in.Value, in.CompareTo)
	if err != nil {
		s.record(ctx, in.Kind, resultError, nil)
		return validation.Result{}, &domain.ValidationError{Fields: map[string]string{
			"field": fmt.Sprintf("unsupported field kind %q", in.Kind),
		}}
	}

	outcome := resultValid
	if !res.Valid {
		outcome = resultInvalid
	}
	s.record(ctx, in.Kind, outcome, res.Errors)
	return res, nil
}

// record updates the validation counters. Unknown kinds are folded into
// one label value to keep attribute cardinality bounded.
func (s *ValidationService) record(ctx context.Context, kind validation.Kind, outcome string, violations []string) {
	field := kind.String()
	if !kind.IsValid() {
		field = "unknown"
	}

	s.metrics.ValidationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrField.String(field),
		telemetry.AttrResult.String(outcome),
	))
	for _, msg := range violations {
		s.metrics.ValidationViolations.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrField.String(field),
			telemetry.AttrCategory.String(validation.CategoryOf(msg).String()),
		))
	}
}
