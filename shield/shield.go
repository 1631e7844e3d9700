package shield

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/logger"
	"github.com/kbukum/shieldkit/rule"
	"github.com/kbukum/shieldkit/tree"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Next is the continuation that runs the wrapped handler when the request is
// allowed. The shield passes the context through untouched and returns the
// continuation's result unmodified.
type Next func(ctx context.Context) (any, error)

// Shield is the reusable decision function built from a rule tree. It is
// immutable after New and safe for concurrent use.
type Shield struct {
	tree tree.Tree
	opts Options
	log  *logger.Logger
}

// New builds a Shield from a rule tree, validating the tree eagerly. A
// malformed tree fails construction and is never retried at request time.
func New(t tree.Tree, opts Options) (*Shield, error) {
	opts.ApplyDefaults()
	if err := tree.Validate(t); err != nil {
		return nil, err
	}
	return &Shield{
		tree: t,
		opts: opts,
		log:  opts.Logger.WithComponent("shield"),
	}, nil
}

// Handle makes the authorization decision for one request.
//
// It resolves the rule governing path (falling back to Options.Fallback when
// the path has no entry), evaluates it, and on a pass invokes next and
// returns its result unmodified. On a denial it returns an AppError carrying
// the denial reason and the dotted path, retagged with Options.DenyCode when
// one is configured. Errors returned by next itself are handled per
// Options.WrapHandlerErrors.
func (s *Shield) Handle(ctx context.Context, path []string, input any, next Next) (any, error) {
	start := time.Now()
	decisionID := uuid.New().String()

	var span trace.Span
	if s.opts.Tracer != nil {
		ctx, span = s.opts.Tracer.Start(ctx, "shield.decide",
			trace.WithAttributes(attribute.String("shield.path", strings.Join(path, "."))))
		defer span.End()
	}

	governing, found := tree.Resolve(s.tree, path)
	if !found {
		governing = s.opts.Fallback
	}

	if err := rule.Eval(ctx, governing, rule.Request{Path: path, Input: input}); err != nil {
		denial := s.denial(err, path)
		s.logDecision(path, decisionID, "denied", denial.Message, !found, start)
		if span != nil {
			span.SetStatus(codes.Error, denial.Message)
			span.SetAttributes(attribute.String("shield.outcome", "denied"))
		}
		return nil, denial
	}

	s.logDecision(path, decisionID, "allowed", "", !found, start)
	if span != nil {
		span.SetAttributes(attribute.String("shield.outcome", "allowed"))
	}

	out, err := next(ctx)
	if err != nil && s.opts.WrapHandlerErrors {
		return nil, s.denial(err, path).WithCause(err)
	}
	return out, err
}

// denial converts a rule's non-nil result into the outward error shape.
func (s *Shield) denial(err error, path []string) *apperrors.AppError {
	message := err.Error()
	if message == "" {
		message = rule.DefaultDenyMessage
	}
	denial := apperrors.Denied(message, path)
	if s.opts.DenyCode != "" {
		denial = denial.WithCode(s.opts.DenyCode)
	}
	return denial
}

func (s *Shield) logDecision(path []string, decisionID, outcome, reason string, fallback bool, start time.Time) {
	fields := map[string]interface{}{
		logger.FieldPath:       strings.Join(path, "."),
		logger.FieldOutcome:    outcome,
		logger.FieldDecisionID: decisionID,
		logger.FieldDuration:   time.Since(start).Milliseconds(),
	}
	if fallback {
		fields[logger.FieldFallback] = true
	}
	if reason != "" {
		fields[logger.FieldReason] = reason
		s.log.Info("access denied", fields)
		return
	}
	s.log.Debug("access allowed", fields)
}
