package shield

import (
	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/logger"
	"github.com/kbukum/shieldkit/rule"
	"go.opentelemetry.io/otel/trace"
)

// Options configures a Shield.
type Options struct {
	// Fallback is the rule applied when the request path has no entry in the
	// tree (default: rule.Allow).
	Fallback rule.Rule

	// DenyCode, when set, retags every denial with this error code so the
	// transport layer can map it to a protocol response. When empty, denials
	// keep the default FORBIDDEN code.
	DenyCode apperrors.ErrorCode

	// WrapHandlerErrors controls what happens when the continuation itself
	// fails. By default its error is passed through unchanged, so a caller
	// whose handler fails sees that failure rather than a misleading access
	// denial. When true, the error is normalized into a denial-shaped
	// AppError with the original failure as its cause.
	WrapHandlerErrors bool

	// Logger receives one event per decision (default: discard).
	Logger *logger.Logger

	// Tracer, when set, opens a span around every decision.
	Tracer trace.Tracer
}

// ApplyDefaults applies default values to the options.
func (o *Options) ApplyDefaults() {
	if o.Fallback == nil {
		o.Fallback = rule.Allow
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
}
