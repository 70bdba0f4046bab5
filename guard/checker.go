package guard

import (
	"context"
	"errors"
	"os"
	"runtime/debug"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/crestline/lib-portal-commons/log"
	libruntime "github.com/crestline/lib-portal-commons/runtime"
	"github.com/shopspring/decimal"
)

// Logger defines the minimal logging interface required by the Checker.
// This interface is satisfied by log.Logger.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Checker evaluates argument guards bound to a context and emits telemetry on
// failure: the failure is logged through the configured Logger and recorded
// as an event on the active span. component and operation label the call site.
type Checker struct {
	ctx       context.Context
	logger    Logger
	component string
	operation string
}

// New creates a Checker with context, logging, and labels.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger Logger, component, operation string) *Checker {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Checker{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// NotNil evaluates NotNil and reports the failure, if any.
func (checker *Checker) NotNil(ctx context.Context, v any, label string) error {
	return checker.report(ctx, NotNil(v, label))
}

// NotEmpty evaluates NotEmpty and reports the failure, if any.
func (checker *Checker) NotEmpty(ctx context.Context, s, label string) error {
	return checker.report(ctx, NotEmpty(s, label))
}

// PhoneNumber evaluates PhoneNumber and reports the failure, if any.
func (checker *Checker) PhoneNumber(ctx context.Context, s, label string) error {
	return checker.report(ctx, PhoneNumber(s, label))
}

// PositiveInt evaluates PositiveInt and reports the failure, if any.
func (checker *Checker) PositiveInt(ctx context.Context, n int64, label string) error {
	return checker.report(ctx, PositiveInt(n, label))
}

// PositiveDecimal evaluates PositiveDecimal and reports the failure, if any.
func (checker *Checker) PositiveDecimal(ctx context.Context, d decimal.Decimal, label string) error {
	return checker.report(ctx, PositiveDecimal(d, label))
}

// UUID evaluates UUID and reports the failure, if any.
func (checker *Checker) UUID(ctx context.Context, s, label string) error {
	return checker.report(ctx, UUID(s, label))
}

// That evaluates That and reports the failure, if any.
func (checker *Checker) That(ctx context.Context, ok bool, msg string) error {
	return checker.report(ctx, That(ok, msg))
}

// report logs and records a failed guard before returning it unchanged.
func (checker *Checker) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	ctx, logger, component, operation := checker.values(ctx)

	stack := []byte(nil)
	if shouldIncludeStack() {
		stack = debug.Stack()
	}

	logFailure(ctx, logger, err, component, operation, stack)
	recordFailureToSpan(ctx, err, component, operation)

	return err
}

func (checker *Checker) values(ctx context.Context) (context.Context, Logger, string, string) {
	if checker == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = checker.ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return ctx, checker.logger, checker.component, checker.operation
}

// shouldIncludeStack reports whether failure details may carry stack traces.
// Production mode suppresses them; the environment variables are a fallback
// for processes that never call runtime.SetProductionMode.
func shouldIncludeStack() bool {
	if libruntime.IsProductionMode() {
		return false
	}

	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}

func logFailure(ctx context.Context, logger Logger, err error, component, operation string, stack []byte) {
	if logger == nil {
		return
	}

	fields := make([]log.Field, 0, 5)
	fields = append(fields, log.Err(err))

	if component != "" {
		fields = append(fields, log.String("component", component))
	}

	if operation != "" {
		fields = append(fields, log.String("operation", operation))
	}

	var gerr *GuardError
	if errors.As(err, &gerr) && gerr.Check != "" {
		fields = append(fields, log.String("check", gerr.Check))
	}

	if len(stack) > 0 {
		fields = append(fields, log.String("stack", string(stack)))
	}

	logger.Log(ctx, log.LevelError, "guard failed", fields...)
}

// GuardSpanEventName is the event name used when recording guard failures on spans.
const GuardSpanEventName = "guard.failed"

func recordFailureToSpan(ctx context.Context, err error, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("guard.message", err.Error()),
	}

	var gerr *GuardError
	if errors.As(err, &gerr) {
		attrs = append(attrs, attribute.String("guard.check", gerr.Check))

		if gerr.Label != "" {
			attrs = append(attrs, attribute.String("guard.label", gerr.Label))
		}
	}

	if component != "" {
		attrs = append(attrs, attribute.String("guard.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("guard.operation", operation))
	}

	span.AddEvent(GuardSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, statusMessage(component, operation))
}

func statusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return "guard failed in " + component + "/" + operation
	case component != "":
		return "guard failed in " + component
	case operation != "":
		return "guard failed in " + operation
	default:
		return "guard failed"
	}
}
