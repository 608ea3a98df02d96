package contextx

import (
	"context"
	"errors"
	"fmt"
)

const maxTraceIDLen = 64

var ErrInvalidTraceID = errors.New("invalid trace id")

// TraceID identifies one request across logs and is returned to clients as
// the supportId of an error.
type TraceID string

type contextKeyTraceID struct{}

// ParseTraceID accepts a client supplied id of up to 64 letters, digits,
// dashes or underscores. Anything else could break log lines or the
// response header it is echoed into.
func ParseTraceID(s string) (TraceID, error) {
	if s == "" || len(s) > maxTraceIDLen {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidTraceID)
	}

	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return "", fmt.Errorf("%q: %w", s, ErrInvalidTraceID)
		}
	}

	return TraceID(s), nil
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
