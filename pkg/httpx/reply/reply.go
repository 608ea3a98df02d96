package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"squad_finder/pkg/contextx"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorBody) WithDefaultKind(code failure.ErrorCode) {
	if e.Kind == "" {
		e.Kind = code.String()
	}
}

// codedError is satisfied by domain errors that carry their own code and a
// message safe to show to clients.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	PublicMessage() string
}

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.ForeignKeyViolation: http.StatusUnprocessableEntity,
	errcodes.StorageUnavailable:  http.StatusServiceUnavailable,
	errcodes.InternalServerError: http.StatusInternalServerError,
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	var coded codedError
	if errors.As(err, &coded) {
		status, ok := statusByCode[coded.ErrorCode()]
		if !ok {
			status = http.StatusInternalServerError
		}

		logError(ctx, status, err, slog.String(logx.FieldErrorCode, coded.ErrorCode().String()))

		ErrorStatus(ctx, w, status, coded.ErrorCode(), coded.PublicMessage())

		return
	}

	body := errorBody{
		Kind:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var status int

	switch {
	case failure.IsInvalidArgumentError(err):
		body.WithDefaultKind(errcodes.ValidationError)
		status = http.StatusBadRequest
	case failure.IsNotFoundError(err):
		body.WithDefaultKind(errcodes.NotFound)
		status = http.StatusNotFound
	case failure.IsConflictError(err):
		status = http.StatusConflict
	case failure.IsUnprocessableEntityError(err):
		status = http.StatusUnprocessableEntity
	default:
		body.WithDefaultKind(errcodes.InternalServerError)
		body.Message = http.StatusText(http.StatusInternalServerError)
		status = http.StatusInternalServerError
	}

	if body.Message == "" {
		body.Message = http.StatusText(status)
	}

	logError(ctx, status, err)

	JSON(ctx, w, status, errorResponse{Error: body})
}

// ErrorStatus writes the error envelope with an explicit status, for
// responses that are not produced by a handler error (unmatched routes).
func ErrorStatus(ctx context.Context, w http.ResponseWriter, status int, code failure.ErrorCode, message string) {
	if message == "" {
		message = http.StatusText(status)
	}

	JSON(ctx, w, status, errorResponse{Error: errorBody{
		Kind:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
	}})
}

func logError(ctx context.Context, status int, err error, attrs ...any) {
	attrs = append(attrs, slog.Int(logx.FieldResponseStatus, status), logx.Error(err))

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("request failed", attrs...)

		return
	}

	logger(ctx).Warn("request rejected", attrs...)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
