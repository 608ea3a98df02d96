package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"squad_finder/pkg/contextx"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/httpx/reply"
)

type testCodedError struct {
	code    failure.ErrorCode
	message string
}

func (e testCodedError) Error() string                { return e.message + ": driver said something internal" }
func (e testCodedError) ErrorCode() failure.ErrorCode { return e.code }
func (e testCodedError) PublicMessage() string        { return e.message }

type envelope struct {
	Error struct {
		Kind      string `json:"kind"`
		Message   string `json:"message"`
		SupportID string `json:"supportId"`
	} `json:"error"`
}

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		err        error
		statusCode int
		kind       string
		message    string
	}{
		{
			name:       "Not found domain error",
			err:        fmt.Errorf("wrapped: %w", testCodedError{code: errcodes.NotFound, message: "ad not found"}),
			statusCode: http.StatusNotFound,
			kind:       "NotFound",
			message:    "ad not found",
		},
		{
			name:       "Foreign key violation",
			err:        testCodedError{code: errcodes.ForeignKeyViolation, message: "game does not exist"},
			statusCode: http.StatusUnprocessableEntity,
			kind:       "ForeignKeyViolation",
			message:    "game does not exist",
		},
		{
			name:       "Storage unavailable",
			err:        testCodedError{code: errcodes.StorageUnavailable, message: "failed to list games"},
			statusCode: http.StatusServiceUnavailable,
			kind:       "StorageUnavailable",
			message:    "failed to list games",
		},
		{
			name: "Invalid argument",
			err: failure.NewInvalidArgumentError(
				"validation error",
				failure.WithCode(errcodes.ValidationError),
				failure.WithDescription("hour must look like HH:MM"),
			),
			statusCode: http.StatusBadRequest,
			kind:       "ValidationError",
			message:    "hour must look like HH:MM",
		},
		{
			name:       "Unknown error does not leak",
			err:        errors.New("pq: connection refused to 10.0.0.1"),
			statusCode: http.StatusInternalServerError,
			kind:       "InternalServerError",
			message:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), "trace-1")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body envelope

			rq.NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.kind, body.Error.Kind)
			rq.Equal(tc.message, body.Error.Message)
			rq.Equal("trace-1", body.Error.SupportID)
		})
	}
}

func TestErrorWithoutTraceID(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	reply.Error(context.Background(), w, testCodedError{code: errcodes.NotFound, message: "nope"})

	var body envelope

	rq.NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal("unsupported", body.Error.SupportID)
}

func TestJSON(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	reply.JSON(context.Background(), w, http.StatusCreated, map[string]string{"discord": "zed#1234"})

	rq.Equal(http.StatusCreated, w.Code)
	rq.JSONEq(`{"discord":"zed#1234"}`, w.Body.String())
}

func TestErrorStatus(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	ctx := contextx.WithTraceID(context.Background(), "trace-405")

	reply.ErrorStatus(ctx, w, http.StatusMethodNotAllowed, errcodes.ValidationError, "")

	rq.Equal(http.StatusMethodNotAllowed, w.Code)

	var body envelope

	rq.NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal("ValidationError", body.Error.Kind)
	rq.Equal(http.StatusText(http.StatusMethodNotAllowed), body.Error.Message)
	rq.Equal("trace-405", body.Error.SupportID)
}
