package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Outcome classifies how a remote call ended.
type Outcome int

const (
	// OutcomeSuccess: 2xx with a body that decoded into the payload type.
	OutcomeSuccess Outcome = iota + 1
	// OutcomeError: the backend answered with a non-2xx status.
	OutcomeError
	// OutcomeException: the call never produced a usable answer
	// (transport failure, unreadable body).
	OutcomeException
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	case OutcomeException:
		return "exception"
	default:
		return "unknown"
	}
}

// Result is the normalized outcome of a remote call. Exactly one of the
// groups is meaningful: Data for OutcomeSuccess, Code and Message for
// OutcomeError, Err for OutcomeException.
type Result[T any] struct {
	Outcome Outcome
	Data    T
	Code    int
	Message string
	Err     error
}

func Success[T any](data T) Result[T] {
	return Result[T]{Outcome: OutcomeSuccess, Data: data}
}

func Failure[T any](code int, message string) Result[T] {
	return Result[T]{Outcome: OutcomeError, Code: code, Message: message}
}

func Exception[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeException, Err: err}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// SafeCall runs call and folds whatever happens into a Result. It never
// returns a raw transport error to the caller and always closes the body.
func SafeCall[T any](call func() (*http.Response, error)) Result[T] {
	resp, err := call()
	if err != nil {
		return Exception[T](err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failure[T](resp.StatusCode, errorMessage(resp.Body))
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Exception[T](fmt.Errorf("decode response: %w", err))
	}
	return Success(data)
}

// errorMessage extracts a human message from an error body. JSON bodies with
// "message" or "error" win; otherwise the trimmed text is used.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
