package mercado

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// TransportError wraps DNS, connect, TLS, timeout and cancellation failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return "transport: GET " + e.URL + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the exchange answers with a non 2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := "status: GET " + e.URL + ": " + http.StatusText(e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// DecodeError means the body did not match the expected shape: malformed
// JSON, a missing or null required field, or an invalid decimal literal.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return "decode: GET " + e.URL + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrorProcessor turns an unsuccessful response into an error.
type ErrorProcessor interface {
	Decode(r *resty.Response) error
}

type errorProcessor struct {
	messages map[int]string
}

// NewErrorProcessor returns the default processor. messages overrides the
// error text per status code; otherwise the start of the body is used.
func NewErrorProcessor(messages map[int]string) ErrorProcessor {
	return &errorProcessor{messages: messages}
}

func (p *errorProcessor) Decode(r *resty.Response) error {
	e := &StatusError{StatusCode: r.StatusCode()}
	if r.Request != nil {
		e.URL = r.Request.URL
	}
	if msg, ok := p.messages[e.StatusCode]; ok {
		e.Message = msg
		return e
	}
	body := strings.TrimSpace(string(r.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	e.Message = body
	return e
}
