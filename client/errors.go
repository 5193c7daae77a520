package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const maxExpectedStatusCode = 299

var (
	ErrRequest          = errors.New("request failure")
	ErrUnexpectedStatus = fmt.Errorf("unexpected status code (>%d)",
		maxExpectedStatusCode)
	ErrDecode = errors.New("decode failure")
)

func newRequestError(err error) error {
	return errors.Join(&RequestError{err: err}, ErrRequest)
}

// RequestError means the request was never sent or no response arrived.
type RequestError struct {
	err error
}

func (self *RequestError) Error() string { return self.err.Error() }

func (self *RequestError) Unwrap() error { return self.err }

// --------------------------------------------------

func newUnexpectedStatusError(resp *http.Response, body []byte) error {
	return errors.Join(
		&UnexpectedStatusError{
			httpStatus:     resp.Status,
			httpStatusCode: resp.StatusCode,
			message:        errorMessage(body),
		}, ErrUnexpectedStatus,
	)
}

// errorMessage extracts the "error" key of a JSON error body, if any.
func errorMessage(body []byte) string {
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}
	return errBody.Error
}

type UnexpectedStatusError struct {
	httpStatus     string
	httpStatusCode int
	message        string
}

func (self *UnexpectedStatusError) Error() string {
	if self.message == "" {
		return fmt.Sprintf("%d (%v)", self.httpStatusCode, self.httpStatus)
	}
	return fmt.Sprintf("%d (%v): %v", self.httpStatusCode, self.httpStatus,
		self.message)
}

func (self *UnexpectedStatusError) Is(target error) bool {
	_, ok := target.(*UnexpectedStatusError)
	return ok
}

func (self *UnexpectedStatusError) StatusCode() int {
	return self.httpStatusCode
}

// Message returns server supplied error text or empty string.
func (self *UnexpectedStatusError) Message() string {
	return self.message
}

// --------------------------------------------------

func newDecodeError(err error) error {
	decodeErr := &DecodeError{err: err}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		decodeErr.field = typeErr.Field
	}
	return errors.Join(decodeErr, ErrDecode)
}

type DecodeError struct {
	err   error
	field string
}

func (self *DecodeError) Error() string {
	if self.field == "" {
		return self.err.Error()
	}
	return fmt.Sprintf("field %q: %v", self.field, self.err)
}

func (self *DecodeError) Unwrap() error { return self.err }

// Field returns path of the offending field, when json reported it.
func (self *DecodeError) Field() string {
	return self.field
}
