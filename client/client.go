package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Default base URL of GuruFocus API. User token and endpoint path are appended
// to it, see https://www.gurufocus.com/api.php
const defaultBaseURL = "https://api.gurufocus.com/public/user/"

// Doer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New returns connector for GuruFocus API, authorized by user token. Premium
// or higher subscription is required for getting a token.
//
// Client holds no mutable state and is safe for concurrent use.
func New(token string, opts ...ClientOption) *Client {
	c := &Client{token: token}
	return c.applyOptions(opts...)
}

type ClientOption func(c *Client)

func WithHttpClient(client HttpRequestDoer) ClientOption {
	return func(c *Client) { c.client = client }
}

func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

type Client struct {
	client HttpRequestDoer
	token  string

	baseURL string
}

func (self *Client) applyOptions(opts ...ClientOption) *Client {
	for _, fn := range opts {
		fn(self)
	}

	if self.client == nil {
		self.client = &http.Client{}
	}

	return self
}

func (self *Client) BaseURL() string {
	if self.baseURL == "" {
		return defaultBaseURL
	}
	return self.baseURL
}

// requestURL doesn't escape anything, because path can carry a query string.
func (self *Client) requestURL(path string) string {
	return strings.TrimRight(self.BaseURL(), "/") + "/" + self.token + "/" + path
}

// Get sends GET request for path relative to user's base URL. Path isn't
// validated.
func (self *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		self.requestURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("create new GET request for %q: %w", path,
			newRequestError(err))
	}

	resp, err := self.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, newRequestError(err))
	}

	return resp, nil
}

// GetJSON fetches path and unmarshals response body into value.
func (self *Client) GetJSON(ctx context.Context, path string, value any) error {
	resp, err := self.Get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode > maxExpectedStatusCode {
		return fmt.Errorf("GET %s: %w", path, newUnexpectedStatusError(resp, body))
	}
	if err != nil {
		return fmt.Errorf("read body from GET %s: %w", path, newRequestError(err))
	}

	if err := unmarshal(body, value, false); err != nil {
		return fmt.Errorf("unmarshal GET %s: %w", path, err)
	}

	return nil
}

// Fetch returns JSON document of path as is. Objects become map[string]any,
// arrays []any and numbers json.Number, which keeps them exactly as the
// server sent them.
func (self *Client) Fetch(ctx context.Context, path string) (any, error) {
	var doc any
	if err := self.GetJSON(ctx, path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func unmarshal(data []byte, value any, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(value); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document: %w", io.ErrUnexpectedEOF)
		}
		return newDecodeError(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return newDecodeError(errors.New("unexpected data after JSON document"))
	}
	return nil
}

// Decode converts generic JSON document, like one returned by Fetch, into
// record T. Keys unknown to T are ignored.
func Decode[T any](doc any) (T, error) {
	return decode[T](doc, false)
}

// DecodeStrict works like Decode, but any key unknown to T is an error. It's
// useful for catching changes of upstream schema.
func DecodeStrict[T any](doc any) (T, error) {
	return decode[T](doc, true)
}

func decode[T any](doc any, strict bool) (value T, err error) {
	b, err := json.Marshal(doc)
	if err != nil {
		err = fmt.Errorf("marshal %T: %w", doc, newDecodeError(err))
		return
	}

	if err = unmarshal(b, &value, strict); err != nil {
		err = fmt.Errorf("decode %T: %w", value, err)
	}
	return
}
