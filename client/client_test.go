package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dsh2dsh/gurufocus/internal/mocks/client"
	mocksIo "github.com/dsh2dsh/gurufocus/internal/mocks/io"
)

const (
	testToken   = "foobar"
	testBaseURL = "https://localhost/public/user"
)

func TestNew(t *testing.T) {
	c := testNew(t)
	require.IsType(t, new(Client), c)
	assert.NotNil(t, c.client)
	assert.Equal(t, testToken, c.token)
	assert.Equal(t, defaultBaseURL, c.BaseURL())
}

func testNew(t *testing.T, opts ...ClientOption) *Client {
	c := New(testToken, opts...)
	require.NotNil(t, c)
	return c
}

func TestNew_WithHttpClient(t *testing.T) {
	client := &http.Client{}
	c := testNew(t, WithHttpClient(client))
	assert.Same(t, client, c.client)
}

func TestNew_WithBaseURL(t *testing.T) {
	c := testNew(t, WithBaseURL(testBaseURL))
	assert.Equal(t, testBaseURL, c.BaseURL())
}

func TestClient_requestURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{
			name: "default",
			path: "gurulist",
			want: "https://api.gurufocus.com/public/user/foobar/gurulist",
		},
		{
			name:    "without trailing slash",
			baseURL: testBaseURL,
			path:    "stock/AAPL/quote",
			want:    testBaseURL + "/foobar/stock/AAPL/quote",
		},
		{
			name:    "with trailing slash",
			baseURL: testBaseURL + "/",
			path:    "stock/AAPL/quote",
			want:    testBaseURL + "/foobar/stock/AAPL/quote",
		},
		{
			name:    "with query",
			baseURL: testBaseURL,
			path:    "politician/trading?page=2&asset_type=Stock",
			want:    testBaseURL + "/foobar/politician/trading?page=2&asset_type=Stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []ClientOption
			if tt.baseURL != "" {
				opts = append(opts, WithBaseURL(tt.baseURL))
			}
			assert.Equal(t, tt.want, testNew(t, opts...).requestURL(tt.path))
		})
	}
}

func TestClient_Get(t *testing.T) {
	const path = "stock/NYSE:DIS/summary"
	ctx := context.Background()
	testErr := errors.New("expected error")

	tests := []struct {
		name    string
		mockDo  func(req *http.Request) (*http.Response, error)
		get     func(c *Client) (*http.Response, error)
		errorIs []error
	}{
		{
			name: "default",
		},
		{
			name: "Do error",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return nil, testErr
			},
			errorIs: []error{testErr, ErrRequest},
		},
		{
			name: "NewRequestWithContext error",
			get: func(c *Client) (*http.Response, error) {
				return c.Get(nil, path) //nolint:staticcheck // nil context expected
			},
			errorIs: []error{ErrRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := client.NewMockHttpRequestDoer(t)
			c := testNew(t, WithHttpClient(httpClient), WithBaseURL(testBaseURL))

			if tt.mockDo != nil {
				httpClient.EXPECT().Do(mock.Anything).RunAndReturn(tt.mockDo)
			} else if len(tt.errorIs) == 0 {
				recorder := httptest.NewRecorder()
				httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
					func(req *http.Request) (*http.Response, error) {
						assert.Equal(t, http.MethodGet, req.Method)
						assert.Equal(t, c.requestURL(path), req.URL.String())
						return recorder.Result(), nil
					})
			}

			callGet := func(ctx context.Context, path string) (*http.Response, error) {
				if tt.get != nil {
					return tt.get(c)
				}
				return c.Get(ctx, path)
			}
			resp, err := callGet(ctx, path)

			if len(tt.errorIs) > 0 {
				for _, target := range tt.errorIs {
					require.ErrorIs(t, err, target)
				}
				var reqErr *RequestError
				require.ErrorAs(t, err, &reqErr)
				assert.NotErrorIs(t, err, ErrUnexpectedStatus)
				assert.NotErrorIs(t, err, ErrDecode)
			} else {
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	const testJson = `{"summary": {"general": {"company": "Walt Disney Co"}}}`
	testErr := errors.New("expected error")

	tests := []struct {
		name        string
		json        string
		mockDo      func(req *http.Request) (*http.Response, error)
		errorIs     error
		assertError func(t *testing.T, err error)
	}{
		{
			name: "default",
			json: testJson,
		},
		{
			name: "Get error",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return nil, testErr
			},
			errorIs: ErrRequest,
		},
		{
			name: "unexpected StatusCode",
			mockDo: func(req *http.Request) (*http.Response, error) {
				recorder := httptest.NewRecorder()
				recorder.WriteHeader(http.StatusNotFound)
				return recorder.Result(), nil
			},
			assertError: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrUnexpectedStatus)
				var statusErr *UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusNotFound, statusErr.StatusCode())
				assert.Empty(t, statusErr.Message())
				assert.NotErrorIs(t, err, ErrDecode)
			},
		},
		{
			name: "error message",
			mockDo: func(req *http.Request) (*http.Response, error) {
				recorder := httptest.NewRecorder()
				recorder.WriteHeader(http.StatusForbidden)
				_, err := recorder.WriteString(`{"error": "Access forbidden"}`)
				require.NoError(t, err)
				return recorder.Result(), nil
			},
			assertError: func(t *testing.T, err error) {
				var statusErr *UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusForbidden, statusErr.StatusCode())
				assert.Equal(t, "Access forbidden", statusErr.Message())
				assert.ErrorContains(t, err, "Access forbidden")
			},
		},
		{
			name: "error page",
			mockDo: func(req *http.Request) (*http.Response, error) {
				recorder := httptest.NewRecorder()
				recorder.WriteHeader(http.StatusBadGateway)
				_, err := recorder.WriteString("<html>Bad Gateway</html>")
				require.NoError(t, err)
				return recorder.Result(), nil
			},
			assertError: func(t *testing.T, err error) {
				var statusErr *UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode())
				assert.Empty(t, statusErr.Message())
			},
		},
		{
			name:    "Unmarshal error",
			json:    "{ foo: bar }",
			errorIs: ErrDecode,
		},
		{
			name:    "empty body",
			json:    "",
			errorIs: ErrDecode,
		},
		{
			name:    "trailing data",
			json:    testJson + " {}",
			errorIs: ErrDecode,
		},
		{
			name:    "wrong type",
			json:    `{"summary": {"general": {"company": 123}}}`,
			errorIs: ErrDecode,
		},
		{
			name: "Read error",
			mockDo: func(req *http.Request) (*http.Response, error) {
				resp := httptest.NewRecorder().Result()
				reader := mocksIo.NewMockReader(t)
				reader.EXPECT().Read(mock.Anything).Return(0, testErr)
				resp.Body = io.NopCloser(reader)
				return resp, nil
			},
			assertError: func(t *testing.T, err error) {
				require.ErrorIs(t, err, testErr)
				require.ErrorIs(t, err, ErrRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := client.NewMockHttpRequestDoer(t)
			if tt.mockDo != nil {
				httpClient.EXPECT().Do(mock.Anything).RunAndReturn(tt.mockDo)
			} else {
				httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
					func(req *http.Request) (*http.Response, error) {
						recorder := httptest.NewRecorder()
						_, err := recorder.WriteString(tt.json)
						require.NoError(t, err)
						return recorder.Result(), nil
					})
			}

			c := testNew(t, WithHttpClient(httpClient))
			var wantSummary StockSummary
			wantSummary.Summary.General.Company = "Walt Disney Co"
			var gotSummary StockSummary
			err := c.GetJSON(context.Background(), "stock/NYSE:DIS/summary",
				&gotSummary)

			switch {
			case tt.assertError != nil:
				tt.assertError(t, err)
			case tt.errorIs != nil:
				require.ErrorIs(t, err, tt.errorIs)
			default:
				require.NoError(t, err)
				assert.Equal(t, wantSummary, gotSummary)
			}
		})
	}
}

func TestClient_GetJSON_decodeField(t *testing.T) {
	httpClient := client.NewMockHttpRequestDoer(t)
	httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			recorder := httptest.NewRecorder()
			_, err := recorder.WriteString(`[{"symbol": 1}]`)
			require.NoError(t, err)
			return recorder.Result(), nil
		})

	var stocks []Stock
	err := testNew(t, WithHttpClient(httpClient)).GetJSON(
		context.Background(), "exchange_stocks/NYSE", &stocks)
	require.ErrorIs(t, err, ErrDecode)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "symbol", decodeErr.Field())
}

func TestDecode_scalarField(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		decode    func(doc any) error
		wantField string
	}{
		{
			name: "Float bool",
			json: `[{"Symbol": "X", "Price": true}]`,
			decode: func(doc any) error {
				_, err := Decode[[]Quote](doc)
				return err
			},
			wantField: "Price",
		},
		{
			name: "Float object",
			json: `[{"Symbol": "X", "Price": {"value": 1}}]`,
			decode: func(doc any) error {
				_, err := DecodeStrict[[]Quote](doc)
				return err
			},
			wantField: "Price",
		},
		{
			name: "HexNum array",
			json: `[{"color": ["ff"], "current": 1}]`,
			decode: func(doc any) error {
				_, err := Decode[[]RatioRange](doc)
				return err
			},
			wantField: "color",
		},
		{
			name: "PricePoint",
			json: `{"prices": [["01-02-2020", true]]}`,
			decode: func(doc any) error {
				_, err := Decode[struct {
					Prices []PricePoint `json:"prices"`
				}](doc)
				return err
			},
			wantField: "prices",
		},
		{
			name: "PricePoint length",
			json: `{"prices": [["01-02-2020"]]}`,
			decode: func(doc any) error {
				_, err := Decode[struct {
					Prices []PricePoint `json:"prices"`
				}](doc)
				return err
			},
			wantField: "prices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc any
			require.NoError(t, json.Unmarshal([]byte(tt.json), &doc))
			err := tt.decode(doc)
			require.ErrorIs(t, err, ErrDecode)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantField, decodeErr.Field())
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	httpClient := client.NewMockHttpRequestDoer(t)
	httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			recorder := httptest.NewRecorder()
			_, err := recorder.WriteString(
				`{"USA": ["NYSE", "NAS"], "price": 12345678901234567890}`)
			require.NoError(t, err)
			return recorder.Result(), nil
		})

	doc, err := testNew(t, WithHttpClient(httpClient)).Fetch(
		context.Background(), "exchange_list")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"USA":   []any{"NYSE", "NAS"},
		"price": json.Number("12345678901234567890"),
	}, doc)
}

func TestClient_Fetch_error(t *testing.T) {
	httpClient := client.NewMockHttpRequestDoer(t)
	httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			recorder := httptest.NewRecorder()
			recorder.WriteHeader(http.StatusUnauthorized)
			return recorder.Result(), nil
		})

	doc, err := testNew(t, WithHttpClient(httpClient)).Fetch(
		context.Background(), "gurulist")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Nil(t, doc)
}

func TestClient_concurrent(t *testing.T) {
	const symbols = 16

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			symbol := strings.TrimSuffix(
				strings.TrimPrefix(r.URL.Path, "/"+testToken+"/stock/"), "/quote")
			fmt.Fprintf(w, `[{"Symbol": %q, "Price": "%d"}]`, symbol, len(symbol))
		}))
	defer srv.Close()

	c := testNew(t, WithBaseURL(srv.URL))
	var g errgroup.Group
	for i := 0; i < symbols; i++ {
		symbol := fmt.Sprintf("NAS:S%d", i)
		g.Go(func() error {
			doc, err := c.Quotes(context.Background(), symbol)
			if err != nil {
				return err
			}
			quotes, err := Decode[[]Quote](doc)
			if err != nil {
				return err
			}
			if len(quotes) != 1 || quotes[0].Symbol != symbol {
				return fmt.Errorf("unexpected quotes for %q: %v", symbol, quotes)
			}
			if quotes[0].Price != Float(len(symbol)) {
				return fmt.Errorf("unexpected price for %q: %v", symbol,
					quotes[0].Price)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDecode(t *testing.T) {
	doc := map[string]any{
		"portid":     "1",
		"portname":   "My",
		"num_stocks": json.Number("3"),
		"unknown":    true,
	}

	got, err := Decode[Portfolio](doc)
	require.NoError(t, err)
	assert.Equal(t, "1", got.PortId)
	assert.Equal(t, "My", got.PortName)
	assert.Equal(t, Float(3), got.NumStocks)

	_, err = DecodeStrict[Portfolio](doc)
	require.ErrorIs(t, err, ErrDecode)
	assert.ErrorContains(t, err, "unknown")

	delete(doc, "unknown")
	got2, err := DecodeStrict[Portfolio](doc)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}

func TestDecode_error(t *testing.T) {
	_, err := Decode[[]Stock](map[string]any{"symbol": "AAPL"})
	require.ErrorIs(t, err, ErrDecode)

	_, err = Decode[Stock](func() {})
	require.ErrorIs(t, err, ErrDecode)
}
