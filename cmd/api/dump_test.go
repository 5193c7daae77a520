package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dsh2dsh/gurufocus/client"
	mocksApi "github.com/dsh2dsh/gurufocus/internal/mocks/api"
	mocksClient "github.com/dsh2dsh/gurufocus/internal/mocks/client"
)

const testToken = "foobar"

func TestDump_WithProcsLimit(t *testing.T) {
	d := Dump{}
	assert.Same(t, &d, d.WithProcsLimit(10))
	assert.Equal(t, 10, d.procs)
}

func TestDocFileName(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{symbol: "NYSE:KO", want: "NYSE_KO.json"},
		{symbol: "AAPL", want: "AAPL.json"},
		{symbol: "../etc", want: ".._etc.json"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, docFileName(tt.symbol))
		})
	}
}

func TestKindFetcher(t *testing.T) {
	httpClient := mocksClient.NewMockHttpRequestDoer(t)
	c := client.New(testToken, client.WithHttpClient(httpClient))

	for _, kind := range dumpKinds() {
		t.Run(kind, func(t *testing.T) {
			httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
				func(req *http.Request) (*http.Response, error) {
					assert.Contains(t, req.URL.Path, "NYSE:KO")
					recorder := httptest.NewRecorder()
					_, err := recorder.WriteString(`{"kind": "` + kind + `"}`)
					require.NoError(t, err)
					return recorder.Result(), nil
				}).Once()

			fetch, err := kindFetcher(c, kind)
			require.NoError(t, err)
			doc, err := fetch(context.Background(), "NYSE:KO")
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"kind": kind}, doc)
		})
	}

	_, err := kindFetcher(c, "unknown")
	require.Error(t, err)
}

func TestDump_dumpSymbol(t *testing.T) {
	testErr := errors.New("test error")

	tests := []struct {
		name        string
		fetch       Fetcher
		mockStorage func(t *testing.T, m *mocksApi.MockStorage)
		errorIs     error
	}{
		{
			name: "ok",
		},
		{
			name: "save error",
			mockStorage: func(t *testing.T, m *mocksApi.MockStorage) {
				m.EXPECT().Save("summary", "NYSE_KO.json", mock.Anything).
					Return(testErr)
			},
			errorIs: testErr,
		},
		{
			name: "fetch error",
			fetch: func(ctx context.Context, symbol string) (any, error) {
				return nil, testErr
			},
			mockStorage: func(t *testing.T, m *mocksApi.MockStorage) {},
			errorIs:     testErr,
		},
		{
			name: "skip 404",
			fetch: func(ctx context.Context, symbol string) (any, error) {
				return client.New(testToken, client.WithHttpClient(
					httpClientStatus(t, http.StatusNotFound))).
					StockSummary(ctx, symbol)
			},
			mockStorage: func(t *testing.T, m *mocksApi.MockStorage) {},
		},
		{
			name: "403",
			fetch: func(ctx context.Context, symbol string) (any, error) {
				return client.New(testToken, client.WithHttpClient(
					httpClientStatus(t, http.StatusForbidden))).
					StockSummary(ctx, symbol)
			},
			mockStorage: func(t *testing.T, m *mocksApi.MockStorage) {},
			errorIs:     client.ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetch := tt.fetch
			if fetch == nil {
				fetch = func(ctx context.Context, symbol string) (any, error) {
					return map[string]any{"symbol": symbol}, nil
				}
			}

			var savedBytes []byte
			storage := mocksApi.NewMockStorage(t)
			if tt.mockStorage != nil {
				tt.mockStorage(t, storage)
			} else {
				storage.EXPECT().Save("summary", "NYSE_KO.json", mock.Anything).
					RunAndReturn(func(path, fname string, r io.Reader) error {
						var b bytes.Buffer
						_, err := io.Copy(&b, r)
						require.NoError(t, err)
						savedBytes = b.Bytes()
						return nil
					})
			}

			d := NewDump(fetch, storage)
			err := d.dumpSymbol(context.Background(), "summary", "NYSE:KO")
			if tt.errorIs != nil {
				require.ErrorIs(t, err, tt.errorIs)
			} else {
				require.NoError(t, err)
				if tt.mockStorage == nil {
					assert.JSONEq(t, `{"symbol": "NYSE:KO"}`, string(savedBytes))
				}
			}
		})
	}
}

func httpClientStatus(t *testing.T, statusCode int,
) *mocksClient.MockHttpRequestDoer {
	httpClient := mocksClient.NewMockHttpRequestDoer(t)
	httpClient.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			recorder := httptest.NewRecorder()
			recorder.WriteHeader(statusCode)
			return recorder.Result(), nil
		})
	return httpClient
}

func TestDump_Dump(t *testing.T) {
	datadir := t.TempDir()
	symbols := []string{"NYSE:KO", "NAS:AAPL", "NYSE:DIS"}

	var fetched []string
	var mu sync.Mutex
	fetch := func(ctx context.Context, symbol string) (any, error) {
		mu.Lock()
		defer mu.Unlock()
		fetched = append(fetched, symbol)
		return []any{symbol}, nil
	}

	d := NewDump(fetch, newDumpDir(datadir)).WithProcsLimit(2)
	require.NoError(t, d.Dump(context.Background(), "dividends", symbols))
	assert.ElementsMatch(t, symbols, fetched)

	for _, symbol := range symbols {
		b, err := os.ReadFile(filepath.Join(datadir, "dividends",
			docFileName(symbol)))
		require.NoError(t, err)
		assert.JSONEq(t, `["`+symbol+`"]`, string(b))
	}
}

func TestDump_Dump_error(t *testing.T) {
	testErr := errors.New("test error")
	d := NewDump(func(ctx context.Context, symbol string) (any, error) {
		return nil, testErr
	}, mocksApi.NewMockStorage(t))
	require.ErrorIs(t, d.Dump(context.Background(), "dividends",
		[]string{"NYSE:KO"}), testErr)
}
