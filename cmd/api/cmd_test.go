package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDoc(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printDoc(&buf, map[string]any{"company": "Procter & Gamble"}))
	assert.Equal(t, "{\n  \"company\": \"Procter & Gamble\"\n}\n", buf.String())

	require.Error(t, printDoc(&buf, map[string]any{"f": func() {}}))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("date", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d.Format("2006-01-02"))

	_, err = parseDate("date", "01/02/2024")
	require.Error(t, err)
}

func TestCmd(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			gotURI = req.URL.RequestURI()
			_, _ = io.WriteString(w,
				`[{"symbol": "KO", "company": "Coca-Cola Co"}]`)
		}))
	t.Cleanup(srv.Close)

	t.Setenv("GURUFOCUS_TOKEN", testToken)
	t.Setenv("GURUFOCUS_URL", srv.URL)

	prefix := "/" + testToken + "/"
	tests := []struct {
		args    []string
		wantURI string
		wantOut string
		wantErr bool
	}{
		{
			args:    []string{"financials", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/financials",
		},
		{
			args:    []string{"keyratios", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/keyratios",
		},
		{
			args:    []string{"quotes", "NYSE:KO", "NAS:AAPL"},
			wantURI: "stock/NYSE:KO,NAS:AAPL/quote",
		},
		{
			args:    []string{"price", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/price",
		},
		{
			args:    []string{"price", "--unadjusted", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/unadjusted_price",
		},
		{
			args:    []string{"summary", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/summary",
		},
		{
			args:    []string{"gurus"},
			wantURI: "gurulist",
		},
		{
			args:    []string{"gurus", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/gurus",
		},
		{
			args:    []string{"insider"},
			wantURI: "insider_updates",
		},
		{
			args:    []string{"insider", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/insider",
		},
		{
			args:    []string{"picks", "--since", "2024-01-02", "7", "9"},
			wantURI: "guru/7,9/picks/2024-01-02/1",
		},
		{
			args:    []string{"picks", "--since", "2024-01-02", "--page", "3", "7"},
			wantURI: "guru/7/picks/2024-01-02/3",
		},
		{
			args:    []string{"picks", "--since", "yesterday", "7"},
			wantErr: true,
		},
		{
			args:    []string{"portfolios", "7", "9"},
			wantURI: "guru/7,9/aggregated",
		},
		{
			args:    []string{"exchanges"},
			wantURI: "exchange_list",
		},
		{
			args:    []string{"stocks", "NYSE"},
			wantURI: "exchange_stocks/NYSE",
		},
		{
			args:    []string{"stocks", "--symbols", "NYSE"},
			wantURI: "exchange_stocks/NYSE",
			wantOut: "[\n  \"KO\"\n]\n",
		},
		{
			args:    []string{"dividends", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/dividend",
		},
		{
			args:    []string{"estimate", "NYSE:KO"},
			wantURI: "stock/NYSE:KO/analyst_estimate",
		},
		{
			args:    []string{"my-portfolios"},
			wantURI: "portfolio/my_portfolios",
		},
		{
			args:    []string{"updated", "2024-01-02"},
			wantURI: "funda_updated/2024-01-02",
		},
		{
			args:    []string{"updated", "today"},
			wantErr: true,
		},
		{
			args:    []string{"politicians"},
			wantURI: "politicians",
		},
		{
			args:    []string{"politician-trades"},
			wantURI: "politician/trading?page=1",
		},
		{
			args: []string{
				"politician-trades", "--page", "2", "--asset-type", "Stock Option",
			},
			wantURI: "politician/trading?page=2&asset_type=Stock+Option",
		},
		{
			args:    []string{"financials"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		name := tt.args[0]
		t.Run(name, func(t *testing.T) {
			gotURI = ""
			t.Cleanup(resetFlags)

			var out bytes.Buffer
			Cmd.SetOut(&out)
			Cmd.SetErr(io.Discard)
			Cmd.SetArgs(tt.args)
			err := Cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, prefix+tt.wantURI, gotURI)
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut, out.String())
			} else {
				assert.JSONEq(t,
					`[{"symbol": "KO", "company": "Coca-Cola Co"}]`, out.String())
			}
		})
	}
}

func resetFlags() {
	unadjusted = false
	picksSince = ""
	picksPage = 1
	tradesPage = 1
	assetType = ""
	withSymbols = false
}
