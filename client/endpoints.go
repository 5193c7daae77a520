package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// joinList joins symbols or guru ids the way GuruFocus wants them in a path.
// Order is kept and nothing is removed.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func stockPath(symbol, what string) string {
	return fmt.Sprintf("stock/%s/%s", symbol, what)
}

func guruPicksPath(gurus []string, since time.Time, page int) string {
	return fmt.Sprintf("guru/%s/picks/%s/%d", joinList(gurus),
		since.Format(time.DateOnly), page)
}

func politicianTradingPath(page int, assetType string) string {
	path := "politician/trading?page=" + strconv.Itoa(page)
	if assetType != "" {
		path += "&asset_type=" + url.QueryEscape(assetType)
	}
	return path
}

// Financials returns full history of financial data for symbol. Decode it
// into FinancialData.
func (self *Client) Financials(ctx context.Context, symbol string) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "financials"))
}

// KeyRatios returns current key statistic figures for symbol. Decode it into
// KeyRatios.
func (self *Client) KeyRatios(ctx context.Context, symbol string) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "keyratios"))
}

// Quotes returns current quotes of symbols, like "NAS:AAPL". Decode it into
// []Quote.
func (self *Client) Quotes(ctx context.Context, symbols ...string) (any, error) {
	return self.Fetch(ctx, stockPath(joinList(symbols), "quote"))
}

// PriceHistory returns history of adjusted prices. Decode it into
// []PricePoint.
func (self *Client) PriceHistory(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "price"))
}

// UnadjustedPriceHistory returns history of unadjusted prices.
func (self *Client) UnadjustedPriceHistory(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "unadjusted_price"))
}

// StockSummary returns current price, valuation ratios and ranks of symbol.
func (self *Client) StockSummary(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "summary"))
}

// GuruTrades returns real-time guru trades and holdings of symbol.
func (self *Client) GuruTrades(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "gurus"))
}

// InsiderTrades returns real-time insider trades of symbol.
func (self *Client) InsiderTrades(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "insider"))
}

// Gurus returns lists of all and personalized gurus.
func (self *Client) Gurus(ctx context.Context) (any, error) {
	return self.Fetch(ctx, "gurulist")
}

// GuruPicks returns stock picks of gurus since date.
func (self *Client) GuruPicks(ctx context.Context, gurus []string,
	since time.Time, page int,
) (any, error) {
	return self.Fetch(ctx, guruPicksPath(gurus, since, page))
}

// GuruPortfolios returns aggregated portfolios of gurus.
func (self *Client) GuruPortfolios(ctx context.Context, gurus ...string,
) (any, error) {
	return self.Fetch(ctx, fmt.Sprintf("guru/%s/aggregated", joinList(gurus)))
}

// Exchanges returns supported exchanges by country.
func (self *Client) Exchanges(ctx context.Context) (any, error) {
	return self.Fetch(ctx, "exchange_list")
}

// ListedStocks returns all stocks of exchange.
func (self *Client) ListedStocks(ctx context.Context, exchange string,
) (any, error) {
	return self.Fetch(ctx, "exchange_stocks/"+exchange)
}

// InsiderUpdates returns latest insider trades, ordered by transaction time.
func (self *Client) InsiderUpdates(ctx context.Context) (any, error) {
	return self.Fetch(ctx, "insider_updates")
}

// DividendHistory returns 30 years of dividend history of symbol.
func (self *Client) DividendHistory(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "dividend"))
}

// AnalystEstimate returns analyst estimate data of symbol.
func (self *Client) AnalystEstimate(ctx context.Context, symbol string,
) (any, error) {
	return self.Fetch(ctx, stockPath(symbol, "analyst_estimate"))
}

// PersonalPortfolios returns portfolios of token's owner.
func (self *Client) PersonalPortfolios(ctx context.Context) (any, error) {
	return self.Fetch(ctx, "portfolio/my_portfolios")
}

// UpdatedStocks returns symbols with fundamentals updated within a week of
// date.
func (self *Client) UpdatedStocks(ctx context.Context, date time.Time,
) (any, error) {
	return self.Fetch(ctx, "funda_updated/"+date.Format(time.DateOnly))
}

// Politicians returns the list of tracked politicians.
func (self *Client) Politicians(ctx context.Context) (any, error) {
	return self.Fetch(ctx, "politicians")
}

// PoliticianTransactions returns one page of politician trades. Empty
// assetType means all of them.
func (self *Client) PoliticianTransactions(ctx context.Context, page int,
	assetType string,
) (any, error) {
	return self.Fetch(ctx, politicianTradingPath(page, assetType))
}
