package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"github.com/dsh2dsh/gurufocus/client"
	"github.com/dsh2dsh/gurufocus/internal/repo"
)

func NewUpload(api Client, repo Repo) *Upload {
	return &Upload{
		api:  api,
		repo: repo,

		knownStocks: newStocks(),
		logger:      slog.Default(),

		procs: 1,
	}
}

type Client interface {
	DividendHistory(ctx context.Context, symbol string) (any, error)
	InsiderTrades(ctx context.Context, symbol string) (any, error)
}

type Repo interface {
	AddStock(ctx context.Context, symbol string) (uint32, error)
	Stocks(ctx context.Context) (map[string]uint32, error)
	ReplaceDividends(ctx context.Context, stockId uint32, length int,
		next func(i int) (repo.Dividend, error)) error
	AddInsiderTrade(ctx context.Context, trade repo.InsiderTrade) (bool, error)
}

type Upload struct {
	api  Client
	repo Repo

	knownStocks stocks
	logger      *slog.Logger

	procs int
}

func (self *Upload) WithLogger(l *slog.Logger) *Upload {
	self.logger = l
	return self
}

func (self *Upload) WithProcsLimit(n int) *Upload {
	self.procs = n
	return self
}

func (self *Upload) log(ctx context.Context) *slog.Logger {
	return ContextLogger(ctx, self.logger)
}

// Dividends replaces stored dividend history of every symbol by fresh one.
func (self *Upload) Dividends(ctx context.Context, symbols []string) error {
	err := self.forEachSymbol(ctx, symbols, self.uploadDividends)
	if err != nil {
		return fmt.Errorf("upload dividends: %w", err)
	}
	return nil
}

// InsiderTrades adds new insider trades of every symbol. Trades stored before
// are skipped.
func (self *Upload) InsiderTrades(ctx context.Context, symbols []string) error {
	err := self.forEachSymbol(ctx, symbols, self.uploadInsiderTrades)
	if err != nil {
		return fmt.Errorf("upload insider trades: %w", err)
	}
	return nil
}

func (self *Upload) forEachSymbol(ctx context.Context, symbols []string,
	fn func(ctx context.Context, symbol string) error,
) error {
	if err := self.preloadStocks(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(self.procs)

	for i, symbol := range symbols {
		if ctx.Err() != nil {
			break
		}
		symbol := symbol
		l := self.log(ctx).With(slog.String("symbol", symbol))
		l.Info("processing",
			slog.String("progress", fmt.Sprintf("%v/%v", i+1, len(symbols))))
		g.Go(func() error {
			return self.skipNotFound(ContextWithLogger(ctx, l), symbol, fn)
		})
	}

	return g.Wait() //nolint:wrapcheck // wrapped by caller
}

func (self *Upload) preloadStocks(ctx context.Context) error {
	ids, err := self.repo.Stocks(ctx)
	if err != nil {
		return fmt.Errorf("preload stocks: %w", err)
	}
	self.knownStocks.Preload(ids)
	self.log(ctx).Info("known stocks", slog.Int("length", self.knownStocks.Len()))
	return nil
}

func (self *Upload) skipNotFound(ctx context.Context, symbol string,
	fn func(ctx context.Context, symbol string) error,
) error {
	err := fn(ctx, symbol)
	if err != nil {
		var status *client.UnexpectedStatusError
		if errors.As(err, &status) && status.StatusCode() == http.StatusNotFound {
			self.log(ctx).Warn("skip symbol", slog.String("error", err.Error()))
			return nil
		}
	}
	return err
}

func (self *Upload) stockId(ctx context.Context, symbol string) (uint32, error) {
	id, err := self.knownStocks.Id(ctx, symbol, func() (uint32, error) {
		id, err := self.repo.AddStock(ctx, symbol)
		if err == nil {
			self.log(ctx).Info("add stock", slog.Uint64("id", uint64(id)))
		}
		return id, err //nolint:wrapcheck // will wrap below
	})
	if err != nil {
		return 0, fmt.Errorf("failed add stock %q: %w", symbol, err)
	}
	return id, nil
}

// --------------------------------------------------

func (self *Upload) uploadDividends(ctx context.Context, symbol string) error {
	doc, err := self.api.DividendHistory(ctx, symbol)
	if err != nil {
		return fmt.Errorf("dividends of %q: %w", symbol, err)
	}

	divs, err := client.Decode[[]client.Dividend](doc)
	if err != nil {
		return fmt.Errorf("dividends of %q: %w", symbol, err)
	}

	stockId, err := self.stockId(ctx, symbol)
	if err != nil {
		return err
	}

	err = self.repo.ReplaceDividends(ctx, stockId, len(divs),
		func(i int) (repo.Dividend, error) {
			return self.repoDividend(stockId, &divs[i])
		})
	if err != nil {
		return fmt.Errorf("failed replace %v dividends of %q: %w", len(divs),
			symbol, err)
	}

	self.log(ctx).Info("dividends replaced", slog.Int("length", len(divs)))
	return nil
}

func (self *Upload) repoDividend(stockId uint32, div *client.Dividend,
) (repo.Dividend, error) {
	d := repo.Dividend{
		StockId:  stockId,
		Amount:   div.Amount.Value(),
		Currency: div.Currency,
		DivType:  div.DivType,
	}

	if div.Amount.IsNaN() {
		return d, fmt.Errorf("dividend of %v: amount is not a number",
			div.ExDate)
	}

	exDate, err := time.Parse(time.DateOnly, div.ExDate)
	if err != nil {
		return d, fmt.Errorf("parse ex_date: %w", err)
	}
	d.ExDate = exDate

	if div.RecordDate != "" {
		t, err := time.Parse(time.DateOnly, div.RecordDate)
		if err != nil {
			return d, fmt.Errorf("parse record_date: %w", err)
		}
		d.WithRecordDate(t)
	}

	if div.PayDate != "" {
		t, err := time.Parse(time.DateOnly, div.PayDate)
		if err != nil {
			return d, fmt.Errorf("parse pay_date: %w", err)
		}
		d.WithPayDate(t)
	}

	return d, nil
}

// --------------------------------------------------

func (self *Upload) uploadInsiderTrades(ctx context.Context, symbol string,
) error {
	doc, err := self.api.InsiderTrades(ctx, symbol)
	if err != nil {
		return fmt.Errorf("insider trades of %q: %w", symbol, err)
	}

	groups, err := client.Decode[map[string][]client.InsiderTrade](doc)
	if err != nil {
		return fmt.Errorf("insider trades of %q: %w", symbol, err)
	}

	stockId, err := self.stockId(ctx, symbol)
	if err != nil {
		return err
	}

	var total, added int
	for key, trades := range groups {
		if !insiderGroupOf(symbol, key) {
			self.log(ctx).Warn("skip insider trades of another symbol",
				slog.String("key", key), slog.Int("length", len(trades)))
			continue
		}
		for i := range trades {
			trade, err := self.repoInsiderTrade(stockId, symbol, &trades[i])
			if err != nil {
				return fmt.Errorf("insider trade of %q: %w", symbol, err)
			}
			ok, err := self.repo.AddInsiderTrade(ctx, trade)
			if err != nil {
				return err //nolint:wrapcheck // has stock_id inside
			} else if ok {
				added++
			}
			total++
		}
	}

	self.log(ctx).Info("insider trades added", slog.Int("length", added),
		slog.Int("total", total))
	return nil
}

func (self *Upload) repoInsiderTrade(stockId uint32, symbol string,
	trade *client.InsiderTrade,
) (repo.InsiderTrade, error) {
	t := repo.InsiderTrade{
		StockId:    stockId,
		Hash:       insiderTradeHash(symbol, trade),
		Insider:    trade.Insider,
		Position:   trade.Position,
		TradeType:  trade.TradeType,
		Price:      float8(trade.Price),
		TransShare: float8(trade.TransShare),
		FinalShare: float8(trade.FinalShare),
		Change:     float8(trade.Change),
		Cost:       float8(trade.Cost),
	}

	date, err := time.Parse(time.DateOnly, trade.Date)
	if err != nil {
		return t, fmt.Errorf("parse date: %w", err)
	}
	t.Date = date

	return t, nil
}

// insiderGroupOf returns true if trades grouped by key belong to symbol.
// Upstream keys them by ticker without exchange, like "NVDA" for "NAS:NVDA".
func insiderGroupOf(symbol, key string) bool {
	if key == symbol {
		return true
	}
	_, ticker, found := strings.Cut(symbol, ":")
	return found && key == ticker
}

func insiderTradeHash(symbol string, trade *client.InsiderTrade) uint64 {
	return xxhash.Sum64String(strings.Join([]string{
		symbol, trade.Insider, trade.Position, trade.Date, trade.TradeType,
		trade.Price.String(), trade.TransShare.String(),
		trade.FinalShare.String(), trade.Change.String(), trade.Cost.String(),
	}, "|"))
}

func float8(f client.Float) pgtype.Float8 {
	if f.IsNaN() {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: f.Value(), Valid: true}
}
