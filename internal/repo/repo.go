package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var dividendCols = [...]string{
	"stock_id", "ex_date", "record_date", "pay_date", "amount", "currency",
	"div_type",
}

func New(db Postgreser) *Repo {
	return &Repo{db: db}
}

type Repo struct {
	db Postgreser
}

type Postgreser interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string,
		rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AddStock returns id of symbol, creating it if needed.
func (self *Repo) AddStock(ctx context.Context, symbol string) (uint32, error) {
	makeErr := func(err error) error {
		return fmt.Errorf("add stock %q: %w", symbol, err)
	}

	rows, err := self.db.Query(ctx, `
INSERT INTO stocks (symbol)
  VALUES           ($1)
  ON CONFLICT DO NOTHING
  RETURNING id`, symbol)
	if err != nil {
		return 0, makeErr(err)
	}

	if id, err := pgx.CollectOneRow(rows, pgx.RowTo[uint32]); err == nil {
		return id, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return 0, makeErr(err)
	}

	rows, err = self.db.Query(ctx,
		`SELECT id FROM stocks WHERE symbol = $1`, symbol)
	if err != nil {
		return 0, makeErr(err)
	}

	id, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[uint32])
	if err != nil {
		return 0, makeErr(err)
	}

	return id, nil
}

// Stocks returns ids of all known stocks by symbol.
func (self *Repo) Stocks(ctx context.Context) (map[string]uint32, error) {
	rows, err := self.db.Query(ctx, `SELECT id, symbol FROM stocks`)
	if err != nil {
		return nil, fmt.Errorf("repo.Stocks: %w", err)
	}

	type stockItem struct {
		Id     uint32 `db:"id"`
		Symbol string `db:"symbol"`
	}

	stockItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[stockItem])
	if err != nil {
		return nil, fmt.Errorf("repo.Stocks: %w", err)
	}

	stocks := make(map[string]uint32, len(stockItems))
	for _, item := range stockItems {
		stocks[item.Symbol] = item.Id
	}
	return stocks, nil
}

// ReplaceDividends replaces dividend history of stockId by length new items
// in one transaction.
func (self *Repo) ReplaceDividends(ctx context.Context, stockId uint32,
	length int, next func(i int) (Dividend, error),
) error {
	err := pgx.BeginFunc(ctx, self.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM dividends WHERE stock_id = $1`, stockId)
		if err != nil {
			return err //nolint:wrapcheck // wrap it below
		}
		return self.copyDividends(ctx, tx, length, next)
	})
	if err != nil {
		return fmt.Errorf("repo.ReplaceDividends: stock_id=%v: %w", stockId, err)
	}
	return nil
}

func (self *Repo) copyDividends(ctx context.Context, conn Postgreser,
	length int, next func(i int) (Dividend, error),
) error {
	n, err := conn.CopyFrom(ctx, pgx.Identifier{"dividends"}, dividendCols[:],
		pgx.CopyFromSlice(length, func(i int) ([]any, error) {
			div, err := next(i)
			if err != nil {
				return nil, err
			}
			values := []any{
				div.StockId, div.ExDate, div.RecordDate, div.PayDate, div.Amount,
				div.Currency, div.DivType,
			}
			return values, nil
		}))
	if err != nil {
		return fmt.Errorf("failed copy %v dividends: %w", length, err)
	} else if n != int64(length) {
		return fmt.Errorf("copied %v dividends instead of %v", n, length)
	}
	return nil
}

func (self *Repo) Dividends(ctx context.Context, stockId uint32,
) ([]Dividend, error) {
	rows, err := self.db.Query(ctx, `
SELECT stock_id, ex_date, record_date, pay_date, amount, currency, div_type
  FROM dividends WHERE stock_id = $1 ORDER BY ex_date`, stockId)
	if err != nil {
		return nil, fmt.Errorf("repo.Dividends: %w", err)
	}

	divs, err := pgx.CollectRows(rows, pgx.RowToStructByName[Dividend])
	if err != nil {
		return nil, fmt.Errorf("repo.Dividends: %w", err)
	}
	return divs, nil
}

// AddInsiderTrade returns true if trade is new. Known trades are matched by
// their hash.
func (self *Repo) AddInsiderTrade(ctx context.Context, trade InsiderTrade,
) (bool, error) {
	cmdTag, err := self.db.Exec(ctx, `
INSERT INTO insider_trades (stock_id,    xxhash,      insider,     position,
                            trade_date,  trade_type,  price,       trans_share,
                            final_share, change,      cost)
  VALUES                   (@stock_id,   @xxhash,     @insider,    @position,
                            @trade_date, @trade_type, @price,      @trans_share,
                            @final_share, @change,    @cost)
  ON CONFLICT DO NOTHING`, trade.NamedArgs())
	if err != nil {
		return false, fmt.Errorf("add insider trade of stock_id=%v: %w",
			trade.StockId, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (self *Repo) InsiderTrades(ctx context.Context, stockId uint32,
) ([]InsiderTrade, error) {
	rows, err := self.db.Query(ctx, `
SELECT stock_id, xxhash, insider, position, trade_date, trade_type, price,
       trans_share, final_share, change, cost
  FROM insider_trades WHERE stock_id = $1 ORDER BY trade_date`, stockId)
	if err != nil {
		return nil, fmt.Errorf("repo.InsiderTrades: %w", err)
	}

	trades, err := pgx.CollectRows(rows, pgx.RowToStructByName[InsiderTrade])
	if err != nil {
		return nil, fmt.Errorf("repo.InsiderTrades: %w", err)
	}
	return trades, nil
}
