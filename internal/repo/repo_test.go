package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cespare/xxhash/v2"
	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	mocks "github.com/dsh2dsh/gurufocus/internal/mocks/repo"
)

const testSymbol = "NYSE:KO"

func TestRepoSuite(t *testing.T) {
	cfg := struct {
		ConnURL string `env:"GURUFOCUS_DB_URL,notEmpty"`
	}{}
	require.NoError(t, dotenv.Load(func() error { return env.Parse(&cfg) }))

	conn, err := pgx.Connect(context.Background(), cfg.ConnURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, conn.Close(context.Background()))
	})

	suite.Run(t, &RepoTestSuite{db: conn})
}

type RepoTestSuite struct {
	suite.Suite
	db   Postgreser
	repo *Repo
}

func (self *RepoTestSuite) SetupSuite() {
	self.createTestSchema()
}

func (self *RepoTestSuite) createTestSchema() {
	ctx := context.Background()
	_, err := self.db.Exec(ctx, `
CREATE TEMPORARY TABLE stocks (
  id     SERIAL PRIMARY KEY,
  symbol TEXT   NOT NULL UNIQUE
)`)
	self.Require().NoError(err)

	_, err = self.db.Exec(ctx, `
CREATE TEMPORARY TABLE dividends (
  stock_id    INTEGER NOT NULL REFERENCES stocks(id),
  ex_date     DATE    NOT NULL,
  record_date DATE,
  pay_date    DATE,
  amount      NUMERIC NOT NULL,
  currency    TEXT    NOT NULL,
  div_type    TEXT    NOT NULL
);

CREATE INDEX ON dividends (stock_id, ex_date);`)
	self.Require().NoError(err)

	_, err = self.db.Exec(ctx, `
CREATE TEMPORARY TABLE insider_trades (
  stock_id    INTEGER NOT NULL REFERENCES stocks(id),
  xxhash      NUMERIC NOT NULL UNIQUE,
  insider     TEXT    NOT NULL,
  position    TEXT    NOT NULL,
  trade_date  DATE    NOT NULL,
  trade_type  TEXT    NOT NULL,
  price       NUMERIC,
  trans_share NUMERIC,
  final_share NUMERIC,
  change      NUMERIC,
  cost        NUMERIC
);

CREATE INDEX ON insider_trades (stock_id, trade_date);`)
	self.Require().NoError(err)
}

func (self *RepoTestSuite) SetupTest() {
	self.repo = New(self.db)
}

func (self *RepoTestSuite) TearDownTest() {
	allTables := []string{"stocks", "dividends", "insider_trades"}
	for _, tname := range allTables {
		sql := fmt.Sprintf("TRUNCATE %s CASCADE", tname)
		_, err := self.db.Exec(context.Background(), sql)
		self.Require().NoError(err)
	}
}

// --------------------------------------------------

func (self *RepoTestSuite) TestRepo_AddStock() {
	ctx := context.Background()
	stockId := self.addTestStock(ctx)

	id, err := self.repo.AddStock(ctx, testSymbol)
	self.Require().NoError(err)
	self.Equal(stockId, id)

	id2, err := self.repo.AddStock(ctx, "NAS:AAPL")
	self.Require().NoError(err)
	self.NotZero(id2)
	self.NotEqual(stockId, id2)

	m := mocks.NewMockPostgreser(self.T())
	m.EXPECT().Query(ctx, mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				rows, err := self.db.Query(ctx, "SELECT 'not SERIAL'")
				return rows, err
			}).Once()
	self.repo.db = m
	self.T().Cleanup(func() { self.repo.db = self.db })

	id, err = self.repo.AddStock(ctx, testSymbol)
	self.Require().Error(err)
	self.Zero(id)

	m.EXPECT().Query(ctx, mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return self.db.Query(ctx, sql, args...)
			}).Once()

	wantErr := errors.New("test error")
	m.EXPECT().Query(ctx, mock.Anything, mock.Anything).
		Return(nil, wantErr).Once()

	id, err = self.repo.AddStock(ctx, testSymbol)
	self.Require().ErrorIs(err, wantErr)
	self.Zero(id)

	m.EXPECT().Query(ctx, mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return self.db.Query(ctx, sql, args...)
			}).Once()

	m.EXPECT().Query(ctx, mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				rows, err := self.db.Query(ctx, "SELECT 'not SERIAL'")
				return rows, err
			}).Once()

	id, err = self.repo.AddStock(ctx, testSymbol)
	self.Require().Error(err)
	self.Zero(id)
}

func (self *RepoTestSuite) addTestStock(ctx context.Context) uint32 {
	id, err := self.repo.AddStock(ctx, testSymbol)
	self.Require().NoError(err)
	self.NotZero(id)
	return id
}

func TestRepo_AddStock_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Query(ctx, mock.Anything, mock.Anything).Return(nil, wantErr)

	id, err := repo.AddStock(ctx, testSymbol)
	require.ErrorIs(t, err, wantErr)
	assert.Zero(t, id)
}

func (self *RepoTestSuite) TestRepo_Stocks() {
	ctx := context.Background()
	stocks, err := self.repo.Stocks(ctx)
	self.Require().NoError(err)
	self.Empty(stocks)

	stockId := self.addTestStock(ctx)
	stocks, err = self.repo.Stocks(ctx)
	self.Require().NoError(err)
	self.Equal(map[string]uint32{testSymbol: stockId}, stocks)

	m := mocks.NewMockPostgreser(self.T())
	m.EXPECT().Query(ctx, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				rows, err := self.db.Query(ctx, "SELECT 'not SERIAL' AS id")
				return rows, err
			}).Once()
	self.repo.db = m
	self.T().Cleanup(func() { self.repo.db = self.db })

	stocks, err = self.repo.Stocks(ctx)
	self.Require().Error(err)
	self.Nil(stocks)
}

func TestRepo_Stocks_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Query(ctx, mock.Anything).Return(nil, wantErr)

	stocks, err := repo.Stocks(ctx)
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, stocks)
}

// --------------------------------------------------

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testDividends(stockId uint32) []Dividend {
	div1 := Dividend{
		StockId:  stockId,
		ExDate:   testDate(2023, time.November, 30),
		Amount:   0.46,
		Currency: "USD",
		DivType:  "Cash Div.",
	}
	div1.WithRecordDate(testDate(2023, time.December, 1)).
		WithPayDate(testDate(2023, time.December, 15))

	div2 := Dividend{
		StockId:  stockId,
		ExDate:   testDate(2024, time.March, 14),
		Amount:   0.485,
		Currency: "USD",
		DivType:  "Cash Div.",
	}
	return []Dividend{div1, div2}
}

func (self *RepoTestSuite) TestRepo_ReplaceDividends() {
	ctx := context.Background()
	stockId := self.addTestStock(ctx)

	divs := testDividends(stockId)
	self.Require().NoError(self.repo.ReplaceDividends(ctx, stockId, len(divs),
		func(i int) (Dividend, error) { return divs[i], nil }))

	gotDivs, err := self.repo.Dividends(ctx, stockId)
	self.Require().NoError(err)
	self.Equal(divs, gotDivs)
	self.False(gotDivs[1].RecordDate.Valid)

	divs = divs[1:]
	self.Require().NoError(self.repo.ReplaceDividends(ctx, stockId, len(divs),
		func(i int) (Dividend, error) { return divs[i], nil }))
	gotDivs, err = self.repo.Dividends(ctx, stockId)
	self.Require().NoError(err)
	self.Equal(divs, gotDivs)

	wantErr := errors.New("test error")
	err = self.repo.ReplaceDividends(ctx, stockId, 1,
		func(i int) (Dividend, error) { return Dividend{}, wantErr })
	self.Require().Error(err)

	gotDivs, err = self.repo.Dividends(ctx, stockId)
	self.Require().NoError(err)
	self.Equal(divs, gotDivs, "rolled back")
}

func TestRepo_copyDividends_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().CopyFrom(ctx, pgx.Identifier{"dividends"}, mock.Anything,
		mock.Anything).Return(0, wantErr)

	divs := testDividends(1)
	err := repo.copyDividends(ctx, db, len(divs),
		func(i int) (Dividend, error) { return divs[i], nil })
	require.ErrorIs(t, err, wantErr)
}

func TestRepo_copyDividends_wrongN(t *testing.T) {
	ctx := context.Background()

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().CopyFrom(ctx, pgx.Identifier{"dividends"}, dividendCols[:],
		mock.Anything).Return(1, nil)

	divs := testDividends(1)
	err := repo.copyDividends(ctx, db, len(divs),
		func(i int) (Dividend, error) { return divs[i], nil })
	require.Error(t, err)
}

func TestRepo_ReplaceDividends_beginError(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Begin(ctx).Return(nil, wantErr)

	err := repo.ReplaceDividends(ctx, 1, 0,
		func(i int) (Dividend, error) { return Dividend{}, nil })
	require.ErrorIs(t, err, wantErr)
}

func TestRepo_Dividends_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Query(ctx, mock.Anything, mock.Anything).Return(nil, wantErr)

	divs, err := repo.Dividends(ctx, 1)
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, divs)
}

// --------------------------------------------------

func testInsiderTrade(stockId uint32) InsiderTrade {
	return InsiderTrade{
		StockId:    stockId,
		Hash:       xxhash.Sum64String("Quincey James|CEO|2024-02-20|S"),
		Insider:    "Quincey James",
		Position:   "CEO",
		Date:       testDate(2024, time.February, 20),
		TradeType:  "S",
		Price:      pgtype.Float8{Float64: 61.5, Valid: true},
		TransShare: pgtype.Float8{Float64: 177000, Valid: true},
		FinalShare: pgtype.Float8{Float64: 405000, Valid: true},
		Change:     pgtype.Float8{Float64: -30.41, Valid: true},
	}
}

func (self *RepoTestSuite) TestRepo_AddInsiderTrade() {
	ctx := context.Background()
	stockId := self.addTestStock(ctx)
	trade := testInsiderTrade(stockId)
	self.T().Logf("xxhash: %#x", trade.Hash)

	added, err := self.repo.AddInsiderTrade(ctx, trade)
	self.Require().NoError(err)
	self.True(added)

	added, err = self.repo.AddInsiderTrade(ctx, trade)
	self.Require().NoError(err)
	self.False(added)

	trades, err := self.repo.InsiderTrades(ctx, stockId)
	self.Require().NoError(err)
	self.Equal([]InsiderTrade{trade}, trades)
	self.False(trades[0].Cost.Valid)
}

func TestRepo_AddInsiderTrade_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Exec(ctx, mock.Anything, mock.Anything).Return(
		pgconn.CommandTag{}, wantErr)

	added, err := repo.AddInsiderTrade(ctx, testInsiderTrade(1))
	require.ErrorIs(t, err, wantErr)
	assert.False(t, added)
}

func TestRepo_InsiderTrades_error(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("test error")

	db := mocks.NewMockPostgreser(t)
	repo := New(db)
	db.EXPECT().Query(ctx, mock.Anything, mock.Anything).Return(nil, wantErr)

	trades, err := repo.InsiderTrades(ctx, 1)
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, trades)
}
