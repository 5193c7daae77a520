//go:build e2e

package client

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/stretchr/testify/suite"
)

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

type ClientTestSuite struct {
	suite.Suite
	client *Client
}

func (self *ClientTestSuite) SetupSuite() {
	cfg := struct {
		Token string `env:"GURUFOCUS_TOKEN,notEmpty"`
	}{}
	self.Require().NoError(dotenv.Load(func() error { return env.Parse(&cfg) }))
	self.client = New(cfg.Token)
}

func (self *ClientTestSuite) TestFinancials() {
	for _, symbol := range []string{"NAS:AAPL", "NYSE:JPM", "NYSE:AIG", "NYSE:O"} {
		doc, err := self.client.Financials(context.Background(), symbol)
		self.Require().NoError(err, symbol)
		fin, err := Decode[FinancialData](doc)
		self.Require().NoError(err, symbol)
		self.NotEmpty(fin.Financials.Annuals.FiscalYear, symbol)
	}
}

func (self *ClientTestSuite) TestKeyRatios() {
	doc, err := self.client.KeyRatios(context.Background(), "NAS:AAPL")
	self.Require().NoError(err)
	_, err = Decode[KeyRatios](doc)
	self.Require().NoError(err)
}

func (self *ClientTestSuite) TestQuotes() {
	doc, err := self.client.Quotes(context.Background(), "NAS:AAPL", "NYSE:DIS")
	self.Require().NoError(err)
	quotes, err := Decode[[]Quote](doc)
	self.Require().NoError(err)
	self.Len(quotes, 2)
}

func (self *ClientTestSuite) TestPriceHistory() {
	doc, err := self.client.PriceHistory(context.Background(), "NYSE:DIS")
	self.Require().NoError(err)
	prices, err := Decode[[]PricePoint](doc)
	self.Require().NoError(err)
	self.NotEmpty(prices)

	doc, err = self.client.UnadjustedPriceHistory(context.Background(),
		"NYSE:DIS")
	self.Require().NoError(err)
	prices, err = Decode[[]PricePoint](doc)
	self.Require().NoError(err)
	self.NotEmpty(prices)
}

func (self *ClientTestSuite) TestStockSummary() {
	doc, err := self.client.StockSummary(context.Background(), "NYSE:DIS")
	self.Require().NoError(err)
	summary, err := Decode[StockSummary](doc)
	self.Require().NoError(err)
	self.NotEmpty(summary.Summary.General.Company)
}

func (self *ClientTestSuite) TestGurus() {
	doc, err := self.client.Gurus(context.Background())
	self.Require().NoError(err)
	gurus, err := Decode[Gurus](doc)
	self.Require().NoError(err)
	self.NotEmpty(gurus.All)
}

func (self *ClientTestSuite) TestGuruPicks() {
	doc, err := self.client.GuruPicks(context.Background(), []string{"7"},
		time.Now().AddDate(0, -6, 0), 1)
	self.Require().NoError(err)
	_, err = Decode[map[string]GuruPicks](doc)
	self.Require().NoError(err)
}

func (self *ClientTestSuite) TestExchanges() {
	doc, err := self.client.Exchanges(context.Background())
	self.Require().NoError(err)
	exchanges, err := Decode[Exchanges](doc)
	self.Require().NoError(err)
	self.NotEmpty(exchanges)
}

func (self *ClientTestSuite) TestListedStocks() {
	doc, err := self.client.ListedStocks(context.Background(), "NYSE")
	self.Require().NoError(err)
	stocks, err := Decode[[]Stock](doc)
	self.Require().NoError(err)
	self.NotEmpty(stocks)
}

func (self *ClientTestSuite) TestDividendHistory() {
	doc, err := self.client.DividendHistory(context.Background(), "NYSE:KO")
	self.Require().NoError(err)
	dividends, err := Decode[[]Dividend](doc)
	self.Require().NoError(err)
	self.NotEmpty(dividends)
}

func (self *ClientTestSuite) TestUpdatedStocks() {
	doc, err := self.client.UpdatedStocks(context.Background(),
		time.Now().AddDate(0, 0, -7))
	self.Require().NoError(err)
	_, err = Decode[[]string](doc)
	self.Require().NoError(err)
}

func (self *ClientTestSuite) TestPersonalPortfolios() {
	doc, err := self.client.PersonalPortfolios(context.Background())
	self.Require().NoError(err)
	_, err = Decode[[]Portfolio](doc)
	self.Require().NoError(err)
}

func (self *ClientTestSuite) TestPoliticians() {
	doc, err := self.client.Politicians(context.Background())
	self.Require().NoError(err)
	politicians, err := Decode[[]Politician](doc)
	self.Require().NoError(err)
	self.NotEmpty(politicians)

	doc, err = self.client.PoliticianTransactions(context.Background(), 1, "")
	self.Require().NoError(err)
	_, err = Decode[PoliticianTransactionList](doc)
	self.Require().NoError(err)
}

func (self *ClientTestSuite) TestBadToken() {
	_, err := New("bad-token").Gurus(context.Background())
	self.Require().ErrorIs(err, ErrUnexpectedStatus)
}
