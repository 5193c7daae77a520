package repo

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Dividend struct {
	StockId uint32 `db:"stock_id"`

	ExDate     time.Time   `db:"ex_date"`
	RecordDate pgtype.Date `db:"record_date"`
	PayDate    pgtype.Date `db:"pay_date"`
	Amount     float64     `db:"amount"`
	Currency   string      `db:"currency"`
	DivType    string      `db:"div_type"`
}

func (self *Dividend) WithRecordDate(d time.Time) *Dividend {
	self.RecordDate = pgtype.Date{Time: d, Valid: true}
	return self
}

func (self *Dividend) WithPayDate(d time.Time) *Dividend {
	self.PayDate = pgtype.Date{Time: d, Valid: true}
	return self
}

// --------------------------------------------------

// InsiderTrade has no natural key upstream, so Hash identifies it. Numbers,
// which upstream sent as text, are NULL.
type InsiderTrade struct {
	StockId uint32 `db:"stock_id"`
	Hash    uint64 `db:"xxhash"`

	Insider    string        `db:"insider"`
	Position   string        `db:"position"`
	Date       time.Time     `db:"trade_date"`
	TradeType  string        `db:"trade_type"`
	Price      pgtype.Float8 `db:"price"`
	TransShare pgtype.Float8 `db:"trans_share"`
	FinalShare pgtype.Float8 `db:"final_share"`
	Change     pgtype.Float8 `db:"change"`
	Cost       pgtype.Float8 `db:"cost"`
}

func (self *InsiderTrade) NamedArgs() pgx.NamedArgs {
	return pgx.NamedArgs{
		"stock_id": self.StockId,
		"xxhash":   self.Hash,

		"insider":     self.Insider,
		"position":    self.Position,
		"trade_date":  self.Date,
		"trade_type":  self.TradeType,
		"price":       self.Price,
		"trans_share": self.TransShare,
		"final_share": self.FinalShare,
		"change":      self.Change,
		"cost":        self.Cost,
	}
}
