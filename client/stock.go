package client

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Stock is one item of Client.ListedStocks.
type Stock struct {
	Company     string `json:"company"`
	Currency    string `json:"currency"`
	Exchange    string `json:"exchange"`
	Industry    string `json:"industry"`
	Sector      string `json:"sector"`
	SubIndustry string `json:"subindustry"`
	Symbol      string `json:"symbol"`
}

// Quote is one item of Client.Quotes.
type Quote struct {
	Currency     string `json:"Currency"`
	TodaysChange Float  `json:"Day's Change %"`
	TodaysVolume Float  `json:"Day's Volume"`
	Exchange     string `json:"Exchange"`
	CurrentPrice Float  `json:"Current Price"`
	Price        Float  `json:"Price"`
	PriceChange  Float  `json:"Price Change"`
	UpdateTime   string `json:"Price Updated Time"`
	Symbol       string `json:"Symbol"`
	High         Float  `json:"high"`
	Low          Float  `json:"low"`
	Open         Float  `json:"open"`
	Timestamp    int64  `json:"timestamp"`
}

// StockSummary is a document of Client.StockSummary.
type StockSummary struct {
	Summary StockSummaryByCat `json:"summary"`
}

// StockSummaryByCat has ratios and company data as generic objects, because
// set of their keys depends on the company. Decode items of Ratio into
// RatioCmp.
type StockSummaryByCat struct {
	General     GeneralData                   `json:"general"`
	Chart       Chart                         `json:"chart"`
	Ratio       map[string]any                `json:"ratio"`
	Guru        map[string]GuruTransaction    `json:"guru"`
	Insider     map[string]InsiderTransaction `json:"insider"`
	CompanyData map[string]any                `json:"company_data"`
	Estimate    Estimate                      `json:"estimate"`
}

// Number of gurus by kind of trade.
type GuruTransaction struct {
	Buy     int64 `json:"buy"`
	Hold    int64 `json:"hold"`
	NewBuy  int64 `json:"new_buy"`
	Sell    int64 `json:"sell"`
	SoldOut int64 `json:"sold_out"`
}

type InsiderTransaction struct {
	Buy   Float  `json:"buy"`
	Sell  *Float `json:"sell,omitempty"`
	Price *Float `json:"price,omitempty"`
}

type Chart struct {
	GrahamNumber         Float `json:"Graham Number"`
	MedianPSValue        Float `json:"Median P/S Value"`
	PeterLynchValue      Float `json:"Peter Lynch Value"`
	NetCurrentAssetValue Float `json:"Net Current Asset Value"`
	NetNetWorkingCapital Float `json:"Net-Net Working Capital"`
	ProjectedFCF         Float `json:"Projected FCF"`
	TangibleBook         Float `json:"Tangible Book"`
	DCFEarningsBased     Float `json:"DCF (Earnings Based)"`
	DCFFCFBased          Float `json:"DCF (FCF Based)"`
	GFValue              Float `json:"GF Value"`
	EarningsPowerValue   Float `json:"Earnings Power Value"`
}

type Estimate struct {
	LongTermGrowthRateMean        Float   `json:"LongTermGrowthRateMean"`
	EPSNRI                        []Float `json:"eps_nri"`
	Count                         Float   `json:"count"`
	PerShareEPS                   []Float `json:"per share eps"`
	Percentage                    Float   `json:"percentage"`
	DividendsPerShare             []Float `json:"Dividends Per Share"`
	Revenue                       []Float `json:"Revenue"`
	Quarter                       []Float `json:"quarter"`
	LongTermRevenueGrowthRateMean Float   `json:"LongTermRevenueGrowthRateMean"`
}

type GeneralData struct {
	Industry              string `json:"industry"`
	Company               string `json:"company"`
	Desc                  string `json:"desc"`
	RankFinancialStrength Float  `json:"rank_financial_strength"`
	Sector                string `json:"sector"`
	Currency              string `json:"currency"`
	Price                 Float  `json:"price"`
	ShortDesc             string `json:"short_desc"`
	RankProfitability     Float  `json:"rank_profitability"`
	Rating                Float  `json:"rating"`
	Country               string `json:"country"`
	Group                 string `json:"group"`
	Timestamp             string `json:"timestamp"`
	GFScore               Float  `json:"gf_score"`
	RankGFValue           Float  `json:"rank_gf_value"`
	RankGrowth            Float  `json:"rank_growth"`
	RankMomentum          Float  `json:"rank_momentum"`
	RiskAssessment        string `json:"risk_assessment"`
	GFValuation           string `json:"gf_valuation"`
}

// RatioCmp compares a ratio with its history and the industry.
type RatioCmp struct {
	His    HistoryCmp  `json:"his"`
	Indu   IndustryCmp `json:"indu"`
	Status Float       `json:"status"`
	Value  Float       `json:"value"`
}

type HistoryCmp struct {
	High Float `json:"high"`
	Low  Float `json:"low"`
	Med  Float `json:"med"`
}

type IndustryCmp struct {
	GlobalRank Float `json:"global_rank"`
	InduMed    Float `json:"indu_med"`
	InduTot    Float `json:"indu_tot"`
}

// Color is a hex color code or a number.
type RatioRange struct {
	Color   HexNum `json:"color"`
	Current Float  `json:"current"`
	High    Float  `json:"high"`
	Low     Float  `json:"low"`
}

type WarningDetails struct {
	Category *string `json:"category,omitempty"`
	Degree   string  `json:"degree"`
	Details  string  `json:"details"`
	Display  string  `json:"display"`
	Name     string  `json:"name"`
}

type GoodDetails struct {
	Category *string `json:"category,omitempty"`
	Details  string  `json:"details"`
	Display  string  `json:"display"`
	Name     string  `json:"name"`
}

type CompanyDescription struct {
	Address       string  `json:"address"`
	Descrpt       string  `json:"descrpt"`
	MornCompId    *string `json:"morn_comp_id,omitempty"`
	ShortDescript string  `json:"short_descript"`
	Symbol        *string `json:"symbol,omitempty"`
	Website       string  `json:"website"`
}

type Country struct {
	Country  string `json:"country"`
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`
}

type StockDynamics struct {
	High       Float   `json:"high"`
	Low        Float   `json:"low"`
	Open       Float   `json:"open"`
	PChange    Float   `json:"p_change"`
	PPctChange Float   `json:"p_pct_change"`
	Price      Float   `json:"price"`
	StockId    *string `json:"stockid,omitempty"`
	VolumnDay  Float   `json:"volumn_day"`
}

type IndustryDetails struct {
	Group        string `json:"group"`
	GroupCode    int64  `json:"groupcode"`
	Industry     string `json:"industry"`
	IndustryCode int64  `json:"industrycode"`
	Sector       string `json:"sector"`
	SectorCode   int64  `json:"sectorcode"`
	Date         string `json:"date"`
}

// Dividend is one item of Client.DividendHistory.
type Dividend struct {
	ExDate     string `json:"ex_date"`
	RecordDate string `json:"record_date"`
	Amount     Float  `json:"amount"`
	PayDate    string `json:"pay_date"`
	Currency   string `json:"currency"`
	DivType    string `json:"type"`
}

// Exchanges is a document of Client.Exchanges: exchange names by country.
type Exchanges map[string][]string

// PricePoint is one item of Client.PriceHistory and
// Client.UnadjustedPriceHistory. Upstream sends it as a pair like
// ["01-02-2020", 124.6].
type PricePoint struct {
	Date  string
	Price Float
}

func (self *PricePoint) UnmarshalJSON(b []byte) error {
	// Errors are *json.UnmarshalTypeError as is, so json could add the field
	// path to them.
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err //nolint:wrapcheck // keep json type error
	} else if len(pair) != 2 {
		return &json.UnmarshalTypeError{
			Value: fmt.Sprintf("array of %d items", len(pair)),
			Type:  reflect.TypeOf(*self),
		}
	}

	if err := json.Unmarshal(pair[0], &self.Date); err != nil {
		return err //nolint:wrapcheck // keep json type error
	}
	return json.Unmarshal(pair[1], &self.Price) //nolint:wrapcheck // the same
}

func (self PricePoint) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal([]any{self.Date, self.Price})
	if err != nil {
		return nil, fmt.Errorf("marshal PricePoint: %w", err)
	}
	return b, nil
}
