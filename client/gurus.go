package client

// Guru describes an investor, whose portfolio is tracked by GuruFocus.
type Guru struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	URL          *string `json:"url,omitempty"`
	Company      string  `json:"company"`
	NumOfStocks  Float   `json:"num_of_stocks"`
	Value        Float   `json:"value"`
	Turnover     Float   `json:"turnover"`
	LatestUpdate string  `json:"latest_update"`
}

// Gurus is a document of Client.Gurus. Both maps are keyed by region, like
// "U.S." or "Plus".
type Gurus struct {
	All map[string][]Guru   `json:"all"`
	My  map[string][]string `json:"my"`
}

// GuruTrades holds latest holdings and picks of gurus in one stock. Client.GuruTrades returns a map of them keyed by symbol.
type GuruTrades struct {
	Holdings []GuruHoldings `json:"holdings"`
	Picks    []GuruPick2    `json:"picks"`
}

type GuruHoldings struct {
	Change        Float  `json:"change"`
	CurrentShares Float  `json:"current_shares"`
	Date          string `json:"date"`
	Guru          string `json:"guru"`
	GuruId        string `json:"guru_id"`
	PercAssets    Float  `json:"perc_assets"`
	PercShares    Float  `json:"perc_shares"`
}

type GuruPick2 struct {
	Avg           Float  `json:"Avg"`
	Action        string `json:"action"`
	Comment       string `json:"comment"`
	CurrentShares Float  `json:"current_shares"`
	Date          string `json:"date"`
	Guru          string `json:"guru"`
	GuruId        string `json:"guru_id"`
	Impact        Float  `json:"impact"`
	PriceMax      Float  `json:"price_max"`
	PriceMin      Float  `json:"price_min"`
}

// GuruPicks are picks of one guru. Client.GuruPicks returns a map of them
// keyed by guru id.
type GuruPicks struct {
	Port []GuruPick `json:"port"`
}

type GuruPick struct {
	GuruName        string `json:"GuruName"`
	RecmAction      string `json:"RecmAction"`
	RecmDate        string `json:"RecmDate"`
	RecmPrice       Float  `json:"RecmPrice"`
	Change          Float  `json:"change"`
	Comment         string `json:"comment"`
	Company         string `json:"company"`
	Currency        string `json:"currency"`
	CurrencyTxt     string `json:"currency_txt"`
	Price           Float  `json:"price"`
	PriceMax        Float  `json:"price_max"`
	PriceMin        Float  `json:"price_min"`
	Sector          string `json:"sector"`
	ShareCurrent    Float  `json:"share_current"`
	Symbol          string `json:"symbol"`
	SymbolOri       string `json:"symbol_ori"`
	TransShare      Float  `json:"trans_share"`
	TransactionType string `json:"type"`
	Exchange        string `json:"exchange"`
	Industry        string `json:"industry"`
}

// GuruPortfolio is an aggregated portfolio of one guru. Client.GuruPortfolios
// returns a map of them keyed by guru id.
type GuruPortfolio struct {
	Summary GuruPortSummary `json:"summary"`
	Port    []GuruPosition  `json:"port"`
}

type GuruPortSummary struct {
	Country        string `json:"country"`
	Date           string `json:"date"`
	Equity         Float  `json:"equity"`
	Firm           string `json:"firm"`
	NumNew         Float  `json:"num_new"`
	NumberOfStocks Float  `json:"number_of_stocks"`
	Turnover       Float  `json:"turnover"`
}

type GuruPosition struct {
	Date13F          string `json:"13f_date"`
	High52W          Float  `json:"52h"`
	Low52W           Float  `json:"52l"`
	Change           Float  `json:"change"`
	Company          string `json:"company"`
	Currency         string `json:"currency"`
	CurrencyTxt      string `json:"currency_txt"`
	Exchange         string `json:"exchange"`
	Impact           Float  `json:"impact"`
	Industry         string `json:"industry"`
	MktCap           Float  `json:"mktcap"`
	Pct              Float  `json:"pct"`
	PE               Float  `json:"pe"`
	Position         Float  `json:"position"`
	Price            Float  `json:"price"`
	Sector           string `json:"sector"`
	Share            Float  `json:"share"`
	Symbol           string `json:"symbol"`
	SymbolOri        string `json:"symbol_ori"`
	Value            Float  `json:"value"`
	TransactionYield Float  `json:"yield"`
}

// Politician is one item of Client.Politicians.
type Politician struct {
	Id       int64  `json:"id,omitempty"`
	FullName string `json:"full_name"`
	Party    string `json:"party"`
	Position string `json:"position"`
	State    string `json:"state,omitempty"`
}

// PoliticianTransactionList is a document of Client.PoliticianTransactions,
// one page of it.
type PoliticianTransactionList struct {
	Data        []PoliticianTransaction `json:"data"`
	CurrentPage int64                   `json:"current_page,omitempty"`
	LastPage    int64                   `json:"last_page,omitempty"`
	Total       int64                   `json:"total,omitempty"`
}

type PoliticianTransaction struct {
	Symbol          string  `json:"symbol"`
	Company         string  `json:"company,omitempty"`
	FullName        string  `json:"full_name"`
	Party           string  `json:"party,omitempty"`
	Position        string  `json:"position,omitempty"`
	AssetType       string  `json:"asset_type,omitempty"`
	TransactionType string  `json:"type"`
	TransDate       string  `json:"trans_date"`
	DisclosureDate  string  `json:"disclosure_date,omitempty"`
	Amount          string  `json:"amount,omitempty"`
	Price           *Float  `json:"price,omitempty"`
	Comment         *string `json:"comment,omitempty"`
}
