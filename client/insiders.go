package client

// InsiderTrade is one trade of Client.InsiderTrades, which returns them
// grouped by symbol.
type InsiderTrade struct {
	Change     Float  `json:"change"`
	Cost       Float  `json:"cost"`
	Date       string `json:"date"`
	FinalShare Float  `json:"final_share"`
	Insider    string `json:"insider"`
	Position   string `json:"position"`
	Price      Float  `json:"price"`
	TransShare Float  `json:"trans_share"`
	TradeType  string `json:"type"`
}

// InsiderUpdate is one item of Client.InsiderUpdates. Its keys depend on
// kind of the trade, so it stays generic.
type InsiderUpdate map[string]any

// Symbol returns value of "symbol" key or empty string.
func (self InsiderUpdate) Symbol() string {
	s, _ := self["symbol"].(string)
	return s
}
