package client

// Portfolio is one item of Client.PersonalPortfolios.
type Portfolio struct {
	PortId        string     `json:"portid"`
	PortName      string     `json:"portname"`
	NumStocks     Float      `json:"num_stocks"`
	UID           string     `json:"uid"`
	Id            string     `json:"id"`
	Intro         string     `json:"intro"`
	Introduction  string     `json:"introduction"`
	Private       Float      `json:"private"`
	Settings      string     `json:"settings"`
	Created       string     `json:"created"`
	IsDeleted     string     `json:"is_deleted"`
	Alert         string     `json:"alert"`
	Email         string     `json:"email"`
	Modified      string     `json:"modified"`
	P1M           Float      `json:"p_1m"`
	P3M           Float      `json:"p_3m"`
	P6M           Float      `json:"p_6m"`
	P12M          Float      `json:"p_12m"`
	P3Y           Float      `json:"p_3y"`
	P5Y           Float      `json:"p_5y"`
	P10Y          Float      `json:"p_10y"`
	PAll          Float      `json:"p_all"`
	PRelSp500     Float      `json:"p_rel_sp500"`
	Detail        []Position `json:"detail"`
	DeletedTime   *string    `json:"deleted_time,omitempty"`
	IsArticle     *string    `json:"is_article,omitempty"`
	Gain          *Float     `json:"gain,omitempty"`
	PortfolioType Float      `json:"type"`
	Value         *Float     `json:"value,omitempty"`
	ViewId        string     `json:"view_id"`
	Stocks        Float      `json:"stocks"`
	Description   string     `json:"description"`
}

// Position is one stock in Portfolio.
type Position struct {
	Id           string `json:"id"`
	Company      string `json:"company"`
	CostPerShare Float  `json:"cost_per_share"`
	Shares       Float  `json:"shares"`
	Symbol       string `json:"symbol"`
	Volumn       Float  `json:"volumn"`
	Currency     string `json:"currency"`
	DateAdd      string `json:"date_add"`
	Price        Float  `json:"price"`
	PETTM        Float  `json:"pettm"`
	PChange      Float  `json:"p_change"`
	PPctChange   Float  `json:"p_pct-change"`
	Gain         Float  `json:"gain"`
	GainP        Float  `json:"gain_p"`
	GainToday    Float  `json:"gain_today"`
	Open         Float  `json:"open"`
	Low          Float  `json:"low"`
	High         Float  `json:"high"`
	InPrice      Float  `json:"in_price"`
	PS           Float  `json:"ps"`
	PB           Float  `json:"pb"`
}
