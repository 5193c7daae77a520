package client

// KeyRatios is a document of Client.KeyRatios. Every section has current
// values only.
type KeyRatios struct {
	ValuationRatio  KeyValuationRatio  `json:"Valuation Ratio"`
	Profitability   KeyProfitability   `json:"Profitability"`
	IncomeStatement KeyIncomeStatement `json:"Income Statement"`
	Growth          KeyGrowth          `json:"Growth"`
	Basic           KeyBasic           `json:"Basic"`
	Dividends       KeyDividends       `json:"Dividends"`
	Valuation       KeyValuation       `json:"Valuation"`
	Price           KeyPrice           `json:"Price"`
	Quality         KeyQuality         `json:"Quality"`
	Fundamental     KeyFundamental     `json:"Fundamental"`
}

// Current valuation ratios and their 10 years ranges.
type KeyValuationRatio struct {
	PriceToNetCurrentAssetValue             Float `json:"Price-to-Net-Current-Asset-Value"`
	PriceToEBIT10YMedian                    Float `json:"Price-to-EBIT (10y Median)"`
	ForwardRateOfReturnYacktmanPct10YLow    Float `json:"Forward Rate of Return (Yacktman) % (10y Low)"`
	PriceToMedianPSValue                    Float `json:"Price-to-Median-PS-Value"`
	PriceToProjectedFCF10YHigh              Float `json:"Price-to-Projected-FCF (10y High)"`
	ForwardRateOfReturnYacktmanPct          Float `json:"Forward Rate of Return (Yacktman) %"`
	PriceToTangibleBook10YMedian            Float `json:"Price-to-Tangible-Book (10y Median)"`
	PERatio10YLow                           Float `json:"PE Ratio (10y Low)"`
	PERatio10YHigh                          Float `json:"PE Ratio (10y High)"`
	DCFFCFBased                             Float `json:"Intrinsic Value: DCF (FCF Based)"`
	PERatio                                 Float `json:"PE Ratio"`
	MedianPBValue                           Float `json:"Median PB Value"`
	PeterLynchFairValue                     Float `json:"Peter Lynch Fair Value"`
	EVToEBITDA10YLow                        Float `json:"EV-to-EBITDA (10y Low)"`
	PERatio10YMedian                        Float `json:"PE Ratio (10y Median)"`
	PriceToOwnerEarnings10YMedian           Float `json:"Price-to-Owner-Earnings (10y Median)"`
	PriceToMedianPBValue                    Float `json:"Price-to-Median-PB-Value"`
	EVToEBIT                                Float `json:"EV-to-EBIT"`
	PEGRatio                                Float `json:"PEG Ratio"`
	PriceToGrahamNumber                     Float `json:"Price-to-Graham-Number"`
	PriceToOperatingCashFlow                Float `json:"Price-to-Operating-Cash-Flow"`
	PSRatio10YHigh                          Float `json:"PS Ratio (10y High)"`
	PriceToProjectedFCF10YMedian            Float `json:"Price-to-Projected-FCF (10y Median)"`
	PriceToDCFFCFBased                      Float `json:"Price-to-DCF (FCF Based)"`
	PriceToMedianPBValue10YLow              Float `json:"Price-to-Median-PB-Value (10y Low)"`
	NetNetWorkingCapital                    Float `json:"Net-Net Working Capital"`
	PriceToNetCash10YLow                    Float `json:"Price-to-Net-Cash (10y Low)"`
	EarningsYieldJoelGreenblattPct          Float `json:"Earnings Yield (Joel Greenblatt) %"`
	PERatioWithoutNRI10YLow                 Float `json:"PE Ratio without NRI (10y Low)"`
	PriceToEarningsPowerValue               Float `json:"Price-to-Earnings-Power-Value"`
	PriceToGrahamNumber10YMedian            Float `json:"Price-to-Graham-Number (10y Median)"`
	PriceToPeterLynchFairValue              Float `json:"Price-to-Peter-Lynch-Fair-Value"`
	PriceToDCFEarningsBased10YHigh          Float `json:"Price-to-DCF (Earnings Based) (10y High)"`
	PriceToOperatingCashFlow10YHigh         Float `json:"Price-to-Operating-Cash-Flow (10y High)"`
	EVToEBITDA10YHigh                       Float `json:"EV-to-EBITDA (10y High)"`
	PERatioWithoutNRI                       Float `json:"PE Ratio without NRI"`
	PriceToDCFEarningsBased10YLow           Float `json:"Price-to-DCF (Earnings Based) (10y Low)"`
	EarningsYieldPct                        Float `json:"Earnings Yield %"`
	MarginOfSaftyPctDCFEarningsBased        Float `json:"Margin of Safty % (DCF Earnings Based)"`
	PriceToFreeCashFlow10YLow               Float `json:"Price-to-Free-Cash-Flow (10y Low)"`
	PERatioWithoutNRI10YHigh                Float `json:"PE Ratio without NRI (10y High)"`
	ForwardRateOfReturnYacktmanPct10YMedian Float `json:"Forward Rate of Return (Yacktman) % (10y Median)"`
	PriceToDCFFCFBased10YLow                Float `json:"Price-to-DCF (FCF Based) (10y Low)"`
	NetCurrentAssetValue                    Float `json:"Net Current Asset Value"`
	PBRatio10YHigh                          Float `json:"PB Ratio (10y High)"`
	PEGRatio10YMedian                       Float `json:"PEG Ratio (10y Median)"`
	PSRatio                                 Float `json:"PS Ratio"`
	PriceToPeterLynchFairValue10YLow        Float `json:"Price-to-Peter-Lynch-Fair-Value (10y Low)"`
	PriceToOwnerEarnings10YLow              Float `json:"Price-to-Owner-Earnings (10y Low)"`
	PriceToMedianPSValue10YHigh             Float `json:"Price-to-Median-PS-Value (10y High)"`
	PriceToDCFEarningsBased                 Float `json:"Price-to-DCF (Earnings Based)"`
	FCFYieldPct5YMedian                     Float `json:"FCF Yield % (5y Median)"`
	PriceToMedianPBValue10YMedian           Float `json:"Price-to-Median-PB-Value (10y Median)"`
	ForwardPERatio                          Float `json:"Forward PE Ratio"`
	ShillerPERatio10YLow                    Float `json:"Shiller PE Ratio (10y Low)"`
	PERatioWithoutNRI10YMedian              Float `json:"PE Ratio without NRI (10y Median)"`
	PriceToDCFEarningsBased10YMedian        Float `json:"Price-to-DCF (Earnings Based) (10y Median)"`
	PriceToDCFFCFBased10YMedian             Float `json:"Price-to-DCF (FCF Based) (10y Median)"`
	E10                                     Float `json:"E10"`
	IntrinsicValueProjectedFCF              Float `json:"Intrinsic Value: Projected FCF"`
	PriceToOwnerEarnings                    Float `json:"Price-to-Owner-Earnings"`
	DCFEarningsBased                        Float `json:"DCF (Earnings Based)"`
	PriceToMedianPSValue10YMedian           Float `json:"Price-to-Median-PS-Value (10y Median)"`
	PriceToTangibleBook10YHigh              Float `json:"Price-to-Tangible-Book (10y High)"`
	ShillerPERatio10YHigh                   Float `json:"Shiller PE Ratio (10y High)"`
	EVToPretaxIncome                        Float `json:"EV-to-Pretax-Income"`
	EVToEBIT10YLow                          Float `json:"EV-to-EBIT (10y Low)"`
	PriceToFreeCashFlow                     Float `json:"Price-to-Free-Cash-Flow"`
	PriceToPeterLynchFairValue10YHigh       Float `json:"Price-to-Peter-Lynch-Fair-Value (10y High)"`
	PBRatio10YMedian                        Float `json:"PB Ratio (10y Median)"`
	PriceToOperatingCashFlow10YLow          Float `json:"Price-to-Operating-Cash-Flow (10y Low)"`
	PriceToNetCurrentAssetValue10YHigh      Float `json:"Price-to-Net-Current-Asset-Value (10y High)"`
	EVToEBITDA10YMedian                     Float `json:"EV-to-EBITDA (10y Median)"`
	EarningsYieldJoelGreenblattPct10YHigh   Float `json:"Earnings Yield (Joel Greenblatt) % (10y High)"`
	ForwardRateOfReturnYacktmanPct10YHigh   Float `json:"Forward Rate of Return (Yacktman) % (10y High)"`
	PriceToNetCurrentAssetValue10YLow       Float `json:"Price-to-Net-Current-Asset-Value (10y Low)"`
	EVToRevenue                             Float `json:"EV-to-Revenue"`
	PriceToNetNetWorkingCapital             Float `json:"Price-to-Net-Net-Working-Capital"`
	PriceToProjectedFCF                     Float `json:"Price-to-Projected-FCF"`
	EVToEBITDA                              Float `json:"EV-to-EBITDA"`
	PriceToEBITDA10YMedian                  Float `json:"Price-to-EBITDA (10y Median)"`
	PriceToNetCash                          Float `json:"Price-to-Net-Cash"`
	ShillerPERatio10YMedian                 Float `json:"Shiller PE Ratio (10y Median)"`
	EarningsYieldJoelGreenblattPct10YMedian Float `json:"Earnings Yield (Joel Greenblatt) % (10y Median)"`
	EarningsPowerValueEPV                   Float `json:"Earnings Power Value (EPV)"`
	PriceToDCFFCFBased10YHigh               Float `json:"Price-to-DCF (FCF Based) (10y High)"`
	PriceToFreeCashFlow10YHigh              Float `json:"Price-to-Free-Cash-Flow (10y High)"`
	PriceToFreeCashFlow10YMedian            Float `json:"Price-to-Free-Cash-Flow (10y Median)"`
	PriceToGrahamNumber10YHigh              Float `json:"Price-to-Graham-Number (10y High)"`
	PriceToOwnerEarnings10YHigh             Float `json:"Price-to-Owner-Earnings (10y High)"`
	PriceToProjectedFCF10YLow               Float `json:"Price-to-Projected-FCF (10y Low)"`
	PriceToTangibleBook                     Float `json:"Price-to-Tangible-Book"`
	PriceToGrahamNumber10YLow               Float `json:"Price-to-Graham-Number (10y Low)"`
	PEGRatio10YLow                          Float `json:"PEG Ratio (10y Low)"`
	PEGRatio10YHigh                         Float `json:"PEG Ratio (10y High)"`
	PBRatio                                 Float `json:"PB Ratio"`
	EarningsYieldJoelGreenblattPct10YLow    Float `json:"Earnings Yield (Joel Greenblatt) % (10y Low)"`
	PSRatio10YLow                           Float `json:"PS Ratio (10y Low)"`
	PriceToNetCash10YMedian                 Float `json:"Price-to-Net-Cash (10y Median)"`
	TangibleBookPerShare                    Float `json:"Tangible Book per Share"`
	OwnerEarningsPerShareTTM                Float `json:"Owner Earnings per Share (TTM)"`
	EVToRevenue10YLow                       Float `json:"EV-to-Revenue (10y Low)"`
	PriceToMedianPBValue10YHigh             Float `json:"Price-to-Median-PB-Value (10y High)"`
	PriceToNetCash10YHigh                   Float `json:"Price-to-Net-Cash (10y High)"`
	EVToRevenue10YMedian                    Float `json:"EV-to-Revenue (10y Median)"`
	PriceToPeterLynchFairValue10YMedian     Float `json:"Price-to-Peter-Lynch-Fair-Value (10y Median)"`
	PriceToTangibleBook10YLow               Float `json:"Price-to-Tangible-Book (10y Low)"`
	GrahamNumber                            Float `json:"Graham Number"`
	PriceToNetCurrentAssetValue10YMedian    Float `json:"Price-to-Net-Current-Asset-Value (10y Median)"`
	EVToEBIT10YMedian                       Float `json:"EV-to-EBIT (10y Median)"`
	EVToRevenue10YHigh                      Float `json:"EV-to-Revenue (10y High)"`
	PBRatio10YLow                           Float `json:"PB Ratio (10y Low)"`
	MedianPSValue                           Float `json:"Median PS Value"`
	PriceToMedianPSValue10YLow              Float `json:"Price-to-Median-PS-Value (10y Low)"`
	PriceToOperatingCashFlow10YMedian       Float `json:"Price-to-Operating-Cash-Flow (10y Median)"`
	ShillerPERatio                          Float `json:"Shiller PE Ratio"`
	PSRatio10YMedian                        Float `json:"PS Ratio (10y Median)"`
	EVToEBIT10YHigh                         Float `json:"EV-to-EBIT (10y High)"`
	FCFYieldPct                             Float `json:"FCF Yield %"`
}

type KeyProfitability struct {
	NetMarginPct                                Float `json:"Net Margin %"`
	NetMarginPct10YLow                          Float `json:"Net Margin % (10y Low)"`
	PretaxMarginPct10YLow                       Float `json:"Pretax Margin % (10y Low)"`
	GrossMarginPct                              Float `json:"Gross Margin %"`
	OperatingMarginPct10YHigh                   Float `json:"Operating Margin % (10y High)"`
	GrossMarginPct10YHigh                       Float `json:"Gross Margin % (10y High)"`
	FCFMarginPct                                Float `json:"FCF Margin %"`
	GrossMarginPct10YLow                        Float `json:"Gross Margin % (10y Low)"`
	OperatingMarginPct10YMedian                 Float `json:"Operating Margin % (10y Median)"`
	OperatingMarginPct5YMedian                  Float `json:"Operating Margin % (5y Median)"`
	PretaxMarginPct                             Float `json:"Pretax Margin %"`
	GrossMarginPct10YMedian                     Float `json:"Gross Margin % (10y Median)"`
	NetInterestMarginBankOnlyPct                Float `json:"Net Interest Margin (Bank Only) %"`
	NetMarginPct10YMedian                       Float `json:"Net Margin % (10y Median)"`
	NumOfYearsOfProfitabilityOverThePast10Years Float `json:"Num Of Years Of Profitability Over The Past 10 Years"`
	OperatingMarginPct                          Float `json:"Operating Margin %"`
	PretaxMarginPct10YHigh                      Float `json:"Pretax Margin % (10y High)"`
	FCFMarginPct5YMedian                        Float `json:"FCF Margin % (5y Median)"`
	NetMarginPct10YHigh                         Float `json:"Net Margin % (10y High)"`
	OperatingMarginPct10YLow                    Float `json:"Operating Margin % (10y Low)"`
	PretaxMarginPct10YMedian                    Float `json:"Pretax Margin % (10y Median)"`
}

type KeyIncomeStatement struct {
	SellingGeneralAndAdminExpense Float `json:"Selling, General, & Admin. Expense"`
}

// KeyGrowth holds growth rates over 1, 3, 5 and 10 years.
type KeyGrowth struct {
	TenYearDividendGrowthRatePerShare           Float `json:"10-Year Dividend Growth Rate (Per Share)"`
	SecondLatestQEBITYoYGrowth                  Float `json:"2nd Latest Q EBIT YoY Growth"`
	ThreeYearBookGrowthRate10YLow               Float `json:"3-Year Book Growth Rate (10y Low)"`
	ThreeYearDividendGrowthRate10YLow           Float `json:"3-Year Dividend Growth Rate (10y Low)"`
	ThreeYearRevenueGrowthRate10YHigh           Float `json:"3-Year Revenue Growth Rate (10y High)"`
	ThreeYearTotalRevenueGrowthRate10YLow       Float `json:"3-Year Total Revenue Growth Rate (10y Low)"`
	FiveYearGrossMarginGrowthRate               Float `json:"5-Year Gross Margin Growth Rate"`
	FiveYearOperatingMarginGrowthRate           Float `json:"5-Year Operating Margin Growth Rate"`
	ThreeYearEPSWithoutNRIGrowthRate10YHigh     Float `json:"3-Year EPS without NRI Growth Rate (10y High)"`
	ReversedDCFGrowthRate                       Float `json:"Reversed DCF Growth Rate"`
	ThirdLatestQEBITYoYGrowth                   Float `json:"3rd Latest Q EBIT YoY Growth"`
	FiveYearDebtToRevenueGrowthRate             Float `json:"5-Year Debt-to-Revenue Growth Rate"`
	ThreeYearTotalEBITDAGrowthRate              Float `json:"3-Year Total EBITDA Growth Rate"`
	TenYearOperatingIncomeGrowthRatePerShare    Float `json:"10-Year Operating Income Growth Rate (Per Share)"`
	ThreeYearFCFGrowthRate10YLow                Float `json:"3-Year FCF Growth Rate (10y Low)"`
	OneYearTotalRevenueGrowthRate               Float `json:"1-Year Total Revenue Growth Rate"`
	ThreeYearMarketCapChangePct                 Float `json:"3-Year Market Cap Change %"`
	ThreeYearNetIncomeGrowthRate10YMedian       Float `json:"3-Year Net Income Growth Rate (10y Median)"`
	ThreeYearFCFGrowthRatePerShare              Float `json:"3-Year FCF Growth Rate (Per Share)"`
	OneYearTotalEBITDAGrowthRate                Float `json:"1-Year Total EBITDA Growth Rate"`
	ThreeYearRevenueGrowthRate10YLow            Float `json:"3-Year Revenue Growth Rate (10y Low)"`
	ThreeYearFCFGrowthRate10YHigh               Float `json:"3-Year FCF Growth Rate (10y High)"`
	OneYearBookGrowthRatePerShare               Float `json:"1-Year Book Growth Rate (Per Share)"`
	FiveYearFCFGrowthRatePerShare               Float `json:"5-Year FCF Growth Rate (Per Share)"`
	FiveYearMarketCapChangePct                  Float `json:"5-Year Market Cap Change %"`
	ThreeYearOperatingIncomeGrowthRate10YLow    Float `json:"3-Year Operating Income Growth Rate (10y Low)"`
	ThreeYearTotalRevenueGrowthRate10YMedian    Float `json:"3-Year Total Revenue Growth Rate (10y Median)"`
	FiveYearLongTermDebtChangePct               Float `json:"5-Year Long-Term Debt Change %"`
	FiveYearROCJoelGreenblattPctGrowthRate      Float `json:"5-Year ROC (Joel Greenblatt) % Growth Rate"`
	FirstLatestQEBITYoYGrowth                   Float `json:"1st Latest Q EBIT YoY Growth"`
	ThreeYearOperatingIncomeGrowthRate10YHigh   Float `json:"3-Year Operating Income Growth Rate (10y High)"`
	ThreeYearFCFGrowthRate10YMedian             Float `json:"3-Year FCF Growth Rate (10y Median)"`
	FiveYearRevenueGrowthRatePerShare           Float `json:"5-Year Revenue Growth Rate (Per Share)"`
	ThreeYearRevenueGrowthRate10YMedian         Float `json:"3-Year Revenue Growth Rate (10y Median)"`
	OneYearLongTermDebtChangePct                Float `json:"1-Year Long-Term Debt Change %"`
	ThreeYearAssetGrowthRate10YMedian           Float `json:"3-Year Asset Growth Rate (10y Median)"`
	ThreeYearTotalEBITDAGrowthRate10YHigh       Float `json:"3-Year Total EBITDA Growth Rate (10y High)"`
	ThreeYearEPSWNRIGrowthRate10YLow            Float `json:"3-Year EPS without NRI Growth Rate (10y Low)"`
	FiveYearEBITDAGrowthRatePerShare            Float `json:"5-Year EBITDA Growth Rate (Per Share)"`
	ThreeYearTotalEBITDAGrowthRate10YMedian     Float `json:"3-Year Total EBITDA Growth Rate (10y Median)"`
	EPSGrowthRateFuture3YTo5YEstimate           Float `json:"EPS Growth Rate (Future 3Y To 5Y Estimate)"`
	OneYearDividendGrowthRatePerShare           Float `json:"1-Year Dividend Growth Rate (Per Share)"`
	ThreeYearBookGrowthRatePerShare             Float `json:"3-Year Book Growth Rate (Per Share)"`
	TenYearTotalEBITDAGrowthRate                Float `json:"10-Year Total EBITDA Growth Rate"`
	ThreeYearOperatingIncomeGrowthRate10YMedian Float `json:"3-Year Operating Income Growth Rate (10y Median)"`
	ThreeYearOperatingIncomeGrowthRatePerShare  Float `json:"3-Year Operating Income Growth Rate (Per Share)"`
	ThreeYearTotalRevenueGrowthRate10YHigh      Float `json:"3-Year Total Revenue Growth Rate (10y High)"`
	OneYearDebtToRevenueGrowthRate              Float `json:"1-Year Debt-to-Revenue Growth Rate"`
	OneYearOperatingIncomeGrowthRatePerShare    Float `json:"1-Year Operating Income Growth Rate (Per Share)"`
	ThreeYearRevenueGrowthRatePerShare          Float `json:"3-Year Revenue Growth Rate (Per Share)"`
	ThreeYearTotalEBITDAGrowthRate10YLow        Float `json:"3-Year Total EBITDA Growth Rate (10y Low)"`
	ThreeYearEPSWNRIGrowthRate10YMedian         Float `json:"3-Year EPS without NRI Growth Rate (10y Median)"`
	ThreeYearEPSWNRIGrowthRate                  Float `json:"3-Year EPS without NRI Growth Rate"`
	OneYearAssetGrowthRate                      Float `json:"1-Year Asset Growth Rate"`
	OneYearEBITDAGrowthRatePerShare             Float `json:"1-Year EBITDA Growth Rate (Per Share)"`
	ThreeYearAssetGrowthRate10YLow              Float `json:"3-Year Asset Growth Rate (10y Low)"`
	OneYearPiotroskiFScoreChange                Float `json:"1-Year Piotroski F-Score Change"`
	TenYearDebtToRevenueGrowthRate              Float `json:"10-Year Debt-to-Revenue Growth Rate"`
	TenYearEBITDAGrowthRatePerShare             Float `json:"10-Year EBITDA Growth Rate (Per Share)"`
	ThreeYearEBITDAGrowthRatePerShare           Float `json:"3-Year EBITDA Growth Rate (Per Share)"`
	ThreeYearNetIncomeGrowthRate10YHigh         Float `json:"3-Year Net Income Growth Rate (10y High)"`
	FiveYearTotalEBITDAGrowthRate               Float `json:"5-Year Total EBITDA Growth Rate"`
	ThreeYearEBITDAGrowthRate10YMedian          Float `json:"3-Year EBITDA Growth Rate (10y Median)"`
	FiveYearDividendGrowthRatePerShare          Float `json:"5-Year Dividend Growth Rate (Per Share)"`
	FiveYearTotalRevenueGrowthRate              Float `json:"5-Year Total Revenue Growth Rate"`
	FiveYearEPSWNRIGrowthRate                   Float `json:"5-Year EPS without NRI Growth Rate"`
	ThreeYearBookGrowthRate10YHigh              Float `json:"3-Year Book Growth Rate (10y High)"`
	OneYearFCFGrowthRatePerShare                Float `json:"1-Year FCF Growth Rate (Per Share)"`
	ThreeYearAssetGrowthRate                    Float `json:"3-Year Asset Growth Rate"`
	FiveYearOperatingIncomeGrowthRatePerShare   Float `json:"5-Year Operating Income Growth Rate (Per Share)"`
	ThreeYearTotalRevenueGrowthRate             Float `json:"3-Year Total Revenue Growth Rate"`
	TenYearRevenueGrowthRatePerShare            Float `json:"10-Year Revenue Growth Rate (Per Share)"`
	ThreeYearNetIncomeGrowthRate10YLow          Float `json:"3-Year Net Income Growth Rate (10y Low)"`
	TenYearTotalRevenueGrowthRate               Float `json:"10-Year Total Revenue Growth Rate"`
	ThreeYearLongTermDebtChangePct              Float `json:"3-Year Long-Term Debt Change %"`
	FiveYearAssetGrowthRate                     Float `json:"5-Year Asset Growth Rate"`
	ThreeYearDividendGrowthRate10YMedian        Float `json:"3-Year Dividend Growth Rate (10y Median)"`
	OneYearMarketCapChangePct                   Float `json:"1-Year Market Cap Change %"`
	TenYearEPSWNRIGrowthRate                    Float `json:"10-Year EPS without NRI Growth Rate"`
	ThreeYearDividendGrowthRatePerShare         Float `json:"3-Year Dividend Growth Rate (Per Share)"`
	ThreeYearNetIncomeGrowthRate                Float `json:"3-Year Net Income Growth Rate"`
	TenYearAssetGrowthRate                      Float `json:"10-Year Asset Growth Rate"`
	FiveYearBookGrowthRatePerShare              Float `json:"5-Year Book Growth Rate (Per Share)"`
	FourthLatestQEBITYoYGrowth                  Float `json:"4th Latest Q EBIT YoY Growth"`
	ThreeYearDividendGrowthRate10YHigh          Float `json:"3-Year Dividend Growth Rate (10y High)"`
	OneYearNetIncomeGrowthRate                  Float `json:"1-Year Net Income Growth Rate"`
	OneYearRevenueGrowthRatePerShare            Float `json:"1-Year Revenue Growth Rate (Per Share)"`
	ThreeYearBookGrowthRate10YMedian            Float `json:"3-Year Book Growth Rate (10y Median)"`
	ThreeYearEBITDAGrowthRate10YLow             Float `json:"3-Year EBITDA Growth Rate (10y Low)"`
	FiveYearNetIncomeGrowthRate                 Float `json:"5-Year Net Income Growth Rate"`
	TenYearBookGrowthRatePerShare               Float `json:"10-Year Book Growth Rate (Per Share)"`
	TenYearFCFGrowthRatePerShare                Float `json:"10-Year FCF Growth Rate (Per Share)"`
	TenYearNetIncomeGrowthRate                  Float `json:"10-Year Net Income Growth Rate"`
	OneYearEPSWONRIGrowthRate                   Float `json:"1-Year EPS without NRI Growth Rate"`
	ThreeYearEBITDAGrowthRate10YHigh            Float `json:"3-Year EBITDA Growth Rate (10y High)"`
	ThreeYearAssetGrowthRate10YHigh             Float `json:"3-Year Asset Growth Rate (10y High)"`
}

type KeyBasic struct {
	PriceUpdatedTime string `json:"Price Updated Time"`
}

type KeyDividends struct {
	DividendPayoutToFFO          Float `json:"Dividend-Payout-to-FFO"`
	ForwardDividendYieldPct      Float `json:"Forward Dividend Yield %"`
	DividendPayoutRatio10YMedian Float `json:"Dividend Payout Ratio (10y Median)"`
	YieldOnCost5YearPct          Float `json:"Yield-on-Cost (5-Year) %"`
	DividendPayoutRatio          Float `json:"Dividend Payout Ratio"`
	DividendPaymentMonths        Float `json:"Dividend Payment Months"`
	DividendYieldPct10YLow       Float `json:"Dividend Yield % (10y Low)"`
	YieldOnCostPct10YHigh        Float `json:"Yield-on-Cost % (10y High)"`
	DividendFrequency            Float `json:"Dividend Frequency"`
	DividendPayoutRatio10YHigh   Float `json:"Dividend Payout Ratio (10y High)"`
	DividendYieldPct10YHigh      Float `json:"Dividend Yield % (10y High)"`
	DividendPayoutRatio10YLow    Float `json:"Dividend Payout Ratio (10y Low)"`
	DividendStartYear            Float `json:"Dividend Start Year"`
	YieldOnCostPct10YMedian      Float `json:"Yield-on-Cost % (10y Median)"`
	Forward12MDividend           Float `json:"Forward 12M Dividend"`
	YieldOnCostPct10YLow         Float `json:"Yield-on-Cost % (10y Low)"`
	DividendYieldPct10YMedian    Float `json:"Dividend Yield % (10y Median)"`
	Trailing12MonthDividend      Float `json:"Trailing 12-Month Dividend"`
}

type KeyValuation struct {
	EPV Float `json:"Earnings Power Value (EPV)"`
}

// KeyPrice holds current price, total returns and volumes.
type KeyPrice struct {
	FiftyDaySMA                           Float `json:"50-Day SMA"`
	Beta                                  Float `json:"Beta"`
	ThreeMonthRelativeToSPTotalReturnPct  Float `json:"3-Month Relative to S&P Total Return %"`
	Float                                 Float `json:"Float"`
	SixMonthTotalReturnPct                Float `json:"6-Month Total Return %"`
	ThreeYearAnnualizedTotalReturnPct     Float `json:"3-Year Annualized Total Return %"`
	DaysChange                            Float `json:"Day's Change"`
	OneMonthRelativeToSPTotalReturnPct    Float `json:"1-Month Relative to S&P Total Return %"`
	TwelveMonthRelativeToSPTotalReturnPct Float `json:"12-Month Relative to S&P Total Return %"`
	Price3YHigh                           Float `json:"Price (3y High)"`
	OneMonthTotalReturnPct                Float `json:"1-Month Total Return %"`
	YTDRelativeToSPTotalReturnPct         Float `json:"YTD Relative to S&P Total Return %"`
	DaysOpen                              Float `json:"Day's Open"`
	FourteenDayRSI                        Float `json:"14-Day RSI"`
	TwelveMonthTotalReturnPct             Float `json:"12-Month Total Return %"`
	SixMonthPriceIndex                    Float `json:"6-Month Price Index"`
	Price5YHigh                           Float `json:"Price (5y High)"`
	Price52WHigh                          Float `json:"Price (52w High)"`
	Total2MonthAverageTradeVolume         Float `json:"Total 2-Month Average Trade Volume"`
	SixMonthRelativeToSPTotalReturnPct    Float `json:"6-Month Relative to S&P Total Return %"`
	FiveYearAnnualizedTotalReturnPct      Float `json:"5-Year Annualized Total Return %"`
	TenYearAnnualizedTotalReturnPct       Float `json:"10-Year Annualized Total Return %"`
	Price52WLow                           Float `json:"Price (52w Low)"`
	OneWeekTotalReturnPct                 Float `json:"1-Week Total Return %"`
	AvgDailyTradeVolume2Months            Float `json:"Avg Daily Trade Volume (2 Months)"`
	Price10YLow                           Float `json:"Price (10y Low)"`
	ThreeMonthTotalReturnPct              Float `json:"3-Month Total Return %"`
	Price5YLow                            Float `json:"Price (5y Low)"`
	TwoHundredDaySMA                      Float `json:"200-Day SMA"`
	DaysVolume                            Float `json:"Day's Volume"`
	Price3YLow                            Float `json:"Price (3y Low)"`
	TwentyDaySMA                          Float `json:"20-Day SMA"`
	DaysLow                               Float `json:"Day's Low"`
	Price10YHigh                          Float `json:"Price (10y High)"`
	Volatility                            Float `json:"Volatility"`
	YTDTotalReturnPct                     Float `json:"YTD Total Return %"`
	TotalDailyTradeVolume                 Float `json:"Total Daily Trade Volume"`
	DaysHigh                              Float `json:"Day's High"`
	OneWeekRelativeToSPTotalReturnPct     Float `json:"1-Week Relative to S&P Total Return %"`
}

type KeyQuality struct {
	PredictabilityRank Float `json:"Predictability Rank"`
}

// KeyFundamental is a mix of TTM figures, scores and general company info.
type KeyFundamental struct {
	ReturnOnTangibleEquity10YMedian            Float `json:"Return-on-Tangible-Equity (10y Median)"`
	PiotroskiFScore10YLow                      Float `json:"Piotroski F-Score (10y Low)"`
	SalesM                                     Float `json:"Sales (M)"`
	InterestCoverage10YMedian                  Float `json:"Interest Coverage (10y Median)"`
	TotalPayoutYieldPct                        Float `json:"Total Payout Yield %"`
	ReturnOnTangibleEquity                     Float `json:"Return-on-Tangible-Equity"`
	EnterpriseValueMillionUSD                  Float `json:"Enterprise Value ($M)"`
	ProbabilityOfFinancialDistressPct          Float `json:"Probability of Financial Distress (%)"`
	EstimatedSalesOfNextFyM                    Float `json:"Estimated Sales of Next FY (M)"`
	ROAPct                                     Float `json:"ROA %"`
	Trailing12MonthPretaxIncome                Float `json:"Trailing 12-Month Pretax Income"`
	ThreeYearAverageShareBuybackRatio10YMedian Float `json:"3-Year Average Share Buyback Ratio (10y Median)"`
	AltmanZScore10YLow                         Float `json:"Altman Z-Score (10y Low)"`
	WarningSignsMedium                         Float `json:"Warning Signs (Medium)"`
	WarningSignsSevere                         Float `json:"Warning Signs (Severe)"`
	CurrentRatio10YHigh                        Float `json:"Current Ratio (10y High)"`
	Trailing12MonthEBIT                        Float `json:"Trailing 12-Month EBIT"`
	GrossProfitToTangibleAsset                 Float `json:"Gross-Profit-to-Tangible-Asset"`
	DebtToEquity10YLow                         Float `json:"Debt-to-Equity (10y Low)"`
	MostRecentFinancialUpdate                  Float `json:"Most Recent Financial Update"`
	NumOfAnalystFollowing                      Float `json:"Num of Analyst Following"`
	InstitutionSharesHeld                      Float `json:"Institution Shares Held"`
	HeadquarterCountry                         Float `json:"Headquarter Country"`
	ROEPct                                     Float `json:"ROE %"`
	ThreeYearAverageShareBuybackRatio10YHigh   Float `json:"3-Year Average Share Buyback Ratio (10y High)"`
	PiotroskiFScore10YMedian                   Float `json:"Piotroski F-Score (10y Median)"`
	ROAPct10YHigh                              Float `json:"ROA % (10y High)"`
	DebtToEquity10YMedian                      Float `json:"Debt-to-Equity (10y Median)"`
	Trailing12MonthEPS                         Float `json:"Trailing 12-Month EPS"`
	DaysPayable                                Float `json:"Days Payable"`
	GoodwillToAsset                            Float `json:"Goodwill-to-Asset"`
	DebtToEquity10YHigh                        Float `json:"Debt-to-Equity (10y High)"`
	ROEPct5YMedian                             Float `json:"ROE % (5y Median)"`
	DaysPayable10YHigh                         Float `json:"Days Payable (10y High)"`
	DebtToEBITDA10YMedian                      Float `json:"Debt-to-EBITDA (10y Median)"`
	DaysInventory10YHigh                       Float `json:"Days Inventory (10y High)"`
	WACCPct                                    Float `json:"WACC %"`
	CurrentRatio10YLow                         Float `json:"Current Ratio (10y Low)"`
	DebtToEBITDA10YHigh                        Float `json:"Debt-to-EBITDA (10y High)"`
	DebtToRevenue                              Float `json:"Debt-to-Revenue"`
	FinancialStrength                          Float `json:"Financial Strength"`
	MarketCapMillionUSD                        Float `json:"Market Cap ($M)"`
	BeneishMScore10YLow                        Float `json:"Beneish M-Score (10y Low)"`
	DaysSalesOutstanding10YLow                 Float `json:"Days Sales Outstanding (10y Low)"`
	CurrentRatio                               Float `json:"Current Ratio"`
	CashToDebt10YHigh                          Float `json:"Cash-to-Debt (10y High)"`
	TenYearShareBuybackRate                    Float `json:"10-Year Share Buyback Rate"`
	LatestQuarterEnd                           Float `json:"Latest Quarter End"`
	OneYearShareBuybackRate                    Float `json:"1-Year Share Buyback Rate"`
	ROCJoelGreenblattPct10YLow                 Float `json:"ROC (Joel Greenblatt) % (10y Low)"`
	ROICPct                                    Float `json:"ROIC %"`
	NextEarningsDate                           Float `json:"Next Earnings Date"`
	TaxRatePct5YMedian                         Float `json:"Tax Rate % (5y Median)"`
	BeneishMScore                              Float `json:"Beneish M-Score"`
	EquityToAsset10YHigh                       Float `json:"Equity-to-Asset (10y High)"`
	TotalAssetsCurrent                         Float `json:"Total Assets (Current)"`
	ROEPct10YHigh                              Float `json:"ROE % (10y High)"`
	TotalPayoutRatio                           Float `json:"Total Payout Ratio"`
	Trailing12MonthEPSWithoutNRI               Float `json:"Trailing 12-Month EPS without NRI"`
	DaysSalesOutstanding10YHigh                Float `json:"Days Sales Outstanding (10y High)"`
	InsiderOwnership                           Float `json:"Insider Ownership"`
	EPSWithoutNRI                              Float `json:"EPS without NRI"`
	Trailing12MonthEBITDA                      Float `json:"Trailing 12-Month EBITDA"`
	CashToDebt10YLow                           Float `json:"Cash-to-Debt (10y Low)"`
	QuickRatio10YHigh                          Float `json:"Quick Ratio (10y High)"`
	NextExDividendDate                         Float `json:"Next Ex-Dividend Date"`
	ROAPct5YMedian                             Float `json:"ROA % (5y Median)"`
	ROEPct10YLow                               Float `json:"ROE % (10y Low)"`
	EPS                                        Float `json:"EPS"`
	ReturnOnTangibleAsset10YLow                Float `json:"Return-on-Tangible-Asset (10y Low)"`
	BeneishMScore10YHigh                       Float `json:"Beneish M-Score (10y High)"`
	SellingGeneralAdminExpense                 Float `json:"Selling, General, & Admin. Expense"`
	IPODate                                    Float `json:"IPO Date"`
	InsiderSharesOwned                         Float `json:"Insider Shares Owned"`
	QuickRatio10YMedian                        Float `json:"Quick Ratio (10y Median)"`
	ScaledNetOperatingAssets                   Float `json:"Scaled Net Operating Assets"`
	AltmanZScore10YMedian                      Float `json:"Altman Z-Score (10y Median)"`
	DaysSalesOutstanding                       Float `json:"Days Sales Outstanding"`
	SloanRatioPct                              Float `json:"Sloan Ratio %"`
	FiveYearShareBuybackRate                   Float `json:"5-Year Share Buyback Rate"`
	DaysInventory10YMedian                     Float `json:"Days Inventory (10y Median)"`
	ROCROIC5YMedian                            Float `json:"ROC (ROIC) (5y Median)"`
	ReturnOnTangibleEquity10YLow               Float `json:"Return-on-Tangible-Equity (10y Low)"`
	BeneishMScore10YMedian                     Float `json:"Beneish M-Score (10y Median)"`
	CashToDebt10YMedian                        Float `json:"Cash-to-Debt (10y Median)"`
	ROCROIC10YMedian                           Float `json:"ROC (ROIC) (10y Median)"`
	PiotroskiFScore                            Float `json:"Piotroski F-Score"`
	ROEPctAdjustedToBookValue                  Float `json:"ROE % Adjusted to Book Value"`
	EquityToAsset10YMedian                     Float `json:"Equity-to-Asset (10y Median)"`
	RevenuePredictibility                      Float `json:"Revenue predictibility"`
	EnterpriseValueCurrentM                    Float `json:"Enterprise Value (Current M)"`
	InterestCoverage10YLow                     Float `json:"Interest Coverage (10y Low)"`
	Currency                                   Float `json:"Currency"`
	EquityToAsset10YLow                        Float `json:"Equity-to-Asset (10y Low)"`
	ReturnOnTangibleAsset                      Float `json:"Return-on-Tangible-Asset"`
	ReturnOnTangibleEquity10YHigh              Float `json:"Return-on-Tangible-Equity (10y High)"`
	QuickRatio10YLow                           Float `json:"Quick Ratio (10y Low)"`
	DaysPayable10YMedian                       Float `json:"Days Payable (10y Median)"`
	NetCashPerShare                            Float `json:"Net Cash per Share"`
	ROCJoelGreenblattPct10YHigh                Float `json:"ROC (Joel Greenblatt) % (10y High)"`
	GrossProfitToAssetPct                      Float `json:"Gross-Profit-to-Asset %"`
	Trailing12MonthRevenue                     Float `json:"Trailing 12-Month Revenue"`
	PrimaryExchange                            Float `json:"Primary Exchange"`
	DebtToAsset                                Float `json:"Debt-to-Asset"`
	ROICPct10YLow                              Float `json:"ROIC % (10y Low)"`
	ReturnOnTangibleAsset10YHigh               Float `json:"Return-on-Tangible-Asset (10y High)"`
	ROAPct10YLow                               Float `json:"ROA % (10y Low)"`
	PredictabilityRank                         Float `json:"Predictability Rank"`
	CashFlowFromOperationsDirectMethod         Float `json:"Cash Flow from Operations Direct Method"`
	EquityToAsset                              Float `json:"Equity-to-Asset"`
	PrimarySymbol                              Float `json:"Primary Symbol"`
	PiotroskiFScore10YHigh                     Float `json:"Piotroski F-Score (10y High)"`
	DaysInventory10YLow                        Float `json:"Days Inventory (10y Low)"`
	DaysPayable10YLow                          Float `json:"Days Payable (10y Low)"`
	InventoryToRevenue                         Float `json:"Inventory-to-Revenue"`
	BookValuePerShare                          Float `json:"Book Value per Share"`
	CashToDebt                                 Float `json:"Cash-to-Debt"`
	GoodSigns                                  Float `json:"Good Signs"`
	InstitutionalOwnership                     Float `json:"Institutional Ownership"`
	CashConversionCycle                        Float `json:"Cash Conversion Cycle"`
	ROCJoelGreenblattPct5YMedian               Float `json:"ROC (Joel Greenblatt) % (5y Median)"`
	RelatedCompany                             Float `json:"Related Company"`
	ROCJoelGreenblattPct                       Float `json:"ROC (Joel Greenblatt) %"`
	ThreeYearAverageShareBuybackRatio10YLow    Float `json:"3-Year Average Share Buyback Ratio (10y Low)"`
	EffectiveInterestRateOnDebtPct             Float `json:"Effective Interest Rate on Debt %"`
	NextDividendAmount                         Float `json:"Next Dividend Amount"`
	ROEPct10YMedian                            Float `json:"ROE % (10y Median)"`
	OptionableStock                            Float `json:"Optionable Stock"`
	Profitability                              Float `json:"Profitability"`
	ShareClassDescription                      Float `json:"Share Class Description"`
	Trailing12MonthGrossProfit                 Float `json:"Trailing 12-Month Gross Profit"`
	ROCROICPct                                 Float `json:"ROC (ROIC) %"`
	AltmanZScore                               Float `json:"Altman Z-Score"`
	QuickRatio                                 Float `json:"Quick Ratio"`
	CurrencyForEstimatedValue                  Float `json:"Currency for Estimated Value"`
	CurrentRatio10YMedian                      Float `json:"Current Ratio (10y Median)"`
	DaysSalesOutstanding10YMedian              Float `json:"Days Sales Outstanding (10y Median)"`
	ROAPct10YMedian                            Float `json:"ROA % (10y Median)"`
	ROCJoelGreenblattPct10YMedian              Float `json:"ROC (Joel Greenblatt) % (10y Median)"`
	InterestCoverage                           Float `json:"Interest Coverage"`
	ThreeYearShareBuybackRate                  Float `json:"3-Year Share Buyback Rate"`
	ReturnOnTangibleAsset10YMedian             Float `json:"Return-on-Tangible-Asset (10y Median)"`
	DebtToEBITDA                               Float `json:"Debt-to-EBITDA"`
	DebtToEquity                               Float `json:"Debt-to-Equity"`
	SIC                                        Float `json:"SIC"`
	AltmanZScore10YHigh                        Float `json:"Altman Z-Score (10y High)"`
	DebtToEBITDA10YLow                         Float `json:"Debt-to-EBITDA (10y Low)"`
	DaysInventory                              Float `json:"Days Inventory"`
	InterestCoverage10YHigh                    Float `json:"Interest Coverage (10y High)"`
	NAICS                                      Float `json:"NAICS"`
	ROICPct10YHigh                             Float `json:"ROIC % (10y High)"`
}

// AnalystEstimates is a document of Client.AnalystEstimate.
type AnalystEstimates struct {
	Annual  AnnualAnalystEstimate    `json:"annual"`
	Quarter QuarterlyAnalystEstimate `json:"quarter"`
}

type AnnualAnalystEstimate struct {
	LongTermGrowthRateMean Float    `json:"long_term_growth_rate_mean"`
	Date                   []string `json:"date"`
	RevenueEstimate        []Float  `json:"revenue_estimate"`
	EPSNRIEstimate         []Float  `json:"eps_nri_estimate"`
	PerShareEPSEstimate    []Float  `json:"per_share_eps_estimate"`
	EBITEstimate           []Float  `json:"ebit_estimate"`
	EBITDAEstimate         []Float  `json:"ebitda_estimate"`
	DividendEstimate       []Float  `json:"dividend_estimate"`
}

type QuarterlyAnalystEstimate struct {
	LongTermGrowthRateMean Float    `json:"long_term_growth_rate_mean"`
	Date                   []string `json:"date"`
	RevenueEstimate        []Float  `json:"revenue_estimate"`
	EPSNRIEstimate         []Float  `json:"eps_nri_estimate"`
	PerShareEPSEstimate    []Float  `json:"per_share_eps_estimate"`
	EBITEstimate           []Float  `json:"ebit_estimate"`
	EBITDAEstimate         []Float  `json:"ebitda_estimate"`
	DividendEstimate       []Float  `json:"dividend_estimate"`
	PETTMEstimate          []Float  `json:"pettm_estimate"`
}
