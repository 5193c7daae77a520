package client

import "encoding/json"

// FinancialData is a document of Client.Financials.
type FinancialData struct {
	Financials DataPeriods `json:"financials"`
}

// DataPeriods holds annual and quarterly series. Every series of PeriodData
// has one value per fiscal period, in the same order as FiscalYear.
type DataPeriods struct {
	FinancialTemplateParameters FinancialTemplateParameters `json:"financial_template_parameters"`
	Annuals                     PeriodData                  `json:"annuals"`
	Quarterly                   PeriodData                  `json:"quarterly"`
}

// FinancialTemplateParameters describes which industry template was used
// for building the statements. It's the reason why some fields of statements
// are absent.
type FinancialTemplateParameters struct {
	IndTemplate string `json:"ind_template"`
	Reits       string `json:"REITs"`
	IsDirect    string `json:"IsDirect"`
}

type PeriodData struct {
	FiscalYear          []string            `json:"Fiscal Year"`
	BalanceSheet        BalanceSheet        `json:"balance_sheet"`
	PerShareDataArray   PerShareData        `json:"per_share_data_array"`
	CashflowStatement   CashFlowStatement   `json:"cashflow_statement"`
	IncomeStatement     IncomeStatement     `json:"income_statement"`
	ValuationRatios     ValuationRatios     `json:"valuation_ratios"`
	CommonSizeRatios    CommonSizeRatios    `json:"common_size_ratios"`
	ValuationAndQuality ValuationAndQuality `json:"valuation_and_quality"`
	Preliminary         []Float             `json:"Preliminary"`
}

// BalanceSheet fields, which exist only in some templates, are nil when
// absent. Comments name the templates.
type BalanceSheet struct {
	AccountsPayable                         []Float `json:"Accounts Payable,omitempty"` // non-financials
	AccountsPayableAndAccruedExpense        []Float `json:"Accounts Payable & Accrued Expense"`
	AccountsReceivable                      []Float `json:"Accounts Receivable"`
	AccumulatedDepreciation                 []Float `json:"Accumulated Depreciation,omitempty"` // non-financials
	AccumulatedOtherComprehensiveIncome     []Float `json:"Accumulated other comprehensive income (loss)"`
	AdditionalPaidInCapital                 []Float `json:"Additional Paid-In Capital"`
	AllowanceForLoansAndLeaseLosses         []Float `json:"Allowance For Loans And Lease Losses,omitempty"` // banks
	BuildingsAndImprovements                []Float `json:"Buildings And Improvements,omitempty"`           // non-financials
	CashAndCashEquivalents                  []Float `json:"Cash And Cash Equivalents,omitempty"`
	CashCashEquivalentsMarketableSecurities []Float `json:"Cash, Cash Equivalents, Marketable Securities,omitempty"` // non-financials
	CommonStock                             []Float `json:"Common Stock"`
	ConstructionInProgress                  []Float `json:"Construction In Progress,omitempty"`           // non-financials
	CurrentAccruedExpense                   []Float `json:"Current Accrued Expense,omitempty"`            // non-financials
	CurrentDeferredRevenue                  []Float `json:"Current Deferred Revenue,omitempty"`           // non-banks
	CurrentDeferredTaxesLiabilities         []Float `json:"Current Deferred Taxes Liabilities,omitempty"` // non-banks
	DebtToEquity                            []Float `json:"Debt-to-Equity"`
	DeferredPolicyAcquisitionCosts          []Float `json:"Deferred Policy Acquisition Costs,omitempty"` // insurers
	DeferredTaxAndRevenue                   []Float `json:"Deferred Tax And Revenue,omitempty"`          // non-banks
	EquityInvestments                       []Float `json:"Equity Investments,omitempty"`                // insurers
	EquityToAsset                           []Float `json:"Equity-to-Asset"`
	FixedMaturityInvestments                []Float `json:"Fixed Maturity Investment,omitempty"` // insurers
	FuturePolicyBenefits                    []Float `json:"Future Policy Benefits,omitempty"`    // insurers
	Goodwill                                []Float `json:"Goodwill"`
	GrossLoan                               []Float `json:"Gross Loan,omitempty"`                          // banks
	GrossPropertyPlantAndEquipment          []Float `json:"Gross Property, Plant and Equipment,omitempty"` // non-financials
	IntangibleAssets                        []Float `json:"Intangible Assets"`
	InventoriesFinishedGoods                []Float `json:"Inventories, Finished Goods,omitempty"`             // non-financials
	InventoriesAdjustments                  []Float `json:"Inventories, Inventories Adjustments,omitempty"`    // non-financials
	InventoriesOther                        []Float `json:"Inventories, Other,omitempty"`                      // non-financials
	InventoriesRawMaterialsAndComponents    []Float `json:"Inventories, Raw Materials & Components,omitempty"` // non-financials
	InventoriesWorkInProcess                []Float `json:"Inventories, Work In Process,omitempty"`            // non-financials
	InvestmentsAndAdvances                  []Float `json:"Investments And Advances,omitempty"`                // non-financials
	LandAndImprovements                     []Float `json:"Land And Improvements,omitempty"`                   // non-financials
	LoansReceivable                         []Float `json:"Loans Receivable,omitempty"`                        // non-financials
	LongTermCapitalLeaseObligation          []Float `json:"Long-Term Capital Lease Obligation,omitempty"`      // non-financials
	LongTermDebt                            []Float `json:"Long-Term Debt,omitempty"`                          // non-financials
	LongTermDebtAndCapitalLeaseObligation   []Float `json:"Long-Term Debt & Capital Lease Obligation"`
	MachineryFurnitureEquipment             []Float `json:"Machinery, Furniture, Equipment,omitempty"` // non-financials
	MarketableSecurities                    []Float `json:"Marketable Securities,omitempty"`           // non-financials
	MinorityInterest                        []Float `json:"Minority Interest"`
	MoneyMarketInvestments                  []Float `json:"Money Market Investments,omitempty"`        // banks
	NetLoan                                 []Float `json:"Net Loan,omitempty"`                        // financials
	NoncurrentDeferredLiabilities           []Float `json:"NonCurrent Deferred Liabilities,omitempty"` // non-banks
	NotesReceivable                         []Float `json:"Notes Receivable"`
	OtherAssetsForBanks                     []Float `json:"Other Assets for Banks,omitempty"`               // banks
	OtherAssetsForInsuranceCompanies        []Float `json:"Other Assets for Insurance Companies,omitempty"` // banks, insurers
	OtherCurrentAssets                      []Float `json:"Other Current Assets,omitempty"`                 // non-financials
	OtherCurrentLiabilities                 []Float `json:"Other Current Liabilities,omitempty"`            // non-financials
	OtherCurrentPayables                    []Float `json:"Other Current Payables,omitempty"`               // non-financials
	OtherCurrentReceivables                 []Float `json:"Other Current Receivables"`
	OtherGrossPPE                           []Float `json:"Other Gross PPE,omitempty"`                           // non-financials
	OtherLiabilitiesForBanks                []Float `json:"Other Liabilities for Banks,omitempty"`               // banks
	OtherLiabilitiesForInsuranceCompanies   []Float `json:"Other Liabilities for Insurance Companies,omitempty"` // insurers
	OtherLongTermAssets                     []Float `json:"Other Long Term Assets,omitempty"`                    // non-financials
	OtherLongTermLiabilities                []Float `json:"Other Long-Term Liabilities,omitempty"`               // non-financials
	OtherStockholdersEquity                 []Float `json:"Other Stockholders Equity"`
	PensionAndRetirementBenefit             []Float `json:"Pension And Retirement Benefit,omitempty"` // non-financials
	PolicyholderFunds                       []Float `json:"Policyholder Funds,omitempty"`             // insurers
	PreferredStock                          []Float `json:"Preferred Stock"`
	PropertyPlantAndEquipment               []Float `json:"Property, Plant and Equipment"`
	RetainedEarnings                        []Float `json:"Retained Earnings"`
	SecuritiesAndInvestments                []Float `json:"Securities & Investments,omitempty"`            // banks
	ShortTermCapitalLeaseObligation         []Float `json:"Short-Term Capital Lease Obligation,omitempty"` // non-financials
	ShortTermDebt                           []Float `json:"Short-Term Debt,omitempty"`                     // non-financials
	ShortTermDebtAndCapitalLeaseObligation  []Float `json:"Short-Term Debt & Capital Lease Obligation"`
	ShortTermInvestments                    []Float `json:"Short-term investments,omitempty"` // insurers
	TotalAssets                             []Float `json:"Total Assets"`
	TotalCurrentAssets                      []Float `json:"Total Current Assets,omitempty"`      // non-financials
	TotalCurrentLiabilities                 []Float `json:"Total Current Liabilities,omitempty"` // non-financials
	TotalDeposits                           []Float `json:"Total Deposits,omitempty"`            // banks
	TotalEquity                             []Float `json:"Total Equity"`
	TotalInventories                        []Float `json:"Total Inventories,omitempty"` // non-financials
	TotalLiabilities                        []Float `json:"Total Liabilities"`
	TotalLongTermAssets                     []Float `json:"Total Long-Term Assets,omitempty"`      // non-financials
	TotalLongTermLiabilities                []Float `json:"Total Long-Term Liabilities,omitempty"` // non-financials
	TotalReceivables                        []Float `json:"Total Receivables"`
	TotalStockholdersEquity                 []Float `json:"Total Stockholders Equity"`
	TotalTaxPayable                         []Float `json:"Total Tax Payable,omitempty"` // non-financials
	TreasuryStock                           []Float `json:"Treasury Stock"`
	UnearnedIncome                          []Float `json:"Unearned Income,omitempty"`            // banks
	UnearnedPremiums                        []Float `json:"Unearned Premiums,omitempty"`          // insurers
	UnpaidLossAndLossRevenue                []Float `json:"Unpaid Loss & Loss Reserve,omitempty"` // insurers
}

type PerShareData struct {
	BookValue          []Float `json:"Book Value per Share"`
	Dividends          []Float `json:"Dividends per Share"`
	EarningsDiluted    []Float `json:"Earnings per Share (Diluted)"`
	EBIT               []Float `json:"EBIT per Share,omitempty"`   // non-banks
	EBITDA             []Float `json:"EBITDA per Share,omitempty"` // non-banks
	EPSWithoutNRI      []Float `json:"EPS without NRI"`
	FFO                []Float `json:"FFO per Share,omitempty"` // REITs
	FreeCashFlow       []Float `json:"Free Cash Flow per Share"`
	MonthEndStockPrice []Float `json:"Month End Stock Price"`
	OperatingCashFlow  []Float `json:"Operating Cash Flow per Share"`
	Cash               []Float `json:"Cash per Share"`
	OwnerEarnings      []Float `json:"Owner Earnings per Share (TTM)"`
	Revenue            []Float `json:"Revenue per Share"`
	TangibleBook       []Float `json:"Tangible Book per Share"`
	TotalDebt          []Float `json:"Total Debt per Share"`
}

// CashFlowStatement has fields of direct and indirect methods, only one set
// of them is present.
type CashFlowStatement struct {
	AllTaxesPaid                                []Float `json:"All Taxes Paid,omitempty"`                                     // financials, direct method
	CashPaidForInsuranceActivities              []Float `json:"Cash Paid for Insurance Activities,omitempty"`                 // insurers, direct method
	CashPayments                                []Float `json:"Cash Payments,omitempty"`                                      // direct method
	CashPaymentsForDepositsByBanksAndCustomers  []Float `json:"Cash Payments for Deposits by Banks and Customers,omitempty"`  // banks, direct method
	CashPaymentsForLoans                        []Float `json:"Cash Payments for Loans,omitempty"`                            // banks, direct method
	CashReceiptsFromDepositsByBanksAndCustomers []Float `json:"Cash Receipts from Deposits by Banks and Customers,omitempty"` // banks, direct method
	CashReceiptsFromOperatingActivities         []Float `json:"Cash Receipts from Operating Activities,omitempty"`            // direct method
	CashReceiptsFromSecuritiesRelatedActivities []Float `json:"Cash Receipts from Securities Related Activities,omitempty"`   // banks, direct method
	CashReceiptsFromTaxRefunds                  []Float `json:"Cash Receipts from Tax Refunds,omitempty"`                     // financials, direct method
	CashReceivedFromInsuranceActivities         []Float `json:"Cash Received from Insurance Activities,omitempty"`            // insurers, direct method
	DividendsPaid                               []Float `json:"Dividends Paid,omitempty"`                                     // non-financials, direct method
	DividendsReceived                           []Float `json:"Dividends Received,omitempty"`                                 // non-financials, direct method
	InterestAndCommissionPaid                   []Float `json:"Interest and Commission Paid,omitempty"`                       // banks, direct method
	InterestPaid                                []Float `json:"Interest Paid,omitempty"`                                      // non-financials, direct method
	InterestReceived                            []Float `json:"Interest Received,omitempty"`                                  // non-financials, direct method
	OtherCashPaymentsFromOperatingActivities    []Float `json:"Other Cash Payments from Operating Activities,omitempty"`      // banks, direct method
	OtherCashReceiptsFromOperatingActivities    []Float `json:"Other Cash Receipts from Operating Activities,omitempty"`      // direct method
	IssuanceOfDebt                              []Float `json:"Issuance of Debt,omitempty"`
	PaymentsOfDebt                              []Float `json:"Payments of Debt,omitempty"`
	PaymentsOnBehalfOfEmployees                 []Float `json:"Payments on Behalf of Employees,omitempty"`                    // direct method
	PaymentsToSuppliersForGoodsAndServices      []Float `json:"Payments to Suppliers for Goods and Services,omitempty"`       // non-financials, direct method
	ReceiptsFromCustomers                       []Float `json:"Receipts from Customers,omitempty"`                            // non-financials, direct method
	ReceiptsFromGovernmentGrants                []Float `json:"Receipts from Government Grants,omitempty"`                    // non-financials, direct method
	TaxesRefundPaid                             []Float `json:"Taxes Refund Paid,omitempty"`                                  // non-financials, direct method
	AssetImpairmentCharge                       []Float `json:"Asset Impairment Charge,omitempty"`                            // indirect method
	CashFromDiscontinuedOperatingActivities     []Float `json:"Cash from Discontinued Operating Activities,omitempty"`        // non-insurance, indirect method
	ChangeInInventory                           []Float `json:"Change In Inventory,omitempty"`                                // indirect method
	ChangeInOtherWorkingCapital                 []Float `json:"Change In Other Working Capital,omitempty"`                    // indirect method
	ChangeInPayablesAndAccruedExpense           []Float `json:"Change In Payables And Accrued Expense,omitempty"`             // indirect method
	ChangeInPrepaidAssets                       []Float `json:"Change In Prepaid Assets,omitempty"`                           // indirect method
	ChangeInReceivables                         []Float `json:"Change In Receivables,omitempty"`                              // indirect method
	ChangeInWorkingCapital                      []Float `json:"Change In Working Capital,omitempty"`                          // indirect method
	DeferredTax                                 []Float `json:"Deferred Tax,omitempty"`                                       // indirect method
	DepreciationDepletionAndAmortization        []Float `json:"Cash Flow Depreciation, Depletion and Amortization,omitempty"` // indirect method
	NetIncomeFromContinuingOperations           []Float `json:"Net Income From Continuing Operations,omitempty"`              // indirect method
	StockBasedCompensation                      []Float `json:"Stock Based Compensation,omitempty"`                           // indirect method
	CapitalExpenditure                          []Float `json:"Capital Expenditure"`
	CashFlowForDividends                        []Float `json:"Cash Flow for Dividends"`
	CashFlowFromFinancing                       []Float `json:"Cash Flow from Financing"`
	CashFlowFromInvesting                       []Float `json:"Cash Flow from Investing"`
	CashFlowFromOperations                      []Float `json:"Cash Flow from Operations"`
	CashFlowFromOthers                          []Float `json:"Cash Flow from Others"`
	CashFromDiscontinuedInvestingActivities     []Float `json:"Cash From Discontinued Investing Activities"`
	CashFromOtherInvestingActivities            []Float `json:"Cash From Other Investing Activities"`
	EffectOfExchangeRateChanges                 []Float `json:"Effect of Exchange Rate Changes"`
	FFO                                         []Float `json:"FFO,omitempty"` // REITs
	FreeCashFlow                                []Float `json:"Free Cash Flow"`
	IssuanceOfStock                             []Float `json:"Issuance of Stock"`
	NetChangeInCash                             []Float `json:"Net Change in Cash"`
	NetIntangiblesPurchaseAndSale               []Float `json:"Net Intangibles Purchase And Sale"`
	NetIssuanceOfDebt                           []Float `json:"Net Issuance of Debt"`
	NetIssuanceOfPreferredStock                 []Float `json:"Net Issuance of Preferred Stock"`
	OtherFinancing                              []Float `json:"Other Financing"`
	PurchaseOfBusiness                          []Float `json:"Purchase Of Business"`
	PurchaseOfInvestment                        []Float `json:"Purchase Of Investment"`
	PurchaseOfPropertyPlantEquipment            []Float `json:"Purchase Of Property, Plant, Equipment"`
	RepurchaseOfStock                           []Float `json:"Repurchase of Stock"`
	SaleOfBusiness                              []Float `json:"Sale Of Business"`
	SaleOfInvestment                            []Float `json:"Sale Of Investment"`
	SaleOfPropertyPlantEquipment                []Float `json:"Sale Of Property, Plant, Equipment"`
}

// IncomeStatement is an income statement for every fiscal period.
type IncomeStatement struct {
	CostOfGoodsSold                      []Float `json:"Cost of Goods Sold,omitempty"`      // non-financials
	CreditLossesProvision                []Float `json:"Credit Losses Provision,omitempty"` // banks
	DepreciationDepletionAndAmortization []Float `json:"Depreciation, Depletion and Amortization"`
	EBIT                                 []Float `json:"EBIT,omitempty"`   // non-banks
	EBITDA                               []Float `json:"EBITDA,omitempty"` // non-banks
	EPSBasic                             []Float `json:"EPS (Basic)"`
	EPSDiluted                           []Float `json:"EPS (Diluted)"`
	FeesAndOtherIncome                   []Float `json:"Fees and Other Income,omitempty"` // insurers
	GrossMarginPct                       []Float `json:"Gross Margin %,omitempty"`        // non-financials
	GrossProfit                          []Float `json:"Gross Profit,omitempty"`          // non-financials
	InterestExpense                      []Float `json:"Interest Expense"`
	InterestIncome                       []Float `json:"Interest Income"`
	NetIncome                            []Float `json:"Net Income"`
	NetIncomeContinuingOperations        []Float `json:"Net Income (Continuing Operations)"`
	NetIncomeDiscontinuedOperations      []Float `json:"Net Income (Discontinued Operations)"`
	NetInterestIncome                    []Float `json:"Net Interest Income,omitempty"`   // non-insurers
	NetInvestmentIncome                  []Float `json:"Net Investment Income,omitempty"` // insurers
	NetMargin                            []Float `json:"Net Margin %"`
	NonInterestIncome                    []Float `json:"Non Interest Income,omitempty"`              // banks
	NetPolicyholderBenefitsClaims        []Float `json:"Net Policyholder Benefits/Claims,omitempty"` // insurers
	OperatingIncome                      []Float `json:"Operating Income,omitempty"`                 // non-financials
	OperatingMargin                      []Float `json:"Operating Margin %,omitempty"`               // non-financials
	OtherIncome                          []Float `json:"Other Income (Expense)"`
	OtherIncomeMinorityInterest          []Float `json:"Other Income (Minority Interest)"`
	OtherNoninterestExpense              []Float `json:"Other Noninterest Expense,omitempty"`  // banks
	OtherOperatingExpense                []Float `json:"Other Operating Expense,omitempty"`    // non-financials
	PolicyAcquisitionExpense             []Float `json:"Policy Acquisition Expense,omitempty"` // insurers
	PreTaxIncome                         []Float `json:"Pretax Income"`
	PrefferredDividends                  []Float `json:"Preferred Dividends"`
	ResearchAndDevelopment               []Float `json:"Research & Development,omitempty"` // non-financials
	Revenue                              []Float `json:"Revenue"`
	SellingGeneralAndAdminExpense        []Float `json:"Selling, General, & Admin. Expense"`
	SharesOutstandingDilutedAverage      []Float `json:"Shares Outstanding (Diluted Average)"`
	SpecialCharges                       []Float `json:"Special Charges,omitempty"` // banks
	TaxProvision                         []Float `json:"Tax Provision"`
	TaxRatePct                           []Float `json:"Tax Rate %"`
	TotalExpenses                        []Float `json:"Total Expenses,omitempty"`            // insurers
	TotalNoninterestExpense              []Float `json:"Total Noninterest Expense,omitempty"` // banks
	TotalOperatingExpense                []Float `json:"Total Operating Expense,omitempty"`   // non-financials
	TotalPremiumsEarned                  []Float `json:"Total Premiums Earned,omitempty"`     // insurers
}

type ValuationRatios struct {
	DividendYield            []Float `json:"Dividend Yield %"`
	EarningsYield            []Float `json:"Earnings Yield (Joel Greenblatt) %"`
	EVToEBIT                 []Float `json:"EV-to-EBIT,omitempty"`   // non-banks
	EVToEBITDA               []Float `json:"EV-to-EBITDA,omitempty"` // non-banks
	EVToRevenue              []Float `json:"EV-to-Revenue"`
	ForwardRateOfReturn      []Float `json:"Forward Rate of Return (Yacktman) %"`
	PBRatio                  []Float `json:"PB Ratio"`
	PERatio                  []Float `json:"PE Ratio"`
	PERatioWithoutNRI        []Float `json:"PE Ratio without NRI"`
	PEGRatio                 []Float `json:"PEG Ratio"`
	PriceToFFO               []Float `json:"Price-to-FFO,omitempty"` // REITs
	PriceToFreeCashFlow      []Float `json:"Price-to-Free-Cash-Flow"`
	PriceToOperationCashFlow []Float `json:"Price-to-Operating-Cash-Flow"`
	PriceToOwnerEarnings     []Float `json:"Price-to-Owner-Earnings"`
	PriceToTangibleBook      []Float `json:"Price-to-Tangible-Book"`
	PSRatio                  []Float `json:"PS Ratio"`
	ShillerPERatio           []Float `json:"Shiller PE Ratio"`
}

type CommonSizeRatios struct {
	AssetTurnover                  []Float `json:"Asset Turnover"`
	CashConversionCycle            []Float `json:"Cash Conversion Cycle,omitempty"`  // non-financials
	COGSToRevenue                  []Float `json:"COGS-to-Revenue,omitempty"`        // non-financials
	DaysInventory                  []Float `json:"Days Inventory,omitempty"`         // non-financials
	DaysPayable                    []Float `json:"Days Payable,omitempty"`           // non-financials
	DaysSalesOutstanding           []Float `json:"Days Sales Outstanding,omitempty"` // non-financials
	DebtToAsset                    []Float `json:"Debt-to-Asset"`
	LiabilitiesToAssets            []Float `json:"Liabilities-to-Assets"`
	DebtToEquity                   []Float `json:"Debt-to-Equity"`
	DividendPayoutRatio            []Float `json:"Dividend Payout Ratio"`
	DividendPayoutToFFO            []Float `json:"Dividend-Payout-to-FFO,omitempty"` // REITs
	EffectiveInterestRateOnDebtPct []Float `json:"Effective Interest Rate on Debt %"`
	EquityToAsset                  []Float `json:"Equity-to-Asset"`
	FCFMarginPct                   []Float `json:"FCF Margin %"`
	GrossMarginPct                 []Float `json:"Gross Margin %,omitempty"`                    // non-financials
	GrossProfitToAssetPct          []Float `json:"Gross-Profit-to-Asset %,omitempty"`           // non-financials
	InventoryTurnover              []Float `json:"Inventory Turnover,omitempty"`                // non-financials
	InventoryToRevenue             []Float `json:"Inventory-to-Revenue,omitempty"`              // non-financials
	NetInterestMarginBankPct       []Float `json:"Net Interest Margin (Bank Only) %,omitempty"` // banks
	NetMarginPct                   []Float `json:"Net Margin %"`
	OperatingMarginPct             []Float `json:"Operating Margin %,omitempty"` // non-financials
	ReturnOnTangibleAsset          []Float `json:"Return-on-Tangible-Asset"`
	ReturnOnTangibleEquity         []Float `json:"Return-on-Tangible-Equity"`
	ROAPct                         []Float `json:"ROA %"`
	ROCPct                         []Float `json:"ROC (Joel Greenblatt) %,omitempty"` // non-financials
	ROEPct                         []Float `json:"ROE %"`
	ROCEPct                        []Float `json:"ROCE %,omitempty"` // non-financials
	ROICPct                        []Float `json:"ROIC %"`
	ROEPctAdjustedToBookValue      []Float `json:"ROE % Adjusted to Book Value"`
	WACCPct                        []Float `json:"WACC %"`
	CapexToRevenue                 []Float `json:"Capex-to-Revenue"`
}

// Valuation and quality figures. Most of them are market based and have a
// value for every period.
type ValuationAndQuality struct {
	FiveYearEBITDAGrowthRate      []Float  `json:"5-Year EBITDA Growth Rate (Per Share),omitempty"` // non-banks
	AltmanZScore                  []Float  `json:"Altman Z-Score,omitempty"`                        // non-financials
	BeneishMScore                 []Float  `json:"Beneish M-Score"`
	Beta                          []Float  `json:"Beta"`
	BuybackYield                  []Float  `json:"Buyback Yield %"`
	CurrentRatio                  []Float  `json:"Current Ratio,omitempty"` // non-financials
	EarningsPowerValue            []Float  `json:"Earnings Power Value (EPV)"`
	EnterpriceValue               []Float  `json:"Enterprise Value ($M)"`
	FilingDate                    []Float  `json:"Filing Date"`
	ForexRate                     []Float  `json:"Forex Rate"`
	GrahamNumber                  []Float  `json:"Graham Number"`
	HighestStockPrice             []Float  `json:"Highest Stock Price"`
	InterestCoverage              []Float  `json:"Interest Coverage,omitempty"` // non-banks
	IntrinsicValueProjectedFCF    []Float  `json:"Intrinsic Value: Projected FCF"`
	LowestStockPrice              []Float  `json:"Lowest Stock Price"`
	MarketCap                     []Float  `json:"Market Cap"`
	MedianPBValue                 []Float  `json:"Median PB Value,omitempty"`
	MedianPSValue                 []Float  `json:"Median PS Value"`
	MonthEndStockPrice            []Float  `json:"Month End Stock Price"`
	NetCashPerShare               []Float  `json:"Net Cash per Share"`
	NetCurrentAssetValue          []Float  `json:"Net Current Asset Value"`
	NetNetWorkingCapital          []Float  `json:"Net-Net Working Capital"`
	NumberOfEmployees             []Float  `json:"Number of Employees"`
	NumberOfShareholders          []Float  `json:"Number of Shareholders"`
	PeterLynchFairValue           []Float  `json:"Peter Lynch Fair Value"`
	PitroskiFScore                []Float  `json:"Piotroski F-Score,omitempty"` // non-financials
	QuickRatio                    []Float  `json:"Quick Ratio,omitempty"`       // non-financials
	CashRatio                     []Float  `json:"Cash Ratio,omitempty"`
	RestatedFilingDate            []string `json:"Restated Filing Date"`
	EarningsReleaseDate           []string `json:"Earnings Release Date"`
	ScaledNetOperatingAssets      []Float  `json:"Scaled Net Operating Assets"`
	SharesBuybackRatioPct         []Float  `json:"Shares Buyback Ratio %"`
	SharesOutstandingBasicAverage []Float  `json:"Shares Outstanding (Basic Average)"`
	SharesOutstanding             []Float  `json:"Shares Outstanding (EOP)"`
	SloanRatioPct                 []Float  `json:"Sloan Ratio %"`
	YoYEBITDAGrowth               []Float  `json:"YoY EBITDA Growth (%),omitempty"` // non-banks
	YoYEPSGrowth                  []Float  `json:"YoY EPS Growth"`
	YoYRevPerShGrowth             []Float  `json:"YoY Rev. per Sh. Growth"`
}

// UnmarshalJSON reads values of fields, which some templates name differently.
func (self *BalanceSheet) UnmarshalJSON(b []byte) error {
	type plain BalanceSheet
	var v struct {
		plain
		AccountsPayableForFinancials []Float `json:"Accounts Payable & Accrued Expense for Financ"`
		BalanceStatementCash         []Float `json:"Balance Statement Cash and cash equivalents"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*self = BalanceSheet(v.plain)
	self.AccountsPayableAndAccruedExpense = orFloats(
		self.AccountsPayableAndAccruedExpense, v.AccountsPayableForFinancials)
	self.CashAndCashEquivalents = orFloats(self.CashAndCashEquivalents,
		v.BalanceStatementCash)
	return nil
}

func (self *IncomeStatement) UnmarshalJSON(b []byte) error {
	type plain IncomeStatement
	var v struct {
		plain
		InterestExpensePositive []Float `json:"Interest Expense (Positive)"`
		NetInterestIncomeBanks  []Float `json:"Net Interest Income (for Banks)"`
		OtherExpense            []Float `json:"Other Expense"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*self = IncomeStatement(v.plain)
	self.InterestExpense = orFloats(self.InterestExpense,
		v.InterestExpensePositive)
	self.NetInterestIncome = orFloats(self.NetInterestIncome,
		v.NetInterestIncomeBanks)
	self.OtherIncome = orFloats(self.OtherIncome, v.OtherExpense)
	return nil
}

// orFloats returns primary, or alias when primary key was absent.
func orFloats(primary, alias []Float) []Float {
	if primary == nil {
		return alias
	}
	return primary
}
