package yahoo

import "github.com/wonny/qvscreen/internal/contracts"

// rawValue is Yahoo's number wrapper: {"raw": 0.25, "fmt": "25.00%"}.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteResult struct {
	Price struct {
		LongName           string   `json:"longName"`
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
		MarketCap          rawValue `json:"marketCap"`
	} `json:"price"`

	SummaryDetail struct {
		TrailingPE    rawValue `json:"trailingPE"`
		PriceToSales  rawValue `json:"priceToSalesTrailing12Months"`
		DividendYield rawValue `json:"dividendYield"`
		PayoutRatio   rawValue `json:"payoutRatio"`
	} `json:"summaryDetail"`

	FinancialData struct {
		CurrentRatio     rawValue `json:"currentRatio"`
		QuickRatio       rawValue `json:"quickRatio"`
		DebtToEquity     rawValue `json:"debtToEquity"` // percent, e.g. 152.3
		ReturnOnEquity   rawValue `json:"returnOnEquity"`
		ReturnOnAssets   rawValue `json:"returnOnAssets"`
		OperatingMargins rawValue `json:"operatingMargins"`
		ProfitMargins    rawValue `json:"profitMargins"`
		GrossMargins     rawValue `json:"grossMargins"`
		EarningsGrowth   rawValue `json:"earningsGrowth"`
		RevenueGrowth    rawValue `json:"revenueGrowth"`
		FreeCashflow     rawValue `json:"freeCashflow"`
	} `json:"financialData"`

	DefaultKeyStatistics struct {
		PriceToBook             rawValue `json:"priceToBook"`
		PegRatio                rawValue `json:"pegRatio"`
		EarningsQuarterlyGrowth rawValue `json:"earningsQuarterlyGrowth"`
		HeldPercentInsiders     rawValue `json:"heldPercentInsiders"`
		HeldPercentInstitutions rawValue `json:"heldPercentInstitutions"`
		SharesOutstanding       rawValue `json:"sharesOutstanding"`
	} `json:"defaultKeyStatistics"`

	ESGScores struct {
		TotalESG        rawValue `json:"totalEsg"`
		GovernanceScore rawValue `json:"governanceScore"`
	} `json:"esgScores"`
}

// toRawMetrics maps the quote-summary modules onto the fetch-boundary
// payload. Yahoo reports margins, growth and ownership as fractions already;
// debt-to-equity is the one percent-scaled outlier and is converted here.
func (q quoteResult) toRawMetrics(symbol string) contracts.RawMetrics {
	raw := contracts.RawMetrics{
		Symbol: symbol,
		Name:   q.Price.LongName,
		Units:  contracts.UnitsFraction,

		Price:     q.Price.RegularMarketPrice.Raw,
		MarketCap: q.Price.MarketCap.Raw,

		PERatio:  q.SummaryDetail.TrailingPE.Raw,
		PBRatio:  q.DefaultKeyStatistics.PriceToBook.Raw,
		PSRatio:  q.SummaryDetail.PriceToSales.Raw,
		PEGRatio: q.DefaultKeyStatistics.PegRatio.Raw,

		CurrentRatio: q.FinancialData.CurrentRatio.Raw,
		QuickRatio:   q.FinancialData.QuickRatio.Raw,

		ROE:             q.FinancialData.ReturnOnEquity.Raw,
		ROA:             q.FinancialData.ReturnOnAssets.Raw,
		OperatingMargin: q.FinancialData.OperatingMargins.Raw,
		NetMargin:       q.FinancialData.ProfitMargins.Raw,
		GrossMargin:     q.FinancialData.GrossMargins.Raw,

		EarningsGrowth:          q.FinancialData.EarningsGrowth.Raw,
		RevenueGrowth:           q.FinancialData.RevenueGrowth.Raw,
		EarningsQuarterlyGrowth: q.DefaultKeyStatistics.EarningsQuarterlyGrowth.Raw,

		InsiderOwnership:       q.DefaultKeyStatistics.HeldPercentInsiders.Raw,
		InstitutionalOwnership: q.DefaultKeyStatistics.HeldPercentInstitutions.Raw,

		ESGScore:        q.ESGScores.TotalESG.Raw,
		GovernanceScore: q.ESGScores.GovernanceScore.Raw,

		DividendYield: q.SummaryDetail.DividendYield.Raw,
		PayoutRatio:   q.SummaryDetail.PayoutRatio.Raw,

		FreeCashFlow:      q.FinancialData.FreeCashflow.Raw,
		SharesOutstanding: q.DefaultKeyStatistics.SharesOutstanding.Raw,
	}

	if de := q.FinancialData.DebtToEquity.Raw; de != nil {
		v := *de / 100
		raw.DebtToEquity = &v
	}

	if y := raw.DividendYield; y != nil && *y > 0 {
		pays := true
		raw.PaysDividend = &pays
	}

	return raw
}
