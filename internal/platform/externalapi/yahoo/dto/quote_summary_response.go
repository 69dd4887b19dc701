package dto

// QuoteSummaryResponse represents the JSON response from the Yahoo
// Finance v10 quoteSummary endpoint. Statement records are kept as raw
// maps: the dashboard renders them untouched.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult は要求したモジュールごとのセクションを持ちます。
// 要求しなかったモジュールはnilになります。
type QuoteSummaryResult struct {
	IncomeStatementHistory *struct {
		Statements []map[string]any `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory,omitempty"`

	BalanceSheetHistory *struct {
		Statements []map[string]any `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistory,omitempty"`

	CashflowStatementHistory *struct {
		Statements []map[string]any `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory,omitempty"`

	RecommendationTrend *struct {
		Trend []RecommendationTrendEntry `json:"trend"`
	} `json:"recommendationTrend,omitempty"`

	SummaryDetail *struct {
		MarketCap  FormattedValue `json:"marketCap"`
		TrailingPE FormattedValue `json:"trailingPE"`
		ForwardPE  FormattedValue `json:"forwardPE"`
		Beta       FormattedValue `json:"beta"`
	} `json:"summaryDetail,omitempty"`

	DefaultKeyStatistics *struct {
		ForwardPE FormattedValue `json:"forwardPE"`
		Beta      FormattedValue `json:"beta"`
	} `json:"defaultKeyStatistics,omitempty"`

	AssetProfile *struct {
		LongBusinessSummary string `json:"longBusinessSummary"`
	} `json:"assetProfile,omitempty"`
}

// FormattedValue はquoteSummaryの数値フィールドのラップ形式です。
// 値を持たない銘柄では空オブジェクト{}で返るためRawはポインタです。
type FormattedValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// RecommendationTrendEntry はアナリスト推奨の期間別集計1件です。
type RecommendationTrendEntry struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}
