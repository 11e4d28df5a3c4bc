package dto

// IndicatorResult is the classified outcome of one indicator.
// Value is nil when there is not enough history for the lookback period;
// in that case Signal is neutral and Score is 0.
type IndicatorResult struct {
	Name        string   `json:"name"`
	Value       *float64 `json:"value"`
	Signal      Signal   `json:"signal"`
	Score       int      `json:"score"`
	Tier        int      `json:"tier"`
	Description string   `json:"description"`
}

type ScanMeta struct {
	Interval    string `json:"interval"`
	CandleCount int    `json:"candles"`
	AsOf        int64  `json:"asOf"`
	Source      string `json:"source"`
	Cached      bool   `json:"cached"`
}

// ScanResult is one complete scan of a symbol. AsOf is the open time of the
// last candle, so identical input candles produce identical results.
type ScanResult struct {
	Symbol         string                     `json:"symbol"`
	Price          float64                    `json:"price"`
	Indicators     map[string]IndicatorResult `json:"indicators"`
	TotalScore     int                        `json:"totalScore"`
	Recommendation Recommendation             `json:"recommendation"`
	Meta           ScanMeta                   `json:"meta"`
}

type BatchScanRequest struct {
	Symbols  []string `json:"symbols" validate:"required,min=1,max=100,dive,required"`
	Interval string   `json:"interval" validate:"omitempty"`
}

// BatchScanItem carries either a scan result or the error that replaced it.
type BatchScanItem struct {
	Symbol string      `json:"symbol"`
	Result *ScanResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type BatchScanResult struct {
	Interval string          `json:"interval"`
	Total    int             `json:"total"`
	Failed   int             `json:"failed"`
	Items    []BatchScanItem `json:"items"`
}
