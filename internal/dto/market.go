package dto

// Candle represents a single OHLCV bar. OpenTime is in unix milliseconds.
// Series are always ordered oldest first.
type Candle struct {
	OpenTime int64   `json:"openTime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume"`
}

// LastPrice represents the latest ticker price of a symbol.
type LastPrice struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// CandleData is the payload of the raw candle endpoint.
type CandleData struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Source   string   `json:"source"`
	Candles  []Candle `json:"candles"`
	Cached   bool     `json:"cached"`
}

func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}

func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}
