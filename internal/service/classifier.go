package service

import (
	"fmt"
	"math"

	"crypto-scanner/internal/dto"
	"crypto-scanner/internal/indicator"
	"crypto-scanner/pkg/utils"
)

// Fixed classification thresholds.
const (
	rsiOverbought      = 70.0
	rsiOversold        = 30.0
	stochOverbought    = 80.0
	stochOversold      = 20.0
	mfiOverbought      = 80.0
	mfiOversold        = 20.0
	cciOverbought      = 100.0
	cciOversold        = -100.0
	williamsOverbought = -20.0
	williamsOversold   = -80.0
	pctBOverbought     = 0.95
	pctBOversold       = 0.05
	adxTrendMinimum    = 25.0
	changeThreshold    = 3.0
)

// Default lookback periods.
const (
	rsiPeriod        = 14
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
	emaPeriod        = 20
	smaPeriod        = 50
	bollingerPeriod  = 20
	bollingerMult    = 2.0
	stochPeriod      = 14
	stochDPeriod     = 3
	adxPeriod        = 14
	mfiPeriod        = 14
	atrPeriod        = 14
	cciPeriod        = 20
	williamsPeriod   = 14
	sarWindow        = 5
	vwapWindow       = 20
	obvTrendBars     = 14
)

// Importance tiers. A signal contributes +tier or -tier points, so trend
// followers dominate the composite and oscillators fine-tune it. Weighting
// choice is documented in DESIGN.md.
const (
	tierMajor    = 3
	tierModerate = 2
	tierMinor    = 1
)

// IndicatorSet evaluates the full indicator battery against one candle
// series and classifies every indicator into a signed, tiered signal.
// It is pure: same candles, same output.
type IndicatorSet struct{}

func NewIndicatorSet() *IndicatorSet {
	return &IndicatorSet{}
}

// Evaluate returns one IndicatorResult per indicator, keyed by name.
// Indicators with insufficient history come back neutral with score 0;
// nothing here ever fails.
func (set *IndicatorSet) Evaluate(candles []dto.Candle, interval string) map[string]dto.IndicatorResult {
	closes := dto.Closes(candles)
	highs := dto.Highs(candles)
	lows := dto.Lows(candles)
	volumes := dto.Volumes(candles)

	price := 0.0
	if len(closes) > 0 {
		price = closes[len(closes)-1]
	}

	results := make(map[string]dto.IndicatorResult, 15)
	add := func(name string, value float64, tier int, signal dto.Signal, description string) {
		results[name] = newIndicatorResult(name, value, tier, signal, description)
	}

	// Indicators whose library default for short history is a real sentinel
	// (RSI 50, Stochastic 50/50, Williams -50, MFI 50) are gated here so the
	// payload reports a null value instead of the sentinel.
	rsi := math.NaN()
	if len(closes) > rsiPeriod {
		rsi = indicator.RSI(closes, rsiPeriod)
	}
	add("rsi", rsi, tierModerate, classifyBounded(rsi, rsiOversold, rsiOverbought),
		fmt.Sprintf("RSI(%d) at %.2f", rsiPeriod, rsi))

	macd := indicator.MACD(closes, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)
	add("macd", macd.Histogram, tierMajor, classifySign(macd.Histogram),
		fmt.Sprintf("MACD histogram %.4f (line %.4f, signal %.4f)", macd.Histogram, macd.MACD, macd.Signal))

	ema := indicator.LastEMA(closes, emaPeriod)
	add("ema20", ema, tierMajor, classifyPriceVsLevel(price, ema),
		fmt.Sprintf("Price %.4f vs EMA(%d) %.4f", price, emaPeriod, ema))

	sma := indicator.SMA(closes, smaPeriod)
	add("sma50", sma, tierModerate, classifyPriceVsLevel(price, sma),
		fmt.Sprintf("Price %.4f vs SMA(%d) %.4f", price, smaPeriod, sma))

	boll := indicator.Bollinger(closes, bollingerPeriod, bollingerMult)
	bollDesc := fmt.Sprintf("Bollinger %%B %.3f, width %.3f", boll.PercentB, boll.Width)
	if boll.Squeeze {
		bollDesc += " (squeeze)"
	}
	add("bollinger", boll.PercentB, tierModerate, classifyBounded(boll.PercentB, pctBOversold, pctBOverbought), bollDesc)

	stoch := indicator.StochasticResult{K: math.NaN(), D: math.NaN()}
	if len(closes) >= stochPeriod+stochDPeriod-1 {
		stoch = indicator.Stochastic(highs, lows, closes, stochPeriod, stochDPeriod)
	}
	stochSignal := dto.SignalNeutral
	if stoch.K >= stochOverbought && stoch.D >= stochOverbought {
		stochSignal = dto.SignalBearish
	} else if stoch.K <= stochOversold && stoch.D <= stochOversold {
		stochSignal = dto.SignalBullish
	}
	add("stochastic", stoch.K, tierMinor, stochSignal,
		fmt.Sprintf("Stochastic %%K %.2f, %%D %.2f", stoch.K, stoch.D))

	adx := indicator.ADX(highs, lows, closes, adxPeriod)
	adxSignal := dto.SignalNeutral
	if adx.ADX >= adxTrendMinimum {
		// ADX only measures strength; direction comes from the DI lines.
		if adx.PlusDI > adx.MinusDI {
			adxSignal = dto.SignalBullish
		} else if adx.MinusDI > adx.PlusDI {
			adxSignal = dto.SignalBearish
		}
	}
	add("adx", adx.ADX, tierMajor, adxSignal,
		fmt.Sprintf("ADX(%d) %.2f, +DI %.2f, -DI %.2f", adxPeriod, adx.ADX, adx.PlusDI, adx.MinusDI))

	mfi := math.NaN()
	if len(closes) > mfiPeriod {
		mfi = indicator.MFI(highs, lows, closes, volumes, mfiPeriod)
	}
	add("mfi", mfi, tierMinor, classifyBounded(mfi, mfiOversold, mfiOverbought),
		fmt.Sprintf("MFI(%d) at %.2f", mfiPeriod, mfi))

	sar := indicator.ParabolicSAR(highs, lows, closes, sarWindow)
	add("sar", sar, tierModerate, classifyPriceVsLevel(price, sar),
		fmt.Sprintf("Price %.4f vs SAR %.4f", price, sar))

	cci := indicator.CCI(highs, lows, closes, cciPeriod)
	add("cci", cci, tierMinor, classifyBounded(cci, cciOversold, cciOverbought),
		fmt.Sprintf("CCI(%d) at %.2f", cciPeriod, cci))

	williams := math.NaN()
	if len(closes) >= williamsPeriod {
		williams = indicator.WilliamsR(highs, lows, closes, williamsPeriod)
	}
	williamsSignal := dto.SignalNeutral
	if williams > williamsOverbought {
		williamsSignal = dto.SignalBearish
	} else if williams < williamsOversold {
		williamsSignal = dto.SignalBullish
	}
	add("williams_r", williams, tierMinor, williamsSignal,
		fmt.Sprintf("Williams %%R(%d) at %.2f", williamsPeriod, williams))

	add("obv", math.NaN(), tierMinor, dto.SignalNeutral, "OBV trend flat")
	if len(closes) >= 2 {
		obvSeries := indicator.OBVSeries(closes, volumes)
		obvLast := obvSeries[len(obvSeries)-1]
		obvSignal := dto.SignalNeutral
		obvDesc := fmt.Sprintf("OBV %.0f, trend window too short", obvLast)
		if len(obvSeries) > obvTrendBars {
			obvRef := obvSeries[len(obvSeries)-1-obvTrendBars]
			if obvLast > obvRef {
				obvSignal = dto.SignalBullish
			} else if obvLast < obvRef {
				obvSignal = dto.SignalBearish
			}
			obvDesc = fmt.Sprintf("OBV %.0f vs %.0f over %d bars", obvLast, obvRef, obvTrendBars)
		}
		add("obv", obvLast, tierMinor, obvSignal, obvDesc)
	}

	vwap := indicator.VWAP(highs, lows, closes, volumes, vwapWindow)
	add("vwap", vwap, tierModerate, classifyPriceVsLevel(price, vwap),
		fmt.Sprintf("Price %.4f vs rolling VWAP(%d) %.4f", price, vwapWindow, vwap))

	changeBars := int((24 * 60) / dto.IntervalDuration(interval).Minutes())
	change := indicator.Change(closes, changeBars)
	changeSignal := dto.SignalNeutral
	if change >= changeThreshold {
		changeSignal = dto.SignalBullish
	} else if change <= -changeThreshold {
		changeSignal = dto.SignalBearish
	}
	add("change_24h", change, tierMinor, changeSignal,
		fmt.Sprintf("24h change %.2f%%", change))

	atr := indicator.ATR(highs, lows, closes, atrPeriod)
	add("atr", atr, tierMinor, dto.SignalNeutral,
		fmt.Sprintf("ATR(%d) %.4f (volatility only, no direction)", atrPeriod, atr))

	return results
}

// newIndicatorResult normalizes NaN values to a nil Value with a neutral,
// zero-score signal so insufficient history never skews the composite.
func newIndicatorResult(name string, value float64, tier int, signal dto.Signal, description string) dto.IndicatorResult {
	result := dto.IndicatorResult{
		Name:        name,
		Tier:        tier,
		Signal:      dto.SignalNeutral,
		Description: description,
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		result.Description = fmt.Sprintf("%s: insufficient history", name)
		return result
	}

	result.Value = utils.ToPointer(value)
	result.Signal = signal
	switch signal {
	case dto.SignalBullish:
		result.Score = tier
	case dto.SignalBearish:
		result.Score = -tier
	}
	return result
}

// classifyBounded flags values at or beyond the oversold bound as bullish
// and at or beyond the overbought bound as bearish.
func classifyBounded(value, oversold, overbought float64) dto.Signal {
	switch {
	case math.IsNaN(value):
		return dto.SignalNeutral
	case value >= overbought:
		return dto.SignalBearish
	case value <= oversold:
		return dto.SignalBullish
	}
	return dto.SignalNeutral
}

// classifyPriceVsLevel is bullish when price trades above the level.
func classifyPriceVsLevel(price, level float64) dto.Signal {
	switch {
	case math.IsNaN(level) || price == 0:
		return dto.SignalNeutral
	case price > level:
		return dto.SignalBullish
	case price < level:
		return dto.SignalBearish
	}
	return dto.SignalNeutral
}

// signNoiseEpsilon keeps float rounding noise from registering as a signal.
const signNoiseEpsilon = 1e-9

// classifySign is bullish for positive values, bearish for negative.
// Magnitudes within signNoiseEpsilon of zero are neutral.
func classifySign(value float64) dto.Signal {
	switch {
	case math.IsNaN(value):
		return dto.SignalNeutral
	case value > signNoiseEpsilon:
		return dto.SignalBullish
	case value < -signNoiseEpsilon:
		return dto.SignalBearish
	}
	return dto.SignalNeutral
}
