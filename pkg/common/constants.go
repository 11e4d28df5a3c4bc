package common

const (
	KEY_SCAN_RESULT = "scan:%s:%s"
	KEY_CANDLES     = "candles:%s:%s:%d"
	KEY_LAST_PRICE  = "last_price:%s"
)

const (
	DATA_SOURCE_LIVE      = "live"
	DATA_SOURCE_SYNTHETIC = "synthetic"
)
