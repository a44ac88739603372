package input

// Warning formats reported by ParsePrices
const (
	WarnMsgUnknownCrystal = "ignored price for unknown crystal %q"
	WarnMsgBadPrice       = "price for %s is not a whole number (%q), using 0"
	WarnMsgNegativePrice  = "price for %s is negative (%d), using 0"
	WarnMsgPriceTooHigh   = "price for %s is above the limit (%d > %d), using 0"
	WarnMsgDuplicatePrice = "duplicate price for %s (%q), ignored"
)
