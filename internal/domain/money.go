package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits carried by every amount.
const MoneyScale = 2

// PlatformFeeRate is the share of each donation kept by the platform.
var PlatformFeeRate = decimal.RequireFromString("0.10")

// MaxAmount is the largest donation the NUMERIC(12,2) ledger columns hold.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// SplitAmount divides a donation into the platform fee and the creator share.
// The fee is rounded half-to-even at MoneyScale; the share is the exact
// remainder, so fee + share == amount always holds.
func SplitAmount(amount decimal.Decimal) (fee, share decimal.Decimal) {
	fee = amount.Mul(PlatformFeeRate).RoundBank(MoneyScale)
	share = amount.Sub(fee)
	return fee, share
}

// ValidateAmount checks that amount is positive, lies within [minimum,
// MaxAmount] and has no more than MoneyScale fractional digits.
func ValidateAmount(amount, minimum decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewAmountError("must be positive")
	}
	if amount.LessThan(minimum) {
		return NewAmountError(fmt.Sprintf("must be at least %s", minimum.StringFixed(MoneyScale)))
	}
	if amount.GreaterThan(MaxAmount) {
		return NewAmountError(fmt.Sprintf("must be at most %s", MaxAmount.StringFixed(MoneyScale)))
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return NewAmountError(fmt.Sprintf("at most %d decimal places allowed", MoneyScale))
	}
	return nil
}
