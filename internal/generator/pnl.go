package generator

import (
	"github.com/shopspring/decimal"

	"tradecoach/internal/models"
)

var (
	referencePrice  = decimal.NewFromInt(100)
	partialWinExit  = decimal.NewFromInt(102)
	partialLossExit = decimal.NewFromInt(98)
	fullWinExit     = decimal.NewFromInt(103)
	fullLossExit    = decimal.NewFromInt(97)
	entryUnits      = decimal.NewFromInt(1)
	scaleInUnits    = decimal.NewFromFloat(0.5)
	half            = decimal.NewFromFloat(0.5)
)

// Ledger is the result of folding a decision sequence into fills.
type Ledger struct {
	ProfitLoss   float64
	TotalTrades  int
	OpenUnits    float64
	AverageEntry float64
}

// FoldPnL walks the decisions and prices every fill against fixed reference
// prices. It returns copies of the decisions with entry, exit and profit
// fields filled in. The fold has no randomness: folding its own output again
// yields the same ledger.
func FoldPnL(decisions []models.TraderDecision) ([]models.TraderDecision, Ledger) {
	out := make([]models.TraderDecision, len(decisions))
	units := decimal.Zero
	avg := decimal.Zero
	pnl := decimal.Zero
	trades := 0

	for i, d := range decisions {
		d.EntryPrice, d.ExitPrice, d.TradeProfit = nil, nil, nil

		switch d.Action {
		case models.ActionBuy, models.ActionIncreasePosition:
			size := entryUnits
			if d.Action == models.ActionIncreasePosition {
				size = scaleInUnits
			}
			avg = avg.Mul(units).Add(referencePrice.Mul(size)).Div(units.Add(size))
			units = units.Add(size)
			d.EntryPrice = price(referencePrice)
			trades++

		case models.ActionDecreasePosition:
			if units.IsPositive() {
				size := units.Mul(half)
				exit := partialLossExit
				if d.Outcome == models.OutcomePositive {
					exit = partialWinExit
				}
				profit := exit.Sub(avg).Mul(size)
				pnl = pnl.Add(profit)
				units = units.Sub(size)
				d.EntryPrice = price(avg)
				d.ExitPrice = price(exit)
				d.TradeProfit = price(profit)
				trades++
			}

		case models.ActionExit, models.ActionSell:
			if units.IsPositive() {
				exit := fullLossExit
				if d.Outcome == models.OutcomePositive {
					exit = fullWinExit
				}
				profit := exit.Sub(avg).Mul(units)
				pnl = pnl.Add(profit)
				d.EntryPrice = price(avg)
				d.ExitPrice = price(exit)
				d.TradeProfit = price(profit)
				units = decimal.Zero
				avg = decimal.Zero
				trades++
			}
		}
		out[i] = d
	}

	return out, Ledger{
		ProfitLoss:   pnl.Round(2).InexactFloat64(),
		TotalTrades:  trades,
		OpenUnits:    units.InexactFloat64(),
		AverageEntry: avg.Round(2).InexactFloat64(),
	}
}

func price(d decimal.Decimal) *float64 {
	f := d.Round(2).InexactFloat64()
	return &f
}
