package purchaseservice

import (
	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/shopspring/decimal"
)

var catalog = map[string]domain.Package{
	"lw_coins_100":     {ProductID: "lw_coins_100", Coins: decimal.NewFromInt(100)},
	"lw_coins_300":     {ProductID: "lw_coins_300", Coins: decimal.NewFromInt(300)},
	"lw_coins_600":     {ProductID: "lw_coins_600", Coins: decimal.NewFromInt(600)},
	"lw_coins_1200":    {ProductID: "lw_coins_1200", Coins: decimal.NewFromInt(1200)},
	"lw_sub_month":     {ProductID: "lw_sub_month", Coins: decimal.NewFromInt(300), Days: 30},
	"lw_sub_quarter":   {ProductID: "lw_sub_quarter", Coins: decimal.NewFromInt(900), Days: 90},
	"lw_sub_year":      {ProductID: "lw_sub_year", Coins: decimal.NewFromInt(3600), Days: 365},
	"lw_premium_month": {ProductID: "lw_premium_month", Days: 30, Premium: true},
	"lw_premium_year":  {ProductID: "lw_premium_year", Days: 365, Premium: true},
}

type amountPackage struct {
	amount decimal.Decimal
	coins  decimal.Decimal
	days   int
}

var amountPackages = []amountPackage{
	{amount: decimal.NewFromInt(2), coins: decimal.NewFromInt(100), days: 30},
	{amount: decimal.NewFromInt(5), coins: decimal.NewFromInt(300), days: 90},
	{amount: decimal.NewFromInt(10), coins: decimal.NewFromInt(600), days: 180},
	{amount: decimal.NewFromInt(20), coins: decimal.NewFromInt(1200), days: 365},
}

// LookupProduct resolves a store product id.
func LookupProduct(productID string) (domain.Package, bool) {
	pkg, ok := catalog[productID]
	return pkg, ok
}

// DetermineCoinsFromAmount maps a payment amount to its package. Amounts
// outside the table map to (0, 0) and must not be credited.
func DetermineCoinsFromAmount(amount decimal.Decimal) (decimal.Decimal, int) {
	for _, p := range amountPackages {
		if p.amount.Equal(amount) {
			return p.coins, p.days
		}
	}
	return decimal.Zero, 0
}
