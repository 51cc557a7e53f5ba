package finance

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/feral-file/ai-company/internal/domain"
)

// Holding is the number of tokens a wallet holds in a company
type Holding struct {
	Wallet string
	Tokens int64
}

// Distribute splits total between the company and token holders.
// The company receives 80%; the remaining 20% is split pro-rata by tokens held.
// Amounts are rounded to cents and any rounding remainder goes to the largest holder.
// Without holders the company receives the full amount.
func Distribute(total float64, holdings []Holding) (domain.Distribution, error) {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return domain.Distribution{}, domain.NewValidationError("Revenue amount must be positive")
	}

	totalCents := toCents(total)
	byWallet, totalTokens := aggregate(holdings)

	if totalTokens == 0 {
		return domain.Distribution{
			Total:        fromCents(totalCents),
			CompanyShare: fromCents(totalCents),
			HolderShare:  0,
			Payouts:      []domain.Payout{},
		}, nil
	}

	companyCents := int64(math.Round(float64(totalCents) * domain.COMPANY_REVENUE_SHARE))
	holderCents := totalCents - companyCents

	wallets := make([]string, 0, len(byWallet))
	for w := range byWallet {
		wallets = append(wallets, w)
	}
	sort.Strings(wallets)

	cents := make([]int64, len(wallets))
	var paid int64
	largest := 0
	for i, w := range wallets {
		cents[i] = proRata(holderCents, byWallet[w], totalTokens)
		paid += cents[i]
		if byWallet[w] > byWallet[wallets[largest]] {
			largest = i
		}
	}
	cents[largest] += holderCents - paid

	payouts := make([]domain.Payout, 0, len(wallets))
	for i, w := range wallets {
		payouts = append(payouts, domain.Payout{Wallet: w, Tokens: byWallet[w], Amount: fromCents(cents[i])})
	}

	return domain.Distribution{
		Total:        fromCents(totalCents),
		CompanyShare: fromCents(companyCents),
		HolderShare:  fromCents(holderCents),
		Payouts:      payouts,
	}, nil
}

// proRata returns amount*part/whole rounded down, without overflowing int64 on the product
func proRata(amount, part, whole int64) int64 {
	product := new(big.Int).Mul(big.NewInt(amount), big.NewInt(part))
	return product.Quo(product, big.NewInt(whole)).Int64()
}

func aggregate(holdings []Holding) (map[string]int64, int64) {
	byWallet := make(map[string]int64)
	var total int64
	for _, h := range holdings {
		if h.Tokens <= 0 {
			continue
		}
		byWallet[h.Wallet] += h.Tokens
		total += h.Tokens
	}
	return byWallet, total
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Describe renders a one line summary of a distribution for activity logs
func Describe(d domain.Distribution) string {
	return fmt.Sprintf("distributed %.2f: %.2f to company, %.2f to %d holders",
		d.Total, d.CompanyShare, d.HolderShare, len(d.Payouts))
}
