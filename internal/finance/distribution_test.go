package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ai-company/internal/domain"
)

func sumPayouts(d domain.Distribution) float64 {
	var total float64
	for _, p := range d.Payouts {
		total += p.Amount
	}
	return total
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		holdings []Holding
		company  float64
		holders  float64
		payouts  map[string]float64
	}{
		{
			name:     "single holder",
			total:    100,
			holdings: []Holding{{Wallet: "a", Tokens: 30}},
			company:  80,
			holders:  20,
			payouts:  map[string]float64{"a": 20},
		},
		{
			name:  "pro rata with aggregation",
			total: 100,
			holdings: []Holding{
				{Wallet: "a", Tokens: 10},
				{Wallet: "b", Tokens: 20},
				{Wallet: "a", Tokens: 10},
			},
			company: 80,
			holders: 20,
			payouts: map[string]float64{"a": 10, "b": 10},
		},
		{
			name:  "remainder goes to largest holder",
			total: 10,
			holdings: []Holding{
				{Wallet: "a", Tokens: 1},
				{Wallet: "b", Tokens: 1},
				{Wallet: "c", Tokens: 2},
			},
			company: 8,
			holders: 2,
			payouts: map[string]float64{"a": 0.5, "b": 0.5, "c": 1},
		},
		{
			name:  "uneven split",
			total: 1,
			holdings: []Holding{
				{Wallet: "a", Tokens: 1},
				{Wallet: "b", Tokens: 1},
				{Wallet: "c", Tokens: 1},
			},
			company: 0.8,
			holders: 0.2,
			// 20 cents over three holders: 6 each and 2 left for the first largest
			payouts: map[string]float64{"a": 0.08, "b": 0.06, "c": 0.06},
		},
		{
			name:     "demo completion amount",
			total:    0.1,
			holdings: []Holding{{Wallet: "token_holder_1", Tokens: 5}},
			company:  0.08,
			holders:  0.02,
			payouts:  map[string]float64{"token_holder_1": 0.02},
		},
		{
			name:     "no holders",
			total:    50,
			holdings: nil,
			company:  50,
			holders:  0,
			payouts:  map[string]float64{},
		},
		{
			name:     "zero token holdings ignored",
			total:    50,
			holdings: []Holding{{Wallet: "a", Tokens: 0}},
			company:  50,
			holders:  0,
			payouts:  map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Distribute(tt.total, tt.holdings)
			require.NoError(t, err)

			assert.InDelta(t, tt.total, d.Total, 1e-9)
			assert.InDelta(t, tt.company, d.CompanyShare, 1e-9)
			assert.InDelta(t, tt.holders, d.HolderShare, 1e-9)
			assert.InDelta(t, d.HolderShare, sumPayouts(d), 1e-9)
			assert.InDelta(t, d.Total, d.CompanyShare+d.HolderShare, 1e-9)

			require.Len(t, d.Payouts, len(tt.payouts))
			for _, p := range d.Payouts {
				assert.InDelta(t, tt.payouts[p.Wallet], p.Amount, 1e-9, "wallet %s", p.Wallet)
			}
		})
	}
}

func TestDistribute_LargeHoldingsStayPositive(t *testing.T) {
	d, err := Distribute(1e9, []Holding{
		{Wallet: "a", Tokens: 500_000_000},
		{Wallet: "b", Tokens: 490_000_000},
	})
	require.NoError(t, err)

	assert.InDelta(t, 200_000_000.0, d.HolderShare, 1e-6)
	assert.InDelta(t, d.HolderShare, sumPayouts(d), 1e-6)

	require.Len(t, d.Payouts, 2)
	got := map[string]float64{}
	for _, p := range d.Payouts {
		assert.Positive(t, p.Amount, "wallet %s", p.Wallet)
		got[p.Wallet] = p.Amount
	}
	// 2e10 cents split 50:49, one cent remainder to the largest holder
	assert.InDelta(t, 101010101.02, got["a"], 1e-6)
	assert.InDelta(t, 98989898.98, got["b"], 1e-6)
}

func TestDistribute_InvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -1} {
		_, err := Distribute(amount, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestDescribe(t *testing.T) {
	d, err := Distribute(100, []Holding{{Wallet: "a", Tokens: 1}})
	require.NoError(t, err)
	assert.Equal(t, "distributed 100.00: 80.00 to company, 20.00 to 1 holders", Describe(d))
}
