package agri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestProjectPrice_NoDate(t *testing.T) {
	for _, crop := range PriceCrops() {
		for _, state := range PriceStates(crop) {
			for _, district := range PriceDistricts(crop, state) {
				for _, market := range PriceMarkets(crop, state, district) {
					entry, err := LookupPrice(crop, state, district, market)
					require.NoError(t, err)

					for _, rt := range []RateType{RateWholesale, RateRetail} {
						p, err := ProjectPrice(entry, rt, nil, testNow)
						require.NoError(t, err)
						want, _ := entry.Rate(rt)
						assert.Equal(t, want, p.PriceForDate, "%s/%s/%s", crop, market, rt)
						assert.Equal(t, DateLabelCurrent, p.DateLabel)
					}
				}
			}
		}
	}
}

func TestProjectPrice_FutureDates(t *testing.T) {
	entry, err := LookupPrice("wheat", "Punjab", "Ludhiana", "Ludhiana Mandi")
	require.NoError(t, err)

	t.Run("45 days ahead is two months at 2% each", func(t *testing.T) {
		target := testNow.AddDate(0, 0, 45)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		// ceil(45/30) = 2 months -> 2100 * 1.04
		assert.Equal(t, 2184, p.PriceForDate)
		assert.Equal(t, DateLabelPredicted, p.DateLabel)
	})

	t.Run("30 days ahead is one month", func(t *testing.T) {
		target := testNow.AddDate(0, 0, 30)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		assert.Equal(t, 2142, p.PriceForDate) // 2100 * 1.02
	})

	t.Run("beyond 180 days caps at 15 percent", func(t *testing.T) {
		target := testNow.AddDate(0, 0, 365)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		assert.Equal(t, 2415, p.PriceForDate) // 2100 * 1.15
	})
}

func TestProjectPrice_PastDates(t *testing.T) {
	entry, err := LookupPrice("wheat", "Punjab", "Ludhiana", "Ludhiana Mandi")
	require.NoError(t, err)

	t.Run("45 days ago reads one month back in the trend", func(t *testing.T) {
		target := testNow.AddDate(0, 0, -45)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		// floor(45/30) = 1 month ago -> trend[4]
		assert.Equal(t, entry.Trend[4], p.PriceForDate)
		assert.Equal(t, DateLabelHistorical, p.DateLabel)
	})

	t.Run("150 days ago clamps into the oldest points", func(t *testing.T) {
		target := testNow.AddDate(0, 0, -150)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		// floor(150/30) = 5 -> trend[0]
		assert.Equal(t, entry.Trend[0], p.PriceForDate)
	})

	t.Run("deep history discounts 15 percent", func(t *testing.T) {
		target := testNow.AddDate(0, 0, -200)
		p, err := ProjectPrice(entry, RateWholesale, &target, testNow)
		require.NoError(t, err)
		assert.Equal(t, 1785, p.PriceForDate) // round(2100 * 0.85)
	})
}

func TestProjectPrice_OneMonthPrediction(t *testing.T) {
	entry, err := LookupPrice("tomato", "Maharashtra", "Pune", "Pune Market")
	require.NoError(t, err)

	targets := []*time.Time{nil}
	past := testNow.AddDate(0, 0, -90)
	future := testNow.AddDate(0, 0, 400)
	targets = append(targets, &past, &future)

	for _, target := range targets {
		p, err := ProjectPrice(entry, RateWholesale, target, testNow)
		require.NoError(t, err)
		// always round(current * 1.05), independent of the target date
		assert.Equal(t, 32, p.PredictedPrice) // round(30 * 1.05)
		assert.InDelta(t, 6.7, p.ChangePercent, 0.001)
		assert.Equal(t, SignalStrongHold, p.Signal)
	}
}

func TestProjectPrice_Signals(t *testing.T) {
	t.Run("five percent uplift is a strong hold", func(t *testing.T) {
		entry := PriceEntry{Wholesale: 2100, Retail: 2300, Trend: []int{2000, 2050, 2100, 2150, 2200, 2250}}
		p, err := ProjectPrice(entry, RateWholesale, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, SignalStrongHold, p.Signal)
	})

	t.Run("rounding to zero change means sell", func(t *testing.T) {
		// a price so small the 5% bump rounds away entirely
		entry := PriceEntry{Wholesale: 5, Retail: 7, Trend: []int{4, 4, 5, 5, 5, 5}}
		p, err := ProjectPrice(entry, RateWholesale, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 5, p.PredictedPrice)
		assert.Equal(t, SignalSell, p.Signal)
	})

	t.Run("near-threshold change stays above the hold line", func(t *testing.T) {
		// 29 * 1.05 = 30.45 -> 30, +3.4%: the smallest positive change rounding
		// can produce still clears the 3% strong-hold threshold.
		entry := PriceEntry{Wholesale: 29, Retail: 31, Trend: []int{26, 27, 28, 28, 29, 29}}
		p, err := ProjectPrice(entry, RateWholesale, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 30, p.PredictedPrice)
		assert.InDelta(t, 3.4, p.ChangePercent, 0.001)
		assert.Equal(t, SignalStrongHold, p.Signal)
	})
}

func TestProjectPrice_MSP(t *testing.T) {
	t.Run("msp rate uses the floor price", func(t *testing.T) {
		entry, err := LookupPrice("wheat", "Punjab", "Ludhiana", "Ludhiana Mandi")
		require.NoError(t, err)
		p, err := ProjectPrice(entry, RateMSP, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 2015, p.CurrentPrice)
	})

	t.Run("crops without msp are rejected", func(t *testing.T) {
		entry, err := LookupPrice("tomato", "Maharashtra", "Pune", "Pune Market")
		require.NoError(t, err)
		_, err = ProjectPrice(entry, RateMSP, nil, testNow)
		assert.ErrorIs(t, err, ErrNoMSP)
	})
}

func TestProjectPrice_TrendStats(t *testing.T) {
	entry, err := LookupPrice("maize", "Andhra Pradesh", "Guntur", "Guntur Market")
	require.NoError(t, err)
	p, err := ProjectPrice(entry, RateWholesale, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1750.0, p.TrendStats.Min)
	assert.Equal(t, 2000.0, p.TrendStats.Max)
	assert.Equal(t, 1875.0, p.TrendStats.Mean)

	require.Len(t, p.Trend, 6)
	assert.Equal(t, "Jan", p.Trend[0].Month)
	assert.Equal(t, "Jun", p.Trend[5].Month)
	assert.Equal(t, 2000, p.Trend[5].Price)
}

func TestLookupPrice_NoMatch(t *testing.T) {
	_, err := LookupPrice("wheat", "Kerala", "Idukki", "Idukki Mandi")
	assert.ErrorIs(t, err, ErrNoPriceData)
}
