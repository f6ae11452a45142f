package agri

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// RateType selects which price column of a mandi entry is quoted.
type RateType string

const (
	RateWholesale RateType = "wholesale"
	RateRetail    RateType = "retail"
	RateMSP       RateType = "msp"
)

// PriceEntry — one mandi's reference prices in INR per quintal. Trend is a
// fixed 6-point monthly series, index 0 oldest and index 5 newest.
type PriceEntry struct {
	Wholesale int   `json:"wholesale"`
	Retail    int   `json:"retail"`
	MSP       *int  `json:"msp"` // government floor price, not set for all crops
	Trend     []int `json:"trend"`
}

// Rate returns the entry's price for the given rate type. MSP is optional
// per crop, so asking for it can fail.
func (e PriceEntry) Rate(rt RateType) (int, error) {
	switch rt {
	case RateWholesale:
		return e.Wholesale, nil
	case RateRetail:
		return e.Retail, nil
	case RateMSP:
		if e.MSP == nil {
			return 0, ErrNoMSP
		}
		return *e.MSP, nil
	default:
		return 0, fmt.Errorf("unknown rate type %q", rt)
	}
}

var (
	// ErrNoPriceData — the (crop, state, district, market) tuple has no entry.
	ErrNoPriceData = errors.New("no price data for this combination")
	// ErrNoMSP — the crop has no minimum support price on record.
	ErrNoMSP = errors.New("msp not available for this crop")
)

func msp(v int) *int { return &v }

// PriceDatabase is keyed crop -> state -> district -> market.
var PriceDatabase = map[string]map[string]map[string]map[string]PriceEntry{
	"wheat": {
		"Punjab": {
			"Ludhiana": {
				"Ludhiana Mandi": {Wholesale: 2100, Retail: 2300, MSP: msp(2015), Trend: []int{2000, 2050, 2100, 2150, 2200, 2250}},
				"Khanna Mandi":   {Wholesale: 2150, Retail: 2350, MSP: msp(2015), Trend: []int{2050, 2100, 2150, 2200, 2250, 2300}},
			},
			"Amritsar": {
				"Amritsar Mandi": {Wholesale: 2080, Retail: 2280, MSP: msp(2015), Trend: []int{1980, 2030, 2080, 2130, 2180, 2230}},
			},
		},
		"Andhra Pradesh": {
			"Guntur": {
				"Guntur Market": {Wholesale: 2200, Retail: 2400, MSP: msp(2015), Trend: []int{2100, 2150, 2200, 2250, 2300, 2350}},
			},
		},
	},
	"paddy": {
		"Punjab": {
			"Ludhiana": {
				"Ludhiana Mandi": {Wholesale: 3200, Retail: 3500, MSP: msp(2183), Trend: []int{3000, 3100, 3200, 3300, 3400, 3500}},
			},
		},
		"Andhra Pradesh": {
			"Krishna": {
				"Vijayawada Market": {Wholesale: 3100, Retail: 3400, MSP: msp(2183), Trend: []int{2900, 3000, 3100, 3200, 3300, 3400}},
			},
		},
	},
	"tomato": {
		"Andhra Pradesh": {
			"Guntur": {
				"Guntur Market": {Wholesale: 25, Retail: 35, Trend: []int{20, 22, 25, 28, 30, 32}},
			},
			"Krishna": {
				"Vijayawada Market": {Wholesale: 28, Retail: 38, Trend: []int{22, 25, 28, 31, 34, 37}},
			},
		},
		"Maharashtra": {
			"Pune": {
				"Pune Market": {Wholesale: 30, Retail: 40, Trend: []int{24, 27, 30, 33, 36, 39}},
			},
		},
	},
	"cotton": {
		"Punjab": {
			"Bathinda": {
				"Bathinda Mandi": {Wholesale: 6500, Retail: 6800, MSP: msp(6620), Trend: []int{6200, 6300, 6500, 6600, 6700, 6800}},
			},
		},
		"Andhra Pradesh": {
			"Guntur": {
				"Guntur Market": {Wholesale: 6400, Retail: 6700, MSP: msp(6620), Trend: []int{6100, 6200, 6400, 6500, 6600, 6700}},
			},
		},
	},
	"maize": {
		"Andhra Pradesh": {
			"Guntur": {
				"Guntur Market": {Wholesale: 1850, Retail: 2050, MSP: msp(1962), Trend: []int{1750, 1800, 1850, 1900, 1950, 2000}},
			},
		},
	},
}

// LookupPrice fetches the entry for a (crop, state, district, market) tuple.
func LookupPrice(crop, state, district, market string) (PriceEntry, error) {
	entry, ok := PriceDatabase[crop][state][district][market]
	if !ok {
		return PriceEntry{}, ErrNoPriceData
	}
	return entry, nil
}

// PriceCrops lists the crops with price data, sorted.
func PriceCrops() []string {
	out := make([]string, 0, len(PriceDatabase))
	for c := range PriceDatabase {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// PriceStates lists states carrying data for a crop, sorted.
func PriceStates(crop string) []string {
	out := make([]string, 0, len(PriceDatabase[crop]))
	for s := range PriceDatabase[crop] {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// PriceDistricts lists districts for a crop and state, sorted.
func PriceDistricts(crop, state string) []string {
	out := make([]string, 0, len(PriceDatabase[crop][state]))
	for d := range PriceDatabase[crop][state] {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// PriceMarkets lists mandis for a crop, state and district, sorted.
func PriceMarkets(crop, state, district string) []string {
	out := make([]string, 0, len(PriceDatabase[crop][state][district]))
	for m := range PriceDatabase[crop][state][district] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Signal is the hold/sell recommendation tier derived from the one-month
// percent change. Thresholds: >3% strong hold, >0% hold, otherwise sell.
type Signal string

const (
	SignalStrongHold Signal = "strong_hold"
	SignalHold       Signal = "hold"
	SignalSell       Signal = "sell"
)

// TrendPoint is one month of the historical series, labelled for charting.
type TrendPoint struct {
	Month string `json:"month"`
	Price int    `json:"price"`
}

var trendMonths = [6]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// TrendStats summarises the 6-point series.
type TrendStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// PriceProjection is the full forecast for one mandi entry.
type PriceProjection struct {
	CurrentPrice   int          `json:"currentPrice"`
	PriceForDate   int          `json:"priceForDate"`
	DateLabel      string       `json:"dateLabel"` // "current" or "historical"/"predicted"
	PredictedPrice int          `json:"predictedPrice"`
	ChangePercent  float64      `json:"changePercent"`
	Signal         Signal       `json:"signal"`
	Trend          []TrendPoint `json:"trend"`
	TrendStats     TrendStats   `json:"trendStats"`
	MSP            *int         `json:"msp"`
}

// Date labels on a projection result.
const (
	DateLabelCurrent    = "current"
	DateLabelHistorical = "historical"
	DateLabelPredicted  = "predicted"
)

// ProjectPrice derives the displayed price for an optional target date, plus
// the fixed one-month-ahead prediction and its hold/sell signal.
//
// The date rules, counted in whole days from now:
//
//	< -180 days          round(current * 0.85)
//	-180..-1 days        trend[max(0, 5-monthsAgo)], monthsAgo = floor(|diff|/30)
//	0 days / no date     current
//	1..180 days          round(current * (1 + monthsAhead*0.02)), monthsAhead = ceil(diff/30)
//	> 180 days           round(current * 1.15)
//
// The one-month prediction is always round(current * 1.05) regardless of the
// target date.
func ProjectPrice(entry PriceEntry, rt RateType, target *time.Time, now time.Time) (PriceProjection, error) {
	current, err := entry.Rate(rt)
	if err != nil {
		return PriceProjection{}, err
	}

	priceForDate := current
	dateLabel := DateLabelCurrent

	if target != nil {
		diffDays := int(math.Floor(target.Sub(now).Hours() / 24))
		switch {
		case diffDays < -180:
			priceForDate = roundMul(current, 0.85)
			dateLabel = DateLabelHistorical
		case diffDays < 0:
			monthsAgo := (-diffDays) / 30
			idx := 5 - monthsAgo
			if idx < 0 {
				idx = 0
			}
			priceForDate = entry.Trend[idx]
			dateLabel = DateLabelHistorical
		case diffDays == 0:
			// current price
		case diffDays > 180:
			priceForDate = roundMul(current, 1.15)
			dateLabel = DateLabelPredicted
		default:
			monthsAhead := (diffDays + 29) / 30
			priceForDate = roundMul(current, 1+float64(monthsAhead)*0.02)
			dateLabel = DateLabelPredicted
		}
	}

	predicted := roundMul(current, 1.05)
	change := float64(predicted-current) / float64(current) * 100
	change = math.Round(change*10) / 10

	signal := SignalSell
	switch {
	case change > 3:
		signal = SignalStrongHold
	case change > 0:
		signal = SignalHold
	}

	points := make([]TrendPoint, len(entry.Trend))
	series := make([]float64, len(entry.Trend))
	for i, p := range entry.Trend {
		points[i] = TrendPoint{Month: trendMonths[i%len(trendMonths)], Price: p}
		series[i] = float64(p)
	}
	min, _ := stats.Min(series)
	max, _ := stats.Max(series)
	mean, _ := stats.Mean(series)
	mean = math.Round(mean*100) / 100

	return PriceProjection{
		CurrentPrice:   current,
		PriceForDate:   priceForDate,
		DateLabel:      dateLabel,
		PredictedPrice: predicted,
		ChangePercent:  change,
		Signal:         signal,
		Trend:          points,
		TrendStats:     TrendStats{Min: min, Max: max, Mean: mean},
		MSP:            entry.MSP,
	}, nil
}

func roundMul(base int, factor float64) int {
	return int(math.Round(float64(base) * factor))
}
