package agri

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// YieldProfile — per-acre economics for one crop. Yield in quintals, price in
// INR per quintal, cost in INR.
type YieldProfile struct {
	YieldPerAcre float64 `json:"yieldPerAcre"`
	PricePerUnit float64 `json:"pricePerUnit"`
	CostPerAcre  float64 `json:"costPerAcre"`
}

// CropEconomics holds the reference economics for 16 crops.
var CropEconomics = map[string]YieldProfile{
	"wheat":     {YieldPerAcre: 20, PricePerUnit: 2275, CostPerAcre: 15000},
	"paddy":     {YieldPerAcre: 25, PricePerUnit: 2183, CostPerAcre: 18000},
	"cotton":    {YieldPerAcre: 10, PricePerUnit: 6600, CostPerAcre: 22000},
	"sugarcane": {YieldPerAcre: 300, PricePerUnit: 315, CostPerAcre: 45000},
	"maize":     {YieldPerAcre: 25, PricePerUnit: 2090, CostPerAcre: 14000},
	"soybean":   {YieldPerAcre: 8, PricePerUnit: 4600, CostPerAcre: 12000},
	"mustard":   {YieldPerAcre: 6, PricePerUnit: 5650, CostPerAcre: 10000},
	"groundnut": {YieldPerAcre: 10, PricePerUnit: 6377, CostPerAcre: 16000},
	"gram":      {YieldPerAcre: 8, PricePerUnit: 5440, CostPerAcre: 11000},
	"tur":       {YieldPerAcre: 6, PricePerUnit: 7000, CostPerAcre: 13000},
	"potato":    {YieldPerAcre: 80, PricePerUnit: 1200, CostPerAcre: 35000},
	"onion":     {YieldPerAcre: 100, PricePerUnit: 1500, CostPerAcre: 40000},
	"tomato":    {YieldPerAcre: 120, PricePerUnit: 1000, CostPerAcre: 45000},
	"coffee":    {YieldPerAcre: 4, PricePerUnit: 18000, CostPerAcre: 50000},
	"tea":       {YieldPerAcre: 8, PricePerUnit: 15000, CostPerAcre: 60000},
	"rubber":    {YieldPerAcre: 6, PricePerUnit: 16000, CostPerAcre: 40000},
}

// EconomicsCrops lists crops with yield data, sorted.
func EconomicsCrops() []string {
	out := make([]string, 0, len(CropEconomics))
	for c := range CropEconomics {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// AreaUnit is the land-area unit of a yield request.
type AreaUnit string

const (
	UnitAcre    AreaUnit = "acre"
	UnitHectare AreaUnit = "hectare"
)

// acresPerHectare is the fixed conversion factor used throughout.
const acresPerHectare = 2.47

var (
	// ErrUnknownCrop — the crop key has no economics row.
	ErrUnknownCrop = errors.New("unknown crop")
	// ErrBadArea — area must be a positive number.
	ErrBadArea = errors.New("area must be positive")
)

// CostItem is one slice of the expense breakdown.
type CostItem struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// costShares partitions total cost into seven categories. The shares sum to
// exactly 1.00.
var costShares = []struct {
	category string
	share    float64
}{
	{"seeds", 0.12},
	{"fertilizers", 0.20},
	{"pesticides", 0.10},
	{"irrigation", 0.10},
	{"labor", 0.25},
	{"harvesting", 0.15},
	{"transport", 0.08},
}

// YieldResult is the computed economics for an area of one crop.
type YieldResult struct {
	TotalYield float64    `json:"totalYield"` // quintals
	Revenue    float64    `json:"revenue"`
	Cost       float64    `json:"cost"`
	Profit     float64    `json:"profit"`
	Breakdown  []CostItem `json:"breakdown"`
}

// ComputeYield derives total yield, revenue, cost and profit for the given
// area. Hectares are converted at 2.47 acres per hectare; no other units are
// supported. Each breakdown item is round(cost * share).
func ComputeYield(profile YieldProfile, area float64, unit AreaUnit) (YieldResult, error) {
	if area <= 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return YieldResult{}, ErrBadArea
	}

	acres := area
	switch unit {
	case UnitAcre:
	case UnitHectare:
		acres = area * acresPerHectare
	default:
		return YieldResult{}, fmt.Errorf("unknown area unit %q", unit)
	}

	totalYield := acres * profile.YieldPerAcre
	revenue := totalYield * profile.PricePerUnit
	cost := acres * profile.CostPerAcre

	breakdown := make([]CostItem, len(costShares))
	for i, s := range costShares {
		breakdown[i] = CostItem{Category: s.category, Value: int(math.Round(cost * s.share))}
	}

	return YieldResult{
		TotalYield: totalYield,
		Revenue:    revenue,
		Cost:       cost,
		Profit:     revenue - cost,
		Breakdown:  breakdown,
	}, nil
}
