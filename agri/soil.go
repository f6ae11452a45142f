package agri

import (
	"sort"
	"strings"
)

// SoilProfile — fixed N/P/K/pH readings for one region plus the crops that do
// well there. Loaded once at startup, never mutated.
type SoilProfile struct {
	N     int               `json:"n"`
	P     int               `json:"p"`
	K     int               `json:"k"`
	PH    float64           `json:"ph"`
	Crops []CropSuitability `json:"crops"`
}

// CropSuitability — one recommended crop with a 0-100 suitability score.
type CropSuitability struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Duration string `json:"duration"` // e.g. "125 days" or "running"
	Water    string `json:"water"`    // very_low | low | medium | high
}

// GenericRegion is the sentinel key returned when neither the geocoder nor
// the latitude bands produce a known region.
const GenericRegion = "Generic"

// SoilData maps region keys to their reference soil profiles.
var SoilData = map[string]SoilProfile{
	"Punjab": {
		N: 140, P: 50, K: 50, PH: 7.5,
		Crops: []CropSuitability{
			{Name: "wheat", Score: 98, Duration: "125 days", Water: "high"},
			{Name: "paddy", Score: 90, Duration: "110 days", Water: "high"},
			{Name: "maize", Score: 85, Duration: "100 days", Water: "medium"},
			{Name: "sugarcane", Score: 80, Duration: "300+ days", Water: "high"},
		},
	},
	"Maharashtra": {
		N: 80, P: 40, K: 60, PH: 6.8,
		Crops: []CropSuitability{
			{Name: "cotton", Score: 95, Duration: "160 days", Water: "medium"},
			{Name: "sugarcane", Score: 92, Duration: "365 days", Water: "high"},
			{Name: "soybean", Score: 88, Duration: "95 days", Water: "low"},
			{Name: "jowar", Score: 82, Duration: "110 days", Water: "low"},
		},
	},
	"TamilNadu": {
		N: 100, P: 45, K: 55, PH: 6.5,
		Crops: []CropSuitability{
			{Name: "paddy", Score: 94, Duration: "120 days", Water: "high"},
			{Name: "banana", Score: 89, Duration: "300 days", Water: "high"},
			{Name: "coconut", Score: 96, Duration: "running", Water: "medium"},
			{Name: "groundnut", Score: 85, Duration: "105 days", Water: "low"},
		},
	},
	"Rajasthan": {
		N: 60, P: 30, K: 40, PH: 8.0,
		Crops: []CropSuitability{
			{Name: "bajra", Score: 98, Duration: "85 days", Water: "very_low"},
			{Name: "mustard", Score: 92, Duration: "110 days", Water: "low"},
			{Name: "guar", Score: 88, Duration: "90 days", Water: "low"},
			{Name: "wheat", Score: 70, Duration: "120 days", Water: "medium"},
		},
	},
	"WestBengal": {
		N: 120, P: 60, K: 55, PH: 6.0,
		Crops: []CropSuitability{
			{Name: "paddy", Score: 98, Duration: "115 days", Water: "high"},
			{Name: "jute", Score: 95, Duration: "120 days", Water: "high"},
			{Name: "potato", Score: 90, Duration: "90 days", Water: "medium"},
			{Name: "mustard", Score: 80, Duration: "100 days", Water: "low"},
		},
	},
	"UttarPradesh": {
		N: 125, P: 55, K: 45, PH: 7.2,
		Crops: []CropSuitability{
			{Name: "sugarcane", Score: 96, Duration: "360 days", Water: "high"},
			{Name: "wheat", Score: 95, Duration: "130 days", Water: "medium"},
			{Name: "potato", Score: 88, Duration: "90 days", Water: "medium"},
			{Name: "paddy", Score: 85, Duration: "115 days", Water: "high"},
		},
	},
	"Gujarat": {
		N: 90, P: 40, K: 50, PH: 7.6,
		Crops: []CropSuitability{
			{Name: "groundnut", Score: 96, Duration: "110 days", Water: "low"},
			{Name: "cotton", Score: 94, Duration: "160 days", Water: "medium"},
			{Name: "castor", Score: 90, Duration: "150 days", Water: "low"},
			{Name: "bajra", Score: 80, Duration: "90 days", Water: "low"},
		},
	},
	"Karnataka": {
		N: 95, P: 50, K: 55, PH: 6.8,
		Crops: []CropSuitability{
			{Name: "ragi", Score: 96, Duration: "110 days", Water: "low"},
			{Name: "coffee", Score: 90, Duration: "running", Water: "medium"},
			{Name: "maize", Score: 85, Duration: "100 days", Water: "medium"},
			{Name: "sunflower", Score: 80, Duration: "90 days", Water: "low"},
		},
	},
	"Kerala": {
		N: 110, P: 45, K: 60, PH: 5.5,
		Crops: []CropSuitability{
			{Name: "rubber", Score: 98, Duration: "running", Water: "high"},
			{Name: "coconut", Score: 95, Duration: "running", Water: "medium"},
			{Name: "pepper", Score: 90, Duration: "running", Water: "high"},
			{Name: "banana", Score: 88, Duration: "300 days", Water: "high"},
		},
	},
}

// GenericSoil is substituted when a place resolves but its state is unknown
// to the reference tables.
var GenericSoil = SoilProfile{N: 90, P: 40, K: 40, PH: 6.5, Crops: GenericRecommendations}

// GenericMapSoil is the fallback for map-pin reverse lookups.
var GenericMapSoil = SoilProfile{N: 100, P: 50, K: 50, PH: 7.0, Crops: GenericRecommendations}

// GenericRecommendations is the balanced crop list used when no region data
// applies (manual soil input or generic location).
var GenericRecommendations = []CropSuitability{
	{Name: "wheat", Score: 85, Duration: "120 days", Water: "medium"},
	{Name: "millets", Score: 80, Duration: "90 days", Water: "low"},
	{Name: "pulses", Score: 75, Duration: "100 days", Water: "low"},
	{Name: "tomato", Score: 70, Duration: "110 days", Water: "medium"},
}

// MatchRegion resolves a geocoded state name against the reference-table
// keys. Whitespace is stripped so "Tamil Nadu" matches "TamilNadu"; the
// comparison is case-insensitive. Returns "" when nothing matches.
func MatchRegion(stateName string) string {
	if stateName == "" {
		return ""
	}
	clean := strings.ToLower(strings.Join(strings.Fields(stateName), ""))
	for key := range SoilData {
		if strings.ToLower(key) == clean {
			return key
		}
	}
	return ""
}

// RegionForLatitude maps a latitude to the nearest reference region when the
// geocoded state is unknown. Bands are fixed: >28 Punjab, >24 UttarPradesh,
// >18 Maharashtra, else TamilNadu.
func RegionForLatitude(lat float64) string {
	switch {
	case lat > 28:
		return "Punjab"
	case lat > 24:
		return "UttarPradesh"
	case lat > 18:
		return "Maharashtra"
	default:
		return "TamilNadu"
	}
}

// RegionKeys returns the known region names in stable sorted order.
func RegionKeys() []string {
	keys := make([]string, 0, len(SoilData))
	for k := range SoilData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
