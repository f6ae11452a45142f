package main

import (
	"encoding/json"
	"net/http"
	"time"

	"kisanmitra/agri"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// Request/response DTOs. Keep them minimal and explicit.

type resolveRegionReq struct {
	Query string   `json:"query,omitempty"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

type resolveRegionResp struct {
	Region   string           `json:"region"`
	Location string           `json:"location"`
	Generic  bool             `json:"generic"`
	Soil     agri.SoilProfile `json:"soil"`
}

type recommendReq struct {
	Region string   `json:"region,omitempty"`
	N      *float64 `json:"n,omitempty"`
	P      *float64 `json:"p,omitempty"`
	K      *float64 `json:"k,omitempty"`
	PH     *float64 `json:"ph,omitempty"`
}

type recommendResp struct {
	Region          string                 `json:"region,omitempty"`
	Recommendations []agri.CropSuitability `json:"recommendations"`
}

type priceForecastReq struct {
	Crop     string `json:"crop"`
	State    string `json:"state"`
	District string `json:"district"`
	Market   string `json:"market"`
	RateType string `json:"rateType,omitempty"` // defaults to wholesale
	Date     string `json:"date,omitempty"`     // YYYY-MM-DD
}

type priceForecastResp struct {
	Crop     string `json:"crop"`
	State    string `json:"state"`
	District string `json:"district"`
	Market   string `json:"market"`
	RateType string `json:"rateType"`
	agri.PriceProjection
}

type priceOptionsResp struct {
	Crops     []string `json:"crops"`
	States    []string `json:"states,omitempty"`
	Districts []string `json:"districts,omitempty"`
	Markets   []string `json:"markets,omitempty"`
}

type yieldReq struct {
	Crop string  `json:"crop"`
	Area float64 `json:"area"`
	Unit string  `json:"unit,omitempty"` // acre (default) or hectare
}

type yieldResp struct {
	Crop string `json:"crop"`
	agri.YieldResult
}

type scheduleReq struct {
	Crop       string `json:"crop"`
	SowingDate string `json:"sowingDate"` // YYYY-MM-DD
}

type scheduleStage struct {
	Date        string `json:"date"` // YYYY-MM-DD
	DayOffset   int    `json:"dayOffset"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type scheduleResp struct {
	Crop   string          `json:"crop"`
	Stages []scheduleStage `json:"stages"`
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Reply string `json:"reply"`
	Mode  string `json:"mode"` // offline | online
}

type diseaseReq struct {
	Crop     string   `json:"crop"`
	Symptoms string   `json:"symptoms,omitempty"`
	Images   []string `json:"images"` // data URLs, at most 5
}

// diseaseAnalysis mirrors the JSON the model is instructed to produce.
// Confidence is left loose: models answer with "High" as often as with 0.9.
type diseaseAnalysis struct {
	Disease            string   `json:"disease"`
	Confidence         any      `json:"confidence"`
	Symptoms           []string `json:"symptoms"`
	Treatments         []string `json:"treatments"`
	PreventiveMeasures []string `json:"preventiveMeasures"`
}

type languageResp struct {
	Language string `json:"language"`
}

type languageReq struct {
	Language string `json:"language"`
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string { return t.Format(dateLayout) }
