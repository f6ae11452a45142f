package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kisanmitra/agri"
)

// handlePriceOptions returns the valid dropdown values, narrowing as crop,
// state and district query params are supplied.
func (a *App) handlePriceOptions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out := priceOptionsResp{Crops: agri.PriceCrops()}

	if crop := q.Get("crop"); crop != "" {
		out.States = agri.PriceStates(crop)
		if state := q.Get("state"); state != "" {
			out.Districts = agri.PriceDistricts(crop, state)
			if district := q.Get("district"); district != "" {
				out.Markets = agri.PriceMarkets(crop, state, district)
			}
		}
	}
	writeJSON(w, out)
}

// handlePriceForecast looks up the mandi entry and projects its price for an
// optional target date.
func (a *App) handlePriceForecast(w http.ResponseWriter, r *http.Request) {
	var req priceForecastReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Crop == "" || req.State == "" || req.District == "" || req.Market == "" {
		http.Error(w, "crop, state, district and market are required", http.StatusBadRequest)
		return
	}

	rt := agri.RateType(req.RateType)
	if req.RateType == "" {
		rt = agri.RateWholesale
	}

	var target *time.Time
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			http.Error(w, "bad date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		target = &d
	}

	entry, err := agri.LookupPrice(req.Crop, req.State, req.District, req.Market)
	if err != nil {
		http.Error(w, "no data found for this combination", http.StatusNotFound)
		return
	}

	projection, err := agri.ProjectPrice(entry, rt, target, time.Now())
	switch {
	case errors.Is(err, agri.ErrNoMSP):
		http.Error(w, "msp not available for this crop", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "bad rate type", http.StatusBadRequest)
		return
	}

	writeJSON(w, priceForecastResp{
		Crop:            req.Crop,
		State:           req.State,
		District:        req.District,
		Market:          req.Market,
		RateType:        string(rt),
		PriceProjection: projection,
	})
}
