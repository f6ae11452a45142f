package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"kisanmitra/agri"
)

// handleYield computes total yield, revenue, cost, profit and the expense
// breakdown for an area of one crop.
func (a *App) handleYield(w http.ResponseWriter, r *http.Request) {
	var req yieldReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Crop == "" {
		http.Error(w, "crop is required", http.StatusBadRequest)
		return
	}

	profile, ok := agri.CropEconomics[req.Crop]
	if !ok {
		http.Error(w, "no yield data for this crop", http.StatusNotFound)
		return
	}

	unit := agri.AreaUnit(req.Unit)
	if req.Unit == "" {
		unit = agri.UnitAcre
	}

	result, err := agri.ComputeYield(profile, req.Area, unit)
	switch {
	case errors.Is(err, agri.ErrBadArea):
		http.Error(w, "area must be a positive number", http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "unit must be acre or hectare", http.StatusBadRequest)
		return
	}

	writeJSON(w, yieldResp{Crop: req.Crop, YieldResult: result})
}
