package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kisanmitra/agri"
)

// handleSchedule pins a crop's cultivation stages to calendar dates counted
// from the sowing date.
func (a *App) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Crop == "" || req.SowingDate == "" {
		http.Error(w, "crop and sowingDate are required", http.StatusBadRequest)
		return
	}

	sowing, err := time.Parse(dateLayout, req.SowingDate)
	if err != nil {
		http.Error(w, "bad sowingDate, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	stages, err := agri.GenerateSchedule(req.Crop, sowing)
	if errors.Is(err, agri.ErrScheduleUnavailable) {
		http.Error(w, "schedule coming soon for this crop", http.StatusNotFound)
		return
	}

	out := scheduleResp{Crop: req.Crop, Stages: make([]scheduleStage, len(stages))}
	for i, s := range stages {
		out.Stages[i] = scheduleStage{
			Date:        formatDate(s.Date),
			DayOffset:   s.DayOffset,
			Title:       s.Title,
			Description: s.Description,
		}
	}
	writeJSON(w, out)
}
