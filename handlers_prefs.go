package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"kisanmitra/agri"
)

// handleGetLanguage returns the active language preference.
func (a *App) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, languageResp{Language: a.currentLanguage()})
}

// handleSetLanguage validates and persists a new language preference.
func (a *App) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if !agri.SupportedLanguage(req.Language) {
		http.Error(w, "unsupported language code", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := a.setLanguage(ctx, req.Language); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, languageResp{Language: req.Language})
}
