package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// handleChat answers a free-text question, either from the local knowledge
// base or via the AI relay, depending on the mode fixed at startup.
func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reply := a.responder.Respond(ctx, req.Message, a.currentLanguage())
	writeJSON(w, chatResp{Reply: reply, Mode: a.chatMode()})
}
