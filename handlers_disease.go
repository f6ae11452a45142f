package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kisanmitra/agri"
)

const maxDiseaseImages = 5

const diseasePromptTemplate = `Identify the disease in this %s plant.
User symptoms: %s.
Provide a JSON response with these keys: disease, confidence, symptoms (array), treatments (array), preventiveMeasures (array).
The values for disease, symptoms, treatments, and preventiveMeasures MUST be in %s.
Reply ONLY with valid JSON.`

// handleDisease forwards crop photos and symptoms to the multimodal AI and
// relays its structured diagnosis. AI failures degrade to an analysis-error
// payload; only validation problems are HTTP errors.
func (a *App) handleDisease(w http.ResponseWriter, r *http.Request) {
	var req diseaseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Crop == "" || len(req.Images) == 0 {
		http.Error(w, "crop and at least one image are required", http.StatusBadRequest)
		return
	}
	if len(req.Images) > maxDiseaseImages {
		req.Images = req.Images[:maxDiseaseImages]
	}

	client := a.geminiClient()
	if client == nil {
		http.Error(w, "disease detection needs an AI credential", http.StatusServiceUnavailable)
		return
	}

	symptoms := req.Symptoms
	if symptoms == "" {
		symptoms = "None"
	}
	prompt := fmt.Sprintf(diseasePromptTemplate, req.Crop, symptoms, agri.LanguageName(a.currentLanguage()))

	parts := []geminiPart{textPart(prompt)}
	for _, img := range req.Images {
		part, err := imagePart(img)
		if err != nil {
			http.Error(w, "bad image payload", http.StatusBadRequest)
			return
		}
		parts = append(parts, part)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()

	text, err := client.Generate(ctx, parts)
	if err != nil {
		writeJSON(w, analysisError(err))
		return
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		writeJSON(w, analysisError(err))
		return
	}
	writeJSON(w, analysis)
}

// parseAnalysis pulls the first {...} block out of the model's reply; models
// often wrap the JSON in prose or code fences.
func parseAnalysis(text string) (diseaseAnalysis, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return diseaseAnalysis{}, fmt.Errorf("no json object in analysis reply")
	}

	var out diseaseAnalysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return diseaseAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	return out, nil
}

// analysisError is the degraded diagnosis shown when the AI path fails.
func analysisError(err error) diseaseAnalysis {
	return diseaseAnalysis{
		Disease:            "Analysis failed",
		Confidence:         "low",
		Symptoms:           []string{err.Error()},
		Treatments:         []string{"Please check your internet connection and try again."},
		PreventiveMeasures: []string{},
	}
}
