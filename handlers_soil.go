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

// handleListRegions returns the known region keys and their soil profiles.
func (a *App) handleListRegions(w http.ResponseWriter, r *http.Request) {
	keys := agri.RegionKeys()
	out := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]any{"region": k, "soil": agri.SoilData[k]})
	}
	writeJSON(w, out)
}

// handleResolveRegion maps a free-text place name or a coordinate to a
// reference region. Geocoding failures never fail the request: the free-text
// path degrades to the generic profile, the coordinate path to the latitude
// bands.
func (a *App) handleResolveRegion(w http.ResponseWriter, r *http.Request) {
	var req resolveRegionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	switch {
	case strings.TrimSpace(req.Query) != "":
		writeJSON(w, a.resolveByQuery(ctx, strings.TrimSpace(req.Query)))
	case req.Lat != nil && req.Lng != nil:
		writeJSON(w, a.resolveByCoordinate(ctx, *req.Lat, *req.Lng))
	default:
		http.Error(w, "query or lat/lng is required", http.StatusBadRequest)
	}
}

func (a *App) resolveByQuery(ctx context.Context, query string) resolveRegionResp {
	place, err := a.geocoder.Search(ctx, query)
	if err != nil {
		// UpstreamUnavailable and empty results collapse into the same
		// generic fallback; the caller never sees partial state.
		return resolveRegionResp{
			Region:   agri.GenericRegion,
			Location: query + " (Generic Data)",
			Generic:  true,
			Soil:     agri.GenericSoil,
		}
	}

	state := place.Address.StateName()
	city := place.Address.CityName()
	if city == "" {
		city = query
	}

	region := agri.MatchRegion(state)
	if region == "" {
		if lat, err := place.Latitude(); err == nil {
			region = agri.RegionForLatitude(lat)
		}
	}

	if soil, ok := agri.SoilData[region]; ok {
		return resolveRegionResp{
			Region:   region,
			Location: fmt.Sprintf("%s, %s", city, state),
			Soil:     soil,
		}
	}
	return resolveRegionResp{
		Region:   agri.GenericRegion,
		Location: city + " (Generic Data)",
		Generic:  true,
		Soil:     agri.GenericSoil,
	}
}

func (a *App) resolveByCoordinate(ctx context.Context, lat, lng float64) resolveRegionResp {
	place, err := a.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		// The latitude is known regardless of the geocoder, so the band
		// heuristic applies instead of the generic profile.
		region := agri.RegionForLatitude(lat)
		return resolveRegionResp{
			Region:   region,
			Location: fmt.Sprintf("%.2f, %.2f", lat, lng),
			Soil:     agri.SoilData[region],
		}
	}

	state := place.Address.StateName()
	city := place.Address.CityName()
	if city == "" {
		city = place.Address.StateDistrict
	}
	if city == "" {
		city = "Selected Area"
	}

	region := agri.MatchRegion(state)
	if region == "" {
		region = agri.RegionForLatitude(lat)
	}

	if soil, ok := agri.SoilData[region]; ok {
		return resolveRegionResp{
			Region:   region,
			Location: fmt.Sprintf("%s, %s", city, state),
			Soil:     soil,
		}
	}
	return resolveRegionResp{
		Region:   agri.GenericRegion,
		Location: city + " (Generic)",
		Generic:  true,
		Soil:     agri.GenericMapSoil,
	}
}

// handleRecommend returns the crop suitability list for a region, or the
// balanced generic list for manual soil inputs.
func (a *App) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if req.Region != "" {
		soil, ok := agri.SoilData[req.Region]
		if !ok {
			http.Error(w, "unknown region", http.StatusNotFound)
			return
		}
		writeJSON(w, recommendResp{Region: req.Region, Recommendations: soil.Crops})
		return
	}

	if req.N == nil || req.P == nil {
		http.Error(w, "soil details (n, p) or a region are required", http.StatusBadRequest)
		return
	}

	writeJSON(w, recommendResp{Recommendations: agri.GenericRecommendations})
}
