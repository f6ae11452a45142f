package agri

import (
	"errors"
	"sort"
	"time"
)

// GrowthStage — one step in a crop's cultivation timeline. DayOffset is
// counted from the sowing date and may be negative for land-prep stages.
type GrowthStage struct {
	DayOffset   int    `json:"dayOffset"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ErrScheduleUnavailable — no cultivation schedule exists for the crop yet.
var ErrScheduleUnavailable = errors.New("schedule not available for this crop")

// CropSchedules holds the fixed stage sequences, ordered by day offset.
var CropSchedules = map[string][]GrowthStage{
	"wheat": {
		{DayOffset: -15, Title: "land_prep", Description: "wheat_land_prep_desc"},
		{DayOffset: -1, Title: "seed_treatment", Description: "wheat_seed_treatment_desc"},
		{DayOffset: 0, Title: "sowing", Description: "wheat_sowing_desc"},
		{DayOffset: 21, Title: "cri_stage", Description: "wheat_cri_desc"},
		{DayOffset: 40, Title: "tillering_stage", Description: "wheat_tillering_desc"},
		{DayOffset: 65, Title: "jointing_stage", Description: "wheat_jointing_desc"},
		{DayOffset: 85, Title: "flowering_stage", Description: "wheat_flowering_desc"},
		{DayOffset: 105, Title: "milking_stage", Description: "wheat_milking_desc"},
		{DayOffset: 125, Title: "harvesting_stage", Description: "wheat_harvesting_desc"},
		{DayOffset: 130, Title: "marketing", Description: "wheat_marketing_desc"},
	},
	"paddy": {
		{DayOffset: -20, Title: "nursery_prep", Description: "paddy_nursery_desc"},
		{DayOffset: -5, Title: "main_field_prep", Description: "paddy_field_prep_desc"},
		{DayOffset: 0, Title: "transplanting", Description: "paddy_transplanting_desc"},
		{DayOffset: 15, Title: "gap_filling", Description: "paddy_gap_filling_desc"},
		{DayOffset: 30, Title: "tillering_stage", Description: "paddy_tillering_desc"},
		{DayOffset: 50, Title: "panicle_initiation", Description: "paddy_panicle_desc"},
		{DayOffset: 70, Title: "flowering_stage", Description: "paddy_flowering_desc"},
		{DayOffset: 100, Title: "draining", Description: "paddy_draining_desc"},
		{DayOffset: 110, Title: "harvesting_stage", Description: "paddy_harvesting_desc"},
		{DayOffset: 115, Title: "threshing", Description: "paddy_threshing_desc"},
	},
	"maize": {
		{DayOffset: -10, Title: "ploughing", Description: "maize_ploughing_desc"},
		{DayOffset: 0, Title: "sowing", Description: "maize_sowing_desc"},
		{DayOffset: 20, Title: "knee_high_stage", Description: "maize_knee_high_desc"},
		{DayOffset: 45, Title: "tasseling", Description: "maize_tasseling_desc"},
		{DayOffset: 60, Title: "silking", Description: "maize_silking_desc"},
		{DayOffset: 90, Title: "maturity", Description: "maize_maturity_desc"},
		{DayOffset: 100, Title: "harvesting_stage", Description: "maize_harvesting_desc"},
		{DayOffset: 105, Title: "marketing", Description: "maize_marketing_desc"},
	},
}

// ScheduledStage is a growth stage pinned to a calendar date.
type ScheduledStage struct {
	Date        time.Time `json:"date"`
	DayOffset   int       `json:"dayOffset"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// ScheduleCrops lists crops with cultivation schedules, sorted.
func ScheduleCrops() []string {
	out := make([]string, 0, len(CropSchedules))
	for c := range CropSchedules {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// GenerateSchedule pins each stage of the crop's timeline to a date relative
// to sowing. Unknown crops get ErrScheduleUnavailable rather than an empty
// plan.
func GenerateSchedule(crop string, sowing time.Time) ([]ScheduledStage, error) {
	stages, ok := CropSchedules[crop]
	if !ok {
		return nil, ErrScheduleUnavailable
	}
	out := make([]ScheduledStage, len(stages))
	for i, s := range stages {
		out[i] = ScheduledStage{
			Date:        sowing.AddDate(0, 0, s.DayOffset),
			DayOffset:   s.DayOffset,
			Title:       s.Title,
			Description: s.Description,
		}
	}
	return out, nil
}
