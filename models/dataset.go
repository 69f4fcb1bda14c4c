package models

import (
	"time"
)

// EntryType classifies a logged fitness entry.
type EntryType string

const (
	Workout     EntryType = "workout"
	Meal        EntryType = "meal"
	WeighIn     EntryType = "weigh_in"
	WaterIntake EntryType = "water"
)

// Profile is the user's body profile collected by the setup wizard.
type Profile struct {
	Name          string  `json:"name"`
	Sex           string  `json:"sex,omitempty"`
	BirthYear     int     `json:"birth_year,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
}

// Goals holds the user's daily and long-term targets.
type Goals struct {
	DailyCalories  int     `json:"daily_calories,omitempty"`
	DailyProteinG  int     `json:"daily_protein_g,omitempty"`
	DailyWaterMl   int     `json:"daily_water_ml,omitempty"`
	TargetWeightKg float64 `json:"target_weight_kg,omitempty"`
	WeeklyWorkouts int     `json:"weekly_workouts,omitempty"`
}

// Entry is a single logged item: a workout, a meal, a weigh-in or a glass of water.
// Values carries the numeric measurements keyed by name (kcal, minutes, kg, ml...).
type Entry struct {
	ID       string             `json:"id"`
	Type     EntryType          `json:"type"`
	LoggedAt time.Time          `json:"logged_at"`
	Values   map[string]float64 `json:"values,omitempty"`
	Note     string             `json:"note,omitempty"`
}

// Dataset is the whole user dataset. It is stored locally as a single snapshot
// and mirrored to the remote bin as a single JSON document.
type Dataset struct {
	Profile   *Profile  `json:"profile,omitempty"`
	Goals     *Goals    `json:"goals,omitempty"`
	Entries   []Entry   `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDataset returns an empty dataset ready to be serialised.
func NewDataset() Dataset {
	return Dataset{Entries: []Entry{}}
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	out := Dataset{UpdatedAt: d.UpdatedAt, Entries: make([]Entry, 0, len(d.Entries))}
	if d.Profile != nil {
		p := *d.Profile
		out.Profile = &p
	}
	if d.Goals != nil {
		g := *d.Goals
		out.Goals = &g
	}
	for _, e := range d.Entries {
		if e.Values != nil {
			values := make(map[string]float64, len(e.Values))
			for k, v := range e.Values {
				values[k] = v
			}
			e.Values = values
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// FindEntry returns the index of the entry with the given id, or -1.
func (d Dataset) FindEntry(id string) int {
	for i, e := range d.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
