package model

// UserPreferences captures a user's movie tastes as collected by the
// preferences dialogue phase.  Keyed by user ID in the preference
// store; updates are last-write-wins and only ever happen through
// that phase.
//
// Fields:
//  Genres           – favourite genres, lower-cased and trimmed.
//  Actors           – favourite actors, lower-cased and trimmed.
//  PreferredTimes   – preferred viewing slots (morning, afternoon,
//                     evening, night), lower-cased and trimmed.
//  PriceSensitivity – coarse price sensitivity; defaults to "medium".
type UserPreferences struct {
	Genres           []string `json:"genres"`
	Actors           []string `json:"actors"`
	PreferredTimes   []string `json:"preferred_times"`
	PriceSensitivity string   `json:"price_sensitivity"`
}
