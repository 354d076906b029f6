package model

// Theater is immutable reference data for one venue.  Theaters are shared
// across all sessions and never mutated after seeding.
//
// Fields:
//  ID       – theater identifier (e.g. "th1").
//  Name     – display name.
//  Location – neighbourhood or district shown to the customer.
type Theater struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
