package model

// Movie is immutable reference data describing one film.  Movies come
// either from the external catalog collaborator or from the local seed
// catalog; both sources produce the same shape.  The ID is the catalog
// identifier (an IMDb-style id such as "tt1375666").
//
// Fields:
//  ID       – catalog identifier.
//  Title    – display title.
//  Year     – release year as printed by the catalog (e.g. "2010").
//  Genre    – comma-separated genre list.
//  Director – director name(s).
//  Actors   – comma-separated principal cast.
//  Plot     – short plot summary.
//  Rating   – catalog rating as a string ("8.8"), "N/A" when unknown.
type Movie struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	Genre    string `json:"genre"`
	Director string `json:"director"`
	Actors   string `json:"actors"`
	Plot     string `json:"plot"`
	Rating   string `json:"rating"`
}
