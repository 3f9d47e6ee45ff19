package models

// DatasetInfo describes the loaded dataset: what month was requested, how it
// was obtained, and what survived cleaning and sampling.
type DatasetInfo struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	SampleSize    int    `json:"sampleSize"`
	TripCount     int    `json:"tripCount"`
	DistinctDates int    `json:"distinctDates"`
	ZoneCount     int    `json:"zoneCount"`
	TripsSource   string `json:"tripsSource"`
	ZonesSource   string `json:"zonesSource"`
	FromSnapshot  bool   `json:"fromSnapshot"`
	LoadedAt      int64  `json:"loadedAt"`
}
