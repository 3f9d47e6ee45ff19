package models

// Zone is one TLC taxi zone from the zone GeoJSON.
type Zone struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Borough string `json:"borough"`
}

// NewZone creates a Zone with the provided values
func NewZone(id int, name, borough string) Zone {
	return Zone{
		ID:      id,
		Name:    name,
		Borough: borough,
	}
}
