package domain

// Location is a named point: human-readable address plus [lat, lng].
type Location struct {
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}
