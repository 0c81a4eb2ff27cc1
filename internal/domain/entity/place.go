package entity

// PlaceCandidate is one result of a free-text places search.
type PlaceCandidate struct {
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
}

// Coordinates of the candidate.
func (p PlaceCandidate) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}
