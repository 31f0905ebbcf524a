package storage

const (
	UnitCm = "cm"
	UnitIn = "in"
)

// Measurements is stored on orders and patterns as a single JSON column.
// Values are kept as strings: they are display-only, never arithmetic.
type Measurements struct {
	Unit     string              `json:"unit"`
	Standard StandardMeasures    `json:"standard"`
	Custom   []CustomMeasurement `json:"custom"`
}

// StandardMeasures is the closed set of body measurements the order form
// offers. Field keys match the frontend verbatim.
type StandardMeasures struct {
	TourDePoitrine string `json:"tourDePoitrine,omitempty"`
	TourDeTaille   string `json:"tourDeTaille,omitempty"`
	TourDeHanches  string `json:"tourDeHanches,omitempty"`
	LongueurBras   string `json:"longueurBras,omitempty"`
	LongueurJambe  string `json:"longueurJambe,omitempty"`
	CarrureDos     string `json:"carrureDos,omitempty"`
}

type CustomMeasurement struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
