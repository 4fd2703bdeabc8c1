package travel

// Flight is one flight option in the transportation panel.
type Flight struct {
	Airline   string `json:"airline"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int    `json:"price"`
	Duration  string `json:"duration"`
}

// Train is one train option in the transportation panel.
type Train struct {
	Operator  string `json:"operator"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int    `json:"price"`
	Duration  string `json:"duration"`
}

// Transportation is the per-location transportation payload.
type Transportation struct {
	Flights []Flight `json:"flights"`
	Trains  []Train  `json:"trains"`
}

// GetTransportation returns the static transportation options. Prices and
// times do not vary by location in the mock form.
func GetTransportation(_ string) Transportation {
	return Transportation{
		Flights: []Flight{
			{Airline: "Global Airways", Departure: "10:00 AM", Arrival: "2:00 PM", Price: 299, Duration: "4h"},
			{Airline: "Sky Express", Departure: "2:00 PM", Arrival: "6:00 PM", Price: 349, Duration: "4h"},
		},
		Trains: []Train{
			{Operator: "Express Rail", Departure: "9:00 AM", Arrival: "4:00 PM", Price: 89, Duration: "7h"},
			{Operator: "Local Train", Departure: "11:00 AM", Arrival: "6:00 PM", Price: 59, Duration: "7h"},
		},
	}
}
