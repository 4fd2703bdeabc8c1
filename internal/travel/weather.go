// Package travel provides the auxiliary data payloads rendered next to the
// chat: weather, cultural info, and transportation options for a named
// location. The data is synthetic, standing in for real upstream APIs; the
// interface contract (location in, fixed JSON shape out) is what callers and
// the HTTP layer depend on.
package travel

import "math/rand"

// Weather condition values. The set is closed; clients key icons off it.
var conditions = []string{"Clear", "Cloudy", "Rain", "Snow"}

// Weather is the per-location weather payload.
//
// Bounds: Temperature 0-30, Humidity 0-100, WindSpeed 0-30.
type Weather struct {
	Temperature int              `json:"temperature"`
	Condition   string           `json:"condition"`
	Humidity    int              `json:"humidity"`
	WindSpeed   int              `json:"windSpeed"`
	Activities  []Recommendation `json:"activities,omitempty"`
}

// Recommendation is an activity suggestion derived from the weather.
type Recommendation struct {
	Activity string `json:"activity"`
	Reason   string `json:"reason"`
	BestTime string `json:"bestTime"`
}

// GenerateWeather produces uniformly random weather for a location and
// derives 1-2 activity recommendations from a fixed rule table. The location
// argument does not influence the values in the mock form.
func GenerateWeather(_ string) Weather {
	w := Weather{
		Temperature: rand.Intn(31),
		Condition:   conditions[rand.Intn(len(conditions))],
		Humidity:    rand.Intn(101),
		WindSpeed:   rand.Intn(31),
	}
	w.Activities = recommend(w.Condition, w.Temperature)
	return w
}

// recommend maps condition and temperature to activity suggestions.
// Rule table: one suggestion per condition, plus water activities when it is
// genuinely warm.
func recommend(condition string, temperature int) []Recommendation {
	var out []Recommendation

	switch condition {
	case "Clear":
		out = append(out, Recommendation{
			Activity: "Outdoor Sightseeing",
			Reason:   "Clear skies make it a great day to explore on foot.",
			BestTime: "Morning",
		})
	case "Cloudy":
		out = append(out, Recommendation{
			Activity: "City Walking Tour",
			Reason:   "Overcast weather keeps the streets cool and comfortable.",
			BestTime: "Afternoon",
		})
	case "Rain":
		out = append(out, Recommendation{
			Activity: "Museum Tours",
			Reason:   "Stay dry while discovering local art and history.",
			BestTime: "Any time",
		})
	case "Snow":
		out = append(out, Recommendation{
			Activity: "Winter Sports",
			Reason:   "Fresh snow is perfect for skiing or snowshoeing.",
			BestTime: "Midday",
		})
	}

	if temperature > 25 {
		out = append(out, Recommendation{
			Activity: "Water Activities",
			Reason:   "High temperatures are ideal for the beach or pool.",
			BestTime: "Late morning",
		})
	}

	return out
}
