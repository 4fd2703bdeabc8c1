package travel

// CulturalInfo is the per-location cultural panel payload. The mock form is
// identical for every location; a real localization source would replace it
// behind the same shape.
type CulturalInfo struct {
	Languages []string `json:"languages"`
	Festivals []string `json:"festivals"`
	Customs   string   `json:"customs"`
	Etiquette []string `json:"etiquette"`
}

// GetCulturalInfo returns the cultural panel for a location.
func GetCulturalInfo(_ string) CulturalInfo {
	return CulturalInfo{
		Languages: []string{"English", "Local Language"},
		Festivals: []string{
			"New Year Celebration",
			"Summer Festival",
			"Harvest Festival",
		},
		Customs: "Rich in tradition and customs, visitors should respect local practices.",
		Etiquette: []string{
			"Remove shoes before entering homes",
			"Bow when greeting elders",
			"Use right hand for eating",
		},
	}
}
