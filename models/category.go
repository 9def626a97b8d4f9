package models

// Category is static storefront reference data, not persisted.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Image string `json:"image"`
}

// Categories returns the three top-level storefront categories.
func Categories() []Category {
	return []Category{
		{Key: "carte", Label: "Carte Collezionabili", Image: "https://images.unsplash.com/photo-1593113598332-cd288d649433?q=80&w=1600&auto=format&fit=crop"},
		{Key: "gadget", Label: "Gadget", Image: "https://images.unsplash.com/photo-1526657782461-9fe13402a841?q=80&w=1600&auto=format&fit=crop"},
		{Key: "videogiochi", Label: "Videogiochi", Image: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1600&auto=format&fit=crop"},
	}
}
