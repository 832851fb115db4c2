package domain

// DrinkPreset is a predefined drink the client can offer for one-tap logging.
type DrinkPreset struct {
	Name     string  `json:"name"`
	AmountMg float64 `json:"amount_mg"`
}

// DrinkPresets lists the built-in drinks with typical caffeine content.
var DrinkPresets = []DrinkPreset{
	{Name: "Coffee (8oz)", AmountMg: 95},
	{Name: "Espresso Shot", AmountMg: 63},
	{Name: "Black Tea", AmountMg: 47},
	{Name: "Green Tea", AmountMg: 28},
	{Name: "Energy Drink", AmountMg: 80},
	{Name: "Soda (12oz)", AmountMg: 35},
}
