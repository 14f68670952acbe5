package catalog

// SampleMenu is served when no document store is configured, so the
// site and the chat assistant stay usable in local development.
func SampleMenu() []MenuItem {
	return []MenuItem{
		{
			ID:          "sample-torta-ahogada",
			Name:        "Torta Ahogada",
			Description: "Birote salado relleno de carnitas, bañado en salsa de chile de árbol.",
			Price:       110.00,
			Category:    "Comida",
			Day:         DayEveryDay,
		},
		{
			ID:          "sample-chilaquiles-rojos",
			Name:        "Chilaquiles Rojos",
			Description: "Totopos bañados en salsa roja con crema, queso y cebolla.",
			Price:       95.00,
			Category:    "Desayuno",
			Day:         "Lunes",
		},
		{
			ID:          "sample-chilaquiles-verdes",
			Name:        "Chilaquiles Verdes",
			Description: "Totopos bañados en salsa verde con crema, queso y cebolla.",
			Price:       95.00,
			Category:    "Desayuno",
			Day:         "Martes",
		},
		{
			ID:          "sample-pozole-rojo",
			Name:        "Pozole Rojo",
			Description: "Pozole estilo Jalisco con maíz cacahuazintle y carne de cerdo.",
			Price:       120.00,
			Category:    CategorySpecial,
			Day:         DayEveryDay,
		},
		{
			ID:          "sample-agua-jamaica",
			Name:        "Agua de Jamaica",
			Description: "Agua fresca de flor de jamaica, medio litro.",
			Price:       40.00,
			Category:    "Bebida",
			Day:         DayEveryDay,
		},
		{
			ID:          "sample-cafe-olla",
			Name:        "Café de Olla",
			Description: "Café con canela y piloncillo, servido en jarrito.",
			Price:       35.00,
			Category:    "Bebida",
			Day:         DayEveryDay,
		},
	}
}
