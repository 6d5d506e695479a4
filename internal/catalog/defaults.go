package catalog

// Default returns the shipped catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Breads: []BreadItem{
			{ID: "bread-1", Name: "Pan con Palta", Filling: "Palta", Emoji: "🥑"},
			{ID: "bread-2", Name: "Pan con Huevo", Filling: "Huevo Revuelto", Emoji: "🍳"},
			{ID: "bread-3", Name: "Pan con Jamón y Queso", Filling: "Jamón y Queso", Emoji: "🥪"},
			{ID: "bread-4", Name: "Pan con Mantequilla", Filling: "Mantequilla", Emoji: "🧈"},
			{ID: "bread-5", Name: "Pan con Mermelada", Filling: "Mermelada", Emoji: "🍓"},
			{ID: "bread-6", Name: "Pan con Aceituna", Filling: "Aceituna", Emoji: "🫒"},
			{ID: "bread-7", Name: "Pan con Pollo", Filling: "Pollo Deshilachado", Emoji: "🍗"},
		},
		Fruits: []FoodItem{
			{ID: "fruit-1", Name: "Papaya picada", Emoji: "🍈"},
			{ID: "fruit-2", Name: "Plátano", Emoji: "🍌"},
			{ID: "fruit-3", Name: "Manzana", Emoji: "🍎"},
			{ID: "fruit-4", Name: "Sandía", Emoji: "🍉"},
			{ID: "fruit-5", Name: "Piña", Emoji: "🍍"},
			{ID: "fruit-6", Name: "Uvas", Emoji: "🍇"},
			{ID: "fruit-7", Name: "Mandarina", Emoji: "🍊"},
			{ID: "fruit-8", Name: "Fresas", Emoji: "🍓"},
		},
		// Café is listed three times so it comes up more often.
		Drinks: []FoodItem{
			{ID: "drink-1", Name: "Café", Emoji: "☕"},
			{ID: "drink-1b", Name: "Café", Emoji: "☕"},
			{ID: "drink-1c", Name: "Café", Emoji: "☕"},
			{ID: "drink-2", Name: "Jugo de Naranja", Emoji: "🍊"},
			{ID: "drink-3", Name: "Avena", Emoji: "🥣"},
			{ID: "drink-4", Name: "Leche", Emoji: "🥛"},
			{ID: "drink-5", Name: "Café con Leche", Emoji: "☕"},
			{ID: "drink-6", Name: "Té", Emoji: "🍵"},
			{ID: "drink-7", Name: "Jugo de Piña", Emoji: "🍍"},
			{ID: "drink-8", Name: "Smoothie de Frutas", Emoji: "🥤"},
			{ID: "drink-9", Name: "Chocolate Caliente", Emoji: "🍫"},
		},
		Lunches: []FoodItem{
			{ID: "lunch-1", Name: "Lentejas", Emoji: "🍲"},
			{ID: "lunch-2", Name: "Ají de Gallina", Emoji: "🍛"},
			{ID: "lunch-3", Name: "Arroz con Pollo", Emoji: "🍗"},
			{ID: "lunch-4", Name: "Ceviche", Emoji: "🐟"},
			{ID: "lunch-5", Name: "Lomo Saltado", Emoji: "🥩"},
			{ID: "lunch-6", Name: "Tallarines Verdes", Emoji: "🍝"},
			{ID: "lunch-7", Name: "Seco de Res", Emoji: "🥘"},
			{ID: "lunch-8", Name: "Causa Limeña", Emoji: "🥔"},
			{ID: "lunch-9", Name: "Pollo a la Brasa", Emoji: "🍗"},
			{ID: "lunch-10", Name: "Pescado Frito", Emoji: "🐠"},
			{ID: "lunch-11", Name: "Estofado de Pollo", Emoji: "🍲"},
			{ID: "lunch-12", Name: "Tacu Tacu", Emoji: "🍚"},
			{ID: "lunch-13", Name: "Milanesa con Puré", Emoji: "🥩"},
			{ID: "lunch-14", Name: "Sopa de Pollo", Emoji: "🍜"},
		},
	}
}
