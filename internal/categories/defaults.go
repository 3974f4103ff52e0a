package categories

// DefaultExpense returns the built-in expense category set.
func DefaultExpense() []string {
	return []string{
		"Einkauf",
		"Miete",
		"Strom/Gas/Wasser",
		"Internet/Telefon",
		"Versicherung",
		"Transport",
		"Freizeit",
		"Restaurant/Café",
		"Kleidung",
		"Gesundheit",
		"Bildung",
		"Abonnements",
		"Haushalt",
		"Geschenke",
		"Sonstiges",
	}
}

// DefaultIncome returns the built-in income category set.
func DefaultIncome() []string {
	return []string{
		"Gehalt",
		"Freelance",
		"Nebenjob",
		"Zinsen",
		"Dividenden",
		"Verkauf",
		"Geschenk",
		"Erstattung",
		"Sonstiges",
	}
}
