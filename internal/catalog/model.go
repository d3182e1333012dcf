package catalog

// Item is one menu entry. Name is the canonical lower-case identifier
// the parser reports; DisplayName is what the UI and receipts show.
// Keywords are the spoken aliases, ordered specific to generic.
type Item struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Price       int      `json:"price"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords"`
}

// DefaultMenu returns the fixed kiosk menu. Order matters: it is the
// iteration order of the parser, which decides the winner when two
// items' keyword regions overlap in one transcript.
func DefaultMenu() []Item {
	return []Item{
		{
			Name:        "burger",
			DisplayName: "Burger",
			Price:       25000,
			Description: "Burger lezat dengan daging sapi pilihan dan sayuran segar.",
			Keywords:    []string{"burger", "hamburger"},
		},
		{
			Name:        "ayam goreng",
			DisplayName: "Ayam Goreng",
			Price:       30000,
			Description: "Ayam goreng renyah dengan bumbu khas.",
			Keywords:    []string{"ayam goreng", "ayam", "fried chicken"},
		},
		{
			Name:        "kentang goreng",
			DisplayName: "Kentang Goreng",
			Price:       15000,
			Description: "Kentang goreng gurih dan renyah, cocok untuk camilan.",
			Keywords:    []string{"kentang goreng", "kentang", "french fries", "fries"},
		},
		{
			Name:        "hot dog",
			DisplayName: "Hot Dog",
			Price:       20000,
			Description: "Hotdog dengan sosis premium dan saus spesial.",
			Keywords:    []string{"hot dog", "hotdog", "sosis"},
		},
		{
			Name:        "cola",
			DisplayName: "Cola",
			Price:       10000,
			Description: "Minuman cola dingin yang menyegarkan.",
			Keywords:    []string{"cola", "kola", "pepsi", "soda"},
		},
		{
			Name:        "mineral water",
			DisplayName: "Mineral Water",
			Price:       7000,
			Description: "Air mineral murni untuk melepas dahaga.",
			Keywords:    []string{"mineral water", "air mineral", "air", "water"},
		},
		{
			Name:        "es krim",
			DisplayName: "Es Krim",
			Price:       12000,
			Description: "Es krim manis dan dingin.",
			Keywords:    []string{"es krim", "ice cream", "eskrim"},
		},
	}
}
