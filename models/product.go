package models

// Product is a single catalog entry. Stock and badge are live state;
// everything else is merchandising data.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	InStock     int     `json:"inStock"`
	Badge       Badge   `json:"badge,omitempty"`
	IsPopular   bool    `json:"isPopular,omitempty"`
}

// Categories is the fixed set of shop categories.
var Categories = []string{
	"Pain Relief",
	"Vitamins & Supplements",
	"Cold & Flu",
	"Digestive Health",
	"First Aid",
	"Allergy Relief",
}

// Catalog returns the static seed list of products. Callers get a fresh
// slice on every call so live inventory state never leaks back into the
// defaults.
func Catalog() []Product {
	return []Product{
		// Pain Relief
		{
			ID:          "1",
			Name:        "Ibuprofen 200mg",
			Category:    "Pain Relief",
			Price:       8.99,
			Description: "Fast-acting pain relief for headaches, muscle aches, and fever",
			Image:       "/placeholder.svg?height=200&width=200&text=Ibuprofen",
			InStock:     50,
			Badge:       BadgeBestseller,
			IsPopular:   true,
		},
		{
			ID:          "2",
			Name:        "Acetaminophen 500mg",
			Category:    "Pain Relief",
			Price:       7.49,
			Description: "Gentle pain relief and fever reducer",
			Image:       "/placeholder.svg?height=200&width=200&text=Acetaminophen",
			InStock:     45,
			Badge:       BadgeBestseller,
		},
		{
			ID:          "3",
			Name:        "Aspirin 325mg",
			Category:    "Pain Relief",
			Price:       6.99,
			Description: "Classic pain relief with anti-inflammatory properties",
			Image:       "/placeholder.svg?height=200&width=200&text=Aspirin",
			InStock:     5,
			Badge:       BadgeLowStock,
		},
		{
			ID:          "4",
			Name:        "Naproxen 220mg",
			Category:    "Pain Relief",
			Price:       9.99,
			Description: "Long-lasting pain relief for arthritis and muscle pain",
			Image:       "/placeholder.svg?height=200&width=200&text=Naproxen",
			InStock:     25,
		},

		// Vitamins & Supplements
		{
			ID:          "5",
			Name:        "Vitamin D3 1000 IU",
			Category:    "Vitamins & Supplements",
			Price:       12.99,
			Description: "Essential vitamin for bone health and immune support",
			Image:       "/placeholder.svg?height=200&width=200&text=Vitamin+D3",
			InStock:     60,
		},
		{
			ID:          "6",
			Name:        "Multivitamin Daily",
			Category:    "Vitamins & Supplements",
			Price:       15.99,
			Description: "Complete daily nutrition with essential vitamins and minerals",
			Image:       "/placeholder.svg?height=200&width=200&text=Multivitamin",
			InStock:     40,
		},
		{
			ID:          "7",
			Name:        "Vitamin C 1000mg",
			Category:    "Vitamins & Supplements",
			Price:       11.49,
			Description: "Immune system support with antioxidant properties",
			Image:       "/placeholder.svg?height=200&width=200&text=Vitamin+C",
			InStock:     55,
		},
		{
			ID:          "8",
			Name:        "Omega-3 Fish Oil",
			Category:    "Vitamins & Supplements",
			Price:       18.99,
			Description: "Heart and brain health support with EPA and DHA",
			Image:       "/placeholder.svg?height=200&width=200&text=Omega+3",
			InStock:     35,
		},

		// Cold & Flu
		{
			ID:          "9",
			Name:        "DayQuil Cold & Flu",
			Category:    "Cold & Flu",
			Price:       13.99,
			Description: "Daytime relief for cold and flu symptoms",
			Image:       "/placeholder.svg?height=200&width=200&text=DayQuil",
			InStock:     20,
		},
		{
			ID:          "10",
			Name:        "NyQuil Nighttime Relief",
			Category:    "Cold & Flu",
			Price:       13.99,
			Description: "Nighttime cold and flu relief for better sleep",
			Image:       "/placeholder.svg?height=200&width=200&text=NyQuil",
			InStock:     18,
		},
		{
			ID:          "11",
			Name:        "Throat Lozenges",
			Category:    "Cold & Flu",
			Price:       5.99,
			Description: "Soothing relief for sore throat and cough",
			Image:       "/placeholder.svg?height=200&width=200&text=Lozenges",
			InStock:     75,
		},
		{
			ID:          "12",
			Name:        "Cough Syrup",
			Category:    "Cold & Flu",
			Price:       9.49,
			Description: "Effective cough suppressant for dry cough",
			Image:       "/placeholder.svg?height=200&width=200&text=Cough+Syrup",
			InStock:     22,
		},

		// Digestive Health
		{
			ID:          "13",
			Name:        "Antacid Tablets",
			Category:    "Digestive Health",
			Price:       6.49,
			Description: "Fast relief from heartburn and acid indigestion",
			Image:       "/placeholder.svg?height=200&width=200&text=Antacid",
			InStock:     40,
		},
		{
			ID:          "14",
			Name:        "Probiotics Daily",
			Category:    "Digestive Health",
			Price:       24.99,
			Description: "Support digestive health with beneficial bacteria",
			Image:       "/placeholder.svg?height=200&width=200&text=Probiotics",
			InStock:     28,
		},
		{
			ID:          "15",
			Name:        "Anti-Diarrheal",
			Category:    "Digestive Health",
			Price:       8.99,
			Description: "Fast-acting relief for diarrhea symptoms",
			Image:       "/placeholder.svg?height=200&width=200&text=Anti+Diarrheal",
			InStock:     15,
		},
		{
			ID:          "16",
			Name:        "Fiber Supplement",
			Category:    "Digestive Health",
			Price:       16.99,
			Description: "Daily fiber for digestive regularity",
			Image:       "/placeholder.svg?height=200&width=200&text=Fiber",
			InStock:     32,
		},

		// First Aid
		{
			ID:          "17",
			Name:        "Adhesive Bandages",
			Category:    "First Aid",
			Price:       4.99,
			Description: "Assorted sizes for minor cuts and scrapes",
			Image:       "/placeholder.svg?height=200&width=200&text=Bandages",
			InStock:     100,
		},
		{
			ID:          "18",
			Name:        "Antiseptic Cream",
			Category:    "First Aid",
			Price:       7.99,
			Description: "Prevents infection in minor cuts and burns",
			Image:       "/placeholder.svg?height=200&width=200&text=Antiseptic",
			InStock:     45,
		},
		{
			ID:          "19",
			Name:        "Hydrogen Peroxide",
			Category:    "First Aid",
			Price:       3.99,
			Description: "Wound cleaning and disinfection",
			Image:       "/placeholder.svg?height=200&width=200&text=Peroxide",
			InStock:     60,
		},

		// Allergy Relief
		{
			ID:          "20",
			Name:        "Antihistamine 24hr",
			Category:    "Allergy Relief",
			Price:       14.99,
			Description: "24-hour allergy relief for seasonal allergies",
			Image:       "/placeholder.svg?height=200&width=200&text=Antihistamine",
			InStock:     35,
		},
		{
			ID:          "21",
			Name:        "Nasal Spray",
			Category:    "Allergy Relief",
			Price:       11.99,
			Description: "Fast-acting nasal congestion relief",
			Image:       "/placeholder.svg?height=200&width=200&text=Nasal+Spray",
			InStock:     28,
		},
	}
}
