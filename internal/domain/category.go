package domain

type Category struct {
	ID        string
	Name      string
	Color     string
	BackColor string
}

// DefaultCategories are seeded by the category bootstrap.
func DefaultCategories() []Category {
	return []Category{
		{ID: "CONSULTANTA", Name: "ZIUA CONSULTANȚEI", Color: "#4a86e8", BackColor: "#cfe2ff"},
		{ID: "OPTOMETRIE", Name: "ZIUA OPTOMETRIEI", Color: "#9900ff", BackColor: "#e6ccff"},
		{ID: "PRODUSE_HOYA", Name: "ZIUA PRODUSELOR HOYA", Color: "#f1c232", BackColor: "#fff2cc"},
	}
}
