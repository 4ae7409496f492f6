package catalog

// Category classifies a product into one of the six storefront departments.
type Category string

const (
	CategoryChair   Category = "chair"
	CategorySofa    Category = "sofa"
	CategoryTable   Category = "table"
	CategoryBed     Category = "bed"
	CategoryLamp    Category = "lamp"
	CategoryStorage Category = "storage"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryChair, CategorySofa, CategoryTable, CategoryBed, CategoryLamp, CategoryStorage:
		return true
	}
	return false
}

// Product is an immutable catalog record. Price is whole US dollars.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	BaseImage   string   `json:"baseImage"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Material    string   `json:"material,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}
