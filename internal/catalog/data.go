package catalog

// The catalog is a static list loaded once at startup. In production this
// would come from a database; Unsplash photos stand in as product imagery.
var defaultProducts = []Product{
	{
		ID:          "oslo-lounge-chair",
		Name:        "Oslo Lounge Chair",
		Category:    CategoryChair,
		BaseImage:   "https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=800&h=1000&fit=crop",
		Description: "Scandinavian-inspired lounge chair with curved oak frame and premium wool upholstery. The organic silhouette provides exceptional comfort while making a bold design statement.",
		Price:       1299,
		Dimensions:  "W 76cm × D 82cm × H 77cm",
		Material:    "Solid oak frame, wool blend upholstery",
		Colors:      []string{"Slate Grey", "Oatmeal", "Forest Green"},
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "como-sectional",
		Name:        "Como Modular Sectional",
		Category:    CategorySofa,
		BaseImage:   "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&h=1000&fit=crop",
		Description: "Modular sectional sofa with clean lines and deep seating. Configure to fit your space with left or right-facing chaise options. Premium down-blend cushions.",
		Price:       4299,
		Dimensions:  "W 295cm × D 175cm × H 82cm",
		Material:    "Kiln-dried hardwood frame, performance linen",
		Colors:      []string{"Cloud White", "Charcoal", "Camel"},
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "nero-dining-table",
		Name:        "Nero Dining Table",
		Category:    CategoryTable,
		BaseImage:   "https://images.unsplash.com/photo-1617806118233-18e1de247200?w=800&h=1000&fit=crop",
		Description: "Statement dining table featuring a solid walnut top with live edge detail. Sculptural steel base in matte black finish. Seats 6-8 comfortably.",
		Price:       2499,
		Dimensions:  "W 220cm × D 100cm × H 76cm",
		Material:    "Solid American walnut, powder-coated steel",
		Colors:      []string{"Natural Walnut"},
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "haven-platform-bed",
		Name:        "Haven Platform Bed",
		Category:    CategoryBed,
		BaseImage:   "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&h=1000&fit=crop",
		Description: "Low-profile platform bed with integrated headboard and floating nightstands. Japanese-inspired design with hidden storage drawers.",
		Price:       3199,
		Dimensions:  "W 193cm × D 228cm × H 95cm (King)",
		Material:    "Solid white oak, natural oil finish",
		Colors:      []string{"Natural Oak", "Ebonized Oak"},
		InStock:     true,
	},
	{
		ID:          "arc-floor-lamp",
		Name:        "Arc Floor Lamp",
		Category:    CategoryLamp,
		BaseImage:   "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&h=1000&fit=crop",
		Description: "Iconic arc floor lamp with adjustable height and swivel shade. Marble base provides stability while making an architectural statement.",
		Price:       899,
		Dimensions:  "Base: Ø 35cm, Height: 180-210cm, Reach: 120cm",
		Material:    "Brushed brass, Carrara marble base, linen shade",
		Colors:      []string{"Brass/White", "Black/Black"},
		InStock:     true,
	},
	{
		ID:          "stack-bookshelf",
		Name:        "Stack Modular Bookshelf",
		Category:    CategoryStorage,
		BaseImage:   "https://images.unsplash.com/photo-1594620302200-9a762244a156?w=800&h=1000&fit=crop",
		Description: "Geometric modular shelving system. Asymmetric design creates visual interest while providing ample storage. Can be wall-mounted or freestanding.",
		Price:       1899,
		Dimensions:  "W 180cm × D 35cm × H 200cm",
		Material:    "Lacquered MDF, steel brackets",
		Colors:      []string{"Matte White", "Matte Black", "Oak Veneer"},
	},
	{
		ID:          "zen-accent-chair",
		Name:        "Zen Accent Chair",
		Category:    CategoryChair,
		BaseImage:   "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=800&h=1000&fit=crop",
		Description: "Minimalist accent chair with woven rope seat and sculptural steel frame. Perfect as a statement piece or paired for intimate conversation.",
		Price:       749,
		Dimensions:  "W 58cm × D 62cm × H 75cm",
		Material:    "Powder-coated steel, natural rope weave",
		Colors:      []string{"Black/Natural", "White/Natural"},
		InStock:     true,
	},
	{
		ID:          "drift-coffee-table",
		Name:        "Drift Coffee Table",
		Category:    CategoryTable,
		BaseImage:   "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=800&h=1000&fit=crop",
		Description: "Organic-shaped coffee table with tempered glass top and solid travertine base. The cloud-like silhouette adds softness to any living space.",
		Price:       1599,
		Dimensions:  "W 140cm × D 80cm × H 38cm",
		Material:    "Tempered glass, honed travertine",
		Colors:      []string{"Clear/Natural Stone"},
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "nido-sofa",
		Name:        "Nido Compact Sofa",
		Category:    CategorySofa,
		BaseImage:   "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?w=800&h=1000&fit=crop",
		Description: "Apartment-sized sofa with generous proportions despite compact footprint. High-density foam core with feather-wrapped cushions for ultimate comfort.",
		Price:       2199,
		Dimensions:  "W 185cm × D 92cm × H 85cm",
		Material:    "Solid beech frame, bouclé fabric",
		Colors:      []string{"Cream Bouclé", "Graphite", "Terracotta"},
		InStock:     true,
	},
	{
		ID:          "mono-side-table",
		Name:        "Mono Side Table",
		Category:    CategoryTable,
		BaseImage:   "https://images.unsplash.com/photo-1499933374294-4584851497cc?w=800&h=1000&fit=crop",
		Description: "Sculptural side table carved from a single block of concrete. Each piece is unique with subtle variations in texture and tone.",
		Price:       449,
		Dimensions:  "Ø 40cm × H 52cm",
		Material:    "Cast concrete, cork bottom",
		Colors:      []string{"Natural Grey", "Charcoal"},
		InStock:     true,
	},
	{
		ID:          "dream-bed-frame",
		Name:        "Dream Upholstered Bed",
		Category:    CategoryBed,
		BaseImage:   "https://images.unsplash.com/photo-1588046130717-0eb0c9a3ba15?w=800&h=1000&fit=crop",
		Description: "Fully upholstered bed frame with curved headboard and padded rails. Channel-tufted velvet adds luxury texture.",
		Price:       2799,
		Dimensions:  "W 183cm × D 223cm × H 120cm (Queen)",
		Material:    "Engineered wood frame, performance velvet",
		Colors:      []string{"Dusty Rose", "Midnight Blue", "Sage"},
		InStock:     true,
	},
	{
		ID:          "form-pendant",
		Name:        "Form Pendant Light",
		Category:    CategoryLamp,
		BaseImage:   "https://images.unsplash.com/photo-1524484485831-a92ffc0de03f?w=800&h=1000&fit=crop",
		Description: "Hand-blown glass pendant with organic, asymmetric form. Warm ambient glow through frosted interior. Ideal over dining tables or kitchen islands.",
		Price:       599,
		Dimensions:  "Ø 45cm × H 55cm, Cord: 200cm adjustable",
		Material:    "Hand-blown glass, brass hardware",
		Colors:      []string{"Smoke", "Amber", "Clear"},
		InStock:     true,
	},
}
