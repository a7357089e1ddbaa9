package models

// Category classifies a product in the catalog. It is stored and transmitted
// as its uppercase name.
type Category string

const (
	Unknown    Category = "UNKNOWN"
	Cloths     Category = "CLOTHS"
	Food       Category = "FOOD"
	Housewares Category = "HOUSEWARES"
	Automotive Category = "AUTOMOTIVE"
	Tools      Category = "TOOLS"
)

// Categories lists every known member, Unknown included.
var Categories = []Category{Unknown, Cloths, Food, Housewares, Automotive, Tools}

// ParseCategory maps a wire name to its Category. Names match exactly
// (case-sensitive); anything unrecognized decodes to Unknown rather than
// failing.
func ParseCategory(name string) Category {
	switch Category(name) {
	case Cloths, Food, Housewares, Automotive, Tools:
		return Category(name)
	default:
		return Unknown
	}
}

// Name returns the wire representation of the category.
func (c Category) Name() string {
	return string(c)
}
