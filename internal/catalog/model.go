package catalog

// Day values are Spanish day names ("Lunes", "Martes", ...) or the
// every-day sentinel below. Category is a free-form tag; "Especialidad"
// marks the featured dishes shown regardless of the day.
const (
	DayEveryDay     = "Todos los días"
	CategorySpecial = "Especialidad"
)

// MenuItem is one dish document from the products collection.
// Immutable once fetched; the catalog owns it.
type MenuItem struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	ImageURL    string  `bson:"imageUrl" json:"imageUrl"`
	Category    string  `bson:"category" json:"category"`
	Day         string  `bson:"day" json:"day"`
}
