package domain

// Category identifies one submission ledger. There are exactly two: phrases
// submitted in Kirundi and phrases submitted in French.
type Category string

const (
	CategoryKirundi Category = "kirundi"
	CategoryFrench  Category = "french"
)

// Key is the persistence-store key for a category.
func (c Category) Key() string {
	return "submitted_" + string(c)
}

func (c Category) Valid() bool {
	return c == CategoryKirundi || c == CategoryFrench
}
