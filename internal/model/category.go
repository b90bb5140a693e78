package model

// Category represents a fixed spending bucket used to classify expenses
// and budgets. Categories are static reference data: they are never
// created or destroyed at runtime.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Catalog is an ordered, immutable set of categories with id lookup.
type Catalog struct {
	entries []Category
	byID    map[string]Category
}

// NewCatalog builds a catalog from an ordered category list.
func NewCatalog(entries []Category) Catalog {
	byID := make(map[string]Category, len(entries))
	for _, c := range entries {
		byID[c.ID] = c
	}
	return Catalog{
		entries: append([]Category(nil), entries...),
		byID:    byID,
	}
}

// Categories returns the catalog entries in their fixed enumeration order.
func (c Catalog) Categories() []Category {
	return append([]Category(nil), c.entries...)
}

// ByID looks up a category by id. The second return value reports whether
// the id exists; an expense referencing an unknown id degrades gracefully
// rather than faulting.
func (c Catalog) ByID(id string) (Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// Len returns the number of categories in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

// defaultCategories is the fixed 12-entry catalog. Icons are symbolic
// identifiers resolved by the presentation layer.
var defaultCategories = []Category{
	{ID: "1", Name: "Rent", Icon: "Home"},
	{ID: "2", Name: "Mess/Food", Icon: "UtensilsCrossed"},
	{ID: "3", Name: "Tiffin", Icon: "Coffee"},
	{ID: "4", Name: "Groceries", Icon: "ShoppingCart"},
	{ID: "5", Name: "UPI/Wallet", Icon: "Wallet"},
	{ID: "6", Name: "Commute", Icon: "Car"},
	{ID: "7", Name: "Mobile/Data", Icon: "Smartphone"},
	{ID: "8", Name: "Utilities", Icon: "Zap"},
	{ID: "9", Name: "Entertainment", Icon: "Gamepad2"},
	{ID: "10", Name: "Health/Pharmacy", Icon: "Heart"},
	{ID: "11", Name: "Shopping", Icon: "ShoppingBag"},
	{ID: "12", Name: "Travel", Icon: "MapPin"},
}

// DefaultCatalog returns the standard category catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultCategories)
}
