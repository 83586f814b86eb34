package packing

type Item struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type Category struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// CloneCategories deep-copies a category slice. Per-user lists are
// seeded from one shared template; a shallow copy would alias item
// slices between users and break list isolation.
func CloneCategories(categories []Category) []Category {
	if categories == nil {
		return nil
	}
	cloned := make([]Category, len(categories))
	for i, category := range categories {
		cloned[i] = Category{
			Title: category.Title,
			Items: make([]Item, len(category.Items)),
		}
		copy(cloned[i].Items, category.Items)
	}
	return cloned
}
