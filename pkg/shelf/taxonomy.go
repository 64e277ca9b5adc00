package shelf

import "strconv"

// Category represents a main category with its subcategory tree.
type Category struct {
	ID            int
	Slug          string
	Name          Names
	Icon          string
	Subcategories []Subcategory
}

// Subcategory represents a level 2 or level 3 node.
type Subcategory struct {
	Slug     string
	Name     Names
	Path     string // e.g. "automotive.cars.sedans"
	Children []Subcategory
}

// Taxonomy returns the current category tree. This is a copy; consumers
// can inspect available categories but not modify them.
func (s *Shelf) Taxonomy() []Category {
	roots := s.engine.Taxonomy().Roots()
	categories := make([]Category, len(roots))
	for i, root := range roots {
		id, _ := strconv.Atoi(root.ID)
		categories[i] = Category{
			ID:            id,
			Slug:          root.Slug,
			Name:          root.Name,
			Icon:          root.Icon,
			Subcategories: subcategories(root.Slug, root.Children),
		}
	}
	return categories
}

func subcategories(prefix string, nodes []*CategoryNode) []Subcategory {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Subcategory, len(nodes))
	for i, n := range nodes {
		path := prefix + "." + n.Slug
		out[i] = Subcategory{
			Slug:     n.Slug,
			Name:     n.Name,
			Path:     path,
			Children: subcategories(path, n.Children),
		}
	}
	return out
}

// Search finds category nodes whose Thai or English name contains query and
// returns their breadcrumbs, in tree order.
func (s *Shelf) Search(query string) [][]Crumb {
	hits := s.engine.Search(query)
	if len(hits) == 0 {
		return nil
	}
	out := make([][]Crumb, len(hits))
	for i, h := range hits {
		out[i] = h.Path
	}
	return out
}

// Flatten lists every node in tree pre-order.
func (s *Shelf) Flatten() []Entry {
	return s.engine.Flatten()
}
