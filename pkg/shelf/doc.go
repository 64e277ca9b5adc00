// Package shelf classifies marketplace listings into a Thai/English
// category tree and checks that a chosen subcategory fits the listing.
//
// Quick start:
//
//	s, err := shelf.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := s.Classify("Honda City 2020 เกียร์ออโต้")
//	fmt.Println(c.CategoryID, c.Subcategory) // 1 Sedans
//
//	res := s.Validate(shelf.Input{Title: "Honda City 2020", CategoryID: 3, Subcategory: "smartphones"})
//	fmt.Println(res.Warnings[0].Fix.SubcategorySlug) // sedans
//
// A Shelf is immutable and safe for concurrent use. Create once, reuse
// across requests. The built-in catalog can be replaced with a YAML file via
// WithCatalogFile; `shelf export` writes the built-in one as a starting point.
package shelf
