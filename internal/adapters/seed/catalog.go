// Package seed carries the static catalog of well-characterized archive
// entries known from the literature to hold relaxation data.
//
// The catalog is a hint set for bootstrapping, not an exhaustive search
// of the archive.
package seed

// Family groups the archive identifiers of one protein family.
type Family struct {
	Name     string
	EntryIDs []int
}

// catalog lists the seed families in a fixed order.
var catalog = []Family{
	{Name: "GB3", EntryIDs: []int{15477, 17769}},
	{Name: "ubiquitin", EntryIDs: []int{6457, 15410, 19684}},
	{Name: "TDP43", EntryIDs: []int{26823}},
}

// Catalog returns the seed families in their canonical order.
func Catalog() []Family {
	out := make([]Family, len(catalog))
	copy(out, catalog)
	return out
}

// EntryIDs returns all seed identifiers, flattened in catalog order.
func EntryIDs() []int {
	var ids []int
	for _, f := range catalog {
		ids = append(ids, f.EntryIDs...)
	}
	return ids
}
