package catalog

import "github.com/shelterpaws/cattery/pkg/types"

// FilterByLocation is the pure projection behind the catalog view: the
// wildcard returns the full input, any other location returns exactly the
// subset with that LocationID, order preserved. No store access happens
// here.
func FilterByLocation(cats []*types.Cat, locationID string) []*types.Cat {
	if locationID == "" || locationID == types.LocationAll {
		return cats
	}
	out := []*types.Cat{}
	for _, cat := range cats {
		if cat.LocationID == locationID {
			out = append(out, cat)
		}
	}
	return out
}

// View projects the store's contents into a filterable list. It holds an
// in-memory mirror of the catalog plus the selected location filter; the
// mirror is the only thing the display layer reads. The view starts in the
// loading state and shows no records until the first SetCats.
type View struct {
	cats     []*types.Cat
	location string
	loading  bool
}

// NewView returns an empty, loading view filtered by the wildcard.
func NewView() *View {
	return &View{location: types.LocationAll, loading: true}
}

// Loading reports whether the initial load is still pending.
func (v *View) Loading() bool { return v.loading }

// Filter returns the selected location filter.
func (v *View) Filter() string { return v.location }

// SetCats replaces the mirror and clears the loading state.
func (v *View) SetCats(cats []*types.Cat) {
	v.cats = cats
	v.loading = false
}

// SetFilter selects the location filter.
func (v *View) SetFilter(locationID string) {
	if locationID == "" {
		locationID = types.LocationAll
	}
	v.location = locationID
}

// Visible returns the filtered projection. While loading it returns
// nothing, even if a filter is selected.
func (v *View) Visible() []*types.Cat {
	if v.loading {
		return nil
	}
	return FilterByLocation(v.cats, v.location)
}

// Prepend puts a newly created cat at the front of the mirror, matching
// the most-recent-first ordering of the store.
func (v *View) Prepend(cat *types.Cat) {
	v.cats = append([]*types.Cat{cat}, v.cats...)
}

// Replace swaps the mirrored cat sharing the same ID in place.
func (v *View) Replace(cat *types.Cat) {
	for i, c := range v.cats {
		if c.ID == cat.ID {
			v.cats[i] = cat
			return
		}
	}
}

// Remove drops the cat with the given ID from the mirror, preserving the
// relative order of the rest.
func (v *View) Remove(id string) {
	for i, c := range v.cats {
		if c.ID == id {
			v.cats = append(v.cats[:i], v.cats[i+1:]...)
			return
		}
	}
}
