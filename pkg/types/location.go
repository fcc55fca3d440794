package types

// LocationAll is the UI-only wildcard location. Filtering by it returns
// every cat; it is never stored on a record.
const LocationAll = "all"

// Location is static reference data: a fixed, closed enumeration loaded
// from configuration, not user-editable at runtime.
type Location struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}

// DefaultLocations lists the shelter's physical areas in display order,
// wildcard first.
var DefaultLocations = []Location{
	{ID: LocationAll, Name: "כל המיקומים"},
	{ID: "1", Name: "חצרות פתוחות"},
	{ID: "2", Name: "חצר אקלום"},
	{ID: "3", Name: "מתחם עיוורים ומוחלשים"},
	{ID: "4", Name: "דיור מוגן קרוואן ימין"},
	{ID: "5", Name: "דיור מוגן קרוואן שמאל"},
	{ID: "6", Name: "חצר תפעולית"},
	{ID: "7", Name: "יחידת אשפוז"},
	{ID: "8", Name: "מתחם פרגולה + VIP"},
}

// KnownLocation reports whether id resolves to a storable location in the
// given list. The wildcard is not storable.
func KnownLocation(locations []Location, id string) bool {
	if id == "" || id == LocationAll {
		return false
	}
	for _, loc := range locations {
		if loc.ID == id {
			return true
		}
	}
	return false
}

// FirstStorable returns the first non-wildcard location, used as the
// create-mode default in the editor form.
func FirstStorable(locations []Location) (Location, bool) {
	for _, loc := range locations {
		if loc.ID != LocationAll {
			return loc, true
		}
	}
	return Location{}, false
}
