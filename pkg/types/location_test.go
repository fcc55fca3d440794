package types

import "testing"

func TestKnownLocation(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"storable location", "3", true},
		{"last storable location", "8", true},
		{"wildcard is not storable", LocationAll, false},
		{"empty id", "", false},
		{"unknown id", "99", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KnownLocation(DefaultLocations, tt.id); got != tt.want {
				t.Errorf("KnownLocation(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestFirstStorable(t *testing.T) {
	loc, ok := FirstStorable(DefaultLocations)
	if !ok {
		t.Fatal("expected a storable location in the defaults")
	}
	if loc.ID != "1" {
		t.Errorf("expected first storable location id 1, got %q", loc.ID)
	}

	_, ok = FirstStorable([]Location{{ID: LocationAll, Name: "כל המיקומים"}})
	if ok {
		t.Error("wildcard-only list should have no storable location")
	}
}
