package textutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"red_onion_(elfora)", "Red Onion Elfora"},
		{"red onion grade a", "Red Onion Grade A"},
		{"white_cabbage_(small)", "White Cabbage Small"},
		{"POTATOES", "Potatoes"},
		{"beet root", "Beet Root"},
		{"distribution_center_2_garment", "Distribution Center 2 Garment"},
		{"", ""},
		{"   ", ""},
		{"tomatoes", "Tomatoes"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeMalformedParens(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"onion_(elfora", "Onion (Elfora"},
		{"onion_elfora)", "Onion Elfora)"},
		{"onion_()", "Onion ()"},
		{"onion_((x))", "Onion ((X))"},
		{"(elfora)_onion", "(Elfora) Onion"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"red_onion_(elfora)", "red onion grade a", "POTATOES",
		"onion_(elfora", "white_cabbage_(small)", "beet root", "corn",
		"Distribution Center Lemi Kura/Alem Bank", "chilly_green_(elfora)",
		"a_b_(c)_d", "42_things",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}
