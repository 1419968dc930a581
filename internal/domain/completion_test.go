package domain_test

import (
	"reflect"
	"testing"

	"habittracker/internal/domain"
)

func TestToggleDate_AddAndRemove(t *testing.T) {
	dates := []string{}

	dates = domain.ToggleDate(dates, "2024-01-01")
	if !reflect.DeepEqual(dates, []string{"2024-01-01"}) {
		t.Fatalf("expected [2024-01-01], got %v", dates)
	}
	if !domain.IsCompletedOn(dates, "2024-01-01") {
		t.Fatal("expected 2024-01-01 to be completed after toggle")
	}

	dates = domain.ToggleDate(dates, "2024-01-01")
	if len(dates) != 0 {
		t.Fatalf("expected empty set after second toggle, got %v", dates)
	}
	if domain.IsCompletedOn(dates, "2024-01-01") {
		t.Fatal("expected 2024-01-01 to be incomplete after second toggle")
	}
}

func TestToggleDate_Involution(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		day   string
	}{
		{"empty set", []string{}, "2024-06-15"},
		{"day absent", []string{"2024-01-01", "2024-01-02"}, "2024-06-15"},
		{"day present", []string{"2024-01-01", "2024-06-15"}, "2024-06-15"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ToggleDate(domain.ToggleDate(tc.dates, tc.day), tc.day)
			if len(got) != len(tc.dates) {
				t.Fatalf("double toggle changed set size: %v -> %v", tc.dates, got)
			}
			for _, d := range tc.dates {
				if !domain.IsCompletedOn(got, d) {
					t.Fatalf("double toggle lost %s: %v", d, got)
				}
			}
		})
	}
}

func TestToggleDate_DoesNotMutateInput(t *testing.T) {
	orig := []string{"2024-01-01", "2024-01-02"}
	_ = domain.ToggleDate(orig, "2024-01-02")
	if !reflect.DeepEqual(orig, []string{"2024-01-01", "2024-01-02"}) {
		t.Fatalf("input slice mutated: %v", orig)
	}
}

func TestHeatmapCells_RangeAndOrder(t *testing.T) {
	dates := []string{"2024-03-05", "2023-12-31", "2024-01-01", "2025-01-02"}

	cells := domain.HeatmapCells(dates, "2024-01-01", "2025-01-01")
	want := []domain.HeatmapCell{
		{Date: "2024-01-01", Intensity: 1},
		{Date: "2024-03-05", Intensity: 1},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("expected %v, got %v", want, cells)
	}
}

func TestHeatmapCells_Empty(t *testing.T) {
	cells := domain.HeatmapCells(nil, "2024-01-01", "2024-12-31")
	if len(cells) != 0 {
		t.Fatalf("expected no cells, got %v", cells)
	}
}
