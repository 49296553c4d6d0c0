package leaderboard

import "testing"

func TestIsValid(t *testing.T) {
	for _, c := range DisplayOrder {
		if !IsValid(c) {
			t.Fatalf("%s should be valid", c)
		}
	}
	if !IsValid(All) {
		t.Fatal("all should be valid")
	}
	if IsValid(Category("vibes")) {
		t.Fatal("unknown category should be invalid")
	}
}

func TestExpand(t *testing.T) {
	if got := Expand(All); len(got) != 5 {
		t.Fatalf("all should expand to 5 categories, got %d", len(got))
	}
	got := Expand(Monetizer)
	if len(got) != 1 || got[0] != Monetizer {
		t.Fatalf("single category should expand to itself, got %v", got)
	}
}

func TestDisplayOrderFixed(t *testing.T) {
	want := []Category{Monetizer, ContentMachine, EyeballEmperor, HostWithTheMost, ProductWhisperer}
	for i, c := range want {
		if DisplayOrder[i] != c {
			t.Fatalf("display order position %d: expected %s, got %s", i, c, DisplayOrder[i])
		}
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(Monetizer)
	if !ok || info.Format != FormatCurrency {
		t.Fatalf("monetizer should be a currency category: %+v", info)
	}
	info, ok = Lookup(ProductWhisperer)
	if !ok || info.Format != FormatText {
		t.Fatalf("product_whisperer should be text-only: %+v", info)
	}
	if _, ok := Lookup(All); ok {
		t.Fatal("the all selector has no display metadata")
	}
}
