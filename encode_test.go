package fairvalue

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildPortfolio returns a small populated portfolio for persistence tests.
func buildPortfolio(t *testing.T) (*Portfolio, string) {
	t.Helper()
	p := New()
	p.SetSettings(Settings{TotalCapital: M(2_000_000), CompanyCount: 4})
	id := p.Add().ID
	if err := p.Update(id, SetSymbol{"PTT"}, SetPrice{M(34.50)}, SetDividend{M(2.00)}); err != nil {
		t.Fatal(err)
	}
	p.Add() // a blank second row
	return p, id
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p, id := buildPortfolio(t)

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if s := got.Settings(); !s.TotalCapital.Equal(M(2_000_000)) || s.CompanyCount != 4 {
		t.Errorf("settings = %+v", s)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	eq, ok := got.Get(id)
	if !ok {
		t.Fatalf("row %q lost in the round trip", id)
	}
	if eq.Symbol != "PTT" || !eq.Price.Equal(M(34.50)) || !eq.Dividend.Equal(M(2.00)) {
		t.Errorf("row = %+v", eq)
	}
	if !eq.Yield.Equal(Percent(100 * 2.00 / 34.50)) {
		t.Errorf("Yield = %v, want preserved", eq.Yield)
	}
	// a decoded portfolio is clean and idle
	if got.Dirty() {
		t.Error("decoded portfolio is dirty")
	}
	if st := got.Status(id); st.Loading || st.Err != "" {
		t.Errorf("decoded status = %+v, want idle", st)
	}
}

func TestEncode_OmitsTransientState(t *testing.T) {
	p, _ := buildPortfolio(t)

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, field := range []string{"loading", "error"} {
		if strings.Contains(out, `"`+field+`"`) {
			t.Errorf("snapshot contains transient field %q:\n%s", field, out)
		}
	}
	// and the durable shape is the well-known one
	for _, field := range []string{`"settings"`, `"stocks"`, `"dividendBaht"`, `"yieldPercent"`} {
		if !strings.Contains(out, field) {
			t.Errorf("snapshot misses %s:\n%s", field, out)
		}
	}
}

func TestDecode_DuplicateID(t *testing.T) {
	blob := `{"settings":{"totalCapital":"0","companyCount":1},
	          "stocks":[{"id":"x","symbol":"A"},{"id":"x","symbol":"B"}]}`
	if _, err := Decode(strings.NewReader(blob)); err == nil {
		t.Fatal("Decode() accepted duplicate equity ids")
	}
}

func TestSaveLoad(t *testing.T) {
	p, id := buildPortfolio(t)
	path := filepath.Join(t.TempDir(), "portfolio.json")

	if !p.Dirty() {
		t.Fatal("mutated portfolio is not dirty")
	}
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	// only a completed save clears the unsaved-changes flag
	if p.Dirty() {
		t.Error("saved portfolio is still dirty")
	}

	got := Load(path)
	if got.Len() != 2 {
		t.Fatalf("Load() kept %d rows, want 2", got.Len())
	}
	if _, ok := got.Get(id); !ok {
		t.Errorf("row %q lost through save/load", id)
	}

	// mutating again re-raises the flag
	got.SetSettings(Settings{M(1), 1})
	if !got.Dirty() {
		t.Error("mutation after load did not mark dirty")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nowhere.json"))
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want an empty portfolio", p.Len())
	}
	if s := p.Settings(); s.CompanyCount != 5 || !s.TotalCapital.Equal(M(1_000_000)) {
		t.Errorf("settings = %+v, want the defaults", s)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{this is not json"), 0644); err != nil {
		t.Fatal(err)
	}
	// a corrupt store falls back to the empty default, it must not crash
	p := Load(path)
	if p == nil || p.Len() != 0 {
		t.Fatalf("Load(corrupt) = %v", p)
	}
}

func TestSave_Atomic(t *testing.T) {
	p, _ := buildPortfolio(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	if err := Save(path, p); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, p); err != nil {
		t.Fatal(err)
	}
	// no temporary droppings left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "portfolio.json" {
		t.Errorf("directory contains %v, want only portfolio.json", entries)
	}
}
