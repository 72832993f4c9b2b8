package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/fairvalue"
)

func TestEditCmd_Edits(t *testing.T) {
	c := &editCmd{}
	f := flag.NewFlagSet("edit", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-yield", "5", "-g", "2.5", "PTT"}); err != nil {
		t.Fatal(err)
	}

	edits := c.edits(f)
	if len(edits) != 2 {
		t.Fatalf("got %d edits, want 2", len(edits))
	}

	fields := map[string]bool{}
	for _, e := range edits {
		fields[e.Field()] = true
	}
	if !fields["yield"] || !fields["growth"] {
		t.Errorf("got edits %v, want yield and growth", fields)
	}

	// only passed flags become edits: price stayed untouched
	if fields["price"] {
		t.Error("price was not passed but produced an edit")
	}
}

func TestEditCmd_EditsApply(t *testing.T) {
	c := &editCmd{}
	f := flag.NewFlagSet("edit", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-price", "40", "-div", "2", "PTT"}); err != nil {
		t.Fatal(err)
	}

	p := fairvalue.New()
	eq := p.Add()
	if err := p.Update(eq.ID, c.edits(f)...); err != nil {
		t.Fatal(err)
	}

	got, _ := p.Get(eq.ID)
	if !got.Price.Equal(fairvalue.M(40)) {
		t.Errorf("price = %s, want 40", got.Price.Fixed())
	}
	if !got.Yield.Equal(fairvalue.Percent(5)) {
		t.Errorf("yield = %s, want 5%%", got.Yield)
	}
}
