package order

import (
	"reflect"
	"testing"
)

func TestBuildPricing(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *Assembler) Snapshot
		want Snapshot
	}{
		{
			name: "large with two toppings",
			run: func(a *Assembler) Snapshot {
				return a.Reset().SetSize(Large).AddTopping("Olives").AddTopping("Cheese").Build()
			},
			want: Snapshot{Size: Large, Toppings: []string{"Olives", "Cheese"}, Notes: "", Price: 260},
		},
		{
			name: "extra large plain",
			run: func(a *Assembler) Snapshot {
				return a.Reset().SetSize(ExtraLarge).Build()
			},
			want: Snapshot{Size: ExtraLarge, Toppings: []string{}, Notes: "", Price: 300},
		},
		{
			name: "unrecognized size falls back to base price",
			run: func(a *Assembler) Snapshot {
				return a.Reset().SetSize("Colossal").Build()
			},
			want: Snapshot{Size: "Colossal", Toppings: []string{}, Notes: "", Price: 120},
		},
		{
			name: "notes have no price effect",
			run: func(a *Assembler) Snapshot {
				return a.Reset().SetSize(Medium).SetNotes("extra crispy").Build()
			},
			want: Snapshot{Size: Medium, Toppings: []string{}, Notes: "extra crispy", Price: 120},
		},
		{
			name: "duplicate toppings are kept",
			run: func(a *Assembler) Snapshot {
				return a.Reset().SetSize(Medium).AddTopping("Cheese").AddTopping("Cheese").Build()
			},
			want: Snapshot{Size: Medium, Toppings: []string{"Cheese", "Cheese"}, Notes: "", Price: 180},
		},
		{
			name: "empty order",
			run: func(a *Assembler) Snapshot {
				return a.Reset().Build()
			},
			want: Snapshot{Size: "", Toppings: []string{}, Notes: "", Price: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(NewAssembler())
			if got.Size != tt.want.Size || got.Notes != tt.want.Notes || got.Price != tt.want.Price {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
			gotToppings := got.Toppings
			if gotToppings == nil {
				gotToppings = []string{}
			}
			if !reflect.DeepEqual(gotToppings, tt.want.Toppings) {
				t.Errorf("toppings = %v, want %v", got.Toppings, tt.want.Toppings)
			}
		})
	}
}

func TestSetSizeCompounds(t *testing.T) {
	// Each SetSize call adds its base price; only the last size is kept.
	snap := NewAssembler().Reset().SetSize(Large).SetSize(ExtraLarge).Build()
	if snap.Size != ExtraLarge {
		t.Errorf("size = %s, want %s", snap.Size, ExtraLarge)
	}
	if snap.Price != 500 {
		t.Errorf("price = %d, want 500 (200 + 300)", snap.Price)
	}
}

func TestCurrentDoesNotEndOrder(t *testing.T) {
	a := NewAssembler()
	a.Reset().SetSize(Large).AddTopping("Olives")

	view := a.Current()
	if view.Price != 230 {
		t.Fatalf("view price = %d, want 230", view.Price)
	}
	view.Toppings[0] = "Corn"

	snap := a.Build()
	if snap.Toppings[0] != "Olives" {
		t.Fatalf("mutating view changed assembler state: %v", snap.Toppings)
	}
	if snap.Price != 230 {
		t.Fatalf("price = %d, want 230", snap.Price)
	}
}

func TestBuildResetsAssembler(t *testing.T) {
	a := NewAssembler()
	a.Reset().SetSize(Large).AddTopping("Olives").SetNotes("ring twice")
	_ = a.Build()

	next := a.Build()
	if next.Size != "" || len(next.Toppings) != 0 || next.Notes != "" || next.Price != 0 {
		t.Fatalf("assembler not idle after Build: %+v", next)
	}
}

func TestSnapshotDoesNotAliasAssembler(t *testing.T) {
	a := NewAssembler()
	first := a.Reset().SetSize(Large).AddTopping("Olives").Build()

	// Reusing the assembler must not reach into the emitted snapshot.
	a.SetSize(Medium).AddTopping("Corn").AddTopping("Paneer")

	if !reflect.DeepEqual(first.Toppings, []string{"Olives"}) {
		t.Fatalf("snapshot toppings mutated by later assembler use: %v", first.Toppings)
	}
	if first.Price != 230 {
		t.Fatalf("snapshot price mutated: %d", first.Price)
	}
}

func TestMutatingSnapshotDoesNotAffectNextBuild(t *testing.T) {
	a := NewAssembler()
	first := a.Reset().SetSize(Medium).AddTopping("Olives").Build()
	first.Toppings[0] = "Anchovies"

	second := a.Reset().SetSize(Medium).AddTopping("Olives").Build()
	if second.Toppings[0] != "Olives" {
		t.Fatalf("second build affected by snapshot mutation: %v", second.Toppings)
	}
}

func TestResetDropsPriorToppings(t *testing.T) {
	a := NewAssembler()
	a.Reset().SetSize(Large).AddTopping("Olives")
	snap := a.Reset().SetSize(Medium).Build()
	if len(snap.Toppings) != 0 {
		t.Fatalf("reset kept prior toppings: %v", snap.Toppings)
	}
	if snap.Price != 120 {
		t.Fatalf("reset kept prior price: %d", snap.Price)
	}
}

func TestCloneIndependence(t *testing.T) {
	a := NewAssembler()
	src := a.Reset().SetSize(Large).AddTopping("Olives").AddTopping("Cheese").SetNotes("no onion").Build()

	clone := src.Clone()
	if !reflect.DeepEqual(clone, src) {
		t.Fatalf("clone not deeply equal: %+v vs %+v", clone, src)
	}

	clone.Toppings[0] = "Mushroom"
	if src.Toppings[0] != "Olives" {
		t.Fatalf("mutating clone changed source: %v", src.Toppings)
	}

	src.Toppings[1] = "Jalapeno"
	if clone.Toppings[1] != "Cheese" {
		t.Fatalf("mutating source changed clone: %v", clone.Toppings)
	}
}

func TestCloneEmptySnapshot(t *testing.T) {
	src := NewAssembler().Build()
	clone := src.Clone()
	if clone.Price != 0 || clone.Size != "" || len(clone.Toppings) != 0 {
		t.Fatalf("unexpected clone of empty snapshot: %+v", clone)
	}
}
