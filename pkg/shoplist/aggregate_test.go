package shoplist

import (
	"reflect"
	"testing"
)

func flourSugar() []Recipe {
	return []Recipe{
		{ID: 1, Ingredients: []Entry{{Name: "Flour", Unit: "g", Amount: 200}}},
		{ID: 2, Ingredients: []Entry{
			{Name: "Flour", Unit: "g", Amount: 150},
			{Name: "Sugar", Unit: "g", Amount: 50},
		}},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	l := Aggregate(flourSugar())

	want := []Item{
		{Name: "Flour", Unit: "g", Total: 350},
		{Name: "Sugar", Unit: "g", Total: 50},
	}
	if got := l.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %+v, want %+v", got, want)
	}
	wantLines := []string{"Flour (g) -- 350", "Sugar (g) -- 50"}
	if got := l.Lines(); !reflect.DeepEqual(got, wantLines) {
		t.Fatalf("lines = %q, want %q", got, wantLines)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	in := flourSugar()
	a := Aggregate(in)
	b := Aggregate(in)
	if !reflect.DeepEqual(a.Items(), b.Items()) {
		t.Fatalf("aggregation is not a pure function: %+v vs %+v", a.Items(), b.Items())
	}
	if in[1].Ingredients[0].Amount != 150 {
		t.Fatalf("input was mutated")
	}
}

func TestAggregate_Empty(t *testing.T) {
	for name, in := range map[string][]Recipe{
		"nil":            nil,
		"no ingredients": {{ID: 1}, {ID: 2, Ingredients: []Entry{}}},
	} {
		t.Run(name, func(t *testing.T) {
			l := Aggregate(in)
			if l.Len() != 0 || len(l.Lines()) != 0 {
				t.Fatalf("expected empty list, got %+v", l.Items())
			}
		})
	}
}

func TestAggregate_SameNameTwiceInOneRecipe(t *testing.T) {
	// 两条不同的食材记录同名，合并为一行
	l := Aggregate([]Recipe{{ID: 1, Ingredients: []Entry{
		{Name: "Salt", Unit: "g", Amount: 5},
		{Name: "Salt", Unit: "g", Amount: 7},
	}}})
	if l.Len() != 1 {
		t.Fatalf("expected one line, got %d", l.Len())
	}
	it, ok := l.Get("Salt")
	if !ok || it.Total != 12 {
		t.Fatalf("Salt = %+v, ok=%v", it, ok)
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	l := Aggregate([]Recipe{
		{ID: 1, Ingredients: []Entry{{Name: "Zucchini", Unit: "pcs", Amount: 1}, {Name: "Milk", Unit: "ml", Amount: 100}}},
		{ID: 2, Ingredients: []Entry{{Name: "Apple", Unit: "pcs", Amount: 2}, {Name: "Zucchini", Unit: "pcs", Amount: 2}}},
	})
	var names []string
	for _, it := range l.Items() {
		names = append(names, it.Name)
	}
	want := []string{"Zucchini", "Milk", "Apple"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}

func TestAggregate_UnitConflict(t *testing.T) {
	in := []Recipe{
		{ID: 1, Ingredients: []Entry{{Name: "Salt", Unit: "g", Amount: 5}}},
		{ID: 2, Ingredients: []Entry{{Name: "Salt", Unit: "pinch", Amount: 2}}},
	}

	t.Run("by name keeps first unit", func(t *testing.T) {
		l := Aggregate(in)
		it, _ := l.Get("Salt")
		if l.Len() != 1 || it.Unit != "g" || it.Total != 7 {
			t.Fatalf("unexpected %+v", l.Items())
		}
		want := []Conflict{{Name: "Salt", Kept: "g", Dropped: "pinch"}}
		if !reflect.DeepEqual(l.Conflicts(), want) {
			t.Fatalf("conflicts = %+v, want %+v", l.Conflicts(), want)
		}
	})

	t.Run("by name and unit splits lines", func(t *testing.T) {
		l := Aggregate(in, WithMergeKey(KeyByNameAndUnit))
		want := []string{"Salt (g) -- 5", "Salt (pinch) -- 2"}
		if !reflect.DeepEqual(l.Lines(), want) {
			t.Fatalf("lines = %q, want %q", l.Lines(), want)
		}
		if len(l.Conflicts()) != 0 {
			t.Fatalf("no conflicts expected, got %+v", l.Conflicts())
		}
		if it, ok := l.Get("Salt"); !ok || it.Unit != "g" {
			t.Fatalf("Get should return first Salt line, got %+v", it)
		}
	})
}

func TestAggregate_LargeTotals(t *testing.T) {
	const big = int64(1) << 40
	l := Aggregate([]Recipe{
		{Ingredients: []Entry{{Name: "Water", Unit: "ml", Amount: big}}},
		{Ingredients: []Entry{{Name: "Water", Unit: "ml", Amount: big}}},
	})
	if it, _ := l.Get("Water"); it.Total != 2*big {
		t.Fatalf("total = %d, want %d", it.Total, 2*big)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	l := Aggregate(flourSugar())
	items := l.Items()
	items[0].Total = 0
	if it, _ := l.Get("Flour"); it.Total != 350 {
		t.Fatalf("Items must not expose internal state")
	}
}
