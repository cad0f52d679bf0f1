// Package catalog defines the fixed wholesale catalog: product groups,
// their unit prices, and their ordered variants. The table mirrors the
// paper order form and is never mutated at runtime.
package catalog

import "github.com/shopspring/decimal"

// Variant is one sellable color/mix within a product group. Pricing is set
// per-group today, but each variant carries its own unit price so a future
// per-variant override only needs a changed table entry.
type Variant struct {
	Group     string
	Name      string
	UnitPrice decimal.Decimal
}

// Group is a titled section of the order form with a shared unit price.
type Group struct {
	Name      string
	UnitPrice decimal.Decimal
	Variants  []Variant
}

type groupDef struct {
	name     string
	price    string
	variants []string
}

// Order and spelling must match the paper form exactly.
var groupDefs = []groupDef{
	{"PANSY MIXES", "10.30", []string{
		"AUTUMN MIX", "AUTUMN BLAZE MIX", "FRIZZLE SIZZLE MIX",
		"HALLOWEEN MIX", "MATRIX MIX", "PANOLA MIX",
	}},
	{"PANSY BLOTCHES & MULTI-COLORS", "10.30", []string{
		"FRIZZLE SIZZLE ORANGE", "MIDNIGHT GLOW", "SOLAR FLARE",
		"RED BLOTCH", "WHITE BLOTCH",
	}},
	{"PANSY SOLID COLORS", "10.30", []string{"BLACK", "ORANGE", "YELLOW"}},
	{"VIOLA", "10.30", []string{"BLACK", "INDIAN SUMMER MIX", "ORANGE", "YELLOW/BLUE"}},
	{"CORN SHOCKS (10-15 STALKS PER BUNDLE)", "7.19", []string{"BEST AVAILABLE"}},
	{"STRAW BALES", "6.29", []string{"BEST AVAILABLE"}},
}

var groups = buildGroups()

func buildGroups() []Group {
	out := make([]Group, len(groupDefs))
	for i, def := range groupDefs {
		price := decimal.RequireFromString(def.price)
		variants := make([]Variant, len(def.variants))
		for j, name := range def.variants {
			variants[j] = Variant{
				Group:     def.name,
				Name:      name,
				UnitPrice: price,
			}
		}
		out[i] = Group{Name: def.name, UnitPrice: price, Variants: variants}
	}
	return out
}

// Groups returns the catalog in paper-form order. Callers receive a fresh
// top-level slice; the contained data is shared and must be treated as
// read-only.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// Variants flattens the catalog into a single ordered list, one entry per
// sellable variant.
func Variants() []Variant {
	var out []Variant
	for _, g := range groups {
		out = append(out, g.Variants...)
	}
	return out
}
