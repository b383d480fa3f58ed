// Package planner computes investment and profit for a set of crops the player
// intends to plant.
package planner

import (
	"slices"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// Entry is one crop in the plan with the number of seeds to plant
type Entry struct {
	Crop     domain.Crop `json:"crop"`
	Quantity int         `json:"quantity"`
}

// Totals aggregates every entry in a plan
type Totals struct {
	Investment int `json:"investment"`
	Revenue    int `json:"revenue"`
	NetProfit  int `json:"netProfit"`
}

// Planner holds at most one entry per crop id, in insertion order.
// It is owned by a single caller and is not safe for concurrent use.
type Planner struct {
	entries []Entry
}

// New creates an empty planner
func New() *Planner {
	return &Planner{}
}

// FromEntries rebuilds a planner from saved entries. Entries for a crop id that
// was already seen add to its quantity; non-positive quantities are dropped.
func FromEntries(entries []Entry) *Planner {
	p := New()
	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		if i := p.indexOf(e.Crop.ID); i >= 0 {
			p.entries[i].Quantity += e.Quantity
			continue
		}
		p.entries = append(p.entries, e)
	}
	return p
}

func (p *Planner) indexOf(cropID string) int {
	return slices.IndexFunc(p.entries, func(e Entry) bool { return e.Crop.ID == cropID })
}

// AddCrop increments the quantity for the crop, adding it with quantity 1 when absent
func (p *Planner) AddCrop(crop domain.Crop) {
	if i := p.indexOf(crop.ID); i >= 0 {
		p.entries[i].Quantity++
		return
	}
	p.entries = append(p.entries, Entry{Crop: crop, Quantity: 1})
}

// RemoveCrop deletes the entry for cropID. Unknown ids are ignored.
func (p *Planner) RemoveCrop(cropID string) {
	p.entries = slices.DeleteFunc(p.entries, func(e Entry) bool { return e.Crop.ID == cropID })
}

// SetQuantity sets the quantity for an existing entry. A quantity of zero or
// less removes the entry; unknown ids are ignored.
func (p *Planner) SetQuantity(cropID string, quantity int) {
	if quantity <= 0 {
		p.RemoveCrop(cropID)
		return
	}
	if i := p.indexOf(cropID); i >= 0 {
		p.entries[i].Quantity = quantity
	}
}

// Quantity returns the planned quantity for cropID, or 0
func (p *Planner) Quantity(cropID string) int {
	if i := p.indexOf(cropID); i >= 0 {
		return p.entries[i].Quantity
	}
	return 0
}

// Entries returns a copy of the entries in insertion order
func (p *Planner) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Len returns the number of distinct crops planned
func (p *Planner) Len() int {
	return len(p.entries)
}

// Totals sums investment, revenue and net profit over all entries
func (p *Planner) Totals() Totals {
	return totalsOf(p.entries)
}

// InvestmentOf is the seed cost of an entry. A missing seed price counts as zero.
func InvestmentOf(e Entry) int {
	return e.Crop.SeedPriceOrZero() * e.Quantity
}

// RevenueOf is the sale value of an entry. A missing sell price counts as zero.
func RevenueOf(e Entry) int {
	return e.Crop.SellPriceOrZero() * e.Quantity
}

// ProfitOf is revenue minus investment for one entry
func ProfitOf(e Entry) int {
	return RevenueOf(e) - InvestmentOf(e)
}

func totalsOf(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.Investment += InvestmentOf(e)
		t.NetProfit += ProfitOf(e)
	}
	t.Revenue = t.Investment + t.NetProfit
	return t
}
