// Package tier holds the cashback tier table. Tiers are data, loaded from
// TOML, so brackets can change without touching the ledger engine.
package tier

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

//go:embed default.toml
var defaultTable []byte

var hundred = decimal.NewFromInt(100)

var ErrEmptyTable = errors.New("tier table is empty")

type Tier struct {
	Name              string          `toml:"name"`
	CashbackPercent   decimal.Decimal `toml:"cashback_percent"`
	MinPurchaseAmount decimal.Decimal `toml:"min_purchase_amount"`

	next *Tier
}

// NextTier returns the tier above this one, or nil for the top tier.
func (t Tier) NextTier() *Tier {
	if t.next == nil {
		return nil
	}
	next := *t.next
	return &next
}

func (t Tier) NextTierMinAmount() *decimal.Decimal {
	if t.next == nil {
		return nil
	}
	threshold := t.next.MinPurchaseAmount
	return &threshold
}

// ProgressToNextTier returns how far amount has moved from this tier's
// threshold towards the next one, in percent within [0, 100].
func (t Tier) ProgressToNextTier(amount decimal.Decimal) decimal.Decimal {
	if t.next == nil {
		return hundred
	}
	span := t.next.MinPurchaseAmount.Sub(t.MinPurchaseAmount)
	if !span.IsPositive() {
		return hundred
	}
	progress := amount.Sub(t.MinPurchaseAmount).Div(span).Mul(hundred)
	switch {
	case progress.IsNegative():
		return decimal.Zero
	case progress.GreaterThan(hundred):
		return hundred
	}
	return progress.Round(2)
}

// Cashback is the bonus earned on a purchase at this tier, rounded to whole
// points.
func (t Tier) Cashback(purchase decimal.Decimal) decimal.Decimal {
	return purchase.Mul(t.CashbackPercent).Div(hundred).Round(0)
}

type Table struct {
	tiers []Tier
}

type tableFile struct {
	Tiers []Tier `toml:"tier"`
}

func NewTable(tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTable
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinPurchaseAmount.LessThan(sorted[j].MinPurchaseAmount)
	})

	if !sorted[0].MinPurchaseAmount.IsZero() {
		return nil, fmt.Errorf("lowest tier %q must start at 0, got %s", sorted[0].Name, sorted[0].MinPurchaseAmount)
	}

	names := make(map[string]struct{}, len(sorted))
	for i, t := range sorted {
		if t.Name == "" {
			return nil, fmt.Errorf("tier #%d has no name", i)
		}
		if _, ok := names[t.Name]; ok {
			return nil, fmt.Errorf("duplicate tier name %q", t.Name)
		}
		names[t.Name] = struct{}{}
		if t.CashbackPercent.IsNegative() {
			return nil, fmt.Errorf("tier %q has negative cashback", t.Name)
		}
		if i > 0 && t.MinPurchaseAmount.Equal(sorted[i-1].MinPurchaseAmount) {
			return nil, fmt.Errorf("tiers %q and %q share threshold %s", sorted[i-1].Name, t.Name, t.MinPurchaseAmount)
		}
	}

	for i := 0; i < len(sorted)-1; i++ {
		sorted[i].next = &sorted[i+1]
	}
	sorted[len(sorted)-1].next = nil

	return &Table{tiers: sorted}, nil
}

func Parse(data []byte) (*Table, error) {
	var f tableFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("can't decode tier table: %w", err)
	}
	return NewTable(f.Tiers)
}

func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read tier table: %w", err)
	}
	return Parse(data)
}

// Load reads the table at path, or returns the built-in table when path is
// empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Default is the built-in bronze/silver/gold table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("built-in tier table is invalid: %v", err))
	}
	return t
}

// TierFor returns the highest tier whose threshold does not exceed amount.
func (t *Table) TierFor(amount decimal.Decimal) Tier {
	current := t.tiers[0]
	for _, tr := range t.tiers[1:] {
		if tr.MinPurchaseAmount.GreaterThan(amount) {
			break
		}
		current = tr
	}
	return current
}

func (t *Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}
