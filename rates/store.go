package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Store supplies the tabular rate data the calculators consume. The
// calculation core never mutates this data; implementations decide where it
// comes from (in-memory tables here, a settings document upstream).
type Store interface {
	// PTKPAmount returns the annual tax-free income for a tax status code.
	PTKPAmount(taxStatus string) (decimal.Decimal, error)
	// TERCategoryFor maps a tax status code to its TER category.
	TERCategoryFor(taxStatus string) (TERCategory, error)
	// TaxBrackets returns the progressive schedule, sorted ascending.
	TaxBrackets() []TaxBracket
	// TERBrackets returns the flat-rate rows for one category, sorted
	// ascending by IncomeFrom.
	TERBrackets(category TERCategory) []TERBracket
}

// StaticStore serves rate data from immutable in-memory tables.
type StaticStore struct {
	ptkp        map[string]decimal.Decimal
	terMapping  map[string]TERCategory
	taxBrackets []TaxBracket
	terBrackets map[TERCategory][]TERBracket
}

// NewStaticStore builds a store from the supplied tables. The progressive
// schedule is validated up front; bad reference data should fail loading,
// not a payroll run.
func NewStaticStore(
	ptkp map[string]decimal.Decimal,
	terMapping map[string]TERCategory,
	taxBrackets []TaxBracket,
	terBrackets []TERBracket,
) (*StaticStore, error) {
	sorted := make([]TaxBracket, len(taxBrackets))
	copy(sorted, taxBrackets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].IncomeFrom.LessThan(sorted[j].IncomeFrom)
	})
	if err := ValidateSchedule(sorted); err != nil {
		return nil, err
	}

	normPTKP := make(map[string]decimal.Decimal, len(ptkp))
	for status, amount := range ptkp {
		normPTKP[strings.ToUpper(status)] = amount
	}
	normMapping := make(map[string]TERCategory, len(terMapping))
	for status, category := range terMapping {
		if !category.Valid() {
			return nil, fmt.Errorf("%w: %q for status %s", ErrInvalidTERCategory, category, status)
		}
		normMapping[strings.ToUpper(status)] = category
	}

	byCategory := make(map[TERCategory][]TERBracket)
	for _, b := range terBrackets {
		if !b.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTERCategory, b.Category)
		}
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}
	for category := range byCategory {
		rows := byCategory[category]
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].IncomeFrom.LessThan(rows[j].IncomeFrom)
		})
	}

	return &StaticStore{
		ptkp:        normPTKP,
		terMapping:  normMapping,
		taxBrackets: sorted,
		terBrackets: byCategory,
	}, nil
}

// ValidateSchedule enforces the progressive schedule invariants: sorted,
// contiguous, non-overlapping, last bracket unbounded.
func ValidateSchedule(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: empty schedule", ErrInvalidSchedule)
	}
	prevTo := decimal.Zero
	for i, b := range brackets {
		if !b.IncomeFrom.Equal(prevTo) {
			return fmt.Errorf("%w: bracket %d starts at %s, expected %s",
				ErrInvalidSchedule, i, b.IncomeFrom, prevTo)
		}
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidSchedule)
			}
			break
		}
		if b.Unbounded() || !b.IncomeTo.GreaterThan(b.IncomeFrom) {
			return fmt.Errorf("%w: bracket %d has invalid upper end %s",
				ErrInvalidSchedule, i, b.IncomeTo)
		}
		prevTo = b.IncomeTo
	}
	return nil
}

func (s *StaticStore) PTKPAmount(taxStatus string) (decimal.Decimal, error) {
	amount, ok := s.ptkp[strings.ToUpper(taxStatus)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownTaxStatus, taxStatus)
	}
	return amount, nil
}

func (s *StaticStore) TERCategoryFor(taxStatus string) (TERCategory, error) {
	category, ok := s.terMapping[strings.ToUpper(taxStatus)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnmappedTaxStatus, taxStatus)
	}
	return category, nil
}

func (s *StaticStore) TaxBrackets() []TaxBracket {
	out := make([]TaxBracket, len(s.taxBrackets))
	copy(out, s.taxBrackets)
	return out
}

func (s *StaticStore) TERBrackets(category TERCategory) []TERBracket {
	rows := s.terBrackets[category]
	out := make([]TERBracket, len(rows))
	copy(out, rows)
	return out
}
