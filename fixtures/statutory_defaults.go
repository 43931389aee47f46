// Package fixtures carries the statutory default tables used when no
// configured value is available: PTKP amounts, the progressive schedule and
// TER tables of PMK 168/2023, and the BPJS rates and caps.
package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/bpjs"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func idr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pct(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("fixtures: bad rate literal " + s)
	}
	return d
}

// ==========================================
// PTKP (annual tax-free income, 2025 values)
// ==========================================

// DefaultPTKPTable returns the annual PTKP amount per tax status code.
func DefaultPTKPTable() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"TK0": idr(54_000_000),
		"TK1": idr(58_500_000),
		"TK2": idr(63_000_000),
		"TK3": idr(67_500_000),
		"K0":  idr(58_500_000),
		"K1":  idr(63_000_000),
		"K2":  idr(67_500_000),
		"K3":  idr(72_000_000),
		"HB0": idr(112_500_000),
		"HB1": idr(117_000_000),
		"HB2": idr(121_500_000),
		"HB3": idr(126_000_000),
	}
}

// FallbackPTKPAmount returns the PTKP amount for a status, degrading to the
// TK0 value when the status is unknown.
func FallbackPTKPAmount(taxStatus string) decimal.Decimal {
	table := DefaultPTKPTable()
	if amount, ok := table[taxStatus]; ok {
		return amount
	}
	return table["TK0"]
}

// ==========================================
// PROGRESSIVE SCHEDULE (PMK 168/2023, effective 2024)
// ==========================================

// DefaultTaxBrackets returns the progressive annual schedule. The top
// bracket is unbounded (zero IncomeTo).
func DefaultTaxBrackets() []rates.TaxBracket {
	return []rates.TaxBracket{
		{IncomeFrom: idr(0), IncomeTo: idr(60_000_000), RatePercent: idr(5)},
		{IncomeFrom: idr(60_000_000), IncomeTo: idr(250_000_000), RatePercent: idr(15)},
		{IncomeFrom: idr(250_000_000), IncomeTo: idr(500_000_000), RatePercent: idr(25)},
		{IncomeFrom: idr(500_000_000), IncomeTo: idr(5_000_000_000), RatePercent: idr(30)},
		{IncomeFrom: idr(5_000_000_000), IncomeTo: idr(0), RatePercent: idr(35)},
	}
}

// ==========================================
// TER CATEGORY MAPPING (PMK 168/2023)
// ==========================================

// DefaultTERCategoryMapping maps every PTKP status to its TER category:
// TK0 to A, TK1-TK3 and K0 to B, K1-K3 and all HB statuses to C.
func DefaultTERCategoryMapping() map[string]rates.TERCategory {
	return map[string]rates.TERCategory{
		"TK0": rates.TERCategoryA,
		"TK1": rates.TERCategoryB,
		"TK2": rates.TERCategoryB,
		"TK3": rates.TERCategoryB,
		"K0":  rates.TERCategoryB,
		"K1":  rates.TERCategoryC,
		"K2":  rates.TERCategoryC,
		"K3":  rates.TERCategoryC,
		"HB0": rates.TERCategoryC,
		"HB1": rates.TERCategoryC,
		"HB2": rates.TERCategoryC,
		"HB3": rates.TERCategoryC,
	}
}

// ==========================================
// TER BRACKET TABLES (PMK 168/2023 monthly rates)
// ==========================================

type terRow struct {
	to   int64 // upper bound, exclusive; 0 marks the highest bracket
	rate string
}

func buildTER(category rates.TERCategory, rows []terRow) []rates.TERBracket {
	out := make([]rates.TERBracket, 0, len(rows))
	from := idr(0)
	for _, r := range rows {
		b := rates.TERBracket{
			Category:    category,
			IncomeFrom:  from,
			RatePercent: pct(r.rate),
		}
		if r.to == 0 {
			b.IsHighestBracket = true
		} else {
			b.IncomeTo = idr(r.to)
			from = idr(r.to)
		}
		out = append(out, b)
	}
	return out
}

// DefaultTERBrackets returns the monthly TER tables for all three
// categories.
func DefaultTERBrackets() []rates.TERBracket {
	a := buildTER(rates.TERCategoryA, []terRow{
		{5_400_000, "0"}, {5_650_000, "0.25"}, {5_950_000, "0.5"}, {6_300_000, "0.75"},
		{6_750_000, "1"}, {7_500_000, "1.25"}, {8_550_000, "1.5"}, {9_650_000, "1.75"},
		{10_050_000, "2"}, {10_350_000, "2.25"}, {10_700_000, "2.5"}, {11_050_000, "3"},
		{11_600_000, "3.5"}, {12_500_000, "4"}, {13_750_000, "5"}, {15_100_000, "6"},
		{16_950_000, "7"}, {19_750_000, "8"}, {24_150_000, "9"}, {26_450_000, "10"},
		{28_000_000, "11"}, {30_050_000, "12"}, {32_400_000, "13"}, {35_400_000, "14"},
		{39_100_000, "15"}, {43_850_000, "16"}, {47_800_000, "17"}, {51_400_000, "18"},
		{56_300_000, "19"}, {62_200_000, "20"}, {68_600_000, "21"}, {77_500_000, "22"},
		{89_000_000, "23"}, {103_000_000, "24"}, {125_000_000, "25"}, {157_000_000, "26"},
		{206_000_000, "27"}, {337_000_000, "28"}, {454_000_000, "29"}, {550_000_000, "30"},
		{695_000_000, "31"}, {910_000_000, "32"}, {1_400_000_000, "33"}, {0, "34"},
	})
	b := buildTER(rates.TERCategoryB, []terRow{
		{6_200_000, "0"}, {6_500_000, "0.25"}, {6_850_000, "0.5"}, {7_300_000, "0.75"},
		{9_200_000, "1"}, {10_750_000, "1.5"}, {11_250_000, "2"}, {11_600_000, "2.5"},
		{12_600_000, "3"}, {13_600_000, "4"}, {14_950_000, "5"}, {16_400_000, "6"},
		{18_450_000, "7"}, {21_850_000, "8"}, {26_000_000, "9"}, {27_700_000, "10"},
		{29_350_000, "11"}, {31_450_000, "12"}, {33_950_000, "13"}, {37_100_000, "14"},
		{41_100_000, "15"}, {45_800_000, "16"}, {49_500_000, "17"}, {53_800_000, "18"},
		{58_500_000, "19"}, {64_000_000, "20"}, {71_000_000, "21"}, {80_000_000, "22"},
		{93_000_000, "23"}, {109_000_000, "24"}, {129_000_000, "25"}, {163_000_000, "26"},
		{211_000_000, "27"}, {374_000_000, "28"}, {459_000_000, "29"}, {555_000_000, "30"},
		{704_000_000, "31"}, {957_000_000, "32"}, {1_405_000_000, "33"}, {0, "34"},
	})
	c := buildTER(rates.TERCategoryC, []terRow{
		{6_600_000, "0"}, {6_950_000, "0.25"}, {7_350_000, "0.5"}, {7_800_000, "0.75"},
		{8_850_000, "1"}, {9_800_000, "1.25"}, {10_950_000, "1.5"}, {11_200_000, "1.75"},
		{12_050_000, "2"}, {12_950_000, "3"}, {14_150_000, "4"}, {15_550_000, "5"},
		{17_050_000, "6"}, {19_500_000, "7"}, {22_700_000, "8"}, {26_600_000, "9"},
		{28_100_000, "10"}, {30_100_000, "11"}, {32_600_000, "12"}, {35_400_000, "13"},
		{38_900_000, "14"}, {43_000_000, "15"}, {47_400_000, "16"}, {51_200_000, "17"},
		{55_800_000, "18"}, {60_400_000, "19"}, {66_700_000, "20"}, {74_500_000, "21"},
		{83_200_000, "22"}, {95_600_000, "23"}, {110_000_000, "24"}, {134_000_000, "25"},
		{169_000_000, "26"}, {221_000_000, "27"}, {390_000_000, "28"}, {463_000_000, "29"},
		{561_000_000, "30"}, {709_000_000, "31"}, {965_000_000, "32"}, {1_419_000_000, "33"},
		{0, "34"},
	})

	out := make([]rates.TERBracket, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, c...)
	return out
}

// ==========================================
// BPJS RATES AND CAPS
// ==========================================

// DefaultBPJSRates returns the statutory BPJS percentages and salary caps.
func DefaultBPJSRates() bpjs.Rates {
	return bpjs.Rates{
		KesehatanEmployeePercent: pct("1"),
		KesehatanEmployerPercent: pct("4"),
		KesehatanMaxSalary:       idr(12_000_000),
		JHTEmployeePercent:       pct("2"),
		JHTEmployerPercent:       pct("3.7"),
		JPEmployeePercent:        pct("1"),
		JPEmployerPercent:        pct("2"),
		JPMaxSalary:              idr(9_077_600),
		JKKPercent:               pct("0.24"),
		JKMPercent:               pct("0.3"),
	}
}

// ==========================================
// DEFAULT STORE
// ==========================================

// DefaultStore builds a rates.StaticStore from all the default tables.
func DefaultStore() *rates.StaticStore {
	store, err := rates.NewStaticStore(
		DefaultPTKPTable(),
		DefaultTERCategoryMapping(),
		DefaultTaxBrackets(),
		DefaultTERBrackets(),
	)
	if err != nil {
		// The default tables are compile-time constants; failing to
		// load them is a programming error.
		panic("fixtures: invalid default tables: " + err.Error())
	}
	return store
}
