package bpjs

import "github.com/shopspring/decimal"

// Rates - percentage rates and salary caps for the five BPJS programs.
// Kesehatan and JP contributions are computed on a capped base; JHT, JKK
// and JKM use the full base salary.
type Rates struct {
	KesehatanEmployeePercent decimal.Decimal `json:"kesehatan_employee_percent"`
	KesehatanEmployerPercent decimal.Decimal `json:"kesehatan_employer_percent"`
	KesehatanMaxSalary       decimal.Decimal `json:"kesehatan_max_salary"`
	JHTEmployeePercent       decimal.Decimal `json:"jht_employee_percent"`
	JHTEmployerPercent       decimal.Decimal `json:"jht_employer_percent"`
	JPEmployeePercent        decimal.Decimal `json:"jp_employee_percent"`
	JPEmployerPercent        decimal.Decimal `json:"jp_employer_percent"`
	JPMaxSalary              decimal.Decimal `json:"jp_max_salary"`
	JKKPercent               decimal.Decimal `json:"jkk_percent"`
	JKMPercent               decimal.Decimal `json:"jkm_percent"`
}

// Contributions - per-program employee and employer amounts for one salary.
// All amounts are non-negative whole-rupiah values.
type Contributions struct {
	KesehatanEmployee decimal.Decimal `json:"kesehatan_employee"`
	KesehatanEmployer decimal.Decimal `json:"kesehatan_employer"`
	JHTEmployee       decimal.Decimal `json:"jht_employee"`
	JHTEmployer       decimal.Decimal `json:"jht_employer"`
	JPEmployee        decimal.Decimal `json:"jp_employee"`
	JPEmployer        decimal.Decimal `json:"jp_employer"`
	JKK               decimal.Decimal `json:"jkk"`
	JKM               decimal.Decimal `json:"jkm"`
	TotalEmployee     decimal.Decimal `json:"total_employee"`
	TotalEmployer     decimal.Decimal `json:"total_employer"`
}
