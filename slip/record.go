package slip

import "strings"

// EmploymentFullTime is the only employment type the statutory calculators
// apply to; everything else short-circuits to a zero result.
const EmploymentFullTime = "Full-time"

// Record normalizes the employee fields the calculators need. Callers build
// it directly from their own employee model, or through RecordFromMap when
// the source is a loosely-typed document.
type Record struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TaxStatus      string `json:"tax_status"`
	EmploymentType string `json:"employment_type"`
}

// IsFullTime reports whether the statutory calculations apply.
func (r Record) IsFullTime() bool {
	return r.EmploymentType == EmploymentFullTime
}

func mapString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// RecordFromMap builds a Record from a generic document, probing the field
// aliases used by upstream systems (status_pajak vs tax_status and so on).
func RecordFromMap(m map[string]any) Record {
	return Record{
		ID:             mapString(m, "id", "employee", "name"),
		Name:           mapString(m, "employee_name", "full_name"),
		TaxStatus:      strings.ToUpper(mapString(m, "tax_status", "status_pajak")),
		EmploymentType: mapString(m, "employment_type"),
	}
}
