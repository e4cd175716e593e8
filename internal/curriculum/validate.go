package curriculum

import (
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// ValidateDocument checks a curriculum Document for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateDocument(doc *Document) []error {
	var errs []error

	for name, entries := range doc.StarterPack {
		if _, ok := domain.ParseOffice(name); !ok {
			errs = append(errs, fmt.Errorf("starter_pack: unknown office %q", name))
			continue
		}
		errs = append(errs, validateEntries("starter_pack."+name, entries, 1, progression.StarterDays)...)
	}

	errs = append(errs, validateEntries("month_1.days", doc.Month1.Days, 8, 35)...)
	errs = append(errs, validateEntries("month_2.gatekeeper", doc.Month2.Gatekeeper, 36, 63)...)
	errs = append(errs, validateEntries("month_2.healer", doc.Month2.Healer, 36, 63)...)
	errs = append(errs, validateEntries("month_3.aaronic", doc.Month3.Aaronic, 64, 91)...)
	errs = append(errs, validateEntries("month_3.melchizedek", doc.Month3.Melchizedek, 64, 91)...)
	errs = append(errs, validateEntries("month_4.aaronic", doc.Month4.Aaronic, 92, 120)...)
	errs = append(errs, validateEntries("month_4.melchizedek", doc.Month4.Melchizedek, 92, 120)...)

	return errs
}

func validateEntries(path string, entries []Entry, start, end int) []error {
	var errs []error
	seen := map[int]bool{}
	for i, e := range entries {
		if e.Day < start || e.Day > end {
			errs = append(errs, fmt.Errorf("%s[%d]: day %d outside [%d,%d]", path, i, e.Day, start, end))
		}
		if seen[e.Day] {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate day %d", path, i, e.Day))
		}
		seen[e.Day] = true
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: title is required", path, i))
		}
	}
	return errs
}
