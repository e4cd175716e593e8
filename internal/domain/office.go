package domain

import "strings"

// Office is the priesthood office the user follows. It selects the Starter
// Week curriculum and, through Order, the Month 2-4 track.
type Office string

const (
	OfficeDeacon  Office = "deacon"
	OfficeTeacher Office = "teacher"
	OfficePriest  Office = "priest"
	OfficeElder   Office = "elder"
)

// Offices lists every selectable office in display order.
var Offices = []Office{OfficeDeacon, OfficeTeacher, OfficePriest, OfficeElder}

type PriesthoodOrder string

const (
	OrderAaronic     PriesthoodOrder = "Aaronic"
	OrderMelchizedek PriesthoodOrder = "Melchizedek"
)

// ParseOffice accepts an office name in any case.
func ParseOffice(s string) (Office, bool) {
	o := Office(strings.ToLower(strings.TrimSpace(s)))
	return o, o.Valid()
}

func (o Office) Valid() bool {
	switch o {
	case OfficeDeacon, OfficeTeacher, OfficePriest, OfficeElder:
		return true
	}
	return false
}

// Order maps the office to its priesthood order. Elders hold the
// Melchizedek priesthood; every other value, including unset, is Aaronic.
func (o Office) Order() PriesthoodOrder {
	if o == OfficeElder {
		return OrderMelchizedek
	}
	return OrderAaronic
}

// Label returns the capitalized office name, or "" when unset.
func (o Office) Label() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}
