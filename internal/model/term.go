package model

import (
	"fmt"
	"strconv"
)

// Party identifies the political party of an administration.
type Party int

const (
	Democratic Party = iota
	Republican
)

func (p Party) String() string {
	switch p {
	case Democratic:
		return "Democratic"
	case Republican:
		return "Republican"
	default:
		return "Unknown"
	}
}

// Term is one presidential administration on the year axis.
// Start and End are four-digit year strings; adjacent terms share a boundary year.
type Term struct {
	Start     string
	End       string
	Party     Party
	President string
}

// StartYear returns Start as an int.
func (t Term) StartYear() int {
	y, _ := strconv.Atoi(t.Start)
	return y
}

// EndYear returns End as an int.
func (t Term) EndYear() int {
	y, _ := strconv.Atoi(t.End)
	return y
}

// Label is the text drawn next to the administration band.
func (t Term) Label() string {
	return fmt.Sprintf("%s (%s)", t.President, t.Start)
}

var presidentialTerms = [...]Term{
	{"1961", "1963", Democratic, "John F. Kennedy"},
	{"1963", "1969", Democratic, "Lyndon B. Johnson"},
	{"1969", "1974", Republican, "Richard Nixon"},
	{"1974", "1977", Republican, "Gerald Ford"},
	{"1977", "1981", Democratic, "Jimmy Carter"},
	{"1981", "1989", Republican, "Ronald Reagan"},
	{"1989", "1993", Republican, "George H. W. Bush"},
	{"1993", "2001", Democratic, "Bill Clinton"},
	{"2001", "2009", Republican, "George W. Bush"},
	{"2009", "2017", Democratic, "Barack Obama"},
	{"2017", "2021", Republican, "Donald Trump"},
}

// PresidentialTerms returns the administrations from 1961 to 2021 in order.
// The returned slice is a copy; callers may modify it freely.
func PresidentialTerms() []Term {
	out := make([]Term, len(presidentialTerms))
	copy(out, presidentialTerms[:])
	return out
}

// TermForYear returns the administration in office for most of the given
// fiscal year. A boundary year belongs to the incoming administration.
func TermForYear(year int) (Term, bool) {
	terms := presidentialTerms
	for i, t := range terms {
		last := i == len(terms)-1
		if year >= t.StartYear() && (year < t.EndYear() || (last && year == t.EndYear())) {
			return t, true
		}
	}
	return Term{}, false
}
