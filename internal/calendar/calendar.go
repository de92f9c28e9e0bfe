// Package calendar converts instants into local-calendar months.
//
// Month boundaries and labels depend on the deployment locale: the shop runs on the
// Jalali (Persian) calendar, so a "month" starts on the 1st of Farvardin, Ordibehesht, ...
// in Asia/Tehran, not on the Gregorian 1st.
package calendar

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// MonthKey identifies one month of a calendar. Month is 1-based.
type MonthKey struct {
	Year  int
	Month int
}

// AddMonths shifts the key by n months (n may be negative)
func (k MonthKey) AddMonths(n int) MonthKey {
	idx := k.Year*12 + (k.Month - 1) + n
	return MonthKey{Year: floorDiv(idx, 12), Month: idx - floorDiv(idx, 12)*12 + 1}
}

// Before reports whether k is strictly earlier than o
func (k MonthKey) Before(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Calendar is the local calendar used for bucketing and display
type Calendar interface {
	// MonthOf returns the month containing t
	MonthOf(t time.Time) MonthKey
	// StartOf returns the first instant of month k
	StartOf(k MonthKey) time.Time
	// Label renders a month as "<month name> <year>"
	Label(k MonthKey) string
	// FormatDateTime renders t as "Y-n-j H:i:s" in the calendar
	FormatDateTime(t time.Time) string
	Location() *time.Location
}

// New returns the calendar registered under name
func New(name string, loc *time.Location) (Calendar, error) {
	switch name {
	case "jalali", "persian":
		return NewJalali(loc), nil
	case "gregorian":
		return NewGregorian(loc), nil
	default:
		return nil, fmt.Errorf("unknown calendar %q", name)
	}
}

// LoadLocation loads an IANA zone, falling back to Iran Standard Time when tzdata is missing
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == "Asia/Tehran" {
			return time.FixedZone("IRST", 3*60*60+30*60)
		}
		return time.UTC
	}
	return loc
}

type jalali struct {
	loc *time.Location
}

func NewJalali(loc *time.Location) Calendar {
	return &jalali{loc: loc}
}

func (j *jalali) Location() *time.Location { return j.loc }

func (j *jalali) MonthOf(t time.Time) MonthKey {
	pt := ptime.New(t.In(j.loc))
	return MonthKey{Year: pt.Year(), Month: int(pt.Month())}
}

func (j *jalali) StartOf(k MonthKey) time.Time {
	pt := ptime.Date(k.Year, ptime.Month(k.Month), 1, 0, 0, 0, 0, j.loc)
	return pt.Time()
}

func (j *jalali) Label(k MonthKey) string {
	return fmt.Sprintf("%s %d", ptime.Month(k.Month).String(), k.Year)
}

func (j *jalali) FormatDateTime(t time.Time) string {
	local := t.In(j.loc)
	pt := ptime.New(local)
	h, m, s := local.Clock()
	return fmt.Sprintf("%d-%d-%d %02d:%02d:%02d", pt.Year(), int(pt.Month()), pt.Day(), h, m, s)
}

type gregorian struct {
	loc *time.Location
}

func NewGregorian(loc *time.Location) Calendar {
	return &gregorian{loc: loc}
}

func (g *gregorian) Location() *time.Location { return g.loc }

func (g *gregorian) MonthOf(t time.Time) MonthKey {
	local := t.In(g.loc)
	return MonthKey{Year: local.Year(), Month: int(local.Month())}
}

func (g *gregorian) StartOf(k MonthKey) time.Time {
	return time.Date(k.Year, time.Month(k.Month), 1, 0, 0, 0, 0, g.loc)
}

func (g *gregorian) Label(k MonthKey) string {
	return fmt.Sprintf("%s %d", time.Month(k.Month).String(), k.Year)
}

func (g *gregorian) FormatDateTime(t time.Time) string {
	local := t.In(g.loc)
	return local.Format("2006-1-2 15:04:05")
}
