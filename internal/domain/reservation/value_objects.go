package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlot      = errors.New("time is not a valid slot label")
	ErrInvalidSlotRange = errors.New("end time must come after start time")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Slot is one of the fixed time labels that make up the booking grid.
// The business day runs from the afternoon into the small hours of the
// next calendar day, so ordering is positional in slotLabels, not
// chronological: 24:00 sorts before 01:00 and 02:00.
type Slot string

var slotLabels = [...]Slot{
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	"20:00", "21:00", "22:00", "23:00", "24:00", "01:00", "02:00",
}

var slotIndex = func() map[Slot]int {
	m := make(map[Slot]int, len(slotLabels))
	for i, s := range slotLabels {
		m[s] = i
	}
	return m
}()

func Slots() []Slot {
	out := make([]Slot, len(slotLabels))
	copy(out, slotLabels[:])
	return out
}

func SlotCount() int {
	return len(slotLabels)
}

func NewSlot(label string) (Slot, error) {
	s := Slot(label)
	if _, ok := slotIndex[s]; !ok {
		return "", ErrInvalidSlot
	}
	return s, nil
}

func (s Slot) String() string {
	return string(s)
}

// Index returns the slot's position in the fixed label sequence.
func (s Slot) Index() int {
	return slotIndex[s]
}

func (s Slot) Before(other Slot) bool {
	return s.Index() < other.Index()
}

// SlotRange is a start/end pair of slot labels with end strictly after
// start in the label ordering.
type SlotRange struct {
	start Slot
	end   Slot
}

func NewSlotRange(startLabel, endLabel string) (SlotRange, error) {
	start, err := NewSlot(startLabel)
	if err != nil {
		return SlotRange{}, err
	}
	end, err := NewSlot(endLabel)
	if err != nil {
		return SlotRange{}, err
	}
	if !start.Before(end) {
		return SlotRange{}, ErrInvalidSlotRange
	}
	return SlotRange{start: start, end: end}, nil
}

func (r SlotRange) Start() Slot { return r.start }
func (r SlotRange) End() Slot   { return r.end }

// Overlaps reports whether two ranges on the same date collide. Ranges
// that merely touch at an endpoint do not overlap.
func (r SlotRange) Overlaps(other SlotRange) bool {
	return r.start.Index() < other.end.Index() && r.end.Index() > other.start.Index()
}

func (r SlotRange) String() string {
	return fmt.Sprintf("%s - %s", r.start, r.end)
}

// Date is a calendar date with no time component.
type Date struct {
	year  int
	month time.Month
	day   int
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// Time returns the date at midnight UTC, for ordering comparisons only.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Price is an optional non-negative amount. Absence is modeled by a nil
// *Price, which is distinct from a zero amount.
type Price struct {
	amount float64
}

func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() float64 {
	return p.amount
}
