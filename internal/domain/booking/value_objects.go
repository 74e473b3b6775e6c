package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// Percent returns pct% of the amount, truncated to whole cents.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(float64(m.cents) * pct / 100.0)}
}

type Vehicle struct {
	plate string
	model string
}

func NewVehicle(plate, model string) (Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return Vehicle{}, errors.New("vehicle plate is required")
	}
	return Vehicle{plate: plate, model: strings.TrimSpace(model)}, nil
}

func (v Vehicle) Plate() string { return v.plate }
func (v Vehicle) Model() string { return v.model }

type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errors.New("customer name is required")
	}
	return Customer{name: name, email: strings.TrimSpace(email)}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Reference is the human-facing booking number, one sequence per year.
func NewReference(year int, seq int64) string {
	return fmt.Sprintf("B-%d-%04d", year, seq)
}

type Payment struct {
	AmountCents int64
	Method      string
	PaidAt      time.Time
	Note        string
}
