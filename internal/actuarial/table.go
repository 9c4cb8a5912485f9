// ABOUTME: Embedded abridged period life table (age x gender -> years remaining).
// ABOUTME: Linear interpolation between decade rows, clamped at the extremes.
package actuarial

import "github.com/harperreed/longevity/internal/models"

// row holds remaining life expectancy at an exact age, by gender.
// Values are rounded from the US SSA 2021 period life table.
type row struct {
	age    int
	male   float64
	female float64
}

var table = []row{
	{0, 73.5, 79.3},
	{10, 64.3, 69.9},
	{20, 54.6, 60.1},
	{30, 45.4, 50.5},
	{40, 36.4, 41.1},
	{50, 27.9, 32.0},
	{60, 20.0, 23.2},
	{70, 13.2, 15.4},
	{80, 7.8, 9.2},
	{90, 3.9, 4.6},
	{100, 2.0, 2.3},
}

// Table is the default embedded life table. It satisfies engine.LifeTable.
type Table struct{}

// NewTable returns the embedded period life table.
func NewTable() *Table {
	return &Table{}
}

// YearsRemaining looks up baseline remaining life expectancy for the given
// age and gender, interpolating linearly between table rows. Ages outside
// the table clamp to its edges. An unspecified gender averages the two
// reference columns.
func (t *Table) YearsRemaining(age int, gender models.Gender) float64 {
	if age <= table[0].age {
		return pick(table[0], gender)
	}
	last := table[len(table)-1]
	if age >= last.age {
		return pick(last, gender)
	}

	for i := 1; i < len(table); i++ {
		if age > table[i].age {
			continue
		}
		lo, hi := table[i-1], table[i]
		frac := float64(age-lo.age) / float64(hi.age-lo.age)
		return pick(lo, gender) + frac*(pick(hi, gender)-pick(lo, gender))
	}
	return pick(last, gender)
}

func pick(r row, gender models.Gender) float64 {
	switch gender {
	case models.GenderMale:
		return r.male
	case models.GenderFemale:
		return r.female
	default:
		return (r.male + r.female) / 2
	}
}
