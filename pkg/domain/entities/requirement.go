package entities

import "strings"

// DaysPerWeek scales daily minimums to the weekly planning horizon
const DaysPerWeek = 7

// Nutrients holds an amount of each tracked nutrient. Calories are kcal,
// the rest are grams.
type Nutrients struct {
	Calories     float64
	Protein      float64
	Carbohydrate float64
	Fat          float64
}

// Add returns the component-wise sum of two nutrient amounts
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:     n.Calories + o.Calories,
		Protein:      n.Protein + o.Protein,
		Carbohydrate: n.Carbohydrate + o.Carbohydrate,
		Fat:          n.Fat + o.Fat,
	}
}

// Scale returns the nutrient amounts multiplied by a factor
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories:     n.Calories * factor,
		Protein:      n.Protein * factor,
		Carbohydrate: n.Carbohydrate * factor,
		Fat:          n.Fat * factor,
	}
}

// NutrientRequirement is one reference row of daily minimums for a gender
// group and an inclusive age range
type NutrientRequirement struct {
	Group        string
	MinAge       int
	MaxAge       int
	DailyMinimum Nutrients
}

// Matches reports whether the row applies to the given member. Group
// comparison is case-insensitive, the age range is inclusive on both ends.
func (r NutrientRequirement) Matches(m HouseholdMember) bool {
	if !strings.EqualFold(r.Group, string(m.Gender)) {
		return false
	}
	return m.Age >= r.MinAge && m.Age <= r.MaxAge
}

// Overlaps reports whether two rows of the same group cover a common age
func (r NutrientRequirement) Overlaps(o NutrientRequirement) bool {
	if !strings.EqualFold(r.Group, o.Group) {
		return false
	}
	return r.MinAge <= o.MaxAge && o.MinAge <= r.MaxAge
}
