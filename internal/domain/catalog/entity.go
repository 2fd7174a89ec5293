package catalog

type Category struct {
	ID   int64
	Name string
}

type Brand struct {
	ID   int64
	Name string
}

// Model is a rentable equipment type (e.g. "SM58"), not a physical unit.
type Model struct {
	ID         int64
	Name       string
	CategoryID int64
	BrandID    int64
}

// Condition of a physical unit. Only ConditionOK units are ever assignable;
// the match is exact and case-sensitive, anything else ("BROKEN", "repair",
// "ok") takes the unit out of rotation.
type Condition string

const ConditionOK Condition = "OK"

// Item is one serialized physical unit of a Model.
type Item struct {
	ID        int64
	ModelID   int64
	Condition Condition
}

func (i Item) Usable() bool {
	return i.Condition == ConditionOK
}
