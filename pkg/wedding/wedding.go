package wedding

import "time"

// Wedding is the overarching record that sub-events, guests, vendors,
// budgets, and tasks hang off.
type Wedding struct {
	Id          int
	BrideName   string
	GroomName   string
	WeddingDate time.Time
	City        string
	// TotalBudget is the overall planned spend in minor currency units.
	TotalBudget int64
}
