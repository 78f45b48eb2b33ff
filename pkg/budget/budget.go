package budget

// Category is one line of a wedding budget, e.g. "Catering" or "Decor".
// Amounts are in minor currency units.
type Category struct {
	Id        int
	WeddingId int
	Name      string
	// SubEventId links the category to one sub-event, 0 when it spans the
	// whole wedding.
	SubEventId int
	Allocated  int64
	// Committed is the total agreed with vendors but not yet paid.
	Committed int64
	Spent     int64
}

// Remaining is the allocated amount not yet committed or spent. Negative
// when the category is over budget.
func (c Category) Remaining() int64 {
	return c.Allocated - c.Committed - c.Spent
}

// Summary aggregates all categories of a wedding against its total budget.
type Summary struct {
	TotalBudget    int64
	TotalAllocated int64
	TotalCommitted int64
	TotalSpent     int64
	// Unallocated is the slice of the total budget not assigned to any
	// category. Negative when categories overshoot the total.
	Unallocated int64
	Categories  []Category
}
