package entities

// GroupCount is one row of a GROUP BY ... COUNT(*) query.
type GroupCount struct {
	Key   string
	Count int64
}
