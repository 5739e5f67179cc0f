package grid

// Cell holds the spans declared by one cell. Both spans are at least 1.
type Cell struct {
	RowSpan int
	ColSpan int
}

// Row is the ordered list of cells declared by one physical row.
type Row []Cell

// Group is a run of physical rows whose cell placement is resolved together.
// First and Last are inclusive offsets into the table's row sequence.
type Group struct {
	Index int
	First int
	Last  int
	// Declared is the row span the defining row asked for before clipping.
	Declared int
}

// Len returns the number of physical rows in the group.
func (g Group) Len() int {
	return g.Last - g.First + 1
}

// Clipped reports whether the table ended before the declared span.
func (g Group) Clipped() bool {
	return g.Len() < g.Declared
}

// Partition splits rows into consecutive groups covering every row exactly once.
// A group starts at the next unconsumed row and extends over the largest row span
// declared in that row, clipped to the rows available.
func Partition(rows []Row) []Group {
	var groups []Group
	for i := 0; i < len(rows); {
		span := 1
		for _, c := range rows[i] {
			if c.RowSpan > span {
				span = c.RowSpan
			}
		}

		last := i + min(span, len(rows)-i) - 1
		groups = append(groups, Group{
			Index:    len(groups),
			First:    i,
			Last:     last,
			Declared: span,
		})
		i = last + 1
	}
	return groups
}
