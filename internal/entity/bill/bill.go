package bill

// Bill is a single amount entered for a named bill.
type Bill struct {
	Name   string
	Amount float64
}

// Record is the whole history of one bill, most recent amount last.
type Record struct {
	Name    string
	Amounts []float64
}

type RemoveResult int

const (
	Removed RemoveResult = iota
	RemoveNotFound
)

func (r RemoveResult) String() string {
	switch r {
	case Removed:
		return "removed"
	case RemoveNotFound:
		return "not_found"
	}
	return "unknown"
}

type UndoResult int

const (
	Undone UndoResult = iota
	UndoneAndEmptied
	UndoNotFound
)

func (r UndoResult) String() string {
	switch r {
	case Undone:
		return "undone"
	case UndoneAndEmptied:
		return "undone_and_emptied"
	case UndoNotFound:
		return "not_found"
	}
	return "unknown"
}
