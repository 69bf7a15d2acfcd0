package game

// AffType grades how certainly a cell is affected. The order matters: anything above AffNo affects the cell.
type AffType int

const (
	AffTracer AffType = iota - 1
	AffNo
	AffMaybe
	AffYes
	AffLanding
	AffMultiple
)

func (a AffType) Affects() bool {
	return a > AffNo
}

func (a AffType) String() string {
	switch a {
	case AffTracer:
		return "TRACER"
	case AffNo:
		return "NO"
	case AffMaybe:
		return "MAYBE"
	case AffYes:
		return "YES"
	case AffLanding:
		return "LANDING"
	case AffMultiple:
		return "MULTIPLE"
	}
	return "UNKNOWN"
}
