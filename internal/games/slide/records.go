package slide

// Reasons a run ends.
const (
	EndTimeout = "timeout"
	EndRestart = "restart"
	EndQuit    = "quit"
)

// ClearRecord describes one cleared level.
type ClearRecord struct {
	RunID     string
	Level     int // Zero-based level index
	Variant   string
	Dimension int
	Moves     int
	Seconds   float64 // Time taken to solve
}

// RunRecord describes a finished run, from Start until it timed out or was
// abandoned.
type RunRecord struct {
	RunID     string
	Cleared   int
	Level     int // Level index the run ended on
	Dimension int
	Reason    string
}

// Recorder persists results. Implementations must not block for long: they
// are called from the simulation tick.
type Recorder interface {
	RecordClear(ClearRecord) error
	RecordRun(RunRecord) error
}
