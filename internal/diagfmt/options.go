package diagfmt

// PathMode selects how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths relative to the FileSet base when possible.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

type PrettyOpts struct {
	Color     bool
	Context   uint8 // source lines shown above the primary line
	PathMode  PathMode
	ShowNotes bool
}

type JSONOpts struct {
	IncludePositions bool // add line/col
	PathMode         PathMode
	Max              int // truncate output, not the Bag
	IncludeNotes     bool
}

type TreeOpts struct {
	Color bool
	Spans bool // append line:col to every node
}
