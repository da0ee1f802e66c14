package shell

// Exported for white-box testing.
var (
	ParseOutput  = parseOutput
	SplitCommand = splitCommand
)
