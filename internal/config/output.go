package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ShowBoard prints a diagram of the board with each state report
	ShowBoard bool

	// ShowMoves lists the legal moves with each state report
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
