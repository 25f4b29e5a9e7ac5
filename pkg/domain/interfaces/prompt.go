package interfaces

// Prompter solicits interactive input from the operator
type Prompter interface {
	// Ask prints the label and returns one trimmed line of input
	Ask(label string) (string, error)

	// Confirm asks a yes/no question and reports whether the operator agreed
	Confirm(label string) (bool, error)
}
