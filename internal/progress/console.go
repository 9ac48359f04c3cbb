// Package progress formats batch progress and prompts into bracketed console
// lines and validates the answers read back from the console.
package progress

// Console is the capability the presenter writes to and reads from.
// A terminal, a scripted test double or any other transport can implement it.
type Console interface {
	// Log prints one complete line.
	Log(message string)

	// Ask prints message and returns the raw answer. The answer may still
	// carry a line terminator or surrounding blanks.
	Ask(message string) (string, error)
}
