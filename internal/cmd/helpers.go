package cmd

import "os"

// Helper functions shared by the cobra command handlers

// IsDataFromStdin reports whether the process was given piped stdin data.
// Commands here operate on a project root, so piped input is rejected early.
func IsDataFromStdin() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Check if stdin is not a terminal and there is data to read
	return info.Mode()&os.ModeCharDevice == 0
}
