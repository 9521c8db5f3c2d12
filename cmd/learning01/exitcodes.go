package main

// Exit codes. Invalid goal ids or statuses are reported on stdout and still exit 0.
const (
	ExitSuccess     = 0 // Success, including rejected user input
	ExitError       = 1 // General error (unknown command, bad flags, I/O failure)
	ExitConfigError = 2 // Global config file could not be parsed
	ExitDataError   = 3 // Goal store exists but is corrupt
)
