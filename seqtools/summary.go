package main

// RunSummary is storing seqtools run summary information.
type RunSummary struct {
	// Version stores seqtools version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the subcommand name.
	Command string `json:"command"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
	// Results is an array of all the computed values.
	Results []Result `json:"results"`
}

// Result is a single named value, e.g. a translated sequence.
type Result struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}
