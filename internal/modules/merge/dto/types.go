package dto

// Report summarizes one merge run.
type Report struct {
	Filled    int
	Appended  int
	Skipped   int
	Processed []string
	Rejected  []string
}
