package constants

// JobStatus is the canonical status of an extraction job.
type JobStatus string

// Stable values (logged and reported as these exact strings).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // waiting to be processed
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusOCROK     JobStatus = "OCR_OK"     // stage 1 completed (text + words recovered)
	JobStatusExtracted JobStatus = "EXTRACTED"  // stage 2 completed (fields extracted)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
