package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // uploaded, waiting for a worker
	JobStatusProcessing JobStatus = "PROCESSING" // text extraction or field parsing in progress
	JobStatusCompleted  JobStatus = "COMPLETED"  // extracted data persisted with a score
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in ExtractJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// IsValidStatus reports whether s is one of the canonical job statuses.
func IsValidStatus(s string) bool {
	for _, v := range JobStatuses {
		if v == s {
			return true
		}
	}
	return false
}
