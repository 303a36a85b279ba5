package model

// JobStatus represents the status of a search or download job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusSearching means the polygon search is in progress
	JobStatusSearching JobStatus = "Searching"

	// JobStatusDownloading means matched resources are being downloaded
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCancelling means cancellation was requested and is propagating
	JobStatusCancelling JobStatus = "Cancelling"

	// JobStatusCancelled means the job was cancelled by the user
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusSearching || js == JobStatusDownloading || js == JobStatusCancelling
}

// IsFinished returns true if the job is in a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusCancelled || js == JobStatusError
}
