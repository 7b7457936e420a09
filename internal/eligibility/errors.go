package eligibility

import "fmt"

// ErrAlreadyApplied indicates the worker already holds an application
// for this posting
type ErrAlreadyApplied struct{}

func (e *ErrAlreadyApplied) Error() string {
	return "You have already applied for this job!"
}

// ErrWeeklyLimitExceeded indicates the job would push the worker past
// the weekly safety cap. ProjectedHours is the total the booking would
// have produced.
type ErrWeeklyLimitExceeded struct {
	ProjectedHours int
}

func (e *ErrWeeklyLimitExceeded) Error() string {
	return fmt.Sprintf("Health Safety Warning: This job would put you at %d hours this week. The limit is %d hours.",
		e.ProjectedHours, WeeklyHourCap)
}

// ErrJobFull indicates the posting has no spare capacity
type ErrJobFull struct{}

func (e *ErrJobFull) Error() string {
	return "Sorry, this job has reached its maximum number of applicants."
}

// ErrJobUnavailable indicates the posting is no longer accepting
// applications (expired, delisted, or otherwise not open)
type ErrJobUnavailable struct {
	Status string
}

func (e *ErrJobUnavailable) Error() string {
	return fmt.Sprintf("This job is no longer accepting applications (%s).", e.Status)
}
