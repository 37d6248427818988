package repo

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email in use")
	ErrEmptyField         = errors.New("required field is empty")
	ErrNotTeacher         = errors.New("user is not a teacher")
	ErrNotFound           = errors.New("not found")

	// Missing-precondition family: a page was entered before the hand-off
	// record it depends on was written. These are the only fatal errors and
	// force a redirect to a safe page.
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrNoCourseSelected = errors.New("no course selected")
	ErrNoOpenResource   = errors.New("no resource selected")
)
