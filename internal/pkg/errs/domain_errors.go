package errs

// Sentinel errors shared across the usecase and infra layers
var (
	// Queue errors
	ErrResetNotConfirmed = New("reset requires explicit confirmation")
	ErrCounterOutOfRange = New("counter is not configured")
	ErrPersistenceFailed = New("ticket persistence failed")

	// Collaborator errors, always converted to fallbacks before reaching callers
	ErrCollaboratorFailed = New("collaborator call failed")
	ErrSchemaMismatch     = New("collaborator response does not match schema")
	ErrSpeechUnavailable  = New("speech synthesis unavailable")

	// Staff errors
	ErrStaffNotFound      = New("staff account not found")
	ErrInvalidCredentials = New("invalid email or password")
)
