package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr represents an error when an operation collides with existing
// state, such as a duplicate email address.
type ConflictErr struct {
	domainErr
}

// NewConflictErr creates a new ConflictErr with the given message.
func NewConflictErr(message string) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
	}
}

// DataErr represents an error caused by malformed or empty input data, such
// as a broken dataset row or an invalid import file.
type DataErr struct {
	domainErr
}

// NewDataErr creates a new DataErr with the given message.
func NewDataErr(message string) *DataErr {
	return &DataErr{
		domainErr: domainErr{message: message},
	}
}

// InsufficientDataErr represents an error when the training set cannot
// support fitting a classifier.
type InsufficientDataErr struct {
	domainErr
}

// NewInsufficientDataErr creates a new InsufficientDataErr with the given message.
func NewInsufficientDataErr(message string) *InsufficientDataErr {
	return &InsufficientDataErr{
		domainErr: domainErr{message: message},
	}
}

// CorruptArtifactErr represents an error when a persisted model artifact
// cannot be deserialized into all of its required fields.
type CorruptArtifactErr struct {
	domainErr
}

// NewCorruptArtifactErr creates a new CorruptArtifactErr with the given message.
func NewCorruptArtifactErr(message string) *CorruptArtifactErr {
	return &CorruptArtifactErr{
		domainErr: domainErr{message: message},
	}
}

// NoModelLoadedErr represents an error when a prediction is requested before
// any model artifact has been loaded.
type NoModelLoadedErr struct {
	domainErr
}

// NewNoModelLoadedErr creates a new NoModelLoadedErr with the given message.
func NewNoModelLoadedErr(message string) *NoModelLoadedErr {
	return &NoModelLoadedErr{
		domainErr: domainErr{message: message},
	}
}

// TrainingInProgressErr represents an error when a training run is requested
// while another run is still in flight.
type TrainingInProgressErr struct {
	domainErr
}

// NewTrainingInProgressErr creates a new TrainingInProgressErr with the given message.
func NewTrainingInProgressErr(message string) *TrainingInProgressErr {
	return &TrainingInProgressErr{
		domainErr: domainErr{message: message},
	}
}
