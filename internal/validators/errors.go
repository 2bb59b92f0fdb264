package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMissionID = errors.New("mission id is required")
	ErrEmptyStatus      = errors.New("status is required")
	ErrMissingScore     = errors.New("score is required")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 100")
)
