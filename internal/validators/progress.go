package validators

import (
	"context"
	"fmt"

	"github.com/dmarquez/go-mission-log/models"
)

const (
	FieldMissionID = "mission_id"
	FieldStatus    = "status"
	FieldScore     = "score"
)

// allProgressFields is the default field set applied when the caller does
// not restrict validation to specific fields.
var allProgressFields = []string{FieldMissionID, FieldStatus, FieldScore}

// ProgressValidator validates inbound progress payloads before any storage
// or ownership check is touched. A payload that fails here must produce no
// side effects anywhere downstream.
type ProgressValidator struct {
}

func NewProgressValidator() Validator {
	return &ProgressValidator{}
}

func (v *ProgressValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProgressPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.ProgressPayload:
		return v.validatePayload(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ProgressValidator) validatePayload(_ context.Context, payload models.ProgressPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = allProgressFields
	}

	for _, field := range fields {
		switch field {
		case FieldMissionID:
			if payload.MissionID <= 0 {
				return ErrInvalidMissionID
			}
		case FieldStatus:
			if payload.Status == "" {
				return ErrEmptyStatus
			}
		case FieldScore:
			if payload.Score == nil {
				return ErrMissingScore
			}
			if *payload.Score < 0 || *payload.Score > 100 {
				return ErrScoreOutOfRange
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
