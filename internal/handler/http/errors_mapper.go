package http

import (
	"errors"

	"github.com/MKhiriev/go-users-api/internal/metrics"
	"github.com/MKhiriev/go-users-api/internal/service"
)

// Create failure reasons. They are logged and counted but never exposed:
// every create failure yields the same response.
const (
	reasonInvalidPayload = "invalid_payload"
	reasonDuplicateID    = "duplicate_id"
	reasonStorageError   = "storage_error"
)

var failureReasonMap = map[error]string{
	ErrMalformedPayload:            reasonInvalidPayload,
	service.ErrInvalidDataProvided: reasonInvalidPayload,
	service.ErrUserAlreadyExists:   reasonDuplicateID,
}

var reasonOutcomeMap = map[string]string{
	reasonInvalidPayload: metrics.OutcomeRejected,
	reasonDuplicateID:    metrics.OutcomeRejected,
	reasonStorageError:   metrics.OutcomeError,
}

func failureReason(err error) string {
	for target, reason := range failureReasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return reasonStorageError
}

func outcomeFromReason(reason string) string {
	if outcome, ok := reasonOutcomeMap[reason]; ok {
		return outcome
	}
	return metrics.OutcomeError
}
