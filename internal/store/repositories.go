package store

import "github.com/MKhiriev/go-users-api/internal/logger"

// Repositories groups the repositories handed to the service layer.
type Repositories struct {
	UserRepository UserRepository

	// closer releases the connection backing UserRepository, if any.
	closer func() error
	logger *logger.Logger
}

// Close releases the underlying connection. It is safe to call on the
// in-memory backend.
func (r *Repositories) Close() error {
	if r.closer == nil {
		return nil
	}

	r.logger.Info().Msg("closing storage connection")
	return r.closer()
}
