package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenLockID(t *testing.T) {
	userID := uuid.New()

	assert.Equal(t, GenLockID(sessionIngestLockPrefix+userID.String()), GenLockID(sessionIngestLockPrefix+userID.String()))
	assert.NotEqual(t, GenLockID(sessionIngestLockPrefix+userID.String()), GenLockID(sessionIngestLockPrefix+uuid.NewString()))
	assert.NotEqual(t, GenLockID("a"), GenLockID("b"))
}
