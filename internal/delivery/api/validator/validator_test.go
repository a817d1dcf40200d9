package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Device   string `json:"device_external_id" validate:"required,notblank"`
	Platform string `json:"device_platform" validate:"required"`
	Internal string `json:"-" validate:"omitempty,max=1"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&report{Device: "   "})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"device_external_id": "notblank",
		"device_platform":    "required",
	}, FieldErrors(err))
}

func TestValidate_LeavesPlatformValuesToUsecase(t *testing.T) {
	assert.NoError(t, New().Validate(&report{Device: "mac-1", Platform: "amiga"}))
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
