package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSortsAndDedupes(t *testing.T) {
	req := PutSettingsRequest{WorkingDays: []int64{5, 1, 3, 1, 5}}
	require.NoError(t, req.Normalize())
	assert.Equal(t, []int64{1, 3, 5}, req.WorkingDays)
}

func TestNormalizeRejectsOutOfRange(t *testing.T) {
	req := PutSettingsRequest{WorkingDays: []int64{1, 8}}
	assert.Error(t, req.Normalize())

	req = PutSettingsRequest{WorkingDays: []int64{0}}
	assert.Error(t, req.Normalize())
}
