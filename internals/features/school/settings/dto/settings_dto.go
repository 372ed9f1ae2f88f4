// file: internals/features/school/settings/dto/settings_dto.go
package dto

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/settings/model"
)

type PutSettingsRequest struct {
	WorkingDays []int64 `json:"working_days" validate:"required,min=1,max=7,dive,min=1,max=7"`
}

// Normalize sorts and dedupes the day indexes.
func (r *PutSettingsRequest) Normalize() error {
	seen := map[int64]bool{}
	out := make([]int64, 0, len(r.WorkingDays))
	for _, d := range r.WorkingDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("working_days entries must be between 1 and 7")
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	r.WorkingDays = out
	return nil
}

type SettingsResponse struct {
	SchoolID    uuid.UUID `json:"school_id"`
	WorkingDays []int64   `json:"working_days"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModelSettings(m *model.SchoolSettingsModel) *SettingsResponse {
	return &SettingsResponse{
		SchoolID:    m.SchoolSettingsSchoolID,
		WorkingDays: m.SchoolSettingsWorkingDays,
		UpdatedAt:   m.SchoolSettingsUpdatedAt,
	}
}
