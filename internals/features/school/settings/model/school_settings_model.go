// file: internals/features/school/settings/model/school_settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SchoolSettingsModel carries the per-school schedule configuration.
// working_days holds day indexes 1..7 (Monday=1); every day not listed
// is a default non-working day for the timetable overlay.
type SchoolSettingsModel struct {
	// PK
	SchoolSettingsID uuid.UUID `json:"school_settings_id" gorm:"type:uuid;primaryKey;column:school_settings_id;default:gen_random_uuid()"`

	// One row per school
	SchoolSettingsSchoolID uuid.UUID `json:"school_settings_school_id" gorm:"type:uuid;not null;uniqueIndex;column:school_settings_school_id"`

	SchoolSettingsWorkingDays pq.Int64Array `json:"school_settings_working_days" gorm:"type:integer[];not null;column:school_settings_working_days"`

	SchoolSettingsCreatedAt time.Time `json:"school_settings_created_at" gorm:"column:school_settings_created_at;not null;autoCreateTime"`
	SchoolSettingsUpdatedAt time.Time `json:"school_settings_updated_at" gorm:"column:school_settings_updated_at;not null;autoUpdateTime"`
}

func (SchoolSettingsModel) TableName() string {
	return "school_settings"
}

// DefaultWorkingDays is Monday..Friday.
func DefaultWorkingDays() []int64 {
	return []int64{1, 2, 3, 4, 5}
}
