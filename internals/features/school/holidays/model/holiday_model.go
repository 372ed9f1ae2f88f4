// file: internals/features/school/holidays/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum type (matches holiday_type_enum)
   ======================================================= */

type HolidayType string

const (
	HolidayTypeHoliday HolidayType = "Holiday"
	HolidayTypeEvent   HolidayType = "Event"
	HolidayTypeExam    HolidayType = "Exam"
	HolidayTypeBreak   HolidayType = "Break"
	HolidayTypeOther   HolidayType = "Other"
)

/* =======================================================
   HolidayModel - maps the holidays table
   ======================================================= */

type HolidayModel struct {
	// PK
	HolidayID uuid.UUID `json:"holiday_id" gorm:"type:uuid;primaryKey;column:holiday_id;default:gen_random_uuid()"`

	// Tenant / scope
	HolidaySchoolID uuid.UUID `json:"holiday_school_id" gorm:"type:uuid;not null;column:holiday_school_id;index"`

	HolidayTitle string      `json:"holiday_title" gorm:"type:varchar(160);not null;column:holiday_title"`
	HolidayType  HolidayType `json:"holiday_type" gorm:"type:text;not null;default:'Holiday';column:holiday_type"`

	// is_multi_day=false => end_date IS NULL
	HolidayIsMultiDay bool            `json:"holiday_is_multi_day" gorm:"type:boolean;not null;default:false;column:holiday_is_multi_day"`
	HolidayStartDate  datatypes.Date  `json:"holiday_start_date" gorm:"type:date;not null;column:holiday_start_date"`
	HolidayEndDate    *datatypes.Date `json:"holiday_end_date,omitempty" gorm:"type:date;column:holiday_end_date"`

	HolidayDescription *string `json:"holiday_description,omitempty" gorm:"type:text;column:holiday_description"`

	HolidayCreatedAt time.Time      `json:"holiday_created_at" gorm:"column:holiday_created_at;not null;autoCreateTime"`
	HolidayUpdatedAt time.Time      `json:"holiday_updated_at" gorm:"column:holiday_updated_at;not null;autoUpdateTime"`
	HolidayDeletedAt gorm.DeletedAt `json:"holiday_deleted_at" gorm:"column:holiday_deleted_at;index"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}

// StartTime / EndTime expose the date columns as time.Time; EndTime
// falls back to the start date for single-day records.
func (h *HolidayModel) StartTime() time.Time {
	return time.Time(h.HolidayStartDate).UTC()
}

func (h *HolidayModel) EndTime() time.Time {
	if h.HolidayEndDate != nil {
		return time.Time(*h.HolidayEndDate).UTC()
	}
	return h.StartTime()
}
