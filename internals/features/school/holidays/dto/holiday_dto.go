// file: internals/features/school/holidays/dto/holiday_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/school/holidays/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func normalizeType(s string) (model.HolidayType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "holiday":
		return model.HolidayTypeHoliday, true
	case "event":
		return model.HolidayTypeEvent, true
	case "exam":
		return model.HolidayTypeExam, true
	case "break":
		return model.HolidayTypeBreak, true
	case "other":
		return model.HolidayTypeOther, true
	default:
		return "", false
	}
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateHolidayRequest struct {
	HolidayTitle      string  `json:"holiday_title" validate:"required,min=2,max=160"`
	HolidayType       *string `json:"holiday_type" validate:"omitempty,oneof=Holiday Event Exam Break Other"`
	HolidayIsMultiDay bool    `json:"holiday_is_multi_day"`
	HolidayStartDate  string  `json:"holiday_start_date" validate:"required,datetime=2006-01-02"`
	HolidayEndDate    *string `json:"holiday_end_date" validate:"omitempty,datetime=2006-01-02"`

	HolidayDescription *string `json:"holiday_description" validate:"omitempty,max=2000"`
}

// ToModel validates the multi-day invariant and builds a model row.
func (r CreateHolidayRequest) ToModel(schoolID uuid.UUID) (*model.HolidayModel, error) {
	start, ok := parseDateYYYYMMDD(r.HolidayStartDate)
	if !ok {
		return nil, fmt.Errorf("invalid holiday_start_date (YYYY-MM-DD)")
	}

	typ := model.HolidayTypeHoliday
	if r.HolidayType != nil {
		t, ok := normalizeType(*r.HolidayType)
		if !ok {
			return nil, fmt.Errorf("invalid holiday_type")
		}
		typ = t
	}

	m := &model.HolidayModel{
		HolidaySchoolID:    schoolID,
		HolidayTitle:       strings.TrimSpace(r.HolidayTitle),
		HolidayType:        typ,
		HolidayIsMultiDay:  r.HolidayIsMultiDay,
		HolidayStartDate:   datatypes.Date(start),
		HolidayDescription: trimPtr(r.HolidayDescription),
	}

	if r.HolidayIsMultiDay {
		if r.HolidayEndDate == nil {
			return nil, fmt.Errorf("holiday_end_date is required when holiday_is_multi_day is true")
		}
		end, ok := parseDateYYYYMMDD(*r.HolidayEndDate)
		if !ok {
			return nil, fmt.Errorf("invalid holiday_end_date (YYYY-MM-DD)")
		}
		if end.Before(start) {
			return nil, fmt.Errorf("holiday_end_date must not be before holiday_start_date")
		}
		d := datatypes.Date(end)
		m.HolidayEndDate = &d
	} else if r.HolidayEndDate != nil {
		return nil, fmt.Errorf("holiday_end_date must be empty when holiday_is_multi_day is false")
	}

	return m, nil
}

// Patch (partial)
type PatchHolidayRequest struct {
	HolidayTitle       *string `json:"holiday_title" validate:"omitempty,min=2,max=160"`
	HolidayType        *string `json:"holiday_type" validate:"omitempty,oneof=Holiday Event Exam Break Other"`
	HolidayIsMultiDay  *bool   `json:"holiday_is_multi_day"`
	HolidayStartDate   *string `json:"holiday_start_date" validate:"omitempty,datetime=2006-01-02"`
	HolidayEndDate     *string `json:"holiday_end_date" validate:"omitempty,datetime=2006-01-02"`
	HolidayDescription *string `json:"holiday_description" validate:"omitempty,max=2000"`
}

func (r PatchHolidayRequest) Apply(m *model.HolidayModel) error {
	if r.HolidayTitle != nil {
		m.HolidayTitle = strings.TrimSpace(*r.HolidayTitle)
	}
	if r.HolidayType != nil {
		t, ok := normalizeType(*r.HolidayType)
		if !ok {
			return fmt.Errorf("invalid holiday_type")
		}
		m.HolidayType = t
	}
	if r.HolidayStartDate != nil {
		t, ok := parseDateYYYYMMDD(*r.HolidayStartDate)
		if !ok {
			return fmt.Errorf("invalid holiday_start_date (YYYY-MM-DD)")
		}
		m.HolidayStartDate = datatypes.Date(t)
	}
	if r.HolidayIsMultiDay != nil {
		m.HolidayIsMultiDay = *r.HolidayIsMultiDay
	}
	if r.HolidayEndDate != nil {
		t, ok := parseDateYYYYMMDD(*r.HolidayEndDate)
		if !ok {
			return fmt.Errorf("invalid holiday_end_date (YYYY-MM-DD)")
		}
		d := datatypes.Date(t)
		m.HolidayEndDate = &d
	}

	// re-check the invariant after the merge
	if !m.HolidayIsMultiDay {
		m.HolidayEndDate = nil
	} else {
		if m.HolidayEndDate == nil {
			return fmt.Errorf("holiday_end_date is required when holiday_is_multi_day is true")
		}
		if m.EndTime().Before(m.StartTime()) {
			return fmt.Errorf("holiday_end_date must not be before holiday_start_date")
		}
	}
	if r.HolidayDescription != nil {
		m.HolidayDescription = trimPtr(r.HolidayDescription)
	}
	return nil
}

/* =========================================================
   2) LIST QUERY
   ========================================================= */

type ListHolidaysQuery struct {
	Q     *string `query:"q" validate:"omitempty,max=100"`
	Year  *int    `query:"year" validate:"omitempty,min=1970,max=2999"`
	Month *int    `query:"month" validate:"omitempty,min=1,max=12"`
}

/* =========================================================
   3) RESPONSES
   ========================================================= */

type HolidayResponse struct {
	HolidayID          uuid.UUID         `json:"holiday_id"`
	HolidaySchoolID    uuid.UUID         `json:"holiday_school_id"`
	HolidayTitle       string            `json:"holiday_title"`
	HolidayType        model.HolidayType `json:"holiday_type"`
	HolidayIsMultiDay  bool              `json:"holiday_is_multi_day"`
	HolidayStartDate   string            `json:"holiday_start_date"`
	HolidayEndDate     *string           `json:"holiday_end_date,omitempty"`
	HolidayDescription *string           `json:"holiday_description,omitempty"`
	HolidayCreatedAt   time.Time         `json:"holiday_created_at"`
	HolidayUpdatedAt   time.Time         `json:"holiday_updated_at"`
}

func FromModelHoliday(m *model.HolidayModel) *HolidayResponse {
	resp := &HolidayResponse{
		HolidayID:          m.HolidayID,
		HolidaySchoolID:    m.HolidaySchoolID,
		HolidayTitle:       m.HolidayTitle,
		HolidayType:        m.HolidayType,
		HolidayIsMultiDay:  m.HolidayIsMultiDay,
		HolidayStartDate:   m.StartTime().Format("2006-01-02"),
		HolidayDescription: m.HolidayDescription,
		HolidayCreatedAt:   m.HolidayCreatedAt,
		HolidayUpdatedAt:   m.HolidayUpdatedAt,
	}
	if m.HolidayEndDate != nil {
		s := m.EndTime().Format("2006-01-02")
		resp.HolidayEndDate = &s
	}
	return resp
}
