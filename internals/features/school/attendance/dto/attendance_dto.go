// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type MarkRecord struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent Late"`
}

// MarkAttendanceRequest marks a whole class/section for one date in
// one call.
type MarkAttendanceRequest struct {
	ClassID   uuid.UUID    `json:"class_id" validate:"required"`
	SectionID uuid.UUID    `json:"section_id" validate:"required"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02"`
	Records   []MarkRecord `json:"records" validate:"required,min=1,dive"`
}

type AttendanceMarkResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
