// file: internals/features/school/overview/dto/overview_dto.go
package dto

import (
	"github.com/google/uuid"

	timetableDTO "schoolku_backend/internals/features/school/timetable/dto"
)

/* =========================================================
   RESPONSES
   ========================================================= */

// AdminOverviewResponse feeds the dashboard cards.
type AdminOverviewResponse struct {
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
	Classes  int64 `json:"classes"`
	Sections int64 `json:"sections"`
}

// TeacherTodayResponse is the teacher's landing view: today's classes
// in period order.
type TeacherTodayResponse struct {
	ClassesCount int                         `json:"classes_count"`
	PendingCount int                         `json:"pending_count"`
	Schedule     []timetableDTO.PersonalSlot `json:"schedule"`
}

// StudentTodayResponse is the student's landing view: today's classes
// plus a month-to-date attendance summary.
type StudentTodayResponse struct {
	ClassesCount int                         `json:"classes_count"`
	Schedule     []timetableDTO.PersonalSlot `json:"schedule"`
	Attendance   AttendanceSummary           `json:"attendance"`
}

type AttendanceSummary struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}

// PeerResponse is the slim student row used by the peers and
// teacher-roster listings.
type PeerResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ClassID   uuid.UUID `json:"class_id"`
	SectionID uuid.UUID `json:"section_id"`
}
