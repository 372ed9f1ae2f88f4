// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// AttendanceRecordModel is one student's mark for one date. Re-marking
// the same (class, section, date, student) overwrites the earlier row.
type AttendanceRecordModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceSchoolID  uuid.UUID `gorm:"column:attendance_school_id;type:uuid;not null;uniqueIndex:uq_attendance_mark,priority:1" json:"attendance_school_id"`
	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;uniqueIndex:uq_attendance_mark,priority:2" json:"attendance_class_id"`
	AttendanceSectionID uuid.UUID `gorm:"column:attendance_section_id;type:uuid;not null;uniqueIndex:uq_attendance_mark,priority:3" json:"attendance_section_id"`
	AttendanceDate      datatypes.Date `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_mark,priority:4" json:"attendance_date"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_mark,priority:5" json:"attendance_student_id"`

	AttendanceTeacherID *uuid.UUID `gorm:"column:attendance_teacher_id;type:uuid" json:"attendance_teacher_id,omitempty"`
	AttendanceStatus    string     `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
