// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Tenant / scope
	StudentSchoolID uuid.UUID `json:"student_school_id" gorm:"type:uuid;not null;column:student_school_id;index"`

	// Placement
	StudentClassID   uuid.UUID `json:"student_class_id" gorm:"type:uuid;not null;column:student_class_id;index"`
	StudentSectionID uuid.UUID `json:"student_section_id" gorm:"type:uuid;not null;column:student_section_id;index"`

	StudentFirstName string          `json:"student_first_name" gorm:"type:varchar(80);not null;column:student_first_name"`
	StudentLastName  string          `json:"student_last_name" gorm:"type:varchar(80);not null;column:student_last_name"`
	StudentEmail     *string         `json:"student_email,omitempty" gorm:"type:varchar(255);column:student_email;index"`
	StudentGender    *string         `json:"student_gender,omitempty" gorm:"type:varchar(10);column:student_gender"`
	StudentDOB       *datatypes.Date `json:"student_dob,omitempty" gorm:"type:date;column:student_dob"`

	StudentStatus string `json:"student_status" gorm:"type:varchar(20);not null;default:'active';column:student_status"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
