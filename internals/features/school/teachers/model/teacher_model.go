// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	// Tenant / scope
	TeacherSchoolID uuid.UUID `json:"teacher_school_id" gorm:"type:uuid;not null;column:teacher_school_id;index"`

	// Linked login account (set by activation)
	TeacherUserID *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"type:uuid;column:teacher_user_id;uniqueIndex"`

	TeacherFirstName string  `json:"teacher_first_name" gorm:"type:varchar(80);not null;column:teacher_first_name"`
	TeacherLastName  string  `json:"teacher_last_name" gorm:"type:varchar(80);not null;column:teacher_last_name"`
	TeacherEmail     *string `json:"teacher_email,omitempty" gorm:"type:varchar(255);column:teacher_email"`
	TeacherPhone     *string `json:"teacher_phone,omitempty" gorm:"type:varchar(30);column:teacher_phone"`
	TeacherSubject   *string `json:"teacher_subject,omitempty" gorm:"type:varchar(120);column:teacher_subject"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"type:boolean;not null;default:true;column:teacher_is_active"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
