// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassSchoolID uuid.UUID `json:"class_school_id" gorm:"type:uuid;not null;column:class_school_id;index"`

	ClassName     string `json:"class_name" gorm:"type:varchar(80);not null;column:class_name"`
	ClassIsActive bool   `json:"class_is_active" gorm:"type:boolean;not null;default:true;column:class_is_active"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
