// file: internals/features/school/classes/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionModel is a named split of one class (e.g. "8 / A").
type SectionModel struct {
	// PK
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;primaryKey;column:section_id;default:gen_random_uuid()"`

	// Tenant / scope
	SectionSchoolID uuid.UUID `json:"section_school_id" gorm:"type:uuid;not null;column:section_school_id;index"`

	// Parent class
	SectionClassID uuid.UUID `json:"section_class_id" gorm:"type:uuid;not null;column:section_class_id;index"`

	SectionName string `json:"section_name" gorm:"type:varchar(40);not null;column:section_name"`

	SectionCreatedAt time.Time      `json:"section_created_at" gorm:"column:section_created_at;not null;autoCreateTime"`
	SectionUpdatedAt time.Time      `json:"section_updated_at" gorm:"column:section_updated_at;not null;autoUpdateTime"`
	SectionDeletedAt gorm.DeletedAt `json:"section_deleted_at" gorm:"column:section_deleted_at;index"`
}

func (SectionModel) TableName() string {
	return "sections"
}
