// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/classes/model"
)

/* =========================================================
   Classes
   ========================================================= */

type CreateClassRequest struct {
	ClassName string `json:"class_name" validate:"required,min=1,max=80"`
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassSchoolID: schoolID,
		ClassName:     strings.TrimSpace(r.ClassName),
		ClassIsActive: true,
	}
}

type PatchClassRequest struct {
	ClassName     *string `json:"class_name" validate:"omitempty,min=1,max=80"`
	ClassIsActive *bool   `json:"class_is_active"`
}

func (r PatchClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassSchoolID  uuid.UUID `json:"class_school_id"`
	ClassName      string    `json:"class_name"`
	ClassIsActive  bool      `json:"class_is_active"`
	ClassCreatedAt time.Time `json:"class_created_at"`
}

func FromModelClass(m *model.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:        m.ClassID,
		ClassSchoolID:  m.ClassSchoolID,
		ClassName:      m.ClassName,
		ClassIsActive:  m.ClassIsActive,
		ClassCreatedAt: m.ClassCreatedAt,
	}
}

/* =========================================================
   Sections
   ========================================================= */

type CreateSectionRequest struct {
	SectionClassID uuid.UUID `json:"section_class_id" validate:"required"`
	SectionName    string    `json:"section_name" validate:"required,min=1,max=40"`
}

func (r CreateSectionRequest) ToModel(schoolID uuid.UUID) *model.SectionModel {
	return &model.SectionModel{
		SectionSchoolID: schoolID,
		SectionClassID:  r.SectionClassID,
		SectionName:     strings.TrimSpace(r.SectionName),
	}
}

type SectionResponse struct {
	SectionID        uuid.UUID `json:"section_id"`
	SectionSchoolID  uuid.UUID `json:"section_school_id"`
	SectionClassID   uuid.UUID `json:"section_class_id"`
	SectionName      string    `json:"section_name"`
	SectionCreatedAt time.Time `json:"section_created_at"`
}

func FromModelSection(m *model.SectionModel) *SectionResponse {
	return &SectionResponse{
		SectionID:        m.SectionID,
		SectionSchoolID:  m.SectionSchoolID,
		SectionClassID:   m.SectionClassID,
		SectionName:      m.SectionName,
		SectionCreatedAt: m.SectionCreatedAt,
	}
}
