// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/teachers/model"
)

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

type CreateTeacherRequest struct {
	TeacherFirstName string  `json:"teacher_first_name" validate:"required,min=1,max=80"`
	TeacherLastName  string  `json:"teacher_last_name" validate:"required,min=1,max=80"`
	TeacherEmail     *string `json:"teacher_email" validate:"omitempty,email,max=255"`
	TeacherPhone     *string `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSubject   *string `json:"teacher_subject" validate:"omitempty,max=120"`
}

func (r CreateTeacherRequest) ToModel(schoolID uuid.UUID) *model.TeacherModel {
	return &model.TeacherModel{
		TeacherSchoolID:  schoolID,
		TeacherFirstName: strings.TrimSpace(r.TeacherFirstName),
		TeacherLastName:  strings.TrimSpace(r.TeacherLastName),
		TeacherEmail:     trimPtr(r.TeacherEmail),
		TeacherPhone:     trimPtr(r.TeacherPhone),
		TeacherSubject:   trimPtr(r.TeacherSubject),
		TeacherIsActive:  true,
	}
}

type PatchTeacherRequest struct {
	TeacherFirstName *string `json:"teacher_first_name" validate:"omitempty,min=1,max=80"`
	TeacherLastName  *string `json:"teacher_last_name" validate:"omitempty,min=1,max=80"`
	TeacherEmail     *string `json:"teacher_email" validate:"omitempty,email,max=255"`
	TeacherPhone     *string `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSubject   *string `json:"teacher_subject" validate:"omitempty,max=120"`
	TeacherIsActive  *bool   `json:"teacher_is_active"`
}

func (r PatchTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherFirstName != nil {
		m.TeacherFirstName = strings.TrimSpace(*r.TeacherFirstName)
	}
	if r.TeacherLastName != nil {
		m.TeacherLastName = strings.TrimSpace(*r.TeacherLastName)
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = trimPtr(r.TeacherEmail)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = trimPtr(r.TeacherPhone)
	}
	if r.TeacherSubject != nil {
		m.TeacherSubject = trimPtr(r.TeacherSubject)
	}
	if r.TeacherIsActive != nil {
		m.TeacherIsActive = *r.TeacherIsActive
	}
}

// ActivateTeacherRequest links a teacher record to a login account so
// the personal timetable view can resolve the caller.
type ActivateTeacherRequest struct {
	TeacherUserID uuid.UUID `json:"teacher_user_id" validate:"required"`
}

type TeacherResponse struct {
	TeacherID        uuid.UUID  `json:"teacher_id"`
	TeacherSchoolID  uuid.UUID  `json:"teacher_school_id"`
	TeacherUserID    *uuid.UUID `json:"teacher_user_id,omitempty"`
	TeacherFirstName string     `json:"teacher_first_name"`
	TeacherLastName  string     `json:"teacher_last_name"`
	TeacherFullName  string     `json:"teacher_full_name"`
	TeacherEmail     *string    `json:"teacher_email,omitempty"`
	TeacherPhone     *string    `json:"teacher_phone,omitempty"`
	TeacherSubject   *string    `json:"teacher_subject,omitempty"`
	TeacherIsActive  bool       `json:"teacher_is_active"`
	TeacherCreatedAt time.Time  `json:"teacher_created_at"`
}

func FromModelTeacher(m *model.TeacherModel) *TeacherResponse {
	return &TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherSchoolID:  m.TeacherSchoolID,
		TeacherUserID:    m.TeacherUserID,
		TeacherFirstName: m.TeacherFirstName,
		TeacherLastName:  m.TeacherLastName,
		TeacherFullName:  strings.TrimSpace(m.TeacherFirstName + " " + m.TeacherLastName),
		TeacherEmail:     m.TeacherEmail,
		TeacherPhone:     m.TeacherPhone,
		TeacherSubject:   m.TeacherSubject,
		TeacherIsActive:  m.TeacherIsActive,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}
