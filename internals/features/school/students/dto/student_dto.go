// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/school/students/model"
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

type CreateStudentRequest struct {
	StudentClassID   uuid.UUID `json:"student_class_id" validate:"required"`
	StudentSectionID uuid.UUID `json:"student_section_id" validate:"required"`

	StudentFirstName string  `json:"student_first_name" validate:"required,min=1,max=80"`
	StudentLastName  string  `json:"student_last_name" validate:"required,min=1,max=80"`
	StudentEmail     *string `json:"student_email" validate:"omitempty,email,max=255"`
	StudentGender    *string `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentDOB       *string `json:"student_dob" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) (*model.StudentModel, error) {
	m := &model.StudentModel{
		StudentSchoolID:  schoolID,
		StudentClassID:   r.StudentClassID,
		StudentSectionID: r.StudentSectionID,
		StudentFirstName: strings.TrimSpace(r.StudentFirstName),
		StudentLastName:  strings.TrimSpace(r.StudentLastName),
		StudentEmail:     trimPtr(r.StudentEmail),
		StudentGender:    trimPtr(r.StudentGender),
		StudentStatus:    "active",
	}
	if r.StudentDOB != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.StudentDOB))
		if err != nil {
			return nil, fmt.Errorf("invalid student_dob (YYYY-MM-DD)")
		}
		d := datatypes.Date(t.UTC())
		m.StudentDOB = &d
	}
	return m, nil
}

type PatchStudentRequest struct {
	StudentClassID   *uuid.UUID `json:"student_class_id"`
	StudentSectionID *uuid.UUID `json:"student_section_id"`
	StudentFirstName *string    `json:"student_first_name" validate:"omitempty,min=1,max=80"`
	StudentLastName  *string    `json:"student_last_name" validate:"omitempty,min=1,max=80"`
	StudentEmail     *string    `json:"student_email" validate:"omitempty,email,max=255"`
	StudentStatus    *string    `json:"student_status" validate:"omitempty,oneof=active inactive graduated transferred"`
}

func (r PatchStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentClassID != nil {
		m.StudentClassID = *r.StudentClassID
	}
	if r.StudentSectionID != nil {
		m.StudentSectionID = *r.StudentSectionID
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = strings.TrimSpace(*r.StudentFirstName)
	}
	if r.StudentLastName != nil {
		m.StudentLastName = strings.TrimSpace(*r.StudentLastName)
	}
	if r.StudentEmail != nil {
		m.StudentEmail = trimPtr(r.StudentEmail)
	}
	if r.StudentStatus != nil {
		m.StudentStatus = strings.TrimSpace(*r.StudentStatus)
	}
}

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentSchoolID  uuid.UUID `json:"student_school_id"`
	StudentClassID   uuid.UUID `json:"student_class_id"`
	StudentSectionID uuid.UUID `json:"student_section_id"`
	StudentFirstName string    `json:"student_first_name"`
	StudentLastName  string    `json:"student_last_name"`
	StudentFullName  string    `json:"student_full_name"`
	StudentEmail     *string   `json:"student_email,omitempty"`
	StudentGender    *string   `json:"student_gender,omitempty"`
	StudentDOB       *string   `json:"student_dob,omitempty"`
	StudentStatus    string    `json:"student_status"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromModelStudent(m *model.StudentModel) *StudentResponse {
	resp := &StudentResponse{
		StudentID:        m.StudentID,
		StudentSchoolID:  m.StudentSchoolID,
		StudentClassID:   m.StudentClassID,
		StudentSectionID: m.StudentSectionID,
		StudentFirstName: m.StudentFirstName,
		StudentLastName:  m.StudentLastName,
		StudentFullName:  strings.TrimSpace(m.StudentFirstName + " " + m.StudentLastName),
		StudentEmail:     m.StudentEmail,
		StudentGender:    m.StudentGender,
		StudentStatus:    m.StudentStatus,
		StudentCreatedAt: m.StudentCreatedAt,
	}
	if m.StudentDOB != nil {
		s := time.Time(*m.StudentDOB).Format("2006-01-02")
		resp.StudentDOB = &s
	}
	return resp
}
