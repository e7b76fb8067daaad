package dto

import studentModel "classmanager_backend/internals/features/users/students/model"

// StudentResponse: baris direktori siswa untuk guru.
type StudentResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UserID    *uint  `json:"user_id,omitempty"`
}

func NewStudentResponse(m studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		UserID:    m.UserID,
	}
}
