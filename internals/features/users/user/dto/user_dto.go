package dto

import (
	"time"

	"github.com/google/uuid"

	"galeri_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  *string   `json:"full_name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	HasGoogle bool      `json:"has_google"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		HasGoogle: m.GoogleID != nil && *m.GoogleID != "",
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// UpdateUserRequest: admin mengubah role / status aktif / nama
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=user editor admin"`
	IsActive *bool   `json:"is_active"`
}

// ToUpdates hanya berisi field yang dikirim
func (r UpdateUserRequest) ToUpdates() map[string]any {
	out := map[string]any{}
	if r.FullName != nil {
		out["full_name"] = *r.FullName
	}
	if r.Role != nil {
		out["role"] = *r.Role
	}
	if r.IsActive != nil {
		out["is_active"] = *r.IsActive
	}
	return out
}

type ListQuery struct {
	Q      string `query:"q"`
	Role   string `query:"role"`
	Active *bool  `query:"active"`
}
