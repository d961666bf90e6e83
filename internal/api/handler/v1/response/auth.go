package response

import "github.com/Edu-space-IDC/restaurante-sub000/internal/domain"

type LoginResponse struct {
	Token   string         `json:"token"`
	Teacher domain.Teacher `json:"teacher"`
}
