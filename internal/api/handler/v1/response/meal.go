package response

import "github.com/Edu-space-IDC/restaurante-sub000/internal/domain"

// DuplicateRegistration explains a rejected check-in, including the record
// that already exists so the UI can say when and where.
type DuplicateRegistration struct {
	Error    string            `json:"error"`
	Existing domain.MealRecord `json:"existing"`
}
