package models

import (
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// RegisterClientRequest запрос на регистрацию клиента
type RegisterClientRequest struct {
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"` // "1990-04-21"
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID         int64  `json:"id"`
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
}

// ToRecord конвертирует запрос в модель бэкенда
func (r *RegisterClientRequest) ToRecord() *kartingbackend.ClientRecord {
	return &kartingbackend.ClientRecord{
		Rut:       r.NationalID,
		Name:      r.Name,
		Email:     r.Email,
		BirthDate: r.BirthDate,
	}
}

// FromRecord конвертирует модель бэкенда в DTO
func FromRecord(c *kartingbackend.ClientRecord) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:         c.ID,
		NationalID: c.Rut,
		Name:       c.Name,
		Email:      c.Email,
		BirthDate:  c.BirthDate,
	}
}
