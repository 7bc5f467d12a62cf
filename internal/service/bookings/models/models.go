package models

import (
	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

// Response модели

// ParticipantResponse участник бронирования
type ParticipantResponse struct {
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64                 `json:"id"`
	BookingDate      string                `json:"bookingDate"` // "2025-06-10"
	StartTime        string                `json:"startTime"`   // "15:00"
	EndTime          string                `json:"endTime"`     // "15:30"
	SessionProduct   int                   `json:"sessionProduct"`
	NumOfPeople      int                   `json:"numOfPeople"`
	HolderNationalID string                `json:"holderNationalId"`
	HolderName       string                `json:"holderName"`
	Participants     []ParticipantResponse `json:"participants"`
	Status           string                `json:"status"`
	TotalAmount      float64               `json:"totalAmount"`
	CanBeConfirmed   bool                  `json:"canBeConfirmed"`
	CanBeCancelled   bool                  `json:"canBeCancelled"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ConfirmResponse ответ на подтверждение бронирования
type ConfirmResponse struct {
	Booking     BookingResponse `json:"booking"`
	VoucherSent bool            `json:"voucherSent"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	participants := make([]ParticipantResponse, len(b.Participants))
	for i, p := range b.Participants {
		participants[i] = ParticipantResponse{
			NationalID: p.NationalID,
			Name:       p.Name,
			Email:      p.Email,
		}
	}

	return &BookingResponse{
		ID:               b.ID,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		EndTime:          b.EndTime.String(),
		SessionProduct:   int(b.SessionProduct),
		NumOfPeople:      b.NumOfPeople,
		HolderNationalID: b.HolderNationalID,
		HolderName:       b.HolderName(),
		Participants:     participants,
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount,
		CanBeConfirmed:   b.CanBeConfirmed(),
		CanBeCancelled:   b.CanBeCancelled(),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
