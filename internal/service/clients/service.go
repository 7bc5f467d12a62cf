package clients

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients/models"
)

var nationalIDRe = regexp.MustCompile(domain.NationalIDPattern)

// Service сервис регистрации клиентов трассы
type Service struct {
	client BackendClient
	now    func() time.Time
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(client BackendClient, now func() time.Time, logger Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		client: client,
		now:    now,
		logger: logger,
	}
}

// Register проверяет данные клиента и регистрирует его в бэкенде
func (s *Service) Register(ctx context.Context, req *models.RegisterClientRequest) (*models.ClientResponse, error) {
	normalized := &models.RegisterClientRequest{
		NationalID: strings.TrimSpace(req.NationalID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		BirthDate:  strings.TrimSpace(req.BirthDate),
	}

	if err := s.validate(normalized); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Register: registering client rut=%s", normalized.NationalID)

	created, err := s.client.RegisterClient(ctx, normalized.ToRecord())
	if err != nil {
		if ve, ok := kartingbackend.AsValidationError(err); ok {
			s.logger.Warn("Register: backend rejected rut=%s: %s", normalized.NationalID, ve.Message)
			return nil, fmt.Errorf("%w: %s", ErrBackendRejected, ve.Message)
		}
		if errors.Is(err, kartingbackend.ErrUnavailable) {
			s.logger.Error("Register: backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("Register: backend error: %v", err)
		return nil, fmt.Errorf("%w: Register - backend error: %v", ErrInternal, err)
	}

	resp := models.FromRecord(created)
	// Бэкенд может вернуть пустое тело
	if resp == nil || resp.NationalID == "" {
		resp = &models.ClientResponse{
			NationalID: normalized.NationalID,
			Name:       normalized.Name,
			Email:      normalized.Email,
			BirthDate:  normalized.BirthDate,
		}
		if created != nil {
			resp.ID = created.ID
		}
	}

	s.logger.Info("Register: client rut=%s registered, id=%d", resp.NationalID, resp.ID)
	return resp, nil
}

func (s *Service) validate(req *models.RegisterClientRequest) error {
	fields := map[string]string{}

	if !nationalIDRe.MatchString(req.NationalID) {
		fields["nationalId"] = "must match 12345678-9"
	}

	if req.Name == "" {
		fields["name"] = "is required"
	}

	if req.Email == "" {
		fields["email"] = "is required"
	} else if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		fields["email"] = "must be a valid address"
	}

	if req.BirthDate == "" {
		fields["birthDate"] = "is required"
	} else if birth, err := time.Parse(domain.DateFormat, req.BirthDate); err != nil {
		fields["birthDate"] = "must be YYYY-MM-DD"
	} else if birth.After(s.now()) {
		fields["birthDate"] = "must not be in the future"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
