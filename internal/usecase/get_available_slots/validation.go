package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.SessionProduct, error) {
	if req.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Hour != nil && (*req.Hour < 0 || *req.Hour > 23) {
		return 0, fmt.Errorf("%w: hour must be in 0..23", ErrInvalidInput)
	}

	product, err := domain.ParseSessionProduct(req.SessionProduct)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSessionProduct, err)
	}

	return product, nil
}
