package select_services

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInternal)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInternal)
	}

	if len(req.ServiceIDs) == 0 {
		return ErrNoServicesSelected
	}

	return nil
}
