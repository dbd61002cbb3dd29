package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
)

// Wire-модели core API.
type profileDTO struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Bio            string             `json:"bio"`
	PhotoURL       string             `json:"photo_url"`
	PaymentMethods []paymentMethodDTO `json:"payment_methods"`
}

type paymentMethodDTO struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Last4     string    `json:"last4"`
	ExpMonth  int       `json:"exp_month"`
	ExpYear   int       `json:"exp_year"`
	IsDefault bool      `json:"is_default"`
}

// profileUpdateDTO — частичный апдейт: сериализуются только заданные поля.
type profileUpdateDTO struct {
	Name           *string             `json:"name,omitempty"`
	Email          *string             `json:"email,omitempty"`
	Phone          *string             `json:"phone,omitempty"`
	Bio            *string             `json:"bio,omitempty"`
	PhotoURL       *string             `json:"photo_url,omitempty"`
	PaymentMethods *[]paymentMethodDTO `json:"payment_methods,omitempty"`
}

// Profile возвращает профиль владельца сессии: GET /v1/profile.
func (c *Client) Profile(ctx context.Context, sess gateway.Session) (*gateway.RemoteProfile, error) {
	const op = "gateway/httpapi/Profile"

	var dto profileDTO
	if err := c.do(ctx, sess, http.MethodGet, "/v1/profile", "", nil, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &gateway.RemoteProfile{
		ID:             dto.ID,
		Name:           dto.Name,
		Email:          dto.Email,
		Phone:          dto.Phone,
		Bio:            dto.Bio,
		PhotoURL:       dto.PhotoURL,
		PaymentMethods: paymentMethodsFromDTO(dto.PaymentMethods),
	}, nil
}

// UpdateProfile выполняет частичный апдейт: PATCH /v1/profile.
// В тело попадают только поля, заданные в update.
func (c *Client) UpdateProfile(ctx context.Context, sess gateway.Session, update gateway.ProfileUpdate) error {
	const op = "gateway/httpapi/UpdateProfile"

	if update.Empty() {
		return nil
	}

	dto := profileUpdateDTO{
		Name:     update.Name,
		Email:    update.Email,
		Phone:    update.Phone,
		Bio:      update.Bio,
		PhotoURL: update.PhotoURL,
	}

	if update.PaymentMethods != nil {
		methods := paymentMethodsToDTO(*update.PaymentMethods)
		dto.PaymentMethods = &methods
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	if err := c.do(ctx, sess, http.MethodPatch, "/v1/profile", "application/json", bytes.NewReader(body), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Logout завершает сессию: POST /v1/auth/logout.
func (c *Client) Logout(ctx context.Context, sess gateway.Session) error {
	const op = "gateway/httpapi/Logout"

	if err := c.do(ctx, sess, http.MethodPost, "/v1/auth/logout", "", nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func paymentMethodsFromDTO(in []paymentMethodDTO) []models.PaymentMethod {
	if in == nil {
		return nil
	}

	out := make([]models.PaymentMethod, len(in))
	for i, m := range in {
		out[i] = models.PaymentMethod{
			ID:        m.ID,
			Brand:     m.Brand,
			Last4:     m.Last4,
			ExpMonth:  m.ExpMonth,
			ExpYear:   m.ExpYear,
			IsDefault: m.IsDefault,
		}
	}

	return out
}

func paymentMethodsToDTO(in []models.PaymentMethod) []paymentMethodDTO {
	out := make([]paymentMethodDTO, len(in))
	for i, m := range in {
		out[i] = paymentMethodDTO{
			ID:        m.ID,
			Brand:     m.Brand,
			Last4:     m.Last4,
			ExpMonth:  m.ExpMonth,
			ExpYear:   m.ExpYear,
			IsDefault: m.IsDefault,
		}
	}

	return out
}
