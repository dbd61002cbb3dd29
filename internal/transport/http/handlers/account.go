package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/account"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/internal/transport/http/httperr"
)

// Views для фронта.

type paymentMethodView struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Last4     string    `json:"last4"`
	ExpMonth  int       `json:"exp_month"`
	ExpYear   int       `json:"exp_year"`
	IsDefault bool      `json:"is_default"`
}

type profileView struct {
	ID             uuid.UUID           `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	DisplayName    string              `json:"display_name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Bio            string              `json:"bio"`
	PhotoURL       string              `json:"photo_url,omitempty"`
	PaymentMethods []paymentMethodView `json:"payment_methods"`
}

// draftView — редактируемые поля черновика.
type draftView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
}

// accountView — снапшот + режим сессии; черновик присутствует в editing/saving.
type accountView struct {
	Profile        profileView `json:"profile"`
	Mode           string      `json:"mode"`
	UploadInFlight bool        `json:"upload_in_flight"`
	Draft          *draftView  `json:"draft,omitempty"`
}

func toProfileView(p models.Profile) profileView {
	methods := make([]paymentMethodView, len(p.PaymentMethods))
	for i, m := range p.PaymentMethods {
		methods[i] = paymentMethodView{
			ID:        m.ID,
			Brand:     m.Brand,
			Last4:     m.Last4,
			ExpMonth:  m.ExpMonth,
			ExpYear:   m.ExpYear,
			IsDefault: m.IsDefault,
		}
	}

	return profileView{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DisplayName:    p.DisplayName(),
		Email:          p.Email,
		Phone:          p.Phone,
		Bio:            p.Bio,
		PhotoURL:       p.PhotoURL,
		PaymentMethods: methods,
	}
}

func toAccountView(a *account.Account) accountView {
	view := accountView{
		Profile:        toProfileView(a.Store().Snapshot()),
		Mode:           string(a.Mode()),
		UploadInFlight: a.UploadInFlight(),
	}

	if draft, ok := a.Draft(); ok {
		view.Draft = &draftView{
			FirstName: draft.FirstName,
			LastName:  draft.LastName,
			Email:     draft.Email,
			Phone:     draft.Phone,
			Bio:       draft.Bio,
		}
	}

	return view
}

// GetAccount отдаёт текущее состояние аккаунта сессии.
func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// BeginEdit открывает сессию редактирования.
func (h *Handlers) BeginEdit(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	if err := a.BeginEdit(); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

type updateDraftRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
}

// UpdateDraft применяет изменения полей к черновику.
func (h *Handlers) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	var in updateDraftRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	err := a.UpdateDraft(account.DraftUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Bio:       in.Bio,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// SaveEdit коммитит черновик.
func (h *Handlers) SaveEdit(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	if err := a.Save(r.Context()); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// CancelEdit отбрасывает черновик.
func (h *Handlers) CancelEdit(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	if err := a.Cancel(); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

type addPaymentMethodRequest struct {
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"exp_month"`
	ExpYear   int    `json:"exp_year"`
	IsDefault bool   `json:"is_default"`
}

// AddPaymentMethod добавляет платёжный метод.
func (h *Handlers) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	var in addPaymentMethodRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	if in.Brand == "" || len(in.Last4) != 4 {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	err := a.AddPaymentMethod(r.Context(), models.PaymentMethod{
		Brand:     in.Brand,
		Last4:     in.Last4,
		ExpMonth:  in.ExpMonth,
		ExpYear:   in.ExpYear,
		IsDefault: in.IsDefault,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// RemovePaymentMethod удаляет платёжный метод по id.
func (h *Handlers) RemovePaymentMethod(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	if err := a.RemovePaymentMethod(r.Context(), id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// SetDefaultPaymentMethod переназначает default-метод.
func (h *Handlers) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	if err := a.SetDefaultPaymentMethod(r.Context(), id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// UploadPhoto принимает multipart-форму с полем "photo" и загружает фото профиля.
func (h *Handlers) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	a, _, ok := h.acc(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, header, err := r.FormFile("photo")
	if err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	photo := gateway.Photo{
		Content:     content,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Filename:    header.Filename,
	}

	if err := a.UploadPhoto(r.Context(), photo); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountView(a))
}

// Logout завершает сессию на платформе и вытесняет аккаунт из реестра.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	a, sess, ok := h.acc(w, r)
	if !ok {
		return
	}

	if err := a.Logout(r.Context()); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.Registry.Evict(sess.Token)

	w.WriteHeader(http.StatusNoContent)
}
