package models

import "github.com/google/uuid"

// PaymentMethod — сохранённый платёжный метод клиента.
//
// Инвариант коллекции Profile.PaymentMethods: в любой наблюдаемый момент
// не более одного метода с IsDefault = true. Переназначение флага —
// только целиком через account.SetDefaultPaymentMethod.
type PaymentMethod struct {
	ID        uuid.UUID
	Brand     string
	Last4     string
	ExpMonth  int
	ExpYear   int
	IsDefault bool
}

// DefaultPaymentMethod возвращает метод с IsDefault = true и признак его наличия.
func DefaultPaymentMethod(methods []PaymentMethod) (PaymentMethod, bool) {
	for _, m := range methods {
		if m.IsDefault {
			return m, true
		}
	}

	return PaymentMethod{}, false
}
