// Package model contains the bson persistence models mirroring the stored
// documents, kept separate from the pure domain entities.
package model

import (
	"time"

	"garflex/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AccountModel mirrors one document of the 'accounts' collection. The email
// carries a unique index; omitted optional fields are absent from the
// document rather than stored as null.
type AccountModel struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Email         string        `bson:"email"`
	Name          string        `bson:"name,omitempty"`
	PhotoURL      string        `bson:"photo_url,omitempty"`
	Role          string        `bson:"role"`
	Status        string        `bson:"status"`
	SuspendReason *string       `bson:"suspend_reason,omitempty"`
	CreatedAt     time.Time     `bson:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at"`
	LastLoginAt   time.Time     `bson:"last_login_at"`
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:            m.ID.Hex(),
		Email:         m.Email,
		Name:          m.Name,
		PhotoURL:      m.PhotoURL,
		Role:          entity.Role(m.Role),
		Status:        entity.AccountStatus(m.Status),
		SuspendReason: m.SuspendReason,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		LastLoginAt:   m.LastLoginAt,
	}
}

// AccountFromDomain maps a domain entity onto the persistence model. A blank
// entity ID leaves the ObjectID zero so the driver assigns one on insert.
func AccountFromDomain(account *entity.Account) (*AccountModel, error) {
	m := &AccountModel{
		Email:         account.Email,
		Name:          account.Name,
		PhotoURL:      account.PhotoURL,
		Role:          account.Role.String(),
		Status:        account.Status.String(),
		SuspendReason: account.SuspendReason,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
		LastLoginAt:   account.LastLoginAt,
	}

	if account.ID != "" {
		id, err := bson.ObjectIDFromHex(account.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}
