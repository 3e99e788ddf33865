// Package service contains hand-written testify mocks for the domain
// service contracts.
package service

import (
	"context"
	"testing"

	"garflex/internal/domain/entity"
	"garflex/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockIdentityVerifier mocks service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

var _ service.IdentityVerifier = (*MockIdentityVerifier)(nil)

// NewMockIdentityVerifier creates a mock bound to the test's lifecycle.
func NewMockIdentityVerifier(t *testing.T) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) VerifyToken(ctx context.Context, token string) (*entity.Principal, error) {
	args := m.Called(ctx, token)
	if principal, ok := args.Get(0).(*entity.Principal); ok {
		return principal, args.Error(1)
	}

	return nil, args.Error(1)
}
