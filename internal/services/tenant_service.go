package services

import (
	"context"

	"Stashed/internal/models"
	"Stashed/internal/repository"
)

// TenantService resolves opaque identity-provider subjects to tenant rows.
// The subject is trusted as-is; credential checks happen upstream.
type TenantService interface {
	EnsureProfile(ctx context.Context, subject string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, ownerID uint) error
}

type tenantServiceImpl struct {
	profileRepo repository.ProfileRepository
}

func NewTenantService(profileRepo repository.ProfileRepository) TenantService {
	return &tenantServiceImpl{profileRepo: profileRepo}
}

func (s *tenantServiceImpl) EnsureProfile(ctx context.Context, subject string) (*models.Profile, error) {
	return s.profileRepo.FindOrCreateBySubject(ctx, subject)
}

// DeleteProfile mirrors account deletion at the identity provider: the
// profile and everything it owns is removed. Blob cleanup stays with the
// blob store's own retention tooling.
func (s *tenantServiceImpl) DeleteProfile(ctx context.Context, ownerID uint) error {
	return asNotFound(s.profileRepo.DeleteCascade(ctx, ownerID), "profile")
}
