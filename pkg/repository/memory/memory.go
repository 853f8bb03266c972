package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[types.Identity]*model.Profile
}

// New creates a new in-memory profile repository
func New() interfaces.ProfileRepository {
	return &profileRepository{
		profiles: make(map[types.Identity]*model.Profile),
	}
}

func (r *profileRepository) Get(ctx context.Context, identity types.Identity) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[identity]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "profile not found",
			goerr.V("identity", identity),
		)
	}

	return copyProfile(profile), nil
}

func (r *profileRepository) Put(ctx context.Context, profile *model.Profile) error {
	if profile == nil || profile.Identity == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "profile identity is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.Identity] = copyProfile(profile)

	return nil
}

func copyProfile(profile *model.Profile) *model.Profile {
	if profile == nil {
		return nil
	}
	cpy := *profile
	return &cpy
}
