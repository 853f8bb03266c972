package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionProfile = "profiles"

type profileRepository struct {
	client *firestore.Client
}

var _ interfaces.ProfileRepository = (*profileRepository)(nil)

// New creates a Firestore-based profile repository
func New(ctx context.Context, projectID, databaseID string) (interfaces.ProfileRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &profileRepository{
		client: client,
	}, nil
}

func (r *profileRepository) Get(ctx context.Context, identity types.Identity) (*model.Profile, error) {
	if identity == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "identity is empty")
	}

	doc, err := r.client.Collection(collectionProfile).Doc(string(identity)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "profile not found",
				goerr.V("identity", identity),
			)
		}
		return nil, goerr.Wrap(err, "failed to get profile",
			goerr.V("identity", identity),
		)
	}

	var profile model.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile",
			goerr.V("identity", identity),
		)
	}

	return &profile, nil
}

func (r *profileRepository) Put(ctx context.Context, profile *model.Profile) error {
	if profile == nil || profile.Identity == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "profile identity is empty")
	}

	if _, err := r.client.Collection(collectionProfile).Doc(string(profile.Identity)).Set(ctx, profile); err != nil {
		return goerr.Wrap(err, "failed to put profile",
			goerr.V("identity", profile.Identity),
		)
	}

	return nil
}
