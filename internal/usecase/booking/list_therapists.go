package booking

import (
	"context"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

type ListTherapists struct {
	repo domain.Repository
}

func NewListTherapists(repo domain.Repository) *ListTherapists {
	return &ListTherapists{repo: repo}
}

// Execute lists the therapists a user can book: approved, active,
// ordered by name. An empty result is a valid empty directory, not an
// error.
func (uc *ListTherapists) Execute(
	ctx context.Context,
	search string,
) ([]models.Therapist, error) {

	therapists, err := uc.repo.ListApprovedTherapists(ctx, search)
	if err != nil {
		return nil, err
	}

	if therapists == nil {
		therapists = []models.Therapist{}
	}
	return therapists, nil
}
