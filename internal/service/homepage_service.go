package service

import (
	"context"

	"github.com/amberoven/bakehouse-backend/internal/repository"
	"github.com/rs/zerolog"
)

// HomepageService manages the keyed homepage content blocks.
type HomepageService struct {
	homepageRepo *repository.HomepageRepository
	log          zerolog.Logger
}

// NewHomepageService creates a new HomepageService.
func NewHomepageService(homepageRepo *repository.HomepageRepository, log zerolog.Logger) *HomepageService {
	return &HomepageService{
		homepageRepo: homepageRepo,
		log:          log.With().Str("component", "homepage_service").Logger(),
	}
}

// GetSections returns all homepage content blocks as a key → value map.
func (s *HomepageService) GetSections(ctx context.Context) (map[string]string, error) {
	sections, err := s.homepageRepo.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "homepage_get").Msg("failed to load homepage sections")
		return nil, err
	}

	out := make(map[string]string, len(sections))
	for _, section := range sections {
		out[section.Key] = section.Value
	}
	return out, nil
}

// UpdateSections upserts the given blocks.
// Iterative upserts are fine at this volume; a single tx is not warranted.
func (s *HomepageService) UpdateSections(ctx context.Context, sections map[string]string) error {
	for key, value := range sections {
		if err := s.homepageRepo.Upsert(ctx, key, value); err != nil {
			s.log.Error().Err(err).Str("op", "homepage_upsert").Str("key", key).Msg("failed to update section")
			return err
		}
	}
	return nil
}
