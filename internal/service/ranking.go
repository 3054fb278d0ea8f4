package service

import (
	"context"
	"sort"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type rankingService struct {
	parts repository.ParticipantRepository
}

func NewRankingService(participantRepo repository.ParticipantRepository) RankingService {
	return &rankingService{parts: participantRepo}
}

func (s *rankingService) TopLenders(ctx context.Context, limit int) ([]domain.Participant, error) {
	return s.top(ctx, limit, func(p domain.Participant) int64 { return p.BooksLent })
}

func (s *rankingService) TopBorrowers(ctx context.Context, limit int) ([]domain.Participant, error) {
	return s.top(ctx, limit, func(p domain.Participant) int64 { return p.BooksBorrowed })
}

// top orders the roster by descending count. The sort is stable over the
// roster, so participants with equal counts keep registration order.
func (s *rankingService) top(ctx context.Context, limit int, count func(domain.Participant) int64) ([]domain.Participant, error) {
	roster, err := s.parts.ListRegistered(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || len(roster) == 0 {
		return []domain.Participant{}, nil
	}

	ranked := make([]domain.Participant, len(roster))
	copy(ranked, roster)
	sort.SliceStable(ranked, func(i, j int) bool {
		return count(ranked[i]) > count(ranked[j])
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit], nil
}
