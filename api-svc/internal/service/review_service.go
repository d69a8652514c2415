package service

import "fooddash/api-svc/internal/domain"

type ReviewService struct {
	repo   ReviewRepository
	events EventSink
}

func NewReviewService(repo ReviewRepository, events EventSink) *ReviewService {
	return &ReviewService{repo: repo, events: events}
}

// Submit upserts the rating for an order. Rating range and order existence
// are deliberately unvalidated here; database constraints are the only
// backstop.
func (s *ReviewService) Submit(orderID, rating int) error {
	if err := s.repo.UpsertRating(orderID, rating); err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(domain.EventMessage{
			Type:    domain.EventRatingSubmitted,
			OrderID: orderID,
			Rating:  rating,
		})
	}

	return nil
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
