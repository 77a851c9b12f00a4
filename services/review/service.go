package review

import (
	"errors"

	bookingRepo "planmystay/database/repository/booking"
	reviewRepo "planmystay/database/repository/review"
	"planmystay/models"
	"planmystay/services/booking"

	"github.com/google/uuid"
)

// ErrNoCompletedStay gates review submission: only guests who have finished a
// stay at the hotel may review it.
var ErrNoCompletedStay = errors.New("you can only review hotels you have stayed in")

// ReviewService manages hotel reviews.
type ReviewService interface {
	AddReview(customerID, hotelID string, rating int, comment string) (*models.Review, error)
	ListHotelReviews(hotelID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	Clock       booking.Clock
}

// AddReview records a rating for a hotel the customer has stayed in.
func (s *DefaultReviewService) AddReview(customerID, hotelID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	clock := s.Clock
	if clock == nil {
		clock = booking.SystemClock{}
	}
	stayed, err := s.BookingRepo.HasCompletedStay(customerID, hotelID, clock.Today())
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, ErrNoCompletedStay
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		HotelID:    hotelID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListHotelReviews returns all reviews for a hotel.
func (s *DefaultReviewService) ListHotelReviews(hotelID string) ([]models.Review, error) {
	return s.Repo.ListByHotel(hotelID)
}
