package userRepo

import "planmystay/models"

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no account matches, so registration
	// can distinguish "free email" from a lookup failure.
	GetByEmail(email string) (*models.User, error)
	AddToWishlist(userID, hotelID string) error
	RemoveFromWishlist(userID, hotelID string) error
}
