package user

import (
	"time"

	userRepo "planmystay/database/repository/user"
	"planmystay/models"
	"planmystay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	bcryptCost        = 12

	registerTokenTTL = 30 * time.Minute
	loginTokenTTL    = 30 * time.Hour
)

// AuthResult carries a freshly issued token and the account it belongs to.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages accounts, authentication, and wishlists.
type UserService interface {
	Register(name, email, password string, role models.Role) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.User, error)
	AddToWishlist(userID, hotelID string) error
	RemoveFromWishlist(userID, hotelID string) error
	GetWishlist(userID string) ([]string, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and issues a short-lived token.
func (s *DefaultUserService) Register(name, email, password string, role models.Role) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, models.ErrInvalidCreds
	}
	if len(password) < minPasswordLength {
		return nil, models.ErrInvalidCreds
	}
	if role == "" {
		role = models.RoleCustomer
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, registerTokenTTL)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered",
		zap.String("userID", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Failures are reported with a
// single generic error so callers cannot probe which part was wrong.
func (s *DefaultUserService) Login(email, password string) (*AuthResult, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCreds
	}

	token, err := utils.GenerateToken(user.ID, loginTokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// GetByID returns one account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// AddToWishlist saves a hotel on the user's wishlist.
func (s *DefaultUserService) AddToWishlist(userID, hotelID string) error {
	return s.Repo.AddToWishlist(userID, hotelID)
}

// RemoveFromWishlist removes a hotel from the user's wishlist.
func (s *DefaultUserService) RemoveFromWishlist(userID, hotelID string) error {
	return s.Repo.RemoveFromWishlist(userID, hotelID)
}

// GetWishlist returns the hotel IDs on the user's wishlist.
func (s *DefaultUserService) GetWishlist(userID string) ([]string, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}
