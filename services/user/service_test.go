package user

import (
	"sync"
	"testing"

	"planmystay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return models.ErrEmailTaken
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) AddToWishlist(userID, hotelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	for _, id := range u.Wishlist {
		if id == hotelID {
			return nil
		}
	}
	u.Wishlist = append(u.Wishlist, hotelID)
	return nil
}

func (f *fakeUserRepo) RemoveFromWishlist(userID, hotelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	kept := u.Wishlist[:0]
	for _, id := range u.Wishlist {
		if id != hotelID {
			kept = append(kept, id)
		}
	}
	u.Wishlist = kept
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register("Alice", "alice@example.com", "sup3rsecret", models.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
	assert.NotEqual(t, "sup3rsecret", result.User.PasswordHash)

	login, err := svc.Login("alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegister_DefaultsToCustomer(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register("Bob", "bob@example.com", "password1", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register("Bob", "bob@example.com", "short", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrInvalidCreds)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register("Alice", "alice@example.com", "sup3rsecret", models.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Register("Impostor", "alice@example.com", "different1", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register("Alice", "alice@example.com", "sup3rsecret", models.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, models.ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Login("nobody@example.com", "whatever1")
	assert.ErrorIs(t, err, models.ErrInvalidCreds)
}

func TestWishlist(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register("Alice", "alice@example.com", "sup3rsecret", models.RoleCustomer)
	require.NoError(t, err)
	userID := result.User.ID

	require.NoError(t, svc.AddToWishlist(userID, "h1"))
	require.NoError(t, svc.AddToWishlist(userID, "h2"))
	// Duplicate adds are absorbed.
	require.NoError(t, svc.AddToWishlist(userID, "h1"))

	wishlist, err := svc.GetWishlist(userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, wishlist)

	require.NoError(t, svc.RemoveFromWishlist(userID, "h1"))
	wishlist, err = svc.GetWishlist(userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"h2"}, wishlist)
}
