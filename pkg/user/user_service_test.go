package user

import (
	"context"
	"testing"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[uuid.UUID]*entities.User
	deleted []uuid.UUID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	u, ok := f.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, page, limit int) ([]*entities.User, int64, error) {
	var out []*entities.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepository) DeleteUserCascade(_ context.Context, userID uuid.UUID) error {
	delete(f.users, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeUserRepository) seed(username, email, password string) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleRegular,
	}
	f.users[u.ID] = u
	return u
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	repo.seed("homecook", "cook@example.com", "secret-password")
	svc := NewUserService(repo, jwt.NewJWTService())

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleRegular, res.Role)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	repo.seed("homecook", "cook@example.com", "secret-password")
	svc := NewUserService(repo, jwt.NewJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestUpdateUserOwnerOnly(t *testing.T) {
	repo := newFakeUserRepository()
	u := repo.seed("homecook", "cook@example.com", "secret-password")
	svc := NewUserService(repo, jwt.NewJWTService())

	_, err := svc.UpdateUser(context.Background(), u.ID.String(),
		domain.UpdateUserRequest{Username: "hijack"}, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := svc.UpdateUser(context.Background(), u.ID.String(),
		domain.UpdateUserRequest{Username: "bettercook"}, auth.Regular(u.ID))
	require.NoError(t, err)
	assert.Equal(t, "bettercook", res.Username)
}

func TestUpdateUserEmailChangeResetsVerification(t *testing.T) {
	repo := newFakeUserRepository()
	u := repo.seed("homecook", "cook@example.com", "secret-password")
	u.EmailVerified = true
	svc := NewUserService(repo, jwt.NewJWTService())

	res, err := svc.UpdateUser(context.Background(), u.ID.String(),
		domain.UpdateUserRequest{Email: "new@example.com"}, auth.Regular(u.ID))
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)
	assert.False(t, res.EmailVerified)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	repo.seed("first", "first@example.com", "secret-password")
	second := repo.seed("second", "second@example.com", "secret-password")
	svc := NewUserService(repo, jwt.NewJWTService())

	_, err := svc.UpdateUser(context.Background(), second.ID.String(),
		domain.UpdateUserRequest{Email: "first@example.com"}, auth.Regular(second.ID))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepository()
	u := repo.seed("homecook", "cook@example.com", "secret-password")
	svc := NewUserService(repo, jwt.NewJWTService())

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), u.ID.String(), auth.Regular(uuid.New())), domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), u.ID.String(), auth.Anonymous()), domain.ErrUnauthorized)

	require.NoError(t, svc.DeleteUser(context.Background(), u.ID.String(), auth.Moderator(uuid.New())))
	assert.Equal(t, []uuid.UUID{u.ID}, repo.deleted)
}
