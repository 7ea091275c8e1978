package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/internal/utils"
	"cookbook-backend/internal/utils/mailing"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/hypermedia"
	"cookbook-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		GetUser(ctx context.Context, id string, viewer auth.Identity) (domain.UserResponse, error)
		GetUsers(ctx context.Context, page, limit int, viewer auth.Identity) (domain.UserListResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest, actor auth.Identity) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string, actor auth.Identity) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterUserResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterUserResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterUserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterUserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterUserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		Role:     domain.RoleRegular,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// The store's uniqueness index is the final arbiter under races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterUserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.RegisterUserResponse{}, err
	}

	if err := s.sendVerificationMail(user); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	return domain.RegisterUserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Links:    hypermedia.UserLinks(user, auth.Regular(user.ID)),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerificationMail(user)
}

func (s *userService) sendVerificationMail(user *entities.User) error {
	token, err := s.jwtService.GenerateTokenEmailVerify(map[string]any{
		"user_id": user.ID.String(),
	}, time.Hour*24)
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your cookbook account by clicking <a href=%q>here</a>.</p>",
		user.Username, verifyURL,
	)
	return mailing.SendMail(user.Email, "Verify your cookbook account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenEmailVerify(token)
	if err != nil {
		return err
	}

	id, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.EmailVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string, viewer auth.Identity) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user, viewer), nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int, viewer auth.Identity) (domain.UserListResponse, error) {
	page, limit = domain.NormalizePagination(page, limit)

	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return domain.UserListResponse{}, err
	}

	res := domain.UserListResponse{
		Users:      make([]domain.UserResponse, 0, len(users)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, u := range users {
		res.Users = append(res.Users, toUserResponse(u, viewer))
	}
	return res, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest, actor auth.Identity) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if err := actor.RequireModify(user.ID); err != nil {
		return domain.UserResponse{}, err
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Email = req.Email
		user.EmailVerified = false
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Username = req.Username
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user, actor), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string, actor auth.Identity) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := actor.RequireModify(user.ID); err != nil {
		return err
	}

	return s.userRepository.DeleteUserCascade(ctx, user.ID)
}

func toUserResponse(user *entities.User, viewer auth.Identity) domain.UserResponse {
	return domain.UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		Links:         hypermedia.UserLinks(user, viewer),
	}
}
