package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login success"
	MessageSuccessGetUser     = "success get user"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessUpdateUser  = "user updated successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"
	MessageSuccessSendVerify  = "verification email sent"
	MessageSuccessVerifyEmail = "email verified successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetUser     = "failed to get user"
	MessageFailedGetUsers    = "failed to get users"
	MessageFailedUpdateUser  = "failed to update user"
	MessageFailedDeleteUser  = "failed to delete user"
	MessageFailedSendVerify  = "failed to send verification email"
	MessageFailedVerifyEmail = "failed to verify email"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
)

type (
	RegisterUserRequest struct {
		Username string `json:"username" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterUserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Links    Links  `json:"_links,omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Username string `json:"username" validate:"omitempty,min=3,max=100"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"omitempty,min=8"`
	}

	UserResponse struct {
		ID            string    `json:"id"`
		Username      string    `json:"username"`
		Email         string    `json:"email"`
		Role          string    `json:"role"`
		EmailVerified bool      `json:"email_verified"`
		CreatedAt     time.Time `json:"created_at"`
		Links         Links     `json:"_links,omitempty"`
	}

	UserListResponse struct {
		Users      []UserResponse `json:"users"`
		Pagination Pagination     `json:"pagination"`
		Links      Links          `json:"_links,omitempty"`
	}
)
