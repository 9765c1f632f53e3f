package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/MathavanSG/FitnessTrackerAPI/internal/models"
	"github.com/MathavanSG/FitnessTrackerAPI/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	userRepo        userStore
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthHandler(
	userRepo userStore,
	jwtSecret string,
	accessTokenTTL time.Duration,
	refreshTokenTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		userRepo:        userRepo,
		jwtSecret:       jwtSecret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,max=25"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Hello greets an authenticated caller. The access-token check happens in the
// middleware, so reaching this handler is the success case.
func (h *AuthHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, Bodybuilder!"})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateBody(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Email is checked before username so a request duplicating both reports
	// the email conflict.
	if _, err := h.userRepo.GetByEmail(c.Context(), req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "User with the email already exists"})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to check email"})
	}

	if _, err := h.userRepo.GetByUsername(c.Context(), req.Username); err == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "User with the username already exists"})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to check username"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: &hashed,
	}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "User with the username or email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateBody(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to lookup user"})
	}

	if user.HashedPassword == nil || !utils.CheckPassword(req.Password, *user.HashedPassword) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid username or password"})
	}

	access, err := utils.GenerateToken(user.Username, utils.TokenTypeAccess, h.jwtSecret, h.accessTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}
	refresh, err := utils.GenerateToken(user.Username, utils.TokenTypeRefresh, h.jwtSecret, h.refreshTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"access":  access,
		"refresh": refresh,
	})
}

// Refresh issues a fresh access token for the subject of a valid refresh
// token. RefreshRequired middleware has already verified the token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Please provide a valid refresh token"})
	}

	access, err := utils.GenerateToken(username, utils.TokenTypeAccess, h.jwtSecret, h.accessTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{"access": access})
}
