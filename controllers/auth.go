package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/middleware"
	"github.com/physiosync/physiosync-server/models"
)

// Register handles user registration
func (h *Handler) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name            string          `json:"name"`
		Email           string          `json:"email"`
		Password        string          `json:"password"`
		ConfirmPassword string          `json:"confirmPassword"`
		Role            models.UserRole `json:"role"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if input.Role == "" {
		input.Role = models.RolePatient
	}
	if !models.ValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid account type",
		})
	}
	if len(input.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password must be at least 6 characters",
		})
	}
	if input.Password != input.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user, err := h.Svc.RegisterUser(c.Context(), models.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: string(hashedPassword),
	})
	if errors.Is(err, clinic.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	// Professional accounts cannot sign in until an admin approves them.
	if !user.IsApproved {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"user":   user.Sanitized(),
			"status": "awaiting_approval",
		})
	}

	token, refreshToken, err := issueTokens(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":         user.Sanitized(),
		"token":        token,
		"refreshToken": refreshToken,
		"initialView":  user.InitialView(),
	})
}

// Login handles user authentication
func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// The bootstrap admin pair wins unconditionally, regardless of the user
	// collection contents.
	if input.Email == AdminEmail() && input.Password == AdminPassword() {
		admin := models.User{
			ID:         models.BootstrapAdminID,
			Email:      AdminEmail(),
			Name:       "System Admin",
			Role:       models.RoleAdmin,
			IsApproved: true,
		}
		token, refreshToken, err := issueTokens(admin)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}
		return c.JSON(fiber.Map{
			"token":        token,
			"refreshToken": refreshToken,
			"user":         admin,
			"initialView":  admin.InitialView(),
		})
	}

	user, ok := h.Svc.FindUserByEmail(input.Email)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect password",
		})
	}

	if !user.IsApproved && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "Account awaiting approval",
			"status": "awaiting_approval",
		})
	}

	token, refreshToken, err := issueTokens(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}
	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user.Sanitized(),
		"initialView":  user.InitialView(),
	})
}

// GetUserProfile returns the current user's profile
func (h *Handler) GetUserProfile(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(fiber.Map{
		"user":        user.Sanitized(),
		"initialView": user.InitialView(),
	})
}

// Logout doesn't invalidate the token as JWTs are stateless.
func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return middleware.Secret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"role":  claims["role"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString(middleware.Secret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

// issueTokens mints the 24h access token and the 7d refresh token.
func issueTokens(user models.User) (string, string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.Secret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(middleware.Secret())
	if err != nil {
		return "", "", err
	}
	return tokenString, refreshTokenString, nil
}
