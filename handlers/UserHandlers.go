package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// CreateUser registers a new account
// @Summary Register user
// @Description Create a new contractor account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.User true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/create_user [post]
func CreateUser(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		user.Email = strings.TrimSpace(strings.ToLower(user.Email))
		if user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		if len(user.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
			return
		}

		hashed, err := utils.HashPassword(user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		query := `
			INSERT INTO users (email, password, first_name, last_name, company_name, phone_no, created_at, updated_at, suspended)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), false)
			RETURNING id, created_at, updated_at`

		err = db.QueryRow(query,
			user.Email, hashed, user.FirstName, user.LastName, user.CompanyName, user.PhoneNo,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
			return
		}

		user.Password = ""
		c.JSON(http.StatusCreated, user)
	}
}

// GetUserFromSession returns the authenticated user's profile
// @Summary Get current user
// @Description Return the profile of the user owning the session
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/get_user [get]
func GetUserFromSession(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		err := db.QueryRow(`
			SELECT id, email, first_name, last_name, company_name, phone_no, created_at, updated_at, suspended
			FROM users WHERE id = $1`, userID,
		).Scan(
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.CompanyName, &user.PhoneNo, &user.CreatedAt, &user.UpdatedAt, &user.Suspended,
		)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser updates the authenticated user's profile
// @Summary Update profile
// @Description Update name, company and phone for the current account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.User true "Profile fields"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/update_user [put]
func UpdateUser(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		_, err := db.Exec(`
			UPDATE users
			SET first_name = $1, last_name = $2, company_name = $3, phone_no = $4, updated_at = NOW()
			WHERE id = $5`,
			user.FirstName, user.LastName, user.CompanyName, user.PhoneNo, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
	}
}

// ChangePasswordHandler changes the account password
// @Summary Change password
// @Description Verify the current password and set a new one
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object true "Password change" SchemaExample({"current_password": "old", "new_password": "new"})
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/change_password [post]
func ChangePasswordHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req struct {
			CurrentPassword string `json:"current_password" binding:"required"`
			NewPassword     string `json:"new_password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if len(req.NewPassword) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
			return
		}

		var currentHash string
		if err := db.QueryRow(`SELECT password FROM users WHERE id = $1`, userID).Scan(&currentHash); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if !utils.ValidatePassword(currentHash, req.CurrentPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		if _, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, newHash, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
	}
}
