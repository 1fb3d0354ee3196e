package models

import (
	"time"
)

type User struct {
	ID          int       `json:"id" example:"1"`
	Email       string    `json:"email" example:"user@example.com"`
	Password    string    `json:"password" example:""`
	FirstName   string    `json:"first_name" example:"John"`
	LastName    string    `json:"last_name" example:"Doe"`
	CompanyName string    `json:"company_name" example:"Doe Construction LLC"`
	PhoneNo     string    `json:"phone_no" example:"5551234567"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
	LastAccess  time.Time `json:"last_access,omitempty" example:"2024-01-15T10:30:00Z"`
	Suspended   bool      `json:"suspended" example:"false"`
}

type Session struct {
	UserID                int       `json:"user_id"`
	SessionID             string    `json:"session_id"`
	HostName              string    `json:"host_name"`
	IPAddress             string    `json:"ip_address"`
	Timestamp             time.Time `json:"timestp"`
	ExpiresAt             time.Time `json:"expires_at"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
}

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse carries the token pair returned on successful login.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// RefreshRequest is the request body for POST /api/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Client represents a customer an estimate can be scoped to.
type Client struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" binding:"required" example:"Smith Residence"`
	Email     string    `json:"email" example:"smith@example.com"`
	Phone     string    `json:"phone" example:"5559876543"`
	Address   string    `json:"address" example:"42 Oak Street"`
	City      string    `json:"city" example:"Portland"`
	State     string    `json:"state" example:"OR"`
	ZipCode   string    `json:"zip_code" example:"97201"`
	Notes     string    `json:"notes" example:""`
	CreatedBy int       `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
