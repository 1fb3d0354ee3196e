package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomMaterialGorm represents the custom_materials table with GORM tags.
// Rows are the per-account price overrides consulted by the price resolver
// when the pricing mode is "custom". Uniqueness is by (lower(name), category)
// among non-archived rows; when duplicates exist the newest row wins.
type CustomMaterialGorm struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID    int            `gorm:"column:user_id;not null;index" json:"user_id"`
	Trade     string         `gorm:"column:trade;not null;index" json:"trade"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Category  string         `gorm:"column:category" json:"category"`
	Price     float64        `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	UnitSpec  string         `gorm:"column:unit_spec" json:"unit_spec"`
	Archived  bool           `gorm:"column:archived;default:false" json:"archived"`
	CreatedAt time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CustomMaterialGorm
func (CustomMaterialGorm) TableName() string {
	return "custom_materials"
}

// CustomMaterial represents a material override for API requests/responses.
type CustomMaterial struct {
	ID       uint    `json:"id,omitempty" example:"1"`
	Trade    string  `json:"trade" binding:"required" example:"fencing"`
	Name     string  `json:"name" binding:"required" example:"Wood Post"`
	Category string  `json:"category" example:"posts"`
	Price    float64 `json:"price" example:"19.99"`
	UnitSpec string  `json:"unit_spec,omitempty" example:"100 sq ft"`
	Archived bool    `json:"archived"`
}

// MaterialResponse represents the response for material operations
type MaterialResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Success"`
	Data    *CustomMaterial `json:"data,omitempty"`
	Error   string          `json:"error,omitempty" example:""`
}

// MaterialListResponse represents the response for material list operations
type MaterialListResponse struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"Success"`
	Data    []CustomMaterial `json:"data,omitempty"`
	Error   string           `json:"error,omitempty" example:""`
}
