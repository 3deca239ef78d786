package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Variant is one purchasable option of a product. The title usually
// encodes a size token and/or a diameter in free text, e.g. "Moyen (14cm)".
type Variant struct {
	ID      string   `json:"id"`
	Title   string   `json:"title" binding:"required" example:"Moyen (14cm)"`
	Price   *float64 `json:"price,omitempty" example:"24.90"`
	InStock *bool    `json:"in_stock,omitempty"`
}

// Custom slice types for JSONB columns (so we can add methods)
type (
	VariantsList []Variant
	TagsList     []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID               uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string            `json:"title" gorm:"not null;index"`
	Handle           string            `json:"handle" gorm:"not null;uniqueIndex"`
	Status           string            `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Metadata         datatypes.JSONMap `json:"metadata" gorm:"type:jsonb;not null;default:'{}'"`
	Variants         VariantsList      `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Tags             TagsList          `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	CollectionHandle *string           `json:"collection_handle,omitempty" gorm:"index"`
	Thumbnail        string            `json:"thumbnail"`
	CreatedAt        time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CheapestPrice returns the lowest variant price, or nil when no variant
// carries a price.
func (p *Product) CheapestPrice() *float64 {
	var cheapest *float64
	for i := range p.Variants {
		price := p.Variants[i].Price
		if price == nil {
			continue
		}
		if cheapest == nil || *price < *cheapest {
			cheapest = price
		}
	}
	return cheapest
}

// ═══════════════════════════════════════════════════════════
// Request Models (admin write path)
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title            string         `json:"title" binding:"required"`
	Handle           string         `json:"handle" binding:"required"`
	Status           string         `json:"status"`
	Metadata         map[string]any `json:"metadata"`
	Variants         []Variant      `json:"variants"`
	Tags             []string       `json:"tags"`
	CollectionHandle *string        `json:"collection_handle"`
	Thumbnail        string         `json:"thumbnail"`
}

// ═══════════════════════════════════════════════════════════
// Response Models (storefront, thin)
// ═══════════════════════════════════════════════════════════

type StorefrontProductResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Handle    string   `json:"handle"`
	Thumbnail string   `json:"thumbnail"`
	Price     *float64 `json:"price,omitempty"`
	Category  Category `json:"category"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// VariantsList methods
func (v *VariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantsList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantsList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]Variant{})
	}
	return json.Marshal(v)
}

// TagsList methods
func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}
