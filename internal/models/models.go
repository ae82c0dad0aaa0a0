package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSON-encoded text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(v any) error {
	switch s := v.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(s), l)
	case []byte:
		return json.Unmarshal(s, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", v)
	}
}

// VariantMap is a flat attribute -> chosen value mapping, e.g.
// {"color": "Red", "size": "M"}. Stored as a JSON-encoded text column.
type VariantMap map[string]string

func (m VariantMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *VariantMap) Scan(v any) error {
	switch s := v.(type) {
	case nil:
		*m = nil
		return nil
	case string:
		return json.Unmarshal([]byte(s), m)
	case []byte:
		return json.Unmarshal(s, m)
	default:
		return fmt.Errorf("cannot scan %T into VariantMap", v)
	}
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"       json:"id"`
	Name        string     `gorm:"not null"                   json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null"                   json:"price"`
	Image       string     `json:"image"`
	Category    string     `gorm:"index"                      json:"category"`
	Rating      float64    `json:"rating"`
	Reviews     int        `json:"reviews"`
	Discount    float64    `json:"discount"`
	Stock       int        `json:"stock"`
	Colors      StringList `gorm:"type:text"                  json:"colors"`
	Sizes       StringList `gorm:"type:text"                  json:"sizes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// EffectivePrice is the unit price with the current discount applied. The
// value is intentionally unrounded; rounding happens at display time only.
func (p Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.Price * (1 - p.Discount/100)
	}
	return p.Price
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	Role         string    `gorm:"not null"             json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

const (
	OrderStatusProcessing = "processing"
)

type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Reference       string      `gorm:"uniqueIndex;not null" json:"reference"`
	UserID          uuid.UUID   `gorm:"type:uuid;index"      json:"userId"`
	Email           string      `json:"email"`
	ShippingAddress string      `json:"shippingAddress"`
	Status          string      `gorm:"not null"             json:"status"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"   json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"      json:"orderId"`
	ProductID string     `gorm:"not null"             json:"productId"`
	Name      string     `json:"name"`
	UnitPrice float64    `json:"unitPrice"`
	Quantity  int        `json:"quantity"`
	Variant   VariantMap `gorm:"type:text"            json:"variant,omitempty"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}
