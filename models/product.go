package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DataValidationError reports malformed or semantically invalid product data.
// It is the single validation failure kind raised by this package; the HTTP
// layer maps it to 400 Bad Request.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}

// Product represents a catalog item. An ID of zero means the product has not
// been persisted yet; the database assigns the id on create.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"type:varchar(32);not null"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Serialize maps the product to its wire representation. The price travels
// as a string so its fixed-point precision survives transit; an unsaved
// product serializes its id as null.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != 0 {
		id = p.ID
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.Name(),
	}
}

// productPayload keeps fields loose so Deserialize can validate each one
// explicitly instead of surfacing opaque decode errors.
type productPayload struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       json.RawMessage `json:"price"`
	Available   json.RawMessage `json:"available"`
	Category    *string         `json:"category"`
}

// Deserialize populates the product from a JSON object. The id is never
// taken from the payload. Every failure is a *DataValidationError:
// non-object input, a missing name or price, a price that is not a decimal
// number, and an available field that is not a literal JSON boolean all
// fail. An unrecognized category name decodes to Unknown instead.
func (p *Product) Deserialize(data []byte) error {
	var payload productPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return validationErrorf("Invalid product: body contained bad or no data: %v", err)
	}

	if payload.Name == nil || *payload.Name == "" {
		return validationErrorf("Invalid product: missing name")
	}
	p.Name = *payload.Name

	p.Description = ""
	if payload.Description != nil {
		p.Description = *payload.Description
	}

	if isAbsent(payload.Price) {
		return validationErrorf("Invalid product: missing price")
	}
	var price decimal.Decimal
	if err := json.Unmarshal(payload.Price, &price); err != nil {
		return validationErrorf("Invalid product: invalid price [%s]", payload.Price)
	}
	p.Price = price

	if isAbsent(payload.Available) {
		return validationErrorf("Invalid product: missing available")
	}
	var available bool
	if err := json.Unmarshal(payload.Available, &available); err != nil {
		return validationErrorf("Invalid product: invalid type for boolean [available]: %s", payload.Available)
	}
	p.Available = available

	p.Category = Unknown
	if payload.Category != nil {
		p.Category = ParseCategory(*payload.Category)
	}
	return nil
}

// isAbsent treats an explicit JSON null the same as a missing key.
func isAbsent(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}

// ParsePrice normalizes a textual price before parsing it: surrounding
// whitespace and quotes are stripped, so both `12.50` and `"12.50"` work.
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.Trim(s, ` "`))
	if err != nil {
		return decimal.Decimal{}, validationErrorf("Invalid price [%s]", s)
	}
	return price, nil
}
