// Package purchaserepo provides data transfer objects and mapping functions for purchase persistence.
// This package implements the repository pattern for the purchase domain aggregate, handling
// the conversion between domain entities and database representations.
package purchaserepo

import (
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"

	"github.com/google/uuid"
)

// PurchaseDTO represents the database structure for persisting purchase aggregates.
// Maps purchase domain entities to relational database tables with proper foreign key relationships.
type PurchaseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"type:smallint;not null;index"`
	Lines      []LineDTO `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase entities.
// Overrides GORM's default naming convention to use "purchases" instead of "purchase_dtos".
func (PurchaseDTO) TableName() string {
	return "purchases"
}

// LineDTO represents the database structure for persisting purchase line entities.
// Links to the purchase via foreign key; Position preserves line order within
// the aggregate. The unit price is flattened into amount and currency columns.
type LineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"type:int;not null"`
	Product       string    `gorm:"type:varchar(255);not null"`
	Quantity      int       `gorm:"type:int;not null"`
	PriceAmount   int64     `gorm:"type:bigint;not null"`
	PriceCurrency string    `gorm:"type:varchar(3);not null"`
}

// TableName specifies the database table name for purchase line entities.
// Overrides GORM's default naming convention to use "purchase_lines" instead of "line_dtos".
func (LineDTO) TableName() string {
	return "purchase_lines"
}

// fromDomain converts a purchase domain aggregate to its database representation.
// Maps all lines with their position in the collection.
func fromDomain(purchase *purchase.Purchase) PurchaseDTO {
	purchaseID := purchase.ID().Bytes()
	lines := make([]LineDTO, 0, len(purchase.Lines()))

	for position, line := range purchase.Lines() {
		lines = append(lines, LineDTO{
			ID:            line.ID().Bytes(),
			PurchaseID:    purchaseID,
			Position:      position,
			Product:       line.Product(),
			Quantity:      line.Quantity(),
			PriceAmount:   line.Price().Amount(),
			PriceCurrency: line.Price().Currency(),
		})
	}

	return PurchaseDTO{
		ID:         purchaseID,
		CustomerID: purchase.CustomerID().Bytes(),
		Status:     int(purchase.Status()),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to a purchase domain aggregate.
// Reconstructs the complete aggregate including all lines using RestorePurchase.
// Lines are expected to be loaded ordered by position.
func toDomain(dto PurchaseDTO) (*purchase.Purchase, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*purchase.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return purchase.RestorePurchase(id, customerID, purchase.Status(dto.Status), lines)
}

// lineToDomain converts a line DTO to a domain entity.
// Uses RestoreLine to reconstruct the entity with its persisted state.
func lineToDomain(dto LineDTO) (*purchase.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return purchase.RestoreLine(id, dto.Product, dto.Quantity, price)
}
