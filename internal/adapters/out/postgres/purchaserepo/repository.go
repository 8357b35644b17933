package purchaserepo

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPurchaseRepository creates a new GORM purchase repository.
func NewGormPurchaseRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase with its lines to the database.
func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a derived version of an existing purchase to the database.
// Lines removed by a derivation are deleted so the stored collection always
// mirrors the aggregate.
func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	keptIDs := make([]any, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		keptIDs = append(keptIDs, line.ID)
	}

	cleanup := r.db.WithContext(ctx).Where("purchase_id = ?", dto.ID)
	if len(keptIDs) > 0 {
		cleanup = cleanup.Where("id NOT IN ?", keptIDs)
	}
	if err := cleanup.Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase by ID, with its lines in order.
func (r *GormPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("purchase_lines.position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPlacedStatus retrieves all purchases awaiting settlement.
//
// Example:
//
//	placed, err := repo.GetAllInPlacedStatus(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get placed purchases: %w", err)
//	}
//	for _, p := range placed {
//		fmt.Printf("Purchase %s awaiting settlement\n", p.ID())
//	}
func (r *GormPurchaseRepository) GetAllInPlacedStatus(ctx context.Context) ([]*purchase.Purchase, error) {
	var dtos []PurchaseDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("purchase_lines.position ASC")
		}).
		Where("status = ?", int(purchase.Placed)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	purchases := make([]*purchase.Purchase, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}
