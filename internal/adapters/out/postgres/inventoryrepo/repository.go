package inventoryrepo

import (
	"context"
	"errors"
	"slices"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the stock record or overwrites every column of an existing one.
func (r *GormInventoryRepository) Upsert(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return pgerr.Classify("inventory", err)
	}

	r.tracker.TrackAggregate(item.SKU().String(), item)
	return nil
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("sku = ?", dto.SKU).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("inventory", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory item", dto.SKU)
	}

	r.tracker.TrackAggregate(item.SKU().String(), item)
	return nil
}

func (r *GormInventoryRepository) Get(ctx context.Context, sku kernel.Code) (*inventory.Item, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", sku.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

func (r *GormInventoryRepository) GetMany(ctx context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error) {
	return r.getMany(r.db.WithContext(ctx), skus)
}

// LockMany takes FOR UPDATE row locks in ascending SKU order. Waiting longer
// than the session lock_timeout surfaces as a ConcurrencyConflictError.
func (r *GormInventoryRepository) LockMany(ctx context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error) {
	items, err := r.getMany(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), skus)
	if err != nil {
		return nil, pgerr.Classify("inventory", err)
	}
	return items, nil
}

func (r *GormInventoryRepository) getMany(query *gorm.DB, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error) {
	out := make(map[kernel.Code]*inventory.Item, len(skus))
	if len(skus) == 0 {
		return out, nil
	}

	keys := kernel.CodeStrings(skus)
	slices.Sort(keys)

	var dtos []ItemDTO
	if err := query.Where("sku IN ?", slices.Compact(keys)).Order("sku").Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		out[item.SKU()] = item
	}

	return out, nil
}

func (r *GormInventoryRepository) AddPickList(ctx context.Context, pl *inventory.PickList) error {
	if err := pl.Validate(); err != nil {
		return err
	}

	dto := pickListFromDomain(pl)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("pick list", err)
	}

	r.tracker.TrackAggregate(pl.ID().String(), pl)
	return nil
}

func (r *GormInventoryRepository) GetPickList(ctx context.Context, id kernel.UUID) (*inventory.PickList, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickListDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick list", id.String())
		}
		return nil, err
	}

	return pickListToDomain(dto)
}
