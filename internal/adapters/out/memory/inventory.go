package memory

import (
	"context"

	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

type inventoryRepository struct {
	uow *UnitOfWork
}

func (r *inventoryRepository) Upsert(_ context.Context, item *inventory.Item) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	st.items[item.SKU()] = item.Snapshot()
	return nil
}

func (r *inventoryRepository) Update(_ context.Context, item *inventory.Item) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.items[item.SKU()]; !ok {
		return errs.NewObjectNotFoundError("inventory item", item.SKU().String())
	}
	st.items[item.SKU()] = item.Snapshot()
	return nil
}

func (r *inventoryRepository) Get(_ context.Context, sku kernel.Code) (*inventory.Item, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.items[sku]
	if !ok {
		return nil, errs.NewObjectNotFoundError("inventory item", sku.String())
	}
	return inventory.RestoreItem(snap)
}

func (r *inventoryRepository) GetMany(_ context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	out := make(map[kernel.Code]*inventory.Item, len(skus))
	for _, sku := range skus {
		snap, ok := st.items[sku]
		if !ok {
			continue
		}
		item, err := inventory.RestoreItem(snap)
		if err != nil {
			return nil, err
		}
		out[sku] = item
	}
	return out, nil
}

// LockMany is GetMany: a writing unit of work already holds the store lock.
func (r *inventoryRepository) LockMany(ctx context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.GetMany(ctx, skus)
}

func (r *inventoryRepository) AddPickList(_ context.Context, pl *inventory.PickList) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	st.pickLists[pl.ID()] = pl.Snapshot()
	return nil
}

func (r *inventoryRepository) GetPickList(_ context.Context, id kernel.UUID) (*inventory.PickList, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.pickLists[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pick list", id.String())
	}
	return inventory.RestorePickList(snap)
}
