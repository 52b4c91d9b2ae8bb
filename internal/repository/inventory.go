package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

type InventoryMovementDAO interface {
	Insert(ctx context.Context, movement dao.InventoryMovement) (dao.InventoryMovement, error)
	FindByProduct(ctx context.Context, productID uint) ([]dao.InventoryMovement, error)
}

type InventoryMovementRepository struct {
	dao InventoryMovementDAO
}

func NewInventoryMovementRepository(dao InventoryMovementDAO) *InventoryMovementRepository {
	return &InventoryMovementRepository{
		dao: dao,
	}
}

func (r *InventoryMovementRepository) movementDaoToDomain(m dao.InventoryMovement) domain.InventoryMovement {
	return domain.InventoryMovement{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		ReferenceID:  m.ReferenceID,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *InventoryMovementRepository) Create(ctx context.Context, movement domain.InventoryMovement) (domain.InventoryMovement, error) {
	created, err := r.dao.Insert(ctx, dao.InventoryMovement{
		ProductID:    movement.ProductID,
		MovementType: movement.MovementType,
		Quantity:     movement.Quantity,
		Reason:       movement.Reason,
		ReferenceID:  movement.ReferenceID,
	})
	if err != nil {
		return domain.InventoryMovement{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.movementDaoToDomain(created), nil
}

func (r *InventoryMovementRepository) FindByProduct(ctx context.Context, productID uint) ([]domain.InventoryMovement, error) {
	rows, err := r.dao.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByProduct -> %w", err)
	}

	movements := make([]domain.InventoryMovement, len(rows))
	for i, row := range rows {
		movements[i] = r.movementDaoToDomain(row)
	}

	return movements, nil
}
