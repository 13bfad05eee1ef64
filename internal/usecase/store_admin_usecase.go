package usecase

import (
	"context"
	"log"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"
)

type IStoreAdminUseCase interface {
	Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error)
	Stats(ctx context.Context, owner string) (entities.StoreStats, error)
}

type StoreAdminUseCase struct {
	store interfaces.IDocumentStore
}

var _ IStoreAdminUseCase = (*StoreAdminUseCase)(nil)

func NewStoreAdminUseCase(store interfaces.IDocumentStore) *StoreAdminUseCase {
	return &StoreAdminUseCase{store: store}
}

func (u *StoreAdminUseCase) Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error) {
	cols, err := u.store.Collections(ctx, resolveActor(owner))
	if err != nil {
		log.Printf("[store][usecase] collections failed owner=%s err=%v", owner, err)
		return nil, err
	}
	if cols == nil {
		cols = []entities.CollectionInfo{}
	}
	return cols, nil
}

func (u *StoreAdminUseCase) Stats(ctx context.Context, owner string) (entities.StoreStats, error) {
	stats, err := u.store.Stats(ctx, resolveActor(owner))
	if err != nil {
		log.Printf("[store][usecase] stats failed owner=%s err=%v", owner, err)
		return entities.StoreStats{}, err
	}
	return stats, nil
}
