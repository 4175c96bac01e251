package usecase

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

// BaseUseCase consultas del catálogo de bases.
type BaseUseCase struct {
	repo repository.BaseRepository
}

// NewBaseUseCase construye el caso de uso.
func NewBaseUseCase(repo repository.BaseRepository) *BaseUseCase {
	return &BaseUseCase{repo: repo}
}

// List devuelve todas las bases. El catálogo es visible para cualquier rol
// (el selector de bases del tablero lo necesita).
func (uc *BaseUseCase) List(ctx context.Context) ([]dto.BaseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BaseResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBaseResponse(b))
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si la base no existe.
func (uc *BaseUseCase) GetByID(ctx context.Context, id string) (*dto.BaseResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	out := toBaseResponse(b)
	return &out, nil
}

func toBaseResponse(b *entity.Base) dto.BaseResponse {
	return dto.BaseResponse{ID: b.ID, Name: b.Name, Location: b.Location}
}
