package memory

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var (
	_ repository.AssetMovementRepository  = (*AssetMovementRepo)(nil)
	_ repository.OpeningBalanceRepository = (*OpeningBalanceRepo)(nil)
	_ repository.BaseRepository           = (*BaseRepo)(nil)
	_ repository.AssetRepository          = (*AssetRepo)(nil)
	_ repository.TransferRepository       = (*TransferRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
)

// AssetMovementRepo libro de movimientos en memoria. Devuelve copias en orden de inserción.
type AssetMovementRepo struct {
	f *Fixture
}

// NewAssetMovementRepository construye el adaptador.
func NewAssetMovementRepository(f *Fixture) *AssetMovementRepo {
	return &AssetMovementRepo{f: f}
}

// ListAll devuelve el libro completo.
func (r *AssetMovementRepo) ListAll(_ context.Context) ([]entity.AssetMovement, error) {
	out := make([]entity.AssetMovement, 0, len(r.f.Movements))
	for _, m := range r.f.Movements {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// ListByBase devuelve los movimientos registrados contra la base.
func (r *AssetMovementRepo) ListByBase(_ context.Context, baseID string) ([]entity.AssetMovement, error) {
	out := make([]entity.AssetMovement, 0)
	for _, m := range r.f.Movements {
		if m.Base == baseID {
			out = append(out, m.toEntity())
		}
	}
	return out, nil
}

// OpeningBalanceRepo saldos de apertura por base con un valor por defecto.
type OpeningBalanceRepo struct {
	f   *Fixture
	def int64
}

// NewOpeningBalanceRepository construye el adaptador; def se usa para bases sin saldo configurado.
func NewOpeningBalanceRepository(f *Fixture, def int64) *OpeningBalanceRepo {
	return &OpeningBalanceRepo{f: f, def: def}
}

// GetOpeningBalance devuelve el saldo de apertura configurado o el valor por defecto.
func (r *OpeningBalanceRepo) GetOpeningBalance(_ context.Context, baseID string) (int64, error) {
	if v, ok := r.f.OpeningBalances[baseID]; ok {
		return v, nil
	}
	return r.def, nil
}

// BaseRepo catálogo de bases en memoria.
type BaseRepo struct {
	f *Fixture
}

// NewBaseRepository construye el adaptador.
func NewBaseRepository(f *Fixture) *BaseRepo {
	return &BaseRepo{f: f}
}

// List devuelve todas las bases en el orden del fixture.
func (r *BaseRepo) List(_ context.Context) ([]*entity.Base, error) {
	out := make([]*entity.Base, 0, len(r.f.Bases))
	for _, b := range r.f.Bases {
		out = append(out, &entity.Base{ID: b.ID, Name: b.Name, Location: b.Location})
	}
	return out, nil
}

// GetByID obtiene una base por ID.
func (r *BaseRepo) GetByID(_ context.Context, id string) (*entity.Base, error) {
	for _, b := range r.f.Bases {
		if b.ID == id {
			return &entity.Base{ID: b.ID, Name: b.Name, Location: b.Location}, nil
		}
	}
	return nil, nil
}

// AssetRepo inventario en memoria.
type AssetRepo struct {
	f *Fixture
}

// NewAssetRepository construye el adaptador.
func NewAssetRepository(f *Fixture) *AssetRepo {
	return &AssetRepo{f: f}
}

// ListAll lista los activos de todas las bases en el orden del fixture.
func (r *AssetRepo) ListAll(_ context.Context) ([]*entity.Asset, error) {
	out := make([]*entity.Asset, 0, len(r.f.Assets))
	for _, a := range r.f.Assets {
		out = append(out, a.toEntity())
	}
	return out, nil
}

// ListByBase lista los activos de una base.
func (r *AssetRepo) ListByBase(_ context.Context, baseID string) ([]*entity.Asset, error) {
	out := make([]*entity.Asset, 0)
	for _, a := range r.f.Assets {
		if a.Base == baseID {
			out = append(out, a.toEntity())
		}
	}
	return out, nil
}

// TransferRepo traslados en memoria.
type TransferRepo struct {
	f *Fixture
}

// NewTransferRepository construye el adaptador.
func NewTransferRepository(f *Fixture) *TransferRepo {
	return &TransferRepo{f: f}
}

// ListByBase lista los traslados con origen o destino en la base.
func (r *TransferRepo) ListByBase(_ context.Context, baseID string) ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0)
	for _, t := range r.f.Transfers {
		tr := t.toEntity()
		if tr.Involves(baseID) {
			out = append(out, tr)
		}
	}
	return out, nil
}

// UserRepo operador de la demo.
type UserRepo struct {
	f *Fixture
}

// NewUserRepository construye el adaptador.
func NewUserRepository(f *Fixture) *UserRepo {
	return &UserRepo{f: f}
}

// GetDemoUser devuelve el usuario preconfigurado; (nil, nil) si el fixture no define uno.
func (r *UserRepo) GetDemoUser(_ context.Context) (*entity.User, error) {
	u := r.f.DemoUser
	if u.ID == "" {
		return nil, nil
	}
	return &entity.User{ID: u.ID, Name: u.Name, Role: u.Role, Base: u.Base}, nil
}
