package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"grocery/internal/domain"
	"grocery/internal/repos"
	"grocery/internal/validate"
)

type UomService struct {
	DB   *sqlx.DB
	Uoms *repos.UomRepo
}

func NewUomService(db *sqlx.DB) *UomService {
	return &UomService{DB: db, Uoms: repos.NewUomRepo(db)}
}

// List returns all units ordered by name.
func (s *UomService) List(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	return s.Uoms.List(ctx)
}

// Create rejects empty and duplicate names before touching storage.
func (s *UomService) Create(ctx context.Context, name string) (int64, error) {
	name, ok := validate.Name(name)
	if !ok {
		return 0, domain.Invalid("UOM name is required")
	}
	taken, err := s.Uoms.NameTaken(ctx, name)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, domain.Invalid("UOM %q already exists", name)
	}
	return s.Uoms.Create(ctx, name)
}

// Delete refuses to remove a unit that any product (active or not) still references.
func (s *UomService) Delete(ctx context.Context, id int64) error {
	return repos.WithTx(ctx, s.DB, func(tx *sqlx.Tx) error {
		uoms := repos.NewUomRepo(tx)
		n, err := uoms.ProductCount(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflict("Cannot delete UOM: It is being used by products")
		}
		rows, err := uoms.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFound("UOM not found")
		}
		return nil
	})
}
