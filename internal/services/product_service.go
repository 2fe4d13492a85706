package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"grocery/internal/domain"
	"grocery/internal/repos"
	"grocery/internal/validate"
)

type ProductService struct {
	Prods *repos.ProductRepo
	Uoms  *repos.UomRepo
}

func NewProductService(db *sqlx.DB) *ProductService {
	return &ProductService{Prods: repos.NewProductRepo(db), Uoms: repos.NewUomRepo(db)}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Prods.ListActive(ctx)
}

// Get finds active and soft-deleted products alike.
func (s *ProductService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Prods.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.NotFound("Product not found")
	}
	return p, err
}

func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) (int64, error) {
	name, err := s.check(ctx, in)
	if err != nil {
		return 0, err
	}
	return s.Prods.Create(ctx, name, *in.PricePerUnit, *in.UomID)
}

func (s *ProductService) Update(ctx context.Context, id int64, in domain.ProductInput) error {
	name, err := s.check(ctx, in)
	if err != nil {
		return err
	}
	rows, err := s.Prods.Update(ctx, id, name, *in.PricePerUnit, *in.UomID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("Product not found")
	}
	return nil
}

// Delete is a soft delete.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	rows, err := s.Prods.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("Product not found")
	}
	return nil
}

// check validates presence and values, and that the unit exists.
func (s *ProductService) check(ctx context.Context, in domain.ProductInput) (string, error) {
	name, ok := validate.Name(in.Name)
	if !ok || in.PricePerUnit == nil || !validate.RefID(in.UomID) {
		return "", domain.Invalid("Missing required fields")
	}
	if !validate.Price(in.PricePerUnit) {
		return "", domain.Invalid("price_per_unit must be greater than 0")
	}
	exists, err := s.Uoms.Exists(ctx, *in.UomID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.Invalid("UOM %d does not exist", *in.UomID)
	}
	return name, nil
}
