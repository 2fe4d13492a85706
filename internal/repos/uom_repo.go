package repos

import (
	"context"

	"grocery/internal/domain"
)

type UomRepo struct{ db Queryer }

func NewUomRepo(db Queryer) *UomRepo { return &UomRepo{db: db} }

func (r *UomRepo) List(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	out := []domain.UnitOfMeasure{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, name FROM unit_of_measures ORDER BY name`)
	return out, err
}

// Create inserts a unit and returns its id.
func (r *UomRepo) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO unit_of_measures(name) VALUES (?) RETURNING id
	`), name)
	return id, err
}

func (r *UomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM unit_of_measures WHERE id = ?`), id)
	return n > 0, err
}

// NameTaken compares case-insensitively, matching the unique index.
func (r *UomRepo) NameTaken(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`
		SELECT COUNT(*) FROM unit_of_measures WHERE LOWER(name) = LOWER(?)
	`), name)
	return n > 0, err
}

// ProductCount counts products referencing the unit, active or not.
func (r *UomRepo) ProductCount(ctx context.Context, id int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM products WHERE uom_id = ?`), id)
	return n, err
}

// Delete returns the number of rows removed (0 = no such unit).
func (r *UomRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM unit_of_measures WHERE id = ?`), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
