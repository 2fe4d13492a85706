package handlers

import (
	"github.com/jmoiron/sqlx"

	"grocery/internal/services"
)

type Deps struct {
	UomHandler     *UomHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	HealthHandler  *HealthHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	return &Deps{
		UomHandler:     &UomHandler{Uoms: services.NewUomService(db)},
		ProductHandler: &ProductHandler{Products: services.NewProductService(db)},
		OrderHandler:   &OrderHandler{Orders: services.NewOrderService(db)},
		HealthHandler:  &HealthHandler{DB: db},
	}
}
