package postgres

import (
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/depotrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/triprepo"
	"logistics/internal/adapters/out/postgres/truckrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&depotrepo.DepotDTO{},
		&truckrepo.TruckDTO{},
		&triprepo.TripDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.BoxDTO{},
		&deliveryrepo.DeliveryDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
