// Package seed migrates the schema and loads the reference tables the
// back office depends on.
package seed

import (
	"context"

	catalogdomain "github.com/facturable/facturable/internal/catalog/domain"
	"github.com/facturable/facturable/internal/config"
	configurationdomain "github.com/facturable/facturable/internal/configuration/domain"
	entitydomain "github.com/facturable/facturable/internal/entity/domain"
	entitysubscriptiondomain "github.com/facturable/facturable/internal/entitysubscription/domain"
	invoicedomain "github.com/facturable/facturable/internal/invoice/domain"
	subscriptiondomain "github.com/facturable/facturable/internal/subscription/domain"
	userdomain "github.com/facturable/facturable/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Module = fx.Invoke(register)

func register(lc fx.Lifecycle, cfg config.Config, db *gorm.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Migrate(db); err != nil {
				return err
			}
			if !cfg.SeedReferenceData {
				return nil
			}
			return ReferenceData(ctx, db, log)
		},
	})
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogdomain.TaxType{},
		&catalogdomain.ServiceType{},
		&catalogdomain.PaymentMethod{},
		&catalogdomain.LAFStatus{},
		&catalogdomain.BillingCycle{},
		&entitydomain.Entity{},
		&subscriptiondomain.Subscription{},
		&entitysubscriptiondomain.EntitySubscription{},
		&invoicedomain.Serie{},
		&invoicedomain.Invoice{},
		&invoicedomain.LineItem{},
		&userdomain.Role{},
		&userdomain.User{},
		&configurationdomain.Setting{},
	)
}

// ReferenceData inserts the fixed reference rows. Existing rows keep their
// values so locally edited rates survive restarts.
func ReferenceData(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	tx := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	taxTypes := []catalogdomain.TaxType{
		{ID: 1, Name: "IVA 21%", Rate: 21},
		{ID: 2, Name: "IVA 10%", Rate: 10},
		{ID: 3, Name: "IVA 4%", Rate: 4},
		{ID: 4, Name: "Exento", Rate: 0},
	}
	if err := tx.Create(&taxTypes).Error; err != nil {
		return err
	}

	serviceTypes := []catalogdomain.ServiceType{
		{ID: 1, Name: "Alojamiento"},
		{ID: 2, Name: "Dominio"},
		{ID: 3, Name: "Desarrollo"},
		{ID: 4, Name: "Mantenimiento"},
		{ID: 5, Name: "Otros"},
	}
	if err := tx.Create(&serviceTypes).Error; err != nil {
		return err
	}

	paymentMethods := []catalogdomain.PaymentMethod{
		{ID: 1, Name: "Transferencia"},
		{ID: 2, Name: "Domiciliación"},
		{ID: 3, Name: "Tarjeta"},
		{ID: 4, Name: "Efectivo"},
	}
	if err := tx.Create(&paymentMethods).Error; err != nil {
		return err
	}

	lafStatuses := []catalogdomain.LAFStatus{
		{ID: 1, Name: "Pendiente", Code: "pending"},
		{ID: 2, Name: "Enviada", Code: "sent"},
		{ID: 3, Name: "Aceptada", Code: "accepted"},
		{ID: 4, Name: "Rechazada", Code: "rejected"},
	}
	if err := tx.Create(&lafStatuses).Error; err != nil {
		return err
	}

	billingCycles := []catalogdomain.BillingCycle{
		{ID: 1, Name: "Mensual", Months: 1},
		{ID: 2, Name: "Trimestral", Months: 3},
		{ID: 3, Name: "Semestral", Months: 6},
		{ID: 4, Name: "Anual", Months: 12},
	}
	if err := tx.Create(&billingCycles).Error; err != nil {
		return err
	}

	log.Info("reference data seeded")
	return nil
}
