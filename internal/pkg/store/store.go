// Package store defines the record-store boundary the ETL core writes to
// and the read API reads from. All record collections are append-only:
// nothing in the system updates or deletes a persisted record.
package store

import (
	"context"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
)

type Store interface {
	InsertEmissionFactor(ctx context.Context, factor *domain.EmissionFactor) error
	ListEmissionFactors(ctx context.Context) ([]*domain.EmissionFactor, error)

	InsertAirTravel(ctx context.Context, record *domain.AirTravel) error
	ListAirTravel(ctx context.Context) ([]*domain.AirTravel, error)

	InsertPurchasedGoodsAndServices(ctx context.Context, record *domain.PurchasedGoodsAndServices) error
	ListPurchasedGoodsAndServices(ctx context.Context) ([]*domain.PurchasedGoodsAndServices, error)

	InsertElectricity(ctx context.Context, record *domain.Electricity) error
	ListElectricity(ctx context.Context) ([]*domain.Electricity, error)

	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
