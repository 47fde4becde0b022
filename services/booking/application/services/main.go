package services

import (
	"context"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
	bookingpg "github.com/ku-alexej/shareit/services/booking/infrastructure/persistence/postgres"
	itempg "github.com/ku-alexej/shareit/services/item/infrastructure/persistence/postgres"
	userpg "github.com/ku-alexej/shareit/services/user/infrastructure/persistence/postgres"
)

// Services bundles the booking context's use cases.
type Services struct {
	Booking *BookingService
}

// New wires the booking services against the application's resources.
func New(a *app.Application) *Services {
	bookings := bookingpg.NewBookingRepository(a.Db)
	items := &itemReader{repo: itempg.NewItemRepository(a.Db, a.EventBus)}
	users := userpg.NewUserRepository(a.Db)

	return &Services{
		Booking: NewBookingService(bookings, items, users),
	}
}

// itemReader narrows the item repository to the fields bookings need.
type itemReader struct {
	repo *itempg.ItemRepository
}

func (r *itemReader) GetByID(ctx context.Context, id int64) (*models.ItemRef, error) {
	item, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ItemRef{
		ID:        item.ID,
		Name:      item.Name,
		OwnerID:   item.OwnerID,
		Available: item.Available,
	}, nil
}
