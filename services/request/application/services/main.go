package services

import (
	"context"

	"github.com/ku-alexej/shareit/pkg/app"
	itempg "github.com/ku-alexej/shareit/services/item/infrastructure/persistence/postgres"
	"github.com/ku-alexej/shareit/services/request/domain/models"
	requestpg "github.com/ku-alexej/shareit/services/request/infrastructure/persistence/postgres"
	userpg "github.com/ku-alexej/shareit/services/user/infrastructure/persistence/postgres"
)

// Services bundles the request context's use cases.
type Services struct {
	Request *RequestService
}

// New wires the request services against the application's resources.
func New(a *app.Application) *Services {
	requests := requestpg.NewRequestRepository(a.Db)
	items := &itemReader{repo: itempg.NewItemRepository(a.Db, a.EventBus)}
	users := userpg.NewUserRepository(a.Db)

	return &Services{
		Request: NewRequestService(requests, items, users),
	}
}

// itemReader narrows the item repository to the answer projection.
type itemReader struct {
	repo *itempg.ItemRepository
}

func (r *itemReader) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.AnswerItem, error) {
	items, err := r.repo.FindByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	answers := make([]models.AnswerItem, 0, len(items))
	for _, it := range items {
		a := models.AnswerItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
		}
		if it.RequestID != nil {
			a.RequestID = *it.RequestID
		}
		answers = append(answers, a)
	}
	return answers, nil
}
