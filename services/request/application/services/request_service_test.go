package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ku-alexej/shareit/pkg/httpx"
	requestdomain "github.com/ku-alexej/shareit/services/request/domain"
	"github.com/ku-alexej/shareit/services/request/domain/models"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

type fakeRequestRepo struct {
	requests map[int64]models.ItemRequest
	nextID   int64
	clock    time.Time
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		requests: make(map[int64]models.ItemRequest),
		nextID:   1,
		clock:    time.Now(),
	}
}

func (f *fakeRequestRepo) Create(_ context.Context, req models.ItemRequest) (*models.ItemRequest, error) {
	req.ID = f.nextID
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	req.Created = f.clock
	f.requests[req.ID] = req
	return &req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*models.ItemRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, requestdomain.ErrRequestNotFound
	}
	return &req, nil
}

func (f *fakeRequestRepo) FindByRequester(_ context.Context, requesterID int64) ([]models.ItemRequest, error) {
	return f.filter(func(r models.ItemRequest) bool { return r.RequesterID == requesterID }), nil
}

func (f *fakeRequestRepo) FindOthers(_ context.Context, requesterID int64, page httpx.Page) ([]models.ItemRequest, error) {
	out := f.filter(func(r models.ItemRequest) bool { return r.RequesterID != requesterID })
	if page.Offset() >= len(out) {
		return nil, nil
	}
	out = out[page.Offset():]
	if len(out) > page.Limit() {
		out = out[:page.Limit()]
	}
	return out, nil
}

// filter returns matches newest first.
func (f *fakeRequestRepo) filter(match func(models.ItemRequest) bool) []models.ItemRequest {
	var out []models.ItemRequest
	for id := f.nextID - 1; id >= 1; id-- {
		if req, ok := f.requests[id]; ok && match(req) {
			out = append(out, req)
		}
	}
	return out
}

func (f *fakeRequestRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.requests[id]
	return ok, nil
}

type fakeAnswerReader struct {
	answers []models.AnswerItem
}

func (f *fakeAnswerReader) FindByRequestIDs(_ context.Context, requestIDs []int64) ([]models.AnswerItem, error) {
	var out []models.AnswerItem
	for _, a := range f.answers {
		for _, id := range requestIDs {
			if a.RequestID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

type fakeUsers struct {
	known map[int64]bool
}

func (f *fakeUsers) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func newRequestFixture() (*RequestService, *fakeRequestRepo, *fakeAnswerReader) {
	repo := newFakeRequestRepo()
	items := &fakeAnswerReader{}
	users := &fakeUsers{known: map[int64]bool{10: true, 20: true}}
	return NewRequestService(repo, items, users), repo, items
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newRequestFixture()

	t.Run("creates request", func(t *testing.T) {
		req, err := svc.Create(ctx, 10, "need a drill")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ID == 0 || req.Created.IsZero() {
			t.Fatalf("expected stored request, got %+v", req)
		}
	})

	t.Run("unknown requester", func(t *testing.T) {
		_, err := svc.Create(ctx, 99, "need a drill")
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestRequestService_GetOwn(t *testing.T) {
	ctx := context.Background()
	svc, _, items := newRequestFixture()

	first, _ := svc.Create(ctx, 10, "need a drill")
	second, _ := svc.Create(ctx, 10, "need a ladder")
	_, _ = svc.Create(ctx, 20, "need a saw")

	items.answers = []models.AnswerItem{
		{ID: 5, Name: "drill", Available: true, OwnerID: 20, RequestID: first.ID},
	}

	details, err := svc.GetOwn(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(details))
	}
	if details[0].ID != second.ID {
		t.Fatalf("expected newest first, got id %d", details[0].ID)
	}
	if len(details[0].Items) != 0 {
		t.Fatalf("expected no answers on newest, got %d", len(details[0].Items))
	}
	if len(details[1].Items) != 1 || details[1].Items[0].Name != "drill" {
		t.Fatalf("expected drill answer, got %+v", details[1].Items)
	}
}

func TestRequestService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newRequestFixture()

	mine, _ := svc.Create(ctx, 10, "need a drill")
	_, _ = svc.Create(ctx, 20, "need a saw")
	_, _ = svc.Create(ctx, 20, "need a tent")

	details, err := svc.GetAll(ctx, 10, httpx.Page{From: 0, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 foreign requests, got %d", len(details))
	}
	for _, d := range details {
		if d.ID == mine.ID {
			t.Fatal("own request leaked into the foreign list")
		}
	}

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.GetAll(ctx, 10, httpx.Page{From: 1, Size: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page) != 1 {
			t.Fatalf("expected 1 request, got %d", len(page))
		}
	})
}

func TestRequestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _, items := newRequestFixture()
	req, _ := svc.Create(ctx, 10, "need a drill")
	items.answers = []models.AnswerItem{
		{ID: 5, Name: "drill", Available: true, OwnerID: 20, RequestID: req.ID},
	}

	t.Run("any known user may read", func(t *testing.T) {
		details, err := svc.GetByID(ctx, 20, req.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details.Items) != 1 {
			t.Fatalf("expected 1 answer, got %d", len(details.Items))
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 10, 999)
		if !errors.Is(err, requestdomain.ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 99, req.ID)
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
