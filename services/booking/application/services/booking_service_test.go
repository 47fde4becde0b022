package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/ku-alexej/shareit/pkg/httpx"
	bookingdomain "github.com/ku-alexej/shareit/services/booking/domain"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
	itemdomain "github.com/ku-alexej/shareit/services/item/domain"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

type fakeBookingRepo struct {
	bookings map[int64]models.Booking
	items    map[int64]models.ItemRef
	nextID   int64
}

func newFakeBookingRepo(items map[int64]models.ItemRef) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]models.Booking), items: items, nextID: 1}
}

// join mirrors the real repository's read queries, which return rows
// with the item name and owner id joined in from the items table.
func (f *fakeBookingRepo) join(b models.Booking) models.Booking {
	if it, ok := f.items[b.ItemID]; ok {
		b.ItemName = it.Name
		b.OwnerID = it.OwnerID
	}
	return b
}

func (f *fakeBookingRepo) Create(_ context.Context, b models.Booking) (*models.Booking, error) {
	b.ID = f.nextID
	f.nextID++
	f.bookings[b.ID] = b
	b = f.join(b)
	return &b, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingdomain.ErrBookingNotFound
	}
	b = f.join(b)
	return &b, nil
}

func (f *fakeBookingRepo) SetStatus(_ context.Context, id int64, next models.Status) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingdomain.ErrBookingNotFound
	}
	if !models.CanTransition(b.Status, next) {
		return nil, bookingdomain.ErrAlreadyResolved
	}
	b.Status = next
	f.bookings[id] = b
	b = f.join(b)
	return &b, nil
}

func (f *fakeBookingRepo) ListByBooker(_ context.Context, bookerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error) {
	return f.list(func(b models.Booking) bool { return b.BookerID == bookerID }, state, at, page), nil
}

func (f *fakeBookingRepo) ListByOwner(_ context.Context, ownerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error) {
	return f.list(func(b models.Booking) bool { return b.OwnerID == ownerID }, state, at, page), nil
}

func (f *fakeBookingRepo) list(match func(models.Booking) bool, state models.State, at time.Time, page httpx.Page) []models.Booking {
	var out []models.Booking
	for _, b := range f.bookings {
		b = f.join(b)
		if !match(b) {
			continue
		}
		switch state {
		case models.StateCurrent:
			if b.Start.After(at) || !b.End.After(at) {
				continue
			}
		case models.StatePast:
			if !b.End.Before(at) {
				continue
			}
		case models.StateFuture:
			if !b.Start.After(at) {
				continue
			}
		case models.StateWaiting:
			if b.Status != models.StatusWaiting {
				continue
			}
		case models.StateRejected:
			if b.Status != models.StatusRejected {
				continue
			}
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	if page.Offset() >= len(out) {
		return nil
	}
	out = out[page.Offset():]
	if len(out) > page.Limit() {
		out = out[:page.Limit()]
	}
	return out
}

func (f *fakeBookingRepo) LastForItems(_ context.Context, _ []int64, _ time.Time) (map[int64]models.Booking, error) {
	return map[int64]models.Booking{}, nil
}

func (f *fakeBookingRepo) NextForItems(_ context.Context, _ []int64, _ time.Time) (map[int64]models.Booking, error) {
	return map[int64]models.Booking{}, nil
}

func (f *fakeBookingRepo) HasFinishedBooking(_ context.Context, itemID, bookerID int64, at time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID && b.End.Before(at) {
			return true, nil
		}
	}
	return false, nil
}

type fakeItemReader struct {
	items map[int64]models.ItemRef
}

func (f *fakeItemReader) GetByID(_ context.Context, id int64) (*models.ItemRef, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &it, nil
}

type fakeUserReader struct {
	users map[int64]bool
}

func (f *fakeUserReader) Exists(_ context.Context, id int64) (bool, error) {
	return f.users[id], nil
}

func newTestService() (*BookingService, *fakeBookingRepo) {
	itemRefs := map[int64]models.ItemRef{
		1: {ID: 1, Name: "drill", OwnerID: 10, Available: true},
		2: {ID: 2, Name: "ladder", OwnerID: 10, Available: false},
	}
	repo := newFakeBookingRepo(itemRefs)
	items := &fakeItemReader{items: itemRefs}
	users := &fakeUserReader{users: map[int64]bool{10: true, 20: true, 30: true}}
	return NewBookingService(repo, items, users), repo
}

func window(startIn, length time.Duration) (time.Time, time.Time) {
	start := time.Now().Add(startIn)
	return start, start.Add(length)
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates waiting booking", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		b, err := svc.Create(ctx, 20, 1, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != models.StatusWaiting {
			t.Fatalf("expected WAITING, got %s", b.Status)
		}
		if b.BookerID != 20 || b.ItemID != 1 {
			t.Fatalf("unexpected booking: %+v", b)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		_, err := svc.Create(ctx, 20, 99, start, end)
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("unavailable item", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		_, err := svc.Create(ctx, 20, 2, start, end)
		if !errors.Is(err, bookingdomain.ErrItemUnavailable) {
			t.Fatalf("expected ErrItemUnavailable, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _ := newTestService()
		start := time.Now().Add(2 * time.Hour)
		_, err := svc.Create(ctx, 20, 1, start, start.Add(-time.Hour))
		if !errors.Is(err, bookingdomain.ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("zero-length window", func(t *testing.T) {
		svc, _ := newTestService()
		start := time.Now().Add(time.Hour)
		_, err := svc.Create(ctx, 20, 1, start, start)
		if !errors.Is(err, bookingdomain.ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("unknown booker", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		_, err := svc.Create(ctx, 99, 1, start, end)
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("owner cannot book own item", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		_, err := svc.Create(ctx, 10, 1, start, end)
		if !errors.Is(err, bookingdomain.ErrOwnBooking) {
			t.Fatalf("expected ErrOwnBooking, got %v", err)
		}
	})
}

func TestBookingService_Resolve(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*BookingService, *models.Booking) {
		t.Helper()
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		b, err := svc.Create(ctx, 20, 1, start, end)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		return svc, b
	}

	t.Run("owner approves", func(t *testing.T) {
		svc, b := setup(t)
		resolved, err := svc.Resolve(ctx, 10, b.ID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Status != models.StatusApproved {
			t.Fatalf("expected APPROVED, got %s", resolved.Status)
		}
	})

	t.Run("owner rejects", func(t *testing.T) {
		svc, b := setup(t)
		resolved, err := svc.Resolve(ctx, 10, b.ID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Status != models.StatusRejected {
			t.Fatalf("expected REJECTED, got %s", resolved.Status)
		}
	})

	t.Run("second resolution fails", func(t *testing.T) {
		svc, b := setup(t)
		if _, err := svc.Resolve(ctx, 10, b.ID, true); err != nil {
			t.Fatalf("first resolve: %v", err)
		}
		_, err := svc.Resolve(ctx, 10, b.ID, false)
		if !errors.Is(err, bookingdomain.ErrAlreadyResolved) {
			t.Fatalf("expected ErrAlreadyResolved, got %v", err)
		}
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		svc, b := setup(t)
		_, err := svc.Resolve(ctx, 20, b.ID, true)
		if !errors.Is(err, bookingdomain.ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("booker cancels waiting booking", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		b, _ := svc.Create(ctx, 20, 1, start, end)

		canceled, err := svc.Cancel(ctx, 20, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if canceled.Status != models.StatusCanceled {
			t.Fatalf("expected CANCELED, got %s", canceled.Status)
		}
	})

	t.Run("only the booker may cancel", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		b, _ := svc.Create(ctx, 20, 1, start, end)

		_, err := svc.Cancel(ctx, 10, b.ID)
		if !errors.Is(err, bookingdomain.ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("approved booking cannot be canceled", func(t *testing.T) {
		svc, _ := newTestService()
		start, end := window(time.Hour, time.Hour)
		b, _ := svc.Create(ctx, 20, 1, start, end)
		if _, err := svc.Resolve(ctx, 10, b.ID, true); err != nil {
			t.Fatalf("resolve: %v", err)
		}

		_, err := svc.Cancel(ctx, 20, b.ID)
		if !errors.Is(err, bookingdomain.ErrAlreadyResolved) {
			t.Fatalf("expected ErrAlreadyResolved, got %v", err)
		}
	})
}

func TestBookingService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	start, end := window(time.Hour, time.Hour)
	b, _ := svc.Create(ctx, 20, 1, start, end)

	t.Run("booker sees the booking", func(t *testing.T) {
		if _, err := svc.GetByID(ctx, 20, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owner sees the booking", func(t *testing.T) {
		if _, err := svc.GetByID(ctx, 10, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("third party sees not found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 30, b.ID)
		if !errors.Is(err, bookingdomain.ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingService_Lists(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	now := time.Now()

	// Past, current and future bookings for booker 20 on item 1 (owner 10).
	seed := []models.Booking{
		{Start: now.Add(-3 * time.Hour), End: now.Add(-2 * time.Hour), ItemID: 1, ItemName: "drill", BookerID: 20, OwnerID: 10, Status: models.StatusApproved},
		{Start: now.Add(-time.Hour), End: now.Add(time.Hour), ItemID: 1, ItemName: "drill", BookerID: 20, OwnerID: 10, Status: models.StatusApproved},
		{Start: now.Add(2 * time.Hour), End: now.Add(3 * time.Hour), ItemID: 1, ItemName: "drill", BookerID: 20, OwnerID: 10, Status: models.StatusWaiting},
		{Start: now.Add(4 * time.Hour), End: now.Add(5 * time.Hour), ItemID: 1, ItemName: "drill", BookerID: 20, OwnerID: 10, Status: models.StatusRejected},
	}
	for _, b := range seed {
		if _, err := repo.Create(ctx, b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	page := httpx.Page{From: 0, Size: 10}

	tests := []struct {
		state models.State
		want  int
	}{
		{models.StateAll, 4},
		{models.StateCurrent, 1},
		{models.StatePast, 1},
		{models.StateFuture, 2},
		{models.StateWaiting, 1},
		{models.StateRejected, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			got, err := svc.ListByBooker(ctx, 20, tt.state, page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d bookings, got %d", tt.want, len(got))
			}
		})
	}

	t.Run("sorted by start descending", func(t *testing.T) {
		got, err := svc.ListByBooker(ctx, 20, models.StateAll, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Start.After(got[i-1].Start) {
				t.Fatal("expected descending start order")
			}
		}
	})

	t.Run("owner list matches", func(t *testing.T) {
		got, err := svc.ListByOwner(ctx, 10, models.StateAll, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 bookings, got %d", len(got))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.ListByBooker(ctx, 99, models.StateAll, page)
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("pagination window", func(t *testing.T) {
		got, err := svc.ListByBooker(ctx, 20, models.StateAll, httpx.Page{From: 1, Size: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 bookings, got %d", len(got))
		}
	})
}
