package services

import (
	"context"
	"errors"
	"testing"

	userdomain "github.com/ku-alexej/shareit/services/user/domain"
	"github.com/ku-alexej/shareit/services/user/domain/models"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  map[int64]models.User
	nextID int64
	inUse  map[int64]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[int64]models.User),
		nextID: 1,
		inUse:  make(map[int64]bool),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, userdomain.ErrEmailTaken
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeUserRepo) Patch(_ context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	current, ok := f.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	updated := current.Merge(patch)
	for _, u := range f.users {
		if u.ID != id && u.Email == updated.Email {
			return nil, userdomain.ErrEmailTaken
		}
	}
	f.users[id] = updated
	return &updated, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userdomain.ErrUserNotFound
	}
	if f.inUse[id] {
		return userdomain.ErrUserInUse
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func TestUserService_Create(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.Create(ctx, "Alexej", "alexej@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "Anna", "alexej@example.com")
		if !errors.Is(err, userdomain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestUserService_Update(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	alexej, _ := svc.Create(ctx, "Alexej", "alexej@example.com")
	_, _ = svc.Create(ctx, "Anna", "anna@example.com")

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		name := "Alex"
		updated, err := svc.Update(ctx, alexej.ID, models.UserPatch{Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Alex" || updated.Email != "alexej@example.com" {
			t.Fatalf("unexpected result: %+v", updated)
		}
	})

	t.Run("email collision with another user", func(t *testing.T) {
		email := "anna@example.com"
		_, err := svc.Update(ctx, alexej.ID, models.UserPatch{Email: &email})
		if !errors.Is(err, userdomain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("re-setting own email is allowed", func(t *testing.T) {
		email := "alexej@example.com"
		if _, err := svc.Update(ctx, alexej.ID, models.UserPatch{Email: &email}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Nobody"
		_, err := svc.Update(ctx, 999, models.UserPatch{Name: &name})
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserService_Delete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, _ := svc.Create(ctx, "Alexej", "alexej@example.com")

	t.Run("referenced user cannot be deleted", func(t *testing.T) {
		repo.inUse[user.ID] = true
		err := svc.Delete(ctx, user.ID)
		if !errors.Is(err, userdomain.ErrUserInUse) {
			t.Fatalf("expected ErrUserInUse, got %v", err)
		}
		repo.inUse[user.ID] = false
	})

	t.Run("delete removes the user", func(t *testing.T) {
		if err := svc.Delete(ctx, user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetByID(ctx, user.ID); !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if err := svc.Delete(ctx, 999); !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
