// Package contract holds behaviour suites every repository implementation must pass.
// Implementations call them from their own tests with a factory for a fresh store.
package contract

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/maxviazov/user-directory/internal/model"
	"github.com/maxviazov/user-directory/internal/repository"
)

type UserFactory func(t *testing.T) (repository.UserRepository, func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func sampleUser(email string) model.User {
	return model.User{
		LastName:  "Doe",
		FirstName: "Jane",
		Email:     email,
		BirthDate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
}

func RunUserRepositoryContract(t *testing.T, makeRepo UserFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, sampleUser("jane@example.com"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID <= 0 {
			t.Fatalf("expected assigned id, got %d", created.ID)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got != created {
			t.Fatalf("mismatch: %+v vs %+v", got, created)
		}
	})

	t.Run("ids_increase_and_are_not_reused", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		a, _ := repo.Create(ctx, sampleUser("a@example.com"))
		b, _ := repo.Create(ctx, sampleUser("b@example.com"))
		if b.ID <= a.ID {
			t.Fatalf("ids not increasing: %d then %d", a.ID, b.ID)
		}
		if _, err := repo.Delete(ctx, b.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		c, _ := repo.Create(ctx, sampleUser("c@example.com"))
		if c.ID <= b.ID {
			t.Fatalf("id %d reused after delete of %d", c.ID, b.ID)
		}
	})

	t.Run("create_ignores_caller_id", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		u := sampleUser("x@example.com")
		u.ID = 500
		created, err := repo.Create(context.Background(), u)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == 500 {
			t.Fatalf("caller supplied id must not be kept")
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_keeps_insertion_order", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		emails := []string{"a@example.com", "b@example.com", "c@example.com"}
		for _, e := range emails {
			if _, err := repo.Create(ctx, sampleUser(e)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != len(emails) {
			t.Fatalf("unexpected len %d", len(list))
		}
		for i, e := range emails {
			if list[i].Email != e {
				t.Fatalf("position %d: got %s want %s", i, list[i].Email, e)
			}
		}
		n, err := repo.Count(ctx)
		if err != nil || n != len(emails) {
			t.Fatalf("count: %d, %v", n, err)
		}
	})

	t.Run("update_in_place", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, _ := repo.Create(ctx, sampleUser("a@example.com"))
		_, _ = repo.Create(ctx, sampleUser("b@example.com"))

		upd := sampleUser("renamed@example.com")
		got, err := repo.Update(ctx, first.ID, upd)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.ID != first.ID || got.Email != "renamed@example.com" {
			t.Fatalf("unexpected update result: %+v", got)
		}
		list, _ := repo.List(ctx)
		if list[0].ID != first.ID || list[0].Email != "renamed@example.com" {
			t.Fatalf("update moved or lost the record: %+v", list)
		}
	})

	t.Run("update_missing_does_not_insert", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, err := repo.Update(ctx, 42, sampleUser("ghost@example.com"))
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if n, _ := repo.Count(ctx); n != 0 {
			t.Fatalf("update of missing id inserted a record")
		}
	})

	t.Run("delete_reports_removal", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		u, _ := repo.Create(ctx, sampleUser("a@example.com"))
		ok, err := repo.Delete(ctx, u.ID)
		if err != nil || !ok {
			t.Fatalf("first delete: ok=%v err=%v", ok, err)
		}
		ok, err = repo.Delete(ctx, u.ID)
		if err != nil || ok {
			t.Fatalf("second delete: ok=%v err=%v", ok, err)
		}
	})

	t.Run("concurrent_creates_get_unique_ids", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		const workers = 50
		ids := make(chan int64, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				u, err := repo.Create(ctx, sampleUser("w@example.com"))
				if err == nil {
					ids <- u.ID
				}
			}()
		}
		wg.Wait()
		close(ids)
		seen := make(map[int64]bool, workers)
		for id := range ids {
			if seen[id] {
				t.Fatalf("duplicate id %d", id)
			}
			seen[id] = true
		}
		if len(seen) != workers {
			t.Fatalf("expected %d ids, got %d", workers, len(seen))
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
