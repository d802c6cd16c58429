package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pdf-translator/internal/domain"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if got.ID != "u1" || got.PasswordHash != "hash" {
		t.Errorf("FindByEmail() = %+v", got)
	}

	got.Name = "changed"
	again, _ := repo.FindByEmail(ctx, "ada@example.com")
	if again.Name != "Ada" {
		t.Errorf("stored user was mutated through returned pointer")
	}
}

func TestMemoryUserRepository_Errors(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByEmail() error = %v, want ErrUserNotFound", err)
	}

	user := &domain.User{ID: "u1", Email: "ada@example.com"}
	_ = repo.Create(ctx, user)
	if err := repo.Create(ctx, &domain.User{ID: "u2", Email: "ada@example.com"}); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("Create() duplicate error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestMemoryUserRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &domain.User{Email: "same@example.com"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}
}
