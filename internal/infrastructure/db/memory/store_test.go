package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/demoforums/forum-api/internal/core/domain"
)

func testForum(slug string) *domain.Forum {
	return &domain.Forum{
		ID:       seedID(slug),
		Slug:     slug,
		Title:    slug,
		Category: domain.CategoryTechnology,
	}
}

func TestForumRepository_CreateDuplicateSlug(t *testing.T) {
	store := NewStore()
	repo := NewForumRepository(store)
	ctx := context.Background()

	if err := repo.Create(ctx, testForum("go")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := repo.Create(ctx, testForum("go"))
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate slug should be a conflict, got %v", err)
	}

	forums, _ := repo.List(ctx)
	if len(forums) != 1 {
		t.Fatalf("failed create must not change the collection: %d forums", len(forums))
	}
}

func TestForumRepository_FindBySlugCaseSensitive(t *testing.T) {
	store := NewStore()
	repo := NewForumRepository(store)
	ctx := context.Background()

	_ = repo.Create(ctx, testForum("physics"))

	if _, err := repo.FindBySlug(ctx, "Physics"); !errors.Is(err, domain.ErrForumNotFound) {
		t.Fatalf("slug match must be case-sensitive, got %v", err)
	}
}

func TestPostRepository_SequentialNumbers(t *testing.T) {
	store := NewStore()
	forums := NewForumRepository(store)
	posts := NewPostRepository(store)
	ctx := context.Background()

	_ = forums.Create(ctx, testForum("go"))
	_ = forums.Create(ctx, testForum("rust"))

	for i := 0; i < 3; i++ {
		created, err := posts.Create(ctx, &domain.Post{ID: fmt.Sprintf("p%d", i), ForumID: seedID("go"), CreatedAt: time.Now()})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.Number != i+1 {
			t.Fatalf("expected number %d, got %d", i+1, created.Number)
		}
	}

	// Numbering is per forum, not global.
	created, _ := posts.Create(ctx, &domain.Post{ID: "q1", ForumID: seedID("rust")})
	if created.Number != 1 {
		t.Fatalf("expected a fresh forum to start at 1, got %d", created.Number)
	}
}

// N concurrent creators in the same forum must end up with exactly the
// numbers 1..N, no duplicates and no gaps.
func TestPostRepository_ConcurrentNumbersAreDense(t *testing.T) {
	store := NewStore()
	posts := NewPostRepository(store)
	ctx := context.Background()

	const n = 100
	results := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := posts.Create(ctx, &domain.Post{ID: fmt.Sprintf("p%d", i), ForumID: "f1"})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			results <- created.Number
		}(i)
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, n)
	for number := range results {
		if seen[number] {
			t.Fatalf("duplicate post number %d", number)
		}
		seen[number] = true
	}
	for i := 1; i <= n; i++ {
		if !seen[i] {
			t.Fatalf("missing post number %d", i)
		}
	}
}

func TestPostRepository_ListByForumAscending(t *testing.T) {
	store := NewStore()
	posts := NewPostRepository(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = posts.Create(ctx, &domain.Post{ID: fmt.Sprintf("p%d", i), ForumID: "f1"})
	}

	listed, err := posts.ListByForum(ctx, "f1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i, p := range listed {
		if p.Number != i+1 {
			t.Fatalf("expected ascending numbers, got %d at index %d", p.Number, i)
		}
	}
}

func TestCommentRepository_CreationOrder(t *testing.T) {
	store := NewStore()
	comments := NewCommentRepository(store)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = comments.Create(ctx, &domain.Comment{ID: fmt.Sprintf("c%d", i), PostID: "p1"})
	}
	_ = comments.Create(ctx, &domain.Comment{ID: "other", PostID: "p2"})

	listed, _ := comments.ListByPost(ctx, "p1")
	if len(listed) != 4 {
		t.Fatalf("expected 4 comments, got %d", len(listed))
	}
	for i, c := range listed {
		if c.ID != fmt.Sprintf("c%d", i) {
			t.Fatalf("comments out of creation order: %s at index %d", c.ID, i)
		}
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	store := NewStore()
	Seed(store, 1)
	users := NewUserRepository(store)
	ctx := context.Background()

	if err := users.UpdatePassword(ctx, seedID("user1"), "user1", "newpw"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	u, _ := users.FindByID(ctx, seedID("user1"))
	if u.Password != "newpw" {
		t.Fatalf("password not updated: %q", u.Password)
	}

	// The stale current password no longer matches.
	if err := users.UpdatePassword(ctx, seedID("user1"), "user1", "again"); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	if err := users.UpdatePassword(ctx, "ghost", "x", "y"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ReadsReturnCopies(t *testing.T) {
	store := NewStore()
	Seed(store, 1)
	users := NewUserRepository(store)
	ctx := context.Background()

	u, _ := users.FindByUsername(ctx, "admin")
	u.Password = "tampered"

	again, _ := users.FindByUsername(ctx, "admin")
	if again.Password != "admin" {
		t.Fatalf("mutation of a returned user leaked into the store")
	}
}
