package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
	"github.com/demoforums/forum-api/internal/infrastructure/db/memory"
)

// commentEnv is an empty store with one forum and one post, so comment
// counts start at zero.
func commentEnv(t *testing.T) (*CommentService, *PostService) {
	t.Helper()
	store := memory.NewStore()
	forums := memory.NewForumRepository(store)
	posts := memory.NewPostRepository(store)
	comments := memory.NewCommentRepository(store)

	forumSvc := NewForumService(forums, zerolog.Nop())
	postSvc := NewPostService(forums, posts, zerolog.Nop())
	commentSvc := NewCommentService(forums, posts, comments, zerolog.Nop())

	ctx := context.Background()
	if _, err := forumSvc.CreateForum(ctx, ports.CreateForumInput{Slug: "go", Title: "Go", Description: "d", Category: "Technology"}); err != nil {
		t.Fatalf("seed forum: %v", err)
	}
	if _, err := postSvc.CreatePost(ctx, ports.CreatePostInput{ForumSlug: "go", Title: "t", Content: "c", AuthorID: "u1"}); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return commentSvc, postSvc
}

func TestCommentService_CreateAndListInOrder(t *testing.T) {
	svc, _ := commentEnv(t)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := svc.CreateComment(ctx, ports.CreateCommentInput{
			ForumSlug: "go", PostNumber: 1, Content: content, AuthorID: "u1",
		}); err != nil {
			t.Fatalf("create %q failed: %v", content, err)
		}
	}

	comments, err := svc.ListComments(ctx, "go", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Content != want {
			t.Fatalf("comments out of creation order: %q at index %d", comments[i].Content, i)
		}
	}
}

func TestCommentService_InvalidPostNumberDoesNotMutate(t *testing.T) {
	svc, _ := commentEnv(t)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, ports.CreateCommentInput{
		ForumSlug: "go", PostNumber: 9999, Content: "dangling", AuthorID: "u1",
	})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	comments, _ := svc.ListComments(ctx, "go", 1)
	if len(comments) != 0 {
		t.Fatalf("failed create must not touch the comment collection: %d comments", len(comments))
	}
}

func TestCommentService_ListUnknownForumOrPost(t *testing.T) {
	svc, _ := commentEnv(t)
	ctx := context.Background()

	if _, err := svc.ListComments(ctx, "nope", 1); !errors.Is(err, domain.ErrForumNotFound) {
		t.Fatalf("expected ErrForumNotFound, got %v", err)
	}
	if _, err := svc.ListComments(ctx, "go", 42); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
