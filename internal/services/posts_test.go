package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"discuss/internal/models"
	"discuss/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newestPosts returns n posts ordered newest first, as the repository would.
func newestPosts(n int) []models.Post {
	now := time.Now()
	posts := make([]models.Post, n)
	for i := range posts {
		posts[i] = models.Post{
			ID:        fmt.Sprintf("post-%d", n-i),
			UserID:    "user-1",
			Title:     fmt.Sprintf("Post %d", n-i),
			Content:   "*hi*",
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func TestGetPosts_FirstPage(t *testing.T) {
	all := newestPosts(12)
	posts := new(MockPostRepository)
	posts.On("Count", mock.Anything).Return(int64(12), nil)
	posts.On("List", mock.Anything, 0, 5).Return(all[:5], nil)

	result, err := NewPostService(posts, nil).GetPosts(context.Background(), Page{Page: 1, Limit: 5})

	require.NoError(t, err)
	require.Len(t, result.Posts, 5)
	assert.Equal(t, "post-12", result.Posts[0].ID)
	assert.Equal(t, "post-8", result.Posts[4].ID)
	assert.Equal(t, "<p><em>hi</em></p>", result.Posts[0].ContentHTML)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	posts.AssertExpectations(t)
}

func TestGetPosts_LastPartialPage(t *testing.T) {
	all := newestPosts(12)
	posts := new(MockPostRepository)
	posts.On("Count", mock.Anything).Return(int64(12), nil)
	posts.On("List", mock.Anything, 10, 5).Return(all[10:], nil)

	result, err := NewPostService(posts, nil).GetPosts(context.Background(), Page{Page: 3, Limit: 5})

	require.NoError(t, err)
	assert.Len(t, result.Posts, 2)
}

func TestGetPosts_PageBeyondLimit(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("Count", mock.Anything).Return(int64(12), nil)

	result, err := NewPostService(posts, nil).GetPosts(context.Background(), Page{Page: 4, Limit: 5})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPageBeyondLimit)
	posts.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPosts_NoPosts(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("Count", mock.Anything).Return(int64(0), nil)

	_, err := NewPostService(posts, nil).GetPosts(context.Background(), Page{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrPostsNotFound)
}

func TestGetPosts_StoreFailure(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := NewPostService(posts, nil).GetPosts(context.Background(), Page{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrUnknown)
}

func TestGetUserPosts_AppliesWindow(t *testing.T) {
	all := newestPosts(7)
	posts := new(MockPostRepository)
	posts.On("CountByUser", mock.Anything, "user-1").Return(int64(7), nil)
	posts.On("ListByUser", mock.Anything, "user-1", 3, 3).Return(all[3:6], nil)

	result, err := NewPostService(posts, nil).GetUserPosts(context.Background(), "user-1", Page{Page: 2, Limit: 3})

	require.NoError(t, err)
	assert.Len(t, result.Posts, 3)
	assert.Equal(t, "post-4", result.Posts[0].ID)
	posts.AssertExpectations(t)
}

func TestGetUserPosts_None(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("CountByUser", mock.Anything, "user-1").Return(int64(0), nil)

	_, err := NewPostService(posts, nil).GetUserPosts(context.Background(), "user-1", Page{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrPostsNotFound)
}

func TestGetUserPosts_PageBeyondLimit(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("CountByUser", mock.Anything, "user-1").Return(int64(2), nil)

	_, err := NewPostService(posts, nil).GetUserPosts(context.Background(), "user-1", Page{Page: 2, Limit: 10})

	assert.ErrorIs(t, err, ErrPageBeyondLimit)
}

func TestCreatePost(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1"}, nil)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.UserID == "user-1" && p.Title == "Hello" && p.Content == "# Heading"
	})).Run(func(args mock.Arguments) {
		p := args.Get(1).(*models.Post)
		p.ID = "post-1"
		p.User = &models.User{ID: "user-1", Username: "alice"}
	}).Return(nil)

	post, err := NewPostService(posts, users).CreatePost(context.Background(), "user-1", "  Hello ", "# Heading")

	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "alice", post.User.Username)
	assert.Contains(t, post.ContentHTML, "<h1")
	posts.AssertExpectations(t)
}

func TestCreatePost_KeepsAngleBracketsInTitle(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1"}, nil)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.Title == "Use <T> generics"
	})).Return(nil)

	post, err := NewPostService(posts, users).CreatePost(context.Background(), "user-1", " Use <T> generics ", "")

	require.NoError(t, err)
	assert.Equal(t, "Use <T> generics", post.Title)
	posts.AssertExpectations(t)
}

func TestCreatePost_TitleRequired(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		posts := new(MockPostRepository)
		users := new(MockUserRepository)

		// title is checked before anything else, even a missing user
		_, err := NewPostService(posts, users).CreatePost(context.Background(), "", title, "body")

		assert.ErrorIs(t, err, ErrTitleRequired, "title %q", title)
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreatePost_EmptyUser(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)

	_, err := NewPostService(posts, users).CreatePost(context.Background(), "", "Hello", "")

	assert.ErrorIs(t, err, ErrUserNotFound)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreatePost_UnknownUser(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := NewPostService(posts, users).CreatePost(context.Background(), "ghost", "Hello", "")

	assert.ErrorIs(t, err, ErrUserNotFound)
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeletePost(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, "post-1").Return(&models.Post{ID: "post-1", UserID: "user-1"}, nil)
	posts.On("Delete", mock.Anything, "post-1").Return(nil)

	msg, err := NewPostService(posts, nil).DeletePost(context.Background(), "post-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Post deleted successfully", msg)
	posts.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, "post-1").Return(nil, repository.ErrNotFound)

	_, err := NewPostService(posts, nil).DeletePost(context.Background(), "post-1", "user-1")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost_NotOwner(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, "post-1").Return(&models.Post{ID: "post-1", UserID: "user-1"}, nil)

	_, err := NewPostService(posts, nil).DeletePost(context.Background(), "post-1", "user-2")

	assert.ErrorIs(t, err, ErrNotPostOwner)
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePost_DeletedConcurrently(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, "post-1").Return(&models.Post{ID: "post-1", UserID: "user-1"}, nil)
	posts.On("Delete", mock.Anything, "post-1").Return(repository.ErrNotFound)

	_, err := NewPostService(posts, nil).DeletePost(context.Background(), "post-1", "user-1")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

// Malformed ids reach the repository, which reports them as not found.
func TestDeletePost_MalformedID(t *testing.T) {
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, "abc").Return(nil, repository.ErrNotFound)

	_, err := NewPostService(posts, nil).DeletePost(context.Background(), "abc", "user-1")

	assert.ErrorIs(t, err, ErrPostNotFound)
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
