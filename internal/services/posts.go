package services

import (
	"context"
	"errors"
	"strings"

	"discuss/internal/models"
	"discuss/internal/repository"
	"discuss/internal/utils"
)

const postDeletedMessage = "Post deleted successfully"

type PostsResult struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

type PostService interface {
	GetPosts(ctx context.Context, page Page) (*PostsResult, error)
	GetUserPosts(ctx context.Context, userID string, page Page) (*PostsResult, error)
	CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) (string, error)
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

func renderPosts(posts []models.Post) {
	for i := range posts {
		posts[i].ContentHTML = utils.RenderMarkdown(posts[i].Content)
	}
}

func (s *postService) GetPosts(ctx context.Context, page Page) (*PostsResult, error) {
	if !page.valid() {
		return nil, ErrInvalidPagination
	}

	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, unknown("GetPosts", err)
	}
	if err := page.bounds(total, ErrPostsNotFound, ErrPageBeyondLimit); err != nil {
		return nil, err
	}

	posts, err := s.posts.List(ctx, page.Skip(), page.Limit)
	if err != nil {
		return nil, unknown("GetPosts", err)
	}
	if len(posts) == 0 {
		return nil, ErrPostsNotFound
	}
	renderPosts(posts)

	return &PostsResult{Posts: posts, Pagination: page.meta(total)}, nil
}

func (s *postService) GetUserPosts(ctx context.Context, userID string, page Page) (*PostsResult, error) {
	if !page.valid() {
		return nil, ErrInvalidPagination
	}

	total, err := s.posts.CountByUser(ctx, userID)
	if err != nil {
		return nil, unknown("GetUserPosts", err)
	}
	if err := page.bounds(total, ErrPostsNotFound, ErrPageBeyondLimit); err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByUser(ctx, userID, page.Skip(), page.Limit)
	if err != nil {
		return nil, unknown("GetUserPosts", err)
	}
	if len(posts) == 0 {
		return nil, ErrPostsNotFound
	}
	renderPosts(posts)

	return &PostsResult{Posts: posts, Pagination: page.meta(total)}, nil
}

func (s *postService) CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error) {
	// titles are plain text; JSON clients escape on display
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, unknown("CreatePost", err)
	}

	post := &models.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, unknown("CreatePost", err)
	}
	post.ContentHTML = utils.RenderMarkdown(post.Content)
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, userID string) (string, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrPostNotFound
	}
	if err != nil {
		return "", unknown("DeletePost", err)
	}

	if post.UserID != userID {
		return "", ErrNotPostOwner
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPostNotFound
		}
		return "", unknown("DeletePost", err)
	}
	return postDeletedMessage, nil
}
