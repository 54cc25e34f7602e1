package services

import (
	"context"
	"errors"
	"strings"

	"discuss/internal/models"
	"discuss/internal/repository"
)

const commentDeletedMessage = "Comment deleted successfully"

type CommentsResult struct {
	Comments   []models.Comment `json:"comments"`
	Pagination Pagination       `json:"pagination"`
}

type CommentService interface {
	GetComments(ctx context.Context, postID string, page Page) (*CommentsResult, error)
	CreateComment(ctx context.Context, postID, userID, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID string) (string, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) CommentService {
	return &commentService{comments: comments, posts: posts, users: users}
}

func (s *commentService) GetComments(ctx context.Context, postID string, page Page) (*CommentsResult, error) {
	if !page.valid() {
		return nil, ErrInvalidPagination
	}
	if err := postExists(ctx, s.posts, "GetComments", postID); err != nil {
		return nil, err
	}

	total, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return nil, unknown("GetComments", err)
	}
	if err := page.bounds(total, ErrCommentsNotFound, ErrPageBeyondLimit); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID, page.Skip(), page.Limit)
	if err != nil {
		return nil, unknown("GetComments", err)
	}
	if len(comments) == 0 {
		return nil, ErrCommentsNotFound
	}

	return &CommentsResult{Comments: comments, Pagination: page.meta(total)}, nil
}

func (s *commentService) CreateComment(ctx context.Context, postID, userID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if err := postExists(ctx, s.posts, "CreateComment", postID); err != nil {
		return nil, err
	}

	if userID == "" {
		return nil, ErrUserNotFound
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, unknown("CreateComment", err)
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, unknown("CreateComment", err)
	}
	return comment, nil
}

// authored loads the comment and checks the caller wrote it.
func (s *commentService) authored(ctx context.Context, op, commentID, userID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return unknown(op, err)
	}
	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}
	return nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, userID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if err := s.authored(ctx, "UpdateComment", commentID, userID); err != nil {
		return nil, err
	}

	comment, err := s.comments.UpdateContent(ctx, commentID, content)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, unknown("UpdateComment", err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) (string, error) {
	if err := s.authored(ctx, "DeleteComment", commentID, userID); err != nil {
		return "", err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCommentNotFound
		}
		return "", unknown("DeleteComment", err)
	}
	return commentDeletedMessage, nil
}
