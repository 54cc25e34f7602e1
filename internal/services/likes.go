package services

import (
	"context"
	"errors"

	"discuss/internal/models"
	"discuss/internal/repository"
)

const (
	likedMessage   = "Liked Post!"
	unlikedMessage = "Unliked Post!"
)

type LikesResult struct {
	Likes      []models.Like `json:"likes"`
	Pagination Pagination    `json:"pagination"`
}

type LikeResult struct {
	Message string       `json:"message"`
	Like    *models.Like `json:"like"`
}

type MessageResult struct {
	Message string `json:"message"`
}

// Re-liking a post is rejected with ErrAlreadyLiked; it is never an upsert.
type LikeService interface {
	GetLikes(ctx context.Context, postID string, page Page) (*LikesResult, error)
	CreateLike(ctx context.Context, postID, userID string) (*LikeResult, error)
	// DeleteLike removes likerID's like on postID on behalf of actorID.
	DeleteLike(ctx context.Context, postID, likerID, actorID string) (*MessageResult, error)
}

type likeService struct {
	likes repository.LikeRepository
	posts repository.PostRepository
	users repository.UserRepository
}

func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, users repository.UserRepository) LikeService {
	return &likeService{likes: likes, posts: posts, users: users}
}

// postExists reports ErrPostNotFound, or an unknown error tagged with op.
func postExists(ctx context.Context, posts repository.PostRepository, op, postID string) error {
	if postID == "" {
		return ErrPostNotFound
	}
	_, err := posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return unknown(op, err)
	}
	return nil
}

func (s *likeService) GetLikes(ctx context.Context, postID string, page Page) (*LikesResult, error) {
	if !page.valid() {
		return nil, ErrInvalidPagination
	}
	if err := postExists(ctx, s.posts, "GetLikes", postID); err != nil {
		return nil, err
	}

	total, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, unknown("GetLikes", err)
	}
	if err := page.bounds(total, ErrLikesNotFound, ErrLikesPage); err != nil {
		return nil, err
	}

	likes, err := s.likes.ListByPost(ctx, postID, page.Skip(), page.Limit)
	if err != nil {
		return nil, unknown("GetLikes", err)
	}
	if len(likes) == 0 {
		return nil, ErrLikesNotFound
	}

	return &LikesResult{Likes: likes, Pagination: page.meta(total)}, nil
}

func (s *likeService) CreateLike(ctx context.Context, postID, userID string) (*LikeResult, error) {
	if err := postExists(ctx, s.posts, "CreateLike", postID); err != nil {
		return nil, err
	}

	if userID == "" {
		return nil, ErrUserNotFound
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, unknown("CreateLike", err)
	}

	_, err := s.likes.Find(ctx, postID, userID)
	if err == nil {
		return nil, ErrAlreadyLiked
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unknown("CreateLike", err)
	}

	like := &models.Like{PostID: postID, UserID: userID}
	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyLiked
		}
		return nil, unknown("CreateLike", err)
	}

	return &LikeResult{Message: likedMessage, Like: like}, nil
}

func (s *likeService) DeleteLike(ctx context.Context, postID, likerID, actorID string) (*MessageResult, error) {
	if err := postExists(ctx, s.posts, "DeleteLike", postID); err != nil {
		return nil, err
	}
	if likerID == "" {
		likerID = actorID
	}

	like, err := s.likes.Find(ctx, postID, likerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLikeNotFound
	}
	if err != nil {
		return nil, unknown("DeleteLike", err)
	}

	if like.UserID != actorID {
		return nil, ErrNotLikeOwner
	}

	if err := s.likes.Delete(ctx, postID, likerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, unknown("DeleteLike", err)
	}
	return &MessageResult{Message: unlikedMessage}, nil
}
