package services

import (
	"log"
)

// Kind classifies a domain error; the route layer maps kinds to HTTP statuses.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Code is the stable machine-readable error identifier returned to clients.
type Code string

const (
	CodeUnknown                     Code = "UNKNOWN"
	CodeInvalidInput                Code = "INVALID_INPUT"
	CodeInvalidPagination           Code = "INVALID_PAGINATION"
	CodeUserNotFound                Code = "USER_NOT_FOUND"
	CodeUsersNotFound               Code = "USERS_NOT_FOUND"
	CodePostNotFound                Code = "POST_NOT_FOUND"
	CodePostsNotFound               Code = "POSTS_NOT_FOUND"
	CodeTitleRequired               Code = "TITLE_REQUIRED"
	CodePageBeyondLimit             Code = "PAGE_BEYOND_LIMIT"
	CodePageNotFound                Code = "PAGE_NOT_FOUND"
	CodeLikeNotFound                Code = "LIKE_NOT_FOUND"
	CodeLikesNotFound               Code = "LIKES_NOT_FOUND"
	CodeAlreadyLiked                Code = "ALREADY_LIKED"
	CodeCommentNotFound             Code = "COMMENT_NOT_FOUND"
	CodeCommentsNotFound            Code = "COMMENTS_NOT_FOUND"
	CodeContentRequired             Code = "CONTENT_REQUIRED"
	CodeConflictingUsername         Code = "CONFLICTING_USERNAME"
	CodeConflictingEmail            Code = "CONFLICTING_EMAIL"
	CodeIncorrectUsernameOrPassword Code = "INCORRECT_USERNAME_OR_PASSWORD"
	CodeUnauthorized                Code = "UNAUTHORIZED"
)

type Error struct {
	Code    Code
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// Is matches on code and kind so errors with a custom message still compare
// equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

var (
	ErrUnknown           = &Error{Code: CodeUnknown, Kind: KindUnknown, Message: "Unknown error"}
	ErrInvalidInput      = &Error{Code: CodeInvalidInput, Kind: KindInvalid, Message: "Invalid input"}
	ErrInvalidPagination = &Error{Code: CodeInvalidPagination, Kind: KindInvalid, Message: "page and limit must be positive integers"}
	ErrUnauthorized      = &Error{Code: CodeUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}

	ErrPageBeyondLimit = &Error{Code: CodePageBeyondLimit, Kind: KindNotFound, Message: "No results found on the requested page"}

	ErrUserNotFound  = &Error{Code: CodeUserNotFound, Kind: KindNotFound, Message: "User not found"}
	ErrUsersNotFound = &Error{Code: CodeUsersNotFound, Kind: KindNotFound, Message: "No users found"}

	ErrPostNotFound  = &Error{Code: CodePostNotFound, Kind: KindNotFound, Message: "Post not found"}
	ErrPostsNotFound = &Error{Code: CodePostsNotFound, Kind: KindNotFound, Message: "No posts found"}
	ErrTitleRequired = &Error{Code: CodeTitleRequired, Kind: KindInvalid, Message: "Title is required"}
	ErrNotPostOwner  = &Error{Code: CodeUserNotFound, Kind: KindForbidden, Message: "You can only delete your own posts"}

	ErrLikeNotFound  = &Error{Code: CodeLikeNotFound, Kind: KindNotFound, Message: "Like not found"}
	ErrLikesNotFound = &Error{Code: CodeLikesNotFound, Kind: KindNotFound, Message: "No likes found on this post"}
	ErrLikesPage     = &Error{Code: CodePageNotFound, Kind: KindNotFound, Message: "No likes found on the requested page"}
	ErrAlreadyLiked  = &Error{Code: CodeAlreadyLiked, Kind: KindConflict, Message: "Post already liked"}
	ErrNotLikeOwner  = &Error{Code: CodeUserNotFound, Kind: KindForbidden, Message: "You can only remove your own likes"}

	ErrCommentNotFound  = &Error{Code: CodeCommentNotFound, Kind: KindNotFound, Message: "Comment not found"}
	ErrCommentsNotFound = &Error{Code: CodeCommentsNotFound, Kind: KindNotFound, Message: "No comments found on this post"}
	ErrContentRequired  = &Error{Code: CodeContentRequired, Kind: KindInvalid, Message: "Content is required"}
	ErrNotCommentAuthor = &Error{Code: CodeUserNotFound, Kind: KindForbidden, Message: "You can only change your own comments"}

	ErrConflictingUsername = &Error{Code: CodeConflictingUsername, Kind: KindConflict, Message: "Username already exists"}
	ErrConflictingEmail    = &Error{Code: CodeConflictingEmail, Kind: KindConflict, Message: "Email already registered"}
	ErrIncorrectLogin      = &Error{Code: CodeIncorrectUsernameOrPassword, Kind: KindUnauthorized, Message: "Incorrect username or password"}
)

func invalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Kind: KindInvalid, Message: message}
}

// unknown logs an unexpected persistence failure and hides it behind ErrUnknown.
func unknown(op string, err error) error {
	log.Printf("%s: %v", op, err)
	return ErrUnknown
}
