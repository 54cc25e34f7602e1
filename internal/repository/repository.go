// Package repository holds the persistence layer. Every service receives the
// repositories it needs explicitly; nothing here is a process-wide handle.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// invalidTextRepresentation is the SQLSTATE postgres raises when a path id is
// not a valid uuid. No row can match such an id.
const invalidTextRepresentation = "22P02"

// translate maps GORM sentinel errors onto the repository ones.
// Requires gorm.Config.TranslateError for the duplicate case.
func translate(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation:
		return ErrNotFound
	}
	return err
}

func newestFirst() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}
}

// Repositories bundles the GORM-backed repositories sharing one connection.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Likes    LikeRepository
	Comments CommentRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Likes:    NewLikeRepository(db),
		Comments: NewCommentRepository(db),
	}
}
