package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"discuss/internal/middleware"
	"discuss/internal/models"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testPaging = Paging{DefaultLimit: 10, MaxLimit: 100}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// asUser stands in for AuthRequired.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func perform(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) errorBody {
	var body errorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetMe(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUsers(ctx context.Context, page services.Page) (*services.UsersResult, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UsersResult), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, in services.SignUpInput) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) GetPosts(ctx context.Context, page services.Page) (*services.PostsResult, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PostsResult), args.Error(1)
}

func (m *MockPostService) GetUserPosts(ctx context.Context, userID string, page services.Page) (*services.PostsResult, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PostsResult), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error) {
	args := m.Called(ctx, userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, userID string) (string, error) {
	args := m.Called(ctx, postID, userID)
	return args.String(0), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) GetLikes(ctx context.Context, postID string, page services.Page) (*services.LikesResult, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LikesResult), args.Error(1)
}

func (m *MockLikeService) CreateLike(ctx context.Context, postID, userID string) (*services.LikeResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LikeResult), args.Error(1)
}

func (m *MockLikeService) DeleteLike(ctx context.Context, postID, likerID, actorID string) (*services.MessageResult, error) {
	args := m.Called(ctx, postID, likerID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.MessageResult), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) GetComments(ctx context.Context, postID string, page services.Page) (*services.CommentsResult, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CommentsResult), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, postID, userID, content string) (*models.Comment, error) {
	args := m.Called(ctx, postID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID, userID, content string) (*models.Comment, error) {
	args := m.Called(ctx, commentID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, userID string) (string, error) {
	args := m.Called(ctx, commentID, userID)
	return args.String(0), args.Error(1)
}
