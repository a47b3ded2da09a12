package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

// PostService manages learning posts. Creation fans out a notification to
// every active student.
type PostService interface {
	Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	List(ctx context.Context, q *dto.PageQuery) ([]dto.PostResponse, int64, error)
}

type postService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewPostService creates the PostService.
func NewPostService(repo *repository.Repository, notifier notify.Notifier, logger *zap.Logger) PostService {
	return &postService{repo: repo, notifier: notifier, logger: logger}
}

func (s *postService) Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &model.LearningPost{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("gagal menyimpan materi", zap.Error(err))
		return nil, err
	}

	s.notifier.Dispatch(ctx, []notify.Event{{
		Type:     model.NotifPost,
		Title:    "Materi baru",
		Message:  fmt.Sprintf("Materi baru telah diunggah: %s", post.Title),
		Audience: notify.Audience{Roles: []string{model.RoleSiswa}},
	}})

	resp := toPostResponse(post)
	return &resp, nil
}

func (s *postService) List(ctx context.Context, q *dto.PageQuery) ([]dto.PostResponse, int64, error) {
	posts, total, err := s.repo.Post.List(ctx, q.Offset(), q.PageSize)
	if err != nil {
		s.logger.Error("gagal mengambil daftar materi", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, toPostResponse(&posts[i]))
	}
	return result, total, nil
}

func toPostResponse(post *model.LearningPost) dto.PostResponse {
	resp := dto.PostResponse{
		ID:        post.PostID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		resp.AuthorName = post.Author.Name
	}
	return resp
}
