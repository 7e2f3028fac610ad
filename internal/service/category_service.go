package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// CategoryService implements the Connect CategoryService
type CategoryService struct {
	protoconnect.UnimplementedCategoryServiceHandler
	*Core
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(core *Core) *CategoryService {
	return &CategoryService{Core: core}
}

// ListCategories returns every expense category.
func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[pb.ListCategoriesRequest]) (*connect.Response[pb.ListCategoriesResponse], error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		slog.Error("ListCategories failed", "error", err)
		return nil, connectError(err)
	}

	resp := &pb.ListCategoriesResponse{Categories: make([]*pb.Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = &pb.Category{Id: c.ID, Grouping: c.Grouping, Name: c.Name}
	}
	return connect.NewResponse(resp), nil
}
