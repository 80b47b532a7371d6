package usecase

import (
	"context"
	"time"

	"github.com/fekuna/go-shop/internal/category"
	"github.com/fekuna/go-shop/internal/category/dto"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) Create(ctx context.Context, input *dto.CreateCategoryInput) (*dto.CategoryResponse, error) {
	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperrors.NotFound("parent category %s not found", *input.ParentID)
		}
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ParentID:    input.ParentID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return toResponse(cat, []string{}), nil
}

func (uc *categoryUseCase) Get(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("category %s not found", id)
	}

	children, err := uc.repo.FindChildIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(cat, children), nil
}

func (uc *categoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// One pass over the flat list yields every category's children.
	childrenByParent := make(map[string][]string)
	for _, c := range categories {
		if c.ParentID != nil {
			childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], c.ID)
		}
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		children := childrenByParent[c.ID]
		if children == nil {
			children = []string{}
		}
		responses[i] = *toResponse(&c, children)
	}
	return responses, nil
}

func (uc *categoryUseCase) Update(ctx context.Context, input *dto.UpdateCategoryInput) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("category %s not found", input.ID)
	}

	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperrors.NotFound("parent category %s not found", *input.ParentID)
		}
		if err := uc.checkCycle(ctx, cat.ID, parent); err != nil {
			return nil, err
		}
		cat.ParentID = input.ParentID
	}

	if input.Name != "" {
		cat.Name = input.Name
	}
	if input.Description != "" {
		cat.Description = input.Description
	}
	if input.Image != "" {
		cat.Image = input.Image
	}
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	children, err := uc.repo.FindChildIDs(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	return toResponse(cat, children), nil
}

// checkCycle walks up from the candidate parent and rejects the update when
// the category would become its own ancestor.
func (uc *categoryUseCase) checkCycle(ctx context.Context, id string, parent *model.Category) error {
	current := parent
	for current != nil {
		if current.ID == id {
			return apperrors.BadRequest("category %s cannot become its own ancestor", id)
		}
		if current.ParentID == nil {
			return nil
		}
		next, err := uc.repo.FindByID(ctx, *current.ParentID)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id string) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return apperrors.NotFound("category %s not found", id)
	}

	hasProducts, err := uc.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return apperrors.Conflict("cannot delete category %s because it has associated products", id)
	}

	if err := uc.repo.DeleteDetachingChildren(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

func toResponse(c *model.Category, children []string) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		ParentID:    c.ParentID,
		Children:    children,
	}
}
