package services

import (
	"context"
	"fmt"
	"time"

	"agendahub/internal/domain"
)

type categoryService struct {
	categories     domain.CategoryRepository
	events         domain.EventRepository
	contextTimeout time.Duration
}

// NewCategoryService returns the CategoryService implementation.
func NewCategoryService(categories domain.CategoryRepository, events domain.EventRepository, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		categories:     categories,
		events:         events,
		contextTimeout: timeout,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*domain.EventCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	category, err := domain.NewEventCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category %q: %w", category.Name, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.EventCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.categories.List(ctx)
}

func (s *categoryService) RenameCategory(ctx context.Context, id, name string) (*domain.EventCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	renamed, err := category.Rename(name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.UpdateName(ctx, renamed.ID, renamed.Name); err != nil {
		return nil, fmt.Errorf("rename category %s: %w", id, err)
	}
	return renamed, nil
}

// DeleteCategory rejects deletion while any event references the category.
// The repository enforces the same invariant through the foreign key, so a
// racing insert between the count and the delete still cannot orphan an
// event.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.events.CountByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("count events for category %s: %w", id, err)
	}
	if n > 0 {
		return domain.ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}
