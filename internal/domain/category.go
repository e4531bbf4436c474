package domain

import (
	"context"
	"strings"
)

// EventCategory groups agenda events under a unique name.
type EventCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewEventCategory returns a validated EventCategory. ID is set by the
// repository on create. The name is trimmed and must be non-empty.
func NewEventCategory(name string) (*EventCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError(ReasonInvalidName, "category name is required")
	}
	return &EventCategory{Name: name}, nil
}

// Rename returns a copy of the category with the new validated name.
// The receiver is not modified.
func (c *EventCategory) Rename(name string) (*EventCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError(ReasonInvalidName, "category name is required")
	}
	out := *c
	out.Name = name
	return &out, nil
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, category *EventCategory) error
	GetByID(ctx context.Context, id string) (*EventCategory, error)
	// GetByName resolves a category by exact name match and returns
	// ErrCategoryNotFound on a miss.
	GetByName(ctx context.Context, name string) (*EventCategory, error)
	List(ctx context.Context) ([]*EventCategory, error)
	UpdateName(ctx context.Context, id, name string) error
	// Delete removes an unreferenced category. It returns ErrCategoryInUse
	// when events still reference it.
	Delete(ctx context.Context, id string) error
}

// CategoryService defines the business logic for category management.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*EventCategory, error)
	ListCategories(ctx context.Context) ([]*EventCategory, error)
	RenameCategory(ctx context.Context, id, name string) (*EventCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}
