package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"exploreWithMe/internal/mapper"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

const categoryNameMax = 50

type CategoryService struct {
	log   *slog.Logger
	store CategoryStore
}

func NewCategoryService(log *slog.Logger, store CategoryStore) *CategoryService {
	return &CategoryService{log: log, store: store}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.CategoryDto, error) {
	const op = "service.CategoryService.CreateCategory"

	name, err := categoryName(req.Name)
	if err != nil {
		return models.CategoryDto{}, err
	}

	existing, err := s.store.CategoryByName(ctx, name)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.CategoryDto{}, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return models.CategoryDto{}, conflict("category with name %s already exists", name)
	}

	id, err := s.store.SaveCategory(ctx, name)
	if errors.Is(err, storage.ErrExists) {
		return models.CategoryDto{}, conflict("category with name %s already exists", name)
	}
	if err != nil {
		return models.CategoryDto{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("category created", slog.String("op", op), slog.Int64("category_id", id))

	return mapper.ToCategoryDto(models.Category{ID: id, Name: name}), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (models.CategoryDto, error) {
	const op = "service.CategoryService.UpdateCategory"

	name, err := categoryName(req.Name)
	if err != nil {
		return models.CategoryDto{}, err
	}

	c, err := getCategory(ctx, s.store, id)
	if err != nil {
		return models.CategoryDto{}, err
	}

	existing, err := s.store.CategoryByName(ctx, name)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.CategoryDto{}, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil && existing.ID != id {
		return models.CategoryDto{}, conflict("category with name %s already exists", name)
	}

	c.Name = name
	err = s.store.UpdateCategory(ctx, *c)
	if errors.Is(err, storage.ErrExists) {
		return models.CategoryDto{}, conflict("category with name %s already exists", name)
	}
	if err != nil {
		return models.CategoryDto{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.ToCategoryDto(*c), nil
}

// DeleteCategory refuses to delete a category that any event still references.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	const op = "service.CategoryService.DeleteCategory"

	if _, err := getCategory(ctx, s.store, id); err != nil {
		return err
	}

	inUse, err := s.store.CategoryInUse(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if inUse {
		return conflict("category with id=%d is used by events", id)
	}

	err = s.store.DeleteCategory(ctx, id)
	switch {
	case errors.Is(err, storage.ErrReferenced):
		return conflict("category with id=%d is used by events", id)
	case errors.Is(err, storage.ErrNotFound):
		return notFound("category with id=%d was not found", id)
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("category deleted", slog.String("op", op), slog.Int64("category_id", id))

	return nil
}

func (s *CategoryService) GetCategories(ctx context.Context, from, size int) ([]models.CategoryDto, error) {
	const op = "service.CategoryService.GetCategories"

	off, err := offset(from, size)
	if err != nil {
		return nil, err
	}

	cats, err := s.store.Categories(ctx, size, off)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.CategoryDto, 0, len(cats))
	for _, c := range cats {
		out = append(out, mapper.ToCategoryDto(c))
	}

	return out, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (models.CategoryDto, error) {
	c, err := getCategory(ctx, s.store, id)
	if err != nil {
		return models.CategoryDto{}, err
	}

	return mapper.ToCategoryDto(*c), nil
}

func categoryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid("category name cannot be blank")
	}
	if utf8.RuneCountInString(name) > categoryNameMax {
		return "", invalid("category name cannot be longer than %d characters", categoryNameMax)
	}

	return name, nil
}
