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

const compilationTitleMax = 50

type CompilationService struct {
	log    *slog.Logger
	store  Store
	events *EventService
}

func NewCompilationService(log *slog.Logger, store Store, events *EventService) *CompilationService {
	return &CompilationService{log: log, store: store, events: events}
}

func (s *CompilationService) AddCompilation(ctx context.Context, req models.NewCompilationRequest) (models.CompilationDto, error) {
	const op = "service.CompilationService.AddCompilation"

	title, err := compilationTitle(req.Title)
	if err != nil {
		return models.CompilationDto{}, err
	}

	c := models.Compilation{
		Title:    title,
		Pinned:   req.Pinned,
		EventIDs: uniqueIDs(req.Events),
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkEvents(ctx, c.EventIDs); err != nil {
			return err
		}

		id, err := s.store.SaveCompilation(ctx, c)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		c.ID = id

		return nil
	})
	if err != nil {
		return models.CompilationDto{}, err
	}

	s.log.Info("compilation created", slog.Int64("compilation_id", c.ID), slog.Int("events", len(c.EventIDs)))

	return s.toDto(ctx, c)
}

func (s *CompilationService) UpdateCompilation(ctx context.Context, id int64, req models.UpdateCompilationRequest) (models.CompilationDto, error) {
	const op = "service.CompilationService.UpdateCompilation"

	var updated models.Compilation

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		c, err := getCompilation(ctx, s.store, id)
		if err != nil {
			return err
		}

		if req.Title != nil {
			if c.Title, err = compilationTitle(*req.Title); err != nil {
				return err
			}
		}
		if req.Pinned != nil {
			c.Pinned = *req.Pinned
		}
		if req.Events != nil {
			c.EventIDs = uniqueIDs(req.Events)
			if err = s.checkEvents(ctx, c.EventIDs); err != nil {
				return err
			}
		}

		if err = s.store.UpdateCompilation(ctx, *c); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		updated = *c

		return nil
	})
	if err != nil {
		return models.CompilationDto{}, err
	}

	return s.toDto(ctx, updated)
}

func (s *CompilationService) DeleteCompilation(ctx context.Context, id int64) error {
	const op = "service.CompilationService.DeleteCompilation"

	err := s.store.DeleteCompilation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return notFound("compilation with id=%d was not found", id)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *CompilationService) GetCompilations(ctx context.Context, pinned *bool, from, size int) ([]models.CompilationDto, error) {
	const op = "service.CompilationService.GetCompilations"

	off, err := offset(from, size)
	if err != nil {
		return nil, err
	}

	comps, err := s.store.Compilations(ctx, pinned, size, off)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.CompilationDto, 0, len(comps))
	for _, c := range comps {
		dto, err := s.toDto(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}

	return out, nil
}

func (s *CompilationService) GetCompilation(ctx context.Context, id int64) (models.CompilationDto, error) {
	c, err := getCompilation(ctx, s.store, id)
	if err != nil {
		return models.CompilationDto{}, err
	}

	return s.toDto(ctx, *c)
}

func (s *CompilationService) checkEvents(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	events, err := s.store.EventsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load compilation events: %w", err)
	}

	found := make(map[int64]struct{}, len(events))
	for _, e := range events {
		found[e.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return notFound("event with id=%d was not found", id)
		}
	}

	return nil
}

func (s *CompilationService) toDto(ctx context.Context, c models.Compilation) (models.CompilationDto, error) {
	events, err := s.events.shortDtosFor(ctx, c.EventIDs)
	if err != nil {
		return models.CompilationDto{}, fmt.Errorf("compilation %d: %w", c.ID, err)
	}

	return mapper.ToCompilationDto(c, events), nil
}

func compilationTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" || utf8.RuneCountInString(title) > compilationTitleMax {
		return "", invalid("compilation title must be between 1 and %d characters", compilationTitleMax)
	}

	return title, nil
}
