package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"exploreWithMe/internal/mapper"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

type RatingService struct {
	log   *slog.Logger
	store Store
}

func NewRatingService(log *slog.Logger, store Store) *RatingService {
	return &RatingService{log: log, store: store}
}

func (s *RatingService) AddRating(ctx context.Context, userID int64, req models.NewRatingRequest) (models.RatingDto, error) {
	const op = "service.RatingService.AddRating"

	if err := checkRate(req.Rate); err != nil {
		return models.RatingDto{}, err
	}

	if _, err := getUser(ctx, s.store, userID); err != nil {
		return models.RatingDto{}, err
	}
	if err := s.publishedEvent(ctx, req.EventID); err != nil {
		return models.RatingDto{}, err
	}

	r := models.Rating{UserID: userID, EventID: req.EventID, Rate: req.Rate}

	id, err := s.store.SaveRating(ctx, r)
	if errors.Is(err, storage.ErrExists) {
		return models.RatingDto{}, conflict("user %d already rated event %d", userID, req.EventID)
	}
	if err != nil {
		return models.RatingDto{}, fmt.Errorf("%s: %w", op, err)
	}
	r.ID = id

	return mapper.ToRatingDto(r), nil
}

func (s *RatingService) UpdateRating(ctx context.Context, userID, ratingID int64, req models.UpdateRatingRequest) (models.RatingDto, error) {
	const op = "service.RatingService.UpdateRating"

	if err := checkRate(req.Rate); err != nil {
		return models.RatingDto{}, err
	}

	r, err := s.ownedRating(ctx, userID, ratingID)
	if err != nil {
		return models.RatingDto{}, err
	}
	if err = s.publishedEvent(ctx, r.EventID); err != nil {
		return models.RatingDto{}, err
	}
	if r.Rate == req.Rate {
		return models.RatingDto{}, invalid("rating %d already has rate %d", ratingID, req.Rate)
	}

	r.Rate = req.Rate
	if err = s.store.UpdateRating(ctx, *r); err != nil {
		return models.RatingDto{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.ToRatingDto(*r), nil
}

func (s *RatingService) DeleteRating(ctx context.Context, userID, ratingID int64) error {
	const op = "service.RatingService.DeleteRating"

	if _, err := s.ownedRating(ctx, userID, ratingID); err != nil {
		return err
	}

	err := s.store.DeleteRating(ctx, ratingID)
	if errors.Is(err, storage.ErrNotFound) {
		return notFound("rating with id=%d was not found", ratingID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetEventRating averages every stored rate of the event.
func (s *RatingService) GetEventRating(ctx context.Context, eventID int64) (models.EventRateDto, error) {
	const op = "service.RatingService.GetEventRating"

	e, err := getEvent(ctx, s.store, eventID)
	if err != nil {
		return models.EventRateDto{}, err
	}

	avg, count, err := s.store.AverageRate(ctx, eventID)
	if err != nil {
		return models.EventRateDto{}, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return models.EventRateDto{}, notFound("event with id=%d has no ratings", eventID)
	}

	return mapper.ToEventRateDto(*e, avg), nil
}

func (s *RatingService) ownedRating(ctx context.Context, userID, ratingID int64) (*models.Rating, error) {
	if _, err := getUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	r, err := getRating(ctx, s.store, ratingID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, conflict("rating %d does not belong to user %d", ratingID, userID)
	}

	return r, nil
}

func (s *RatingService) publishedEvent(ctx context.Context, eventID int64) error {
	e, err := getEvent(ctx, s.store, eventID)
	if err != nil {
		return err
	}
	if e.State != models.EventStatePublished {
		return conflict("event %d is not published", eventID)
	}

	return nil
}

func checkRate(rate int) error {
	if rate < models.MinRate || rate > models.MaxRate {
		return invalid("rate must be between %d and %d", models.MinRate, models.MaxRate)
	}

	return nil
}
