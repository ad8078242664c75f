package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"exploreWithMe/internal/mapper"
	"exploreWithMe/internal/metrics"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

// RequestService handles participation requests. Every operation that can
// change an event's confirmed count locks the event row first, so capacity
// checks and counter updates never race.
type RequestService struct {
	log   *slog.Logger
	store Store
	now   Clock
}

func NewRequestService(log *slog.Logger, store Store, now Clock) *RequestService {
	if now == nil {
		now = time.Now
	}

	return &RequestService{log: log, store: store, now: now}
}

func (s *RequestService) AddRequest(ctx context.Context, userID, eventID int64) (models.ParticipationRequestDto, error) {
	const op = "service.RequestService.AddRequest"

	var saved models.Request

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := getUser(ctx, s.store, userID); err != nil {
			return err
		}

		e, err := lockEvent(ctx, s.store, eventID)
		if err != nil {
			return err
		}

		_, err = s.store.RequestByRequesterAndEvent(ctx, userID, eventID)
		switch {
		case err == nil:
			return conflict("user %d already requested participation in event %d", userID, eventID)
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, err)
		}

		if e.InitiatorID == userID {
			return conflict("initiator can't request participation in own event")
		}
		if e.State != models.EventStatePublished {
			return conflict("event %d is not published", eventID)
		}
		if e.LimitReached() {
			return conflict("participant limit of event %d has been reached", eventID)
		}

		r := models.Request{
			RequesterID: userID,
			EventID:     eventID,
			Created:     s.now(),
			Status:      models.RequestStatusPending,
		}
		if !e.RequestModeration || e.ParticipantLimit == 0 {
			r.Status = models.RequestStatusConfirmed
		}

		id, err := s.store.SaveRequest(ctx, r)
		if errors.Is(err, storage.ErrExists) {
			return conflict("user %d already requested participation in event %d", userID, eventID)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		r.ID = id

		if r.Status == models.RequestStatusConfirmed {
			if err = s.store.AddConfirmed(ctx, eventID, 1); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		saved = r

		return nil
	})
	if err != nil {
		return models.ParticipationRequestDto{}, err
	}

	metrics.ParticipationRequests.WithLabelValues(string(saved.Status)).Inc()
	s.log.Info("participation request created",
		slog.Int64("request_id", saved.ID),
		slog.Int64("event_id", eventID),
		slog.String("status", string(saved.Status)),
	)

	return mapper.ToParticipationRequestDto(saved), nil
}

// CancelRequest cancels the requester's own request. Cancelling a confirmed
// request frees its seat in the same transaction.
func (s *RequestService) CancelRequest(ctx context.Context, userID, requestID int64) (models.ParticipationRequestDto, error) {
	const op = "service.RequestService.CancelRequest"

	var canceled models.Request

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := getUser(ctx, s.store, userID); err != nil {
			return err
		}

		r, err := getRequest(ctx, s.store, requestID)
		if err != nil {
			return err
		}
		if r.RequesterID != userID {
			return conflict("request %d does not belong to user %d", requestID, userID)
		}

		if _, err = lockEvent(ctx, s.store, r.EventID); err != nil {
			return err
		}

		// Re-read under the event lock; moderation may have changed the status.
		if r, err = getRequest(ctx, s.store, requestID); err != nil {
			return err
		}

		if r.Status == models.RequestStatusCanceled {
			canceled = *r
			return nil
		}

		if r.Status == models.RequestStatusConfirmed {
			if err = s.store.AddConfirmed(ctx, r.EventID, -1); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		if err = s.store.UpdateRequestStatus(ctx, r.ID, models.RequestStatusCanceled); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		r.Status = models.RequestStatusCanceled
		canceled = *r

		return nil
	})
	if err != nil {
		return models.ParticipationRequestDto{}, err
	}

	metrics.ParticipationRequests.WithLabelValues(string(models.RequestStatusCanceled)).Inc()

	return mapper.ToParticipationRequestDto(canceled), nil
}

func (s *RequestService) GetUserRequests(ctx context.Context, userID int64) ([]models.ParticipationRequestDto, error) {
	const op = "service.RequestService.GetUserRequests"

	if _, err := getUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	reqs, err := s.store.RequestsByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.ToParticipationRequestDtos(reqs), nil
}

func (s *RequestService) GetEventRequests(ctx context.Context, userID, eventID int64) ([]models.ParticipationRequestDto, error) {
	const op = "service.RequestService.GetEventRequests"

	if _, err := getUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	e, err := getEvent(ctx, s.store, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != userID {
		return nil, conflict("user %d is not the initiator of event %d", userID, eventID)
	}

	reqs, err := s.store.RequestsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.ToParticipationRequestDtos(reqs), nil
}

// UpdateRequestsByUser moderates pending requests of the initiator's event.
// A full event refuses any moderation. Confirmation walks the ids in the
// submitted order and rejects whatever no longer fits under the limit.
func (s *RequestService) UpdateRequestsByUser(
	ctx context.Context,
	userID, eventID int64,
	upd models.RequestStatusUpdate,
) (models.RequestStatusUpdateResult, error) {
	const op = "service.RequestService.UpdateRequestsByUser"

	if upd.Status != models.RequestStatusConfirmed && upd.Status != models.RequestStatusRejected {
		return models.RequestStatusUpdateResult{}, invalid("status must be CONFIRMED or REJECTED")
	}
	if len(upd.RequestIDs) == 0 {
		return models.RequestStatusUpdateResult{}, invalid("requestIds must not be empty")
	}

	ids := uniqueIDs(upd.RequestIDs)

	result := models.RequestStatusUpdateResult{
		ConfirmedRequests: []models.ParticipationRequestDto{},
		RejectedRequests:  []models.ParticipationRequestDto{},
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := getUser(ctx, s.store, userID); err != nil {
			return err
		}

		e, err := lockEvent(ctx, s.store, eventID)
		if err != nil {
			return err
		}
		if e.InitiatorID != userID {
			return conflict("user %d is not the initiator of event %d", userID, eventID)
		}

		reqs, err := s.store.RequestsByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		byID := make(map[int64]models.Request, len(reqs))
		for _, r := range reqs {
			byID[r.ID] = r
		}

		ordered := make([]models.Request, 0, len(ids))
		for _, id := range ids {
			r, ok := byID[id]
			if !ok || r.EventID != eventID {
				return notFound("request with id=%d was not found for event %d", id, eventID)
			}
			if r.Status != models.RequestStatusPending {
				return conflict("request %d must have status PENDING, got %s", id, r.Status)
			}
			ordered = append(ordered, r)
		}

		if e.LimitReached() {
			return conflict("participant limit of event %d has been reached", eventID)
		}

		confirmed := 0
		for _, r := range ordered {
			status := models.RequestStatusRejected
			if upd.Status == models.RequestStatusConfirmed &&
				(e.ParticipantLimit == 0 || e.ConfirmedRequests+confirmed < e.ParticipantLimit) {
				status = models.RequestStatusConfirmed
				confirmed++
			}

			if err = s.store.UpdateRequestStatus(ctx, r.ID, status); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}

			r.Status = status
			dto := mapper.ToParticipationRequestDto(r)
			if status == models.RequestStatusConfirmed {
				result.ConfirmedRequests = append(result.ConfirmedRequests, dto)
			} else {
				result.RejectedRequests = append(result.RejectedRequests, dto)
			}
		}

		if confirmed > 0 {
			if err = s.store.AddConfirmed(ctx, eventID, confirmed); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		return nil
	})
	if err != nil {
		return models.RequestStatusUpdateResult{}, err
	}

	metrics.ParticipationRequests.WithLabelValues(string(models.RequestStatusConfirmed)).Add(float64(len(result.ConfirmedRequests)))
	metrics.ParticipationRequests.WithLabelValues(string(models.RequestStatusRejected)).Add(float64(len(result.RejectedRequests)))

	s.log.Info("requests moderated",
		slog.String("op", op),
		slog.Int64("event_id", eventID),
		slog.Int("confirmed", len(result.ConfirmedRequests)),
		slog.Int("rejected", len(result.RejectedRequests)),
	)

	return result, nil
}
