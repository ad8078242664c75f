// Package mapper translates between stored records and the shapes served
// over HTTP. Functions here never touch storage.
package mapper

import (
	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/models"
)

func ToUserDto(u models.User) models.UserDto {
	return models.UserDto{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserShortDto(u models.User) models.UserShortDto {
	return models.UserShortDto{ID: u.ID, Name: u.Name}
}

func ToUser(req models.NewUserRequest) models.User {
	return models.User{Name: req.Name, Email: req.Email}
}

func ToCategoryDto(c models.Category) models.CategoryDto {
	return models.CategoryDto{ID: c.ID, Name: c.Name}
}

func ToEventFullDto(e models.Event, cat models.Category, initiator models.User) models.EventFullDto {
	return models.EventFullDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          ToCategoryDto(cat),
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         datetime.New(e.CreatedOn),
		Description:       e.Description,
		EventDate:         datetime.New(e.EventDate),
		Initiator:         ToUserShortDto(initiator),
		Location:          e.Location,
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		PublishedOn:       datetime.Ptr(e.PublishedOn),
		RequestModeration: e.RequestModeration,
		State:             e.State,
		Title:             e.Title,
		Views:             e.Views,
	}
}

func ToEventShortDto(e models.Event, cat models.Category, initiator models.User) models.EventShortDto {
	return models.EventShortDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          ToCategoryDto(cat),
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         datetime.New(e.EventDate),
		Initiator:         ToUserShortDto(initiator),
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

// ToEvent builds a new, not yet persisted event. State and timestamps are set
// by the caller.
func ToEvent(req models.NewEventRequest, initiatorID int64) models.Event {
	e := models.Event{
		Annotation:        req.Annotation,
		Description:       req.Description,
		Title:             req.Title,
		CategoryID:        req.Category,
		InitiatorID:       initiatorID,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: true,
	}

	if req.EventDate != nil {
		e.EventDate = req.EventDate.Time
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.RequestModeration != nil {
		e.RequestModeration = *req.RequestModeration
	}

	return e
}

// ApplyEventFields copies every non-nil patch field onto e.
func ApplyEventFields(e *models.Event, f models.UpdateEventFields) {
	if f.Annotation != nil {
		e.Annotation = *f.Annotation
	}
	if f.Category != nil {
		e.CategoryID = *f.Category
	}
	if f.Description != nil {
		e.Description = *f.Description
	}
	if f.EventDate != nil {
		e.EventDate = f.EventDate.Time
	}
	if f.Location != nil {
		e.Location = *f.Location
	}
	if f.Paid != nil {
		e.Paid = *f.Paid
	}
	if f.ParticipantLimit != nil {
		e.ParticipantLimit = *f.ParticipantLimit
	}
	if f.RequestModeration != nil {
		e.RequestModeration = *f.RequestModeration
	}
	if f.Title != nil {
		e.Title = *f.Title
	}
}

func ToParticipationRequestDto(r models.Request) models.ParticipationRequestDto {
	return models.ParticipationRequestDto{
		ID:        r.ID,
		Created:   datetime.New(r.Created),
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    r.Status,
	}
}

func ToParticipationRequestDtos(reqs []models.Request) []models.ParticipationRequestDto {
	out := make([]models.ParticipationRequestDto, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ToParticipationRequestDto(r))
	}

	return out
}

func ToCompilationDto(c models.Compilation, events []models.EventShortDto) models.CompilationDto {
	if events == nil {
		events = []models.EventShortDto{}
	}

	return models.CompilationDto{
		ID:     c.ID,
		Events: events,
		Pinned: c.Pinned,
		Title:  c.Title,
	}
}

func ToRatingDto(r models.Rating) models.RatingDto {
	return models.RatingDto{ID: r.ID, UserID: r.UserID, EventID: r.EventID, Rate: r.Rate}
}

func ToEventRateDto(e models.Event, rate float64) models.EventRateDto {
	return models.EventRateDto{
		EventID:     e.ID,
		Rate:        rate,
		Description: e.Description,
		Annotation:  e.Annotation,
		Title:       e.Title,
	}
}
