package models

import (
	"time"

	"exploreWithMe/internal/lib/datetime"
)

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

type StateAction string

const (
	StateActionPublish      StateAction = "PUBLISH_EVENT"
	StateActionReject       StateAction = "REJECT_EVENT"
	StateActionSendToReview StateAction = "SEND_TO_REVIEW"
	StateActionCancelReview StateAction = "CANCEL_REVIEW"
)

type SortOrder string

const (
	SortByEventDate SortOrder = "EVENT_DATE"
	SortByViews     SortOrder = "VIEWS"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Event is the persisted event row. Views is never stored; it is filled in
// from the stats server on read.
type Event struct {
	ID                int64
	Annotation        string
	Description       string
	Title             string
	CategoryID        int64
	InitiatorID       int64
	Location          Location
	Paid              bool
	ParticipantLimit  int
	RequestModeration bool
	CreatedOn         time.Time
	PublishedOn       *time.Time
	EventDate         time.Time
	State             EventState
	ConfirmedRequests int
	Views             int64
}

// LimitReached reports whether no more participants can be confirmed.
// A zero limit means unlimited.
func (e *Event) LimitReached() bool {
	return e.ParticipantLimit > 0 && e.ConfirmedRequests >= e.ParticipantLimit
}

// EventQuery is the storage-level filter shared by the admin and public searches.
// Zero values mean "no restriction".
type EventQuery struct {
	InitiatorIDs []int64
	States       []EventState
	CategoryIDs  []int64
	Text         string
	Paid         *bool
	RangeStart   *time.Time
	RangeEnd     *time.Time
	Limit        int
	Offset       int
}

type AdminEventFilter struct {
	Users      []int64
	States     []EventState
	Categories []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	From       int
	Size       int
}

type PublicEventFilter struct {
	Text          string
	Categories    []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          SortOrder
	From          int
	Size          int
}

type EventFullDto struct {
	ID                int64          `json:"id"`
	Annotation        string         `json:"annotation"`
	Category          CategoryDto    `json:"category"`
	ConfirmedRequests int            `json:"confirmedRequests"`
	CreatedOn         datetime.Time  `json:"createdOn"`
	Description       string         `json:"description"`
	EventDate         datetime.Time  `json:"eventDate"`
	Initiator         UserShortDto   `json:"initiator"`
	Location          Location       `json:"location"`
	Paid              bool           `json:"paid"`
	ParticipantLimit  int            `json:"participantLimit"`
	PublishedOn       *datetime.Time `json:"publishedOn"`
	RequestModeration bool           `json:"requestModeration"`
	State             EventState     `json:"state"`
	Title             string         `json:"title"`
	Views             int64          `json:"views"`
}

type EventShortDto struct {
	ID                int64         `json:"id"`
	Annotation        string        `json:"annotation"`
	Category          CategoryDto   `json:"category"`
	ConfirmedRequests int           `json:"confirmedRequests"`
	EventDate         datetime.Time `json:"eventDate"`
	Initiator         UserShortDto  `json:"initiator"`
	Paid              bool          `json:"paid"`
	Title             string        `json:"title"`
	Views             int64         `json:"views"`
}

type NewEventRequest struct {
	Annotation        string         `json:"annotation" validate:"required,min=20,max=2000"`
	Category          int64          `json:"category" validate:"required,gt=0"`
	Description       string         `json:"description" validate:"required,min=20,max=7000"`
	EventDate         *datetime.Time `json:"eventDate" validate:"required"`
	Location          *Location      `json:"location" validate:"required"`
	Paid              bool           `json:"paid"`
	ParticipantLimit  int            `json:"participantLimit" validate:"gte=0"`
	RequestModeration *bool          `json:"requestModeration"`
	Title             string         `json:"title" validate:"required,min=3,max=120"`
}

// UpdateEventFields holds the patchable event fields; nil means "leave as is".
type UpdateEventFields struct {
	Annotation        *string        `json:"annotation" validate:"omitempty,min=20,max=2000"`
	Category          *int64         `json:"category" validate:"omitempty,gt=0"`
	Description       *string        `json:"description" validate:"omitempty,min=20,max=7000"`
	EventDate         *datetime.Time `json:"eventDate"`
	Location          *Location      `json:"location"`
	Paid              *bool          `json:"paid"`
	ParticipantLimit  *int           `json:"participantLimit" validate:"omitempty,gte=0"`
	RequestModeration *bool          `json:"requestModeration"`
	Title             *string        `json:"title" validate:"omitempty,min=3,max=120"`
}

type UpdateEventAdminRequest struct {
	UpdateEventFields
	StateAction *StateAction `json:"stateAction" validate:"omitempty,oneof=PUBLISH_EVENT REJECT_EVENT"`
}

type UpdateEventUserRequest struct {
	UpdateEventFields
	StateAction *StateAction `json:"stateAction" validate:"omitempty,oneof=SEND_TO_REVIEW CANCEL_REVIEW"`
}

type EventRateDto struct {
	EventID     int64   `json:"eventId"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
	Annotation  string  `json:"annotation"`
	Title       string  `json:"title"`
}

// HitInfo identifies the inbound request that should be recorded as a hit.
type HitInfo struct {
	URI string
	IP  string
}
