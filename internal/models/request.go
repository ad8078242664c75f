package models

import (
	"time"

	"exploreWithMe/internal/lib/datetime"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

type Request struct {
	ID          int64
	RequesterID int64
	EventID     int64
	Created     time.Time
	Status      RequestStatus
}

type ParticipationRequestDto struct {
	ID        int64         `json:"id"`
	Created   datetime.Time `json:"created"`
	Event     int64         `json:"event"`
	Requester int64         `json:"requester"`
	Status    RequestStatus `json:"status"`
}

type RequestStatusUpdate struct {
	RequestIDs []int64       `json:"requestIds" validate:"required,min=1,unique,dive,gt=0"`
	Status     RequestStatus `json:"status" validate:"required,oneof=CONFIRMED REJECTED"`
}

type RequestStatusUpdateResult struct {
	ConfirmedRequests []ParticipationRequestDto `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestDto `json:"rejectedRequests"`
}
