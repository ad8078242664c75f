package models

const (
	MinRate = 1
	MaxRate = 10
)

type Rating struct {
	ID      int64
	UserID  int64
	EventID int64
	Rate    int
}

type RatingDto struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"userId"`
	EventID int64 `json:"eventId"`
	Rate    int   `json:"rate"`
}

type NewRatingRequest struct {
	EventID int64 `json:"eventId" validate:"required,gt=0"`
	Rate    int   `json:"rate" validate:"required,min=1,max=10"`
}

type UpdateRatingRequest struct {
	Rate int `json:"rate" validate:"required,min=1,max=10"`
}
