package models

type User struct {
	ID    int64
	Name  string
	Email string
}

type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserShortDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type NewUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=250"`
	Email string `json:"email" validate:"required,min=6,max=254,email"`
}
