package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"exploreWithMe/internal/mapper"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

const (
	emailLocalMax = 64
	emailLabelMax = 63
)

type UserService struct {
	log   *slog.Logger
	store UserStore
}

func NewUserService(log *slog.Logger, store UserStore) *UserService {
	return &UserService{log: log, store: store}
}

func (s *UserService) GetUsers(ctx context.Context, ids []int64, from, size int) ([]models.UserDto, error) {
	const op = "service.UserService.GetUsers"

	off, err := offset(from, size)
	if err != nil {
		return nil, err
	}

	users, err := s.store.Users(ctx, ids, size, off)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.ToUserDto(u))
	}

	return out, nil
}

func (s *UserService) CreateUser(ctx context.Context, req models.NewUserRequest) (models.UserDto, error) {
	const op = "service.UserService.CreateUser"

	u := mapper.ToUser(req)
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if u.Name == "" || u.Email == "" {
		return models.UserDto{}, invalid("name and email are required")
	}
	if err := checkEmail(u.Email); err != nil {
		return models.UserDto{}, err
	}

	existing, err := s.store.UserByName(ctx, u.Name)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.UserDto{}, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return models.UserDto{}, conflict("user with name %s already exists", u.Name)
	}

	id, err := s.store.SaveUser(ctx, u)
	if errors.Is(err, storage.ErrExists) {
		return models.UserDto{}, conflict("user with name %s or email %s already exists", u.Name, u.Email)
	}
	if err != nil {
		return models.UserDto{}, fmt.Errorf("%s: %w", op, err)
	}
	u.ID = id

	s.log.Info("user created", slog.String("op", op), slog.Int64("user_id", id))

	return mapper.ToUserDto(u), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	const op = "service.UserService.DeleteUser"

	err := s.store.DeleteUser(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return notFound("user with id=%d was not found", id)
	case errors.Is(err, storage.ErrReferenced):
		return conflict("user with id=%d still owns events or participation requests", id)
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user deleted", slog.String("op", op), slog.Int64("user_id", id))

	return nil
}

func checkEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return invalid("email %s is malformed", email)
	}

	if len(email[:at]) > emailLocalMax {
		return invalid("email local part cannot be longer than %d characters", emailLocalMax)
	}

	for _, label := range strings.Split(email[at+1:], ".") {
		if len(label) > emailLabelMax {
			return invalid("email domain label cannot be longer than %d characters", emailLabelMax)
		}
	}

	return nil
}
