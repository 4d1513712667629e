package service

import (
	"context"
	"strings"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.ListAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id uint64, input domain.UpdateUserInput) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" {
		return domain.ErrInvalidInput
	}
	return s.userRepository.Update(ctx, id, input)
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.userRepository.Delete(ctx, id)
}
