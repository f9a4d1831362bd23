package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

type CommunityService struct {
	repo      repository.CommunityRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewCommunityService(repo repository.CommunityRepositoryI, usersRepo repository.UsersRepositoryI) *CommunityService {
	if repo == nil || usersRepo == nil {
		log.Fatal("on community service provided nil repos")
	}
	return &CommunityService{
		repo:      repo,
		usersRepo: usersRepo,
	}
}

func (cs *CommunityService) List(ctx context.Context) ([]*entity.CommunityChallenge, error) {
	list, err := cs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return list, nil
}

func (cs *CommunityService) Join(ctx context.Context, id, uid uuid.UUID) (*entity.CommunityChallenge, error) {
	user, err := cs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if err = cs.repo.Join(ctx, id, uid, user.DisplayName); err != nil {
		if errors.Is(err, errorvalues.ErrCommunityChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return cs.get(ctx, id)
}

func (cs *CommunityService) Leave(ctx context.Context, id, uid uuid.UUID) (*entity.CommunityChallenge, error) {
	if err := cs.repo.Leave(ctx, id, uid); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return cs.get(ctx, id)
}

func (cs *CommunityService) get(ctx context.Context, id uuid.UUID) (*entity.CommunityChallenge, error) {
	c, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCommunityChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return c, nil
}
