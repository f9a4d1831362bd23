package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

// NewcomerBadge is granted to every new profile.
const NewcomerBadge = "newcomer"

type UserService struct {
	repo  repository.UsersRepositoryI
	stats StatisticsServiceI
	clock *Clock
}

func NewUserService(usersRepo repository.UsersRepositoryI, stats StatisticsServiceI, clock *Clock) *UserService {
	if usersRepo == nil || stats == nil {
		log.Fatal("on user service provided nil dependencies")
	}
	return &UserService{
		repo:  usersRepo,
		stats: stats,
		clock: clock,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	return us.create(ctx, &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: passwordHash,
	})
}

func (us *UserService) create(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.XP = 0
	user.Level = progress.Level(0)
	user.Badges = []string{NewcomerBadge}
	user.HiddenGroups = []uuid.UUID{}
	user.JoinedAt = us.clock.Now()
	err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	// Statistics are initialized lazily on read if this fails
	logFailure("initializing statistics", us.stats.Initialize(ctx, user.ID, user.JoinedAt), slog.String("uid", user.ID.String()))
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if user.PasswordHash == "" {
		return nil, errorvalues.ErrFederatedAccount
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) SignInFederated(ctx context.Context, identity *FederatedIdentity) (*entity.User, error) {
	identity.Email = normalizeEmail(identity.Email)
	if err := validateStruct(*identity); err != nil {
		return nil, err
	}
	user, err := us.repo.FindByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	name := strings.TrimSpace(identity.DisplayName)
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}
	return us.create(ctx, &entity.User{
		ID:          uuid.New(),
		Email:       identity.Email,
		DisplayName: name,
		PhotoURL:    identity.PhotoURL,
	})
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Profile(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if level := progress.Level(user.XP); level != user.Level {
		logFailure("repairing level", us.repo.SetLevel(ctx, id, level), slog.String("uid", id.String()))
		user.Level = level
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.DisplayName = req.DisplayName
	user.PhotoURL = req.PhotoURL
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
