package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrFederatedAccount = errors.New("account uses federated sign-in")

	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrOwnerNotFound       = errors.New("habit owner doesn't exist")
	ErrWrongOwner          = errors.New("resource belongs to another user")
	ErrCheckExist          = errors.New("habit already checked for this day")
	ErrCheckNotFound       = errors.New("habit isn't checked for this day")
	ErrCheckDateNotAllowed = errors.New("check date is in the future")

	ErrStatsNotFound = errors.New("statistics don't exist")

	ErrChallengeNotFound     = errors.New("challenge doesn't exist")
	ErrNoChallengesAvailable = errors.New("no more challenges available")

	ErrGroupNotFound   = errors.New("group doesn't exist")
	ErrNotGroupMember  = errors.New("user isn't a group member")
	ErrNotGroupCreator = errors.New("only the group creator can delete it")
	ErrAlreadyMember   = errors.New("user is already a group member")
	ErrEmptyMessage    = errors.New("message is empty")

	ErrCommunityChallengeNotFound = errors.New("community challenge doesn't exist")

	ErrCacheMiss = errors.New("cache miss")
)
