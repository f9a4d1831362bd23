package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/rehabit/pkg/entity"
)

// StreakFunc computes a habit's cached streak from its ledger days.
type StreakFunc func(dates []time.Time) int

type UsersRepositoryI interface {
	// Creates new user in database. ID must be set by caller
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates display name and photo
	UpdateProfile(ctx context.Context, user *entity.User) error
	// Overwrites stored level (used when it drifted from xp)
	SetLevel(ctx context.Context, uid uuid.UUID, level int) error
	// Atomically adds delta to xp clamping at zero, recomputes level
	AddXP(ctx context.Context, uid uuid.UUID, delta int) (entity.XPChange, error)
	// Marks group as deleted for user only
	HideGroup(ctx context.Context, uid, groupID uuid.UUID) error
	// Removes "deleted for me" mark
	UnhideGroup(ctx context.Context, uid, groupID uuid.UUID) error
	// Top users by xp
	TopByXP(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	// Position of user in the xp ranking, starting from 1
	RankOf(ctx context.Context, uid uuid.UUID) (int, error)
}

type HabitsRepositoryI interface {
	// Creates new habit in database. In habit only Name and UserID are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id, completed dates included
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists all habits owned by user with uid, completed dates included
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Counts habits owned by user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Lists every habit with its ledger. Used by reconciliation
	ListAll(ctx context.Context) ([]*entity.Habit, error)
	// Overwrites cached streak
	SetStreak(ctx context.Context, id uuid.UUID, streak int) error
	// Deletes habit with id, its checks are cascaded
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitChecksRepositoryI interface {
	// Flips the check of habit on day inside one transaction and recomputes cached streak.
	// Returns updated habit and whether the day is checked now
	Toggle(ctx context.Context, habitID uuid.UUID, day time.Time, streak StreakFunc) (*entity.Habit, bool, error)
	// Provides checks of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCheck, error)
}

type StatisticsRepositoryI interface {
	// Creates zeroed statistics row, no-op if exists
	Init(ctx context.Context, uid uuid.UUID, createdAt time.Time) error
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserStatistics, error)
	IncrementCreated(ctx context.Context, uid uuid.UUID) error
	// Adds delta completions and xp to running counters, never below zero
	ApplyCompletion(ctx context.Context, uid uuid.UUID, delta, xp int, day time.Time, newDay bool) error
	// Upserts day snapshot. Returns snapshot and whether it was created by this call
	UpsertDay(ctx context.Context, uid uuid.UUID, day time.Time, delta, totalHabits, xp int) (*entity.DailyStat, bool, error)
	// Marks day perfect unless it is already perfect or was broken. Reports if marked
	MarkPerfect(ctx context.Context, uid uuid.UUID, day time.Time) (bool, error)
	// Unmarks perfect day and latches it as broken. Reports if day was perfect
	BreakPerfect(ctx context.Context, uid uuid.UUID, day time.Time) (bool, error)
	AdjustPerfectDays(ctx context.Context, uid uuid.UUID, delta int) error
	// Most recent snapshots first
	RecentDays(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyStat, error)
	DailyRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyStat, error)
	// Sets current streak and raises best streak if needed
	SetStreaks(ctx context.Context, uid uuid.UUID, current, best int) error
	// Sets current perfect run and raises the longest one if needed
	SetPerfectRun(ctx context.Context, uid uuid.UUID, run int) error
	ResetWeekly(ctx context.Context) (int64, error)
	ResetMonthly(ctx context.Context) (int64, error)
}

type GroupsRepositoryI interface {
	// Creates group with creator as the only member
	Create(ctx context.Context, group *entity.Group) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	// Lists groups not hidden by uid. Empty category or search means no filter
	List(ctx context.Context, uid uuid.UUID, category, search string) ([]*entity.Group, error)
	AddMember(ctx context.Context, groupID, uid uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, uid uuid.UUID) error
	// Deletes messages, members and group in one transaction
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessagesRepositoryI interface {
	// Appends message, fills ID and CreatedAt
	Append(ctx context.Context, msg *entity.GroupMessage) error
	// Latest limit messages of group, oldest first
	ListByGroup(ctx context.Context, groupID uuid.UUID, limit int) ([]entity.GroupMessage, error)
}

type CommunityRepositoryI interface {
	// Newest first
	List(ctx context.Context) ([]*entity.CommunityChallenge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CommunityChallenge, error)
	Join(ctx context.Context, id, uid uuid.UUID, displayName string) error
	Leave(ctx context.Context, id, uid uuid.UUID) error
}

// ChallengeMutation receives current state (nil when user has none) and returns the state to store.
// Returning nil state leaves storage untouched. It may be invoked several times on conflicts
type ChallengeMutation func(current *entity.ChallengeState) (*entity.ChallengeState, error)

type ChallengeStoreI interface {
	// Returns ErrCacheMiss when user has no state yet
	Load(ctx context.Context, uid uuid.UUID) (*entity.ChallengeState, error)
	// Applies mutation as an optimistic transaction and returns stored state
	Update(ctx context.Context, uid uuid.UUID, fn ChallengeMutation) (*entity.ChallengeState, error)
	SetPulse(ctx context.Context, uid uuid.UUID, ids []int) error
	// Ids completed within the pulse window, empty when expired
	Pulse(ctx context.Context, uid uuid.UUID) ([]int, error)
}

type LeaderboardCacheI interface {
	Get(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	Set(ctx context.Context, limit int, entries []entity.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type MessageBusI interface {
	Publish(ctx context.Context, msg *entity.GroupMessage) error
	// Channel is closed when ctx is done
	Subscribe(ctx context.Context, groupID uuid.UUID) (<-chan entity.GroupMessage, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}
