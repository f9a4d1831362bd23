package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/rehabit/pkg/entity"
)

type RegisterRequest struct {
	Email       string `validate:"required,email,max=254"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"required,display_name,min=2,max=50"`
}

// FederatedIdentity is what an external identity provider tells about a user.
type FederatedIdentity struct {
	Email       string `validate:"required,email,max=254"`
	DisplayName string
	PhotoURL    string
}

type UpdateProfileRequest struct {
	DisplayName string `validate:"required,display_name,min=2,max=50"`
	PhotoURL    string `validate:"omitempty,url,max=2048"`
}

type CreateHabitRequest struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=500"`
	Icon        string `validate:"max=16"`
	Color       string `validate:"omitempty,hexcolor"`
}

type CreateGroupRequest struct {
	Name        string `validate:"required,min=3,max=60"`
	Description string `validate:"max=500"`
	Category    string `validate:"required,group_category"`
	Icon        string `validate:"max=16"`
}

type UserServiceI interface {
	// Validates user's credentials, creates profile and statistics. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Finds user by identity email, creating the profile on first sign-in
	SignInFederated(ctx context.Context, identity *FederatedIdentity) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Same as GetByID but repairs stored level if it drifted from xp
	Profile(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
	// Recomputes every cached streak from its ledger. Returns number of corrected habits
	ReconcileStreaks(ctx context.Context) (int, error)
}

type HabitChecksServiceI interface {
	// Flips completion of habit for the calendar day of date. Zero date means today
	ToggleHabit(ctx context.Context, habitID, uid uuid.UUID, date time.Time) (*entity.ToggleResult, error)
	GetHabitChecks(ctx context.Context, habitID, uid uuid.UUID, from, to time.Time) ([]entity.HabitCheck, error)
}

type StatisticsServiceI interface {
	Initialize(ctx context.Context, uid uuid.UUID, createdAt time.Time) error
	OnHabitCreated(ctx context.Context, uid uuid.UUID) error
	OnHabitCompleted(ctx context.Context, uid uuid.UUID, day time.Time, xp int) error
	OnHabitUncompleted(ctx context.Context, uid uuid.UUID, day time.Time, xp int) error
	// Recomputes current and best streak of user from habits
	RecomputeStreaks(ctx context.Context, uid uuid.UUID) error
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserStatistics, error)
	DailyRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyStat, error)
	ResetWeekly(ctx context.Context) (int64, error)
	ResetMonthly(ctx context.Context) (int64, error)
}

type ChallengeServiceI interface {
	// Active pool with progress, initialized on first access
	Board(ctx context.Context, uid uuid.UUID) (*entity.ChallengeBoard, error)
	// Completes every active challenge whose condition holds and credits its xp
	Evaluate(ctx context.Context, uid uuid.UUID) (*entity.ChallengeEvaluation, error)
	Replace(ctx context.Context, uid uuid.UUID) (*entity.ChallengeBoard, error)
}

type LeaderboardServiceI interface {
	// Top users by xp and rank of uid. Non-positive limit means default
	Top(ctx context.Context, uid uuid.UUID, limit int) (*entity.Leaderboard, error)
	Invalidate(ctx context.Context) error
}

type GroupsServiceI interface {
	CreateGroup(ctx context.Context, uid uuid.UUID, req *CreateGroupRequest) (*entity.Group, error)
	// Groups visible to uid. Empty category or search means no filter
	ListGroups(ctx context.Context, uid uuid.UUID, category, search string) ([]*entity.Group, error)
	GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error)
	JoinGroup(ctx context.Context, groupID, uid uuid.UUID) (*entity.Group, error)
	LeaveGroup(ctx context.Context, groupID, uid uuid.UUID) error
	// Deletes group for uid only
	HideGroup(ctx context.Context, groupID, uid uuid.UUID) error
	// Deletes group for everybody. Only creator can do it
	DeleteGroup(ctx context.Context, groupID, uid uuid.UUID) error
	SendMessage(ctx context.Context, groupID, uid uuid.UUID, text string) (*entity.GroupMessage, error)
	// Latest messages, oldest first
	Messages(ctx context.Context, groupID, uid uuid.UUID) ([]entity.GroupMessage, error)
	// Live messages of group until ctx is done
	Subscribe(ctx context.Context, groupID, uid uuid.UUID) (<-chan entity.GroupMessage, error)
}

type CommunityServiceI interface {
	List(ctx context.Context) ([]*entity.CommunityChallenge, error)
	Join(ctx context.Context, id, uid uuid.UUID) (*entity.CommunityChallenge, error)
	Leave(ctx context.Context, id, uid uuid.UUID) (*entity.CommunityChallenge, error)
}
