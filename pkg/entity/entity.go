package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID   `json:"uid"`
	Email        string      `json:"email"`
	DisplayName  string      `json:"display_name"`
	PhotoURL     string      `json:"photo_url,omitempty"`
	PasswordHash string      `json:"-"`
	XP           int         `json:"xp"`
	Level        int         `json:"level"`
	Badges       []string    `json:"badges"`
	HiddenGroups []uuid.UUID `json:"deleted_groups"`
	JoinedAt     time.Time   `json:"joined_at"`
}

// XPChange is the outcome of a single atomic XP mutation.
type XPChange struct {
	OldXP     int  `json:"old_xp"`
	NewXP     int  `json:"xp"`
	OldLevel  int  `json:"old_level"`
	NewLevel  int  `json:"level"`
	LeveledUp bool `json:"leveled_up"`
}

type Habit struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"uid"`
	Name           string      `json:"name"`
	Description    string      `json:"desc"`
	Icon           string      `json:"icon"`
	Color          string      `json:"color"`
	Streak         int         `json:"streak"`
	LastCompleted  *time.Time  `json:"last_completed,omitempty"`
	CompletedDates []time.Time `json:"completed_dates"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type HabitCheck struct {
	ID        int       `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	CheckDate time.Time `json:"check_date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleResult describes what a completion toggle did to a habit and its owner.
type ToggleResult struct {
	Habit      *Habit               `json:"habit"`
	Completed  bool                 `json:"completed"`
	Day        time.Time            `json:"day"`
	XP         XPChange             `json:"xp"`
	Challenges *ChallengeEvaluation `json:"challenges,omitempty"`
}

type UserStatistics struct {
	UserID                 uuid.UUID `json:"uid"`
	TotalHabitsCompleted   int       `json:"total_habits_completed"`
	TotalHabitsCreated     int       `json:"total_habits_created"`
	BestStreak             int       `json:"best_streak"`
	CurrentStreak          int       `json:"current_streak"`
	PerfectDaysCount       int       `json:"perfect_days_count"`
	TotalXPEarned          int       `json:"total_xp_earned"`
	WeeklyCompletions      int       `json:"weekly_completions"`
	MonthlyCompletions     int       `json:"monthly_completions"`
	DaysActive             int       `json:"days_active"`
	LongestPerfectRun      int       `json:"longest_perfect_run"`
	ConsecutivePerfectDays int       `json:"consecutive_perfect_days"`
	LastActiveDate         time.Time `json:"last_active_date"`
	AccountCreatedAt       time.Time `json:"account_created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type DailyStat struct {
	UserID          uuid.UUID `json:"uid"`
	Date            time.Time `json:"date"`
	HabitsCompleted int       `json:"habits_completed"`
	TotalHabits     int       `json:"total_habits"`
	IsPerfectDay    bool      `json:"is_perfect_day"`
	PerfectBroken   bool      `json:"-"`
	XPEarned        int       `json:"xp_earned"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ChallengeState is the per-user challenge pool blob.
type ChallengeState struct {
	ActiveChallenges    []int `json:"activeChallenges"`
	CompletedChallenges []int `json:"completedChallenges"`
	ChallengeXP         int   `json:"challengeXP"`
	ChallengeLevel      int   `json:"challengeLevel"`
}

type ChallengeView struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	XP         int    `json:"xp"`
	Icon       string `json:"icon"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
}

type ChallengeBoard struct {
	Challenges     []ChallengeView `json:"challenges"`
	ChallengeXP    int             `json:"challenge_xp"`
	ChallengeLevel int             `json:"challenge_level"`
	XPToNextLevel  int             `json:"xp_to_next_level"`
	JustCompleted  []int           `json:"just_completed"`
}

type ChallengeEvaluation struct {
	Completed []int     `json:"completed"`
	XPAwarded int       `json:"xp_awarded"`
	LeveledUp bool      `json:"leveled_up"`
	User      *XPChange `json:"user_xp,omitempty"`
}

type Group struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Icon          string      `json:"icon"`
	CreatedBy     uuid.UUID   `json:"created_by"`
	CreatedByName string      `json:"created_by_name"`
	Members       []uuid.UUID `json:"members"`
	MemberCount   int         `json:"member_count"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (g *Group) HasMember(uid uuid.UUID) bool {
	for _, m := range g.Members {
		if m == uid {
			return true
		}
	}
	return false
}

const (
	MessageKindUser   = "user"
	MessageKindSystem = "system"
)

type GroupMessage struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	UserID    uuid.UUID `json:"uid"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo,omitempty"`
	Body      string    `json:"message"`
	Kind      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      uuid.UUID `json:"uid"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	XP          int       `json:"xp"`
	Level       int       `json:"level"`
}

type Leaderboard struct {
	Entries  []LeaderboardEntry `json:"entries"`
	UserRank *int               `json:"user_rank"`
}

type CommunityChallenge struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Goal            int               `json:"goal"`
	CurrentProgress int               `json:"current_progress"`
	XPReward        int               `json:"xp_reward"`
	Deadline        time.Time         `json:"deadline"`
	Icon            string            `json:"icon"`
	Difficulty      string            `json:"difficulty"`
	Kind            string            `json:"type"`
	Participants    map[string]string `json:"participants"`
	CreatedAt       time.Time         `json:"created_at"`
}
