package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/rehabit/internal/api"
	"github.com/limbo/rehabit/internal/metrics"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/internal/service/mocks"
	"github.com/limbo/rehabit/pkg/entity"
	jwtservice "github.com/limbo/rehabit/pkg/jwt_service"
	"github.com/stretchr/testify/require"
)

var (
	testNow  = time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	testUser = &entity.User{
		ID:          uuid.New(),
		Email:       "alice@example.com",
		DisplayName: "Alice",
		XP:          120,
		Level:       2,
	}
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testEnv struct {
	users       *mocks.MockUserServiceI
	habits      *mocks.MockHabitsServiceI
	checks      *mocks.MockHabitChecksServiceI
	stats       *mocks.MockStatisticsServiceI
	challenges  *mocks.MockChallengeServiceI
	leaderboard *mocks.MockLeaderboardServiceI
	groups      *mocks.MockGroupsServiceI
	community   *mocks.MockCommunityServiceI

	jwt     *jwtservice.JWTService
	metrics *metrics.Metrics
	server  *api.Server
}

func newTestEnv(t *testing.T, opts ...func(*api.ServicesList)) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:       mocks.NewMockUserServiceI(ctrl),
		habits:      mocks.NewMockHabitsServiceI(ctrl),
		checks:      mocks.NewMockHabitChecksServiceI(ctrl),
		stats:       mocks.NewMockStatisticsServiceI(ctrl),
		challenges:  mocks.NewMockChallengeServiceI(ctrl),
		leaderboard: mocks.NewMockLeaderboardServiceI(ctrl),
		groups:      mocks.NewMockGroupsServiceI(ctrl),
		community:   mocks.NewMockCommunityServiceI(ctrl),
		jwt:         jwtservice.New("test_secret", time.Hour),
		metrics:     metrics.New(nil),
	}
	list := &api.ServicesList{
		UserService:        env.users,
		HabitsService:      env.habits,
		ChecksService:      env.checks,
		StatsService:       env.stats,
		ChallengeService:   env.challenges,
		LeaderboardService: env.leaderboard,
		GroupsService:      env.groups,
		CommunityService:   env.community,
		JwtService:         env.jwt,
		Metrics:            env.metrics,
		Clock:              service.FixedClock(testNow),
	}
	for _, opt := range opts {
		opt(list)
	}
	env.server = api.New(list)
	return env
}

func (env *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := env.jwt.GenerateToken(testUser)
	require.NoError(t, err)
	return token
}

// authRequest builds a request carrying a valid token of testUser.
// The auth middleware lookup of testUser is expected once.
func (env *testEnv) authRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Authorization", "Bearer "+env.token(t))
	return r
}

func (env *testEnv) do(r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rr, r)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(v))
}
