package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/rehabit/internal/api"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroups(t *testing.T) {
	env := newTestEnv(t)
	groups := []*entity.Group{{ID: uuid.New(), Name: "Morning runners", Category: "fitness"}}
	env.groups.EXPECT().ListGroups(gomock.Any(), testUser.ID, "fitness", "run").Return(groups, nil)
	rr := env.do(env.authRequest(t, http.MethodGet, "/api/groups?category=fitness&q=run", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.GroupsResponse
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, "Morning runners", resp.Groups[0].Name)
}

func TestCreateGroup(t *testing.T) {
	env := newTestEnv(t)
	group := &entity.Group{ID: uuid.New(), Name: "Morning runners", CreatedBy: testUser.ID}
	t.Run("created", func(t *testing.T) {
		env.groups.EXPECT().CreateGroup(gomock.Any(), testUser.ID, &service.CreateGroupRequest{
			Name:     "Morning runners",
			Category: "Fitness",
			Icon:     "🏃",
		}).Return(group, nil)
		body := `{"name":"Morning runners","category":"Fitness","icon":"🏃"}`
		rr := env.do(env.authRequest(t, http.MethodPost, "/api/groups", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("unknown category", func(t *testing.T) {
		env.groups.EXPECT().CreateGroup(gomock.Any(), testUser.ID, gomock.Any()).Return(nil, service.NewValidationError("unknown category"))
		body := `{"name":"Morning runners","category":"cooking"}`
		rr := env.do(env.authRequest(t, http.MethodPost, "/api/groups", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGroupMembership(t *testing.T) {
	env := newTestEnv(t)
	groupID := uuid.New()
	testCases := []struct {
		Desc         string
		Method       string
		Action       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "joined",
			Method:       http.MethodPost,
			Action:       "/join",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.groups.EXPECT().JoinGroup(gomock.Any(), groupID, testUser.ID).
					Return(&entity.Group{ID: groupID, Members: []uuid.UUID{testUser.ID}}, nil)
			},
		},
		{
			Desc:         "join missing group",
			Method:       http.MethodPost,
			Action:       "/join",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.groups.EXPECT().JoinGroup(gomock.Any(), groupID, testUser.ID).Return(nil, errorvalues.ErrGroupNotFound)
			},
		},
		{
			Desc:         "left",
			Method:       http.MethodPost,
			Action:       "/leave",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				env.groups.EXPECT().LeaveGroup(gomock.Any(), groupID, testUser.ID).Return(nil)
			},
		},
		{
			Desc:         "leave without membership",
			Method:       http.MethodPost,
			Action:       "/leave",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.groups.EXPECT().LeaveGroup(gomock.Any(), groupID, testUser.ID).Return(errorvalues.ErrNotGroupMember)
			},
		},
		{
			Desc:         "hidden",
			Method:       http.MethodPost,
			Action:       "/hide",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				env.groups.EXPECT().HideGroup(gomock.Any(), groupID, testUser.ID).Return(nil)
			},
		},
		{
			Desc:         "deleted by creator",
			Method:       http.MethodDelete,
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				env.groups.EXPECT().DeleteGroup(gomock.Any(), groupID, testUser.ID).Return(nil)
			},
		},
		{
			Desc:         "delete by somebody else",
			Method:       http.MethodDelete,
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.groups.EXPECT().DeleteGroup(gomock.Any(), groupID, testUser.ID).Return(errorvalues.ErrNotGroupCreator)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(env.authRequest(t, tc.Method, "/api/groups/"+groupID.String()+tc.Action, nil))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestSendMessage(t *testing.T) {
	env := newTestEnv(t)
	groupID := uuid.New()
	path := "/api/groups/" + groupID.String() + "/messages"
	testCases := []struct {
		Desc         string
		Body         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "sent",
			Body:         `{"message":"hello"}`,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				env.groups.EXPECT().SendMessage(gomock.Any(), groupID, testUser.ID, "hello").
					Return(&entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: "hello", Kind: entity.MessageKindUser}, nil)
			},
		},
		{
			Desc:         "blank",
			Body:         `{"message":"   "}`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.groups.EXPECT().SendMessage(gomock.Any(), groupID, testUser.ID, "   ").Return(nil, errorvalues.ErrEmptyMessage)
			},
		},
		{
			Desc:         "too long",
			Body:         `{"message":"` + strings.Repeat("a", 1001) + `"}`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.groups.EXPECT().SendMessage(gomock.Any(), groupID, testUser.ID, gomock.Any()).
					Return(nil, service.NewValidationError("message is too long"))
			},
		},
		{
			Desc:         "not a member",
			Body:         `{"message":"hello"}`,
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.groups.EXPECT().SendMessage(gomock.Any(), groupID, testUser.ID, "hello").Return(nil, errorvalues.ErrNotGroupMember)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(env.authRequest(t, http.MethodPost, path, strings.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.GroupMessages))
}

func TestGetMessages(t *testing.T) {
	env := newTestEnv(t)
	groupID := uuid.New()
	history := []entity.GroupMessage{
		{ID: uuid.New(), GroupID: groupID, Body: "Alice created the group", Kind: entity.MessageKindSystem},
		{ID: uuid.New(), GroupID: groupID, UserID: testUser.ID, Body: "hi", Kind: entity.MessageKindUser},
	}
	env.groups.EXPECT().Messages(gomock.Any(), groupID, testUser.ID).Return(history, nil)
	rr := env.do(env.authRequest(t, http.MethodGet, "/api/groups/"+groupID.String()+"/messages", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.MessagesResponse
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, entity.MessageKindSystem, resp.Messages[0].Kind)
}

func TestGroupFeed(t *testing.T) {
	env := newTestEnv(t)
	groupID := uuid.New()
	ts := httptest.NewServer(env.server.Handler())
	defer ts.Close()
	feedURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/groups/" + groupID.String() + "/feed?" +
		url.Values{"token": {env.token(t)}}.Encode()

	t.Run("not a member", func(t *testing.T) {
		env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
		env.groups.EXPECT().Subscribe(gomock.Any(), groupID, testUser.ID).Return(nil, errorvalues.ErrNotGroupMember)
		_, resp, err := websocket.DefaultDialer.Dial(feedURL, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("history, live and posting", func(t *testing.T) {
		live := make(chan entity.GroupMessage, 1)
		sent := make(chan struct{})
		env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
		env.groups.EXPECT().Messages(gomock.Any(), groupID, testUser.ID).
			Return([]entity.GroupMessage{{ID: uuid.New(), GroupID: groupID, Body: "earlier"}}, nil)
		env.groups.EXPECT().Subscribe(gomock.Any(), groupID, testUser.ID).
			Return((<-chan entity.GroupMessage)(live), nil)
		env.groups.EXPECT().SendMessage(gomock.Any(), groupID, testUser.ID, "from socket").DoAndReturn(
			func(ctx context.Context, _, _ uuid.UUID, text string) (*entity.GroupMessage, error) {
				close(sent)
				return &entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: text}, nil
			})

		conn, _, err := websocket.DefaultDialer.Dial(feedURL, nil)
		require.NoError(t, err)
		defer conn.Close()
		readMessage := func() entity.GroupMessage {
			require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
			_, data, err := conn.ReadMessage()
			require.NoError(t, err)
			var m entity.GroupMessage
			require.NoError(t, sonic.Unmarshal(data, &m))
			return m
		}

		assert.Equal(t, "earlier", readMessage().Body)
		live <- entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: "just now"}
		assert.Equal(t, "just now", readMessage().Body)
		assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.FeedConnections))

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"message":"from socket"}`)))
		select {
		case <-sent:
		case <-time.After(5 * time.Second):
			t.Fatal("message from socket wasn't posted")
		}
	})

	t.Run("message published while history loads", func(t *testing.T) {
		live := make(chan entity.GroupMessage, 3)
		earlier := entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: "earlier"}
		env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
		gomock.InOrder(
			env.groups.EXPECT().Subscribe(gomock.Any(), groupID, testUser.ID).
				Return((<-chan entity.GroupMessage)(live), nil),
			env.groups.EXPECT().Messages(gomock.Any(), groupID, testUser.ID).DoAndReturn(
				func(ctx context.Context, _, _ uuid.UUID) ([]entity.GroupMessage, error) {
					// Stored before the history read, so it shows up in both
					live <- earlier
					// Stored right after the history read
					live <- entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: "in between"}
					return []entity.GroupMessage{earlier}, nil
				}),
		)

		conn, _, err := websocket.DefaultDialer.Dial(feedURL, nil)
		require.NoError(t, err)
		defer conn.Close()
		readBody := func() string {
			require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
			_, data, err := conn.ReadMessage()
			require.NoError(t, err)
			var m entity.GroupMessage
			require.NoError(t, sonic.Unmarshal(data, &m))
			return m.Body
		}

		assert.Equal(t, "earlier", readBody())
		assert.Equal(t, "in between", readBody())
		live <- entity.GroupMessage{ID: uuid.New(), GroupID: groupID, Body: "later"}
		assert.Equal(t, "later", readBody())
	})

	t.Run("ends when the subscription ends", func(t *testing.T) {
		live := make(chan entity.GroupMessage)
		env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
		env.groups.EXPECT().Subscribe(gomock.Any(), groupID, testUser.ID).
			Return((<-chan entity.GroupMessage)(live), nil)
		env.groups.EXPECT().Messages(gomock.Any(), groupID, testUser.ID).Return(nil, nil)
		conn, _, err := websocket.DefaultDialer.Dial(feedURL, nil)
		require.NoError(t, err)
		defer conn.Close()

		// The service closes the stream once the user left the group
		close(live)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, _, err = conn.ReadMessage()
		var closeErr *websocket.CloseError
		require.True(t, errors.As(err, &closeErr), "got %v", err)
		assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
	})

	t.Run("closed on shutdown", func(t *testing.T) {
		live := make(chan entity.GroupMessage)
		env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
		env.groups.EXPECT().Messages(gomock.Any(), groupID, testUser.ID).Return(nil, nil)
		env.groups.EXPECT().Subscribe(gomock.Any(), groupID, testUser.ID).
			Return((<-chan entity.GroupMessage)(live), nil)
		conn, _, err := websocket.DefaultDialer.Dial(feedURL, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, env.server.Shutdown(context.Background()))
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, _, err = conn.ReadMessage()
		var closeErr *websocket.CloseError
		require.True(t, errors.As(err, &closeErr), "got %v", err)
		assert.Equal(t, websocket.CloseGoingAway, closeErr.Code)
	})
}
