package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/limbo/rehabit/pkg/httputil"
)

const (
	feedReadLimit    = 10 * 1024
	feedPongWait     = 60 * time.Second
	feedPingInterval = 30 * time.Second
	feedWriteWait    = 10 * time.Second
)

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type GroupsResponse struct {
	Groups []*entity.Group `json:"groups"`
}

type MessagesResponse struct {
	GroupID  string                `json:"group_id"`
	Messages []entity.GroupMessage `json:"messages"`
}

func (s *Server) ListGroups(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list groups error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	query := r.URL.Query()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	groups, err := s.groupsService.ListGroups(ctx, uid, query.Get("category"), query.Get("q"))
	if err != nil {
		writeServiceError(w, logger, "list groups", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GroupsResponse{Groups: groups})
}

func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGroupRequest
	err = httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("create group error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	group, err := s.groupsService.CreateGroup(ctx, uid, &service.CreateGroupRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
	})
	if err != nil {
		writeServiceError(w, logger, "create group", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, group)
	logger.Info("group created", slog.String("group_id", group.ID.String()))
}

func (s *Server) GetGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get group error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	group, err := s.groupsService.GetGroup(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get group", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, group)
}

func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("join group error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	group, err := s.groupsService.JoinGroup(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "join group", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, group)
}

// groupAction runs a membership mutation that answers with no content.
func (s *Server) groupAction(w http.ResponseWriter, r *http.Request, op string,
	action func(ctx context.Context, groupID, uid uuid.UUID) error) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = action(ctx, id, uid); err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info(op+" done", slog.String("group_id", id.String()))
}

func (s *Server) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	s.groupAction(w, r, "leave group", s.groupsService.LeaveGroup)
}

func (s *Server) HideGroup(w http.ResponseWriter, r *http.Request) {
	s.groupAction(w, r, "hide group", s.groupsService.HideGroup)
}

func (s *Server) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	s.groupAction(w, r, "delete group", s.groupsService.DeleteGroup)
}

func (s *Server) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get messages error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get messages error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	msgs, err := s.groupsService.Messages(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get messages", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MessagesResponse{GroupID: id.String(), Messages: msgs})
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("send message error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("send message error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	var req SendMessageRequest
	err = httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("send message error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	msg, err := s.groupsService.SendMessage(ctx, id, uid, req.Message)
	if err != nil {
		writeServiceError(w, logger, "send message", err)
		return
	}
	s.metrics.GroupMessages.Inc()
	httputil.WriteJSONResponse(w, http.StatusCreated, msg)
}

// GroupFeed streams group history and then live messages over a websocket.
// Text frames {"message": "..."} from the client are posted to the group.
func (s *Server) GroupFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("group feed error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("group feed error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	// Subscribe before loading history so nothing published in between is lost
	feedCtx, stop := context.WithCancel(s.feedsCtx)
	defer stop()
	live, err := s.groupsService.Subscribe(feedCtx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "open group feed", err)
		return
	}
	history, err := func() ([]entity.GroupMessage, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		return s.groupsService.Messages(ctx, id, uid)
	}()
	if err != nil {
		writeServiceError(w, logger, "open group feed", err)
		return
	}
	delivered := make(map[uuid.UUID]struct{}, len(history))
	for _, m := range history {
		delivered[m.ID] = struct{}{}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the client
		logger.Error("group feed error: upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	s.metrics.FeedConnections.Inc()
	defer s.metrics.FeedConnections.Dec()
	logger.Info("group feed opened", slog.String("group_id", id.String()))

	for _, m := range history {
		if err = writeFeedMessage(conn, m); err != nil {
			logger.Error("group feed error: writing history", slog.String("error", err.Error()))
			return
		}
	}

	go s.readFeed(conn, stop, logger, id, uid)

	ticker := time.NewTicker(feedPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-feedCtx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"),
				time.Now().Add(feedWriteWait))
			logger.Info("group feed closed", slog.String("group_id", id.String()))
			return
		case m, ok := <-live:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed ended"),
					time.Now().Add(feedWriteWait))
				logger.Info("group feed ended", slog.String("group_id", id.String()))
				return
			}
			if _, dup := delivered[m.ID]; dup {
				delete(delivered, m.ID)
				continue
			}
			if err = writeFeedMessage(conn, m); err != nil {
				logger.Error("group feed error: writing message", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(feedWriteWait)); err != nil {
				logger.Error("group feed error: ping failed", slog.String("error", err.Error()))
				return
			}
		}
	}
}

// readFeed consumes client frames until the connection fails, then stops the feed.
func (s *Server) readFeed(conn *websocket.Conn, stop context.CancelFunc, logger *slog.Logger, groupID, uid uuid.UUID) {
	defer stop()
	conn.SetReadLimit(feedReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(feedPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("group feed error: reading", slog.String("error", err.Error()))
			}
			return
		}
		if kind != websocket.TextMessage || len(data) == 0 {
			continue
		}
		var req SendMessageRequest
		if err = sonic.Unmarshal(data, &req); err != nil {
			logger.Warn("group feed: skipping malformed frame")
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		_, err = s.groupsService.SendMessage(ctx, groupID, uid, req.Message)
		cancel()
		if err != nil {
			// Delivery errors stay on this connection, the feed keeps running
			logger.Warn("group feed: message rejected", slog.String("error", err.Error()))
			continue
		}
		s.metrics.GroupMessages.Inc()
	}
}

func writeFeedMessage(conn *websocket.Conn, m entity.GroupMessage) error {
	data, err := sonic.Marshal(m)
	if err != nil {
		return err
	}
	if err = conn.SetWriteDeadline(time.Now().Add(feedWriteWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
