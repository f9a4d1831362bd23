package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

const (
	MessageHistoryLimit = 100
	MaxMessageLength    = 1000
)

type GroupsService struct {
	groupsRepo   repository.GroupsRepositoryI
	messagesRepo repository.MessagesRepositoryI
	usersRepo    repository.UsersRepositoryI
	bus          repository.MessageBusI
}

func NewGroupsService(
	groupsRepo repository.GroupsRepositoryI,
	messagesRepo repository.MessagesRepositoryI,
	usersRepo repository.UsersRepositoryI,
	bus repository.MessageBusI,
) *GroupsService {
	if groupsRepo == nil || messagesRepo == nil || usersRepo == nil || bus == nil {
		log.Fatal("on groups service provided nil dependencies")
	}
	return &GroupsService{
		groupsRepo:   groupsRepo,
		messagesRepo: messagesRepo,
		usersRepo:    usersRepo,
		bus:          bus,
	}
}

func (gs *GroupsService) user(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := gs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return user, nil
}

func (gs *GroupsService) GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	group, err := gs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return group, nil
}

func (gs *GroupsService) memberGroup(ctx context.Context, groupID, uid uuid.UUID) (*entity.Group, error) {
	group, err := gs.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(uid) {
		return nil, errorvalues.ErrNotGroupMember
	}
	return group, nil
}

func (gs *GroupsService) CreateGroup(ctx context.Context, uid uuid.UUID, req *CreateGroupRequest) (*entity.Group, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	user, err := gs.user(ctx, uid)
	if err != nil {
		return nil, err
	}
	id, err := gs.groupsRepo.Create(ctx, &entity.Group{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Icon:          req.Icon,
		CreatedBy:     uid,
		CreatedByName: user.DisplayName,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	gs.announce(ctx, id, user, "created the group")
	return gs.GetGroup(ctx, id)
}

func (gs *GroupsService) ListGroups(ctx context.Context, uid uuid.UUID, category, search string) ([]*entity.Group, error) {
	groups, err := gs.groupsRepo.List(ctx, uid, strings.ToLower(strings.TrimSpace(category)), strings.TrimSpace(search))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return groups, nil
}

func (gs *GroupsService) JoinGroup(ctx context.Context, groupID, uid uuid.UUID) (*entity.Group, error) {
	user, err := gs.user(ctx, uid)
	if err != nil {
		return nil, err
	}
	err = gs.groupsRepo.AddMember(ctx, groupID, uid)
	if err != nil && !errors.Is(err, errorvalues.ErrAlreadyMember) {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	joined := err == nil
	// Joining again brings back a group deleted for this user only
	if err = gs.usersRepo.UnhideGroup(ctx, uid, groupID); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if joined {
		gs.announce(ctx, groupID, user, "joined the group")
	}
	return gs.GetGroup(ctx, groupID)
}

func (gs *GroupsService) LeaveGroup(ctx context.Context, groupID, uid uuid.UUID) error {
	user, err := gs.user(ctx, uid)
	if err != nil {
		return err
	}
	if err = gs.groupsRepo.RemoveMember(ctx, groupID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrNotGroupMember) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	gs.announce(ctx, groupID, user, "left the group")
	return nil
}

func (gs *GroupsService) HideGroup(ctx context.Context, groupID, uid uuid.UUID) error {
	if err := gs.usersRepo.HideGroup(ctx, uid, groupID); err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) DeleteGroup(ctx context.Context, groupID, uid uuid.UUID) error {
	group, err := gs.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group.CreatedBy != uid {
		return errorvalues.ErrNotGroupCreator
	}
	if err = gs.groupsRepo.Delete(ctx, groupID); err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) SendMessage(ctx context.Context, groupID, uid uuid.UUID, text string) (*entity.GroupMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errorvalues.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, NewValidationError("message is too long")
	}
	if _, err := gs.memberGroup(ctx, groupID, uid); err != nil {
		return nil, err
	}
	user, err := gs.user(ctx, uid)
	if err != nil {
		return nil, err
	}
	msg := &entity.GroupMessage{
		GroupID:   groupID,
		UserID:    uid,
		UserName:  user.DisplayName,
		UserPhoto: user.PhotoURL,
		Body:      text,
		Kind:      entity.MessageKindUser,
	}
	if err = gs.store(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// store appends msg and then fans it out to live subscribers.
func (gs *GroupsService) store(ctx context.Context, msg *entity.GroupMessage) error {
	if err := gs.messagesRepo.Append(ctx, msg); err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	logFailure("publishing group message", gs.bus.Publish(ctx, msg), slog.String("group_id", msg.GroupID.String()))
	return nil
}

func (gs *GroupsService) announce(ctx context.Context, groupID uuid.UUID, actor *entity.User, action string) {
	err := gs.store(ctx, &entity.GroupMessage{
		GroupID:  groupID,
		UserID:   actor.ID,
		UserName: actor.DisplayName,
		Body:     actor.DisplayName + " " + action,
		Kind:     entity.MessageKindSystem,
	})
	logFailure("appending system message", err, slog.String("group_id", groupID.String()))
}

func (gs *GroupsService) Messages(ctx context.Context, groupID, uid uuid.UUID) ([]entity.GroupMessage, error) {
	if _, err := gs.memberGroup(ctx, groupID, uid); err != nil {
		return nil, err
	}
	msgs, err := gs.messagesRepo.ListByGroup(ctx, groupID, MessageHistoryLimit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return msgs, nil
}

func (gs *GroupsService) Subscribe(ctx context.Context, groupID, uid uuid.UUID) (<-chan entity.GroupMessage, error) {
	if _, err := gs.memberGroup(ctx, groupID, uid); err != nil {
		return nil, err
	}
	feed, err := gs.bus.Subscribe(ctx, groupID)
	if err != nil {
		return nil, errors.New("message bus error: " + err.Error())
	}
	out := make(chan entity.GroupMessage)
	go gs.forward(ctx, groupID, uid, feed, out)
	return out, nil
}

// forward relays feed to out and closes out once uid stops being a member.
// Membership changes are announced with system messages, so only those about uid trigger a check.
func (gs *GroupsService) forward(ctx context.Context, groupID, uid uuid.UUID, feed <-chan entity.GroupMessage, out chan<- entity.GroupMessage) {
	defer close(out)
	for m := range feed {
		if m.Kind == entity.MessageKindSystem && m.UserID == uid {
			_, err := gs.memberGroup(ctx, groupID, uid)
			if errors.Is(err, errorvalues.ErrNotGroupMember) || errors.Is(err, errorvalues.ErrGroupNotFound) {
				return
			}
			logFailure("checking feed membership", err, slog.String("group_id", groupID.String()))
		}
		select {
		case out <- m:
		case <-ctx.Done():
			return
		}
	}
}
