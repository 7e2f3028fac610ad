package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/pagination"
	"github.com/mmynk/groupledger/internal/storage"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// listGroupsConcurrency bounds the parallel lookups of ListGroups.
const listGroupsConcurrency = 8

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	*Core
	shareTokens *auth.ShareTokenManager
}

// NewGroupService creates a new GroupService. shareTokens signs share links.
func NewGroupService(core *Core, shareTokens *auth.ShareTokenManager) *GroupService {
	return &GroupService{Core: core, shareTokens: shareTokens}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.GetGroupFormValues().GetName(),
		"participants_count", len(req.Msg.GetGroupFormValues().GetParticipants()),
	)

	group, err := groupFromForm("", req.Msg.GetGroupFormValues())
	if err != nil {
		slog.Warn("CreateGroup validation failed", "error", err)
		return nil, connectError(err)
	}
	// Participants of a new group always get fresh IDs.
	for i := range group.Participants {
		group.Participants[i].ID = ""
	}

	// Save to storage (generates IDs and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{Group: groupToAPI(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: groupToAPI(group)}), nil
}

// GetGroupDetails retrieves a group and the participants that cannot be
// removed because expenses reference them.
func (s *GroupService) GetGroupDetails(ctx context.Context, req *connect.Request[pb.GetGroupDetailsRequest]) (*connect.Response[pb.GetGroupDetailsResponse], error) {
	slog.Info("GetGroupDetails request received", "group_id", req.Msg.GroupId)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroupDetails failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	used, err := s.store.ParticipantsWithExpenses(ctx, group.ID)
	if err != nil {
		slog.Error("GetGroupDetails failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&pb.GetGroupDetailsResponse{
		Group:                    groupToAPI(group),
		ParticipantsWithExpenses: used,
	}), nil
}

// UpdateGroup updates an existing group and reconciles its participants.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[pb.UpdateGroupRequest]) (*connect.Response[pb.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.GetGroupFormValues().GetName(),
		"participants_count", len(req.Msg.GetGroupFormValues().GetParticipants()),
	)

	group, err := groupFromForm(req.Msg.GroupId, req.Msg.GetGroupFormValues())
	if err != nil {
		slog.Warn("UpdateGroup validation failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	unlock := s.locks.Lock(group.ID)
	defer unlock()

	activity, err := s.store.UpdateGroup(ctx, group)
	if err != nil {
		slog.Error("UpdateGroup failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}
	s.afterWrite(ctx, group.ID, activity)

	// Fetch updated group to get CreatedAt
	updatedGroup, err := s.store.GetGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&pb.UpdateGroupResponse{Group: groupToAPI(updatedGroup)}), nil
}

// ListGroups retrieves the requested groups, skipping IDs that do not exist.
// The response keeps the request order.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	slog.Info("ListGroups request received", "count", len(req.Msg.GroupIds))

	found := make([]*models.Group, len(req.Msg.GroupIds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listGroupsConcurrency)
	for i, id := range req.Msg.GroupIds {
		i, id := i, id
		g.Go(func() error {
			group, err := s.store.GetGroup(gctx, id)
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, connectError(err)
	}

	groups := make([]*pb.Group, 0, len(found))
	for _, group := range found {
		if group != nil {
			groups = append(groups, groupToAPI(group))
		}
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&pb.ListGroupsResponse{Groups: groups}), nil
}

// DeleteGroup removes a group by ID.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[pb.DeleteGroupRequest]) (*connect.Response[pb.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupId)

	unlock := s.locks.Lock(req.Msg.GroupId)
	defer unlock()

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupId); err != nil {
		slog.Error("DeleteGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}
	s.afterWrite(ctx, req.Msg.GroupId, nil)

	slog.Info("Group deleted", "group_id", req.Msg.GroupId)

	return connect.NewResponse(&pb.DeleteGroupResponse{}), nil
}

// ListActivities returns one page of a group's change log, newest first.
func (s *GroupService) ListActivities(ctx context.Context, req *connect.Request[pb.ListActivitiesRequest]) (*connect.Response[pb.ListActivitiesResponse], error) {
	slog.Debug("ListActivities request received", "group_id", req.Msg.GroupId, "limit", req.Msg.Limit)

	query := storage.ActivityQuery{
		GroupID: req.Msg.GroupId,
		Limit:   pagination.NormalizeLimit(req.Msg.Limit),
	}
	if req.Msg.Cursor != "" {
		cursor, err := pagination.DecodeActivityCursor(req.Msg.Cursor)
		if err != nil {
			return nil, connectError(err)
		}
		query.After = &cursor
	}

	if _, err := s.store.GetGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, connectError(err)
	}

	pageSize := query.Limit
	query.Limit++
	activities, err := s.store.ListActivities(ctx, query)
	if err != nil {
		slog.Error("ListActivities failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	resp := &pb.ListActivitiesResponse{Activities: []*pb.Activity{}}
	if len(activities) > pageSize {
		activities = activities[:pageSize]
		last := activities[len(activities)-1]
		resp.HasMore = true
		resp.NextCursor = pagination.EncodeActivityCursor(pagination.ActivityCursor{Time: last.Time, ID: last.ID})
	}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, activityToAPI(a))
	}

	return connect.NewResponse(resp), nil
}

// CreateShareLink issues a token that lets another client add the group.
func (s *GroupService) CreateShareLink(ctx context.Context, req *connect.Request[pb.CreateShareLinkRequest]) (*connect.Response[pb.CreateShareLinkResponse], error) {
	slog.Info("CreateShareLink request received", "group_id", req.Msg.GroupId)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError(err)
	}

	token, expiresAt, err := s.shareTokens.Generate(group.ID)
	if err != nil {
		slog.Error("CreateShareLink failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&pb.CreateShareLinkResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}

// ResolveShareLink returns the group a share token was issued for.
func (s *GroupService) ResolveShareLink(ctx context.Context, req *connect.Request[pb.ResolveShareLinkRequest]) (*connect.Response[pb.ResolveShareLinkResponse], error) {
	claims, err := s.shareTokens.Validate(req.Msg.Token)
	if err != nil {
		slog.Warn("ResolveShareLink rejected token", "error", err)
		return nil, connectError(err)
	}

	group, err := s.store.GetGroup(ctx, claims.GroupID)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Share link resolved",
		"group_id", group.ID,
		"expires_in", time.Until(claims.ExpiresAt.Time).Round(time.Minute),
	)

	return connect.NewResponse(&pb.ResolveShareLinkResponse{Group: groupToAPI(group)}), nil
}
