package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

type LeaveService interface {
	GetYearlyStats(ctx context.Context, userID models.ID, year int) *api.Result
	GetMonthlyStats(ctx context.Context, userID models.ID) *api.Result
	ApplyLeave(ctx context.Context, req models.LeaveRequest) *api.Result
	ApplyPermission(ctx context.Context, userID models.ID, req models.PermissionRequest) *api.Result
	GetAllApplications(ctx context.Context) *api.Result
	ReviewLeave(ctx context.Context, applicationID, reviewerID models.ID, decisions []models.ReviewDecision) *api.Result
	ReviewPermission(ctx context.Context, reviewerID, permissionID models.ID, action, comment string) *api.Result
	GetLeaveApplicationDetails(ctx context.Context, applicationID models.ID) *api.Result
	GetUserLeaveHistory(ctx context.Context, userID models.ID) *api.Result
}

type leaveService struct {
	caller Caller
}

func NewLeaveService(caller Caller) LeaveService {
	return &leaveService{caller: caller}
}

func (s *leaveService) GetYearlyStats(ctx context.Context, userID models.ID, year int) *api.Result {
	return s.caller.Call(ctx, api.KeyGetYearlyStats, api.Options{
		Params: map[string]string{"id": userID.String(), "year": strconv.Itoa(year)},
	})
}

func (s *leaveService) GetMonthlyStats(ctx context.Context, userID models.ID) *api.Result {
	return s.caller.Call(ctx, api.KeyGetMonthlyStats, api.Options{
		Params: map[string]string{"id": userID.String()},
	})
}

func (s *leaveService) ApplyLeave(ctx context.Context, req models.LeaveRequest) *api.Result {
	if req.LeaveSource == "" {
		req.LeaveSource = models.LeaveSourceRegular
	}
	return s.caller.Call(ctx, api.KeyApplyLeave, api.Options{JSON: req})
}

func (s *leaveService) ApplyPermission(ctx context.Context, userID models.ID, req models.PermissionRequest) *api.Result {
	return s.caller.Call(ctx, api.KeyApplyPermission, api.Options{
		Params: map[string]string{"userId": userID.String()},
		JSON:   req,
	})
}

func (s *leaveService) GetAllApplications(ctx context.Context) *api.Result {
	return s.caller.Call(ctx, api.KeyGetAllApplications, api.Options{})
}

// ReviewLeave submits one decision per day of the application.
func (s *leaveService) ReviewLeave(ctx context.Context, applicationID, reviewerID models.ID, decisions []models.ReviewDecision) *api.Result {
	normalized := make([]models.ReviewDecision, len(decisions))
	for i, d := range decisions {
		d.Action = models.NormalizeDecision(d.Action)
		normalized[i] = d
	}
	return s.caller.Call(ctx, api.KeyReviewLeave, api.Options{
		Params: map[string]string{"id": applicationID.String()},
		JSON:   models.LeaveReview{ReviewerID: reviewerID, Decisions: normalized},
	})
}

func (s *leaveService) ReviewPermission(ctx context.Context, reviewerID, permissionID models.ID, action, comment string) *api.Result {
	return s.caller.Call(ctx, api.KeyReviewPermission, api.Options{
		Params: map[string]string{"reviewerId": reviewerID.String()},
		JSON: models.PermissionReview{
			PermissionID:    permissionID,
			Action:          models.NormalizeDecision(action),
			ReviewerComment: comment,
		},
	})
}

func (s *leaveService) GetLeaveApplicationDetails(ctx context.Context, applicationID models.ID) *api.Result {
	return s.caller.Call(ctx, api.KeyGetLeaveDetails, api.Options{
		Params: map[string]string{"id": applicationID.String()},
	})
}

func (s *leaveService) GetUserLeaveHistory(ctx context.Context, userID models.ID) *api.Result {
	return s.caller.Call(ctx, api.KeyGetUserLeaveHistory, api.Options{
		Params: map[string]string{"userId": userID.String()},
	})
}
