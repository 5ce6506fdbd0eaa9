package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

// ImageField is the multipart field the face validator reads.
const ImageField = "image1"

type AttendanceService interface {
	// ValidateImage asks the backend to match a face capture against the
	// user's reference photo.
	ValidateImage(ctx context.Context, userID models.ID, filename string, image []byte) *api.Result
	CheckIn(ctx context.Context, userID models.ID, at time.Time) *api.Result
	CheckOut(ctx context.Context, userID models.ID, at time.Time) *api.Result
	GetAttendance(ctx context.Context, userID models.ID, day time.Time) *api.Result
	GetTeamAnalysis(ctx context.Context, day time.Time) *api.Result
	UpdateAttendance(ctx context.Context, c models.AttendanceCorrection) *api.Result
}

type attendanceService struct {
	caller Caller
}

func NewAttendanceService(caller Caller) AttendanceService {
	return &attendanceService{caller: caller}
}

func (s *attendanceService) ValidateImage(ctx context.Context, userID models.ID, filename string, image []byte) *api.Result {
	if filename == "" {
		filename = "capture.jpg"
	}
	return s.caller.Call(ctx, api.KeyValidateImage, api.Options{
		Params: map[string]string{"userId": userID.String()},
		Form:   api.NewForm().AddFile(ImageField, filename, image),
	})
}

func (s *attendanceService) CheckIn(ctx context.Context, userID models.ID, at time.Time) *api.Result {
	return s.caller.Call(ctx, api.KeyCheckIn, api.Options{
		JSON: models.CheckIn{UserID: userID, CheckInTime: formatTimestamp(at)},
	})
}

func (s *attendanceService) CheckOut(ctx context.Context, userID models.ID, at time.Time) *api.Result {
	return s.caller.Call(ctx, api.KeyCheckOut, api.Options{
		JSON: models.CheckOut{UserID: userID, CheckOutTime: formatTimestamp(at)},
	})
}

func (s *attendanceService) GetAttendance(ctx context.Context, userID models.ID, day time.Time) *api.Result {
	return s.caller.Call(ctx, api.KeyGetTodayAttendance, api.Options{
		Params: map[string]string{"userId": userID.String(), "date": formatDate(day)},
	})
}

func (s *attendanceService) GetTeamAnalysis(ctx context.Context, day time.Time) *api.Result {
	return s.caller.Call(ctx, api.KeyGetTeamAttendanceAnalysis, api.Options{
		Params: map[string]string{"date": formatDate(day)},
	})
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, c models.AttendanceCorrection) *api.Result {
	return s.caller.Call(ctx, api.KeyUpdateAttendance, api.Options{JSON: c})
}
