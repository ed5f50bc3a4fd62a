package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// HRAIService forecasts staffing and analyzes attendance through the prediction API
type HRAIService struct {
	client shared.AIClient
}

// NewHRAIService creates a new HRAIService
func NewHRAIService(client shared.AIClient) *HRAIService {
	return &HRAIService{client: client}
}

// PredictStaffingRequest describes the workload to staff
type PredictStaffingRequest struct {
	Department       string  `json:"department" binding:"required"`
	HorizonWeeks     int     `json:"horizonWeeks" binding:"required,min=1,max=52"`
	CurrentHeadcount int     `json:"currentHeadcount" binding:"gte=0"`
	PlannedPieces    int     `json:"plannedPieces" binding:"gte=0"`
	OvertimeRate     float64 `json:"overtimeRate" binding:"gte=0"`
}

// StaffingWeek is the predicted need for one week
type StaffingWeek struct {
	Week      int `json:"week"`
	Headcount int `json:"headcount"`
}

// StaffingForecast is the predicted staffing need of a department
type StaffingForecast struct {
	Department        string         `json:"department"`
	RequiredHeadcount int            `json:"required_headcount"`
	Gap               int            `json:"gap"`
	Confidence        float64        `json:"confidence"`
	Weekly            []StaffingWeek `json:"weekly"`
	Recommendations   []string       `json:"recommendations"`
}

type staffingReply struct {
	Prediction struct {
		RequiredHeadcount int            `json:"requiredHeadcount"`
		Weekly            []StaffingWeek `json:"weekly"`
	} `json:"prediction"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// PredictStaffing forecasts the headcount a department needs
func (s *HRAIService) PredictStaffing(ctx context.Context, req PredictStaffingRequest) (*StaffingForecast, error) {
	var reply staffingReply
	if err := s.client.GetPrediction(ctx, "staffing_forecast", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "predict staffing", err)
	}
	weekly := reply.Prediction.Weekly
	if weekly == nil {
		weekly = []StaffingWeek{}
	}
	recommendations := reply.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return &StaffingForecast{
		Department:        req.Department,
		RequiredHeadcount: reply.Prediction.RequiredHeadcount,
		Gap:               reply.Prediction.RequiredHeadcount - req.CurrentHeadcount,
		Confidence:        reply.Confidence,
		Weekly:            weekly,
		Recommendations:   recommendations,
	}, nil
}

// AnalyzeAttendanceRequest selects the attendance records to analyze
type AnalyzeAttendanceRequest struct {
	EmployeeIDs []uuid.UUID `json:"employeeIds,omitempty"`
	Department  string      `json:"department,omitempty"`
	From        string      `json:"from" binding:"required"`
	To          string      `json:"to" binding:"required"`
}

// AttendancePattern is a recurring attendance behavior
type AttendancePattern struct {
	Pattern    string  `json:"pattern"`
	Frequency  float64 `json:"frequency"`
	Severity   string  `json:"severity"`
	EmployeeID string  `json:"employee_id,omitempty"`
}

// AttendanceAnalysis is the assessment of attendance over a period
type AttendanceAnalysis struct {
	AbsenceRate float64             `json:"absence_rate"`
	Patterns    []AttendancePattern `json:"patterns"`
	Insights    []string            `json:"insights"`
}

type attendanceReply struct {
	Analysis struct {
		AbsenceRate float64 `json:"absenceRate"`
		Patterns    []struct {
			Pattern    string  `json:"pattern"`
			Frequency  float64 `json:"frequency"`
			Severity   string  `json:"severity"`
			EmployeeID string  `json:"employeeId"`
		} `json:"patterns"`
	} `json:"analysis"`
	Insights []string `json:"insights"`
}

// AnalyzeAttendance finds absence patterns over a period
func (s *HRAIService) AnalyzeAttendance(ctx context.Context, req AnalyzeAttendanceRequest) (*AttendanceAnalysis, error) {
	var reply attendanceReply
	if err := s.client.Call(ctx, "hr/analyze-attendance", "attendance_analysis", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "analyze attendance", err)
	}
	patterns := make([]AttendancePattern, len(reply.Analysis.Patterns))
	for i, p := range reply.Analysis.Patterns {
		patterns[i] = AttendancePattern{Pattern: p.Pattern, Frequency: p.Frequency, Severity: p.Severity, EmployeeID: p.EmployeeID}
	}
	insights := reply.Insights
	if insights == nil {
		insights = []string{}
	}
	return &AttendanceAnalysis{
		AbsenceRate: reply.Analysis.AbsenceRate,
		Patterns:    patterns,
		Insights:    insights,
	}, nil
}
