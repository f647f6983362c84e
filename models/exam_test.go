package models

import (
	"testing"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{95, "A+"},
		{90, "A+"},
		{85, "A"},
		{72, "B"},
		{65, "C"},
		{55, "D"},
		{40, "E"},
		{35, "E"},
		{34.9, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.percentage); got != tt.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestFeeIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	fee := Fee{Status: constants.FeeStatusPending, DueDate: now.AddDate(0, 0, -1)}
	if !fee.IsOverdue(now) {
		t.Error("pending fee past due date should be overdue")
	}

	fee.DueDate = now.AddDate(0, 0, 1)
	if fee.IsOverdue(now) {
		t.Error("pending fee before due date should not be overdue")
	}

	fee.Status = constants.FeeStatusPaid
	fee.DueDate = now.AddDate(0, 0, -1)
	if fee.IsOverdue(now) {
		t.Error("paid fee should never be overdue")
	}
}
