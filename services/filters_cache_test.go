package services

import (
	"testing"

	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
)

func TestMergeFiltersKeepsOldValues(t *testing.T) {
	sem, status := 3, 1
	old := &dto.StudentSearchFilters{
		Course:   "B.Tech",
		Semester: &sem,
		Status:   &status,
	}
	next := &dto.StudentSearchFilters{Branch: "CSE"}

	merged := MergeFilters(old, next)
	if merged.Course != "B.Tech" {
		t.Errorf("course = %q, want carried over", merged.Course)
	}
	if merged.Branch != "CSE" {
		t.Errorf("branch = %q, want CSE", merged.Branch)
	}
	if merged.Semester == nil || *merged.Semester != 3 {
		t.Errorf("semester = %v, want 3", merged.Semester)
	}
}

func TestMergeFiltersNewValuesWin(t *testing.T) {
	oldSem, newSem := 3, 5
	old := &dto.StudentSearchFilters{Course: "B.Tech", Semester: &oldSem}
	next := &dto.StudentSearchFilters{Course: "MCA", Semester: &newSem}

	merged := MergeFilters(old, next)
	if merged.Course != "MCA" {
		t.Errorf("course = %q, want MCA", merged.Course)
	}
	if *merged.Semester != 5 {
		t.Errorf("semester = %d, want 5", *merged.Semester)
	}
}
