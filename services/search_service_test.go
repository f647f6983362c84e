package services

import (
	"testing"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Ravi Kumar ", "ravi kumar"},
		{"Café", "cafe"},
		{"ARYABHATTA", "aryabhatta"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.in); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("ravi", "ravi"); got != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("empty strings = %v, want 1.0", got)
	}
	if got := Similarity("abcd", "wxyz"); got != 0 {
		t.Errorf("disjoint strings = %v, want 0", got)
	}

	near := Similarity("kalpana", "kalpna")
	far := Similarity("kalpana", "tagore")
	if near <= far {
		t.Errorf("typo score %v should beat unrelated score %v", near, far)
	}
}

func TestRankMatchesOrdersByScore(t *testing.T) {
	keys := []string{"kalpana chawla", "tagore house", "aryabhatta"}
	hits := rankMatches("kalpana", keys, 10, func(key string, score float64) []SearchHit {
		return []SearchHit{{Name: key, Score: score}}
	})

	if len(hits) == 0 {
		t.Fatal("no hits for near-exact query")
	}
	if hits[0].Name != "kalpana chawla" {
		t.Errorf("top hit = %q, want kalpana chawla", hits[0].Name)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Score > hits[i-1].Score {
			t.Errorf("hits not sorted by score at %d", i)
		}
	}
}

func TestRankMatchesEmptyQuery(t *testing.T) {
	hits := rankMatches("   ", []string{"kalpana"}, 10, func(key string, score float64) []SearchHit {
		return []SearchHit{{Name: key, Score: score}}
	})
	if len(hits) != 0 {
		t.Errorf("expected no hits for blank query, got %d", len(hits))
	}
}

func TestRankStudentsSameNameBothReturned(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "Ravi Kumar", StudentCode: "STU00001"},
		{ID: 2, Name: "Ravi Kumar", StudentCode: "STU00002"},
		{ID: 3, Name: "Anita Desai", StudentCode: "STU00003"},
	}

	hits := rankStudents(students, "ravi kumar", 10)

	got := make(map[string]bool, len(hits))
	for _, h := range hits {
		got[h.Code] = true
	}
	if !got["STU00001"] || !got["STU00002"] {
		t.Fatalf("expected both namesakes in hits, got %+v", hits)
	}
}

func TestRankStudentsCodeMatchFirst(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "Ravi Kumar", StudentCode: "STU00001"},
		{ID: 2, Name: "Anita Desai", StudentCode: "STU00002"},
	}

	hits := rankStudents(students, "stu00002", 10)
	if len(hits) == 0 || hits[0].Code != "STU00002" {
		t.Fatalf("expected exact code match first, got %+v", hits)
	}
	if hits[0].Score != 1 {
		t.Errorf("code match score = %v, want 1", hits[0].Score)
	}
}
