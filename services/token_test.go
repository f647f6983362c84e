package services

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if role != 1 {
		t.Errorf("role = %d, want 1", role)
	}
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	if _, _, err := GetUserIDFromToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, _, err := GetUserIDFromToken("a.b.c"); err == nil {
		t.Error("expected error for undecodable payload")
	}
}

func TestFormatStudentCode(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "STU00001"},
		{42, "STU00042"},
		{99999, "STU99999"},
		{123456, "STU123456"},
	}
	for _, tt := range tests {
		if got := FormatStudentCode(tt.seq); got != tt.want {
			t.Errorf("FormatStudentCode(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestNewReceiptNumber(t *testing.T) {
	a := NewReceiptNumber()
	b := NewReceiptNumber()
	if len(a) != len("RCP-")+8 {
		t.Errorf("unexpected receipt length: %q", a)
	}
	if a == b {
		t.Error("receipt numbers should not repeat")
	}
}
