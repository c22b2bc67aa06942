package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-1")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true")
	}
	if userID != "user-1" {
		t.Errorf("expected user id 'user-1', got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok == false for missing value")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok == false for non-string value")
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "session-1")

	sessionID, ok := GetSessionIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true")
	}
	if sessionID != "session-1" {
		t.Errorf("expected session id 'session-1', got %s", sessionID)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	if _, ok := GetSessionIDFromContext(context.Background()); ok {
		t.Error("expected ok == false for missing value")
	}
}

func TestContextKeys_DoNotCollideAcrossTypes(t *testing.T) {
	// a foreign key type with the same text must not satisfy the typed key
	type foreignKey string
	ctx := context.WithValue(context.Background(), foreignKey("userID"), "user-1")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected typed key to be distinct from foreign key types")
	}
}
