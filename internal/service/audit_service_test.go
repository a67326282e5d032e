package service

import (
	"testing"

	"github.com/be3health/patient-registry/internal/domain"
	"github.com/be3health/patient-registry/internal/testutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestAuditLogAsync(t *testing.T) {
	repo := &testutil.FakeAuditRepo{}
	svc := NewAuditService(repo, testCollector, zap.NewNop())

	userID := uuid.New()
	for i := 0; i < 5; i++ {
		svc.LogAsync(AuditEntry{
			UserID:       userID,
			Action:       "create",
			ResourceType: "patient",
			ResourceID:   "1",
			IPAddress:    "127.0.0.1",
			RequestID:    "req-1",
		})
	}

	// Shutdown drains the buffer before returning.
	svc.Shutdown()

	if repo.Count() != 5 {
		t.Fatalf("persisted %d entries, want 5", repo.Count())
	}
	if repo.Entries[0].Action != domain.AuditAction("create") {
		t.Errorf("action = %q", repo.Entries[0].Action)
	}
	if repo.Entries[0].UserID != userID {
		t.Errorf("user id = %s", repo.Entries[0].UserID)
	}
}
