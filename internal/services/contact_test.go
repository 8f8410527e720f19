package services

import (
	"encoding/json"
	"testing"

	"github.com/habitat-caracas/habitat/backend/internal/models"
)

func newContactService(t *testing.T) (*ContactService, *SiteSettingService) {
	t.Helper()
	db := setupTestDB(t)
	settings := NewSiteSettingService(db)
	return NewContactService(db, settings, nil), settings
}

func TestContactCreate_Defaults(t *testing.T) {
	svc, _ := newContactService(t)

	contact, err := svc.Create(&ContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Interested in the loft",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if contact.IsRead {
		t.Error("new submissions must start unread")
	}
	if contact.AssignedToID != nil {
		t.Error("new submissions must start unassigned")
	}
	if contact.SubmittedAt.IsZero() {
		t.Error("submitted_at must be set")
	}
}

func TestContactList_StaffVisibility(t *testing.T) {
	svc, _ := newContactService(t)

	a, _ := svc.Create(&ContactRequest{Name: "A", Email: "a@x.com", Message: "m"})
	svc.Create(&ContactRequest{Name: "B", Email: "b@x.com", Message: "m"})

	svc.Update(a.ID, &UpdateContactRequest{AssignedToID: uintPtr(3)})

	staff, err := svc.List(0, 0, 3, models.RoleStaff)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(staff) != 1 || staff[0].Name != "A" {
		t.Errorf("staff should only see their assignment, got %d rows", len(staff))
	}

	manager, _ := svc.List(0, 0, 3, models.RoleManager)
	if len(manager) != 2 {
		t.Errorf("manager should see all contacts, got %d", len(manager))
	}
}

func TestContactUpdate_ReadAndAssignment(t *testing.T) {
	svc, _ := newContactService(t)

	created, _ := svc.Create(&ContactRequest{Name: "A", Email: "a@x.com", Message: "m"})

	isRead := true
	updated, err := svc.Update(created.ID, &UpdateContactRequest{
		IsRead:       &isRead,
		AssignedToID: uintPtr(9),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !updated.IsRead {
		t.Error("is_read not applied")
	}
	if updated.AssignedToID == nil || *updated.AssignedToID != 9 {
		t.Errorf("assignment not applied, got %v", updated.AssignedToID)
	}
	if updated.Name != "A" {
		t.Errorf("untouched field changed: %q", updated.Name)
	}
}

func TestContactDelete(t *testing.T) {
	svc, _ := newContactService(t)

	created, _ := svc.Create(&ContactRequest{Name: "A", Email: "a@x.com", Message: "m"})
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := svc.Get(created.ID); err == nil {
		t.Error("expected not found after delete")
	}

	if err := svc.Delete(9999); err == nil {
		t.Error("expected error deleting missing contact")
	}
}

func TestResolveRecipient(t *testing.T) {
	svc, settings := newContactService(t)

	// Explicit override wins over everything
	got, err := svc.ResolveRecipient("override@x.com", "caller@x.com")
	if err != nil || got != "override@x.com" {
		t.Errorf("ResolveRecipient() = %q, %v", got, err)
	}

	// No override, no setting: fall back to caller
	got, err = svc.ResolveRecipient("", "caller@x.com")
	if err != nil || got != "caller@x.com" {
		t.Errorf("ResolveRecipient() = %q, %v", got, err)
	}

	// Configured setting beats caller, unwrapping the stored shape
	settings.Upsert("contact_email", json.RawMessage(`"info@habitat.example"`), "")
	got, err = svc.ResolveRecipient("", "caller@x.com")
	if err != nil || got != "info@habitat.example" {
		t.Errorf("ResolveRecipient() = %q, %v", got, err)
	}

	// Nothing resolves
	svc2, _ := newContactService(t)
	if _, err := svc2.ResolveRecipient("", ""); err == nil {
		t.Error("expected error when no recipient resolves")
	}
}
