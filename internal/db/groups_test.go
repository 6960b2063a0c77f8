package db

import (
	"errors"
	"testing"
	"time"

	"taskvault/internal/models"
)

func TestGroupLifecycle(t *testing.T) {
	database := openTestDB(t)

	g, err := database.CreateGroup("Work")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	// Names are not unique.
	if _, err := database.CreateGroup("Work"); err != nil {
		t.Fatalf("duplicate name should be allowed: %v", err)
	}

	if err := database.RenameGroup(g.ID, "Office"); err != nil {
		t.Fatalf("RenameGroup: %v", err)
	}
	got, err := database.GetGroup(g.ID)
	if err != nil || got.Name != "Office" {
		t.Fatalf("GetGroup = %+v, %v", got, err)
	}

	if err := database.DeleteGroup(g.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if err := database.DeleteGroup(g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGroupClearsTaskReference(t *testing.T) {
	database := openTestDB(t)
	user := seedUser(t, database, "ana@mail.com")

	g, err := database.CreateGroup("Work")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	now := time.Now()
	saved, err := database.SaveTask(&models.Task{
		Title: "t", Description: "d", CreatedAt: now, DueAt: now,
		Status: models.StatusTodo, Priority: models.PriorityNormal,
		UserID: user.ID, GroupID: &g.ID,
	})
	if err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	if err := database.DeleteGroup(g.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}

	got, err := database.GetTaskByID(saved.ID)
	if err != nil {
		t.Fatalf("task deleted with its group: %v", err)
	}
	if got.GroupID != nil {
		t.Errorf("group reference not cleared: %v", *got.GroupID)
	}
}

func TestTaskTypes(t *testing.T) {
	database := openTestDB(t)

	tt, err := database.CreateTaskType("General", "Everyday tasks")
	if err != nil {
		t.Fatalf("CreateTaskType: %v", err)
	}

	types, err := database.ListTaskTypes()
	if err != nil || len(types) != 1 {
		t.Fatalf("ListTaskTypes = %v, %v", types, err)
	}
	if types[0].Description != "Everyday tasks" {
		t.Errorf("description mismatch: %+v", types[0])
	}

	if err := database.DeleteTaskType(tt.ID); err != nil {
		t.Fatalf("DeleteTaskType: %v", err)
	}
	if _, err := database.GetTaskType(tt.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEventOwnership(t *testing.T) {
	database := openTestDB(t)
	owner := seedUser(t, database, "ana@mail.com")
	other := seedUser(t, database, "bob@mail.com")

	e, err := database.CreateEvent(&models.Event{
		Title: "Standup", Description: "daily", Date: "2026-03-02", Time: "09:30",
		Priority: models.PriorityNormal, UserID: owner.ID,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := database.ListEventsByUser(owner.ID)
	if err != nil || len(events) != 1 {
		t.Fatalf("ListEventsByUser = %v, %v", events, err)
	}

	if err := database.DeleteEvent(e.ID, other.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("non-owner delete: expected ErrNotFound, got %v", err)
	}
	if err := database.DeleteEvent(e.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestEventOrdering(t *testing.T) {
	database := openTestDB(t)
	user := seedUser(t, database, "ana@mail.com")

	for _, e := range []models.Event{
		{Title: "later", Date: "2026-03-02", Time: "10:00", Priority: models.PriorityNormal, UserID: user.ID},
		{Title: "first", Date: "2026-03-01", Time: "09:00", Priority: models.PriorityNormal, UserID: user.ID},
		{Title: "second", Date: "2026-03-02", Time: "08:00", Priority: models.PriorityNormal, UserID: user.ID},
	} {
		if _, err := database.CreateEvent(&e); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	events, err := database.ListEventsByUser(user.ID)
	if err != nil {
		t.Fatalf("ListEventsByUser: %v", err)
	}
	want := []string{"first", "second", "later"}
	for i, w := range want {
		if events[i].Title != w {
			t.Errorf("events[%d] = %q, want %q", i, events[i].Title, w)
		}
	}
}
