package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
)

func TestMedicineService_AddAndList(t *testing.T) {
	repo := NewMockMedicineRepository()
	svc := NewMedicineService(repo)

	med, err := svc.Add(context.Background(), &domain.CreateMedicineRequest{
		UserID: "user-1",
		Name:   "Vitamin D",
		Time:   "08:30",
		Dosage: "1000 IU",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if med.ID == uuid.Nil {
		t.Fatalf("Add() did not assign an id")
	}
	if med.TakenToday {
		t.Fatalf("new medicine should not be marked taken")
	}

	meds, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(meds) != 1 || meds[0].Name != "Vitamin D" {
		t.Fatalf("unexpected list: %+v", meds)
	}

	// Unknown user lists empty, not an error.
	meds, err = svc.List(context.Background(), "nobody")
	if err != nil || len(meds) != 0 {
		t.Fatalf("List() for unknown user = %v, %v", meds, err)
	}
}

func TestMedicineService_ToggleTaken(t *testing.T) {
	repo := NewMockMedicineRepository()
	svc := NewMedicineService(repo)

	med, err := svc.Add(context.Background(), &domain.CreateMedicineRequest{
		UserID: "user-1",
		Name:   "Magnesium",
		Time:   "21:30",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	toggled, err := svc.ToggleTaken(context.Background(), med.ID)
	if err != nil {
		t.Fatalf("ToggleTaken() error = %v", err)
	}
	if !toggled.TakenToday {
		t.Fatalf("expected taken_today true after first toggle")
	}

	toggled, err = svc.ToggleTaken(context.Background(), med.ID)
	if err != nil {
		t.Fatalf("ToggleTaken() error = %v", err)
	}
	if toggled.TakenToday {
		t.Fatalf("expected taken_today false after second toggle")
	}

	if _, err := svc.ToggleTaken(context.Background(), uuid.New()); err != domain.ErrNotFound {
		t.Fatalf("ToggleTaken() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestMedicineService_Remove(t *testing.T) {
	repo := NewMockMedicineRepository()
	svc := NewMedicineService(repo)

	med, err := svc.Add(context.Background(), &domain.CreateMedicineRequest{
		UserID: "user-1",
		Name:   "Iron",
		Time:   "12:00",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := svc.Remove(context.Background(), med.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := svc.Remove(context.Background(), med.ID); err != domain.ErrNotFound {
		t.Fatalf("Remove() twice error = %v, want ErrNotFound", err)
	}
}

func TestEmergencyService_ContactUpsert(t *testing.T) {
	repo := NewMockEmergencyContactRepository()
	svc := NewEmergencyService(repo)

	if _, err := svc.GetContact(context.Background(), "user-1"); err != domain.ErrNotFound {
		t.Fatalf("GetContact() before set error = %v, want ErrNotFound", err)
	}

	contact, err := svc.SetContact(context.Background(), "user-1", "+1-555-0100")
	if err != nil {
		t.Fatalf("SetContact() error = %v", err)
	}
	if contact.Contact != "+1-555-0100" {
		t.Fatalf("unexpected contact: %+v", contact)
	}

	// Second set replaces the stored contact.
	if _, err := svc.SetContact(context.Background(), "user-1", "help@example.com"); err != nil {
		t.Fatalf("SetContact() error = %v", err)
	}
	got, err := svc.GetContact(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetContact() error = %v", err)
	}
	if got.Contact != "help@example.com" {
		t.Fatalf("upsert did not replace contact: %+v", got)
	}
}

func TestEmergencyService_Resources(t *testing.T) {
	svc := NewEmergencyService(NewMockEmergencyContactRepository())

	resources := svc.Resources()
	if len(resources) == 0 {
		t.Fatalf("expected a non-empty emergency directory")
	}
	if resources[0].Contact != "911" {
		t.Fatalf("expected emergency services first, got %+v", resources[0])
	}
}
