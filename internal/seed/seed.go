package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 21

var seedUsers = []string{"demo", "alice", "bob"}

// Run seeds the database with sample stress logs and medicine reminders.
// Safe to call multiple times: users that already have entries are skipped.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.StressLog{}, &domain.Medicine{}, &domain.EmergencyContact{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, userID := range seedUsers {
		if err := seedStressLogsForUser(db, userID, rng); err != nil {
			return err
		}
		if err := seedMedicinesForUser(db, userID); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedStressLogsForUser(db *gorm.DB, userID string, rng *rand.Rand) error {
	var count int64
	if err := db.Model(&domain.StressLog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count stress logs for %s: %w", userID, err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := seededDays - 1; i >= 0; i-- {
		at := now.AddDate(0, 0, -i).Add(-time.Duration(rng.Intn(120)) * time.Minute)

		tag := domain.SuggestedTags[rng.Intn(len(domain.SuggestedTags))]
		sleep := 5.0 + rng.Float64()*4
		work := 6.0 + rng.Float64()*6
		heartRate := 60 + rng.Intn(30)

		entry := domain.StressLog{
			ID:         uuid.New(),
			UserID:     userID,
			Timestamp:  at.Unix(),
			Date:       at.Format("2006-01-02"),
			Mood:       1 + rng.Intn(10),
			Tag:        &tag,
			SleepHours: &sleep,
			WorkHours:  &work,
			HeartRate:  &heartRate,
		}

		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create stress log: %w", err)
		}
	}
	return nil
}

func seedMedicinesForUser(db *gorm.DB, userID string) error {
	var count int64
	if err := db.Model(&domain.Medicine{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count medicines for %s: %w", userID, err)
	}
	if count > 0 {
		return nil
	}

	meds := []domain.Medicine{
		{ID: uuid.New(), UserID: userID, Name: "Vitamin D", Time: "08:00", Dosage: "1000 IU"},
		{ID: uuid.New(), UserID: userID, Name: "Magnesium", Time: "21:30", Dosage: "200 mg"},
	}
	for _, med := range meds {
		if err := db.Create(&med).Error; err != nil {
			return fmt.Errorf("failed to create medicine: %w", err)
		}
	}
	return nil
}
