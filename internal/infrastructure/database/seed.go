package database

import (
	"context"
	"fmt"
	"time"

	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/infrastructure/sampledata"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder loads the sample hospital records into an empty or partially
// seeded database. Rows that already exist are left untouched.
type Seeder struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewSeeder(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log,
		now: time.Now,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	now := s.now()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patients := sampledata.Patients()
		doctors := sampledata.Doctors()
		appointments := sampledata.Appointments(now)
		metrics := sampledata.ReportMetrics()
		admissions := sampledata.Admissions()
		demographics := sampledata.Demographics()

		steps := []struct {
			name string
			rows any
		}{
			{"patients", &patients},
			{"doctors", &doctors},
			{"appointments", &appointments},
			{"report metrics", &metrics},
			{"department admissions", &admissions},
			{"demographics", &demographics},
		}
		for _, step := range steps {
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(step.rows)
			if result.Error != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, result.Error)
			}
			s.log.Infof("Seeded %d %s", result.RowsAffected, step.name)
		}

		if err := s.seedActivities(tx, now); err != nil {
			return err
		}
		return s.seedCensus(tx, now)
	})
}

// seedActivities inserts the feed oldest first and lets the database assign
// IDs, so the auto-increment sequence stays ahead of the seeded rows.
func (s *Seeder) seedActivities(tx *gorm.DB, now time.Time) error {
	var count int64
	if err := tx.Model(&entity.Activity{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if count > 0 {
		s.log.Info("Activities already present, skipping")
		return nil
	}

	feed := sampledata.Activities(now)
	for i := len(feed) - 1; i >= 0; i-- {
		activity := feed[i]
		activity.ID = 0
		if err := tx.Create(&activity).Error; err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", activity.Title, err)
		}
	}
	s.log.Infof("Seeded %d activities", len(feed))
	return nil
}

func (s *Seeder) seedCensus(tx *gorm.DB, now time.Time) error {
	var count int64
	if err := tx.Model(&entity.Census{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count census snapshots: %w", err)
	}
	if count > 0 {
		s.log.Info("Census snapshot already present, skipping")
		return nil
	}

	census := sampledata.Census(now)
	census.ID = 0
	if err := tx.Create(&census).Error; err != nil {
		return fmt.Errorf("failed to seed census snapshot: %w", err)
	}
	s.log.Info("Seeded census snapshot")
	return nil
}
