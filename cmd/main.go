package main

import (
	"context"
	"fmt"
	"os"

	"medcare-admin/cmd/bootstrap"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medcare-admin",
		Short: "Hospital administration dashboard API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		Run: func(cmd *cobra.Command, args []string) {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				logrus.Fatalf("Failed to initialize application: %v", err)
			}

			// Run the application
			app.Run()
		},
	}
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the appointments of a day grouped by time slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			policyFlag, _ := cmd.Flags().GetString("policy")

			app, err := bootstrap.Init()
			if err != nil {
				return err
			}
			defer app.Close()

			if policyFlag == "" {
				policyFlag = app.Config.Schedule.SlotPolicy
			}
			policy, err := entity.ParseSlotPolicy(policyFlag)
			if err != nil {
				return err
			}

			appointments := app.AppointmentUsecase(policy)
			if date == "" {
				date = appointments.Today()
			}

			schedule, err := appointments.GetSchedule(context.Background(), date)
			if err != nil {
				return fmt.Errorf("failed to build schedule for %q: %w", date, err)
			}

			printSchedule(schedule)
			return nil
		},
	}
	cmd.Flags().String("date", "", "Day to print as YYYY-MM-DD (default today)")
	cmd.Flags().String("policy", "", "Slot policy: token or hour24 (default SCHEDULE_SLOT_POLICY)")
	return cmd
}

func printSchedule(schedule *dto.ScheduleResponse) {
	fmt.Printf("Schedule for %s (%s policy), %d appointment(s)\n", schedule.Date, schedule.Policy, schedule.Total)
	if len(schedule.Slots) == 0 {
		fmt.Println("No appointments scheduled for this date")
		return
	}
	for _, slot := range schedule.Slots {
		fmt.Printf("\n%s\n", slot.Time)
		for _, a := range slot.Appointments {
			fmt.Printf("  %-14s %-8s %-20s %-20s %-16s %s\n", a.ID, a.Time, a.PatientName, a.DoctorName, a.Department, a.StatusLabel)
		}
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				return m.Up()
			})
		},
	})

	// migrate down
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return withMigrator(func(m *database.Migrator) error {
				return m.Down(steps)
			})
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	cmd.AddCommand(downCmd)

	// migrate version
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				version, dirty, ok, err := m.Version()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("No migrations applied")
					return nil
				}
				fmt.Printf("Schema version: %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(fn func(m *database.Migrator) error) error {
	app, err := bootstrap.Configure()
	if err != nil {
		return err
	}

	migrator, err := database.NewMigrator(app.Config.DB, app.Log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return fn(migrator)
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample hospital records into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Configure()
			if err != nil {
				return err
			}
			defer app.Close()

			db, err := app.OpenDatabase()
			if err != nil {
				return err
			}

			if err := database.NewSeeder(db, app.Log).Seed(context.Background()); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			app.Log.Info("Sample data seeded successfully")
			return nil
		},
	}
}
