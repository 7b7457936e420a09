package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/laborlink/internal/config"
	"github.com/jonathan/laborlink/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample marketplace data",
	Long:  `Create a demo supervisor account, a batch of open postings, and the default minimum-wage policy. Intended for local development only.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	appConfig, err := config.NewAppConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, appConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := database.UpdateRatePolicy(ctx, db.DefaultMinWagePerHour); err != nil {
		return fmt.Errorf("failed to seed rate policy: %w", err)
	}

	supervisorID, err := seedSupervisor(ctx, database)
	if err != nil {
		return err
	}

	postings := samplePostings(supervisorID)
	g, gctx := errgroup.WithContext(ctx)
	for i := range postings {
		input := &postings[i]
		g.Go(func() error {
			created, err := database.CreateJobPosting(gctx, input)
			if err != nil {
				return fmt.Errorf("failed to seed posting %q: %w", input.Title, err)
			}
			log.Printf("Seeded posting %s (%s)", created.Title, created.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("Seed complete: %d postings for supervisor %s", len(postings), supervisorID)
	return nil
}

func seedSupervisor(ctx context.Context, database *db.DB) (uuid.UUID, error) {
	const email = "supervisor@laborlink.test"

	existing, err := database.GetUserByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up demo supervisor: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	userID, err := database.CreateUser(ctx, "Demo Supervisor", email, "+10000000000",
		db.RoleSupervisor, string(hash))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create demo supervisor: %w", err)
	}
	log.Printf("Created demo supervisor %s (%s)", email, userID)
	return userID, nil
}

func samplePostings(supervisorID uuid.UUID) []db.JobPostingCreateInput {
	nextMonday := time.Now().AddDate(0, 0, 8-int(time.Now().Weekday()))

	return []db.JobPostingCreateInput{
		{
			SupervisorID:     supervisorID,
			Title:            "Warehouse loading crew",
			Company:          "Harbor Logistics",
			LocationName:     "Dock 4, Eastside Yard",
			Description:      "Loading palletized freight. Gloves provided.",
			WageType:         db.WageTypeHourly,
			WageAmount:       75,
			RequiredDate:     nextMonday,
			DurationHours:    8,
			LaborersRequired: 6,
		},
		{
			SupervisorID:     supervisorID,
			Title:            "Site cleanup",
			Company:          "Meridian Construction",
			LocationName:     "12th & Vine build site",
			Description:      "Post-demolition debris removal and sorting.",
			WageType:         db.WageTypeDaily,
			WageAmount:       560,
			RequiredDate:     nextMonday.AddDate(0, 0, 1),
			DurationHours:    8,
			LaborersRequired: 4,
		},
		{
			SupervisorID:     supervisorID,
			Title:            "Event teardown",
			Company:          "Civic Center",
			LocationName:     "Main exhibition hall",
			Description:      "Staging and booth teardown after trade show.",
			WageType:         db.WageTypeHourly,
			WageAmount:       65,
			RequiredDate:     nextMonday.AddDate(0, 0, 2),
			DurationHours:    5,
			LaborersRequired: 10,
		},
	}
}
