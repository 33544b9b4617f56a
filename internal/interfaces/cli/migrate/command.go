package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seedfund/internal/infrastructure/config"
	"seedfund/internal/infrastructure/database"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("running schema migration", "database", cfg.Database.Database)

	err = database.Get().AutoMigrate(
		&models.AccountModel{},
		&models.AuthMethodModel{},
		&models.OTPCodeModel{},
		&models.OAuthStateTokenModel{},
		&models.ProjectModel{},
		&models.InvestmentModel{},
		&models.RatingModel{},
		&models.WatchlistItemModel{},
		&models.ArticleModel{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}
