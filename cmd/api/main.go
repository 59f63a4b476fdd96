package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/necfeedback/coursefeedback/internal/app/repositories"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/bootstrap"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
	"github.com/necfeedback/coursefeedback/internal/server"
)

// @title Course Feedback API
// @version 1.0
// @description API for collecting and analysing student course feedback

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, prefixed with "Bearer "

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "coursefeedback",
		Short:         "Course feedback collection and analysis service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML config file")

	serve := serveCmd()
	root.RunE = serve.RunE
	root.AddCommand(serve, migrateCmd(), importCoursesCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Command failed")
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(configPath)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			if err := srv.Run(); err != nil {
				return err
			}
			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and seed the default questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.PrepareDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			database.Close()
			return nil
		},
	}
}

func importCoursesCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-courses",
		Short: "Import a course batch CSV without going through the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			database, err := bootstrap.PrepareDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			importer := services.NewCourseImportService(repositories.NewCourseRepository(database.Pool), logger.Component("course-import"))
			result, err := importer.ImportCSV(ctx, f)
			if err != nil {
				return err
			}

			for _, row := range result.Rejected {
				lgr.Warn().Str("courseCode", row.CourseCode).Str("reason", row.Reason).Msg("Row rejected")
			}
			lgr.Info().Int("accepted", len(result.Accepted)).Int("rejected", len(result.Rejected)).Msg(result.Message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with the course batch")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
