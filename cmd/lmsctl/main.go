package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/bootstrap"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/logger"
	"github.com/yigit/lms/internal/report"
	"github.com/yigit/lms/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "lmsctl",
		Usage: "administer the LMS database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"LMS_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations",
				Action: migrateAction,
			},
			{
				Name:   "seed",
				Usage:  "create the admin account and demo data, then print the report",
				Action: seedAction,
			},
			{
				Name:   "report",
				Usage:  "print expensive courses, student averages and instructor revenue",
				Action: reportAction,
			},
			{
				Name:  "token",
				Usage: "issue an access token for an existing user",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-id", Usage: "id of the user", Required: true},
				},
				Action: tokenAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("lmsctl failed")
		os.Exit(1)
	}
}

// env is what every command needs: config, logger and an open pool.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	database *db.PostgresDB
}

func (e *env) services() *services.Services {
	return services.NewServices(repositories.NewRepositories(e.database.Pool), e.database, e.log)
}

func open(c *cli.Context, migrate bool) (*env, error) {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return nil, err
	}
	lgr := logger.Component("lmsctl")

	var database *db.PostgresDB
	if migrate {
		database, err = bootstrap.SetupDatabase(c.Context, cfg, lgr)
	} else {
		database, err = db.NewPostgresDB(c.Context, cfg)
	}
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: lgr, database: database}, nil
}

func migrateAction(c *cli.Context) error {
	e, err := open(c, false)
	if err != nil {
		return err
	}
	defer e.database.Close()

	applied, err := bootstrap.RunMigrations(c.Context, e.cfg, e.database, e.log)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(c.App.Writer, "schema is up to date")
		return nil
	}
	for _, v := range applied {
		fmt.Fprintf(c.App.Writer, "applied %s\n", v)
	}
	return nil
}

func seedAction(c *cli.Context) error {
	e, err := open(c, true)
	if err != nil {
		return err
	}
	defer e.database.Close()

	svc := e.services()
	if err := seed.CreateDefaultAdmin(c.Context, svc.Users, e.log); err != nil {
		return err
	}

	result, err := seed.CreateDemoData(c.Context, svc, e.log)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	if result.Skipped {
		fmt.Fprintln(c.App.Writer, "--- Data already exists, skipping seed ---")
	} else {
		fmt.Fprintf(c.App.Writer, "--- Demo data seeded (course %d, %d students) ---\n", result.CourseID, len(result.StudentIDs))
	}
	fmt.Fprintln(c.App.Writer)

	return printReport(c.Context, c.App.Writer, svc)
}

func reportAction(c *cli.Context) error {
	e, err := open(c, false)
	if err != nil {
		return err
	}
	defer e.database.Close()

	return printReport(c.Context, c.App.Writer, e.services())
}

func printReport(ctx context.Context, w io.Writer, svc *services.Services) error {
	r, err := report.Collect(ctx, svc.Courses, svc.Analytics)
	if err != nil {
		return err
	}
	return report.Write(w, r)
}

func tokenAction(c *cli.Context) error {
	e, err := open(c, false)
	if err != nil {
		return err
	}
	defer e.database.Close()

	jwtService, err := bootstrap.NewJWTService(e.cfg)
	if err != nil {
		return err
	}

	user, err := e.services().Users.GetUserByID(c.Context, c.Int64("user-id"))
	if err != nil {
		return err
	}
	if !user.IsActive {
		return fmt.Errorf("user %d is deactivated", user.ID)
	}

	token, expiresIn, err := jwtService.GenerateAccessToken(user)
	if err != nil {
		return err
	}
	e.log.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Int("expiresIn", expiresIn).Msg("Access token issued")
	fmt.Fprintln(c.App.Writer, token)
	return nil
}
