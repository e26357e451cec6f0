package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mcdev12/tipster/go/internal/dbconfig"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

//go:embed teams.json
var officialTeams []byte

// Team mirrors the JSON snapshot
type Team struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Store is where teams are seeded
type Store interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Insert returns false when a team with that name already exists
	Insert(ctx context.Context, t Team) (bool, error)
}

type pgStore struct {
	pool *pgxpool.Pool
}

func (s *pgStore) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (s *pgStore) Insert(ctx context.Context, t Team) (bool, error) {
	var logo *string
	if t.Logo != "" {
		logo = &t.Logo
	}
	cmdTag, err := s.pool.Exec(ctx, `
            INSERT INTO teams (name, logo, type)
            VALUES ($1, $2, 'official')
            ON CONFLICT (name) DO NOTHING
        `, t.Name, sqlutil.ToText(logo))
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() == 1, nil
}

type summary struct {
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

// seed inserts every team, or only reports what would change when dryRun is set
func seed(ctx context.Context, store Store, teams []Team, dryRun bool, out io.Writer) summary {
	s := summary{Total: len(teams)}

	for _, t := range teams {
		var (
			inserted bool
			err      error
		)
		if dryRun {
			var exists bool
			exists, err = store.Exists(ctx, t.Name)
			inserted = !exists
		} else {
			inserted, err = store.Insert(ctx, t)
		}

		switch {
		case err != nil:
			fmt.Fprintf(out, "error seeding team %q: %v\n", t.Name, err)
			s.Errors++
		case inserted:
			s.Inserted++
		default:
			s.Skipped++
		}
	}
	return s
}

func loadTeams(path string) ([]Team, error) {
	data := officialTeams
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read JSON: %w", err)
		}
	}

	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return teams, nil
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed_teams",
		Usage: "insert the official team list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "JSON file to seed instead of the built-in list",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "report what would be inserted without writing",
			},
		},
		Action: func(c *cli.Context) error {
			teams, err := loadTeams(c.String("file"))
			if err != nil {
				return err
			}

			poolConfig, err := dbconfig.NewConfigFromEnv("tipster-seed").PoolConfig()
			if err != nil {
				return err
			}
			pool, err := pgxpool.NewWithConfig(c.Context, poolConfig)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer pool.Close()

			dryRun := c.Bool("dry-run")
			s := seed(c.Context, &pgStore{pool: pool}, teams, dryRun, os.Stderr)

			verb := "inserted"
			if dryRun {
				verb = "would insert"
			}
			fmt.Printf(
				"Teams seed complete: %d total, %d %s, %d skipped, %d errors\n",
				s.Total, s.Inserted, verb, s.Skipped, s.Errors,
			)
			if s.Errors > 0 {
				return cli.Exit("some teams failed to seed", 1)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
