package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/mcdev12/tipster/go/internal/achievements"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/leaderboard"
	"github.com/mcdev12/tipster/go/internal/leagues"
	"github.com/mcdev12/tipster/go/internal/matches"
	"github.com/mcdev12/tipster/go/internal/notifications"
	"github.com/mcdev12/tipster/go/internal/rounds"
	"github.com/mcdev12/tipster/go/internal/scoring"
	"github.com/mcdev12/tipster/go/internal/seasons"
	"github.com/mcdev12/tipster/go/internal/teams"
	"github.com/mcdev12/tipster/go/internal/tips"
	"github.com/mcdev12/tipster/go/internal/users"
)

type Services struct {
	Auth          *auth.Middleware
	RateLimiter   *auth.IPRateLimiter
	Users         *users.Service
	Seasons       *seasons.Service
	Leagues       *leagues.Service
	Rounds        *rounds.Service
	Matches       *matches.Service
	Teams         *teams.Service
	Tips          *tips.Service
	Notifications *notifications.Service
	Achievements  *achievements.Service
	Scoring       *scoring.Service
}

func setupServices(cfg *Config, pool *pgxpool.Pool, cache *redis.Client, clock clockwork.Clock) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	queries := db.New(pool)

	resolver := authz.NewResolver(authz.NewRepository(queries))

	// Leaderboards are shared by seasons, leagues, matches and tips
	leaderboardApp := leaderboard.NewApp(
		leaderboard.NewRepository(queries),
		leaderboard.NewRedisCache(cache, cfg.Redis.LeaderboardTTL),
	)

	// Users and auth
	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.Auth.TokenTTL, clock)
	userRepo := users.NewRepository(queries)
	userApp := users.NewApp(userRepo, tokens)
	userService := users.NewService(userApp)

	// Seasons
	seasonRepo := seasons.NewRepository(pool, queries)
	seasonApp := seasons.NewApp(seasonRepo, resolver, cfg.Quotas)
	seasonService := seasons.NewService(seasonApp, leaderboardApp)

	// Leagues
	leagueRepo := leagues.NewRepository(queries)
	leagueApp := leagues.NewApp(leagueRepo, resolver, cfg.Quotas, clock, leaderboardApp)
	leagueService := leagues.NewService(leagueApp, leaderboardApp)

	// Rounds
	roundRepo := rounds.NewRepository(pool, queries)
	roundApp := rounds.NewApp(roundRepo, resolver, clock)
	roundService := rounds.NewService(roundApp)

	// Matches
	matchRepo := matches.NewRepository(pool, queries)
	matchApp := matches.NewApp(matchRepo, resolver, leaderboardApp)
	matchService := matches.NewService(matchApp)

	// Teams
	teamApp := teams.NewApp(teams.NewRepository(queries))
	teamService := teams.NewService(teamApp)

	// Tips
	tipApp := tips.NewApp(tips.NewRepository(queries), clock, leaderboardApp)
	tipService := tips.NewService(tipApp)

	// Notifications and achievements
	notificationService := notifications.NewService(notifications.NewApp(notifications.NewRepository(queries)))
	achievementService := achievements.NewService(achievements.NewApp(achievements.NewRepository(queries)))

	return &Services{
		Auth:          auth.NewMiddleware(tokens, userRepo),
		RateLimiter:   auth.NewIPRateLimiter(cfg.Auth.RateLimit.PerSecond, cfg.Auth.RateLimit.Burst, clock),
		Users:         userService,
		Seasons:       seasonService,
		Leagues:       leagueService,
		Rounds:        roundService,
		Matches:       matchService,
		Teams:         teamService,
		Tips:          tipService,
		Notifications: notificationService,
		Achievements:  achievementService,
		Scoring:       scoring.NewService(),
	}
}
