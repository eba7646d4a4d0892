package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/db"
	"github.com/fittrack/fittrack/internal/middleware"
	"github.com/fittrack/fittrack/internal/onboarding"
	"github.com/fittrack/fittrack/internal/plans"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/users"
	"github.com/fittrack/fittrack/internal/weights"
	"github.com/fittrack/fittrack/internal/workouts"
	"github.com/fittrack/fittrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	oidcClient   *auth.OIDCClient

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config           *config.Config
	AuthClientSecret string
	RedisPassword    string
	VersionInfo      string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.Config.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.Setup(ctx, params.Config.TracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	oidcClient, err := auth.NewOIDCClient(ctx, auth.NewOIDCClientParams{
		IssuerURL:    params.Config.AuthIssuerURL,
		ClientID:     params.Config.AuthClientID,
		ClientSecret: params.AuthClientSecret,
		RedirectURL:  params.Config.AuthRedirectURL,
		HTTPClient:   tracedHttpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("new oidc client: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  auth.NewService(auth.DefaultTTL, rdb),
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		oidcClient:   oidcClient,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	usersRepo := users.NewRepo(s.dbPool)
	weightsRepo := weights.NewRepo(s.dbPool)
	catalogRepo := catalog.NewRepo(s.dbPool)
	plansRepo := plans.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	authHandler := auth.NewHandler(s.authService, s.oidcClient, usersRepo, s.metricsManager)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("GET", "OPTIONS").Name("login")
	authRouter.HandleFunc("/callback", authHandler.HandleCallback).Methods("GET", "OPTIONS").Name("auth-callback")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	// rate limit the login flow to prevent abuse
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter, "login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	usersHandler := users.NewHandler(usersRepo, weightsRepo)
	r.HandleFunc("/profile", usersHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", usersHandler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/onboarding/status", usersHandler.HandleOnboardingStatus).Methods("GET", "OPTIONS")
	r.HandleFunc("/onboarding/name", usersHandler.HandleOnboardingName).Methods("POST", "OPTIONS")
	r.HandleFunc("/onboarding/current-weight", usersHandler.HandleOnboardingCurrentWeight).Methods("POST", "OPTIONS")
	r.HandleFunc("/onboarding/goal", usersHandler.HandleOnboardingGoal).Methods("POST", "OPTIONS")

	// catalog: /exercises/filters and the static images have to be
	// registered before the catch-all /exercises/{id}
	catalogHandler := catalog.NewHandler(catalogRepo)
	r.HandleFunc("/exercises", catalogHandler.HandleSearch).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/exercises/filters", catalogHandler.HandleFilters).Methods("GET", "OPTIONS").Name("exercise-filters")
	r.PathPrefix("/exercises/images/").Handler(
		http.StripPrefix("/exercises/images/", http.FileServer(http.Dir(s.config.ExerciseImagesPath))),
	).Methods("GET", "OPTIONS").Name("exercise-images")
	r.HandleFunc("/exercises/{id}", catalogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	onboardingGate := onboarding.Gate(usersRepo)

	plansHandler := plans.NewHandler(plans.NewService(plansRepo, catalogRepo))
	plansRouter := r.PathPrefix("/plans").Subrouter()
	plansRouter.Use(onboardingGate)
	plansRouter.HandleFunc("", plansHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-plan")
	plansRouter.HandleFunc("", plansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	plansRouter.HandleFunc("/{id}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	plansRouter.HandleFunc("/{id}", plansHandler.HandleRename).Methods("PUT", "OPTIONS").Name("rename-plan")
	plansRouter.HandleFunc("/{id}/archive", plansHandler.HandleArchive).Methods("POST", "OPTIONS").Name("archive-plan")
	plansRouter.HandleFunc("/{id}/exercises", plansHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-plan-exercise")
	plansRouter.HandleFunc("/{id}/exercises", plansHandler.HandleReorder).Methods("PUT", "OPTIONS").Name("reorder-plan-exercises")
	plansRouter.HandleFunc("/{id}/exercises/{slotId}", plansHandler.HandleUpdateSlot).Methods("PUT", "OPTIONS").Name("update-plan-exercise")
	plansRouter.HandleFunc("/{id}/exercises/{slotId}", plansHandler.HandleRemoveSlot).Methods("DELETE", "OPTIONS").Name("remove-plan-exercise")
	plansRouter.HandleFunc("/{id}/exercises/{slotId}/sets", plansHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-plan-exercise-set")

	workoutsService := workouts.NewService(
		workoutsRepo,
		plansRepo,
		workouts.NewCurrentSession(s.redisClient),
	)
	workoutsHandler := workouts.NewHandler(workoutsService, s.metricsManager)
	workoutsRouter := r.PathPrefix("/workouts").Subrouter()
	workoutsRouter.Use(onboardingGate)
	workoutsRouter.HandleFunc("/start", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	workoutsRouter.HandleFunc("/sets", workoutsHandler.HandleSaveSet).Methods("POST", "OPTIONS").Name("save-set")
	workoutsRouter.HandleFunc("/sets", workoutsHandler.HandleSaveWorkout).Methods("PUT", "OPTIONS").Name("save-workout")
	workoutsRouter.HandleFunc("/complete", workoutsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	workoutsRouter.HandleFunc("/complete-all", workoutsHandler.HandleCompleteAllSets).Methods("POST", "OPTIONS").Name("complete-all-sets")
	workoutsRouter.HandleFunc("/history", workoutsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("workout-history")
	workoutsRouter.HandleFunc("/progress", workoutsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("workout-progress")
	workoutsRouter.HandleFunc("/{id}", workoutsHandler.HandleDetail).Methods("GET", "OPTIONS").Name("workout-detail")
	workoutsRouter.HandleFunc("/{id}/archive", workoutsHandler.HandleArchive).Methods("POST", "OPTIONS").Name("archive-workout")

	weightsHandler := weights.NewHandler(weightsRepo, usersRepo, s.metricsManager)
	weightsRouter := r.PathPrefix("/weights").Subrouter()
	weightsRouter.Use(onboardingGate)
	weightsRouter.HandleFunc("", weightsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight-entry")
	weightsRouter.HandleFunc("/stats", weightsHandler.HandleStats).Methods("GET", "OPTIONS").Name("weight-stats")
	weightsRouter.HandleFunc("/history", weightsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("weight-history")
	weightsRouter.HandleFunc("/chart", weightsHandler.HandleChart).Methods("GET", "OPTIONS").Name("weight-chart")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
