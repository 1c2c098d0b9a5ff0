// Package dependency wires up the application dependencies.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/auth"
	"github.com/pocketledger/backend/internal/application/usecase/balance"
	"github.com/pocketledger/backend/internal/application/usecase/category"
	"github.com/pocketledger/backend/internal/application/usecase/expense"
	"github.com/pocketledger/backend/internal/application/usecase/goal"
	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/infra/db"
	"github.com/pocketledger/backend/internal/infra/server/router"
	"github.com/pocketledger/backend/internal/integration/adapters"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketledger/backend/internal/integration/persistence"
)

// Injector holds the wired application components.
type Injector struct {
	Config *config.Config
	DB     *db.Database
	Router *router.Router
}

// NewInjector builds the full dependency graph from the given connections.
// The email sender is passed in so tests can substitute a mock.
func NewInjector(
	cfg *config.Config,
	database *db.Database,
	redisClient *redis.Client,
	emailSender adapter.EmailSender,
) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	balanceRepo := persistence.NewBalanceRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenStore := adapters.NewTokenStore(redisClient)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenStore,
	)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenStore)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, cfg.Ledger.ConsistentBalance)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, cfg.Ledger.ConsistentBalance)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	transactionSummaryUseCase := transaction.NewTransactionSummaryUseCase(transactionRepo)

	// Balance use case
	getBalanceUseCase := balance.NewGetBalanceUseCase(balanceRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	addGoalAmountUseCase := goal.NewAddGoalAmountUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Expense aggregation use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(transactionRepo)
	expenseStatsUseCase := expense.NewExpenseStatsUseCase(transactionRepo)
	availableMonthsUseCase := expense.NewAvailableMonthsUseCase(transactionRepo)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		transactionSummaryUseCase,
	)
	balanceController := controller.NewBalanceController(getBalanceUseCase)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		updateGoalUseCase,
		addGoalAmountUseCase,
		getGoalUseCase,
		listGoalsUseCase,
		deleteGoalUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		expenseStatsUseCase,
		availableMonthsUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "test" || cfg.Server.Environment == "e2e" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		balanceController,
		goalController,
		expenseController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     database,
		Router: r,
	}
}
