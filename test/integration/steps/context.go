// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/auth"
	"github.com/pocketledger/backend/internal/application/usecase/balance"
	"github.com/pocketledger/backend/internal/application/usecase/category"
	"github.com/pocketledger/backend/internal/application/usecase/expense"
	"github.com/pocketledger/backend/internal/application/usecase/goal"
	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/infra/server/router"
	"github.com/pocketledger/backend/internal/integration/adapters"
	"github.com/pocketledger/backend/internal/integration/email"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketledger/backend/internal/integration/persistence"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
	"github.com/pocketledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri    string
	client *http.Client
	db     *mock.Db

	headers  map[string]string
	response *response

	accessToken  string
	refreshToken string
	resetToken   string

	currentUserID     uuid.UUID
	currentCategoryID uuid.UUID
	currentGoalID     uuid.UUID
	transactionID     uuid.UUID
	lastID            uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var portInit sync.Once
var testServerPort int
var testDB *mock.Db
var testRedis *redis.Client
var testTokenService adapter.TokenService
var testResetTokens adapter.PasswordResetTokenService
var testEmailSender *email.MockEmailSender

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
			"balances":     &model.BalanceModel{},
			"goals":        &model.GoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Step(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)

	// Data setup steps
	ctx.Step(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Step(`^a transaction exists with type "([^"]*)", amount "([^"]*)" and date "([^"]*)"$`, test.aTransactionExists)
	ctx.Step(`^a transaction exists with type "([^"]*)", amount "([^"]*)", date "([^"]*)" and category "([^"]*)"$`, test.aCategorizedTransactionExists)
	ctx.Step(`^a goal exists with name "([^"]*)" and target "([^"]*)"$`, test.aGoalExistsWithNameAndTarget)
	ctx.Step(`^a goal exists with name "([^"]*)", target "([^"]*)" and current amount "([^"]*)"$`, test.aGoalExistsWithProgress)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.transactionID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if testRedis != nil {
		_ = mock.ClearRedis(testRedis)
	}
	if testEmailSender != nil {
		testEmailSender.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		testRedis = mock.NewRedis()
		testEmailSender = email.NewMockEmailSender()

		// Repositories
		userRepo := persistence.NewUserRepository(testDB.DbConn)
		categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		balanceRepo := persistence.NewBalanceRepository(testDB.DbConn)
		goalRepo := persistence.NewGoalRepository(testDB.DbConn)

		// Adapters/services
		passwordService := adapters.NewPasswordService()
		tokenStore := adapters.NewTokenStore(testRedis)
		testTokenService = adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenStore)
		testResetTokens = adapters.NewPasswordResetTokenService(tokenStore)

		// Auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, testTokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, testTokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(testTokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(testTokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, testResetTokens, testEmailSender, "http://localhost:3000")
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, testResetTokens, testTokenService)

		// Category use cases
		listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
		createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

		// Transaction use cases
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, true)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, true)
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
		healthController := controller.NewHealthController(func() bool {
			return testDB != nil && testDB.DbConn != nil
		})
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
		loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
		authMiddleware := middleware.NewAuthMiddleware(testTokenService)

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
		engine := r.Setup("test")

		go func() {
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs switches the current user to the given email, creating the
// user first if needed, and issues a fresh token pair through the real
// token service.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	t.currentUserID = userModel.ID
	return t.issueTokens(userModel.ID, email)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user has been created yet")
	}
	return t.issueTokens(t.currentUserID, "test@example.com")
}

func (t *testContext) issueTokens(userID uuid.UUID, email string) error {
	if testTokenService == nil {
		return errors.New("server not started, token service unavailable")
	}
	pair, err := testTokenService.GenerateTokenPair(context.Background(), userID, email)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	if testResetTokens == nil {
		return errors.New("server not started, reset token service unavailable")
	}

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetToken, err := testResetTokens.GenerateResetToken(context.Background(), user.ID, email)
	if err != nil {
		return err
	}
	t.resetToken = resetToken.Token
	return nil
}

func (t *testContext) aCategoryExistsWithName(name string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Color:     "#6366F1",
		Icon:      "tag",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aTransactionExists(transactionType, amount, date string) error {
	return t.createTransaction(transactionType, amount, date, nil)
}

func (t *testContext) aCategorizedTransactionExists(transactionType, amount, date, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.
		Where("user_id = ? AND name = ?", t.currentUserID, categoryName).
		First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}
	return t.createTransaction(transactionType, amount, date, &categoryModel.ID)
}

func (t *testContext) createTransaction(transactionType, amount, date string, categoryID *uuid.UUID) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	transactionID := uuid.New()
	t.transactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      parsedAmount,
		Date:        parsedDate,
		Description: "seeded transaction",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aGoalExistsWithNameAndTarget(name, target string) error {
	return t.createGoal(name, target, "0")
}

func (t *testContext) aGoalExistsWithProgress(name, target, current string) error {
	return t.createGoal(name, target, current)
}

func (t *testContext) createGoal(name, target, current string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount '%s': %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount '%s': %w", current, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Color:         "#a682ff",
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(arr) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(arr))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
