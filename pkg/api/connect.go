package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// Fully-qualified service names.
const (
	SheetServiceName       = "ledger.v1.SheetService"
	ExpenseServiceName     = "ledger.v1.ExpenseService"
	CategoryServiceName    = "ledger.v1.CategoryService"
	AnalyticsServiceName   = "ledger.v1.AnalyticsService"
	DescriptionServiceName = "ledger.v1.DescriptionService"
	AuthServiceName        = "ledger.v1.AuthService"
)

// Procedure paths, in the form "/<service>/<method>".
const (
	SheetServiceListSheetsProcedure     = "/ledger.v1.SheetService/ListSheets"
	SheetServiceGetSheetProcedure       = "/ledger.v1.SheetService/GetSheet"
	SheetServiceCreateSheetProcedure    = "/ledger.v1.SheetService/CreateSheet"
	SheetServiceUpdateSheetProcedure    = "/ledger.v1.SheetService/UpdateSheet"
	SheetServiceDeleteSheetProcedure    = "/ledger.v1.SheetService/DeleteSheet"
	SheetServiceVerifySheetPinProcedure = "/ledger.v1.SheetService/VerifySheetPin"

	ExpenseServiceListExpensesProcedure  = "/ledger.v1.ExpenseService/ListExpenses"
	ExpenseServiceGetExpenseProcedure    = "/ledger.v1.ExpenseService/GetExpense"
	ExpenseServiceCreateExpenseProcedure = "/ledger.v1.ExpenseService/CreateExpense"
	ExpenseServiceUpdateExpenseProcedure = "/ledger.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure = "/ledger.v1.ExpenseService/DeleteExpense"

	CategoryServiceListCategoriesProcedure = "/ledger.v1.CategoryService/ListCategories"
	CategoryServiceCreateCategoryProcedure = "/ledger.v1.CategoryService/CreateCategory"
	CategoryServiceRenameCategoryProcedure = "/ledger.v1.CategoryService/RenameCategory"
	CategoryServiceDeleteCategoryProcedure = "/ledger.v1.CategoryService/DeleteCategory"

	AnalyticsServiceGetAnalyticsProcedure    = "/ledger.v1.AnalyticsService/GetAnalytics"
	AnalyticsServiceGetSheetSummaryProcedure = "/ledger.v1.AnalyticsService/GetSheetSummary"

	DescriptionServiceListDescriptionsProcedure          = "/ledger.v1.DescriptionService/ListDescriptions"
	DescriptionServiceSaveDescriptionProcedure           = "/ledger.v1.DescriptionService/SaveDescription"
	DescriptionServiceDeleteDescriptionProcedure         = "/ledger.v1.DescriptionService/DeleteDescription"
	DescriptionServiceDeleteExpenseDescriptionsProcedure = "/ledger.v1.DescriptionService/DeleteExpenseDescriptions"

	AuthServiceSignInWithGoogleProcedure = "/ledger.v1.AuthService/SignInWithGoogle"
	AuthServiceMeProcedure               = "/ledger.v1.AuthService/Me"
)

// withCodec puts the JSON codec ahead of caller options.
func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func withClientCodec(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// routes dispatches a service's procedures by exact path.
type routes map[string]http.Handler

func (r routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r[req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}

// IsPublicProcedure reports whether a procedure may be called without a
// session token.
func IsPublicProcedure(procedure string) bool {
	return procedure == AuthServiceSignInWithGoogleProcedure
}

// SheetServiceHandler is implemented by the server side of SheetService.
type SheetServiceHandler interface {
	ListSheets(context.Context, *connect.Request[ListSheetsRequest]) (*connect.Response[ListSheetsResponse], error)
	GetSheet(context.Context, *connect.Request[GetSheetRequest]) (*connect.Response[GetSheetResponse], error)
	CreateSheet(context.Context, *connect.Request[CreateSheetRequest]) (*connect.Response[CreateSheetResponse], error)
	UpdateSheet(context.Context, *connect.Request[UpdateSheetRequest]) (*connect.Response[UpdateSheetResponse], error)
	DeleteSheet(context.Context, *connect.Request[DeleteSheetRequest]) (*connect.Response[DeleteSheetResponse], error)
	VerifySheetPin(context.Context, *connect.Request[VerifySheetPinRequest]) (*connect.Response[VerifySheetPinResponse], error)
}

// NewSheetServiceHandler builds an HTTP handler for SheetService. It returns the path prefix
// to mount it on.
func NewSheetServiceHandler(svc SheetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + SheetServiceName + "/", routes{
		SheetServiceListSheetsProcedure:     connect.NewUnaryHandler(SheetServiceListSheetsProcedure, svc.ListSheets, opts...),
		SheetServiceGetSheetProcedure:       connect.NewUnaryHandler(SheetServiceGetSheetProcedure, svc.GetSheet, opts...),
		SheetServiceCreateSheetProcedure:    connect.NewUnaryHandler(SheetServiceCreateSheetProcedure, svc.CreateSheet, opts...),
		SheetServiceUpdateSheetProcedure:    connect.NewUnaryHandler(SheetServiceUpdateSheetProcedure, svc.UpdateSheet, opts...),
		SheetServiceDeleteSheetProcedure:    connect.NewUnaryHandler(SheetServiceDeleteSheetProcedure, svc.DeleteSheet, opts...),
		SheetServiceVerifySheetPinProcedure: connect.NewUnaryHandler(SheetServiceVerifySheetPinProcedure, svc.VerifySheetPin, opts...),
	}
}

// SheetServiceClient calls SheetService.
type SheetServiceClient struct {
	listSheets     *connect.Client[ListSheetsRequest, ListSheetsResponse]
	getSheet       *connect.Client[GetSheetRequest, GetSheetResponse]
	createSheet    *connect.Client[CreateSheetRequest, CreateSheetResponse]
	updateSheet    *connect.Client[UpdateSheetRequest, UpdateSheetResponse]
	deleteSheet    *connect.Client[DeleteSheetRequest, DeleteSheetResponse]
	verifySheetPin *connect.Client[VerifySheetPinRequest, VerifySheetPinResponse]
}

// NewSheetServiceClient creates a client for the server at baseURL.
func NewSheetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SheetServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &SheetServiceClient{
		listSheets:     connect.NewClient[ListSheetsRequest, ListSheetsResponse](httpClient, baseURL+SheetServiceListSheetsProcedure, opts...),
		getSheet:       connect.NewClient[GetSheetRequest, GetSheetResponse](httpClient, baseURL+SheetServiceGetSheetProcedure, opts...),
		createSheet:    connect.NewClient[CreateSheetRequest, CreateSheetResponse](httpClient, baseURL+SheetServiceCreateSheetProcedure, opts...),
		updateSheet:    connect.NewClient[UpdateSheetRequest, UpdateSheetResponse](httpClient, baseURL+SheetServiceUpdateSheetProcedure, opts...),
		deleteSheet:    connect.NewClient[DeleteSheetRequest, DeleteSheetResponse](httpClient, baseURL+SheetServiceDeleteSheetProcedure, opts...),
		verifySheetPin: connect.NewClient[VerifySheetPinRequest, VerifySheetPinResponse](httpClient, baseURL+SheetServiceVerifySheetPinProcedure, opts...),
	}
}

// ListSheets calls SheetService.ListSheets.
func (c *SheetServiceClient) ListSheets(ctx context.Context, req *connect.Request[ListSheetsRequest]) (*connect.Response[ListSheetsResponse], error) {
	return c.listSheets.CallUnary(ctx, req)
}

// GetSheet calls SheetService.GetSheet.
func (c *SheetServiceClient) GetSheet(ctx context.Context, req *connect.Request[GetSheetRequest]) (*connect.Response[GetSheetResponse], error) {
	return c.getSheet.CallUnary(ctx, req)
}

// CreateSheet calls SheetService.CreateSheet.
func (c *SheetServiceClient) CreateSheet(ctx context.Context, req *connect.Request[CreateSheetRequest]) (*connect.Response[CreateSheetResponse], error) {
	return c.createSheet.CallUnary(ctx, req)
}

// UpdateSheet calls SheetService.UpdateSheet.
func (c *SheetServiceClient) UpdateSheet(ctx context.Context, req *connect.Request[UpdateSheetRequest]) (*connect.Response[UpdateSheetResponse], error) {
	return c.updateSheet.CallUnary(ctx, req)
}

// DeleteSheet calls SheetService.DeleteSheet.
func (c *SheetServiceClient) DeleteSheet(ctx context.Context, req *connect.Request[DeleteSheetRequest]) (*connect.Response[DeleteSheetResponse], error) {
	return c.deleteSheet.CallUnary(ctx, req)
}

// VerifySheetPin calls SheetService.VerifySheetPin.
func (c *SheetServiceClient) VerifySheetPin(ctx context.Context, req *connect.Request[VerifySheetPinRequest]) (*connect.Response[VerifySheetPinResponse], error) {
	return c.verifySheetPin.CallUnary(ctx, req)
}

// ExpenseServiceHandler is implemented by the server side of ExpenseService.
type ExpenseServiceHandler interface {
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler for ExpenseService. It returns the path prefix
// to mount it on.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + ExpenseServiceName + "/", routes{
		ExpenseServiceListExpensesProcedure:  connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...),
		ExpenseServiceGetExpenseProcedure:    connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...),
		ExpenseServiceCreateExpenseProcedure: connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		ExpenseServiceUpdateExpenseProcedure: connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...),
		ExpenseServiceDeleteExpenseProcedure: connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
	}
}

// ExpenseServiceClient calls ExpenseService.
type ExpenseServiceClient struct {
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getExpense    *connect.Client[GetExpenseRequest, GetExpenseResponse]
	createExpense *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	updateExpense *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
}

// NewExpenseServiceClient creates a client for the server at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &ExpenseServiceClient{
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		getExpense:    connect.NewClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		createExpense: connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		updateExpense: connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
	}
}

// ListExpenses calls ExpenseService.ListExpenses.
func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// GetExpense calls ExpenseService.GetExpense.
func (c *ExpenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

// CreateExpense calls ExpenseService.CreateExpense.
func (c *ExpenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

// UpdateExpense calls ExpenseService.UpdateExpense.
func (c *ExpenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

// DeleteExpense calls ExpenseService.DeleteExpense.
func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

// CategoryServiceHandler is implemented by the server side of CategoryService.
type CategoryServiceHandler interface {
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[CreateCategoryRequest]) (*connect.Response[CreateCategoryResponse], error)
	RenameCategory(context.Context, *connect.Request[RenameCategoryRequest]) (*connect.Response[RenameCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error)
}

// NewCategoryServiceHandler builds an HTTP handler for CategoryService. It returns the path prefix
// to mount it on.
func NewCategoryServiceHandler(svc CategoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + CategoryServiceName + "/", routes{
		CategoryServiceListCategoriesProcedure: connect.NewUnaryHandler(CategoryServiceListCategoriesProcedure, svc.ListCategories, opts...),
		CategoryServiceCreateCategoryProcedure: connect.NewUnaryHandler(CategoryServiceCreateCategoryProcedure, svc.CreateCategory, opts...),
		CategoryServiceRenameCategoryProcedure: connect.NewUnaryHandler(CategoryServiceRenameCategoryProcedure, svc.RenameCategory, opts...),
		CategoryServiceDeleteCategoryProcedure: connect.NewUnaryHandler(CategoryServiceDeleteCategoryProcedure, svc.DeleteCategory, opts...),
	}
}

// CategoryServiceClient calls CategoryService.
type CategoryServiceClient struct {
	listCategories *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
	createCategory *connect.Client[CreateCategoryRequest, CreateCategoryResponse]
	renameCategory *connect.Client[RenameCategoryRequest, RenameCategoryResponse]
	deleteCategory *connect.Client[DeleteCategoryRequest, DeleteCategoryResponse]
}

// NewCategoryServiceClient creates a client for the server at baseURL.
func NewCategoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CategoryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &CategoryServiceClient{
		listCategories: connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, baseURL+CategoryServiceListCategoriesProcedure, opts...),
		createCategory: connect.NewClient[CreateCategoryRequest, CreateCategoryResponse](httpClient, baseURL+CategoryServiceCreateCategoryProcedure, opts...),
		renameCategory: connect.NewClient[RenameCategoryRequest, RenameCategoryResponse](httpClient, baseURL+CategoryServiceRenameCategoryProcedure, opts...),
		deleteCategory: connect.NewClient[DeleteCategoryRequest, DeleteCategoryResponse](httpClient, baseURL+CategoryServiceDeleteCategoryProcedure, opts...),
	}
}

// ListCategories calls CategoryService.ListCategories.
func (c *CategoryServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// CreateCategory calls CategoryService.CreateCategory.
func (c *CategoryServiceClient) CreateCategory(ctx context.Context, req *connect.Request[CreateCategoryRequest]) (*connect.Response[CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

// RenameCategory calls CategoryService.RenameCategory.
func (c *CategoryServiceClient) RenameCategory(ctx context.Context, req *connect.Request[RenameCategoryRequest]) (*connect.Response[RenameCategoryResponse], error) {
	return c.renameCategory.CallUnary(ctx, req)
}

// DeleteCategory calls CategoryService.DeleteCategory.
func (c *CategoryServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

// AnalyticsServiceHandler is implemented by the server side of AnalyticsService.
type AnalyticsServiceHandler interface {
	GetAnalytics(context.Context, *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error)
	GetSheetSummary(context.Context, *connect.Request[GetSheetSummaryRequest]) (*connect.Response[GetSheetSummaryResponse], error)
}

// NewAnalyticsServiceHandler builds an HTTP handler for AnalyticsService. It returns the path prefix
// to mount it on.
func NewAnalyticsServiceHandler(svc AnalyticsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + AnalyticsServiceName + "/", routes{
		AnalyticsServiceGetAnalyticsProcedure:    connect.NewUnaryHandler(AnalyticsServiceGetAnalyticsProcedure, svc.GetAnalytics, opts...),
		AnalyticsServiceGetSheetSummaryProcedure: connect.NewUnaryHandler(AnalyticsServiceGetSheetSummaryProcedure, svc.GetSheetSummary, opts...),
	}
}

// AnalyticsServiceClient calls AnalyticsService.
type AnalyticsServiceClient struct {
	getAnalytics    *connect.Client[GetAnalyticsRequest, GetAnalyticsResponse]
	getSheetSummary *connect.Client[GetSheetSummaryRequest, GetSheetSummaryResponse]
}

// NewAnalyticsServiceClient creates a client for the server at baseURL.
func NewAnalyticsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AnalyticsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &AnalyticsServiceClient{
		getAnalytics:    connect.NewClient[GetAnalyticsRequest, GetAnalyticsResponse](httpClient, baseURL+AnalyticsServiceGetAnalyticsProcedure, opts...),
		getSheetSummary: connect.NewClient[GetSheetSummaryRequest, GetSheetSummaryResponse](httpClient, baseURL+AnalyticsServiceGetSheetSummaryProcedure, opts...),
	}
}

// GetAnalytics calls AnalyticsService.GetAnalytics.
func (c *AnalyticsServiceClient) GetAnalytics(ctx context.Context, req *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error) {
	return c.getAnalytics.CallUnary(ctx, req)
}

// GetSheetSummary calls AnalyticsService.GetSheetSummary.
func (c *AnalyticsServiceClient) GetSheetSummary(ctx context.Context, req *connect.Request[GetSheetSummaryRequest]) (*connect.Response[GetSheetSummaryResponse], error) {
	return c.getSheetSummary.CallUnary(ctx, req)
}

// DescriptionServiceHandler is implemented by the server side of DescriptionService.
type DescriptionServiceHandler interface {
	ListDescriptions(context.Context, *connect.Request[ListDescriptionsRequest]) (*connect.Response[ListDescriptionsResponse], error)
	SaveDescription(context.Context, *connect.Request[SaveDescriptionRequest]) (*connect.Response[SaveDescriptionResponse], error)
	DeleteDescription(context.Context, *connect.Request[DeleteDescriptionRequest]) (*connect.Response[DeleteDescriptionResponse], error)
	DeleteExpenseDescriptions(context.Context, *connect.Request[DeleteExpenseDescriptionsRequest]) (*connect.Response[DeleteExpenseDescriptionsResponse], error)
}

// NewDescriptionServiceHandler builds an HTTP handler for DescriptionService. It returns the path prefix
// to mount it on.
func NewDescriptionServiceHandler(svc DescriptionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + DescriptionServiceName + "/", routes{
		DescriptionServiceListDescriptionsProcedure:          connect.NewUnaryHandler(DescriptionServiceListDescriptionsProcedure, svc.ListDescriptions, opts...),
		DescriptionServiceSaveDescriptionProcedure:           connect.NewUnaryHandler(DescriptionServiceSaveDescriptionProcedure, svc.SaveDescription, opts...),
		DescriptionServiceDeleteDescriptionProcedure:         connect.NewUnaryHandler(DescriptionServiceDeleteDescriptionProcedure, svc.DeleteDescription, opts...),
		DescriptionServiceDeleteExpenseDescriptionsProcedure: connect.NewUnaryHandler(DescriptionServiceDeleteExpenseDescriptionsProcedure, svc.DeleteExpenseDescriptions, opts...),
	}
}

// DescriptionServiceClient calls DescriptionService.
type DescriptionServiceClient struct {
	listDescriptions          *connect.Client[ListDescriptionsRequest, ListDescriptionsResponse]
	saveDescription           *connect.Client[SaveDescriptionRequest, SaveDescriptionResponse]
	deleteDescription         *connect.Client[DeleteDescriptionRequest, DeleteDescriptionResponse]
	deleteExpenseDescriptions *connect.Client[DeleteExpenseDescriptionsRequest, DeleteExpenseDescriptionsResponse]
}

// NewDescriptionServiceClient creates a client for the server at baseURL.
func NewDescriptionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DescriptionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &DescriptionServiceClient{
		listDescriptions:          connect.NewClient[ListDescriptionsRequest, ListDescriptionsResponse](httpClient, baseURL+DescriptionServiceListDescriptionsProcedure, opts...),
		saveDescription:           connect.NewClient[SaveDescriptionRequest, SaveDescriptionResponse](httpClient, baseURL+DescriptionServiceSaveDescriptionProcedure, opts...),
		deleteDescription:         connect.NewClient[DeleteDescriptionRequest, DeleteDescriptionResponse](httpClient, baseURL+DescriptionServiceDeleteDescriptionProcedure, opts...),
		deleteExpenseDescriptions: connect.NewClient[DeleteExpenseDescriptionsRequest, DeleteExpenseDescriptionsResponse](httpClient, baseURL+DescriptionServiceDeleteExpenseDescriptionsProcedure, opts...),
	}
}

// ListDescriptions calls DescriptionService.ListDescriptions.
func (c *DescriptionServiceClient) ListDescriptions(ctx context.Context, req *connect.Request[ListDescriptionsRequest]) (*connect.Response[ListDescriptionsResponse], error) {
	return c.listDescriptions.CallUnary(ctx, req)
}

// SaveDescription calls DescriptionService.SaveDescription.
func (c *DescriptionServiceClient) SaveDescription(ctx context.Context, req *connect.Request[SaveDescriptionRequest]) (*connect.Response[SaveDescriptionResponse], error) {
	return c.saveDescription.CallUnary(ctx, req)
}

// DeleteDescription calls DescriptionService.DeleteDescription.
func (c *DescriptionServiceClient) DeleteDescription(ctx context.Context, req *connect.Request[DeleteDescriptionRequest]) (*connect.Response[DeleteDescriptionResponse], error) {
	return c.deleteDescription.CallUnary(ctx, req)
}

// DeleteExpenseDescriptions calls DescriptionService.DeleteExpenseDescriptions.
func (c *DescriptionServiceClient) DeleteExpenseDescriptions(ctx context.Context, req *connect.Request[DeleteExpenseDescriptionsRequest]) (*connect.Response[DeleteExpenseDescriptionsResponse], error) {
	return c.deleteExpenseDescriptions.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the server side of AuthService.
type AuthServiceHandler interface {
	SignInWithGoogle(context.Context, *connect.Request[SignInWithGoogleRequest]) (*connect.Response[SignInWithGoogleResponse], error)
	Me(context.Context, *connect.Request[MeRequest]) (*connect.Response[MeResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for AuthService. It returns the path prefix
// to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceSignInWithGoogleProcedure: connect.NewUnaryHandler(AuthServiceSignInWithGoogleProcedure, svc.SignInWithGoogle, opts...),
		AuthServiceMeProcedure:               connect.NewUnaryHandler(AuthServiceMeProcedure, svc.Me, opts...),
	}
}

// AuthServiceClient calls AuthService.
type AuthServiceClient struct {
	signInWithGoogle *connect.Client[SignInWithGoogleRequest, SignInWithGoogleResponse]
	me               *connect.Client[MeRequest, MeResponse]
}

// NewAuthServiceClient creates a client for the server at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &AuthServiceClient{
		signInWithGoogle: connect.NewClient[SignInWithGoogleRequest, SignInWithGoogleResponse](httpClient, baseURL+AuthServiceSignInWithGoogleProcedure, opts...),
		me:               connect.NewClient[MeRequest, MeResponse](httpClient, baseURL+AuthServiceMeProcedure, opts...),
	}
}

// SignInWithGoogle calls AuthService.SignInWithGoogle.
func (c *AuthServiceClient) SignInWithGoogle(ctx context.Context, req *connect.Request[SignInWithGoogleRequest]) (*connect.Response[SignInWithGoogleResponse], error) {
	return c.signInWithGoogle.CallUnary(ctx, req)
}

// Me calls AuthService.Me.
func (c *AuthServiceClient) Me(ctx context.Context, req *connect.Request[MeRequest]) (*connect.Response[MeResponse], error) {
	return c.me.CallUnary(ctx, req)
}
