package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealtrack/backend/internal/domain"
	"github.com/mealtrack/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	auth    *usecase.AuthService
	meals   *usecase.MealService
	goals   *usecase.GoalService
	summary *usecase.SummaryService
}

// NewHandler creates a new HTTP handler
func NewHandler(auth *usecase.AuthService, meals *usecase.MealService, goals *usecase.GoalService, summary *usecase.SummaryService) *Handler {
	return &Handler{auth: auth, meals: meals, goals: goals, summary: summary}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealtrack-backend",
		"version": "1.0.0",
	})
}

type credentialsRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Register creates an account. Open while no accounts exist so the
// first user can bootstrap the tracker; afterwards only an
// authenticated caller may add accounts.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrCredentialsRequired.Error()})
		return
	}

	_, authenticated := h.callerFromHeader(c)
	if err := h.auth.Register(c.Request.Context(), req.Username, req.Password, authenticated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"username": req.Username})
}

// Login verifies credentials and returns a bearer token
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrCredentialsRequired.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, req.RememberMe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type mealRequest struct {
	Date               string  `json:"date"`
	Item               string  `json:"item"`
	WeightGrams        float64 `json:"weightGrams"`
	ServingSizeGrams   float64 `json:"servingSizeGrams"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
	MealType           string  `json:"mealType"`
}

func (r mealRequest) toInput() usecase.MealInput {
	return usecase.MealInput{
		Date:               r.Date,
		Item:               r.Item,
		WeightGrams:        r.WeightGrams,
		ServingSizeGrams:   r.ServingSizeGrams,
		CaloriesPerServing: r.CaloriesPerServing,
		ProteinPerServing:  r.ProteinPerServing,
		MealType:           r.MealType,
	}
}

// ListMeals returns the caller's history, newest date first
func (h *Handler) ListMeals(c *gin.Context) {
	entries, err := h.meals.History(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": entries})
}

// CreateMeal logs a new meal with server-computed totals
func (h *Handler) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.meals.Create(c.Request.Context(), currentUser(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateMeal edits an entry owned by the caller and recomputes totals
func (h *Handler) UpdateMeal(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.meals.Update(c.Request.Context(), currentUser(c), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteMeal removes an entry owned by the caller
func (h *Handler) DeleteMeal(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	if err := h.meals.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListItems returns the distinct item names the caller has logged before
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.meals.Items(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ItemDefaults recalls serving-size and per-serving defaults for an item
func (h *Handler) ItemDefaults(c *gin.Context) {
	defaults, err := h.meals.Defaults(c.Request.Context(), currentUser(c), c.Query("item"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

// PreviewMeal computes the totals an entry would be stored with
func (h *Handler) PreviewMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.meals.Preview(req.toInput()))
}

// GetGoal returns the caller's goal; 404 when none is set
func (h *Handler) GetGoal(c *gin.Context) {
	goal, err := h.goals.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type goalRequest struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// SaveGoal creates or replaces the caller's goal wholesale
func (h *Handler) SaveGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goals.Save(c.Request.Context(), currentUser(c), req.Calories, req.Protein)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Summary returns bucketed calorie/protein totals against the goal
func (h *Handler) Summary(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	descending := c.Query("order") == "desc"

	rows, err := h.summary.Summarize(c.Request.Context(), currentUser(c), period, descending)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "rows": rows})
}

// entryID parses the :id path parameter, responding 400 on garbage
func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

// callerFromHeader resolves the caller from an optional bearer token,
// for endpoints that behave differently when authenticated
func (h *Handler) callerFromHeader(c *gin.Context) (string, bool) {
	token, ok := bearerToken(c)
	if !ok {
		return "", false
	}
	username, err := h.auth.ParseToken(token)
	if err != nil {
		return "", false
	}
	return username, true
}

// respondError maps domain errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemRequired),
		errors.Is(err, domain.ErrCredentialsRequired),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrRegistrationClosed):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Persistence failures propagate as opaque errors; don't leak them
		message = "internal error"
	}
	c.JSON(status, gin.H{"error": message})
}
