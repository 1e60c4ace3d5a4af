package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/auth"
	"github.com/yanqian/shiji-energy/internal/domain/energy"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
)

// Handler wires the HTTP transport to domain services. Date parameters are
// interpreted in loc, the service's configured calendar timezone.
type Handler struct {
	authSvc    auth.Service
	profileSvc profile.Service
	energySvc  energy.Service
	almanacSvc almanac.Service
	loc        *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, profileSvc profile.Service, energySvc energy.Service, almanacSvc almanac.Service, loc *time.Location, logger *slog.Logger) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		authSvc:    authSvc,
		profileSvc: profileSvc,
		energySvc:  energySvc,
		almanacSvc: almanacSvc,
		loc:        loc,
		logger:     logger.With("component", "http.handler"),
		now:        time.Now,
	}
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "register_failed"))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Login exchanges credentials for a token pair.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "login_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates an access token from a refresh token.
func (h *Handler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithError(c, domainError(err, "refresh_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated account.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetProfile returns the caller's energy profile.
func (h *Handler) GetProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetBirthInfo stores the birth moment and recomputes the chart.
func (h *Handler) SetBirthInfo(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	var moment almanac.BirthMoment
	if err := c.ShouldBindJSON(&moment); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.SetBirthInfo(c.Request.Context(), claims.UserID, moment)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// ClearBirthInfo removes the birth moment and all derived chart data.
func (h *Handler) ClearBirthInfo(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.ClearBirthInfo(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddRule appends a personal rule.
func (h *Handler) AddRule(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	var rule profile.PersonalRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.AddRule(c.Request.Context(), claims.UserID, rule)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveRule deletes a personal rule by id.
func (h *Handler) RemoveRule(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.RemoveRule(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetWeight tunes how strongly personal rules bend the scores.
func (h *Handler) SetWeight(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	var req struct {
		Weight int `json:"weight"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.SetPersonalizationWeight(c.Request.Context(), claims.UserID, req.Weight)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddActivity appends a custom action to the user's library.
func (h *Handler) AddActivity(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	var req struct {
		Label string `json:"label"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.AddActivity(c.Request.Context(), claims.UserID, req.Label)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveActivity deletes a custom action by id.
func (h *Handler) RemoveActivity(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.RemoveActivity(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddGoal appends a personal goal.
func (h *Handler) AddGoal(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.AddGoal(c.Request.Context(), claims.UserID, req.Text)
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// ToggleGoal flips a goal between open and completed.
func (h *Handler) ToggleGoal(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.ToggleGoal(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveGoal deletes a goal by id.
func (h *Handler) RemoveGoal(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	p, err := h.profileSvc.RemoveGoal(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err, "profile_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// DayProfile returns the 24 hour records for a date.
func (h *Handler) DayProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	date, err := h.dateParam(c, "date")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	records, err := h.energySvc.DayProfile(c.Request.Context(), claims.UserID, date)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "hours": records})
}

// HourDetail returns one slot of the day profile.
func (h *Handler) HourDetail(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "hour must be a number", err))
		return
	}
	date, err := h.dateParam(c, "date")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	record, err := h.energySvc.HourDetail(c.Request.Context(), claims.UserID, date, hour)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

// DailyFortune returns the aggregated day headline.
func (h *Handler) DailyFortune(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	date, err := h.dateParam(c, "date")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	fortune, err := h.energySvc.DailyFortune(c.Request.Context(), claims.UserID, date)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, fortune)
}

// WeeklyTrend returns one score per day for seven days.
func (h *Handler) WeeklyTrend(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	start, err := h.dateParam(c, "start")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	points, err := h.energySvc.WeeklyTrend(c.Request.Context(), claims.UserID, start)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": points})
}

// RecommendForAction ranks the day's hours for one action.
func (h *Handler) RecommendForAction(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	actionID := c.Query("action")
	if actionID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "action query parameter is required", nil))
		return
	}
	date, err := h.dateParam(c, "date")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	rec, err := h.energySvc.RecommendForAction(c.Request.Context(), claims.UserID, date, actionID)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ActionLibrary lists the built-in actions plus the user's custom ones.
func (h *Handler) ActionLibrary(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}
	actions, err := h.energySvc.ActionLibrary(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, domainError(err, "energy_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// AlmanacOverview returns the lunar calendar facts for a date.
func (h *Handler) AlmanacOverview(c *gin.Context) {
	date, err := h.dateParam(c, "date")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	overview, err := h.almanacSvc.Overview(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, domainError(err, "almanac_failed"))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// dateParam reads an optional YYYY-MM-DD query parameter, defaulting to
// today in the configured calendar timezone.
func (h *Handler) dateParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return h.now().In(h.loc), nil
	}
	return time.ParseInLocation("2006-01-02", raw, h.loc)
}

// domainError maps domain error codes onto HTTP statuses.
func domainError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "invalid_credentials"):
		status = http.StatusUnauthorized
		code = "invalid_credentials"
	case apperrors.IsCode(err, "invalid_token"):
		status = http.StatusUnauthorized
		code = "invalid_token"
	case apperrors.IsCode(err, "email_exists"):
		status = http.StatusConflict
		code = "email_exists"
	case apperrors.IsCode(err, "user_not_found"):
		status = http.StatusNotFound
		code = "user_not_found"
	case apperrors.IsCode(err, "calendar_error"):
		status = http.StatusBadGateway
		code = "calendar_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
