package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// DashboardHandler serves analytics, notifications and the reference catalog.
type DashboardHandler struct {
	analyticsUsecase    usecasecontract.IAnalyticsUseCase
	notificationUsecase usecasecontract.INotificationUseCase
	catalogUsecase      usecasecontract.ICatalogUseCase
}

func NewDashboardHandler(
	analyticsUsecase usecasecontract.IAnalyticsUseCase,
	notificationUsecase usecasecontract.INotificationUseCase,
	catalogUsecase usecasecontract.ICatalogUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		analyticsUsecase:    analyticsUsecase,
		notificationUsecase: notificationUsecase,
		catalogUsecase:      catalogUsecase,
	}
}

func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	a, err := h.analyticsUsecase.GetAnalytics(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, a)
}

func (h *DashboardHandler) ListNotifications(c *gin.Context) {
	list, err := h.notificationUsecase.ListNotifications(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, list)
}

func (h *DashboardHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.notificationUsecase.MarkAsRead(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *DashboardHandler) ListCars(c *gin.Context) {
	var q dto.CarsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	cars, err := h.catalogUsecase.ListCars(c.Request.Context(), q.Category, q.Trending)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, cars)
}

func (h *DashboardHandler) ListNews(c *gin.Context) {
	var q dto.NewsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	news, err := h.catalogUsecase.ListNews(c.Request.Context(), q.Category)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, news)
}

// Health reports liveness.
func Health(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok", Message: "API is running"})
}
