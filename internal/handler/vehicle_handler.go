package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

type VehicleResponse struct {
	ID        uint64  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	VIN       string  `json:"vin,omitempty"`
	Mileage   int     `json:"mileage"`
	Color     string  `json:"color,omitempty"`
	Grade     string  `json:"grade,omitempty"`
	Price     int64   `json:"price"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toVehicleResponse(v *model.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		VIN:       v.VIN,
		Mileage:   v.Mileage,
		Color:     v.Color,
		Grade:     v.Grade,
		Price:     v.Price,
		ImageURL:  v.ImageURL,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}

type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int64             `json:"total"`
}

type CreateVehicleRequest struct {
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	VIN      string  `json:"vin"`
	Mileage  int     `json:"mileage"`
	Color    string  `json:"color"`
	Grade    string  `json:"grade"`
	Price    int64   `json:"price"`
	ImageURL *string `json:"imageUrl"`
}

func (h *VehicleHandler) Create(c echo.Context) error {
	var req CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	v, err := h.svc.Create(c.Request().Context(), service.CreateVehicleInput{
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		VIN:      req.VIN,
		Mileage:  req.Mileage,
		Color:    req.Color,
		Grade:    req.Grade,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toVehicleResponse(v))
}

func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid vehicle id"))
	}
	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "vehicle not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch vehicle"))
	}
	return c.JSON(http.StatusOK, toVehicleResponse(v))
}

func (h *VehicleHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	status := model.VehicleStatus(c.QueryParam("status"))
	makeFilter := c.QueryParam("make")
	list, total, err := h.svc.List(c.Request().Context(), status, makeFilter, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch vehicles"))
	}
	resp := VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(list)),
		Total:    total,
	}
	for i := range list {
		resp.Vehicles = append(resp.Vehicles, toVehicleResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
