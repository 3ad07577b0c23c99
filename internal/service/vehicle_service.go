package service

import (
	"context"
	"errors"
	"strings"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/repository"
	"gorm.io/gorm"
)

type CreateVehicleInput struct {
	Make     string
	Model    string
	Year     int
	VIN      string
	Mileage  int
	Color    string
	Grade    string
	Price    int64
	ImageURL *string
}

type VehicleService interface {
	Create(ctx context.Context, in CreateVehicleInput) (*model.Vehicle, error)
	Get(ctx context.Context, id uint64) (*model.Vehicle, error)
	List(ctx context.Context, status model.VehicleStatus, make string, limit, offset int) ([]model.Vehicle, int64, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Create(ctx context.Context, in CreateVehicleInput) (*model.Vehicle, error) {
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	if in.Make == "" || in.Model == "" {
		return nil, errors.New("make and model are required")
	}
	if in.Year < 1950 {
		return nil, errors.New("invalid year")
	}
	if in.Price <= 0 {
		return nil, errors.New("price must be positive")
	}
	v := &model.Vehicle{
		Make:     in.Make,
		Model:    in.Model,
		Year:     in.Year,
		VIN:      strings.TrimSpace(in.VIN),
		Mileage:  in.Mileage,
		Color:    strings.TrimSpace(in.Color),
		Grade:    strings.TrimSpace(in.Grade),
		Price:    in.Price,
		ImageURL: in.ImageURL,
		Status:   model.VehicleStatusAvailable,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) Get(ctx context.Context, id uint64) (*model.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) List(ctx context.Context, status model.VehicleStatus, make string, limit, offset int) ([]model.Vehicle, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, status, strings.TrimSpace(make), limit, offset)
}
