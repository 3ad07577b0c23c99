package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteller-studio/zervtek-admin/internal/model"
)

func TestCreateVehicle(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	v, err := svc.Create(context.Background(), CreateVehicleInput{
		Make:  "  Toyota ",
		Model: "Land Cruiser",
		Year:  2001,
		Grade: "4",
		Price: 2800000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Toyota", v.Make)
	assert.Equal(t, model.VehicleStatusAvailable, v.Status)

	tests := []struct {
		name string
		in   CreateVehicleInput
	}{
		{"missing make", CreateVehicleInput{Model: "Supra", Year: 1997, Price: 1}},
		{"bad year", CreateVehicleInput{Make: "Toyota", Model: "Supra", Year: 1800, Price: 1}},
		{"bad price", CreateVehicleInput{Make: "Toyota", Model: "Supra", Year: 1997, Price: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			assert.Error(t, err)
		})
	}
}

func TestGetVehicleNotFound(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
