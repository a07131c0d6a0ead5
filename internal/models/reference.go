package models

import "time"

type UserRole string

const (
	RoleDriver  UserRole = "DRIVER"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

// UserRef - сокращенное представление пользователя для связей и справочников
type UserRef struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role,omitempty"`
}

type Car struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        *int   `json:"year,omitempty"`
}

// CarReading - снимок телеметрии автомобиля
type CarReading struct {
	ID         int64     `json:"id"`
	CarID      int64     `json:"carId"`
	Odometer   *float64  `json:"odometer,omitempty"`
	FuelLevel  *float64  `json:"fuelLevel,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}
