package dto

import "github.com/google/uuid"

// CreateTenantRequest - создание тенанта (только для админов)
type CreateTenantRequest struct {
	Name  string `json:"name" validate:"required,max=60"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateTenantRequest - обновление тенанта (только для админов)
type UpdateTenantRequest struct {
	Name     string `json:"name" validate:"required,max=60"`
	Email    string `json:"email" validate:"required,email"`
	IsActive bool   `json:"isActive"`
}

// ClientRequest - создание и обновление клиента
type ClientRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

// CreateContinentRequest - создание континента; клиент передаётся
// заголовком CLIENT-ID
type CreateContinentRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

// UpdateContinentRequest - обновление континента; привязка к клиенту
// не меняется
type UpdateContinentRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

// CountryRequest - создание и обновление страны
type CountryRequest struct {
	Name        string    `json:"name" validate:"required,max=60"`
	CountryCode string    `json:"countryCode" validate:"required,max=10"`
	PhoneCode   string    `json:"phoneCode" validate:"required,max=10"`
	Flag        string    `json:"flag,omitempty" validate:"max=255"`
	ContinentID uuid.UUID `json:"continentId" validate:"required"`
}

// StateRequest - создание и обновление штата
type StateRequest struct {
	Name      string    `json:"name" validate:"required,max=60"`
	CountryID uuid.UUID `json:"countryId" validate:"required"`
}

// CityRequest - создание и обновление города
type CityRequest struct {
	Name    string    `json:"name" validate:"required,max=60"`
	StateID uuid.UUID `json:"stateId" validate:"required"`
}

// AreaRequest - создание и обновление района
type AreaRequest struct {
	Name   string    `json:"name" validate:"required,max=60"`
	CityID uuid.UUID `json:"cityId" validate:"required"`
}

// LocationRequest - создание и обновление локации
type LocationRequest struct {
	HouseAddress string    `json:"houseAddress" validate:"required,max=60"`
	StreetName   string    `json:"streetName" validate:"required,max=60"`
	FreeText     string    `json:"freeText,omitempty" validate:"max=140"`
	Latitude     float64   `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    float64   `json:"longitude" validate:"required,min=-180,max=180"`
	AreaID       uuid.UUID `json:"areaId" validate:"required"`
}
