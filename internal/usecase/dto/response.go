package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/geo-registry/internal/domain"
)

// TenantResponse - тенант вместе с расшифрованным API-ключом.
// Ключ возвращается только авторизованному администратору.
type TenantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	APIKey       string    `json:"apiKey"`
	IsActive     bool      `json:"isActive"`
	DateCreated  time.Time `json:"dateCreated"`
	CreatedBy    string    `json:"createdBy"`
	DateModified time.Time `json:"dateModified"`
	ModifiedBy   string    `json:"modifiedBy"`
}

// ClientResponse - клиент с именем владеющего тенанта
type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	TenantID     uuid.UUID `json:"tenantId"`
	TenantName   string    `json:"tenantName"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// ContinentResponse - континент
type ContinentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ClientID     uuid.UUID `json:"clientId"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// CountryResponse - страна с именем континента
type CountryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CountryCode   string    `json:"countryCode"`
	PhoneCode     string    `json:"phoneCode"`
	Flag          string    `json:"flag,omitempty"`
	ContinentID   uuid.UUID `json:"continentId"`
	ContinentName string    `json:"continentName"`
	DateCreated   time.Time `json:"dateCreated"`
	DateModified  time.Time `json:"dateModified"`
}

// StateResponse - штат с именем страны
type StateResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CountryID    uuid.UUID `json:"countryId"`
	CountryName  string    `json:"countryName"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// CityResponse - город с именами штата и страны
type CityResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	StateID      uuid.UUID `json:"stateId"`
	StateName    string    `json:"stateName"`
	CountryName  string    `json:"countryName"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// AreaResponse - район с именами города, штата и страны
type AreaResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CityID       uuid.UUID `json:"cityId"`
	CityName     string    `json:"cityName"`
	StateName    string    `json:"stateName"`
	CountryName  string    `json:"countryName"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// LocationResponse - локация с именами всех предков до страны
type LocationResponse struct {
	ID           uuid.UUID `json:"id"`
	HouseAddress string    `json:"houseAddress"`
	StreetName   string    `json:"streetName"`
	FreeText     string    `json:"freeText,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	AreaID       uuid.UUID `json:"areaId"`
	AreaName     string    `json:"areaName"`
	CityName     string    `json:"cityName"`
	StateName    string    `json:"stateName"`
	CountryName  string    `json:"countryName"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

func NewTenantResponse(t *domain.Tenant, apiKey string) *TenantResponse {
	return &TenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		Email:        t.Email,
		APIKey:       apiKey,
		IsActive:     t.IsActive,
		DateCreated:  t.DateCreated,
		CreatedBy:    t.CreatedBy,
		DateModified: t.DateModified,
		ModifiedBy:   t.ModifiedBy,
	}
}

func NewClientResponse(c *domain.Client, tenantName string) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		TenantID:     c.TenantID,
		TenantName:   tenantName,
		DateCreated:  c.DateCreated,
		DateModified: c.DateModified,
	}
}

func NewContinentResponse(c *domain.Continent) *ContinentResponse {
	return &ContinentResponse{
		ID:           c.ID,
		Name:         c.Name,
		ClientID:     c.ClientID,
		DateCreated:  c.DateCreated,
		DateModified: c.DateModified,
	}
}

func NewCountryResponse(c *domain.Country, anc *domain.Ancestry) *CountryResponse {
	return &CountryResponse{
		ID:            c.ID,
		Name:          c.Name,
		CountryCode:   c.CountryCode,
		PhoneCode:     c.PhoneCode,
		Flag:          c.Flag,
		ContinentID:   c.ContinentID,
		ContinentName: anc.ContinentName,
		DateCreated:   c.DateCreated,
		DateModified:  c.DateModified,
	}
}

func NewStateResponse(s *domain.State, anc *domain.Ancestry) *StateResponse {
	return &StateResponse{
		ID:           s.ID,
		Name:         s.Name,
		CountryID:    s.CountryID,
		CountryName:  anc.CountryName,
		DateCreated:  s.DateCreated,
		DateModified: s.DateModified,
	}
}

func NewCityResponse(c *domain.City, anc *domain.Ancestry) *CityResponse {
	return &CityResponse{
		ID:           c.ID,
		Name:         c.Name,
		StateID:      c.StateID,
		StateName:    anc.StateName,
		CountryName:  anc.CountryName,
		DateCreated:  c.DateCreated,
		DateModified: c.DateModified,
	}
}

func NewAreaResponse(a *domain.Area, anc *domain.Ancestry) *AreaResponse {
	return &AreaResponse{
		ID:           a.ID,
		Name:         a.Name,
		CityID:       a.CityID,
		CityName:     anc.CityName,
		StateName:    anc.StateName,
		CountryName:  anc.CountryName,
		DateCreated:  a.DateCreated,
		DateModified: a.DateModified,
	}
}

func NewLocationResponse(l *domain.Location, anc *domain.Ancestry) *LocationResponse {
	return &LocationResponse{
		ID:           l.ID,
		HouseAddress: l.HouseAddress,
		StreetName:   l.StreetName,
		FreeText:     l.FreeText,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		AreaID:       l.AreaID,
		AreaName:     anc.AreaName,
		CityName:     anc.CityName,
		StateName:    anc.StateName,
		CountryName:  anc.CountryName,
		DateCreated:  l.DateCreated,
		DateModified: l.DateModified,
	}
}
