package domain

import "github.com/google/uuid"

// Continent - корень иерархии, привязан к клиенту владеющего тенанта.
// Имя уникально во всём реестре.
type Continent struct {
	CommonFields
	Name     string    `json:"name" db:"name"`
	ClientID uuid.UUID `json:"clientId" db:"client_id"`
}

func (c *Continent) Meta() *CommonFields { return &c.CommonFields }
func (c *Continent) NodeName() string    { return c.Name }
func (c *Continent) ParentRef() uuid.UUID {
	return c.ClientID
}

// Country - имя, код страны и телефонный код уникальны во всём реестре.
type Country struct {
	CommonFields
	Name        string    `json:"name" db:"name"`
	CountryCode string    `json:"countryCode" db:"country_code"`
	PhoneCode   string    `json:"phoneCode" db:"phone_code"`
	Flag        string    `json:"flag,omitempty" db:"flag"`
	ContinentID uuid.UUID `json:"continentId" db:"continent_id"`
}

func (c *Country) Meta() *CommonFields  { return &c.CommonFields }
func (c *Country) NodeName() string     { return c.Name }
func (c *Country) ParentRef() uuid.UUID { return c.ContinentID }

// State - имя уникально в пределах страны.
type State struct {
	CommonFields
	Name      string    `json:"name" db:"name"`
	CountryID uuid.UUID `json:"countryId" db:"country_id"`
}

func (s *State) Meta() *CommonFields  { return &s.CommonFields }
func (s *State) NodeName() string     { return s.Name }
func (s *State) ParentRef() uuid.UUID { return s.CountryID }

// City - имя уникально в пределах штата.
type City struct {
	CommonFields
	Name    string    `json:"name" db:"name"`
	StateID uuid.UUID `json:"stateId" db:"state_id"`
}

func (c *City) Meta() *CommonFields  { return &c.CommonFields }
func (c *City) NodeName() string     { return c.Name }
func (c *City) ParentRef() uuid.UUID { return c.StateID }

// Area - имя уникально в пределах города.
type Area struct {
	CommonFields
	Name   string    `json:"name" db:"name"`
	CityID uuid.UUID `json:"cityId" db:"city_id"`
}

func (a *Area) Meta() *CommonFields  { return &a.CommonFields }
func (a *Area) NodeName() string     { return a.Name }
func (a *Area) ParentRef() uuid.UUID { return a.CityID }

// Location - лист иерархии, без ограничения уникальности имени.
type Location struct {
	CommonFields
	HouseAddress string    `json:"houseAddress" db:"house_address"`
	StreetName   string    `json:"streetName" db:"street_name"`
	FreeText     string    `json:"freeText,omitempty" db:"free_text"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	AreaID       uuid.UUID `json:"areaId" db:"area_id"`
}

func (l *Location) Meta() *CommonFields  { return &l.CommonFields }
func (l *Location) NodeName() string     { return l.HouseAddress }
func (l *Location) ParentRef() uuid.UUID { return l.AreaID }
