package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommonFields - общие поля всех сущностей реестра. Идентификатор и
// таймстемпы выставляются слоем хранения, не бизнес-логикой.
type CommonFields struct {
	ID           uuid.UUID `json:"id" db:"id"`
	DateCreated  time.Time `json:"dateCreated" db:"date_created"`
	CreatedBy    string    `json:"createdBy" db:"created_by"`
	DateModified time.Time `json:"dateModified" db:"date_modified"`
	ModifiedBy   string    `json:"modifiedBy" db:"modified_by"`
}

// Node - любой узел иерархии (Continent..Location). Meta даёт доступ к
// общему блоку (id, атрибуция), ParentRef - ссылка на непосредственного
// родителя, по которой проверяется его существование перед записью.
type Node interface {
	Meta() *CommonFields
	NodeName() string
	ParentRef() uuid.UUID
}

// Ancestry - денормализованные имена предков узла, собранные явными
// запросами вверх по цепочке родителей на момент чтения.
type Ancestry struct {
	ContinentID   uuid.UUID
	ContinentName string
	CountryID     uuid.UUID
	CountryName   string
	StateID       uuid.UUID
	StateName     string
	CityID        uuid.UUID
	CityName      string
	AreaID        uuid.UUID
	AreaName      string
}
