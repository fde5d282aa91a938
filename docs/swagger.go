// Package docs Geo Registry API.
//
// Мультитенантный реестр географических справочников. Шестиуровневая
// иерархия Continent -> Country -> State -> City -> Area -> Location,
// тенанты с API-ключами и клиенты, от имени которых ведутся континенты.
//
// Основные возможности:
// - Управление тенантами и их API-ключами (административные операции)
// - Клиенты тенантов и привязанные к ним континенты
// - CRUD и поиск по всем шести уровням иерархии
// - Денормализованные имена предков в ответах
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-API-KEY
//	     in: header
//
// swagger:meta
package docs
