package errors

import "net/http"

var (
	ErrInvalidAPIKey = New(
		"UNAUTHORIZED",
		"Invalid API Key",
		http.StatusUnauthorized,
	)

	ErrAdminRequired = New(
		"UNAUTHORIZED",
		"Unauthorized To Perform This Action",
		http.StatusUnauthorized,
	)

	ErrMissingAPIKey = New(
		"UNAUTHORIZED",
		"Missing X-API-KEY header",
		http.StatusUnauthorized,
	)

	ErrInvalidEmail = New(
		"INVALID_EMAIL",
		"Invalid email format",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrTenantNotFound = New(
		"TENANT_NOT_FOUND",
		"Tenant not found",
		http.StatusNotFound,
	)

	ErrClientNotFound = New(
		"CLIENT_NOT_FOUND",
		"Client Not Found",
		http.StatusNotFound,
	)

	ErrContinentNotFound = New(
		"CONTINENT_NOT_FOUND",
		"Continent Not Found",
		http.StatusNotFound,
	)

	ErrCountryNotFound = New(
		"COUNTRY_NOT_FOUND",
		"Country not Found",
		http.StatusNotFound,
	)

	ErrStateNotFound = New(
		"STATE_NOT_FOUND",
		"State not Found",
		http.StatusNotFound,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not Found",
		http.StatusNotFound,
	)

	ErrAreaNotFound = New(
		"AREA_NOT_FOUND",
		"Area not Found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not Found",
		http.StatusNotFound,
	)

	ErrTenantConflict = New(
		"TENANT_CONFLICT",
		"Tenant with this name or email already exists",
		http.StatusConflict,
	)

	ErrContinentConflict = New(
		"CONTINENT_CONFLICT",
		"Continent with this name already exists",
		http.StatusConflict,
	)

	ErrCountryConflict = New(
		"COUNTRY_CONFLICT",
		"Country with this name, code or phone code already exists",
		http.StatusConflict,
	)

	ErrStateConflict = New(
		"STATE_CONFLICT",
		"State Exists for this Country",
		http.StatusConflict,
	)

	ErrCityConflict = New(
		"CITY_CONFLICT",
		"City Exists for this State",
		http.StatusConflict,
	)

	ErrAreaConflict = New(
		"AREA_CONFLICT",
		"Area Exists for this City",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
