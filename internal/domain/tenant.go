package domain

import "github.com/google/uuid"

// Tenant - владелец доступа на запись. Секрет хранится в двух видах:
// односторонний хеш (ключ поиска при верификации) и обратимо зашифрованная
// копия (для повторного показа владельцу). Открытый текст не хранится.
type Tenant struct {
	CommonFields
	Name            string `json:"name" db:"name"`
	Email           string `json:"email" db:"email"`
	APIKeyHash      string `json:"-" db:"api_key_hash"`
	EncryptedAPIKey string `json:"-" db:"encrypted_api_key"`
	IsActive        bool   `json:"isActive" db:"is_active"`
}

// Client - область видимости для корня поддерева континентов,
// принадлежит тенанту.
type Client struct {
	CommonFields
	Name     string    `json:"name" db:"name"`
	TenantID uuid.UUID `json:"tenantId" db:"tenant_id"`
}
