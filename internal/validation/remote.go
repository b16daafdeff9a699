package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// DatabaseIDPattern определяет допустимый формат id базы данных
// 32 шестнадцатеричных символа, с дефисами в формате UUID или без них
var DatabaseIDPattern = regexp.MustCompile(`^(?i:[0-9a-f]{32}|[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})$`)

// APIKeyPrefixes are the prefixes of integration tokens
var APIKeyPrefixes = []string{"secret_", "ntn_"}

const (
	// MinAPIKeyLen минимальная длина ключа API
	MinAPIKeyLen = 20
	// MaxAPIKeyLen максимальная длина ключа API
	MaxAPIKeyLen = 128
)

// ValidateDatabaseID проверяет, что id базы данных соответствует формату
// Пустой id допустим: база для этого типа сущностей не подключена
func ValidateDatabaseID(id string) error {
	if id == "" {
		return nil
	}

	if !DatabaseIDPattern.MatchString(id) {
		return fmt.Errorf("database id must be 32 hex characters, optionally dash separated")
	}

	return nil
}

// ValidateAPIKey проверяет минимальные требования к ключу API
func ValidateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	if strings.ContainsAny(key, " \t\r\n") {
		return fmt.Errorf("api key must not contain whitespace")
	}

	if len(key) < MinAPIKeyLen {
		return fmt.Errorf("api key must be at least %d characters long", MinAPIKeyLen)
	}

	if len(key) > MaxAPIKeyLen {
		return fmt.Errorf("api key must not exceed %d characters", MaxAPIKeyLen)
	}

	for _, prefix := range APIKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return nil
		}
	}

	return fmt.Errorf("api key must start with one of %s", strings.Join(APIKeyPrefixes, ", "))
}

// NormalizeDatabaseID strips dashes and lowercases the id so that both
// accepted spellings compare equal
func NormalizeDatabaseID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}
