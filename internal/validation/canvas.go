package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern определяет упрощенный формат email участника
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MaxCommentLen максимальная длина комментария в символах
const MaxCommentLen = 4000

// ValidateEmail проверяет email участника рабочего пространства
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not valid", email)
	}
	return nil
}

// ValidateComment проверяет текст комментария
func ValidateComment(body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("comment cannot be empty")
	}
	if n := utf8.RuneCountInString(body); n > MaxCommentLen {
		return fmt.Errorf("comment is %d characters, at most %d allowed", n, MaxCommentLen)
	}
	return nil
}
