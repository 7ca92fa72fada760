package shared

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
)

const maxUsernameLen = 30

// ValidateUsername checks a handle against Instagram's username rules:
// letters, digits, periods and underscores, at most 30 characters.
func ValidateUsername(username string) error {
	if len(username) == 0 {
		return errors.New("username cannot be empty")
	}
	if len(username) > maxUsernameLen {
		return fmt.Errorf("username cannot be longer than %d characters", maxUsernameLen)
	}
	for i := 0; i < len(username); i++ {
		c := username[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '.' || c == '_' {
			continue
		}
		return fmt.Errorf("username contains invalid character %q", c)
	}
	return nil
}

// SanitizeUsername strips the decorations people paste in along with a handle:
// a leading @, trailing slashes and whitespace.
func SanitizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	username = strings.TrimRight(username, "/ ")
	return username
}

// DbFileName derives the per-owner database file name. Characters outside
// [a-zA-Z0-9] become underscores; a murmur3 hash of the original name keeps
// "user.name" and "user_name" from colliding on the same file.
func DbFileName(owner string) string {
	var buf bytes.Buffer
	for i := 0; i < len(owner); i++ {
		c := owner[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			buf.WriteByte(c)
		} else {
			buf.WriteByte('_')
		}
	}
	hash := murmur3.Sum32([]byte(owner))
	return fmt.Sprintf("%s-%08x.db", buf.String(), hash)
}
