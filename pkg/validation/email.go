package validation

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	emailAtext         = "[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]"
	emailDomainSegment = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`
)

var emailPattern = regexp.MustCompile(
	`^` + emailAtext + `+(?:\.` + emailAtext + `+)*@` +
		emailDomainSegment + `(?:\.` + emailDomainSegment + `)*$`,
)

// IsEmail reports whether value has the shape of an email address: a dotted
// atom local part of at most 64 characters, an "@", and hostname labels,
// 254 characters overall.
func IsEmail(value string) bool {
	if value == "" || len(value) > maxEmailLength {
		return false
	}
	at := strings.LastIndexByte(value, '@')
	if at <= 0 || at > maxEmailLocalPart {
		return false
	}
	return emailPattern.MatchString(value)
}
