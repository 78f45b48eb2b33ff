package guest

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone normalizes a phone number to E.164 format. The region is
// the ISO country code used when the number carries no explicit prefix
// (taken from the user's settings).
func NormalizePhone(phone string, region string) (string, error) {
	phone = strings.TrimSpace(phone)

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", err
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", phonenumbers.ErrNotANumber
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
