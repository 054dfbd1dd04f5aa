package utils

import (
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"strconv"
	"strings"
)

// ParseBidId - Converts a bid id to the non-negative integer key used for hashing.
// Surrounding white space is ignored, anything else that is not a base 10 integer results in a bhmerrors.ParseError.
func ParseBidId(bidId string) (key int64, err error) {
	key, err = strconv.ParseInt(strings.TrimSpace(bidId), 10, 64)
	if err != nil {
		key = 0
		err = bhmerrors.ParseError{Field: "bidId", Value: bidId, Err: err}
		return
	}
	if key < 0 {
		key = 0
		err = bhmerrors.ParseError{Field: "bidId", Value: bidId, Err: strconv.ErrRange}
	}

	return
}

// ParseAmount - Converts a monetary amount such as "$1,250.50" to a float64.
// Currency symbol and thousands separators are stripped before conversion.
func ParseAmount(amount string) (value float64, err error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(amount))
	value, err = strconv.ParseFloat(cleaned, 64)
	if err != nil {
		value = 0
		err = bhmerrors.ParseError{Field: "amount", Value: amount, Err: err}
	}

	return
}

// FormatAmount - Returns the shortest text representation of an amount, e.g. 125.5 or 300
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
