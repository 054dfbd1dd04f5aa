package bhmerrors

import "fmt"

// NoRecordFound - Custom error to inform that no bid was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no bid was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ParseError - Custom error to inform that a bid field could not be converted to its numeric type
//   - Field is the name of the field that failed (bidId or amount)
//   - Value is the offending text
//   - Err is the underlying conversion error, if any
type ParseError struct {
	Field string
	Value string
	Err   error
}

// Error - Used to notify that a field could not be parsed
func (P ParseError) Error() string {
	if P.Field == "" {
		return "parse error"
	}
	if P.Err == nil {
		return fmt.Sprintf("unable to parse %s %q", P.Field, P.Value)
	}
	return fmt.Sprintf("unable to parse %s %q: %s", P.Field, P.Value, P.Err)
}

// Unwrap - Returns the underlying conversion error
func (P ParseError) Unwrap() error {
	return P.Err
}

// Is - Makes errors.Is(err, ParseError{}) match any ParseError regardless of its fields
func (P ParseError) Is(target error) bool {
	_, ok := target.(ParseError)
	return ok
}
