package guard

import "github.com/google/uuid"

// isCanonicalUUID does a cheap shape check before the full parse.
func isCanonicalUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	return value[8] == '-' && value[13] == '-' && value[18] == '-' && value[23] == '-'
}

// ValidUUID fails with ErrInvalidArgument unless value is a canonical
// 36-character UUID string.
func ValidUUID(name, value string, opts ...Option) (string, error) {
	if !isCanonicalUUID(value) {
		return "", newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotNilUUID fails with ErrInvalidArgument when value is the nil UUID.
func NotNilUUID(name string, value uuid.UUID, opts ...Option) (uuid.UUID, error) {
	if value == uuid.Nil {
		return uuid.Nil, newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}
