package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// formats backs the format rules delegated to go-playground/validator.
// A *validator.Validate is safe for concurrent use.
var formats = validator.New()

func syncRule(name, msg string, fn func(value any) bool) Rule {
	return Rule{
		Name:    name,
		Message: msg,
		Evaluate: func(_ context.Context, value any, _ Args) (bool, error) {
			return fn(value), nil
		},
	}
}

// IsDefined fails when the value is absent: missing, nil or a blank string.
// It is the only built-in rule that rejects absence.
func IsDefined(msg string) Rule {
	return syncRule("isDefined", msg, func(value any) bool {
		return !IsAbsent(value)
	})
}

// IsNotEmpty fails on blank strings. Missing values pass.
func IsNotEmpty(msg string) Rule {
	return syncRule("isNotEmpty", msg, func(value any) bool {
		if value == nil {
			return true
		}
		return !IsAbsent(value)
	})
}

// IsNumber passes numbers and numeric strings. Missing values pass.
func IsNumber(msg string) Rule {
	return syncRule("isNumber", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		_, ok := ToFloat(value)
		return ok
	})
}

// IsNumberPositiveOrZero fails only on numeric values below zero.
// Missing, zero and non-numeric values pass; IsNumber reports the latter.
func IsNumberPositiveOrZero(msg string) Rule {
	rule := syncRule("isNumberPositiveOrZero", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		f, ok := ToFloat(value)
		if !ok {
			return true
		}
		return f >= 0
	})
	rule.AlwaysRun = true
	return rule
}

// IsPositive requires a number strictly greater than zero.
// Missing values pass, present but non-numeric values fail.
func IsPositive(msg string) Rule {
	return syncRule("isPositive", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		f, ok := ToFloat(value)
		return ok && f > 0
	})
}

// IsDate passes time.Time values and strings in one of DateLayouts.
// Missing values pass.
func IsDate(msg string) Rule {
	return syncRule("isDate", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		_, ok := ParseDate(value)
		return ok
	})
}

// Length requires the trimmed textual value to have between min and max
// runes. A negative max means unbounded. Absent values pass.
func Length(minLen, maxLen int, msg string) Rule {
	return syncRule("length", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		n := utf8.RuneCountInString(strings.TrimSpace(stringOf(value)))
		return n >= minLen && (maxLen < 0 || n <= maxLen)
	})
}

// IsEmail validates the address with the go-playground "email" tag.
// Missing values pass.
func IsEmail(msg string) Rule {
	return syncRule("isEmail", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		s, ok := value.(string)
		if !ok {
			return false
		}
		return formats.Var(s, "email") == nil
	})
}

// IsInt passes integral numbers and integral numeric strings.
// Missing values pass.
func IsInt(msg string) Rule {
	return syncRule("isInt", msg, func(value any) bool {
		if IsAbsent(value) {
			return true
		}
		_, ok := ToInt64(value)
		return ok
	})
}

// Exists requires the referenced entity of the given kind to exist.
// A missing id, zero or "0" passes; IsDefined reports absence.
func Exists(kind EntityKind, msg string) Rule {
	return Rule{
		Name:    "exists",
		Message: msg,
		Async:   true,
		Kind:    kind,
		Evaluate: func(ctx context.Context, value any, args Args) (bool, error) {
			if isEmptyID(value) {
				return true, nil
			}
			return lookup(ctx, kind, value, args)
		},
	}
}

// IsUnique requires that no entity of the given kind matches the value.
// Missing values pass.
func IsUnique(kind EntityKind, msg string) Rule {
	return Rule{
		Name:    "isUnique",
		Message: msg,
		Async:   true,
		Kind:    kind,
		Evaluate: func(ctx context.Context, value any, args Args) (bool, error) {
			if IsAbsent(value) {
				return true, nil
			}
			found, err := lookup(ctx, kind, value, args)
			if err != nil {
				return false, err
			}
			return !found, nil
		},
	}
}

// IsEmailUnique requires that no user is registered with the e-mail address.
func IsEmailUnique(msg string) Rule {
	rule := IsUnique(KindUserEmail, msg)
	rule.Name = "isEmailUnique"
	return rule
}

// IsUsernameUnique requires that no user is registered with the username.
func IsUsernameUnique(msg string) Rule {
	rule := IsUnique(KindUserUsername, msg)
	rule.Name = "isUsernameUnique"
	return rule
}

func lookup(ctx context.Context, kind EntityKind, value any, args Args) (bool, error) {
	if args.Lookup == nil {
		return false, ErrNoLookup
	}
	return args.Lookup.Exists(ctx, kind, value)
}

func stringOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
