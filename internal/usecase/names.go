package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	violationPlayerOneRequired = "Player 1 name is required"
	violationPlayerTwoRequired = "Player 2 name is required"
	violationNamesNotDifferent = "Player names must be different"
)

// ValidatePlayerNames checks both names and returns them formatted for storage.
// Every broken rule is reported in one *apperror.InvalidNamesError.
func ValidatePlayerNames(nameOne, nameTwo string) (string, string, error) {
	nameOne = strings.TrimSpace(nameOne)
	nameTwo = strings.TrimSpace(nameTwo)

	var violations []string
	if nameOne == "" {
		violations = append(violations, violationPlayerOneRequired)
	}

	if nameTwo == "" {
		violations = append(violations, violationPlayerTwoRequired)
	}

	if nameOne != "" && nameTwo != "" && strings.EqualFold(nameOne, nameTwo) {
		violations = append(violations, violationNamesNotDifferent)
	}

	if len(violations) > 0 {
		return "", "", &apperror.InvalidNamesError{Violations: violations}
	}

	return FormatPlayerName(nameOne), FormatPlayerName(nameTwo), nil
}

// FormatPlayerName upper-cases the first letter and lower-cases the rest.
func FormatPlayerName(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
