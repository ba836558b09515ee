package models

import (
	"fmt"
	"strings"
)

// ParseGameID splits an identifier of the form "2025-05-16_ChicagoWhiteSox@ChicagoCubs"
// into its away and home team names.
func ParseGameID(gameID string) (away, home string, err error) {
	_, teams, ok := strings.Cut(gameID, "_")
	if !ok {
		return "", "", fmt.Errorf("%w: %q missing '_'", ErrMalformedGameID, gameID)
	}
	away, home, ok = strings.Cut(teams, "@")
	if !ok {
		return "", "", fmt.Errorf("%w: %q missing '@'", ErrMalformedGameID, gameID)
	}
	if away == "" || home == "" || strings.Contains(home, "@") {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedGameID, gameID)
	}
	return away, home, nil
}
