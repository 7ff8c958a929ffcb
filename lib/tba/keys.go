package tba

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	teamKeyRegex     = regexp.MustCompile(`^frc\d+$`)
	eventKeyRegex    = regexp.MustCompile(`^\d{4}[a-z0-9]+$`)
	matchKeyRegex    = regexp.MustCompile(`^\d{4}[a-z0-9]+_(?:qm|ef|qf|sf|f)\d*m\d+$`)
	districtKeyRegex = regexp.MustCompile(`^\d{4}[a-z]+$`)
)

// TeamKey builds the canonical key for a team number, e.g. TeamKey(4099)
// returns "frc4099".
func TeamKey(number int) string {
	return fmt.Sprintf("frc%d", number)
}

// NormalizeTeamKey accepts either a canonical "frcXXXX" key or a bare team
// number as a string and returns the canonical key.
func NormalizeTeamKey(key string) (string, error) {
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 {
			return "", &ValidationError{Value: key, Reason: "team number must be non-negative"}
		}
		return TeamKey(n), nil
	}
	if !teamKeyRegex.MatchString(key) {
		return "", &ValidationError{Value: key, Reason: `team key must look like "frc4099"`}
	}
	return key, nil
}

func teamNumberFromKey(key string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(key, "frc"))
	return n
}

func validateEventKey(key string) error {
	if !eventKeyRegex.MatchString(key) {
		return &ValidationError{Value: key, Reason: `event key must look like "2022iri"`}
	}
	return nil
}

func validateMatchKey(key string) error {
	if !matchKeyRegex.MatchString(key) {
		return &ValidationError{Value: key, Reason: `match key must look like "2022iri_f1m1"`}
	}
	return nil
}

func validateDistrictKey(key string) error {
	if !districtKeyRegex.MatchString(key) {
		return &ValidationError{Value: key, Reason: `district key must look like "2022chs"`}
	}
	return nil
}

// splitYearKey splits a "<year><code>" key such as "2022chs" into its parts.
// The key is assumed to already be validated.
func splitYearKey(key string) (int, string) {
	year, _ := strconv.Atoi(key[:4])
	return year, key[4:]
}
