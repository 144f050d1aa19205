package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// fallbackVersion is returned when the current version cannot be parsed.
const fallbackVersion = "1.1.0"

// InitialVersion is assigned to games entering the catalog.
const InitialVersion = "1.0.0"

// BumpVersion computes the next patch version: M.m.p becomes M.m.(p+1) while p < 9,
// otherwise M.(m+1).0. Malformed input yields 1.1.0.
func BumpVersion(current string) string {
	parts := strings.Split(strings.TrimSpace(current), ".")
	if len(parts) != 3 {
		return fallbackVersion
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return fallbackVersion
		}
		nums[i] = n
	}

	major, minor, patch := nums[0], nums[1], nums[2]
	if patch < 9 {
		return fmt.Sprintf("%d.%d.%d", major, minor, patch+1)
	}

	return fmt.Sprintf("%d.%d.0", major, minor+1)
}
