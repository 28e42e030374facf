package service

import (
	"strconv"
	"strings"
)

// DefaultAppVersion is assumed when a client sends no X-App-Version
// header; such clients predate ranked voting.
const DefaultAppVersion = "1.0"

// rankedVotingVersion is the client version that introduced ranked
// three-choice submissions.
const rankedVotingVersion = "2.0"

// versionAtLeast compares dotted numeric versions segment by segment,
// so "10.1" sorts above "2.0". Non-numeric segments count as zero.
func versionAtLeast(version, threshold string) bool {
	vParts := strings.Split(version, ".")
	tParts := strings.Split(threshold, ".")

	n := len(vParts)
	if len(tParts) > n {
		n = len(tParts)
	}

	for i := 0; i < n; i++ {
		v := versionSegment(vParts, i)
		t := versionSegment(tParts, i)
		if v != t {
			return v > t
		}
	}
	return true
}

func versionSegment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
