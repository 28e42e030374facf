package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionAtLeast(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"1.0", false},
		{"1.9", false},
		{"1.9.9", false},
		{"0.5", false},
		{"2.0", true},
		{"2.0.0", true},
		{"2.1", true},
		{"2", true},
		{"3.0", true},
		{"10.0", true}, // numeric, not lexicographic
		{"10.1.2", true},
		{"", false},
		{"beta", false},
		{"2.x", true},
	}

	for _, tc := range cases {
		t.Run(tc.version, func(t *testing.T) {
			assert.Equal(t, tc.want, versionAtLeast(tc.version, rankedVotingVersion))
		})
	}
}

func TestStrategyFor(t *testing.T) {
	svc := &votingService{}

	assert.IsType(t, &legacyStrategy{}, svc.strategyFor(""))
	assert.IsType(t, &legacyStrategy{}, svc.strategyFor("1.0"))
	assert.IsType(t, &legacyStrategy{}, svc.strategyFor("1.9"))
	assert.IsType(t, &rankedStrategy{}, svc.strategyFor("2.0"))
	assert.IsType(t, &rankedStrategy{}, svc.strategyFor("2.1"))
	assert.IsType(t, &rankedStrategy{}, svc.strategyFor("10.0"))
}
