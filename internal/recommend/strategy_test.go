package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		hasHistory      bool
		oracleAvailable bool
		want            Path
	}{
		{false, false, PathColdStartUnscored},
		{false, true, PathColdStartScored},
		{true, false, PathHistoryUnscored},
		{true, true, PathHistoryScored},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.hasHistory, tt.oracleAvailable))
		})
	}
}

func TestPathPredicates(t *testing.T) {
	assert.True(t, PathColdStartScored.Scored())
	assert.True(t, PathHistoryScored.Scored())
	assert.False(t, PathColdStartUnscored.Scored())
	assert.False(t, PathHistoryUnscored.Scored())

	assert.True(t, PathColdStartUnscored.ColdStart())
	assert.True(t, PathColdStartScored.ColdStart())
	assert.False(t, PathHistoryUnscored.ColdStart())
	assert.False(t, PathHistoryScored.ColdStart())
}
