package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustain-se/simulator/pkg/simulation"
)

func TestFromResultMap(t *testing.T) {
	res := simulation.Evaluate(simulation.Default())
	m := FromResult(res).Map()

	assert.Equal(t, 300.0, m["geoOutput"])
	assert.Equal(t, res.TotalOutput, m["totalOutput"])
	assert.Equal(t, res.Discharge, m["discharge"])
	assert.Equal(t, "optimal", m["pipeStatus"])
	assert.Equal(t, int64(0), m["pipeAlarm"])
}

func TestFromResultPipeAlarm(t *testing.T) {
	in := simulation.Default()
	in.PipeHealth = 10
	m := FromResult(simulation.Evaluate(in)).Map()

	assert.Equal(t, "warning", m["pipeStatus"])
	assert.Equal(t, int64(1), m["pipeAlarm"])
}

func TestSnapshotOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(Snapshot{TotalOutput: pointer(480.6)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"totalOutput":480.6}`, string(b))
}
