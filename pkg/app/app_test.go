package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustain-se/simulator/pkg/api/v1/config"
	"github.com/sustain-se/simulator/pkg/simulation"
)

func newTestApp(t *testing.T) (*App, *httptest.Server) {
	t.Helper()
	a := New(&config.CliConfig{})
	require.NoError(t, a.setupSource())
	a.evaluate()
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return a, srv
}

func jsonDecode(resp *http.Response, out interface{}) error {
	return json.NewDecoder(resp.Body).Decode(out)
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, jsonDecode(resp, out))
}

func TestResultFromDashboardDefaults(t *testing.T) {
	_, srv := newTestApp(t)

	res := simulation.Result{}
	getJSON(t, srv.URL+"/api/v1/result", &res)
	assert.Equal(t, 300.0, res.GeoOutput)
	assert.InDelta(t, 480.60, res.TotalOutput, 1e-9)
	assert.InDelta(t, 360.45, res.Discharge, 1e-9)
	assert.Equal(t, simulation.PipeOptimal, res.PipeStatus)
}

func TestPostInputsReevaluatesAndRaisesAlarm(t *testing.T) {
	a, srv := newTestApp(t)

	resp, err := http.Post(srv.URL+"/api/v1/inputs", "application/json",
		strings.NewReader(`{"pipeHealth": 10}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := simulation.Result{}
	require.NoError(t, jsonDecode(resp, &res))
	assert.Equal(t, simulation.PipeWarning, res.PipeStatus)
	assert.Equal(t, 0.6, res.PipeEfficiency)
	// partial body only moved the pipe slider
	assert.Equal(t, 600.0, res.Inputs.GeothermalTemp)

	assert.Equal(t, []string{"Warning: Pipe needs replacement!"}, a.alarms.Active())

	// recovery clears the alarm
	resp2, err := http.Post(srv.URL+"/api/v1/inputs", "application/json",
		strings.NewReader(`{"pipeHealth": 95}`))
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Empty(t, a.alarms.Active())
}

func TestPostInputsRejectsOutOfRange(t *testing.T) {
	_, srv := newTestApp(t)

	resp, err := http.Post(srv.URL+"/api/v1/inputs", "application/json",
		strings.NewReader(`{"geothermalTemp": 1200}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// rejected update left the inputs untouched
	in := simulation.Inputs{}
	getJSON(t, srv.URL+"/api/v1/inputs", &in)
	assert.Equal(t, simulation.Default(), in)
}

func TestEvaluateOneShot(t *testing.T) {
	_, srv := newTestApp(t)

	out := evaluateResponse{}
	getJSON(t, srv.URL+"/api/v1/evaluate?geothermalTemp=600&wastedEnergyInput=80&tegDeviceLevel=15&tegSystemLevel=20&pipeHealth=100&storageCapacity=500", &out)
	assert.InDelta(t, 124.60, out.TEGRecovery, 1e-9)
	assert.InDelta(t, 480.60, out.Charge, 1e-9)
	assert.Len(t, out.Series, 24)
	assert.Equal(t, 0.0, out.Series[0].KWH)
	assert.InDelta(t, out.TotalOutput, out.Series[12].KWH, 1e-9)
}

func TestEvaluateClampsQueryValues(t *testing.T) {
	_, srv := newTestApp(t)

	out := evaluateResponse{}
	getJSON(t, srv.URL+"/api/v1/evaluate?geothermalTemp=2000", &out)
	assert.Equal(t, 900.0, out.Inputs.GeothermalTemp)
}

func TestEvaluateRejectsGarbage(t *testing.T) {
	_, srv := newTestApp(t)

	resp, err := http.Get(srv.URL + "/api/v1/evaluate?pipeHealth=hot")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeries(t *testing.T) {
	_, srv := newTestApp(t)

	series := []simulation.Point{}
	getJSON(t, srv.URL+"/api/v1/series", &series)
	assert.Len(t, series, 24)
	assert.InDelta(t, 480.60, series[12].KWH, 1e-9)
}

func TestHealth(t *testing.T) {
	_, srv := newTestApp(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
