package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sustain-se/simulator/pkg/simulation"
	"github.com/sustain-se/simulator/pkg/version"
)

type evaluateResponse struct {
	simulation.Result
	Series []simulation.Point `json:"series"`
}

// Handler builds the dashboard HTTP API.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})
	mux.HandleFunc("/api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, version.Get())
	})
	mux.HandleFunc("/api/v1/inputs", a.handleInputs)
	mux.HandleFunc("/api/v1/result", a.handleResult)
	mux.HandleFunc("/api/v1/series", a.handleSeries)
	mux.HandleFunc("/api/v1/evaluate", a.handleEvaluate)
	mux.HandleFunc("/api/v1/alarms", a.handleAlarms)
	return mux
}

func (a *App) handleInputs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		in, err := a.source.Inputs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, in)
	case http.MethodPost:
		if a.manual == nil {
			http.Error(w, "inputs are sensor driven", http.StatusConflict)
			return
		}
		in, err := a.source.Inputs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		// decode over the current values so partial bodies only move
		// the sliders they name
		err = json.NewDecoder(r.Body).Decode(&in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		err = a.manual.Set(in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logrus.WithFields(logrus.Fields{
			"geothermalTemp":  in.GeothermalTemp,
			"pipeHealth":      in.PipeHealth,
			"storageCapacity": in.StorageCapacity,
		}).Debug("inputs updated")
		a.evaluate()
		writeJSON(w, a.result())
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *App) handleResult(w http.ResponseWriter, r *http.Request) {
	res := a.result()
	if res == nil {
		http.Error(w, "no evaluation yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, res)
}

func (a *App) handleSeries(w http.ResponseWriter, r *http.Request) {
	res := a.result()
	if res == nil {
		http.Error(w, "no evaluation yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, simulation.HourlyProjection(res.TotalOutput))
}

// handleEvaluate is the stateless one-shot form: six query parameters,
// defaults for whatever is missing, out-of-range values clamped.
func (a *App) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	in := simulation.Default()
	params := []struct {
		name  string
		field *float64
	}{
		{"geothermalTemp", &in.GeothermalTemp},
		{"wastedEnergyInput", &in.WastedEnergyInput},
		{"tegDeviceLevel", &in.TEGDeviceLevel},
		{"tegSystemLevel", &in.TEGSystemLevel},
		{"pipeHealth", &in.PipeHealth},
		{"storageCapacity", &in.StorageCapacity},
	}
	for _, p := range params {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid %s: %v", p.name, err), http.StatusBadRequest)
			return
		}
		*p.field = v
	}

	res := a.coefficients.Evaluate(in.Clamp())
	writeJSON(w, evaluateResponse{
		Result: res,
		Series: simulation.HourlyProjection(res.TotalOutput),
	})
}

func (a *App) handleAlarms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.alarms.Active())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logrus.Error(err)
	}
}
