// Package export writes run reports: JSON and CSV trajectories and PNG
// plots. It only reports results; nothing here can rehydrate a running
// simulation.
package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/sim"
)

type RunData struct {
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Params     pendulum.Params    `json:"params"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewRunData(integrator string, dt, duration float64, params pendulum.Params, result *sim.Result) *RunData {
	data := &RunData{
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      result.StepsTaken,
		Params:     params,
		Times:      result.Times,
		States:     make([][]float64, len(result.States)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.States {
		data.States[i] = s
	}
	return data
}

func WriteJSON(path string, data *RunData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

var csvHeader = []string{"time", "theta1", "omega1", "theta2", "omega2"}

func WriteCSV(path string, data *RunData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for i, s := range data.States {
		row := make([]string, 0, len(csvHeader))
		row = append(row, strconv.FormatFloat(data.Times[i], 'f', 6, 64))
		for _, v := range s {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
