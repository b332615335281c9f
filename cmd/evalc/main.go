package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sustain-se/simulator/pkg/simulation"
)

var (
	temp    = flag.Float64("temp", 600, "geothermal heat (°C)")
	wasted  = flag.Float64("wasted", 80, "wasted energy input (kWh)")
	device  = flag.Float64("teg-device", 15, "TEG device recovery (%)")
	system  = flag.Float64("teg-system", 20, "TEG system recovery (%)")
	health  = flag.Float64("pipe-health", 100, "pipe health (%)")
	storage = flag.Float64("storage", 500, "battery storage capacity (kWh)")
	series  = flag.Bool("series", false, "print the 24 hour projection")
	asJSON  = flag.Bool("json", false, "machine readable output")
)

func main() {
	flag.Parse()

	in := simulation.Inputs{
		GeothermalTemp:    *temp,
		WastedEnergyInput: *wasted,
		TEGDeviceLevel:    *device,
		TEGSystemLevel:    *system,
		PipeHealth:        *health,
		StorageCapacity:   *storage,
	}
	if err := in.Validate(); err != nil {
		log.Fatal(err)
	}

	res := simulation.Evaluate(in)

	if *asJSON {
		out := struct {
			simulation.Result
			Series []simulation.Point `json:"series,omitempty"`
		}{Result: res}
		if *series {
			out.Series = simulation.HourlyProjection(res.TotalOutput)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("Geothermal Output (kWh):       %.2f\n", res.GeoOutput)
	fmt.Printf("Wasted Energy Recovery (kWh):  %.2f\n", res.WasteOutput)
	fmt.Printf("TEG Recovery (kWh):            %.2f\n", res.TEGRecovery)
	fmt.Printf("Pipe Efficiency Factor:        %.2f\n", res.PipeEfficiency)
	fmt.Printf("Total Generated (kWh):         %.2f\n", res.TotalOutput)
	fmt.Printf("Stored Energy (kWh):           %.2f\n", res.Charge)
	fmt.Printf("Future Discharge (kWh):        %.2f\n", res.Discharge)
	fmt.Println(res.PipeStatusMsg)

	if *series {
		fmt.Println()
		for _, p := range simulation.HourlyProjection(res.TotalOutput) {
			fmt.Printf("%02d:00  %8.2f kWh\n", p.Hour, p.KWH)
		}
	}
}
