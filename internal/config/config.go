// v2
// internal/config/config.go

// Package config assembles a run from two sources: process environment for
// deployment concerns (bind address, brokers, paths) and an ini scenario
// file for the physics (geometry, commodity properties, initial state).
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

// App is the environment-driven part of a run.
type App struct {
	BindAddr     string
	ScenarioPath string
	Steps        int
	Seed         int64
	PublishEvery int

	KafkaBrokers []string
	KafkaTopic   string

	DBPath string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int, log *slog.Logger) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("invalid integer in environment, using default", "key", key, "val", v, "default", def)
		return def
	}
	return n
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FromEnv reads deployment settings. Kafka and the snapshot database stay
// disabled unless their variables are set.
func FromEnv(log *slog.Logger) App {
	return App{
		BindAddr:     getenv("COLDSIM_BIND_ADDR", ":8080"),
		ScenarioPath: getenv("COLDSIM_SCENARIO", "conf/scenario.ini"),
		Steps:        getint("COLDSIM_STEPS", 360, log),
		Seed:         int64(getint("COLDSIM_SEED", 1, log)),
		PublishEvery: getint("COLDSIM_PUBLISH_EVERY", 10, log),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getenv("COLDSIM_KAFKA_TOPIC", "coldsim.snapshots"),
		DBPath:       os.Getenv("COLDSIM_DB"),
	}
}

// LoadScenario reads the physics of a run from an ini file. Per-cell
// matrices are filled uniformly from scalar keys; heterogeneous loads can
// be expressed per zone in the [zones] section.
func LoadScenario(path string) (sim.Params, sim.State, error) {
	file, err := ini.Load(path)
	if err != nil {
		return sim.Params{}, sim.State{}, err
	}

	container := file.Section("container")
	zones := container.Key("zones").MustInt(4)
	layers := container.Key("layers").MustInt(3)

	product := file.Section("product")
	airflow := file.Section("airflow")
	unit := file.Section("cooling_unit")
	controller := file.Section("controller")
	ambient := file.Section("ambient")

	p := sim.Params{
		Zones:           zones,
		Layers:          layers,
		ContainerLength: container.Key("length_m").MustFloat64(12.0),
		ContainerWidth:  container.Key("width_m").MustFloat64(2.4),
		ContainerHeight: container.Key("height_m").MustFloat64(2.6),

		ProductMass:    sim.UniformMatrix(zones, layers, product.Key("cell_mass_kg").MustFloat64(50)),
		ProductArea:    sim.UniformMatrix(zones, layers, product.Key("cell_area_m2").MustFloat64(20)),
		PositionFactor: sim.UniformMatrix(zones, layers, product.Key("position_factor").MustFloat64(1)),
		SpecificHeat:   product.Key("specific_heat").MustFloat64(3800),

		RespRate:      product.Key("respiration_rate").MustFloat64(1e-8),
		RespTempCoeff: product.Key("respiration_temp_coeff").MustFloat64(0.1),
		RespRefTemp:   product.Key("respiration_ref_temp").MustFloat64(20),
		RespEnthalpy:  product.Key("respiration_enthalpy").MustFloat64(10.7e6),

		WaterActivity:     product.Key("water_activity").MustFloat64(0.98),
		MassTransferCoeff: product.Key("mass_transfer_coeff").MustFloat64(0.001),
		SurfaceWetness:    product.Key("surface_wetness").MustFloat64(0.1),

		AirMass:         sim.UniformSlice(zones, airflow.Key("zone_air_mass_kg").MustFloat64(50)),
		AirFlow:         airflow.Key("mass_flow_kgs").MustFloat64(0.5),
		AirSpecificHeat: airflow.Key("air_specific_heat").MustFloat64(1006),

		BaseHeatTransfer: airflow.Key("base_heat_transfer").MustFloat64(25),

		RatedCoolingPower: unit.Key("rated_power_w").MustFloat64(10000),
		MaxCoolingPower:   unit.Key("max_power_w").MustFloat64(10000),
		CoilTemp:          unit.Key("coil_temp_c").MustFloat64(5),

		TCPITarget:      controller.Key("tcpi_target").MustFloat64(0.9),
		TurbulenceAlpha: controller.Key("turbulence_alpha").MustFloat64(0),

		AmbientPressure: ambient.Key("pressure_pa").MustFloat64(101325),
		AmbientHumidity: ambient.Key("humidity_ratio").MustFloat64(0.008),
		VentilationRate: ambient.Key("ventilation_rate_kgs").MustFloat64(0),
		WallHeatGain:    sim.UniformSlice(zones, ambient.Key("wall_heat_gain_w").MustFloat64(0)),
	}

	initial := file.Section("initial")
	s := sim.State{
		ProductTemp:     sim.UniformMatrix(zones, layers, initial.Key("product_temp_c").MustFloat64(20)),
		ProductMoisture: sim.UniformMatrix(zones, layers, initial.Key("product_moisture").MustFloat64(0.8)),
		AirTemp:         sim.UniformSlice(zones, initial.Key("air_temp_c").MustFloat64(15)),
		AirHumidity:     sim.UniformSlice(zones, initial.Key("air_humidity").MustFloat64(0.008)),
		TCPI:            initial.Key("tcpi").MustFloat64(0.9),
		CoolingPower:    initial.Key("cooling_power_w").MustFloat64(0),
	}

	if err := p.Validate(); err != nil {
		return sim.Params{}, sim.State{}, err
	}
	return p, s, nil
}
