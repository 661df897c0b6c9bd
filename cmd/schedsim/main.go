package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/logger"
	"cpu-scheduler-simulator/internal/render"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, args []string) error {
	flags := pflag.NewFlagSet("schedsim", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a config file")
	chartFile := flags.String("chart", "", "also write a PNG chart of the averages to this file")
	flags.Int("quantum", 0, "round-robin time quantum (defaults to scheduler.round_robin.time_quantum)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	v := config.NewViper()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	if flags.Changed("quantum") {
		_ = v.BindPFlag("scheduler.round_robin.time_quantum", flags.Lookup("quantum"))
	}
	if flags.Changed("log-level") {
		_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	}
	cfg := config.FromViper(v)

	if err := logger.Setup(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Close()

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()

	jobs, err := requests.ParseProcessTable(f)
	if err != nil {
		return err
	}
	request := requests.ScheduleRequests{Jobs: jobs}
	processes, err := request.Processes()
	if err != nil {
		return err
	}

	sim, err := schedulers.SimulateAll(processes, request.Quantum(cfg.RoundRobinTimeQuantum))
	if err != nil {
		return err
	}
	render.Simulation(w, sim)

	if *chartFile != "" {
		image, err := render.Chart(sim)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*chartFile, image, 0644); err != nil {
			return fmt.Errorf("%v: error writing chart", err)
		}
	}
	return nil
}
