package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/render"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Chart(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, timeQuantum, err := s.parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.SimulateAll(processes, timeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

// Simulate takes a multipart upload: a CSV process table in "file" and an
// optional "time_quantum" field. With ?format=table the text report is
// returned instead of JSON.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing process table file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errorResponse(ctx, err)
	}
	defer file.Close()

	jobs, err := requests.ParseProcessTable(file)
	if err != nil {
		return errorResponse(ctx, err)
	}
	request := requests.ScheduleRequests{Jobs: jobs}
	if raw := strings.TrimSpace(ctx.FormValue("time_quantum")); raw != "" {
		timeQuantum, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("time_quantum %q is not an integer", raw)})
		}
		request.TimeQuantum = &timeQuantum
	}

	processes, timeQuantum, err := s.processes(&request)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.SimulateAll(processes, timeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if ctx.Query("format") == "table" {
		var buf bytes.Buffer
		render.Simulation(&buf, response)
		ctx.Type("txt", "utf-8")
		return ctx.Send(buf.Bytes())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Chart(ctx *fiber.Ctx) error {
	processes, timeQuantum, err := s.parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.SimulateAll(processes, timeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	image, err := render.Chart(response)
	if err != nil {
		return errorResponse(ctx, err)
	}
	ctx.Type("png")
	return ctx.Send(image)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	processes, timeQuantum, err := s.parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.Schedule(algorithm, processes, timeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

var errInvalidRequest = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, int, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return s.processes(&request)
}

// processes validates the request. The configured quantum only applies when
// the request leaves it out; an explicit non-positive value is rejected later.
func (s *SchedulerHandlerImpl) processes(request *requests.ScheduleRequests) ([]core.Process, int, error) {
	processes, err := request.Processes()
	if err != nil {
		return nil, 0, err
	}
	return processes, request.Quantum(s.config.RoundRobinTimeQuantum), nil
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, requests.ErrMalformedRecord),
		errors.Is(err, core.ErrInvalidProcess),
		errors.Is(err, schedulers.ErrInvalidTimeQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
	default:
		slog.Error("can not process request", "path", ctx.Path(), "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
