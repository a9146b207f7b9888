package storage

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"tomato/internal/core/model"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSchedule indicates the schedule document is incomplete.
var ErrInvalidSchedule = errors.New("invalid schedule")

//go:embed schedule.yaml
var defaultSchedule []byte

type yamlLabel struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

type yamlPhase struct {
	Label       string `yaml:"label"`
	Color       string `yaml:"color"`
	Minutes     int    `yaml:"minutes"`
	NotifyTitle string `yaml:"notify_title"`
	NotifyBody  string `yaml:"notify_body"`
}

type yamlSchedule struct {
	Idle       yamlLabel `yaml:"idle"`
	Done       yamlLabel `yaml:"done"`
	TickMark   string    `yaml:"tick_mark"`
	Work       yamlPhase `yaml:"work"`
	ShortBreak yamlPhase `yaml:"short_break"`
	LongBreak  yamlPhase `yaml:"long_break"`
}

// DefaultSchedule returns the schedule compiled into the binary.
func DefaultSchedule() (model.Schedule, error) {
	return ParseSchedule(defaultSchedule)
}

// MustDefaultSchedule returns the built-in schedule or panics on error.
func MustDefaultSchedule() model.Schedule {
	schedule, err := DefaultSchedule()
	if err != nil {
		panic(err)
	}
	return schedule
}

// ParseSchedule decodes and validates a YAML schedule document.
func ParseSchedule(rawData []byte) (model.Schedule, error) {
	var fileData yamlSchedule
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Schedule{}, fmt.Errorf("parse schedule yaml: %w", err)
	}

	schedule := model.Schedule{
		IdleLabel: fileData.Idle.Label,
		IdleColor: fileData.Idle.Color,
		DoneLabel: fileData.Done.Label,
		DoneColor: fileData.Done.Color,
		TickMark:  fileData.TickMark,
	}

	var err error
	if schedule.Work, err = toPhaseStyle("work", fileData.Work); err != nil {
		return model.Schedule{}, err
	}
	if schedule.ShortBreak, err = toPhaseStyle("short_break", fileData.ShortBreak); err != nil {
		return model.Schedule{}, err
	}
	if schedule.LongBreak, err = toPhaseStyle("long_break", fileData.LongBreak); err != nil {
		return model.Schedule{}, err
	}
	if schedule.TickMark == "" {
		return model.Schedule{}, fmt.Errorf("%w: tick_mark is empty", ErrInvalidSchedule)
	}

	return schedule, nil
}

func toPhaseStyle(name string, phase yamlPhase) (model.PhaseStyle, error) {
	if phase.Minutes <= 0 {
		return model.PhaseStyle{}, fmt.Errorf("%w: %s minutes must be positive, got %d", ErrInvalidSchedule, name, phase.Minutes)
	}
	if phase.Label == "" {
		return model.PhaseStyle{}, fmt.Errorf("%w: %s label is empty", ErrInvalidSchedule, name)
	}
	return model.PhaseStyle{
		Label:       phase.Label,
		Color:       phase.Color,
		NotifyTitle: phase.NotifyTitle,
		NotifyBody:  phase.NotifyBody,
		Duration:    time.Duration(phase.Minutes) * time.Minute,
	}, nil
}
