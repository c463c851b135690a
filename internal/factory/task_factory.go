package factory

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/model"
	"fmt"
	"log"
)

// TaskGroup is a logical grouping of tasks and their associated writers.
type TaskGroup struct {
	Tasks   []model.Task
	Writers []model.Writer
}

// TaskFactory defines a function that creates a group of tasks and their writers.
type TaskFactory func(cfg *config.Config) (*TaskGroup, error)

// registry holds the mapping of tracker types to their factory functions.
var registry = make(map[string]TaskFactory)

// RegisterTracker registers a new tracker type with its factory function.
func RegisterTracker(name string, factory TaskFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("tracker type '%s' already registered", name))
	}
	registry[name] = factory
}

// Create creates a list of TaskGroups based on the provided config.
func Create(cfg *config.Config) ([]TaskGroup, error) {
	var taskGroups []TaskGroup

	for _, trackerType := range cfg.Tracker.Types {
		log.Printf("Creating tasks and writers for tracker type: '%s'\n", trackerType)

		factory, ok := registry[trackerType]
		if !ok {
			return nil, fmt.Errorf("unknown tracker type: '%s'", trackerType)
		}

		group, err := factory(cfg)
		if err != nil {
			return nil, fmt.Errorf("error creating tracker type '%s': %w", trackerType, err)
		}

		taskGroups = append(taskGroups, *group)
	}

	return taskGroups, nil
}
