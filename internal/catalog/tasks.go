// Package catalog provides the static task and grid-location registries for
// the footprint calculator.
//
// Both tables are embedded as CSV data and parsed once on first access. They
// are read-only after initialization; no mutation API is exposed.
package catalog

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Task categories.
const (
	// CategoryAI groups AI inference tasks (text, code, image, video generation).
	CategoryAI = "ai"

	// CategoryCloud groups data and cloud/consumer tasks (search, streaming, storage).
	CategoryCloud = "cloud"
)

// CSV column indices for tasks.csv.
const (
	colTaskID           = 0 // stable identifier
	colTaskLabel        = 1 // display name
	colTaskUnitEnergyWh = 2 // watt-hours per unit
	colTaskUnitLabel    = 3 // what one unit means
	colTaskCategory     = 4 // ai or cloud
)

//go:embed data/tasks.csv
var tasksCSV string

// Task represents one billable digital activity.
type Task struct {
	// ID is the stable identifier (e.g., "text_generation").
	ID string `json:"id"`

	// Label is the display name.
	Label string `json:"label"`

	// UnitEnergyWh is the energy in watt-hours consumed per one unit of the
	// task's natural quantity (per paragraph, per image, per hour).
	// Always positive.
	UnitEnergyWh float64 `json:"unit_energy_wh"`

	// UnitLabel describes what one unit means. Display only.
	UnitLabel string `json:"unit_label"`

	// Category is CategoryAI or CategoryCloud.
	Category string `json:"category"`
}

var (
	taskIndex map[string]Task
	taskList  []Task
	tasksOnce sync.Once
)

// parseTasks parses the embedded CSV into the task index and ordered list.
// Rows with a non-positive unit energy or an unknown category are skipped.
func parseTasks() {
	taskIndex = make(map[string]Task)

	reader := csv.NewReader(strings.NewReader(tasksCSV))

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) <= colTaskCategory {
			continue
		}

		id := strings.TrimSpace(record[colTaskID])
		if id == "" {
			continue
		}

		unitEnergy, err := strconv.ParseFloat(strings.TrimSpace(record[colTaskUnitEnergyWh]), 64)
		if err != nil || unitEnergy <= 0 {
			continue
		}

		category := strings.TrimSpace(record[colTaskCategory])
		if category != CategoryAI && category != CategoryCloud {
			continue
		}

		task := Task{
			ID:           id,
			Label:        strings.TrimSpace(record[colTaskLabel]),
			UnitEnergyWh: unitEnergy,
			UnitLabel:    strings.TrimSpace(record[colTaskUnitLabel]),
			Category:     category,
		}
		taskIndex[id] = task
		taskList = append(taskList, task)
	}
}

// TaskByID returns the task definition for the given id.
// Returns an error wrapping ErrUnknownID if the id is not in the catalogue.
func TaskByID(id string) (Task, error) {
	tasksOnce.Do(parseTasks)

	task, ok := taskIndex[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: task %q", ErrUnknownID, id)
	}
	return task, nil
}

// Tasks returns all catalogued tasks in catalogue order (AI tasks first,
// then data and cloud tasks). The returned slice is a copy.
func Tasks() []Task {
	tasksOnce.Do(parseTasks)

	out := make([]Task, len(taskList))
	copy(out, taskList)
	return out
}

// TasksByCategory returns the catalogued tasks for one category, in
// catalogue order.
func TasksByCategory(category string) []Task {
	tasksOnce.Do(parseTasks)

	var out []Task
	for _, task := range taskList {
		if task.Category == category {
			out = append(out, task)
		}
	}
	return out
}
