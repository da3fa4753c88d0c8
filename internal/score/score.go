// Package score implements the weighted-completion productivity calculation
// and task weight normalization.
package score

import (
	"math"

	"daytrack/internal/constants"
	"daytrack/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeWeights rescales task weights so they sum to exactly 100.
//
// Weights already summing to 100 (within tolerance 0.1) are returned
// unchanged. A zero total gets an equal split of 100/count per task. Any
// other total is scaled by 100/total with each weight rounded to 2 decimal
// places; the residual rounding error is added onto the first task's weight
// so the sum lands on exactly 100.00. The residual placement is deliberate
// and must stay reproducible across saves.
//
// The input list is not mutated. Callers must guarantee at least one task;
// an empty list is returned as-is.
func NormalizeWeights(tasks []models.Task) []models.Task {
	if len(tasks) == 0 {
		return tasks
	}

	total := 0.0
	for _, t := range tasks {
		total += t.Weight
	}

	if math.Abs(total-constants.TotalWeight) <= constants.WeightSumTolerance {
		return tasks
	}

	normalized := make([]models.Task, len(tasks))
	copy(normalized, tasks)

	if total == 0 {
		equal := round2(constants.TotalWeight / float64(len(normalized)))
		for i := range normalized {
			normalized[i].Weight = equal
		}
		return normalized
	}

	scale := constants.TotalWeight / total
	sum := 0.0
	for i := range normalized {
		normalized[i].Weight = round2(normalized[i].Weight * scale)
		sum += normalized[i].Weight
	}

	// Push the rounding residue onto the first task
	normalized[0].Weight = round2(normalized[0].Weight + (constants.TotalWeight - sum))

	return normalized
}

// Productivity computes a day's productivity percentage as the average of
// task completion weighted by declared task importance, rounded to 2 decimal
// places. A task with weight 0 contributes nothing regardless of completion.
//
// Returns 0 for an empty task list or a zero total weight rather than
// dividing by zero. The calculation works on any positive weight total, so a
// malformed weight sum still yields a sane normalized mean; requiring weights
// to sum to 100 is the save path's job, not this function's.
func Productivity(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}

	var totalWeight, weightedCompletion float64
	for _, t := range tasks {
		totalWeight += t.Weight
		weightedCompletion += t.Weight * t.CompletionPercent / 100
	}

	if totalWeight == 0 {
		return 0
	}

	return round2(weightedCompletion / totalWeight * 100)
}
