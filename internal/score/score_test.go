package score

import (
	"math"
	"testing"

	"daytrack/internal/models"
)

func TestNormalizeWeights_AlreadyNormalized(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Deep work", Weight: 60},
		{ID: "2", Title: "Email", Weight: 40},
	}

	result := NormalizeWeights(tasks)

	if result[0].Weight != 60 || result[1].Weight != 40 {
		t.Errorf("Expected weights unchanged, got %v and %v", result[0].Weight, result[1].Weight)
	}
}

func TestNormalizeWeights_ZeroTotal(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C"},
	}

	result := NormalizeWeights(tasks)

	for i, task := range result {
		if task.Weight != 33.33 {
			t.Errorf("Task %d: expected equal weight 33.33, got %v", i, task.Weight)
		}
	}
}

func TestNormalizeWeights_ScalesAndPushesResidueOntoFirst(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "A", Weight: 1},
		{ID: "2", Title: "B", Weight: 1},
		{ID: "3", Title: "C", Weight: 1},
	}

	result := NormalizeWeights(tasks)

	// 1/3 scaled: 33.33 each, residue 0.01 goes to the first task
	if result[0].Weight != 33.34 {
		t.Errorf("Expected first weight 33.34, got %v", result[0].Weight)
	}
	if result[1].Weight != 33.33 || result[2].Weight != 33.33 {
		t.Errorf("Expected remaining weights 33.33, got %v and %v", result[1].Weight, result[2].Weight)
	}

	sum := 0.0
	for _, task := range result {
		sum += task.Weight
	}
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("Expected weights to sum to 100.00, got %v", sum)
	}
}

func TestNormalizeWeights_SumInvariant(t *testing.T) {
	cases := [][]float64{
		{50, 30},
		{10, 10, 10},
		{200, 100, 50},
		{0.5, 0.25, 0.125},
		{99, 2},
	}

	for _, weights := range cases {
		var tasks []models.Task
		for _, w := range weights {
			tasks = append(tasks, models.Task{Weight: w})
		}

		result := NormalizeWeights(tasks)

		sum := 0.0
		for _, task := range result {
			sum += task.Weight
		}
		if math.Abs(sum-100) > 0.01 {
			t.Errorf("Weights %v: expected normalized sum 100.00, got %v", weights, sum)
		}
	}
}

func TestNormalizeWeights_Idempotent(t *testing.T) {
	cases := [][]float64{
		{60, 40},
		{1, 1, 1},
		{0, 0},
		{7, 13, 29},
	}

	for _, weights := range cases {
		var tasks []models.Task
		for _, w := range weights {
			tasks = append(tasks, models.Task{Weight: w})
		}

		once := NormalizeWeights(tasks)
		twice := NormalizeWeights(once)

		for i := range once {
			if once[i].Weight != twice[i].Weight {
				t.Errorf("Weights %v: normalize not idempotent at index %d: %v vs %v",
					weights, i, once[i].Weight, twice[i].Weight)
			}
		}
	}
}

func TestNormalizeWeights_DoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Weight: 1},
		{ID: "2", Weight: 1},
	}

	NormalizeWeights(tasks)

	if tasks[0].Weight != 1 || tasks[1].Weight != 1 {
		t.Errorf("Input was mutated: %v, %v", tasks[0].Weight, tasks[1].Weight)
	}
}

func TestProductivity_Empty(t *testing.T) {
	if got := Productivity(nil); got != 0 {
		t.Errorf("Expected 0 for empty tasks, got %v", got)
	}
	if got := Productivity([]models.Task{}); got != 0 {
		t.Errorf("Expected 0 for empty tasks, got %v", got)
	}
}

func TestProductivity_ZeroWeight(t *testing.T) {
	tasks := []models.Task{
		{Weight: 0, CompletionPercent: 50},
	}

	if got := Productivity(tasks); got != 0 {
		t.Errorf("Expected 0 for zero total weight, got %v", got)
	}
}

func TestProductivity_KnownExample(t *testing.T) {
	tasks := []models.Task{
		{Weight: 60, CompletionPercent: 100},
		{Weight: 40, CompletionPercent: 50},
	}

	if got := Productivity(tasks); got != 80 {
		t.Errorf("Expected 80.00, got %v", got)
	}
}

func TestProductivity_ZeroWeightTaskContributesNothing(t *testing.T) {
	tasks := []models.Task{
		{Weight: 100, CompletionPercent: 40},
		{Weight: 0, CompletionPercent: 100},
	}

	if got := Productivity(tasks); got != 40 {
		t.Errorf("Expected 40.00, got %v", got)
	}
}

func TestProductivity_MalformedTotalStillNormalizedMean(t *testing.T) {
	// Weights sum to 50, not 100; calculator still acts as a weighted mean
	tasks := []models.Task{
		{Weight: 25, CompletionPercent: 100},
		{Weight: 25, CompletionPercent: 50},
	}

	if got := Productivity(tasks); got != 75 {
		t.Errorf("Expected 75.00, got %v", got)
	}
}

func TestProductivity_Bounds(t *testing.T) {
	cases := [][]models.Task{
		{{Weight: 100, CompletionPercent: 0}},
		{{Weight: 100, CompletionPercent: 100}},
		{{Weight: 33, CompletionPercent: 12}, {Weight: 67, CompletionPercent: 99}},
		{{Weight: 1, CompletionPercent: 100}, {Weight: 99, CompletionPercent: 0}},
	}

	for i, tasks := range cases {
		got := Productivity(tasks)
		if got < 0 || got > 100 {
			t.Errorf("Case %d: productivity %v out of [0,100]", i, got)
		}
	}
}
