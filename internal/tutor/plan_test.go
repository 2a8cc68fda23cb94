package tutor

import (
	"strings"
	"testing"
)

func TestGeneratePlan_WeakestFirst(t *testing.T) {
	tasks := GeneratePlan([]string{"A", "B"}, map[string]float64{"A": 0.9, "B": 0.2}, 4)

	want := []string{"Review: B", "Practice problems: B", "Review: A", "Practice problems: A"}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("task %d: got %q, want %q", i, tasks[i].Title, title)
		}
	}
	if !strings.Contains(tasks[0].Description, "~20%") {
		t.Errorf("expected mastery percentage in %q", tasks[0].Description)
	}
	if tasks[0].EstimatedTime != "10–15 min" || tasks[1].EstimatedTime != "10–20 min" {
		t.Errorf("unexpected estimates %q, %q", tasks[0].EstimatedTime, tasks[1].EstimatedTime)
	}
}

func TestGeneratePlan_DefaultMastery(t *testing.T) {
	tasks := GeneratePlan([]string{"Known", "Unknown"}, map[string]float64{"Known": 0.5}, 6)
	if tasks[0].Title != "Review: Unknown" {
		t.Fatalf("expected unknown concept first, got %q", tasks[0].Title)
	}
	if !strings.Contains(tasks[0].Description, "~30%") {
		t.Errorf("expected default mastery in %q", tasks[0].Description)
	}
}

func TestGeneratePlan_StableTies(t *testing.T) {
	tasks := GeneratePlan([]string{"C", "A", "B"}, nil, 6)
	want := []string{"Review: C", "Practice problems: C", "Review: A", "Practice problems: A", "Review: B", "Practice problems: B"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("task %d: got %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestGeneratePlan_OddCapDropsLastPractice(t *testing.T) {
	tasks := GeneratePlan([]string{"A", "B", "C"}, nil, 3)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	if tasks[2].Title != "Review: B" {
		t.Errorf("got %q, want Review: B", tasks[2].Title)
	}
}

func TestGeneratePlan_DuplicateConcepts(t *testing.T) {
	tasks := GeneratePlan([]string{"A", "A", "B"}, map[string]float64{"A": 0.1, "B": 0.4}, 6)
	if len(tasks) != 4 {
		t.Fatalf("got %d tasks, want 4", len(tasks))
	}
}

func TestGeneratePlan_Bounds(t *testing.T) {
	concepts := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for n := 0; n <= 10; n++ {
		tasks := GeneratePlan(concepts, nil, n)
		if len(tasks) > n {
			t.Errorf("maxTasks=%d: got %d tasks", n, len(tasks))
		}
	}
	if got := GeneratePlan(nil, nil, 6); len(got) != 0 {
		t.Errorf("expected empty plan, got %d tasks", len(got))
	}
	if got := GeneratePlan(concepts, nil, -1); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil plan for negative cap, got %v", got)
	}
}

func TestGeneratePlan_DoesNotModifyMastery(t *testing.T) {
	mastery := map[string]float64{"A": 0.5}
	GeneratePlan([]string{"A", "B"}, mastery, 6)
	if len(mastery) != 1 {
		t.Errorf("mastery map was modified: %v", mastery)
	}
}
