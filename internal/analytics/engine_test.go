package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func task(status models.TaskStatus, mutate ...func(*models.Task)) models.Task {
	t := models.Task{
		Title:     "test task",
		Status:    status,
		Priority:  models.PriorityMedium,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	for _, m := range mutate {
		m(&t)
	}
	return t
}

func TestStatusDistribution(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []models.Task
		expected []int // todo, in-progress, done
	}{
		{
			name:     "empty input yields zero-filled buckets",
			tasks:    nil,
			expected: []int{0, 0, 0},
		},
		{
			name: "mixed statuses",
			tasks: []models.Task{
				task(models.StatusTodo),
				task(models.StatusDone),
				task(models.StatusDone),
			},
			expected: []int{1, 0, 2},
		},
		{
			name: "unknown status excluded from every bucket",
			tasks: []models.Task{
				task(models.StatusTodo),
				task(models.TaskStatus("archived")),
			},
			expected: []int{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := StatusDistribution(tt.tasks)
			require.Len(t, dist, 3)
			assert.Equal(t, "To Do", dist[0].Name)
			assert.Equal(t, "In Progress", dist[1].Name)
			assert.Equal(t, "Done", dist[2].Name)
			for i, want := range tt.expected {
				assert.Equal(t, want, dist[i].Value)
			}
		})
	}
}

func TestStatusDistributionColors(t *testing.T) {
	dist := StatusDistribution(nil)
	require.Len(t, dist, 3)
	assert.Equal(t, "#FF8042", dist[0].Color)
	assert.Equal(t, "#FFBB28", dist[1].Color)
	assert.Equal(t, "#00C49F", dist[2].Color)
}

// Bucket sums never exceed the task count, with equality only when every
// status is recognized.
func TestStatusDistributionBucketSum(t *testing.T) {
	known := []models.Task{
		task(models.StatusTodo),
		task(models.StatusInProgress),
		task(models.StatusDone),
	}
	withUnknown := append(append([]models.Task{}, known...), task(models.TaskStatus("blocked")))

	sum := func(dist []StatusCount) int {
		total := 0
		for _, d := range dist {
			total += d.Value
		}
		return total
	}

	assert.Equal(t, len(known), sum(StatusDistribution(known)))
	assert.Less(t, sum(StatusDistribution(withUnknown)), len(withUnknown))
}

func TestPriorityDistribution(t *testing.T) {
	tasks := []models.Task{
		task(models.StatusTodo, func(tk *models.Task) { tk.Priority = models.PriorityLow }),
		task(models.StatusTodo, func(tk *models.Task) { tk.Priority = models.PriorityHigh }),
		task(models.StatusTodo, func(tk *models.Task) { tk.Priority = models.PriorityHigh }),
		task(models.StatusTodo, func(tk *models.Task) { tk.Priority = models.TaskPriority("urgent") }),
	}

	dist := PriorityDistribution(tasks)
	require.Len(t, dist, 3)
	assert.Equal(t, PriorityCount{Name: "Low", Value: 1}, dist[0])
	assert.Equal(t, PriorityCount{Name: "Medium", Value: 0}, dist[1])
	assert.Equal(t, PriorityCount{Name: "High", Value: 2}, dist[2])
}

func TestProjectRollups(t *testing.T) {
	alpha := models.Project{ID: primitive.NewObjectID(), Name: "Alpha"}
	beta := models.Project{ID: primitive.NewObjectID(), Name: "Beta"}

	tasks := []models.Task{
		task(models.StatusDone, func(tk *models.Task) { tk.ProjectID = alpha.ID.Hex() }),
		task(models.StatusTodo, func(tk *models.Task) { tk.ProjectID = alpha.ID.Hex() }),
		task(models.StatusInProgress, func(tk *models.Task) { tk.ProjectID = alpha.ID.Hex() }),
		task(models.StatusDone, func(tk *models.Task) { tk.ProjectID = "unrelated" }),
	}

	rollups := ProjectRollups([]models.Project{alpha, beta}, tasks)
	require.Len(t, rollups, 2)

	assert.Equal(t, ProjectRollup{Name: "Alpha", Total: 3, Completed: 1, InProgress: 1, Todo: 1}, rollups[0])
	// A project with no tasks is kept as a zero row, not omitted.
	assert.Equal(t, ProjectRollup{Name: "Beta"}, rollups[1])
}

func TestProjectRollupsTaskOrderIndependent(t *testing.T) {
	p := models.Project{ID: primitive.NewObjectID(), Name: "Gamma"}
	tasks := []models.Task{
		task(models.StatusDone, func(tk *models.Task) { tk.ProjectID = p.ID.Hex() }),
		task(models.StatusTodo, func(tk *models.Task) { tk.ProjectID = p.ID.Hex() }),
		task(models.StatusInProgress, func(tk *models.Task) { tk.ProjectID = p.ID.Hex() }),
	}
	reversed := []models.Task{tasks[2], tasks[1], tasks[0]}

	assert.Equal(t,
		ProjectRollups([]models.Project{p}, tasks),
		ProjectRollups([]models.Project{p}, reversed))
}

func TestProjectRollupsPreserveInputOrder(t *testing.T) {
	projects := []models.Project{
		{ID: primitive.NewObjectID(), Name: "Zulu"},
		{ID: primitive.NewObjectID(), Name: "Alpha"},
		{ID: primitive.NewObjectID(), Name: "Mike"},
	}
	rollups := ProjectRollups(projects, nil)
	require.Len(t, rollups, 3)
	assert.Equal(t, "Zulu", rollups[0].Name)
	assert.Equal(t, "Alpha", rollups[1].Name)
	assert.Equal(t, "Mike", rollups[2].Name)
}

func TestProductivityByUser(t *testing.T) {
	ada := models.User{UID: "uid-ada", Name: "Ada"}
	bob := models.User{UID: "uid-bob", Name: "Bob"}

	tasks := []models.Task{
		task(models.StatusDone, func(tk *models.Task) { tk.AssignedTo = "uid-ada" }),
		task(models.StatusTodo, func(tk *models.Task) { tk.AssignedTo = "uid-ada" }),
		task(models.StatusDone, func(tk *models.Task) { tk.AssignedTo = "uid-nobody" }),
	}

	rows := ProductivityByUser([]models.User{ada, bob}, tasks)
	require.Len(t, rows, 2)
	assert.Equal(t, UserProductivity{Name: "Ada", Assigned: 2, Completed: 1}, rows[0])
	// Users without assignments yield a zero row, not an omission.
	assert.Equal(t, UserProductivity{Name: "Bob"}, rows[1])
}

func TestProductivityTrendWindow(t *testing.T) {
	tests := []struct {
		name       string
		windowDays int
		wantLen    int
	}{
		{"explicit week", 7, 7},
		{"month window honored", 30, 30},
		{"single day", 1, 1},
		{"zero falls back to default", 0, DefaultTrendDays},
		{"negative falls back to default", -3, DefaultTrendDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := ProductivityTrend(nil, tt.windowDays, testNow)
			assert.Len(t, points, tt.wantLen)
		})
	}
}

func TestProductivityTrendOrderingAndBuckets(t *testing.T) {
	// Two tasks created on the same calendar day at different hours share a
	// bucket; a done task counts as completed on its updated_at day.
	twoDaysAgo := testNow.AddDate(0, 0, -2)
	tasks := []models.Task{
		task(models.StatusTodo, func(tk *models.Task) {
			tk.CreatedAt = twoDaysAgo.Truncate(24 * time.Hour).Add(2 * time.Hour)
		}),
		task(models.StatusInProgress, func(tk *models.Task) {
			tk.CreatedAt = twoDaysAgo.Truncate(24 * time.Hour).Add(23 * time.Hour)
		}),
		task(models.StatusDone, func(tk *models.Task) {
			tk.CreatedAt = testNow.AddDate(0, 0, -10)
			tk.UpdatedAt = twoDaysAgo
		}),
	}

	points := ProductivityTrend(tasks, 7, testNow)
	require.Len(t, points, 7)

	// Oldest first, today last.
	assert.Equal(t, testNow.AddDate(0, 0, -6).Format("2006-01-02"), points[0].Date)
	assert.Equal(t, testNow.Format("2006-01-02"), points[6].Date)

	bucket := points[4] // two days ago
	assert.Equal(t, twoDaysAgo.Format("2006-01-02"), bucket.Date)
	assert.Equal(t, 2, bucket.Created)
	assert.Equal(t, 1, bucket.Completed)

	// Creation outside the window contributes nothing.
	assert.Equal(t, 0, points[0].Created)
}

func TestProductivityTrendCompletedRequiresDone(t *testing.T) {
	// An updated_at inside the window does not count as completed unless the
	// task's current status is done.
	tasks := []models.Task{
		task(models.StatusInProgress, func(tk *models.Task) { tk.UpdatedAt = testNow }),
	}
	points := ProductivityTrend(tasks, 7, testNow)
	assert.Equal(t, 0, points[6].Completed)
	assert.Equal(t, 1, points[6].Created)
}

func TestComputeOverall(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tomorrow := testNow.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		tasks    []models.Task
		users    []models.User
		expected OverallStats
	}{
		{
			name:     "empty inputs yield all zeros",
			expected: OverallStats{},
		},
		{
			name: "completion rate rounded to two decimals",
			tasks: []models.Task{
				task(models.StatusTodo),
				task(models.StatusDone),
				task(models.StatusDone),
			},
			users: []models.User{{UID: "u1", Name: "Ada"}},
			expected: OverallStats{
				TotalTasks:      3,
				CompletedTasks:  2,
				ActiveUsers:     1,
				CompletionRate:  66.67,
				AvgTasksPerUser: 3,
			},
		},
		{
			name: "overdue requires due date in the past and status not done",
			tasks: []models.Task{
				task(models.StatusTodo, func(tk *models.Task) { tk.DueDate = &yesterday }),
				task(models.StatusDone, func(tk *models.Task) { tk.DueDate = &yesterday }),
				task(models.StatusTodo, func(tk *models.Task) { tk.DueDate = &tomorrow }),
				task(models.StatusTodo),
			},
			expected: OverallStats{
				TotalTasks:     4,
				CompletedTasks: 1,
				OverdueTasks:   1,
				CompletionRate: 25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeOverall(tt.tasks, tt.users, testNow)
			assert.Equal(t, tt.expected, stats)
			assert.GreaterOrEqual(t, stats.CompletionRate, 0.0)
			assert.LessOrEqual(t, stats.CompletionRate, 100.0)
			assert.LessOrEqual(t, stats.CompletedTasks, stats.TotalTasks)
			assert.LessOrEqual(t, stats.OverdueTasks, stats.TotalTasks)
		})
	}
}

func TestStatsForTasks(t *testing.T) {
	tasks := []models.Task{
		task(models.StatusDone),
		task(models.StatusDone),
		task(models.StatusInProgress),
		task(models.StatusTodo),
	}

	stats := StatsForTasks(tasks)
	assert.Equal(t, ProjectStats{
		TotalTasks:      4,
		CompletedTasks:  2,
		InProgressTasks: 1,
		TodoTasks:       1,
		CompletionRate:  50,
	}, stats)

	assert.Equal(t, ProjectStats{}, StatsForTasks(nil))
}

func TestBuildOverview(t *testing.T) {
	project := models.Project{ID: primitive.NewObjectID(), Name: "Alpha"}
	user := models.User{UID: "u1", Name: "Ada"}
	tasks := []models.Task{
		task(models.StatusDone, func(tk *models.Task) {
			tk.ProjectID = project.ID.Hex()
			tk.AssignedTo = "u1"
		}),
	}

	overview := BuildOverview([]models.Project{project}, tasks, []models.User{user}, 0, testNow)
	require.NotNil(t, overview)

	assert.Len(t, overview.TasksByStatus, 3)
	assert.Len(t, overview.TasksByPriority, 3)
	assert.Len(t, overview.ProductivityTrend, DefaultTrendDays)
	require.Len(t, overview.TasksByProject, 1)
	assert.Equal(t, 1, overview.TasksByProject[0].Completed)
	require.Len(t, overview.UserProductivity, 1)
	assert.Equal(t, 1, overview.UserProductivity[0].Assigned)
	assert.Equal(t, 1, overview.OverallStats.TotalTasks)
	assert.Equal(t, 100.0, overview.OverallStats.CompletionRate)
}

// Determinism: the same snapshot and clock always produce the same result.
func TestBuildOverviewDeterministic(t *testing.T) {
	tasks := []models.Task{
		task(models.StatusDone),
		task(models.StatusTodo, func(tk *models.Task) { tk.CreatedAt = testNow.AddDate(0, 0, -3) }),
	}
	users := []models.User{{UID: "u1", Name: "Ada"}}

	first := BuildOverview(nil, tasks, users, 7, testNow)
	second := BuildOverview(nil, tasks, users, 7, testNow)
	assert.Equal(t, first, second)
}
