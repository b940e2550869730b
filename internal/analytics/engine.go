// Package analytics computes the derived metrics behind the dashboard and
// analytics views. Every function here is a pure aggregation over in-memory
// snapshots handed in by the caller: no database access, no ambient clock.
// Callers inject "now" explicitly so identical inputs always produce
// identical outputs.
package analytics

import (
	"math"
	"time"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

// Chart colors for the status buckets. These are part of the response
// contract consumed by the frontend pie chart.
const (
	ColorTodo       = "#FF8042"
	ColorInProgress = "#FFBB28"
	ColorDone       = "#00C49F"
)

// DefaultTrendDays is the trend window used when the caller does not supply one.
const DefaultTrendDays = 7

const dayLayout = "2006-01-02"

// StatusCount is one slice of the task-status distribution
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// PriorityCount is one slice of the task-priority distribution
type PriorityCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProjectRollup holds per-project task counts
type ProjectRollup struct {
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
	Todo       int    `json:"todo"`
}

// UserProductivity holds per-user assignment and completion counts
type UserProductivity struct {
	Name      string `json:"name"`
	Assigned  int    `json:"assigned"`
	Completed int    `json:"completed"`
}

// TrendPoint is one calendar day of the creation/completion trend
type TrendPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// OverallStats holds the global KPIs. ActiveUsers is the raw user count;
// the field name is kept for response compatibility with the frontend.
type OverallStats struct {
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	OverdueTasks    int     `json:"overdueTasks"`
	ActiveUsers     int     `json:"activeUsers"`
	CompletionRate  float64 `json:"completionRate"`
	AvgTasksPerUser float64 `json:"avgTasksPerUser"`
}

// ProjectStats is the aggregate attached to a single project in list and
// detail responses.
type ProjectStats struct {
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	InProgressTasks int     `json:"inProgressTasks"`
	TodoTasks       int     `json:"todoTasks"`
	CompletionRate  float64 `json:"completionRate"`
}

// Overview bundles every derived view returned by the analytics endpoint
type Overview struct {
	TasksByStatus     []StatusCount      `json:"tasksByStatus"`
	TasksByPriority   []PriorityCount    `json:"tasksByPriority"`
	TasksByProject    []ProjectRollup    `json:"tasksByProject"`
	UserProductivity  []UserProductivity `json:"userProductivity"`
	ProductivityTrend []TrendPoint       `json:"productivityTrend"`
	OverallStats      OverallStats       `json:"overallStats"`
}

// StatusDistribution partitions tasks into the three known status buckets.
// Tasks with an unrecognized status are excluded from every bucket, so the
// bucket sum can be less than the task count. Buckets are always present
// and zero-filled for an empty input.
func StatusDistribution(tasks []models.Task) []StatusCount {
	counts := make(map[models.TaskStatus]int, 3)
	for _, t := range tasks {
		if t.Status.Known() {
			counts[t.Status]++
		}
	}
	return []StatusCount{
		{Name: "To Do", Value: counts[models.StatusTodo], Color: ColorTodo},
		{Name: "In Progress", Value: counts[models.StatusInProgress], Color: ColorInProgress},
		{Name: "Done", Value: counts[models.StatusDone], Color: ColorDone},
	}
}

// PriorityDistribution partitions tasks into the three known priority
// buckets with the same exclusion policy as StatusDistribution.
func PriorityDistribution(tasks []models.Task) []PriorityCount {
	counts := make(map[models.TaskPriority]int, 3)
	for _, t := range tasks {
		if t.Priority.Known() {
			counts[t.Priority]++
		}
	}
	return []PriorityCount{
		{Name: "Low", Value: counts[models.PriorityLow]},
		{Name: "Medium", Value: counts[models.PriorityMedium]},
		{Name: "High", Value: counts[models.PriorityHigh]},
	}
}

// ProjectRollups computes per-project task counts in the order projects were
// supplied. A project with no tasks yields an all-zero row rather than being
// omitted.
func ProjectRollups(projects []models.Project, tasks []models.Task) []ProjectRollup {
	rollups := make([]ProjectRollup, 0, len(projects))
	for _, p := range projects {
		id := p.ID.Hex()
		r := ProjectRollup{Name: p.Name}
		for _, t := range tasks {
			if t.ProjectID != id {
				continue
			}
			r.Total++
			switch t.Status {
			case models.StatusDone:
				r.Completed++
			case models.StatusInProgress:
				r.InProgress++
			case models.StatusTodo:
				r.Todo++
			}
		}
		rollups = append(rollups, r)
	}
	return rollups
}

// ProductivityByUser computes assigned and completed counts per user in the
// order users were supplied. Users with no assigned tasks yield a zero row.
func ProductivityByUser(users []models.User, tasks []models.Task) []UserProductivity {
	rows := make([]UserProductivity, 0, len(users))
	for _, u := range users {
		row := UserProductivity{Name: u.Name}
		for _, t := range tasks {
			if t.AssignedTo != u.UID {
				continue
			}
			row.Assigned++
			if t.Status == models.StatusDone {
				row.Completed++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ProductivityTrend buckets task activity by calendar day (UTC) over a
// trailing window ending on now's date, oldest day first. Created counts
// tasks by creation date; completed counts tasks whose last update fell on
// that date and whose current status is done. The completed figure is an
// approximation: a done task whose updated_at is touched again moves buckets.
// A non-positive windowDays falls back to DefaultTrendDays.
func ProductivityTrend(tasks []models.Task, windowDays int, now time.Time) []TrendPoint {
	if windowDays <= 0 {
		windowDays = DefaultTrendDays
	}

	points := make([]TrendPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i).Format(dayLayout)
		point := TrendPoint{Date: day}
		for _, t := range tasks {
			if t.CreatedAt.UTC().Format(dayLayout) == day {
				point.Created++
			}
			if t.Status == models.StatusDone && t.UpdatedAt.UTC().Format(dayLayout) == day {
				point.Completed++
			}
		}
		points = append(points, point)
	}
	return points
}

// ComputeOverall derives the global KPIs. Rates are zero, not NaN, when the
// corresponding denominator is empty.
func ComputeOverall(tasks []models.Task, users []models.User, now time.Time) OverallStats {
	stats := OverallStats{
		TotalTasks:  len(tasks),
		ActiveUsers: len(users),
	}
	for _, t := range tasks {
		if t.Status == models.StatusDone {
			stats.CompletedTasks++
		} else if t.DueDate != nil && t.DueDate.Before(now) {
			stats.OverdueTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = round2(100 * float64(stats.CompletedTasks) / float64(stats.TotalTasks))
	}
	if stats.ActiveUsers > 0 {
		stats.AvgTasksPerUser = round2(float64(stats.TotalTasks) / float64(stats.ActiveUsers))
	}
	return stats
}

// StatsForTasks computes the per-project aggregate from an already-filtered
// task subset.
func StatsForTasks(tasks []models.Task) ProjectStats {
	stats := ProjectStats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusDone:
			stats.CompletedTasks++
		case models.StatusInProgress:
			stats.InProgressTasks++
		case models.StatusTodo:
			stats.TodoTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = round2(100 * float64(stats.CompletedTasks) / float64(stats.TotalTasks))
	}
	return stats
}

// BuildOverview computes every derived view in one pass over the snapshots.
func BuildOverview(projects []models.Project, tasks []models.Task, users []models.User, windowDays int, now time.Time) *Overview {
	return &Overview{
		TasksByStatus:     StatusDistribution(tasks),
		TasksByPriority:   PriorityDistribution(tasks),
		TasksByProject:    ProjectRollups(projects, tasks),
		UserProductivity:  ProductivityByUser(users, tasks),
		ProductivityTrend: ProductivityTrend(tasks, windowDays, now),
		OverallStats:      ComputeOverall(tasks, users, now),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
