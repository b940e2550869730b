package models

// DashboardStats holds the headline counts and recent activity shown on the
// dashboard landing page. Counts are computed database-side; the heavier
// derived analytics live in the analytics package.
type DashboardStats struct {
	TotalProjects   int64     `json:"totalProjects"`
	TotalTasks      int64     `json:"totalTasks"`
	CompletedTasks  int64     `json:"completedTasks"`
	InProgressTasks int64     `json:"inProgressTasks"`
	TotalUsers      int64     `json:"totalUsers"`
	RecentProjects  []Project `json:"recentProjects"`
	RecentTasks     []Task    `json:"recentTasks"`
}
