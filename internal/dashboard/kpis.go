package dashboard

import "dashboard.must.dev/internal/models"

// KPIs returns the dashboard cards in display order. A new slice is built on every
// call so callers may modify the result freely.
func KPIs() []models.Kpi {
	return []models.Kpi{
		models.NewKpi("New Users", "1,250", models.IconUsers, models.ColorIndigo),
		models.NewKpi("Monthly Revenue", "R$ 45.8k", models.IconBarChart, models.ColorEmerald),
		models.NewKpi("Completed Tasks", "87%", models.IconCheckCircle, models.ColorBlue),
		models.NewKpi("Critical Alerts", "3", models.IconAlertCircle, models.ColorRed),
	}
}
