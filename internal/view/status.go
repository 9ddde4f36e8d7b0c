package view

// Маркеры статуса персонажа.
const (
	markerAlive   = "🟢"
	markerDead    = "🔴"
	markerUnknown = "⚪️"
)

// StatusMarker — тотальное отображение статуса в маркер:
// "Alive" и "Dead" получают свои маркеры, любая другая строка
// (включая пустую) — маркер неизвестного статуса.
func StatusMarker(status string) string {
	switch status {
	case "Alive":
		return markerAlive
	case "Dead":
		return markerDead
	default:
		return markerUnknown
	}
}
