package config

// CategoryWeights orders command categories in /help output.
var CategoryWeights = map[string]int{
	"💬 Chat":         0,
	"📢 Server":       10,
	"⚙️ Settings":    20,
	"🛠️ Maintenance": 30,
}
