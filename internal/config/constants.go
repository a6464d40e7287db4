// internal/config/constants.go
package config

const (
	AppName    = "fitness-web"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultSheetsPath          = "fitness.xlsx"
	DefaultJWTExpiryHours      = 72
	DefaultRecentWorkoutsLimit = 5
)
