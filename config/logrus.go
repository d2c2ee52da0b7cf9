package config

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 OK
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

func PrintLogInfo(username *string, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode < fiber.StatusMultipleChoices:
		logColor = green
	case statusCode < fiber.StatusBadRequest:
		logColor = yellow
	default:
		logColor = red
	}

	// Handle a nil `username` by using a placeholder
	user := "Unknown"
	if username != nil {
		user = *username
	}

	GetLogrusInstance().Infof("User: %s, (%s) => Status: %s[%d] - %s%s",
		user, functionName, logColor, statusCode, http.StatusText(statusCode), reset)
}

// LogInternal records the real cause of a 500 server-side; callers are only
// ever shown a generic message.
func LogInternal(functionName string, err error) {
	GetLogrusInstance().WithField("function", functionName).Error(fmt.Sprintf("internal error: %v", err))
}
