package metaclient

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// retryableLogger adapta o logrus à interface LeveledLogger do go-retryablehttp
type retryableLogger struct{}

func (retryableLogger) Error(msg string, keysAndValues ...interface{}) {
	logrus.WithFields(toFields(keysAndValues)).Warn("metaclient: " + msg)
}

func (retryableLogger) Warn(msg string, keysAndValues ...interface{}) {
	logrus.WithFields(toFields(keysAndValues)).Warn("metaclient: " + msg)
}

func (retryableLogger) Info(msg string, keysAndValues ...interface{}) {
	logrus.WithFields(toFields(keysAndValues)).Debug("metaclient: " + msg)
}

func (retryableLogger) Debug(msg string, keysAndValues ...interface{}) {
	logrus.WithFields(toFields(keysAndValues)).Debug("metaclient: " + msg)
}

func toFields(keysAndValues []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}

		// URL e erros de transporte carregam o access_token
		switch value := keysAndValues[i+1].(type) {
		case error:
			fields[key] = redactToken(value.Error())
		case string:
			fields[key] = redactToken(value)
		case fmt.Stringer:
			fields[key] = redactToken(value.String())
		default:
			fields[key] = value
		}
	}
	return fields
}
