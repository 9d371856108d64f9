package logger

import "log"

func Info(msg string) {
	log.Printf("[INFO] %s", msg)
}

func Success(msg string) {
	log.Printf("[SUCCESS] %s", msg)
}

func Warn(msg string) {
	log.Printf("[WARN] %s", msg)
}

// Error logs msg and, when non-nil, the underlying error.
func Error(msg string, err error) {
	if err != nil {
		log.Printf("[ERROR] %s: %v", msg, err)
		return
	}
	log.Printf("[ERROR] %s", msg)
}
