package handlers

import (
	"fmt"
	"net/http"
	"runtime"

	"parcelbook/logger"
)

// RecoverWrapper turns a panic in any downstream handler into a logged 500.
func RecoverWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logger.Error(fmt.Sprintf("panic on %s %s\n%s", r.Method, r.URL.Path, stack), fmt.Errorf("%v", rec))
				fail(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
