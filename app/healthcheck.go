package main

import "net/http"

// healthCheckHandler reports liveness only; it never touches the database.
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, err := w.Write([]byte("Healthy"))
	if err != nil {
		app.logger.Error(err.Error())
	}
}
