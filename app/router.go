package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

const healthPath = "/health"

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, healthPath, app.healthCheckHandler)

	// httprouter does not allow /blog/all and /blog/new next to /blog/:id,
	// the handlers below dispatch on those names themselves.
	router.HandlerFunc(http.MethodGet, "/blog/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPost, "/blog/:id", app.postBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/blog/:id", app.deleteBlogHandler)

	return app.recoverPanic(app.logRequest(app.enableCORS(app.rateLimit(router))))
}
