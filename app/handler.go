package main

import (
	"net/http"

	"github.com/sushihentaime/blogtasks/internal/blogservice"
)

const (
	allBlogsName = "all"
	newBlogName  = "new"
)

// getBlogHandler serves GET /blog/:id, and GET /blog/all.
func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	if app.readStringParam(r, "id") == allBlogsName {
		app.getAllBlogsHandler(w, r)
		return
	}

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogs.GetOne(r.Context(), id)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogs.GetAll(r.Context())
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	if blogs == nil {
		blogs = []blogservice.Blog{}
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// postBlogHandler serves POST /blog/:id, and POST /blog/new.
func (app *application) postBlogHandler(w http.ResponseWriter, r *http.Request) {
	if app.readStringParam(r, "id") == newBlogName {
		app.createBlogHandler(w, r)
		return
	}

	app.updateBlogHandler(w, r)
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlog

	// Parse the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = blogservice.ValidateCreateBlog(input)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogs.CreateOne(r.Context(), input)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.UpdateBlog

	// id is a URL parameter
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	// Parse the request body
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = blogservice.ValidateUpdateBlog(input)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogs.UpdateOne(r.Context(), id, input)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogs.DeleteOne(r.Context(), id)
	if err != nil {
		app.appErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
