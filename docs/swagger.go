// Package docs provides Swagger documentation for the API.
package docs

// @title PPT Generator API
// @version 1.0
// @description HTTP service that generates PowerPoint presentations from an uploaded template and a content outline.

// @host localhost:5000
// @BasePath /
// @schemes http https
