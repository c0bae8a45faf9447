package handler

import (
	"mime/multipart"
	"strconv"

	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// optionalUserID returns the viewer's ID when a session was resolved, nil otherwise.
func optionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := currentUserID(c); ok {
		return &userID
	}

	return nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// queryInt parses an integer query parameter, falling back on garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}

	return value
}

// formUpload opens a multipart form file as a usecase Upload. The returned
// closer must be closed after the use case finishes reading.
func formUpload(c echo.Context, field string) (*usecase.Upload, multipart.File, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &usecase.Upload{Filename: fileHeader.Filename, Content: file}, file, nil
}
