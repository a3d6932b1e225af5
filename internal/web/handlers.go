package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"today/internal/workflow"
)

// registerRoutes wires up the workflow API on the provided Echo instance.
func registerRoutes(e *echo.Echo, store *workflow.Store) {
	e.GET("/api/workflow", getWorkflow(store))
	e.POST("/api/workflow", postWorkflow(store))
}

func getWorkflow(store *workflow.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := store.Load()
		if err != nil {
			if errors.Is(err, workflow.ErrNotFound) {
				return c.String(http.StatusNotFound, "No workflow.json yet")
			}
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "Failed to read workflow.json")
		}

		// Marshal compacts the raw fields loaded from the pretty-printed file.
		data, err := json.Marshal(doc)
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "Failed to read workflow.json")
		}

		c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
	}
}

func postWorkflow(store *workflow.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid JSON")
		}

		doc, err := workflow.ParseDocument(body)
		if err != nil {
			if errors.Is(err, workflow.ErrInvalidJSON) {
				return c.String(http.StatusBadRequest, "Invalid JSON")
			}
			return c.String(http.StatusBadRequest, "Invalid payload")
		}

		if err := store.Save(doc); err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "Failed to write workflow.json")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
