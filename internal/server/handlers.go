package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shelterpaws/cattery/internal/auth"
	"github.com/shelterpaws/cattery/internal/blob"
	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/pkg/types"
)

type errorResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// mediaPayload is one gallery entry in a mutation request. Either URL or
// Data is set; Data is base64 in the JSON form and becomes a blob.
type mediaPayload struct {
	Kind        string `json:"kind"`
	URL         string `json:"url,omitempty"`
	Data        []byte `json:"data,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

type catPayload struct {
	Name             string         `json:"name"`
	LocationID       string         `json:"location_id"`
	ShelterEntryYear int            `json:"shelter_entry_year"`
	About            string         `json:"about"`
	Media            []mediaPayload `json:"media"`
}

type describeRequest struct {
	Keywords string `json:"keywords"`
}

type describeResponse struct {
	Description string `json:"description"`
}

func (s *Server) listLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Locations())
}

func (s *Server) listCats(c echo.Context) error {
	cats, err := s.catalog.Load(c.Request().Context())
	if err != nil {
		return err
	}
	filtered := catalog.FilterByLocation(cats, c.QueryParam("location"))
	return c.JSON(http.StatusOK, filtered)
}

func (s *Server) getCat(c echo.Context) error {
	cat, err := s.catalog.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, types.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "cat not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "malformed request"})
	}

	session, err := s.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: auth.MsgBadCredentials})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

func (s *Server) logout(c echo.Context) error {
	s.sessions.Logout(bearerToken(c))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createCat(c echo.Context) error {
	return s.submitCat(c, "")
}

func (s *Server) updateCat(c echo.Context) error {
	return s.submitCat(c, c.Param("id"))
}

// submitCat runs a mutation request through the editor form so the API and
// any other front end share one validation and normalization path.
func (s *Server) submitCat(c echo.Context, id string) error {
	var req catPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "malformed request"})
	}

	form := catalog.NewForm(s.catalog.Locations())
	form.ID = id
	form.Name = req.Name
	if req.LocationID != "" {
		form.LocationID = req.LocationID
	}
	if req.ShelterEntryYear != 0 {
		form.ShelterEntryYear = req.ShelterEntryYear
	}
	form.About = req.About
	for _, item := range req.Media {
		if item.Data != nil {
			form.AttachUpload(item.Data, item.ContentType)
		} else {
			form.AttachURL(item.Kind, item.URL)
		}
	}

	cat, err := s.catalog.Submit(c.Request().Context(), form)
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Message: verr.Message})
	}
	if errors.Is(err, types.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "cat not found"})
	}
	if err != nil {
		return err
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, cat)
}

func (s *Server) deleteCat(c echo.Context) error {
	// A DELETE request is the confirmation; missing IDs are a no-op.
	if err := s.catalog.Delete(c.Request().Context(), c.Param("id"), true); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) describe(c echo.Context) error {
	var req describeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "malformed request"})
	}
	text := s.describer.GenerateOrFallback(c.Request().Context(), req.Keywords)
	return c.JSON(http.StatusOK, describeResponse{Description: text})
}

func (s *Server) getMedia(c echo.Context) error {
	key := blob.MediaKeyPrefix + c.Param("key")
	info, body, err := s.catalog.Blobs().Get(c.Request().Context(), key)
	if errors.Is(err, blob.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "media not found"})
	}
	if err != nil {
		return err
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, body)
}
