package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/repository"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// ContactHandler accepts contact-form submissions. The endpoint is
// public: visitors can write in without an account.
type ContactHandler struct {
	Messages *repository.ContactStore
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage handles POST /v1/contact.
func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, subject and message are required"})
	}
	if !utils.ValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email address"})
	}
	m := h.Messages.Add(req.Name, req.Email, req.Subject, req.Message)
	return c.JSON(http.StatusCreated, echo.Map{"item": m})
}
