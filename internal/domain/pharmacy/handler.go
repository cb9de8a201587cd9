package pharmacy

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the inventory and chatbot over HTTP.
type Handler struct {
	inv *Inventory
	bot *Chatbot
}

func NewHandler(inv *Inventory, bot *Chatbot) *Handler {
	return &Handler{inv: inv, bot: bot}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/drugs", h.ListDrugs)
	api.POST("/chatbot", h.Chat)
}

func (h *Handler) ListDrugs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.inv.List())
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: h.bot.Reply(req.Message)})
}
