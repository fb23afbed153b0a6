package handlers

import (
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TeamHandler handles HTTP requests for teams and their players.
type TeamHandler struct {
	service  *services.TeamService
	validate *validator.Validate
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{
		service:  service,
		validate: newValidator(),
	}
}

// TeamRequest is the body of POST /teams.
type TeamRequest struct {
	Name    string          `json:"name" validate:"required"`
	Mascot  string          `json:"mascot" validate:"required"`
	Players []models.Player `json:"players" validate:"omitempty,dive"`
}

// RegisterRoutes registers the team routes with the Fiber app.
func (h *TeamHandler) RegisterRoutes(router fiber.Router) {
	teamRoutes := router.Group("/teams")
	teamRoutes.Get("/", h.HandleFindAllTeams)
	teamRoutes.Post("/", h.HandleCreateTeam)
	teamRoutes.Post("/:id/players", h.HandleAssignPlayer)
	teamRoutes.Get("/:id/players", h.HandleFindAllPlayers)
	teamRoutes.Delete("/:id", h.HandleDeleteTeam)
}

// HandleFindAllTeams returns every team.
func (h *TeamHandler) HandleFindAllTeams(c *fiber.Ctx) error {
	teams, err := h.service.GetAllTeams(c.UserContext())
	if err != nil {
		return respondFault(c, "find all teams", err)
	}
	return c.JSON(teams)
}

// HandleCreateTeam creates a team.
func (h *TeamHandler) HandleCreateTeam(c *fiber.Ctx) error {
	var req TeamRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	team := &models.Team{Name: req.Name, Mascot: req.Mascot, Players: req.Players}
	if err := h.service.CreateTeam(c.UserContext(), team); err != nil {
		return respondFault(c, "create team", err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// HandleAssignPlayer appends a player to a team and returns the team.
// An unknown team id answers 401, which existing clients expect.
func (h *TeamHandler) HandleAssignPlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := parseBody(c, h.validate, &player); err != nil {
		return respondBodyError(c, err)
	}

	team, err := h.service.AssignPlayer(c.UserContext(), c.Params("id"), player)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusUnauthorized, "Invalid teamId", err)
		}
		return respondFault(c, "assign player", err)
	}
	return c.JSON(team)
}

// HandleFindAllPlayers lists a team's players.
func (h *TeamHandler) HandleFindAllPlayers(c *fiber.Ctx) error {
	players, err := h.service.GetPlayers(c.UserContext(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusUnauthorized, "Invalid teamId", err)
		}
		return respondFault(c, "find players", err)
	}
	return c.JSON(players)
}

// HandleDeleteTeam removes a team and returns it.
func (h *TeamHandler) HandleDeleteTeam(c *fiber.Ctx) error {
	team, err := h.service.DeleteTeam(c.UserContext(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusUnauthorized, "Invalid teamId", err)
		}
		return respondFault(c, "delete team", err)
	}
	return c.JSON(team)
}
