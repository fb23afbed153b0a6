package services

import (
	"context"

	"github.com/JojerDojer/web-420/internal/keylock"
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
)

// TeamService manages teams and their embedded players.
type TeamService struct {
	repo   repositories.Repository[models.Team]
	locker keylock.Locker
	events EventPublisher
}

// NewTeamService creates a new TeamService. A nil locker leaves concurrent
// player appends unserialized.
func NewTeamService(repo repositories.Repository[models.Team], locker keylock.Locker, events EventPublisher) *TeamService {
	if locker == nil {
		locker = keylock.Noop{}
	}
	return &TeamService{repo: repo, locker: locker, events: events}
}

// GetAllTeams retrieves all teams.
func (s *TeamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.FindAll(ctx)
}

// CreateTeam persists a new team.
func (s *TeamService) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.Players == nil {
		team.Players = []models.Player{}
	}
	return s.repo.Create(ctx, team)
}

// AssignPlayer appends player to the team's roster and returns the updated team.
func (s *TeamService) AssignPlayer(ctx context.Context, teamID string, player models.Player) (*models.Team, error) {
	team, err := appendEmbedded(ctx, s.repo, s.locker, repositories.IDField, teamID, "players", player,
		func(t *models.Team, p models.Player) { t.Players = append(t.Players, p) })
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, EventPlayerAssigned, map[string]any{
		"teamId": team.ID,
		"player": player,
	})
	return team, nil
}

// GetPlayers returns the roster of the team with the given ID.
func (s *TeamService) GetPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	return listEmbedded(ctx, s.repo, repositories.IDField, teamID,
		func(t *models.Team) []models.Player { return t.Players })
}

// DeleteTeam removes a team together with its players.
func (s *TeamService) DeleteTeam(ctx context.Context, id string) (*models.Team, error) {
	team, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, EventTeamDeleted, map[string]any{"id": team.ID, "name": team.Name})
	return team, nil
}
