package websocket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

// handleConnect identifies the client. An unknown or empty player ID gets a fresh player.
func (that *Server) handleConnect(ctx context.Context, client *Client, action string, payload Payload) error {
	log := that.logger.With("method", "handleConnect")

	var playerID string
	if payload.Player != nil {
		playerID = strings.TrimSpace(payload.Player.ID)
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		log.Info("unknown player, creating a new one", "playerID", playerID)
		player, err = that.gameUseCase.GetOrCreatePlayer(ctx, "")
	}

	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to get or create player: %w", err))
	}

	that.hub.Register(player.ID, client)

	response := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		switch {
		case err == nil:
			response.Game = gameView(game)
		case errors.Is(err, apperror.ErrGameNotFound):
			log.Info("player's game is gone", "gameID", player.GameID)
		default:
			return that.sendError(client, action, fmt.Errorf("failed to get the game: %w", err))
		}
	}

	that.reply(client, action, response)

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, client *Client, action string, payload Payload) error {
	if payload.Player == nil {
		return that.sendError(client, action, errPlayerRequired)
	}

	if payload.Game == nil {
		return that.sendError(client, action, errGameRequired)
	}

	that.hub.Register(payload.Player.ID, client)

	game, err := that.gameUseCase.CreateGame(ctx, payload.Player.ID, payload.Game.Type, payload.Game.Difficulty)
	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to create game: %w", err))
	}

	that.hub.Broadcast(action, game)

	that.logger.Info("game created", "method", "handleNewGame", "gameID", game.ID, "type", game.Type)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, client *Client, action string, payload Payload) error {
	if payload.Player == nil {
		return that.sendError(client, action, errPlayerRequired)
	}

	if payload.Game == nil || payload.Game.ID == "" {
		return that.sendError(client, action, errGameRequired)
	}

	that.hub.Register(payload.Player.ID, client)

	game, err := that.gameUseCase.JoinGame(ctx, payload.Game.ID, payload.Player.ID)
	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to join game %s: %w", payload.Game.ID, err))
	}

	that.hub.Broadcast(action, game)

	that.logger.Info("player joined game", "method", "handleJoinGame", "gameID", game.ID, "playerID", payload.Player.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *Client, action string, payload Payload) error {
	if payload.Player == nil {
		return that.sendError(client, action, errPlayerRequired)
	}

	if payload.Cell == nil {
		return that.sendError(client, action, errCellRequired)
	}

	that.hub.Register(payload.Player.ID, client)

	game, err := that.gameUseCase.MakeTurn(ctx, payload.Player.ID, *payload.Cell)
	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to make turn: %w", err))
	}

	that.hub.Broadcast(action, game)

	return nil
}

func (that *Server) handleGameRestart(ctx context.Context, client *Client, action string, payload Payload) error {
	if payload.Player == nil {
		return that.sendError(client, action, errPlayerRequired)
	}

	that.hub.Register(payload.Player.ID, client)

	game, err := that.gameUseCase.RestartGame(ctx, payload.Player.ID)
	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to restart game: %w", err))
	}

	that.hub.Broadcast(action, game)

	return nil
}

// handleGameLeave ends the game and tells everyone who was in it.
func (that *Server) handleGameLeave(ctx context.Context, client *Client, action string, payload Payload) error {
	if payload.Player == nil {
		return that.sendError(client, action, errPlayerRequired)
	}

	that.hub.Register(payload.Player.ID, client)

	game, err := that.gameUseCase.LeaveGame(ctx, payload.Player.ID)
	if err != nil {
		return that.sendError(client, action, fmt.Errorf("failed to leave game: %w", err))
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.LeaveGame()
		that.hub.SendTo(player.ID, action, Payload{Player: player, Game: gameView(game)})
	}

	that.logger.Info("player left game", "method", "handleGameLeave", "gameID", game.ID, "playerID", payload.Player.ID)

	return nil
}

// sendError reports err to the client. An unexpected error is hidden from it and returned for logging.
func (that *Server) sendError(client *Client, action string, err error) error {
	message := errorMessage(err)

	that.reply(client, action, Payload{Error: message})

	if message == internalErrorMessage {
		return err
	}

	return nil
}
