package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/md-zeon/sweeper/internal/game"
)

var commandNargs = map[string]int{
	"g": 0, // get state
	"o": 2, // open x y
	"f": 2, // flag x y
	"c": 2, // chord x y
	"r": 0, // resign
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// applyCommand runs one text command against the game. Coordinates that
// miss the board are tolerated by the engine, so only malformed text is
// an error.
func applyCommand(g *game.Game, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		g.Reveal(x, y)
		return nil
	case "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		g.ToggleFlag(x, y)
		return nil
	case "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		g.Chord(x, y)
		return nil
	case "r":
		g.Forfeit()
		return nil
	}
	return fmt.Errorf("invalid command")
}

// ConnectWS speaks a line protocol over a websocket: each text frame
// carries newline-separated commands, and every frame is answered with
// the session state.
func (h *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		var cmdErr error
		s.Do(func(g *game.Game) {
			for _, line := range strings.Split(string(message), "\n") {
				if line = strings.TrimSpace(line); line == "" {
					continue
				}
				if cmdErr = applyCommand(g, line); cmdErr != nil {
					return
				}
				if g.Over() {
					return
				}
			}
		})
		if cmdErr != nil {
			h.logger.Error("unable to process command", slog.Any("error", cmdErr))
			return
		}
		h.recordWin(s)

		if err := c.WriteJSON(NewSessionJSON(s)); err != nil {
			h.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
