package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/antigravity/petit/internal/games"
	"github.com/antigravity/petit/internal/minigame"
)

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Start the arcade, optionally jumping straight into a game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseGameID(args)
		if err != nil {
			return err
		}
		return runApp(cmd, id)
	},
}

// parseGameID returns 0 when no id was given.
func parseGameID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("game id %q is not a number", args[0])
	}

	reg := minigame.NewRegistry()
	if err := games.RegisterAll(reg); err != nil {
		return 0, err
	}
	if _, ok := reg.Lookup(id); !ok {
		return 0, fmt.Errorf("no game with id %d (see `petit games`)", id)
	}
	return id, nil
}
