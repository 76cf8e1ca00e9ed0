package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/antigravity/petit/internal/games"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/minigame"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the available games",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		loc, err := i18n.New(cfg.Locale)
		if err != nil {
			return err
		}
		return listGames(cmd.OutOrStdout(), loc)
	},
}

func listGames(w io.Writer, loc *i18n.Localizer) error {
	reg := minigame.NewRegistry()
	if err := games.RegisterAll(reg); err != nil {
		return err
	}
	for _, id := range reg.IDs() {
		g, _ := reg.Lookup(id)
		fmt.Fprintf(w, "%d  %s\n", id, minigame.Title(g, id, loc))
	}
	return nil
}
