package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/blaster/client/game"
	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/cbodonnell/blaster/pkg/version"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	width := flag.Int("width", constants.ViewportWidth, "Window width")
	height := flag.Int("height", constants.ViewportHeight, "Window height")
	resizable := flag.Bool("resizable", true, "Allow the window to be resized")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	sessionID := uuid.New().String()
	log.Info("Starting client version %s, session %s", version.Get(), sessionID)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:     *debug,
		SessionID: sessionID,
		Width:     *width,
		Height:    *height,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Blaster")
	ebiten.SetWindowClosingHandled(true)
	if *resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Client exited")
}
