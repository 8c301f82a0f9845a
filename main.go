package main

import (
	"context"
	"embed"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"blackjack-desktop/bindings"
	"blackjack-desktop/internal/config"
	"blackjack-desktop/internal/dealsrv"
	"blackjack-desktop/internal/gameclient"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	appCtx   context.Context
	appCtxMu sync.RWMutex
)

func main() {
	log.Printf("Starting Blackjack Desktop (Go %s)...", runtime.Version())

	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found; using environment variables.")
	}
	cfg := config.Load()

	// Practice mode plays against a bundled loopback service instead of the
	// remote one.
	var practice *dealsrv.Server
	baseURL := cfg.APIBaseURL
	if cfg.Practice {
		practice = dealsrv.New(cfg.PracticePort)
		baseURL = practice.BaseURL()
	}
	log.Printf("Game service: %s (practice: %v)", baseURL, cfg.Practice)

	client := gameclient.NewClient(gameclient.Config{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		UserAgent: "blackjack-desktop",
	})
	game := bindings.NewGameModule(client)

	startup := func(ctx context.Context) {
		setAppContext(ctx)
		if practice != nil {
			if err := practice.Start(); err != nil {
				log.Printf("practice service failed to start: %v", err)
			}
		}
		game.Startup(ctx)
	}

	beforeClose := func(ctx context.Context) (prevent bool) {
		game.Shutdown(ctx)
		if practice != nil {
			if err := practice.Shutdown(ctx); err != nil {
				log.Printf("practice service shutdown error: %v", err)
			}
		}
		setAppContext(nil)
		log.Println("Application is closing")
		return false
	}

	if err := wails.Run(&options.App{
		Title:            "Blackjack",
		Width:            1100,
		Height:           780,
		MinWidth:         900,
		MinHeight:        640,
		WindowStartState: options.Normal,
		BackgroundColour: &options.RGBA{R: 11, G: 79, B: 43, A: 255},

		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		OnStartup:     startup,
		OnBeforeClose: beforeClose,
		OnShutdown: func(ctx context.Context) {
			log.Println("Application shutdown complete")
		},

		Menu: buildAppMenu(game),

		Bind: []interface{}{game},

		LogLevel:           logger.INFO,
		LogLevelProduction: logger.ERROR,

		ErrorFormatter: func(err error) any {
			if err == nil {
				return nil
			}
			return err.Error()
		},

		Windows: &windows.Options{
			Theme:           windows.SystemDefault,
			WindowClassName: "BlackjackDesktopWindow",
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   "Blackjack",
				Message: "A desktop table for the blackjack game service.\n\nBuilt with Wails",
			},
		},
		Linux: &linux.Options{
			ProgramName:      "blackjack-desktop",
			WebviewGpuPolicy: linux.WebviewGpuPolicyAlways,
		},
	}); err != nil {
		fmt.Printf("Error: %v\n", err)
		panic(err)
	}

	log.Println("Application exited normally")
}

func buildAppMenu(game *bindings.GameModule) *menu.Menu {
	rootMenu := menu.NewMenu()

	if runtime.GOOS == "darwin" {
		if appMenu := menu.AppMenu(); appMenu != nil {
			rootMenu.Append(appMenu)
		}
	}

	gameMenu := menu.NewMenu()
	gameMenu.AddText("New Game", keys.CmdOrCtrl("n"), func(_ *menu.CallbackData) {
		go game.StartNewGame()
	})
	gameMenu.AddSeparator()
	gameMenu.AddText("Quit", keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			wruntime.Quit(ctx)
		})
	})
	rootMenu.Append(menu.SubMenu("Game", gameMenu))

	viewMenu := menu.NewMenu()
	viewMenu.AddText("Toggle Fullscreen", keys.Combo("f", keys.CmdOrCtrlKey, keys.ShiftKey), func(_ *menu.CallbackData) {
		withAppContext(toggleFullscreen)
	})
	rootMenu.Append(menu.SubMenu("View", viewMenu))

	return rootMenu
}

func toggleFullscreen(ctx context.Context) {
	if wruntime.WindowIsFullscreen(ctx) {
		wruntime.WindowUnfullscreen(ctx)
		return
	}
	wruntime.WindowFullscreen(ctx)
}

func setAppContext(ctx context.Context) {
	appCtxMu.Lock()
	defer appCtxMu.Unlock()
	appCtx = ctx
}

func withAppContext(action func(context.Context)) {
	appCtxMu.RLock()
	ctx := appCtx
	appCtxMu.RUnlock()
	if ctx == nil {
		log.Println("application context not initialised; ignoring menu action")
		return
	}
	action(ctx)
}
