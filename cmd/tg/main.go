package main

import (
	"context"
	"fmt"
	"time"

	"github.com/paul-nameless/tg/config"
	"github.com/paul-nameless/tg/internal/controller"
	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
	"github.com/paul-nameless/tg/internal/mp/telegram"
	"github.com/paul-nameless/tg/internal/shell"
	"github.com/paul-nameless/tg/internal/store"
	"github.com/paul-nameless/tg/internal/tui"
)

func main() {
	Execute()
}

// run wires every layer together and blocks until the TUI quits, mirroring
// the teacher's single top-level Run function: load config, init logging,
// construct the MP/shell/model/controller stack, then hand control to the
// draw thread.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(false, cfg)
	defer logger.Close()

	if cfg.BotToken == "" {
		return fmt.Errorf("no bot token configured (set TG_BOT_TOKEN or bot_token in config.yaml)")
	}

	adapter, err := telegram.New(ctx, cfg.BotToken)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}

	sh := shell.New(shell.NewMailcapChain(nil), cfg.DefaultOpen)

	var cache *store.DedupCache
	if cfg.RedisAddr != "" {
		cache = store.NewDedupCache(cfg.RedisAddr, cfg.RedisDB, 24*time.Hour)
		defer cache.Close()
	}

	model := store.NewModel(adapter)

	app := tui.NewApp(24, 80)
	queue, runDraw := app.Start()

	ctrl := controller.New(model, adapter, sh, queue, controller.Config{
		MaxDownloadSize: cfg.MaxDownloadSize,
		FZF:             cfg.FZF,
		FilePickerCmd:   cfg.FilePickerCmd,
		VoiceRecordCmd:  cfg.VoiceRecordCmd,
		ViewTextCmd:     cfg.ViewTextCmd,
	})
	ctrl.Cache = cache
	ctrl.Surf = app.Screen()

	go adapter.Run(ctx)
	go runInputLoop(app.Screen(), ctrl)

	queue.Submit(func() {
		if r := adapter.Login(ctx); r != nil {
			if err := r.Wait(); err != nil {
				ctrl.PresentError("login failed: %v", err)
			}
		}
		if r := adapter.GetMe(ctx); r != nil {
			if err := r.Wait(); err == nil {
				if id, ok := r.Update()["id"].(int64); ok {
					ctrl.Config.MyUserID = id
				}
			}
		}
		ctrl.Model.Chats.LoadNext(ctx)
		renderFrame(app.Screen(), ctrl)
	})

	return runDraw()
}

// runInputLoop is the input thread from spec §5: it blocks on the Surface's
// GetWch and feeds each key through the active dispatcher synchronously, on
// this same goroutine — not deferred into a queued closure — since a bound
// command may itself block on Controller.GetInput's own GetWch loop (spec
// §4.7/§5). Only the resulting draw is handed to the draw thread via
// Enqueue; state mutations a command makes go through Enqueue internally,
// same as before.
func runInputLoop(surf domain.Surface, ctrl *controller.Controller) {
	dispatcher := controller.NewDispatcher()
	for {
		key, err := surf.GetWch(0, 0)
		if err != nil {
			return
		}
		r, ok := keyToRune(key)
		if !ok {
			continue
		}
		table := ctrl.ChatTable
		if ctrl.Mode == controller.ModeMessage {
			table = ctrl.MsgTable
		}
		outcome := dispatcher.Feed(table, r)
		ctrl.Enqueue(func() { renderFrame(surf, ctrl) })
		if outcome == controller.Quit || !ctrl.IsRunning() {
			return
		}
	}
}

// keyToRune maps a decoded domain.Key onto the single-rune vocabulary the
// vim-style KeyMap bindings are keyed on; named keys without a natural vim
// equivalent are dropped.
func keyToRune(k domain.Key) (rune, bool) {
	if k.Name == "" {
		return k.Rune, true
	}
	switch k.Name {
	case "up":
		return 'k', true
	case "down":
		return 'j', true
	case "left", "backspace":
		return 'h', true
	case "right", "tab":
		return 'l', true
	case "ctrl+c":
		return 'q', true
	default:
		return 0, false
	}
}
