package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/api"
	"github.com/haruapp/haru/auth"
	"github.com/haruapp/haru/internal/config"
	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/timeutil"
	"github.com/haruapp/haru/internal/ui"
	"github.com/haruapp/haru/records"
	"github.com/haruapp/haru/store"
)

const (
	envNoColor     = "NO_COLOR"
	envHaruNoColor = "HARU_NO_COLOR"
)

// appEnv bundles the collaborators most actions need.
type appEnv struct {
	cfg *config.Config
	db  *store.Client
}

func newAppEnv(_ *cli.Context) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, err
	}

	return &appEnv{cfg: cfg, db: db}, nil
}

func (e *appEnv) close() {
	if err := e.db.Close(); err != nil {
		slog.Error("failed to close the database", slog.Any("error", err))
	}
}

func (e *appEnv) apiClient() *api.Client {
	return api.NewClient(e.cfg.Backend.BaseURL, auth.NewManager(e.db))
}

func (e *appEnv) tasks() (*records.Store[models.TaskRecord], error) {
	return records.NewStore[models.TaskRecord](store.CollectionTasks, e.db)
}

func (e *appEnv) focusRecords() (*records.Store[models.FocusRecord], error) {
	return records.NewStore[models.FocusRecord](store.CollectionFocus, e.db)
}

func (e *appEnv) album() (*records.Store[models.AlbumPhoto], error) {
	return records.NewStore[models.AlbumPhoto](store.CollectionAlbum, e.db)
}

// dateKeyFromCtx resolves the --date flag to a bucket key, defaulting to
// today.
func dateKeyFromCtx(ctx *cli.Context) (string, error) {
	arg := strings.TrimSpace(ctx.String("date"))
	if arg == "" {
		return timeutil.DateKey(time.Now()), nil
	}

	t, err := config.ParseDate(arg)
	if err != nil {
		return "", err
	}

	return timeutil.DateKey(t), nil
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the haru
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HARU_NO_COLOR is set
	if _, exists := os.LookupEnv(envHaruNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting haru")

	return nil
}

func versionPrinter(c *cli.Context) {
	fmt.Printf("%s %s\n", c.App.Name, c.App.Version)
	fmt.Printf(
		"https://github.com/haruapp/haru/releases/%s\n",
		c.App.Version,
	)
}
