package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/api"
	"github.com/haruapp/haru/internal/ui"
	"github.com/haruapp/haru/report"
)

// Preference keys mirrored locally in the prefs bucket.
const (
	prefOnboarding = "onboarding_type"
	prefLanguage   = "language"
)

type loginInput struct {
	Email    string
	Password string
	Nickname string
}

func promptCredentials(withNickname bool) (loginInput, error) {
	var in loginInput

	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Value(&in.Email).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email address")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&in.Password),
	}

	if withNickname {
		fields = append(fields, huh.NewInput().
			Title("Nickname").
			Value(&in.Nickname),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...))

	err := form.Run()
	if err != nil {
		return in, fmt.Errorf("form interaction failed: %w", err)
	}

	return in, nil
}

// loginAction signs in to an existing account.
func loginAction(ctx *cli.Context) error {
	in, err := promptCredentials(false)
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	err = env.apiClient().SignIn(ctx.Context, in.Email, in.Password)
	if err != nil {
		return err
	}

	pterm.Success.Println("Signed in successfully")

	return nil
}

// signupAction registers a new account.
func signupAction(ctx *cli.Context) error {
	in, err := promptCredentials(true)
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	client := env.apiClient()

	err = client.SignUp(ctx.Context, in.Email, in.Password, in.Nickname)
	if errors.Is(err, api.ErrConflict) {
		report.Warn("That email is already registered. Try 'haru login' instead")
		return nil
	}

	if err != nil {
		return err
	}

	pterm.Success.Println("Account created")

	onboarding, err := promptOnboarding()
	if err != nil {
		return err
	}

	if err := client.SetOnboardingType(ctx.Context, onboarding); err != nil {
		pterm.Warning.Printfln("unable to save onboarding choice: %v", err)
	}

	if err := env.db.SetPref(prefOnboarding, onboarding); err != nil {
		slog.Error("failed to store onboarding preference", slog.Any("error", err))
	}

	return nil
}

func promptOnboarding() (string, error) {
	choice := "both"

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What do you want to track?").
			Options(
				huh.NewOption("Habits", "habit"),
				huh.NewOption("Focus sessions", "focus"),
				huh.NewOption("Both", "both").Selected(true),
			).
			Value(&choice),
	))

	err := form.Run()
	if err != nil {
		return "", fmt.Errorf("form interaction failed: %w", err)
	}

	return choice, nil
}

// logoutAction revokes the backend session and clears local credentials.
// Local credentials are cleared even if the backend call fails.
func logoutAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	err = env.apiClient().Logout(ctx.Context)
	if err != nil {
		pterm.Warning.Printfln(
			"backend sign-out failed, local session cleared: %v",
			err,
		)

		return nil
	}

	pterm.Success.Println("Signed out")

	return nil
}

// profileAction prints or updates the signed-in user's profile.
func profileAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	client := env.apiClient()

	if lang := ctx.String("language"); lang != "" {
		if err := client.SetLanguage(ctx.Context, lang); err != nil {
			return err
		}

		if err := env.db.SetPref(prefLanguage, lang); err != nil {
			slog.Error("failed to store language preference", slog.Any("error", err))
		}

		pterm.Success.Printfln("Language set to %s", lang)

		return nil
	}

	nickname := ctx.String("nickname")
	image := ctx.String("image")

	if nickname != "" || image != "" {
		patch := api.ProfilePatch{}

		if nickname != "" {
			patch.Nickname = &nickname
		}

		if image != "" {
			patch.ProfileImage = &image
		}

		profile, err := client.UpdateProfile(ctx.Context, patch)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Profile updated: %s", profile.Nickname)

		return nil
	}

	profile, err := client.Profile(ctx.Context)
	if err != nil {
		return err
	}

	plan := "free"
	if profile.Premium {
		plan = ui.Yellow("premium")
	}

	lang, err := env.db.GetPref(prefLanguage)
	if err != nil || lang == "" {
		lang = "-"
	}

	tableBody := [][]string{
		{"NICKNAME", "PLAN", "LANGUAGE", "USER ID"},
		{profile.Nickname, plan, lang, profile.UserID},
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}

// suggestAction asks the backend for a focus goal suggestion.
func suggestAction(ctx *cli.Context) error {
	topic := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if topic == "" {
		return cli.Exit("a topic is required (e.g. 'haru suggest exam prep')", 1)
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	suggestion, err := env.apiClient().SuggestGoal(ctx.Context, topic)
	if err != nil {
		return err
	}

	pterm.Printfln("Suggested goal: %s", ui.Green(suggestion))

	return nil
}

// routinesAction lists the recurring habits defined on the backend.
func routinesAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	routines, err := env.apiClient().Routines(ctx.Context)
	if err != nil {
		return err
	}

	if len(routines) == 0 {
		pterm.Println("No routines defined")
		return nil
	}

	tableBody := [][]string{{"NAME", "CATEGORY", "DAYS"}}

	for _, r := range routines {
		tableBody = append(tableBody, []string{
			r.Name,
			r.Category,
			strings.Join(r.Weekdays, ", "),
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}
