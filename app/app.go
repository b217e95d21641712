// Package app defines the haru command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the haru app instance.
func Get() *cli.App {
	cli.VersionPrinter = versionPrinter

	haruApp := &cli.App{
		Name: "haru",
		Usage: `
		Haru is a daily habit and focus tracker for the command-line. Run it
		without a command to start a focus session, and review your progress
		with the stats command.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "task",
				Usage: "Manage the tasks filed under a day",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a task",
						ArgsUsage: "TEXT",
						Flags:     []cli.Flag{dateFlag, colorFlag, categoryFlag},
						Action:    taskAddAction,
					},
					{
						Name:   "list",
						Usage:  "List the tasks for a day",
						Flags:  []cli.Flag{dateFlag, jsonFlag},
						Action: taskListAction,
					},
					{
						Name:      "done",
						Usage:     "Mark a task as completed",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{dateFlag},
						Action:    taskDoneAction,
					},
					{
						Name:      "rm",
						Usage:     "Remove a task",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{dateFlag},
						Action:    taskRemoveAction,
					},
				},
			},
			{
				Name:  "focus",
				Usage: "Start an interactive focus session",
				Flags: []cli.Flag{
					goalFlag,
					durationFlag,
					soundFlag,
					sessionCmdFlag,
					disableNotificationFlag,
				},
				Action: focusAction,
				Subcommands: []*cli.Command{
					{
						Name:   "log",
						Usage:  "Record a focus session after the fact",
						Flags:  []cli.Flag{goalFlag, durationFlag, dateFlag},
						Action: focusLogAction,
					},
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with daily, weekly, and monthly focus
				reports`,
				Flags:  []cli.Flag{periodFlag, dateFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:  "album",
				Usage: "Manage the photos and videos filed under a day",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a photo or video",
						ArgsUsage: "URI",
						Flags: []cli.Flag{
							dateFlag,
							memoFlag,
							categoryFlag,
							videoFlag,
						},
						Action: albumAddAction,
					},
					{
						Name:   "list",
						Usage:  "List the album entries for a day",
						Flags:  []cli.Flag{dateFlag, jsonFlag},
						Action: albumListAction,
					},
					{
						Name:      "rm",
						Usage:     "Remove an album entry",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{dateFlag},
						Action:    albumRemoveAction,
					},
				},
			},
			{
				Name:  "remind",
				Usage: "Manage repeating local reminders",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Register a reminder",
						ArgsUsage: "MESSAGE",
						Flags:     []cli.Flag{timeFlag, daysFlag},
						Action:    remindAddAction,
					},
					{
						Name:   "list",
						Usage:  "List the registered reminders",
						Action: remindListAction,
					},
					{
						Name:      "rm",
						Usage:     "Unregister a reminder",
						ArgsUsage: "ID",
						Action:    remindRemoveAction,
					},
					{
						Name:   "run",
						Usage:  "Deliver reminders until interrupted",
						Action: remindRunAction,
					},
				},
			},
			{
				Name:   "login",
				Usage:  "Sign in to a haru account",
				Action: loginAction,
			},
			{
				Name:   "signup",
				Usage:  "Create a haru account",
				Action: signupAction,
			},
			{
				Name:   "logout",
				Usage:  "Sign out of the current account",
				Action: logoutAction,
			},
			{
				Name:   "profile",
				Usage:  "Show or update the signed-in profile",
				Flags:  []cli.Flag{nicknameFlag, imageFlag, languageFlag},
				Action: profileAction,
			},
			{
				Name:      "suggest",
				Usage:     "Ask for a focus goal suggestion",
				ArgsUsage: "TOPIC",
				Action:    suggestAction,
			},
			{
				Name:   "routines",
				Usage:  "List the recurring habits defined on the backend",
				Action: routinesAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			goalFlag,
			durationFlag,
			soundFlag,
			sessionCmdFlag,
			disableNotificationFlag,
		},
		Action: focusAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return haruApp
}
