package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	goalFlag = &cli.StringFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "The goal to focus on (e.g. 'study'). Defaults to the configured goal",
	}

	durationFlag = &cli.DurationFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session length (e.g. '25m', '1h'). Defaults to the configured length",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play an ambient sound during the session. Disable with 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the session ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session is completed",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "The day to operate on (e.g. 'today', 'yesterday', '2025-10-09'). Defaults to today",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "A display colour for the task (e.g. '#4ade80')",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "A category key for grouping",
	}

	memoFlag = &cli.StringFlag{
		Name:    "memo",
		Aliases: []string{"m"},
		Usage:   "A short note attached to the photo",
	}

	videoFlag = &cli.BoolFlag{
		Name:  "video",
		Usage: "Mark the album entry as a video",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "The reporting period: daily, weekly, or monthly (default: daily)",
	}

	timeFlag = &cli.StringFlag{
		Name:    "time",
		Aliases: []string{"t"},
		Usage:   "The reminder time in 24-hour HH:MM format",
	}

	daysFlag = &cli.StringFlag{
		Name:  "days",
		Usage: "Comma-delimited weekdays to repeat on (e.g. 'mon,wed,fri'). Repeats daily when omitted",
	}

	nicknameFlag = &cli.StringFlag{
		Name:  "nickname",
		Usage: "A new display name for the profile",
	}

	imageFlag = &cli.StringFlag{
		Name:  "image",
		Usage: "A new profile image URL",
	}

	languageFlag = &cli.StringFlag{
		Name:  "language",
		Usage: "Set the interface language (e.g. 'ko', 'en')",
	}
)
