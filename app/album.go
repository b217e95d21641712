package app

import (
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/haruapp/haru/internal/models"
	"github.com/haruapp/haru/internal/ui"
	"github.com/haruapp/haru/records"
	"github.com/haruapp/haru/report"
)

// albumAddAction files a photo or video under a day.
func albumAddAction(ctx *cli.Context) error {
	uri := ctx.Args().First()
	if uri == "" {
		return cli.Exit("a photo or video URI is required", 1)
	}

	category, err := models.ParseCategory(ctx.String("category"))
	if err != nil {
		return err
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	album, err := env.album()
	if err != nil {
		return err
	}
	defer album.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	mediaType := models.MediaImage
	if ctx.Bool("video") {
		mediaType = models.MediaVideo
	}

	rec := models.NewAlbumPhoto(uri, ctx.String("memo"), category, mediaType)

	album.Insert(dateKey, rec)

	report.RecordAdded("Photo")

	return nil
}

// albumListAction prints the album entries filed under a day.
func albumListAction(ctx *cli.Context) error {
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	album, err := env.album()
	if err != nil {
		return err
	}
	defer album.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	bucket := album.GetByDate(dateKey)

	if ctx.Bool("json") {
		b, err := json.Marshal(bucket)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(bucket) == 0 {
		pterm.Printfln("No album entries for %s", dateKey)
		return nil
	}

	tableBody := [][]string{{"ID", "URI", "TYPE", "MEMO", "CATEGORY"}}

	for _, p := range bucket {
		tableBody = append(tableBody, []string{
			shortID(p.ID),
			p.URI,
			string(p.Type),
			p.Memo,
			string(p.CategoryKey),
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}

// albumRemoveAction deletes the specified album entry.
func albumRemoveAction(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return cli.Exit("an album entry id is required", 1)
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	album, err := env.album()
	if err != nil {
		return err
	}
	defer album.Close()

	dateKey, err := dateKeyFromCtx(ctx)
	if err != nil {
		return err
	}

	id, ok := findRecordID(album.GetByDate(dateKey), arg)
	if !ok {
		report.RecordNotFound("Photo", arg)
		return nil
	}

	if outcome := album.Delete(dateKey, id); outcome == records.NotFound {
		report.RecordNotFound("Photo", arg)
		return nil
	}

	pterm.Success.Printfln("Album entry %s removed", shortID(id))

	return nil
}
