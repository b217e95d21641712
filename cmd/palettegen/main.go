// Palettegen fetches the design colour variables from the design system
// endpoint and regenerates the palette constants file. It is a development
// tool and is not shipped with the application.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const defaultURL = "https://design.haruapp.dev/api/variables/colors"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type palette struct {
	Colors map[string]string `json:"colors"`
}

func fetchPalette(url string) (*palette, error) {
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response: %s", resp.Status)
	}

	var p palette

	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colour variables in response")
	}

	return &p, nil
}

// constName converts a variable name like "accent-dark" to "ColorAccentDark".
func constName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == '/'
	})

	var b strings.Builder

	b.WriteString("Color")

	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}

	return b.String()
}

func generate(p *palette, pkg string) ([]byte, error) {
	names := make([]string, 0, len(p.Colors))

	for name, value := range p.Colors {
		if !hexColor.MatchString(value) {
			return nil, fmt.Errorf("variable %q has a non-hex value %q", name, value)
		}

		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder

	b.WriteString("// Code generated by palettegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("const (\n")

	for _, name := range names {
		fmt.Fprintf(&b, "\t%s = %q\n", constName(name), strings.ToLower(p.Colors[name]))
	}

	b.WriteString(")\n")

	return format.Source([]byte(b.String()))
}

func run() error {
	url := flag.String("url", defaultURL, "design variable endpoint")
	out := flag.String("out", "internal/ui/palette.go", "output file")
	pkg := flag.String("pkg", "ui", "package name for the generated file")

	flag.Parse()

	p, err := fetchPalette(*url)
	if err != nil {
		return err
	}

	src, err := generate(p, *pkg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		return err
	}

	pterm.Success.Printfln("wrote %d colours to %s", len(p.Colors), *out)

	return nil
}

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
