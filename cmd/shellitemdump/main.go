// Command shellitemdump decodes a chained list of Windows shell items
// from a raw binary file (the payload of a .lnk IDList, a jump list
// entry, or a shellbag registry value) and prints one line per item.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	shellitem "github.com/bgrewell/shellitem-kit"
	"github.com/bgrewell/shellitem-kit/pkg/logging"
	"github.com/bgrewell/usage"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("shellitemdump"),
		usage.WithApplicationDescription("shellitemdump decodes a raw binary shell-item list (from a .lnk IDList, jump list entry, or shellbag value) and prints the decoded variant, name, and metadata for each item."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	debug := u.AddBooleanOption("v", "verbose", false, "Enable verbose (debug) logging", "optional", nil)
	trace := u.AddBooleanOption("vv", "trace", false, "Enable trace logging", "optional", nil)
	path := u.AddArgument(1, "path", "Path to a file containing a raw shell-item list", "")
	codepageArg := u.AddArgument(2, "codepage", "Legacy Windows code page used to decode non-Unicode strings", "1252")

	if !u.Parse() {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("path to a shell-item file must be provided"))
		os.Exit(1)
	}

	codepage, err := strconv.Atoi(*codepageArg)
	if err != nil {
		u.PrintError(fmt.Errorf("invalid codepage %q: %w", *codepageArg, err))
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		u.PrintError(fmt.Errorf("failed to read %s: %w", *path, err))
		os.Exit(1)
	}

	out := colorable.NewColorableStdout()
	isTTY := isatty.IsTerminal(os.Stdout.Fd())

	logLevel := logging.LEVEL_INFO
	switch {
	case *trace:
		logLevel = logging.LEVEL_TRACE
	case *debug:
		logLevel = logging.LEVEL_DEBUG
	}
	var logger logr.Logger
	if *trace || *debug {
		logger = logging.NewShellItemLogger(os.Stderr, logLevel, isTTY)
	} else {
		logger = logr.Discard()
	}

	var spinner *yacspin.Spinner
	if isTTY {
		spinner, err = yacspin.New(yacspin.Config{
			Frequency:       100 * time.Millisecond,
			CharSet:         yacspin.CharSets[9],
			Suffix:          " decoding shell items",
			SuffixAutoColon: true,
			StopCharacter:   "done",
			StopColors:      []string{"fgGreen"},
		})
		if err == nil {
			_ = spinner.Start()
		}
	}

	items, err := shellitem.ParseItemList(data,
		shellitem.WithASCIICodepage(uint32(codepage)),
		shellitem.WithLogger(logger),
	)

	if spinner != nil {
		_ = spinner.Stop()
	}

	if err != nil {
		u.PrintError(fmt.Errorf("failed to decode shell item list: %w", err))
		os.Exit(1)
	}

	termWidth := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			termWidth = w
		}
	}

	printItems(out, items, isTTY, termWidth)
}

func printItems(out io.Writer, items []*shellitem.Item, useColor bool, termWidth int) {
	variantColor := color.New(color.FgCyan).SprintFunc()
	nameColor := color.New(color.FgWhite).SprintFunc()

	maxVariant := 0
	for _, it := range items {
		if w := runewidth.StringWidth(it.Variant.String()); w > maxVariant {
			maxVariant = w
		}
	}

	for idx, it := range items {
		variant := it.Variant.String()
		pad := maxVariant - runewidth.StringWidth(variant)
		label := variant
		if useColor {
			label = variantColor(variant)
		}
		detail := describe(it, nameColor, useColor)
		if termWidth > 0 {
			detail = truncateToWidth(detail, termWidth-maxVariant-10)
		}
		fmt.Fprintf(out, "[%3d] %s%*s  %s\n", idx, label, pad, "", detail)
	}
}

// truncateToWidth trims detail to fit a terminal column budget, counting
// display width rather than byte length so multi-byte and wide runes
// (e.g. a DBCS-transcoded name) aren't cut mid-rune.
func truncateToWidth(detail string, width int) string {
	if width <= 3 || runewidth.StringWidth(detail) <= width {
		return detail
	}
	return runewidth.Truncate(detail, width, "...")
}

func describe(it *shellitem.Item, nameColor func(a ...interface{}) string, useColor bool) string {
	colorize := func(s string) string {
		if !useColor || s == "" {
			return s
		}
		return nameColor(s)
	}

	switch it.Variant {
	case shellitem.VariantRootFolder:
		g, err := it.RootFolderIdentifier()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return colorize(g.String())
	case shellitem.VariantVolume:
		if name, err := it.VolumeName(); err == nil {
			return colorize(name)
		}
		if g, err := it.VolumeIdentifier(); err == nil {
			return colorize(g.String())
		}
		return ""
	case shellitem.VariantFileEntry:
		name, err := it.FileEntryName()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		size, _ := it.FileEntrySize()
		return fmt.Sprintf("%s (%d bytes)", colorize(name), size)
	case shellitem.VariantNetworkLocation:
		share, err := it.NetworkLocationShareName()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return colorize(share)
	case shellitem.VariantURI:
		uri, err := it.URIString()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return colorize(uri)
	case shellitem.VariantCompressedFolder:
		g, _ := it.CompressedFolderIdentifier()
		return colorize(g.String())
	case shellitem.VariantControlPanel:
		g, _ := it.ControlPanelIdentifier()
		return colorize(g.String())
	case shellitem.VariantUsersPropertyView:
		g, _ := it.UsersPropertyViewIdentifier()
		return colorize(g.String())
	case shellitem.VariantDelegate:
		g, _ := it.DelegateIdentifier()
		return colorize(g.String())
	default:
		return fmt.Sprintf("class_type=0x%02X", it.ClassType)
	}
}
