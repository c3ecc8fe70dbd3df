package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  meta       Print reading time, first image and excerpt")
	fmt.Fprintln(w, "  tree       Print the render tree or heading outline")
	fmt.Fprintln(w, "  html       Print the HTML fragment of an article")
	fmt.Fprintln(w, "  posts      List the posts of a content directory")
	fmt.Fprintln(w, "  build      Render every post to HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blogmd help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name|path>  Config file (default: blogmd.yaml if present)")
	fmt.Fprintln(w, "  -q, --quiet               Only print errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging")
	fmt.Fprintln(w, "      --log-level <level>   debug, info, warn, error")
	fmt.Fprintln(w, "      --color <mode>        auto, always, never")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLOGMD_LOG_LEVEL    Overrides log.level")
	fmt.Fprintln(w, "  BLOGMD_CONTENT_DIR  Overrides content.dir")
}

func printMetaUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd meta <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print {reading_time, first_image, excerpt} for one article.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --length <n>      Excerpt length in characters")
	fmt.Fprintln(w, "      --wpm <n>         Reading speed in words per minute")
	fmt.Fprintln(w, "  -f, --format <fmt>    json (default) or yaml")
	printCommonUsage(w)
}

func printTreeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd tree <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the render output tree of one article.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --outline         Print the heading outline instead")
	fmt.Fprintln(w, "      --depth <n>       Deepest outline heading level (default: 3)")
	fmt.Fprintln(w, "  -f, --format <fmt>    json (default) or yaml")
	printCommonUsage(w)
}

func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd html <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the HTML fragment of one article.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --sanitize        Filter raw HTML")
	fmt.Fprintln(w, "      --no-highlight    Disable syntax highlighting")
	fmt.Fprintln(w, "  -s, --style <name>    Highlight style for --css")
	fmt.Fprintln(w, "      --css             Prepend the highlight stylesheet")
	printCommonUsage(w)
}

func printPostsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd posts [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List posts, newest first. dir defaults to content.dir.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --category <name> Only posts in this category")
	fmt.Fprintln(w, "      --featured        Only featured posts")
	fmt.Fprintln(w, "  -n, --limit <n>       Maximum number of posts")
	fmt.Fprintln(w, "      --related <slug>  Posts related to a post")
	fmt.Fprintln(w, "      --json            Print JSON")
	printCommonUsage(w)
}

func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmd build [dir] -o <output> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every post to <output>/<slug>.html. Ctrl-C stops the build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (required)")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --sanitize        Filter raw HTML")
	fmt.Fprintln(w, "      --index           Write index.json (default: true)")
	printCommonUsage(w)
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "meta":
		printMetaUsage(w)
	case "tree":
		printTreeUsage(w)
	case "html":
		printHTMLUsage(w)
	case "posts":
		printPostsUsage(w)
	case "build":
		printBuildUsage(w)
	default:
		fmt.Fprintf(w, "Unknown command: %s\n\n", args[0])
		printUsage(w)
	}
}
