// Copyright
// SPDX-License-Identifier: MIT
// wikitui: terminal client for a wiki, with in-place article editing and live search
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "net/url"
    "os"
    "os/signal"
    "strings"
    "time"

    "github.com/rs/zerolog"

    "wikitui/internal/config"
    "wikitui/internal/httpx"
    "wikitui/internal/logger"
    appTUI "wikitui/internal/tui"
    "wikitui/internal/wiki"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    var err error
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("wikitui", Version)
        return
    case "open":
        err = cmdOpen(os.Args[2:])
    case "search":
        err = cmdSearch(os.Args[2:])
    case "doctor":
        err = cmdDoctor(os.Args[2:])
    default:
        usage()
    }
    if err != nil {
        fmt.Fprintln(os.Stderr, "error:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Println(`wikitui ` + Version + `
Read, edit and search wiki articles from the terminal.
USAGE
  wikitui <command> [options]
COMMANDS
  open         Open an article (try: wikitui help open)
  search       Print live search hits for a query
  doctor       Check that a wiki answers and serves an editable article
  help         Show help (try: wikitui help open)
  version      Print version
CONFIG
  ` + config.DefaultPath() + `
  A .env file in the working directory is loaded first.
  ` + config.EnvSession + `, ` + config.EnvLogLevel + ` and ` + config.EnvLogFile + ` override the file.
`)
}

func helpTopic(name string) {
    switch name {
    case "open":
        fmt.Println(`USAGE
  wikitui open [--config PATH] [--session TOKEN] [--no-color] [--log-file PATH] [--log-level LEVEL] URL
DESCRIPTION
  Shows the article at URL. Press e to edit, ctrl+s to save, / to search and q to quit.
  Leaving with unsaved edits asks first. Press ? inside for all keys.
OPTIONS
  --config PATH      Config file (default: ` + config.DefaultPath() + `)
  --session TOKEN    Session cookie sent with every request
  --no-color         Disable colors (NO_COLOR is honored too)
  --log-file PATH    Append logs to file (logging is off without one)
  --log-level LEVEL  debug | info | warn | error
`)
    case "search":
        fmt.Println(`USAGE
  wikitui search [--config PATH] [--limit N] URL QUERY
DESCRIPTION
  Runs one live search against the wiki that serves URL and prints the hits.
`)
    case "doctor":
        fmt.Println(`USAGE
  wikitui doctor [--config PATH] [--timeout DURATION] URL
DESCRIPTION
  Waits for the wiki to answer, then loads the article at URL and probes search.
`)
    default:
        usage()
    }
}

/* ---------- setup ---------- */

type common struct {
    configPath string
    session    string
    logFile    string
    logLevel   string
}

func (c *common) register(fs *flag.FlagSet) {
    fs.StringVar(&c.configPath, "config", "", "Config file")
    fs.StringVar(&c.session, "session", "", "Session cookie value")
    fs.StringVar(&c.logFile, "log-file", "", "Append logs to file")
    fs.StringVar(&c.logLevel, "log-level", "", "Log level")
}

// setup loads the config, applies flag overrides and opens the logger.
func (c *common) setup() (*config.Config, zerolog.Logger, io.Closer, error) {
    cfg, err := config.Load(c.configPath)
    if err != nil {
        return nil, zerolog.Nop(), nil, err
    }
    if c.session != "" {
        cfg.HTTP.Session = c.session
    }
    if c.logFile != "" {
        cfg.Logging.File = c.logFile
    }
    if c.logLevel != "" {
        cfg.Logging.Level = c.logLevel
    }
    log, closer, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
    if err != nil {
        return nil, zerolog.Nop(), nil, err
    }
    return cfg, log, closer, nil
}

func newClient(cfg *config.Config, pageURL string, log zerolog.Logger) (*wiki.Client, error) {
    return wiki.NewClient(pageURL, wiki.Options{
        Timeout:    cfg.HTTP.Timeout,
        Session:    cfg.HTTP.Session,
        UserAgent:  cfg.HTTP.UserAgent + "/" + Version,
        SnippetLen: cfg.Search.SnippetSize,
        Limit:      cfg.Search.Limit,
    }, log)
}

func signalContext() (context.Context, context.CancelFunc) {
    return signal.NotifyContext(context.Background(), os.Interrupt)
}

/* ---------- commands ---------- */

func cmdOpen(args []string) error {
    fs := flag.NewFlagSet("open", flag.ExitOnError)
    fs.Usage = func() { helpTopic("open") }
    var c common
    c.register(fs)
    noColor := fs.Bool("no-color", false, "Disable colors")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        helpTopic("open")
        return errors.New("open needs exactly one URL")
    }

    cfg, log, closer, err := c.setup()
    if err != nil {
        return err
    }
    defer closer.Close()

    client, err := newClient(cfg, fs.Arg(0), log)
    if err != nil {
        return err
    }
    ctx, cancel := signalContext()
    defer cancel()

    log.Info().Str("url", client.PageURL()).Msg("open")
    return appTUI.Run(ctx, client, appTUI.Options{
        Debounce:    cfg.Search.Debounce,
        OrdinalBase: cfg.Search.OrdinalBase,
        SyntaxStyle: cfg.Theme.Syntax,
        NoColor:     *noColor,
        Log:         log,
    })
}

func cmdSearch(args []string) error {
    fs := flag.NewFlagSet("search", flag.ExitOnError)
    fs.Usage = func() { helpTopic("search") }
    var c common
    c.register(fs)
    limit := fs.Int("limit", 0, "Maximum number of hits (default from config)")
    _ = fs.Parse(args)
    if fs.NArg() < 2 {
        helpTopic("search")
        return errors.New("search needs a URL and a query")
    }

    cfg, log, closer, err := c.setup()
    if err != nil {
        return err
    }
    defer closer.Close()
    if *limit > 0 {
        cfg.Search.Limit = *limit
    }

    client, err := newClient(cfg, fs.Arg(0), log)
    if err != nil {
        return err
    }
    ctx, cancel := signalContext()
    defer cancel()

    query := strings.Join(fs.Args()[1:], " ")
    resp, err := client.Search(ctx, query)
    if err != nil {
        return fmt.Errorf("search %q: %w", query, err)
    }
    if len(resp.Hits) == 0 {
        fmt.Println("No results.")
        return nil
    }
    for _, h := range resp.Hits {
        link := h.Slug
        if u, err := client.Resolve(h.Slug); err == nil {
            link = u.String()
        }
        fmt.Printf("%s\n  %s\n", h.Title, link)
        if s := strings.Join(strings.Fields(h.Snippet), " "); s != "" {
            fmt.Printf("  %s\n", s)
        }
    }
    if resp.Next {
        fmt.Println("More results:", client.SearchURL(query, 0))
    }
    return nil
}

func cmdDoctor(args []string) error {
    fs := flag.NewFlagSet("doctor", flag.ExitOnError)
    fs.Usage = func() { helpTopic("doctor") }
    var c common
    c.register(fs)
    timeout := fs.Duration("timeout", 10*time.Second, "How long to wait for the wiki")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        helpTopic("doctor")
        return errors.New("doctor needs exactly one URL")
    }

    cfg, log, closer, err := c.setup()
    if err != nil {
        return err
    }
    defer closer.Close()

    pageURL := fs.Arg(0)
    u, err := url.Parse(pageURL)
    if err != nil {
        return fmt.Errorf("parse url: %w", err)
    }
    hc, err := httpx.NewClient(cfg.HTTP.Timeout, u, cfg.HTTP.Session)
    if err != nil {
        return err
    }
    ctx, cancel := signalContext()
    defer cancel()

    fmt.Println("Wiki checks:")
    ok := true
    if err := httpx.WaitHTTPUp(ctx, hc, pageURL, *timeout); err != nil {
        fmt.Printf("  ✗ %s did not answer: %v\n", pageURL, err)
        return errors.New("wiki unreachable")
    }
    fmt.Printf("  ✓ %s answers\n", pageURL)

    client, err := newClient(cfg, pageURL, log)
    if err != nil {
        return err
    }
    p, err := client.Load(ctx)
    switch {
    case err != nil:
        fmt.Printf("  ✗ article did not load: %v\n", err)
        ok = false
    case p.Action == "" && p.Form.Title == "" && p.Form.Body == "":
        fmt.Println("  ✗ no article editor found on the page")
        ok = false
    default:
        title := p.Display.Title
        if title == "" {
            title = p.Form.Title
        }
        fmt.Printf("  ✓ article %q (revision %s, theme %s)\n", title, orDash(p.Form.BaseRevision), orDash(p.Form.Theme))
    }

    if _, err := client.Search(ctx, "a"); err != nil {
        fmt.Printf("  ✗ search failed: %v\n", err)
        ok = false
    } else {
        fmt.Println("  ✓ search answers")
    }

    if !ok {
        return errors.New("some checks failed")
    }
    fmt.Println("All checks passed.")
    return nil
}

func orDash(s string) string {
    if s == "" {
        return "-"
    }
    return s
}
