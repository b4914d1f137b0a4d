// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/vietphone/phonerec"
	"github.com/vietphone/phonerec/config"
	"github.com/vietphone/phonerec/scraper"
	"github.com/vietphone/phonerec/search"
	"github.com/vietphone/phonerec/storage"
)

func main() {
	app := &cli.App{
		Name:  "phonerec",
		Usage: "Phone catalog search and recommendation assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				Value:   "phonerec.toml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Ask the chatbot a question",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "suggest",
				Usage:  "Show questions the chatbot answers well",
				Action: suggestCommand,
			},
			{
				Name:   "search",
				Usage:  "Search the catalog",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Keyword matched against names and attributes",
					},
					&cli.Float64Flag{
						Name:  "min-price",
						Usage: "Minimum price in VND (0 = unbounded)",
					},
					&cli.Float64Flag{
						Name:  "max-price",
						Usage: "Maximum price in VND (0 = unbounded)",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order: price-asc, price-desc, most-viewed, newest",
					},
				},
			},
			{
				Name:      "scrape",
				Usage:     "Scrape phone data from a product or listing URL and save it",
				ArgsUsage: "<url>",
				Action:    scrapeCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "list",
						Usage: "Treat the URL as a listing page",
					},
					&cli.IntFlag{
						Name:  "max-items",
						Usage: "Maximum listing items to scrape (0 = all)",
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Import phones from a JSON file into the configured storage",
				ArgsUsage: "<file>",
				Action:    importCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openApp(c *cli.Context) (*phonerec.App, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	return phonerec.Open(cfg)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	bot := app.NewChatbot()
	if err := bot.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize chatbot: %w", err)
	}

	fmt.Println(bot.ProcessQuestion(ctx, question))
	return nil
}

func suggestCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	bot := app.NewChatbot()
	for _, question := range bot.SuggestedQuestions() {
		fmt.Printf("- %s\n", question)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	order, err := parseOrder(c.String("sort"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	phones, err := app.Repository().GetAllPhones(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	results := search.Search(phones, search.Query{
		Keyword:  c.String("keyword"),
		MinPrice: c.Float64("min-price"),
		MaxPrice: c.Float64("max-price"),
		SortBy:   order,
	})
	if len(results) == 0 {
		fmt.Println("No phones found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRICE (VND)\tVIEWS\tLINK")
	for _, phone := range results {
		fmt.Fprintf(w, "%s\t%.0f\t%d\t%s\n", phone.Name, phone.Price, phone.ViewCount, phone.Link)
	}
	return w.Flush()
}

func parseOrder(name string) (search.Order, error) {
	switch name {
	case "", "none":
		return search.Unordered, nil
	case "price-asc":
		return search.PriceAsc, nil
	case "price-desc":
		return search.PriceDesc, nil
	case "most-viewed":
		return search.MostViewed, nil
	case "newest":
		return search.Newest, nil
	default:
		return search.Unordered, fmt.Errorf("unknown sort order %q", name)
	}
}

func scrapeCommand(c *cli.Context) error {
	url := c.Args().First()
	if url == "" {
		return fmt.Errorf("a URL is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	s := scraper.NewCellphonesScraper()

	if c.Bool("list") {
		phones, err := s.ScrapePhoneList(ctx, url, c.Int("max-items"))
		if err != nil {
			return fmt.Errorf("failed to scrape listing: %w", err)
		}
		if err := app.Repository().SavePhones(ctx, phones); err != nil {
			return fmt.Errorf("failed to save phones: %w", err)
		}
		fmt.Printf("Saved %d phones.\n", len(phones))
		return nil
	}

	phone, err := s.ScrapePhone(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to scrape product page: %w", err)
	}
	if err := app.Repository().SavePhone(ctx, phone); err != nil {
		return fmt.Errorf("failed to save phone: %w", err)
	}
	fmt.Printf("Saved %q.\n", phone.Name)
	return nil
}

func importCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("a JSON file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	phones, err := storage.UnmarshalPhoneList(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Repository().SavePhones(context.Background(), phones); err != nil {
		return fmt.Errorf("failed to save phones: %w", err)
	}
	fmt.Printf("Imported %d phones from %s.\n", len(phones), path)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
