package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	sqliteadapter "github.com/sporttracker/sporttracker/internal/adapters/db/sqlite"
	rpcadapter "github.com/sporttracker/sporttracker/internal/adapters/rpcjson"
	"github.com/sporttracker/sporttracker/internal/application"
	"github.com/sporttracker/sporttracker/internal/domain"
	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "sporttracker",
		Usage: "Sport, note and weight tracking store",
		Commands: []*cli.Command{
			serveCommand(),
			dataCommand(),
			sportTypesCommand(),
			exercisesCommand(),
			notesCommand(),
			weightsCommand(),
			configCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

// resolveConfig merges the stored config with per-invocation flag overrides.
func resolveConfig(c *cli.Command) (cliConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cliConfig{}, err
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("socket") {
		cfg.Socket = c.String("socket")
		cfg.Transport = "socket"
	}
	return cfg, nil
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "db", Usage: "SQLite database path (or :memory:)"},
		&cli.StringFlag{Name: "socket", Usage: "talk to a running server on this unix socket instead of opening the database"},
		&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the JSON-RPC server for the desktop frontend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Value: defaultDBPath, Usage: "SQLite database path (or :memory:)"},
			&cli.StringFlag{Name: "rpc-socket", Value: defaultSocket, Usage: "JSON-RPC unix socket path"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("db"), c.String("rpc-socket"))
		},
	}
}

func runServer(ctx context.Context, dbPath, rpcSocket string) error {
	session, err := sqliteadapter.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	service := application.NewTrackerService(session)
	rpcSrv, err := rpcadapter.Start(rpcSocket, service)
	if err != nil {
		return err
	}
	defer func() { _ = rpcSrv.Close() }()
	log.Printf("json-rpc listening on unix://%s", rpcSocket)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("received signal %s, shutting down", sig)
	case <-ctx.Done():
	}
	return nil
}

func dataCommand() *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Import and export the complete dataset",
		Commands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Import a dataset document, replacing nothing and keeping original ids",
				Flags: append(commonFlags(), &cli.StringFlag{Name: "file", Required: true, Usage: "dataset JSON file"}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					raw, err := os.ReadFile(c.String("file"))
					if err != nil {
						return err
					}
					var doc application.Dataset
					if err := json.Unmarshal(raw, &doc); err != nil {
						return err
					}
					if err := doImport(ctx, cfg, doc); err != nil {
						return err
					}
					fmt.Printf("imported %d sport types, %d exercises, %d notes, %d weights\n",
						len(doc.SportTypes), len(doc.Exercises), len(doc.Notes), len(doc.Weights))
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Export the complete dataset as JSON",
				Flags: append(commonFlags(), &cli.StringFlag{Name: "file", Usage: "write to file instead of stdout"}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					var doc application.Dataset
					if err := doExport(ctx, cfg, &doc); err != nil {
						return err
					}
					data, err := json.MarshalIndent(doc, "", "  ")
					if err != nil {
						return err
					}
					if path := c.String("file"); path != "" {
						return os.WriteFile(path, data, 0o600)
					}
					fmt.Println(string(data))
					return nil
				},
			},
		},
	}
}

func sportTypesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sport-types",
		Usage: "Sport type commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List sport types with their sub-types and equipment",
				Flags: commonFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					var out []application.DatasetSportType
					if err := doSportTypesList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSportTypes(out)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a sport type and its sub-types and equipment",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "id", Required: true}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					if err := doSportTypesDelete(ctx, cfg, int64(c.Int("id"))); err != nil {
						return err
					}
					fmt.Printf("deleted sport type %d\n", c.Int("id"))
					return nil
				},
			},
		},
	}
}

func exercisesCommand() *cli.Command {
	return &cli.Command{
		Name:  "exercises",
		Usage: "Exercise commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List exercises, oldest first",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "sport-type-id", Usage: "only exercises of this sport type"}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					var out []application.DatasetExercise
					if err := doExercisesList(ctx, cfg, int64(c.Int("sport-type-id")), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printExercises(out)
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Add an exercise",
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "date", Usage: "date and time, 2006-01-02 15:04 (default now)"},
					&cli.IntFlag{Name: "sport-type-id", Required: true},
					&cli.IntFlag{Name: "sub-type-id", Required: true, Usage: "sub-type owned by the sport type"},
					&cli.IntFlag{Name: "equipment-id", Usage: "equipment owned by the sport type"},
					&cli.StringFlag{Name: "intensity", Value: "normal", Usage: "minimum, low, normal, high, maximum or intervals"},
					&cli.FloatFlag{Name: "distance", Usage: "distance in kilometers"},
					&cli.FloatFlag{Name: "avg-speed", Usage: "average speed in km/h"},
					&cli.IntFlag{Name: "duration", Usage: "duration in seconds"},
					&cli.IntFlag{Name: "ascent", Usage: "ascent in meters"},
					&cli.IntFlag{Name: "descent", Usage: "descent in meters"},
					&cli.StringFlag{Name: "comment"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					when, err := parseDateFlag(c.String("date"))
					if err != nil {
						return err
					}
					row := application.DatasetExercise{
						SportTypeID:    int64(c.Int("sport-type-id")),
						SportSubTypeID: int64(c.Int("sub-type-id")),
						DateTime:       when,
						Intensity:      c.String("intensity"),
						Distance:       c.Float("distance"),
						AvgSpeed:       c.Float("avg-speed"),
						Duration:       c.Int("duration"),
						Ascent:         c.Int("ascent"),
						Descent:        c.Int("descent"),
						Comment:        c.String("comment"),
					}
					if c.IsSet("equipment-id") {
						id := int64(c.Int("equipment-id"))
						row.EquipmentID = &id
					}
					var out application.DatasetExercise
					if err := doExercisesAdd(ctx, cfg, row, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printExercises([]application.DatasetExercise{out})
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Delete an exercise",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "id", Required: true}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					if err := doExercisesDelete(ctx, cfg, int64(c.Int("id"))); err != nil {
						return err
					}
					fmt.Printf("deleted exercise %d\n", c.Int("id"))
					return nil
				},
			},
		},
	}
}

func notesCommand() *cli.Command {
	return &cli.Command{
		Name:  "notes",
		Usage: "Note commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List notes, oldest first",
				Flags: commonFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					var out []application.DatasetNote
					if err := doNotesList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printNotes(out)
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Add a note",
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "date", Usage: "date and time, 2006-01-02 15:04 (default now)"},
					&cli.StringFlag{Name: "comment", Required: true},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					when, err := parseDateFlag(c.String("date"))
					if err != nil {
						return err
					}
					var out application.DatasetNote
					if err := doNotesAdd(ctx, cfg, &domain.Note{DateTime: when, Comment: c.String("comment")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printKV([][2]string{{"id", fmt.Sprintf("%d", out.ID)}, {"date", formatTime(out.DateTime)}, {"comment", out.Comment}})
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a note",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "id", Required: true}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					if err := doNotesDelete(ctx, cfg, int64(c.Int("id"))); err != nil {
						return err
					}
					fmt.Printf("deleted note %d\n", c.Int("id"))
					return nil
				},
			},
		},
	}
}

func weightsCommand() *cli.Command {
	return &cli.Command{
		Name:  "weights",
		Usage: "Body weight commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List weight entries, oldest first",
				Flags: commonFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					var out []application.DatasetWeight
					if err := doWeightsList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printWeights(out)
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Add a weight entry",
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "date", Usage: "date and time, 2006-01-02 15:04 (default now)"},
					&cli.FloatFlag{Name: "value", Required: true, Usage: "weight in kilograms"},
					&cli.StringFlag{Name: "comment"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					when, err := parseDateFlag(c.String("date"))
					if err != nil {
						return err
					}
					var out application.DatasetWeight
					weight := &domain.Weight{DateTime: when, Value: c.Float("value"), Comment: c.String("comment")}
					if err := doWeightsAdd(ctx, cfg, weight, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printKV([][2]string{
						{"id", fmt.Sprintf("%d", out.ID)},
						{"date", formatTime(out.DateTime)},
						{"kg", fmt.Sprintf("%.1f", out.Value)},
					})
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a weight entry",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "id", Required: true}),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := resolveConfig(c)
					if err != nil {
						return err
					}
					if err := doWeightsDelete(ctx, cfg, int64(c.Int("id"))); err != nil {
						return err
					}
					fmt.Printf("deleted weight %d\n", c.Int("id"))
					return nil
				},
			},
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or store CLI defaults",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the stored configuration",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return printJSON(cfg)
				},
			},
			{
				Name:  "set",
				Usage: "Store CLI defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
					&cli.StringFlag{Name: "socket", Usage: "JSON-RPC unix socket path"},
					&cli.StringFlag{Name: "transport", Usage: "direct or socket"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					if c.IsSet("db") {
						cfg.DBPath = c.String("db")
					}
					if c.IsSet("socket") {
						cfg.Socket = c.String("socket")
					}
					if c.IsSet("transport") {
						t := c.String("transport")
						if t != "direct" && t != "socket" {
							return fmt.Errorf("unknown transport %q", t)
						}
						cfg.Transport = t
					}
					if err := saveConfig(cfg); err != nil {
						return err
					}
					return printJSON(cfg)
				},
			},
		},
	}
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", value)
}
